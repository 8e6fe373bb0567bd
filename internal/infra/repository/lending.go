package repository

import (
	"context"
	"errors"
	"time"

	"clubhub/internal/domain/lending"
	"clubhub/internal/infra"
	"clubhub/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type LendingRepository struct {
	db db.DBTX
}

func NewLendingRepository(db db.DBTX) *LendingRepository {
	return &LendingRepository{db: db}
}

type lendingRow struct {
	ID           uuid.UUID
	ItemID       uuid.UUID
	BorrowerID   uuid.UUID
	IsGuest      bool
	BorrowedAt   time.Time
	DueAt        time.Time
	ReturnedAt   *time.Time
	ReturnMethod *string
}

func (r *LendingRepository) Create(ctx context.Context, s *lending.Session) error {
	const query = `
		INSERT INTO lending_sessions (id, item_id, borrower_id, is_guest, borrowed_at, due_at, returned_at, return_method)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.db.Exec(ctx, query,
		s.ID(), s.ItemID(), s.BorrowerID(), s.IsGuest(),
		s.BorrowedAt(), s.DueAt(), s.ReturnedAt(), returnMethodValue(s.ReturnMethod()),
	)
	if err != nil {
		if isUniqueViolation(err) {
			// The partial unique index on active loans caught a racing
			// borrow for the same item.
			return infra.WrapRepoErr("item already has an active loan", err, infra.KindConflict)
		}
		return infra.WrapRepoErr("failed to create lending session", err)
	}
	return nil
}

func (r *LendingRepository) FindActiveByItem(ctx context.Context, itemID uuid.UUID) (*lending.Session, error) {
	const query = `
		SELECT id, item_id, borrower_id, is_guest, borrowed_at, due_at, returned_at, return_method
		FROM lending_sessions
		WHERE item_id = $1 AND returned_at IS NULL`

	row, err := scanLendingRow(r.db.QueryRow(ctx, query, itemID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("no active loan for item", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find active loan", err)
	}
	return toLendingSession(row), nil
}

func (r *LendingRepository) Update(ctx context.Context, s *lending.Session) error {
	const query = `
		UPDATE lending_sessions
		SET returned_at = $2, return_method = $3
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, s.ID(), s.ReturnedAt(), returnMethodValue(s.ReturnMethod()))
	if err != nil {
		return infra.WrapRepoErr("failed to update lending session", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("lending session not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *LendingRepository) FindOverdueBefore(ctx context.Context, now time.Time) ([]*lending.Session, error) {
	const query = `
		SELECT id, item_id, borrower_id, is_guest, borrowed_at, due_at, returned_at, return_method
		FROM lending_sessions
		WHERE returned_at IS NULL AND due_at < $1
		ORDER BY due_at`

	return r.list(ctx, query, now)
}

func (r *LendingRepository) FindActiveByBorrower(ctx context.Context, borrowerID uuid.UUID) ([]*lending.Session, error) {
	const query = `
		SELECT id, item_id, borrower_id, is_guest, borrowed_at, due_at, returned_at, return_method
		FROM lending_sessions
		WHERE borrower_id = $1 AND returned_at IS NULL
		ORDER BY borrowed_at`

	return r.list(ctx, query, borrowerID)
}

func (r *LendingRepository) list(ctx context.Context, query string, args ...any) ([]*lending.Session, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list lending sessions", err)
	}
	defer rows.Close()

	var sessions []*lending.Session
	for rows.Next() {
		row, err := scanLendingRow(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan lending session", err)
		}
		sessions = append(sessions, toLendingSession(row))
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to list lending sessions", err)
	}
	return sessions, nil
}

func scanLendingRow(row pgx.Row) (lendingRow, error) {
	var l lendingRow
	err := row.Scan(&l.ID, &l.ItemID, &l.BorrowerID, &l.IsGuest,
		&l.BorrowedAt, &l.DueAt, &l.ReturnedAt, &l.ReturnMethod)
	return l, err
}

func toLendingSession(row lendingRow) *lending.Session {
	var method *lending.ReturnMethod
	if row.ReturnMethod != nil {
		m := lending.ReturnMethod(*row.ReturnMethod)
		method = &m
	}

	return lending.ReconstructSession(
		row.ID, row.ItemID, row.BorrowerID, row.IsGuest,
		row.BorrowedAt, row.DueAt, row.ReturnedAt, method,
	)
}

func returnMethodValue(m *lending.ReturnMethod) *string {
	if m == nil {
		return nil
	}
	s := m.String()
	return &s
}
