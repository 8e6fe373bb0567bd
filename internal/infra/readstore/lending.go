package readstore

import (
	"context"
	"errors"

	"clubhub/internal/infra"
	"clubhub/internal/infra/db"
	"clubhub/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type LendingReadStore struct {
	db db.DBTX
}

func NewLendingReadStore(db db.DBTX) *LendingReadStore {
	return &LendingReadStore{db: db}
}

func (r *LendingReadStore) FindItemView(ctx context.Context, itemID uuid.UUID) (*queries.ItemView, error) {
	const itemQuery = `
		SELECT id, club_id, name, status, max_borrow_seconds
		FROM items
		WHERE id = $1`

	var (
		view             queries.ItemView
		maxBorrowSeconds int64
	)
	err := r.db.QueryRow(ctx, itemQuery, itemID).Scan(
		&view.ID, &view.ClubID, &view.Name, &view.Status, &maxBorrowSeconds,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("item not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find item", err)
	}
	view.MaxBorrowMinutes = int(maxBorrowSeconds / 60)

	loan, err := r.findActiveLoan(ctx, itemID, view.Name)
	if err != nil {
		return nil, err
	}
	view.ActiveLoan = loan

	queue, err := r.findQueue(ctx, itemID)
	if err != nil {
		return nil, err
	}
	view.Queue = queue

	return &view, nil
}

func (r *LendingReadStore) findActiveLoan(ctx context.Context, itemID uuid.UUID, itemName string) (*queries.LoanView, error) {
	const query = `
		SELECT id, item_id, borrower_id, is_guest, borrowed_at, due_at, returned_at, return_method
		FROM lending_sessions
		WHERE item_id = $1 AND returned_at IS NULL`

	var loan queries.LoanView
	err := r.db.QueryRow(ctx, query, itemID).Scan(
		&loan.ID, &loan.ItemID, &loan.BorrowerID, &loan.IsGuest,
		&loan.BorrowedAt, &loan.DueAt, &loan.ReturnedAt, &loan.ReturnMethod,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr("failed to find active loan", err)
	}
	loan.ItemName = itemName
	return &loan, nil
}

func (r *LendingReadStore) findQueue(ctx context.Context, itemID uuid.UUID) ([]queries.QueueEntryView, error) {
	const query = `
		SELECT requester_id, enqueued_at, promoted_at, hold_expires_at
		FROM queue_entries
		WHERE item_id = $1
		ORDER BY enqueued_at`

	rows, err := r.db.Query(ctx, query, itemID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list queue entries", err)
	}
	defer rows.Close()

	queue := []queries.QueueEntryView{}
	for rows.Next() {
		var entry queries.QueueEntryView
		if err := rows.Scan(&entry.RequesterID, &entry.EnqueuedAt, &entry.PromotedAt, &entry.HoldExpiresAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan queue entry", err)
		}
		entry.Position = len(queue) + 1
		queue = append(queue, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to list queue entries", err)
	}
	return queue, nil
}

func (r *LendingReadStore) FindLoansByBorrower(ctx context.Context, borrowerID uuid.UUID, limit int) ([]*queries.LoanView, error) {
	const query = `
		SELECT l.id, l.item_id, i.name, l.borrower_id, l.is_guest,
		       l.borrowed_at, l.due_at, l.returned_at, l.return_method
		FROM lending_sessions l
		JOIN items i ON i.id = l.item_id
		WHERE l.borrower_id = $1
		ORDER BY l.borrowed_at DESC
		LIMIT $2`

	rows, err := r.db.Query(ctx, query, borrowerID, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list loans by borrower", err)
	}
	defer rows.Close()

	var loans []*queries.LoanView
	for rows.Next() {
		var loan queries.LoanView
		err := rows.Scan(&loan.ID, &loan.ItemID, &loan.ItemName, &loan.BorrowerID, &loan.IsGuest,
			&loan.BorrowedAt, &loan.DueAt, &loan.ReturnedAt, &loan.ReturnMethod)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan loan view", err)
		}
		loans = append(loans, &loan)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to list loans by borrower", err)
	}
	return loans, nil
}
