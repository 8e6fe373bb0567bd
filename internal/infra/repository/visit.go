package repository

import (
	"context"
	"errors"
	"time"

	"clubhub/internal/domain/visit"
	"clubhub/internal/infra"
	"clubhub/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type VisitRepository struct {
	db db.DBTX
}

func NewVisitRepository(db db.DBTX) *VisitRepository {
	return &VisitRepository{db: db}
}

type visitRow struct {
	ID         uuid.UUID
	MemberID   uuid.UUID
	ClubID     uuid.UUID
	CheckInAt  time.Time
	CheckOutAt *time.Time
	Method     string
	ClosedBy   *string
}

func (r *VisitRepository) Create(ctx context.Context, s *visit.Session) error {
	const query = `
		INSERT INTO visit_sessions (id, member_id, club_id, check_in_at, check_out_at, method, closed_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.db.Exec(ctx, query,
		s.ID(), s.MemberID(), s.ClubID(), s.CheckInAt(), s.CheckOutAt(),
		s.Method().String(), closedByValue(s.ClosedBy()),
	)
	if err != nil {
		if isUniqueViolation(err) {
			// The partial unique index on open sessions caught a racing
			// check-in for the same member.
			return infra.WrapRepoErr("member already has an open visit session", err, infra.KindConflict)
		}
		return infra.WrapRepoErr("failed to create visit session", err)
	}
	return nil
}

func (r *VisitRepository) FindByID(ctx context.Context, id uuid.UUID) (*visit.Session, error) {
	const query = `
		SELECT id, member_id, club_id, check_in_at, check_out_at, method, closed_by
		FROM visit_sessions
		WHERE id = $1`

	row, err := scanVisitRow(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("visit session not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find visit session by ID", err)
	}
	return toVisitSession(row), nil
}

func (r *VisitRepository) FindActiveByMember(ctx context.Context, memberID uuid.UUID) (*visit.Session, error) {
	const query = `
		SELECT id, member_id, club_id, check_in_at, check_out_at, method, closed_by
		FROM visit_sessions
		WHERE member_id = $1 AND check_out_at IS NULL`

	row, err := scanVisitRow(r.db.QueryRow(ctx, query, memberID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("no open visit session for member", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find active visit session", err)
	}
	return toVisitSession(row), nil
}

func (r *VisitRepository) Update(ctx context.Context, s *visit.Session) error {
	const query = `
		UPDATE visit_sessions
		SET check_out_at = $2, closed_by = $3
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, s.ID(), s.CheckOutAt(), closedByValue(s.ClosedBy()))
	if err != nil {
		return infra.WrapRepoErr("failed to update visit session", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("visit session not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *VisitRepository) FindOpenCheckedInBefore(ctx context.Context, cutoff time.Time) ([]*visit.Session, error) {
	const query = `
		SELECT id, member_id, club_id, check_in_at, check_out_at, method, closed_by
		FROM visit_sessions
		WHERE check_out_at IS NULL AND check_in_at < $1
		ORDER BY check_in_at`

	rows, err := r.db.Query(ctx, query, cutoff)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list stale visit sessions", err)
	}
	defer rows.Close()

	var sessions []*visit.Session
	for rows.Next() {
		row, err := scanVisitRow(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan visit session", err)
		}
		sessions = append(sessions, toVisitSession(row))
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to list stale visit sessions", err)
	}
	return sessions, nil
}

func scanVisitRow(row pgx.Row) (visitRow, error) {
	var v visitRow
	err := row.Scan(&v.ID, &v.MemberID, &v.ClubID, &v.CheckInAt, &v.CheckOutAt, &v.Method, &v.ClosedBy)
	return v, err
}

func toVisitSession(row visitRow) *visit.Session {
	var closedBy *visit.ClosedBy
	if row.ClosedBy != nil {
		c := visit.ClosedBy(*row.ClosedBy)
		closedBy = &c
	}

	return visit.ReconstructSession(
		row.ID, row.MemberID, row.ClubID,
		row.CheckInAt, row.CheckOutAt,
		visit.Method(row.Method), closedBy,
	)
}

func closedByValue(c *visit.ClosedBy) *string {
	if c == nil {
		return nil
	}
	s := c.String()
	return &s
}
