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

type VisitReadStore struct {
	db db.DBTX
}

func NewVisitReadStore(db db.DBTX) *VisitReadStore {
	return &VisitReadStore{db: db}
}

func (r *VisitReadStore) FindActiveByMember(ctx context.Context, memberID uuid.UUID) (*queries.VisitView, error) {
	const query = `
		SELECT id, member_id, club_id, check_in_at, check_out_at, method, closed_by
		FROM visit_sessions
		WHERE member_id = $1 AND check_out_at IS NULL`

	view, err := scanVisitView(r.db.QueryRow(ctx, query, memberID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("no active visit for member", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find active visit", err)
	}
	return view, nil
}

func (r *VisitReadStore) FindHistoryByMember(ctx context.Context, memberID uuid.UUID, limit int) ([]*queries.VisitView, error) {
	const query = `
		SELECT id, member_id, club_id, check_in_at, check_out_at, method, closed_by
		FROM visit_sessions
		WHERE member_id = $1
		ORDER BY check_in_at DESC
		LIMIT $2`

	rows, err := r.db.Query(ctx, query, memberID, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list visit history", err)
	}
	defer rows.Close()

	var views []*queries.VisitView
	for rows.Next() {
		view, err := scanVisitView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan visit view", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to list visit history", err)
	}
	return views, nil
}

func scanVisitView(row pgx.Row) (*queries.VisitView, error) {
	var view queries.VisitView
	err := row.Scan(&view.ID, &view.MemberID, &view.ClubID,
		&view.CheckInAt, &view.CheckOutAt, &view.Method, &view.ClosedBy)
	if err != nil {
		return nil, err
	}
	return &view, nil
}
