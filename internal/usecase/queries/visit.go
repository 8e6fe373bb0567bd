package queries

import (
	"context"

	"clubhub/internal/infra"
	"clubhub/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrActiveVisitNotFound = errs.New("no active visit for member")
	ErrVisitQueryFailed    = errs.New("visit query failed")
)

type VisitReadStore interface {
	FindActiveByMember(ctx context.Context, memberID uuid.UUID) (*VisitView, error)
	FindHistoryByMember(ctx context.Context, memberID uuid.UUID, limit int) ([]*VisitView, error)
}

type VisitQueries interface {
	ActiveVisit(ctx context.Context, memberID uuid.UUID) (*VisitView, error)
	History(ctx context.Context, memberID uuid.UUID, limit int) ([]*VisitView, error)
}

type visitQueriesImpl struct {
	store VisitReadStore
}

func NewVisitQueries(store VisitReadStore) VisitQueries {
	return &visitQueriesImpl{store: store}
}

func (q *visitQueriesImpl) ActiveVisit(ctx context.Context, memberID uuid.UUID) (*VisitView, error) {
	view, err := q.store.FindActiveByMember(ctx, memberID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrActiveVisitNotFound
		}
		return nil, errs.Mark(err, ErrVisitQueryFailed)
	}
	return view, nil
}

func (q *visitQueriesImpl) History(ctx context.Context, memberID uuid.UUID, limit int) ([]*VisitView, error) {
	if limit <= 0 {
		limit = 50
	}
	views, err := q.store.FindHistoryByMember(ctx, memberID, limit)
	if err != nil {
		return nil, errs.Mark(err, ErrVisitQueryFailed)
	}
	return views, nil
}
