package queries

import (
	"context"

	"clubhub/internal/infra"
	"clubhub/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrMemberViewNotFound = errs.New("member not found")
	ErrMemberQueryFailed  = errs.New("member query failed")
)

type MemberReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*MemberView, error)
}

type MemberQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*MemberView, error)
}

type memberQueriesImpl struct {
	store MemberReadStore
}

func NewMemberQueries(store MemberReadStore) MemberQueries {
	return &memberQueriesImpl{store: store}
}

func (q *memberQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*MemberView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrMemberViewNotFound
		}
		return nil, errs.Mark(err, ErrMemberQueryFailed)
	}
	return view, nil
}
