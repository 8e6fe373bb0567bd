package queries

import (
	"context"

	"clubhub/internal/infra"
	"clubhub/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrItemViewNotFound   = errs.New("item not found")
	ErrNotQueued          = errs.New("requester is not queued for item")
	ErrLendingQueryFailed = errs.New("lending query failed")
)

type LendingReadStore interface {
	// FindItemView assembles item status, active loan and the ordered
	// queue in one read.
	FindItemView(ctx context.Context, itemID uuid.UUID) (*ItemView, error)
	FindLoansByBorrower(ctx context.Context, borrowerID uuid.UUID, limit int) ([]*LoanView, error)
}

type LendingQueries interface {
	ItemStatus(ctx context.Context, itemID uuid.UUID) (*ItemView, error)
	// QueuePosition is 1-based; the hold owner is position 1.
	QueuePosition(ctx context.Context, itemID, requesterID uuid.UUID) (int, error)
	MemberLoans(ctx context.Context, borrowerID uuid.UUID, limit int) ([]*LoanView, error)
}

type lendingQueriesImpl struct {
	store LendingReadStore
}

func NewLendingQueries(store LendingReadStore) LendingQueries {
	return &lendingQueriesImpl{store: store}
}

func (q *lendingQueriesImpl) ItemStatus(ctx context.Context, itemID uuid.UUID) (*ItemView, error) {
	view, err := q.store.FindItemView(ctx, itemID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrItemViewNotFound
		}
		return nil, errs.Mark(err, ErrLendingQueryFailed)
	}
	return view, nil
}

func (q *lendingQueriesImpl) QueuePosition(ctx context.Context, itemID, requesterID uuid.UUID) (int, error) {
	view, err := q.ItemStatus(ctx, itemID)
	if err != nil {
		return 0, err
	}

	for _, entry := range view.Queue {
		if entry.RequesterID == requesterID {
			return entry.Position, nil
		}
	}
	return 0, ErrNotQueued
}

func (q *lendingQueriesImpl) MemberLoans(ctx context.Context, borrowerID uuid.UUID, limit int) ([]*LoanView, error) {
	if limit <= 0 {
		limit = 50
	}
	loans, err := q.store.FindLoansByBorrower(ctx, borrowerID, limit)
	if err != nil {
		return nil, errs.Mark(err, ErrLendingQueryFailed)
	}
	return loans, nil
}
