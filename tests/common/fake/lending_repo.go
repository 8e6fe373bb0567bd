//go:build unit

package fake

import (
	"context"
	"sort"
	"sync"
	"time"

	"clubhub/internal/domain/lending"
	"clubhub/internal/infra"

	"github.com/google/uuid"
)

type ItemRepo struct {
	mu    sync.Mutex
	items map[uuid.UUID]*lending.Item
}

func NewItemRepo(items ...*lending.Item) *ItemRepo {
	r := &ItemRepo{items: make(map[uuid.UUID]*lending.Item)}
	for _, i := range items {
		r.items[i.ID()] = cloneItem(i)
	}
	return r
}

func cloneItem(i *lending.Item) *lending.Item {
	return lending.ReconstructItem(i.ID(), i.ClubID(), i.Name(), i.Status(), i.MaxBorrowDuration())
}

func (r *ItemRepo) FindByID(_ context.Context, id uuid.UUID) (*lending.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i, ok := r.items[id]
	if !ok {
		return nil, infra.WrapRepoErr("item not found", nil, infra.KindNotFound)
	}
	return cloneItem(i), nil
}

func (r *ItemRepo) UpdateStatus(_ context.Context, item *lending.Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[item.ID()]; !ok {
		return infra.WrapRepoErr("item not found", nil, infra.KindNotFound)
	}
	r.items[item.ID()] = cloneItem(item)
	return nil
}

type LendingRepo struct {
	mu    sync.Mutex
	loans map[uuid.UUID]*lending.Session
}

func NewLendingRepo() *LendingRepo {
	return &LendingRepo{loans: make(map[uuid.UUID]*lending.Session)}
}

func cloneLoan(s *lending.Session) *lending.Session {
	return lending.ReconstructSession(
		s.ID(), s.ItemID(), s.BorrowerID(), s.IsGuest(),
		s.BorrowedAt(), s.DueAt(), s.ReturnedAt(), s.ReturnMethod(),
	)
}

func (r *LendingRepo) Create(_ context.Context, s *lending.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.loans {
		if existing.ItemID() == s.ItemID() && existing.IsActive() {
			return infra.WrapRepoErr("active loan exists", nil, infra.KindConflict)
		}
	}

	r.loans[s.ID()] = cloneLoan(s)
	return nil
}

func (r *LendingRepo) FindActiveByItem(_ context.Context, itemID uuid.UUID) (*lending.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, s := range r.loans {
		if s.ItemID() == itemID && s.IsActive() {
			return cloneLoan(s), nil
		}
	}
	return nil, infra.WrapRepoErr("no active loan", nil, infra.KindNotFound)
}

func (r *LendingRepo) Update(_ context.Context, s *lending.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.loans[s.ID()]; !ok {
		return infra.WrapRepoErr("loan not found", nil, infra.KindNotFound)
	}
	r.loans[s.ID()] = cloneLoan(s)
	return nil
}

func (r *LendingRepo) FindOverdueBefore(_ context.Context, now time.Time) ([]*lending.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var result []*lending.Session
	for _, s := range r.loans {
		if s.IsActive() && now.After(s.DueAt()) {
			result = append(result, cloneLoan(s))
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].DueAt().Before(result[j].DueAt())
	})
	return result, nil
}

func (r *LendingRepo) FindActiveByBorrower(_ context.Context, borrowerID uuid.UUID) ([]*lending.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var result []*lending.Session
	for _, s := range r.loans {
		if s.BorrowerID() == borrowerID && s.IsActive() {
			result = append(result, cloneLoan(s))
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].BorrowedAt().Before(result[j].BorrowedAt())
	})
	return result, nil
}

type QueueRepo struct {
	mu      sync.Mutex
	entries map[uuid.UUID][]*lending.QueueEntry // itemID -> arrival order
}

func NewQueueRepo() *QueueRepo {
	return &QueueRepo{entries: make(map[uuid.UUID][]*lending.QueueEntry)}
}

func cloneEntry(e *lending.QueueEntry) *lending.QueueEntry {
	return lending.ReconstructQueueEntry(
		e.ItemID(), e.RequesterID(), e.EnqueuedAt(), e.PromotedAt(), e.HoldExpiresAt(),
	)
}

func (r *QueueRepo) Append(_ context.Context, e *lending.QueueEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.entries[e.ItemID()] {
		if existing.RequesterID() == e.RequesterID() {
			return infra.WrapRepoErr("requester already queued", nil, infra.KindDuplicateKey)
		}
	}

	r.entries[e.ItemID()] = append(r.entries[e.ItemID()], cloneEntry(e))
	return nil
}

func (r *QueueRepo) Remove(_ context.Context, itemID, requesterID uuid.UUID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	queue := r.entries[itemID]
	for i, e := range queue {
		if e.RequesterID() == requesterID {
			r.entries[itemID] = append(queue[:i:i], queue[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (r *QueueRepo) FindByItem(_ context.Context, itemID uuid.UUID) ([]*lending.QueueEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	queue := r.entries[itemID]
	result := make([]*lending.QueueEntry, len(queue))
	for i, e := range queue {
		result[i] = cloneEntry(e)
	}
	return result, nil
}

func (r *QueueRepo) Update(_ context.Context, e *lending.QueueEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	queue := r.entries[e.ItemID()]
	for i, existing := range queue {
		if existing.RequesterID() == e.RequesterID() {
			queue[i] = cloneEntry(e)
			return nil
		}
	}
	return infra.WrapRepoErr("queue entry not found", nil, infra.KindNotFound)
}

func (r *QueueRepo) FindLapsedHolds(_ context.Context, now time.Time) ([]*lending.QueueEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var result []*lending.QueueEntry
	for _, queue := range r.entries {
		for _, e := range queue {
			if e.IsPromoted() && e.HoldLapsed(now) {
				result = append(result, cloneEntry(e))
			}
		}
	}
	return result, nil
}
