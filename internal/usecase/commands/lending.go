package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"clubhub/internal/domain/lending"
	"clubhub/internal/infra"
	"clubhub/internal/pkg/clock"
	"clubhub/internal/pkg/config"
	"clubhub/internal/pkg/errs"
	"clubhub/internal/pkg/keymutex"

	"github.com/google/uuid"
)

var (
	ErrItemNotFound        = errs.New("item not found")
	ErrItemUnavailable     = errs.New("item is not lendable")
	ErrItemAlreadyBorrowed = errs.New("item already has an active loan")
	ErrItemReserved        = errs.New("item is reserved for a promoted queue requester")
	ErrNoActiveLoan        = errs.New("no active loan for item")
	ErrAlreadyQueued       = errs.New("requester already queued for item")
	ErrItemAvailable       = errs.New("item is available, borrow it instead of queueing")
	ErrLendingStoreFailed  = errs.New("lending store operation failed")
)

type ItemRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*lending.Item, error)
	UpdateStatus(ctx context.Context, item *lending.Item) error
}

type LendingRepository interface {
	Create(ctx context.Context, s *lending.Session) error
	// FindActiveByItem returns the item's open loan, KindNotFound when
	// the item is not on loan.
	FindActiveByItem(ctx context.Context, itemID uuid.UUID) (*lending.Session, error)
	Update(ctx context.Context, s *lending.Session) error
	FindOverdueBefore(ctx context.Context, now time.Time) ([]*lending.Session, error)
	FindActiveByBorrower(ctx context.Context, borrowerID uuid.UUID) ([]*lending.Session, error)
}

type QueueRepository interface {
	// Append adds a waiting requester; KindDuplicateKey when the
	// requester is already queued for the item.
	Append(ctx context.Context, e *lending.QueueEntry) error
	Remove(ctx context.Context, itemID, requesterID uuid.UUID) (bool, error)
	// FindByItem returns entries in strict arrival order.
	FindByItem(ctx context.Context, itemID uuid.UUID) ([]*lending.QueueEntry, error)
	Update(ctx context.Context, e *lending.QueueEntry) error
	// FindLapsedHolds returns promoted entries whose hold window has
	// passed.
	FindLapsedHolds(ctx context.Context, now time.Time) ([]*lending.QueueEntry, error)
}

type LendingCommands interface {
	Borrow(ctx context.Context, itemID, borrowerID uuid.UUID, isGuest bool) (*lending.Session, error)
	Return(ctx context.Context, itemID uuid.UUID, method lending.ReturnMethod) (*lending.Session, error)
	Enqueue(ctx context.Context, itemID, requesterID uuid.UUID) (*lending.QueueEntry, error)
	// Dequeue is an idempotent withdrawal; removing the hold-owning
	// entry promotes the next one.
	Dequeue(ctx context.Context, itemID, requesterID uuid.UUID) error
	// AutoReturnOverdue replays the Return path for every loan with
	// dueAt before now, with method SYSTEM. Per-item failures are
	// logged and retried on the next sweep.
	AutoReturnOverdue(ctx context.Context, now time.Time) (int, error)
	// ExpireLapsedHolds drops promoted entries whose grace window passed
	// and promotes the next waiting requester.
	ExpireLapsedHolds(ctx context.Context, now time.Time) (int, error)
}

type lendingCommandsImpl struct {
	items ItemRepository
	loans LendingRepository
	queue QueueRepository
	locks *keymutex.KeyedMutex
	clock clock.Clock
	cfg   config.LendingConfig
}

func NewLendingCommands(
	items ItemRepository,
	loans LendingRepository,
	queue QueueRepository,
	locks *keymutex.KeyedMutex,
	clk clock.Clock,
	cfg config.LendingConfig,
) LendingCommands {
	return &lendingCommandsImpl{
		items: items,
		loans: loans,
		queue: queue,
		locks: locks,
		clock: clk,
		cfg:   cfg,
	}
}

func (l *lendingCommandsImpl) Borrow(ctx context.Context, itemID, borrowerID uuid.UUID, isGuest bool) (*lending.Session, error) {
	unlock := l.locks.Lock(itemLockPrefix + itemID.String())
	defer unlock()

	item, err := l.items.FindByID(ctx, itemID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, errs.Mark(err, ErrLendingStoreFailed)
	}

	if err := item.Lendable(); err != nil {
		return nil, ErrItemUnavailable
	}

	_, err = l.loans.FindActiveByItem(ctx, itemID)
	switch {
	case err == nil:
		return nil, ErrItemAlreadyBorrowed
	case !infra.IsKind(err, infra.KindNotFound):
		return nil, errs.Mark(err, ErrLendingStoreFailed)
	}

	if err := l.claimQueueHead(ctx, itemID, borrowerID); err != nil {
		return nil, err
	}

	session, err := lending.NewSession(item, borrowerID, isGuest, l.clock.Now())
	if err != nil {
		return nil, err
	}

	if err := l.loans.Create(ctx, session); err != nil {
		if infra.IsKind(err, infra.KindConflict) || infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrItemAlreadyBorrowed
		}
		return nil, errs.Mark(err, ErrLendingStoreFailed)
	}

	item.MarkBorrowed()
	if err := l.items.UpdateStatus(ctx, item); err != nil {
		return nil, errs.Mark(err, ErrLendingStoreFailed)
	}

	return session, nil
}

// claimQueueHead enforces the reservation on a just-returned item: while
// a queue exists, only the head requester may borrow, and doing so
// consumes their entry. Lapsed holds found here are dropped inline
// rather than waiting for the sweep. Item lock must be held.
func (l *lendingCommandsImpl) claimQueueHead(ctx context.Context, itemID, borrowerID uuid.UUID) error {
	now := l.clock.Now()

	entries, err := l.queue.FindByItem(ctx, itemID)
	if err != nil {
		return errs.Mark(err, ErrLendingStoreFailed)
	}

	for _, head := range entries {
		if head.IsPromoted() && head.HoldLapsed(now) {
			if _, err := l.queue.Remove(ctx, itemID, head.RequesterID()); err != nil {
				return errs.Mark(err, ErrLendingStoreFailed)
			}
			continue
		}

		if head.RequesterID() != borrowerID {
			return ErrItemReserved
		}

		if _, err := l.queue.Remove(ctx, itemID, borrowerID); err != nil {
			return errs.Mark(err, ErrLendingStoreFailed)
		}
		return nil
	}

	return nil
}

func (l *lendingCommandsImpl) Return(ctx context.Context, itemID uuid.UUID, method lending.ReturnMethod) (*lending.Session, error) {
	unlock := l.locks.Lock(itemLockPrefix + itemID.String())
	defer unlock()

	return l.returnLocked(ctx, itemID, method)
}

// returnLocked is the single return transition, shared by interactive
// returns and the overdue sweep so time-driven and caller-driven closes
// can never diverge. Item lock must be held.
func (l *lendingCommandsImpl) returnLocked(ctx context.Context, itemID uuid.UUID, method lending.ReturnMethod) (*lending.Session, error) {
	session, err := l.loans.FindActiveByItem(ctx, itemID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrNoActiveLoan
		}
		return nil, errs.Mark(err, ErrLendingStoreFailed)
	}

	now := l.clock.Now()
	if err := session.Return(now, method); err != nil {
		return nil, errs.Mark(err, ErrNoActiveLoan)
	}

	if err := l.loans.Update(ctx, session); err != nil {
		return nil, errs.Mark(err, ErrLendingStoreFailed)
	}

	item, err := l.items.FindByID(ctx, itemID)
	if err != nil {
		return nil, errs.Mark(err, ErrLendingStoreFailed)
	}
	item.MarkAvailable()
	if err := l.items.UpdateStatus(ctx, item); err != nil {
		return nil, errs.Mark(err, ErrLendingStoreFailed)
	}

	if err := l.promoteHead(ctx, itemID, now); err != nil {
		return nil, err
	}

	return session, nil
}

// promoteHead stamps the grace-window hold on the first unpromoted
// entry. The requester is notified, not auto-borrowed: binding an item
// to an absent member would strand it. Item lock must be held.
func (l *lendingCommandsImpl) promoteHead(ctx context.Context, itemID uuid.UUID, now time.Time) error {
	entries, err := l.queue.FindByItem(ctx, itemID)
	if err != nil {
		return errs.Mark(err, ErrLendingStoreFailed)
	}

	for _, head := range entries {
		if head.IsPromoted() {
			if head.HoldLapsed(now) {
				if _, err := l.queue.Remove(ctx, itemID, head.RequesterID()); err != nil {
					return errs.Mark(err, ErrLendingStoreFailed)
				}
				continue
			}
			// Active hold already in place.
			return nil
		}

		if err := head.Promote(now, l.cfg.PromotionGrace); err != nil {
			return errs.Mark(err, ErrLendingStoreFailed)
		}
		if err := l.queue.Update(ctx, head); err != nil {
			return errs.Mark(err, ErrLendingStoreFailed)
		}

		slog.Info("queue head promoted",
			"item_id", itemID,
			"requester_id", head.RequesterID(),
			"hold_expires_at", head.HoldExpiresAt())
		return nil
	}

	return nil
}

func (l *lendingCommandsImpl) Enqueue(ctx context.Context, itemID, requesterID uuid.UUID) (*lending.QueueEntry, error) {
	unlock := l.locks.Lock(itemLockPrefix + itemID.String())
	defer unlock()

	if _, err := l.items.FindByID(ctx, itemID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, errs.Mark(err, ErrLendingStoreFailed)
	}

	_, err := l.loans.FindActiveByItem(ctx, itemID)
	switch {
	case infra.IsKind(err, infra.KindNotFound):
		// Nothing to wait for; the caller should borrow directly.
		return nil, ErrItemAvailable
	case err != nil:
		return nil, errs.Mark(err, ErrLendingStoreFailed)
	}

	entry := lending.NewQueueEntry(itemID, requesterID, l.clock.Now())
	if err := l.queue.Append(ctx, entry); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrAlreadyQueued
		}
		return nil, errs.Mark(err, ErrLendingStoreFailed)
	}

	return entry, nil
}

func (l *lendingCommandsImpl) Dequeue(ctx context.Context, itemID, requesterID uuid.UUID) error {
	unlock := l.locks.Lock(itemLockPrefix + itemID.String())
	defer unlock()

	entries, err := l.queue.FindByItem(ctx, itemID)
	if err != nil {
		return errs.Mark(err, ErrLendingStoreFailed)
	}

	var withdrawn *lending.QueueEntry
	for _, e := range entries {
		if e.RequesterID() == requesterID {
			withdrawn = e
			break
		}
	}
	if withdrawn == nil {
		// Idempotent: withdrawing an absent entry is a no-op.
		return nil
	}

	if _, err := l.queue.Remove(ctx, itemID, requesterID); err != nil {
		return errs.Mark(err, ErrLendingStoreFailed)
	}

	// If the withdrawn entry owned the reservation, pass it along.
	if withdrawn.IsPromoted() {
		if err := l.promoteHead(ctx, itemID, l.clock.Now()); err != nil {
			return err
		}
	}

	return nil
}

func (l *lendingCommandsImpl) AutoReturnOverdue(ctx context.Context, now time.Time) (int, error) {
	overdue, err := l.loans.FindOverdueBefore(ctx, now)
	if err != nil {
		return 0, errs.Mark(err, ErrLendingStoreFailed)
	}

	returned := 0
	for _, s := range overdue {
		if err := l.autoReturnOne(ctx, s.ItemID()); err != nil {
			// A corrupt record must not block the sweep; the next tick
			// retries it.
			slog.Warn("failed to auto-return overdue loan",
				"loan_id", s.ID(), "item_id", s.ItemID(), "error", err.Error())
			continue
		}
		returned++
	}

	return returned, nil
}

func (l *lendingCommandsImpl) autoReturnOne(ctx context.Context, itemID uuid.UUID) error {
	unlock := l.locks.Lock(itemLockPrefix + itemID.String())
	defer unlock()

	// Whoever took the lock first wins; a user return that beat us turns
	// this into ErrNoActiveLoan, which is the correct outcome.
	_, err := l.returnLocked(ctx, itemID, lending.ReturnBySystem)
	if errors.Is(err, ErrNoActiveLoan) {
		return nil
	}
	return err
}

func (l *lendingCommandsImpl) ExpireLapsedHolds(ctx context.Context, now time.Time) (int, error) {
	lapsed, err := l.queue.FindLapsedHolds(ctx, now)
	if err != nil {
		return 0, errs.Mark(err, ErrLendingStoreFailed)
	}

	expired := 0
	for _, e := range lapsed {
		if err := l.expireHoldOne(ctx, e.ItemID(), e.RequesterID(), now); err != nil {
			slog.Warn("failed to expire lapsed hold",
				"item_id", e.ItemID(), "requester_id", e.RequesterID(), "error", err.Error())
			continue
		}
		expired++
	}

	return expired, nil
}

func (l *lendingCommandsImpl) expireHoldOne(ctx context.Context, itemID, requesterID uuid.UUID, now time.Time) error {
	unlock := l.locks.Lock(itemLockPrefix + itemID.String())
	defer unlock()

	removed, err := l.queue.Remove(ctx, itemID, requesterID)
	if err != nil {
		return errs.Mark(err, ErrLendingStoreFailed)
	}
	if !removed {
		// The requester borrowed or withdrew while we waited for the lock.
		return nil
	}

	// Only promote a successor while the item is actually free.
	_, err = l.loans.FindActiveByItem(ctx, itemID)
	switch {
	case infra.IsKind(err, infra.KindNotFound):
		return l.promoteHead(ctx, itemID, now)
	case err != nil:
		return errs.Mark(err, ErrLendingStoreFailed)
	default:
		return nil
	}
}
