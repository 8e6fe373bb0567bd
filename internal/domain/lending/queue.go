package lending

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEntryNotPromoted     = errors.New("queue entry is not promoted")
	ErrEntryAlreadyPromoted = errors.New("queue entry is already promoted")
)

// QueueEntry is one waiting requester for a contended item. Order is
// strict arrival order by enqueuedAt; a requester appears at most once
// per item queue.
//
// Promotion does not borrow on the requester's behalf. The head entry is
// stamped with a hold window during which only that requester may borrow
// the item; a lapsed hold drops the entry and the next one is promoted.
type QueueEntry struct {
	itemID        uuid.UUID
	requesterID   uuid.UUID
	enqueuedAt    time.Time
	promotedAt    *time.Time
	holdExpiresAt *time.Time
}

func NewQueueEntry(itemID, requesterID uuid.UUID, now time.Time) *QueueEntry {
	return &QueueEntry{
		itemID:      itemID,
		requesterID: requesterID,
		enqueuedAt:  now,
	}
}

func ReconstructQueueEntry(
	itemID, requesterID uuid.UUID,
	enqueuedAt time.Time,
	promotedAt, holdExpiresAt *time.Time,
) *QueueEntry {
	return &QueueEntry{
		itemID:        itemID,
		requesterID:   requesterID,
		enqueuedAt:    enqueuedAt,
		promotedAt:    promotedAt,
		holdExpiresAt: holdExpiresAt,
	}
}

func (e *QueueEntry) Promote(now time.Time, grace time.Duration) error {
	if e.promotedAt != nil {
		return ErrEntryAlreadyPromoted
	}

	promoted := now
	expires := now.Add(grace)
	e.promotedAt = &promoted
	e.holdExpiresAt = &expires
	return nil
}

func (e *QueueEntry) IsPromoted() bool {
	return e.promotedAt != nil
}

func (e *QueueEntry) HoldLapsed(now time.Time) bool {
	return e.holdExpiresAt != nil && now.After(*e.holdExpiresAt)
}

// Holds reports whether the item is currently reserved for the given
// requester.
func (e *QueueEntry) Holds(requesterID uuid.UUID, now time.Time) bool {
	return e.IsPromoted() && !e.HoldLapsed(now) && e.requesterID == requesterID
}

func (e *QueueEntry) ItemID() uuid.UUID         { return e.itemID }
func (e *QueueEntry) RequesterID() uuid.UUID    { return e.requesterID }
func (e *QueueEntry) EnqueuedAt() time.Time     { return e.enqueuedAt }
func (e *QueueEntry) PromotedAt() *time.Time    { return e.promotedAt }
func (e *QueueEntry) HoldExpiresAt() *time.Time { return e.holdExpiresAt }
