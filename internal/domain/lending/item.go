package lending

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrItemUnavailable = errors.New("item is not lendable")
	ErrInvalidStatus   = errors.New("invalid item status")
	ErrInvalidDuration = errors.New("max borrow duration must be positive")
)

type Item struct {
	id                uuid.UUID
	clubID            uuid.UUID
	name              string
	status            Status
	maxBorrowDuration time.Duration
}

func NewItem(clubID uuid.UUID, name string, maxBorrowDuration time.Duration) (*Item, error) {
	if maxBorrowDuration <= 0 {
		return nil, ErrInvalidDuration
	}

	return &Item{
		id:                uuid.New(),
		clubID:            clubID,
		name:              name,
		status:            StatusAvailable,
		maxBorrowDuration: maxBorrowDuration,
	}, nil
}

func ReconstructItem(id, clubID uuid.UUID, name string, status Status, maxBorrowDuration time.Duration) *Item {
	return &Item{
		id:                id,
		clubID:            clubID,
		name:              name,
		status:            status,
		maxBorrowDuration: maxBorrowDuration,
	}
}

// Lendable rejects items pulled from circulation. A BORROWED item is not
// covered here; whether an active loan exists is the ledger's check.
func (i *Item) Lendable() error {
	switch i.status {
	case StatusMaintenance, StatusMissing:
		return ErrItemUnavailable
	default:
		return nil
	}
}

func (i *Item) MarkBorrowed() {
	i.status = StatusBorrowed
}

func (i *Item) MarkAvailable() {
	i.status = StatusAvailable
}

func (i *Item) ID() uuid.UUID                    { return i.id }
func (i *Item) ClubID() uuid.UUID                { return i.clubID }
func (i *Item) Name() string                     { return i.name }
func (i *Item) Status() Status                   { return i.status }
func (i *Item) MaxBorrowDuration() time.Duration { return i.maxBorrowDuration }
