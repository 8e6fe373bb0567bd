package lending

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrLoanAlreadyReturned = errors.New("loan is already returned")
	ErrInvalidReturnMethod = errors.New("invalid return method")
)

// Session is one bounded loan of an item to a borrower. At most one
// session per item may be active (returnedAt unset); the history is
// append-only.
type Session struct {
	id           uuid.UUID
	itemID       uuid.UUID
	borrowerID   uuid.UUID
	isGuest      bool
	borrowedAt   time.Time
	dueAt        time.Time
	returnedAt   *time.Time
	returnMethod *ReturnMethod
}

func NewSession(item *Item, borrowerID uuid.UUID, isGuest bool, now time.Time) (*Session, error) {
	if err := item.Lendable(); err != nil {
		return nil, err
	}

	return &Session{
		id:         uuid.New(),
		itemID:     item.ID(),
		borrowerID: borrowerID,
		isGuest:    isGuest,
		borrowedAt: now,
		dueAt:      now.Add(item.MaxBorrowDuration()),
	}, nil
}

func ReconstructSession(
	id, itemID, borrowerID uuid.UUID,
	isGuest bool,
	borrowedAt, dueAt time.Time,
	returnedAt *time.Time,
	returnMethod *ReturnMethod,
) *Session {
	return &Session{
		id:           id,
		itemID:       itemID,
		borrowerID:   borrowerID,
		isGuest:      isGuest,
		borrowedAt:   borrowedAt,
		dueAt:        dueAt,
		returnedAt:   returnedAt,
		returnMethod: returnMethod,
	}
}

// Return closes the loan. A second return is rejected, never repeated;
// the system sweep and an interactive return racing on the same loan
// resolve to exactly one winner at the ledger lock, and this guard is
// the backstop.
func (s *Session) Return(now time.Time, method ReturnMethod) error {
	if s.returnedAt != nil {
		return ErrLoanAlreadyReturned
	}
	if !method.IsValid() {
		return ErrInvalidReturnMethod
	}

	t := now
	s.returnedAt = &t
	s.returnMethod = &method
	return nil
}

func (s *Session) IsActive() bool {
	return s.returnedAt == nil
}

func (s *Session) IsOverdue(now time.Time) bool {
	return s.IsActive() && now.After(s.dueAt)
}

func (s *Session) ID() uuid.UUID               { return s.id }
func (s *Session) ItemID() uuid.UUID           { return s.itemID }
func (s *Session) BorrowerID() uuid.UUID       { return s.borrowerID }
func (s *Session) IsGuest() bool               { return s.isGuest }
func (s *Session) BorrowedAt() time.Time       { return s.borrowedAt }
func (s *Session) DueAt() time.Time            { return s.dueAt }
func (s *Session) ReturnedAt() *time.Time      { return s.returnedAt }
func (s *Session) ReturnMethod() *ReturnMethod { return s.returnMethod }
