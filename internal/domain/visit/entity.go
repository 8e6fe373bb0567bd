package visit

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidMethod        = errors.New("invalid check-in method")
	ErrSessionAlreadyClosed = errors.New("visit session is already closed")
	ErrInvalidClosedBy      = errors.New("invalid close actor")
)

// Session is one bounded interval of a member being present at a club.
// Sessions are append-only history: a close sets checkOutAt, nothing is
// ever deleted.
type Session struct {
	id         uuid.UUID
	memberID   uuid.UUID
	clubID     uuid.UUID
	checkInAt  time.Time
	checkOutAt *time.Time
	method     Method
	closedBy   *ClosedBy
}

func NewSession(memberID, clubID uuid.UUID, method Method, now time.Time) (*Session, error) {
	if !method.IsValid() {
		return nil, ErrInvalidMethod
	}

	return &Session{
		id:        uuid.New(),
		memberID:  memberID,
		clubID:    clubID,
		checkInAt: now,
		method:    method,
	}, nil
}

func ReconstructSession(
	id, memberID, clubID uuid.UUID,
	checkInAt time.Time,
	checkOutAt *time.Time,
	method Method,
	closedBy *ClosedBy,
) *Session {
	return &Session{
		id:         id,
		memberID:   memberID,
		clubID:     clubID,
		checkInAt:  checkInAt,
		checkOutAt: checkOutAt,
		method:     method,
		closedBy:   closedBy,
	}
}

// Close sets the check-out time. A second close is rejected, not repeated.
func (s *Session) Close(now time.Time, by ClosedBy) error {
	if s.checkOutAt != nil {
		return ErrSessionAlreadyClosed
	}
	if !by.IsValid() {
		return ErrInvalidClosedBy
	}

	t := now
	s.checkOutAt = &t
	s.closedBy = &by
	return nil
}

func (s *Session) IsOpen() bool {
	return s.checkOutAt == nil
}

// IsStale reports whether an open session has outlived the configured
// maximum visit duration.
func (s *Session) IsStale(now time.Time, maxDuration time.Duration) bool {
	return s.IsOpen() && now.Sub(s.checkInAt) > maxDuration
}

func (s *Session) ID() uuid.UUID          { return s.id }
func (s *Session) MemberID() uuid.UUID    { return s.memberID }
func (s *Session) ClubID() uuid.UUID      { return s.clubID }
func (s *Session) CheckInAt() time.Time   { return s.checkInAt }
func (s *Session) CheckOutAt() *time.Time { return s.checkOutAt }
func (s *Session) Method() Method         { return s.method }
func (s *Session) ClosedBy() *ClosedBy    { return s.closedBy }
