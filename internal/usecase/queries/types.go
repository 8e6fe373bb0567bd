package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type VisitView struct {
	ID         uuid.UUID  `json:"id"`
	MemberID   uuid.UUID  `json:"member_id"`
	ClubID     uuid.UUID  `json:"club_id"`
	CheckInAt  time.Time  `json:"check_in_at"`
	CheckOutAt *time.Time `json:"check_out_at,omitempty"`
	Method     string     `json:"method"`
	ClosedBy   *string    `json:"closed_by,omitempty"`
}

type LoanView struct {
	ID           uuid.UUID  `json:"id"`
	ItemID       uuid.UUID  `json:"item_id"`
	ItemName     string     `json:"item_name"`
	BorrowerID   uuid.UUID  `json:"borrower_id"`
	IsGuest      bool       `json:"is_guest"`
	BorrowedAt   time.Time  `json:"borrowed_at"`
	DueAt        time.Time  `json:"due_at"`
	ReturnedAt   *time.Time `json:"returned_at,omitempty"`
	ReturnMethod *string    `json:"return_method,omitempty"`
}

type QueueEntryView struct {
	RequesterID   uuid.UUID  `json:"requester_id"`
	EnqueuedAt    time.Time  `json:"enqueued_at"`
	Position      int        `json:"position"`
	PromotedAt    *time.Time `json:"promoted_at,omitempty"`
	HoldExpiresAt *time.Time `json:"hold_expires_at,omitempty"`
}

type ItemView struct {
	ID               uuid.UUID        `json:"id"`
	ClubID           uuid.UUID        `json:"club_id"`
	Name             string           `json:"name"`
	Status           string           `json:"status"`
	MaxBorrowMinutes int              `json:"max_borrow_minutes"`
	ActiveLoan       *LoanView        `json:"active_loan,omitempty"`
	Queue            []QueueEntryView `json:"queue"`
}

type MemberView struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	Role     string    `json:"role"`
	IsActive bool      `json:"is_active"`
}
