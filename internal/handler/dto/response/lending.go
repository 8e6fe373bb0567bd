package response

import (
	"time"

	"clubhub/internal/domain/lending"

	"github.com/google/uuid"
)

type LoanResponse struct {
	ID           uuid.UUID  `json:"id"`
	ItemID       uuid.UUID  `json:"item_id"`
	BorrowerID   uuid.UUID  `json:"borrower_id"`
	IsGuest      bool       `json:"is_guest"`
	BorrowedAt   time.Time  `json:"borrowed_at"`
	DueAt        time.Time  `json:"due_at"`
	ReturnedAt   *time.Time `json:"returned_at,omitempty"`
	ReturnMethod *string    `json:"return_method,omitempty"`
}

func NewLoanResponse(s *lending.Session) LoanResponse {
	resp := LoanResponse{
		ID:         s.ID(),
		ItemID:     s.ItemID(),
		BorrowerID: s.BorrowerID(),
		IsGuest:    s.IsGuest(),
		BorrowedAt: s.BorrowedAt(),
		DueAt:      s.DueAt(),
		ReturnedAt: s.ReturnedAt(),
	}
	if s.ReturnMethod() != nil {
		method := s.ReturnMethod().String()
		resp.ReturnMethod = &method
	}
	return resp
}

type QueueEntryResponse struct {
	ItemID        uuid.UUID  `json:"item_id"`
	RequesterID   uuid.UUID  `json:"requester_id"`
	EnqueuedAt    time.Time  `json:"enqueued_at"`
	PromotedAt    *time.Time `json:"promoted_at,omitempty"`
	HoldExpiresAt *time.Time `json:"hold_expires_at,omitempty"`
}

func NewQueueEntryResponse(e *lending.QueueEntry) QueueEntryResponse {
	return QueueEntryResponse{
		ItemID:        e.ItemID(),
		RequesterID:   e.RequesterID(),
		EnqueuedAt:    e.EnqueuedAt(),
		PromotedAt:    e.PromotedAt(),
		HoldExpiresAt: e.HoldExpiresAt(),
	}
}
