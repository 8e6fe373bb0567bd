package request

import (
	"github.com/google/uuid"
)

type BorrowRequest struct {
	// BorrowerID lets staff borrow on behalf of a guest; members
	// borrowing for themselves leave it empty.
	BorrowerID *uuid.UUID `json:"borrower_id,omitempty"`
	IsGuest    bool       `json:"is_guest,omitempty"`
}
