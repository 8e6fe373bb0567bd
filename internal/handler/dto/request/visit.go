package request

import (
	"github.com/google/uuid"
)

// CheckInRequest is the staff-driven manual check-in; kiosk check-ins
// arrive through token redemption instead.
type CheckInRequest struct {
	MemberID uuid.UUID `json:"member_id" binding:"required"`
	ClubID   uuid.UUID `json:"club_id" binding:"required"`
}
