package response

import (
	"time"

	"clubhub/internal/domain/visit"

	"github.com/google/uuid"
)

type VisitResponse struct {
	ID         uuid.UUID  `json:"id"`
	MemberID   uuid.UUID  `json:"member_id"`
	ClubID     uuid.UUID  `json:"club_id"`
	CheckInAt  time.Time  `json:"check_in_at"`
	CheckOutAt *time.Time `json:"check_out_at,omitempty"`
	Method     string     `json:"method"`
	ClosedBy   *string    `json:"closed_by,omitempty"`
}

func NewVisitResponse(s *visit.Session) VisitResponse {
	resp := VisitResponse{
		ID:         s.ID(),
		MemberID:   s.MemberID(),
		ClubID:     s.ClubID(),
		CheckInAt:  s.CheckInAt(),
		CheckOutAt: s.CheckOutAt(),
		Method:     s.Method().String(),
	}
	if s.ClosedBy() != nil {
		closedBy := s.ClosedBy().String()
		resp.ClosedBy = &closedBy
	}
	return resp
}
