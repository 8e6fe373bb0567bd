package response

import (
	"github.com/google/uuid"
)

type LoginResponse struct {
	AccessToken string    `json:"access_token"`
	MemberID    uuid.UUID `json:"member_id"`
	Role        string    `json:"role"`
}

type RefreshResponse struct {
	AccessToken string `json:"access_token"`
}
