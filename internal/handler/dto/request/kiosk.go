package request

import (
	"github.com/google/uuid"
)

type IssueTokenRequest struct {
	ClubID uuid.UUID `json:"club_id" binding:"required"`
}

type RedeemTokenRequest struct {
	Token string `json:"token" binding:"required"`
}
