package response

import (
	"time"

	"clubhub/internal/domain/kiosk"

	"github.com/google/uuid"
)

type TokenResponse struct {
	Token     string    `json:"token"`
	ClubID    uuid.UUID `json:"club_id"`
	ExpiresAt time.Time `json:"expires_at"`
}

func NewTokenResponse(t *kiosk.Token) TokenResponse {
	return TokenResponse{
		Token:     t.Value(),
		ClubID:    t.ClubID(),
		ExpiresAt: t.ExpiresAt(),
	}
}
