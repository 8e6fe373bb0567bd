//go:build unit

package kiosk_test

import (
	"testing"
	"time"

	"clubhub/internal/domain/kiosk"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewToken(t *testing.T) {
	issuedAt := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	clubID := uuid.New()

	tok, err := kiosk.NewToken(clubID, issuedAt, 30*time.Second)
	require.NoError(t, err)

	assert.NotEmpty(t, tok.Value())
	assert.Equal(t, clubID, tok.ClubID())
	assert.Equal(t, issuedAt.Add(30*time.Second), tok.ExpiresAt())
	assert.False(t, tok.Consumed())

	other, err := kiosk.NewToken(clubID, issuedAt, 30*time.Second)
	require.NoError(t, err)
	assert.NotEqual(t, tok.Value(), other.Value(), "token values must be unique")
}

func TestTokenRedeem(t *testing.T) {
	issuedAt := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

	t.Run("redeem within ttl succeeds once", func(t *testing.T) {
		tok, err := kiosk.NewToken(uuid.New(), issuedAt, 30*time.Second)
		require.NoError(t, err)

		require.NoError(t, tok.Redeem(issuedAt.Add(10*time.Second)))
		assert.True(t, tok.Consumed())

		err = tok.Redeem(issuedAt.Add(11 * time.Second))
		assert.ErrorIs(t, err, kiosk.ErrTokenAlreadyUsed)
	})

	t.Run("expired token", func(t *testing.T) {
		tok, err := kiosk.NewToken(uuid.New(), issuedAt, 30*time.Second)
		require.NoError(t, err)

		err = tok.Redeem(issuedAt.Add(31 * time.Second))
		assert.ErrorIs(t, err, kiosk.ErrTokenExpired)
		assert.False(t, tok.Consumed())
	})

	t.Run("expired wins over consumed", func(t *testing.T) {
		tok, err := kiosk.NewToken(uuid.New(), issuedAt, 30*time.Second)
		require.NoError(t, err)
		require.NoError(t, tok.Redeem(issuedAt))

		err = tok.Redeem(issuedAt.Add(time.Minute))
		assert.ErrorIs(t, err, kiosk.ErrTokenExpired)
	})
}
