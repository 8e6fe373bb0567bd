//go:build unit

package commands_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"clubhub/internal/pkg/clock"
	"clubhub/internal/pkg/config"
	"clubhub/internal/pkg/keymutex"
	"clubhub/internal/usecase/commands"
	"clubhub/tests/common/fake"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newKioskCommands(t *testing.T) (commands.KioskCommands, *clock.MockClock) {
	t.Helper()

	cfg := config.NewTestConfig()
	clk := clock.NewMockClock(time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC))
	locks := keymutex.New()
	visits := commands.NewVisitCommands(fake.NewVisitRepo(), locks, clk, cfg.Visit)
	kiosk := commands.NewKioskCommands(fake.NewKioskTokenRepo(), visits, locks, clk, cfg.Kiosk)
	return kiosk, clk
}

func TestKioskCommands_IssueAndRedeem(t *testing.T) {
	t.Parallel()

	kiosk, clk := newKioskCommands(t)
	clubID := uuid.New()
	memberID := uuid.New()

	token, err := kiosk.IssueToken(context.Background(), clubID)
	require.NoError(t, err)
	assert.NotEmpty(t, token.Value())
	assert.Equal(t, clk.Now().Add(30*time.Second), token.ExpiresAt())

	session, err := kiosk.RedeemToken(context.Background(), token.Value(), memberID)
	require.NoError(t, err)
	assert.Equal(t, memberID, session.MemberID())
	assert.Equal(t, clubID, session.ClubID())
}

func TestKioskCommands_IssueToken_InvalidatesPrior(t *testing.T) {
	t.Parallel()

	kiosk, _ := newKioskCommands(t)
	clubID := uuid.New()

	first, err := kiosk.IssueToken(context.Background(), clubID)
	require.NoError(t, err)

	second, err := kiosk.IssueToken(context.Background(), clubID)
	require.NoError(t, err)
	assert.NotEqual(t, first.Value(), second.Value())

	// The refreshed QR supersedes the stale one still on screen.
	_, err = kiosk.RedeemToken(context.Background(), first.Value(), uuid.New())
	assert.ErrorIs(t, err, commands.ErrTokenNotFound)

	_, err = kiosk.RedeemToken(context.Background(), second.Value(), uuid.New())
	assert.NoError(t, err)
}

func TestKioskCommands_RedeemToken_Rejections(t *testing.T) {
	t.Parallel()

	t.Run("unknown token", func(t *testing.T) {
		t.Parallel()

		kiosk, _ := newKioskCommands(t)
		_, err := kiosk.RedeemToken(context.Background(), "NOSUCHTOKEN", uuid.New())
		assert.ErrorIs(t, err, commands.ErrTokenNotFound)
	})

	t.Run("expired token", func(t *testing.T) {
		t.Parallel()

		kiosk, clk := newKioskCommands(t)
		token, err := kiosk.IssueToken(context.Background(), uuid.New())
		require.NoError(t, err)

		clk.Add(31 * time.Second)
		_, err = kiosk.RedeemToken(context.Background(), token.Value(), uuid.New())
		assert.ErrorIs(t, err, commands.ErrTokenExpired)
	})

	t.Run("second redemption", func(t *testing.T) {
		t.Parallel()

		kiosk, _ := newKioskCommands(t)
		token, err := kiosk.IssueToken(context.Background(), uuid.New())
		require.NoError(t, err)

		_, err = kiosk.RedeemToken(context.Background(), token.Value(), uuid.New())
		require.NoError(t, err)

		_, err = kiosk.RedeemToken(context.Background(), token.Value(), uuid.New())
		assert.ErrorIs(t, err, commands.ErrTokenAlreadyUsed)
	})
}

func TestKioskCommands_RedeemToken_BurnedEvenIfCheckInRejected(t *testing.T) {
	t.Parallel()

	kiosk, _ := newKioskCommands(t)
	memberID := uuid.New()

	token, err := kiosk.IssueToken(context.Background(), uuid.New())
	require.NoError(t, err)
	_, err = kiosk.RedeemToken(context.Background(), token.Value(), memberID)
	require.NoError(t, err)

	// Member is still checked in; a fresh token scan fails the check-in
	// but consumes the token all the same.
	token2, err := kiosk.IssueToken(context.Background(), uuid.New())
	require.NoError(t, err)
	_, err = kiosk.RedeemToken(context.Background(), token2.Value(), memberID)
	assert.ErrorIs(t, err, commands.ErrAlreadyCheckedIn)

	_, err = kiosk.RedeemToken(context.Background(), token2.Value(), uuid.New())
	assert.ErrorIs(t, err, commands.ErrTokenAlreadyUsed)
}

func TestKioskCommands_RedeemToken_ConcurrentSingleWinner(t *testing.T) {
	t.Parallel()

	kiosk, _ := newKioskCommands(t)

	token, err := kiosk.IssueToken(context.Background(), uuid.New())
	require.NoError(t, err)

	const workers = 16

	var wg sync.WaitGroup
	errCh := make(chan error, workers)
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := kiosk.RedeemToken(context.Background(), token.Value(), uuid.New())
			errCh <- err
		}()
	}
	wg.Wait()
	close(errCh)

	succeeded := 0
	for err := range errCh {
		if err == nil {
			succeeded++
		} else {
			assert.ErrorIs(t, err, commands.ErrTokenAlreadyUsed)
		}
	}
	assert.Equal(t, 1, succeeded)
}
