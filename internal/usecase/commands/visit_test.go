//go:build unit

package commands_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"clubhub/internal/domain/visit"
	"clubhub/internal/pkg/clock"
	"clubhub/internal/pkg/config"
	"clubhub/internal/pkg/keymutex"
	"clubhub/internal/usecase/commands"
	"clubhub/tests/common/fake"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newVisitCommands(t *testing.T) (commands.VisitCommands, *fake.VisitRepo, *clock.MockClock) {
	t.Helper()

	repo := fake.NewVisitRepo()
	clk := clock.NewMockClock(time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC))
	uc := commands.NewVisitCommands(repo, keymutex.New(), clk, config.NewTestConfig().Visit)
	return uc, repo, clk
}

func TestVisitCommands_CheckInCheckOut_RoundTrip(t *testing.T) {
	t.Parallel()

	uc, _, clk := newVisitCommands(t)
	memberID := uuid.New()
	clubID := uuid.New()

	session, err := uc.CheckIn(context.Background(), memberID, clubID, visit.MethodManual)
	require.NoError(t, err)
	assert.Equal(t, memberID, session.MemberID())
	assert.Equal(t, clubID, session.ClubID())
	assert.Equal(t, clk.Now(), session.CheckInAt())
	assert.True(t, session.IsOpen())

	clk.Add(2 * time.Hour)

	closed, err := uc.CheckOut(context.Background(), session.ID(), visit.ClosedByMember)
	require.NoError(t, err)
	assert.False(t, closed.IsOpen())
	require.NotNil(t, closed.CheckOutAt())
	assert.Equal(t, clk.Now(), *closed.CheckOutAt())
	require.NotNil(t, closed.ClosedBy())
	assert.Equal(t, visit.ClosedByMember, *closed.ClosedBy())
}

func TestVisitCommands_CheckIn_RejectsOpenSessionAnywhere(t *testing.T) {
	t.Parallel()

	uc, _, _ := newVisitCommands(t)
	memberID := uuid.New()

	_, err := uc.CheckIn(context.Background(), memberID, uuid.New(), visit.MethodKiosk)
	require.NoError(t, err)

	// Same club or a different one, an open session blocks a second check-in.
	_, err = uc.CheckIn(context.Background(), memberID, uuid.New(), visit.MethodManual)
	assert.ErrorIs(t, err, commands.ErrAlreadyCheckedIn)
}

func TestVisitCommands_CheckIn_AllowedAfterCheckOut(t *testing.T) {
	t.Parallel()

	uc, _, clk := newVisitCommands(t)
	memberID := uuid.New()
	clubID := uuid.New()

	first, err := uc.CheckIn(context.Background(), memberID, clubID, visit.MethodManual)
	require.NoError(t, err)

	clk.Add(time.Hour)
	_, err = uc.CheckOut(context.Background(), first.ID(), visit.ClosedByMember)
	require.NoError(t, err)

	second, err := uc.CheckIn(context.Background(), memberID, clubID, visit.MethodManual)
	require.NoError(t, err)
	assert.NotEqual(t, first.ID(), second.ID())
}

func TestVisitCommands_CheckOut_SecondCloseRejected(t *testing.T) {
	t.Parallel()

	uc, _, _ := newVisitCommands(t)

	session, err := uc.CheckIn(context.Background(), uuid.New(), uuid.New(), visit.MethodManual)
	require.NoError(t, err)

	_, err = uc.CheckOut(context.Background(), session.ID(), visit.ClosedByMember)
	require.NoError(t, err)

	_, err = uc.CheckOut(context.Background(), session.ID(), visit.ClosedByStaff)
	assert.ErrorIs(t, err, commands.ErrSessionAlreadyClosed)
}

func TestVisitCommands_CheckOut_UnknownSession(t *testing.T) {
	t.Parallel()

	uc, _, _ := newVisitCommands(t)

	_, err := uc.CheckOut(context.Background(), uuid.New(), visit.ClosedByMember)
	assert.ErrorIs(t, err, commands.ErrSessionNotFound)
}

func TestVisitCommands_CheckIn_ConcurrentSingleWinner(t *testing.T) {
	t.Parallel()

	uc, _, _ := newVisitCommands(t)
	memberID := uuid.New()

	const workers = 16

	var wg sync.WaitGroup
	errCh := make(chan error, workers)
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := uc.CheckIn(context.Background(), memberID, uuid.New(), visit.MethodKiosk)
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
			assert.ErrorIs(t, err, commands.ErrAlreadyCheckedIn)
		}
	}
	assert.Equal(t, 1, succeeded)
}

func TestVisitCommands_ForceCloseStale(t *testing.T) {
	t.Parallel()

	uc, _, clk := newVisitCommands(t)

	stale, err := uc.CheckIn(context.Background(), uuid.New(), uuid.New(), visit.MethodKiosk)
	require.NoError(t, err)

	// Second session opens well inside the window.
	clk.Add(12 * time.Hour)
	fresh, err := uc.CheckIn(context.Background(), uuid.New(), uuid.New(), visit.MethodManual)
	require.NoError(t, err)

	clk.Add(5 * time.Hour) // stale is now 17h old, fresh only 5h

	closed, err := uc.ForceCloseStale(context.Background(), clk.Now())
	require.NoError(t, err)
	assert.Equal(t, 1, closed)

	// The stale session is closed with attribution SYSTEM.
	_, err = uc.CheckOut(context.Background(), stale.ID(), visit.ClosedByMember)
	assert.ErrorIs(t, err, commands.ErrSessionAlreadyClosed)

	_, err = uc.CheckOut(context.Background(), fresh.ID(), visit.ClosedByMember)
	assert.NoError(t, err)
}

func TestVisitCommands_ForceCloseStale_SetsSystemAttribution(t *testing.T) {
	t.Parallel()

	repo := fake.NewVisitRepo()
	clk := clock.NewMockClock(time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC))
	uc := commands.NewVisitCommands(repo, keymutex.New(), clk, config.NewTestConfig().Visit)

	session, err := uc.CheckIn(context.Background(), uuid.New(), uuid.New(), visit.MethodKiosk)
	require.NoError(t, err)

	clk.Add(17 * time.Hour)
	_, err = uc.ForceCloseStale(context.Background(), clk.Now())
	require.NoError(t, err)

	got, err := repo.FindByID(context.Background(), session.ID())
	require.NoError(t, err)
	require.NotNil(t, got.ClosedBy())
	assert.Equal(t, visit.ClosedBySystem, *got.ClosedBy())
	require.NotNil(t, got.CheckOutAt())
	assert.Equal(t, clk.Now(), *got.CheckOutAt())
}
