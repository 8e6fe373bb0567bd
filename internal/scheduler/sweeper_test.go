//go:build unit

package scheduler_test

import (
	"context"
	"testing"
	"time"

	"clubhub/internal/domain/lending"
	"clubhub/internal/domain/visit"
	"clubhub/internal/pkg/clock"
	"clubhub/internal/pkg/config"
	"clubhub/internal/pkg/keymutex"
	"clubhub/internal/scheduler"
	"clubhub/internal/usecase/commands"
	"clubhub/tests/common/builder"
	"clubhub/tests/common/fake"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSweeper_Sweep_AllPhases(t *testing.T) {
	t.Parallel()

	cfg := config.NewTestConfig()
	clk := clock.NewMockClock(time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC))
	locks := keymutex.New()

	item := builder.NewItemBuilder().WithMaxBorrowDuration(time.Hour).BuildDomain()
	items := fake.NewItemRepo(item)
	loans := fake.NewLendingRepo()
	queue := fake.NewQueueRepo()
	visitRepo := fake.NewVisitRepo()

	lendingUC := commands.NewLendingCommands(items, loans, queue, locks, clk, cfg.Lending)
	visitUC := commands.NewVisitCommands(visitRepo, locks, clk, cfg.Visit)
	sweeper := scheduler.NewSweeper(lendingUC, visitUC, clk, cfg.Sweep)

	// An open visit, an active loan and a queued requester, all of which
	// will be expired by the time of the sweep.
	visitSession, err := visitUC.CheckIn(context.Background(), uuid.New(), uuid.New(), visit.MethodKiosk)
	require.NoError(t, err)
	_, err = lendingUC.Borrow(context.Background(), item.ID(), uuid.New(), false)
	require.NoError(t, err)
	waiterID := uuid.New()
	_, err = lendingUC.Enqueue(context.Background(), item.ID(), waiterID)
	require.NoError(t, err)

	clk.Add(17 * time.Hour)
	sweeper.Sweep(context.Background())

	// The loan is force-returned and the waiter promoted.
	got, err := items.FindByID(context.Background(), item.ID())
	require.NoError(t, err)
	assert.Equal(t, lending.StatusAvailable, got.Status())

	entries, err := queue.FindByItem(context.Background(), item.ID())
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.True(t, entries[0].IsPromoted())

	// The visit is closed by the system.
	closedVisit, err := visitRepo.FindByID(context.Background(), visitSession.ID())
	require.NoError(t, err)
	assert.False(t, closedVisit.IsOpen())
	require.NotNil(t, closedVisit.ClosedBy())
	assert.Equal(t, visit.ClosedBySystem, *closedVisit.ClosedBy())

	// The promoted hold survives the same sweep: its grace window is
	// stamped from the sweep's own now.
	require.NotNil(t, entries[0].HoldExpiresAt())
	assert.True(t, entries[0].HoldExpiresAt().After(clk.Now()))
}

func TestSweeper_Sweep_LapsedHoldHandoff(t *testing.T) {
	t.Parallel()

	cfg := config.NewTestConfig()
	clk := clock.NewMockClock(time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC))
	locks := keymutex.New()

	item := builder.NewItemBuilder().WithMaxBorrowDuration(time.Hour).BuildDomain()
	items := fake.NewItemRepo(item)
	loans := fake.NewLendingRepo()
	queue := fake.NewQueueRepo()

	lendingUC := commands.NewLendingCommands(items, loans, queue, locks, clk, cfg.Lending)
	visitUC := commands.NewVisitCommands(fake.NewVisitRepo(), locks, clk, cfg.Visit)
	sweeper := scheduler.NewSweeper(lendingUC, visitUC, clk, cfg.Sweep)

	requesterA := uuid.New()
	requesterB := uuid.New()

	_, err := lendingUC.Borrow(context.Background(), item.ID(), uuid.New(), false)
	require.NoError(t, err)
	_, err = lendingUC.Enqueue(context.Background(), item.ID(), requesterA)
	require.NoError(t, err)
	clk.Add(time.Minute)
	_, err = lendingUC.Enqueue(context.Background(), item.ID(), requesterB)
	require.NoError(t, err)
	_, err = lendingUC.Return(context.Background(), item.ID(), lending.ReturnByUser)
	require.NoError(t, err)

	// A's hold lapses; the next sweep hands the reservation to B.
	clk.Add(11 * time.Minute)
	sweeper.Sweep(context.Background())

	entries, err := queue.FindByItem(context.Background(), item.ID())
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, requesterB, entries[0].RequesterID())
	assert.True(t, entries[0].IsPromoted())
}
