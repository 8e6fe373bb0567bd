//go:build unit

package commands_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"clubhub/internal/domain/lending"
	"clubhub/internal/pkg/clock"
	"clubhub/internal/pkg/config"
	"clubhub/internal/pkg/keymutex"
	"clubhub/internal/usecase/commands"
	"clubhub/tests/common/builder"
	"clubhub/tests/common/fake"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type lendingFixture struct {
	uc    commands.LendingCommands
	items *fake.ItemRepo
	loans *fake.LendingRepo
	queue *fake.QueueRepo
	clk   *clock.MockClock
}

func newLendingFixture(t *testing.T, items ...*lending.Item) *lendingFixture {
	t.Helper()

	f := &lendingFixture{
		items: fake.NewItemRepo(items...),
		loans: fake.NewLendingRepo(),
		queue: fake.NewQueueRepo(),
		clk:   clock.NewMockClock(time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)),
	}
	f.uc = commands.NewLendingCommands(
		f.items, f.loans, f.queue, keymutex.New(), f.clk, config.NewTestConfig().Lending,
	)
	return f
}

func TestLendingCommands_BorrowReturn_RoundTrip(t *testing.T) {
	t.Parallel()

	item := builder.NewItemBuilder().WithMaxBorrowDuration(time.Hour).BuildDomain()
	f := newLendingFixture(t, item)
	borrowerID := uuid.New()

	session, err := f.uc.Borrow(context.Background(), item.ID(), borrowerID, false)
	require.NoError(t, err)
	assert.Equal(t, borrowerID, session.BorrowerID())
	assert.Equal(t, f.clk.Now().Add(time.Hour), session.DueAt())

	got, err := f.items.FindByID(context.Background(), item.ID())
	require.NoError(t, err)
	assert.Equal(t, lending.StatusBorrowed, got.Status())

	f.clk.Add(30 * time.Minute)

	returned, err := f.uc.Return(context.Background(), item.ID(), lending.ReturnByUser)
	require.NoError(t, err)
	assert.False(t, returned.IsActive())
	require.NotNil(t, returned.ReturnMethod())
	assert.Equal(t, lending.ReturnByUser, *returned.ReturnMethod())

	got, err = f.items.FindByID(context.Background(), item.ID())
	require.NoError(t, err)
	assert.Equal(t, lending.StatusAvailable, got.Status())
}

func TestLendingCommands_Borrow_Rejections(t *testing.T) {
	t.Parallel()

	t.Run("unknown item", func(t *testing.T) {
		t.Parallel()

		f := newLendingFixture(t)
		_, err := f.uc.Borrow(context.Background(), uuid.New(), uuid.New(), false)
		assert.ErrorIs(t, err, commands.ErrItemNotFound)
	})

	t.Run("item in maintenance", func(t *testing.T) {
		t.Parallel()

		item := builder.NewItemBuilder().WithStatus(lending.StatusMaintenance).BuildDomain()
		f := newLendingFixture(t, item)
		_, err := f.uc.Borrow(context.Background(), item.ID(), uuid.New(), false)
		assert.ErrorIs(t, err, commands.ErrItemUnavailable)
	})

	t.Run("active loan exists", func(t *testing.T) {
		t.Parallel()

		item := builder.NewItemBuilder().BuildDomain()
		f := newLendingFixture(t, item)

		_, err := f.uc.Borrow(context.Background(), item.ID(), uuid.New(), false)
		require.NoError(t, err)

		_, err = f.uc.Borrow(context.Background(), item.ID(), uuid.New(), false)
		assert.ErrorIs(t, err, commands.ErrItemAlreadyBorrowed)
	})
}

func TestLendingCommands_Borrow_ConcurrentSingleWinner(t *testing.T) {
	t.Parallel()

	item := builder.NewItemBuilder().BuildDomain()
	f := newLendingFixture(t, item)

	const workers = 16

	var wg sync.WaitGroup
	errCh := make(chan error, workers)
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.uc.Borrow(context.Background(), item.ID(), uuid.New(), false)
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
			assert.ErrorIs(t, err, commands.ErrItemAlreadyBorrowed)
		}
	}
	assert.Equal(t, 1, succeeded)
}

func TestLendingCommands_Enqueue(t *testing.T) {
	t.Parallel()

	t.Run("rejected while item is free", func(t *testing.T) {
		t.Parallel()

		item := builder.NewItemBuilder().BuildDomain()
		f := newLendingFixture(t, item)

		_, err := f.uc.Enqueue(context.Background(), item.ID(), uuid.New())
		assert.ErrorIs(t, err, commands.ErrItemAvailable)
	})

	t.Run("duplicate requester rejected", func(t *testing.T) {
		t.Parallel()

		item := builder.NewItemBuilder().BuildDomain()
		f := newLendingFixture(t, item)
		requesterID := uuid.New()

		_, err := f.uc.Borrow(context.Background(), item.ID(), uuid.New(), false)
		require.NoError(t, err)

		_, err = f.uc.Enqueue(context.Background(), item.ID(), requesterID)
		require.NoError(t, err)

		_, err = f.uc.Enqueue(context.Background(), item.ID(), requesterID)
		assert.ErrorIs(t, err, commands.ErrAlreadyQueued)
	})
}

func TestLendingCommands_Return_PromotesHeadInArrivalOrder(t *testing.T) {
	t.Parallel()

	item := builder.NewItemBuilder().BuildDomain()
	f := newLendingFixture(t, item)
	requesterA := uuid.New()
	requesterB := uuid.New()

	_, err := f.uc.Borrow(context.Background(), item.ID(), uuid.New(), false)
	require.NoError(t, err)

	_, err = f.uc.Enqueue(context.Background(), item.ID(), requesterA)
	require.NoError(t, err)
	f.clk.Add(time.Minute)
	_, err = f.uc.Enqueue(context.Background(), item.ID(), requesterB)
	require.NoError(t, err)

	_, err = f.uc.Return(context.Background(), item.ID(), lending.ReturnByUser)
	require.NoError(t, err)

	entries, err := f.queue.FindByItem(context.Background(), item.ID())
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, requesterA, entries[0].RequesterID())
	assert.True(t, entries[0].IsPromoted())
	assert.False(t, entries[1].IsPromoted())

	// Within the grace window the item is reserved for A.
	_, err = f.uc.Borrow(context.Background(), item.ID(), requesterB, false)
	assert.ErrorIs(t, err, commands.ErrItemReserved)

	// A borrows and the entry is consumed.
	_, err = f.uc.Borrow(context.Background(), item.ID(), requesterA, false)
	require.NoError(t, err)

	entries, err = f.queue.FindByItem(context.Background(), item.ID())
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, requesterB, entries[0].RequesterID())
}

func TestLendingCommands_Borrow_LapsedHoldDroppedInline(t *testing.T) {
	t.Parallel()

	item := builder.NewItemBuilder().BuildDomain()
	f := newLendingFixture(t, item)
	requesterA := uuid.New()
	requesterB := uuid.New()

	_, err := f.uc.Borrow(context.Background(), item.ID(), uuid.New(), false)
	require.NoError(t, err)
	_, err = f.uc.Enqueue(context.Background(), item.ID(), requesterA)
	require.NoError(t, err)
	_, err = f.uc.Return(context.Background(), item.ID(), lending.ReturnByUser)
	require.NoError(t, err)

	// A's grace window passes without a borrow.
	f.clk.Add(11 * time.Minute)

	session, err := f.uc.Borrow(context.Background(), item.ID(), requesterB, false)
	require.NoError(t, err)
	assert.Equal(t, requesterB, session.BorrowerID())

	entries, err := f.queue.FindByItem(context.Background(), item.ID())
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestLendingCommands_Dequeue(t *testing.T) {
	t.Parallel()

	t.Run("idempotent for absent entry", func(t *testing.T) {
		t.Parallel()

		item := builder.NewItemBuilder().BuildDomain()
		f := newLendingFixture(t, item)

		err := f.uc.Dequeue(context.Background(), item.ID(), uuid.New())
		assert.NoError(t, err)
	})

	t.Run("withdrawing the hold owner promotes the next entry", func(t *testing.T) {
		t.Parallel()

		item := builder.NewItemBuilder().BuildDomain()
		f := newLendingFixture(t, item)
		requesterA := uuid.New()
		requesterB := uuid.New()

		_, err := f.uc.Borrow(context.Background(), item.ID(), uuid.New(), false)
		require.NoError(t, err)
		_, err = f.uc.Enqueue(context.Background(), item.ID(), requesterA)
		require.NoError(t, err)
		f.clk.Add(time.Minute)
		_, err = f.uc.Enqueue(context.Background(), item.ID(), requesterB)
		require.NoError(t, err)
		_, err = f.uc.Return(context.Background(), item.ID(), lending.ReturnByUser)
		require.NoError(t, err)

		err = f.uc.Dequeue(context.Background(), item.ID(), requesterA)
		require.NoError(t, err)

		entries, err := f.queue.FindByItem(context.Background(), item.ID())
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, requesterB, entries[0].RequesterID())
		assert.True(t, entries[0].IsPromoted())
	})

	t.Run("withdrawing an unpromoted entry leaves the hold untouched", func(t *testing.T) {
		t.Parallel()

		item := builder.NewItemBuilder().BuildDomain()
		f := newLendingFixture(t, item)
		requesterA := uuid.New()
		requesterB := uuid.New()

		_, err := f.uc.Borrow(context.Background(), item.ID(), uuid.New(), false)
		require.NoError(t, err)
		_, err = f.uc.Enqueue(context.Background(), item.ID(), requesterA)
		require.NoError(t, err)
		f.clk.Add(time.Minute)
		_, err = f.uc.Enqueue(context.Background(), item.ID(), requesterB)
		require.NoError(t, err)
		_, err = f.uc.Return(context.Background(), item.ID(), lending.ReturnByUser)
		require.NoError(t, err)

		err = f.uc.Dequeue(context.Background(), item.ID(), requesterB)
		require.NoError(t, err)

		entries, err := f.queue.FindByItem(context.Background(), item.ID())
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, requesterA, entries[0].RequesterID())
		assert.True(t, entries[0].IsPromoted())
	})
}

func TestLendingCommands_AutoReturnOverdue(t *testing.T) {
	t.Parallel()

	overdueItem := builder.NewItemBuilder().WithMaxBorrowDuration(time.Hour).BuildDomain()
	onTimeItem := builder.NewItemBuilder().WithMaxBorrowDuration(4 * time.Hour).BuildDomain()
	f := newLendingFixture(t, overdueItem, onTimeItem)
	waiterID := uuid.New()

	_, err := f.uc.Borrow(context.Background(), overdueItem.ID(), uuid.New(), false)
	require.NoError(t, err)
	_, err = f.uc.Borrow(context.Background(), onTimeItem.ID(), uuid.New(), false)
	require.NoError(t, err)
	_, err = f.uc.Enqueue(context.Background(), overdueItem.ID(), waiterID)
	require.NoError(t, err)

	f.clk.Add(2 * time.Hour)

	returned, err := f.uc.AutoReturnOverdue(context.Background(), f.clk.Now())
	require.NoError(t, err)
	assert.Equal(t, 1, returned)

	loans, err := f.loans.FindOverdueBefore(context.Background(), f.clk.Now())
	require.NoError(t, err)
	assert.Empty(t, loans)

	got, err := f.items.FindByID(context.Background(), overdueItem.ID())
	require.NoError(t, err)
	assert.Equal(t, lending.StatusAvailable, got.Status())

	// The waiting requester is promoted by the sweep's return.
	entries, err := f.queue.FindByItem(context.Background(), overdueItem.ID())
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.True(t, entries[0].IsPromoted())

	// The on-time loan is untouched.
	active, err := f.loans.FindActiveByItem(context.Background(), onTimeItem.ID())
	require.NoError(t, err)
	assert.True(t, active.IsActive())
}

func TestLendingCommands_AutoReturnOverdue_ClearsBorrowerLoans(t *testing.T) {
	t.Parallel()

	item := builder.NewItemBuilder().WithMaxBorrowDuration(time.Hour).BuildDomain()
	f := newLendingFixture(t, item)
	borrowerID := uuid.New()

	_, err := f.uc.Borrow(context.Background(), item.ID(), borrowerID, false)
	require.NoError(t, err)

	f.clk.Add(90 * time.Minute)
	_, err = f.uc.AutoReturnOverdue(context.Background(), f.clk.Now())
	require.NoError(t, err)

	history, err := f.loans.FindActiveByBorrower(context.Background(), borrowerID)
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestLendingCommands_ExpireLapsedHolds(t *testing.T) {
	t.Parallel()

	item := builder.NewItemBuilder().BuildDomain()
	f := newLendingFixture(t, item)
	requesterA := uuid.New()
	requesterB := uuid.New()

	_, err := f.uc.Borrow(context.Background(), item.ID(), uuid.New(), false)
	require.NoError(t, err)
	_, err = f.uc.Enqueue(context.Background(), item.ID(), requesterA)
	require.NoError(t, err)
	f.clk.Add(time.Minute)
	_, err = f.uc.Enqueue(context.Background(), item.ID(), requesterB)
	require.NoError(t, err)
	_, err = f.uc.Return(context.Background(), item.ID(), lending.ReturnByUser)
	require.NoError(t, err)

	f.clk.Add(11 * time.Minute)

	expired, err := f.uc.ExpireLapsedHolds(context.Background(), f.clk.Now())
	require.NoError(t, err)
	assert.Equal(t, 1, expired)

	entries, err := f.queue.FindByItem(context.Background(), item.ID())
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, requesterB, entries[0].RequesterID())
	assert.True(t, entries[0].IsPromoted())
}

// One hour loan, a waiting requester, sweep fires five minutes past due:
// the loan is closed with method SYSTEM, the item frees up, and the
// waiter is promoted with a fresh grace window.
func TestLendingCommands_OverdueSweep_EndToEnd(t *testing.T) {
	t.Parallel()

	item := builder.NewItemBuilder().WithMaxBorrowDuration(time.Hour).BuildDomain()
	f := newLendingFixture(t, item)
	borrowerID := uuid.New()
	waiterID := uuid.New()

	start := f.clk.Now()

	_, err := f.uc.Borrow(context.Background(), item.ID(), borrowerID, false)
	require.NoError(t, err)

	f.clk.Add(10 * time.Minute)
	_, err = f.uc.Enqueue(context.Background(), item.ID(), waiterID)
	require.NoError(t, err)

	f.clk.Set(start.Add(65 * time.Minute))

	returned, err := f.uc.AutoReturnOverdue(context.Background(), f.clk.Now())
	require.NoError(t, err)
	require.Equal(t, 1, returned)

	// The borrower's late return after the sweep finds nothing active.
	_, err = f.uc.Return(context.Background(), item.ID(), lending.ReturnByUser)
	assert.ErrorIs(t, err, commands.ErrNoActiveLoan)

	// The waiter holds the reservation and borrows within the window.
	f.clk.Add(5 * time.Minute)
	session, err := f.uc.Borrow(context.Background(), item.ID(), waiterID, false)
	require.NoError(t, err)
	assert.Equal(t, waiterID, session.BorrowerID())
}
