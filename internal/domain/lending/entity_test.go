//go:build unit

package lending_test

import (
	"testing"
	"time"

	"clubhub/internal/domain/lending"
	"clubhub/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSession(t *testing.T) {
	borrowedAt := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	t.Run("due date derives from item duration", func(t *testing.T) {
		item := builder.NewItemBuilder().WithMaxBorrowDuration(60 * time.Minute).BuildDomain()

		s, err := builder.NewLendingSessionBuilder().
			WithItem(item).
			WithBorrowedAt(borrowedAt).
			BuildDomain()
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, s.ID())
		assert.Equal(t, item.ID(), s.ItemID())
		assert.Equal(t, borrowedAt.Add(60*time.Minute), s.DueAt())
		assert.True(t, s.IsActive())
		assert.Nil(t, s.ReturnedAt())
	})

	t.Run("items out of circulation are rejected", func(t *testing.T) {
		for _, status := range []lending.Status{lending.StatusMaintenance, lending.StatusMissing} {
			item := builder.NewItemBuilder().WithStatus(status).BuildDomain()
			_, err := builder.NewLendingSessionBuilder().WithItem(item).BuildDomain()
			assert.ErrorIs(t, err, lending.ErrItemUnavailable, "status %s", status)
		}
	})
}

func TestSessionReturn(t *testing.T) {
	borrowedAt := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	returnedAt := borrowedAt.Add(30 * time.Minute)

	t.Run("return closes the loan", func(t *testing.T) {
		s, err := builder.NewLendingSessionBuilder().WithBorrowedAt(borrowedAt).BuildDomain()
		require.NoError(t, err)

		require.NoError(t, s.Return(returnedAt, lending.ReturnByUser))

		assert.False(t, s.IsActive())
		require.NotNil(t, s.ReturnedAt())
		assert.Equal(t, returnedAt, *s.ReturnedAt())
		require.NotNil(t, s.ReturnMethod())
		assert.Equal(t, lending.ReturnByUser, *s.ReturnMethod())
	})

	t.Run("double return is rejected", func(t *testing.T) {
		s, err := builder.NewLendingSessionBuilder().WithBorrowedAt(borrowedAt).BuildDomain()
		require.NoError(t, err)

		require.NoError(t, s.Return(returnedAt, lending.ReturnByUser))
		err = s.Return(returnedAt.Add(time.Minute), lending.ReturnBySystem)
		assert.ErrorIs(t, err, lending.ErrLoanAlreadyReturned)

		assert.Equal(t, lending.ReturnByUser, *s.ReturnMethod())
	})

	t.Run("invalid method", func(t *testing.T) {
		s, err := builder.NewLendingSessionBuilder().BuildDomain()
		require.NoError(t, err)

		err = s.Return(returnedAt, "teleport")
		assert.ErrorIs(t, err, lending.ErrInvalidReturnMethod)
		assert.True(t, s.IsActive())
	})
}

func TestSessionIsOverdue(t *testing.T) {
	borrowedAt := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	item := builder.NewItemBuilder().WithMaxBorrowDuration(60 * time.Minute).BuildDomain()

	s, err := builder.NewLendingSessionBuilder().
		WithItem(item).
		WithBorrowedAt(borrowedAt).
		BuildDomain()
	require.NoError(t, err)

	assert.False(t, s.IsOverdue(borrowedAt.Add(59*time.Minute)))
	assert.False(t, s.IsOverdue(borrowedAt.Add(60*time.Minute)))
	assert.True(t, s.IsOverdue(borrowedAt.Add(61*time.Minute)))

	require.NoError(t, s.Return(borrowedAt.Add(30*time.Minute), lending.ReturnByUser))
	assert.False(t, s.IsOverdue(borrowedAt.Add(2*time.Hour)), "returned loan cannot be overdue")
}

func TestQueueEntryPromotion(t *testing.T) {
	enqueuedAt := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	grace := 10 * time.Minute
	itemID := uuid.New()
	requesterID := uuid.New()

	t.Run("promote stamps the hold window", func(t *testing.T) {
		e := lending.NewQueueEntry(itemID, requesterID, enqueuedAt)
		require.False(t, e.IsPromoted())

		promotedAt := enqueuedAt.Add(time.Hour)
		require.NoError(t, e.Promote(promotedAt, grace))

		assert.True(t, e.IsPromoted())
		assert.Equal(t, promotedAt.Add(grace), *e.HoldExpiresAt())
		assert.True(t, e.Holds(requesterID, promotedAt.Add(grace)))
		assert.False(t, e.Holds(uuid.New(), promotedAt), "hold is requester-specific")
	})

	t.Run("double promotion is rejected", func(t *testing.T) {
		e := lending.NewQueueEntry(itemID, requesterID, enqueuedAt)
		require.NoError(t, e.Promote(enqueuedAt.Add(time.Hour), grace))

		err := e.Promote(enqueuedAt.Add(2*time.Hour), grace)
		assert.ErrorIs(t, err, lending.ErrEntryAlreadyPromoted)
	})

	t.Run("hold lapses after the grace window", func(t *testing.T) {
		e := lending.NewQueueEntry(itemID, requesterID, enqueuedAt)
		promotedAt := enqueuedAt.Add(time.Hour)
		require.NoError(t, e.Promote(promotedAt, grace))

		assert.False(t, e.HoldLapsed(promotedAt.Add(grace)))
		assert.True(t, e.HoldLapsed(promotedAt.Add(grace+time.Second)))
		assert.False(t, e.Holds(requesterID, promotedAt.Add(grace+time.Second)))
	})

	t.Run("unpromoted entry never lapses", func(t *testing.T) {
		e := lending.NewQueueEntry(itemID, requesterID, enqueuedAt)
		assert.False(t, e.HoldLapsed(enqueuedAt.Add(100*time.Hour)))
	})
}
