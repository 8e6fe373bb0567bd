//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"clubhub/internal/infra"
	"clubhub/internal/usecase/queries"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubVisitReadStore struct {
	active    *queries.VisitView
	activeErr error
	history   []*queries.VisitView
	gotLimit  int
}

func (s *stubVisitReadStore) FindActiveByMember(_ context.Context, _ uuid.UUID) (*queries.VisitView, error) {
	return s.active, s.activeErr
}

func (s *stubVisitReadStore) FindHistoryByMember(_ context.Context, _ uuid.UUID, limit int) ([]*queries.VisitView, error) {
	s.gotLimit = limit
	return s.history, nil
}

func TestVisitQueries_ActiveVisit(t *testing.T) {
	t.Parallel()

	memberID := uuid.New()

	t.Run("returns the open session view", func(t *testing.T) {
		t.Parallel()

		view := &queries.VisitView{
			ID:        uuid.New(),
			MemberID:  memberID,
			ClubID:    uuid.New(),
			CheckInAt: time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC),
			Method:    "kiosk",
		}
		q := queries.NewVisitQueries(&stubVisitReadStore{active: view})

		got, err := q.ActiveVisit(context.Background(), memberID)
		require.NoError(t, err)
		assert.Empty(t, cmp.Diff(view, got))
	})

	t.Run("maps a missing row to the sentinel", func(t *testing.T) {
		t.Parallel()

		store := &stubVisitReadStore{activeErr: infra.WrapRepoErr("visit session not found", nil, infra.KindNotFound)}
		q := queries.NewVisitQueries(store)

		_, err := q.ActiveVisit(context.Background(), memberID)
		assert.ErrorIs(t, err, queries.ErrActiveVisitNotFound)
	})
}

func TestVisitQueries_History(t *testing.T) {
	t.Parallel()

	memberID := uuid.New()
	closedBy := "member"
	checkOut := time.Date(2025, 6, 1, 18, 0, 0, 0, time.UTC)
	views := []*queries.VisitView{
		{
			ID:         uuid.New(),
			MemberID:   memberID,
			ClubID:     uuid.New(),
			CheckInAt:  time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC),
			CheckOutAt: &checkOut,
			Method:     "manual",
			ClosedBy:   &closedBy,
		},
	}

	store := &stubVisitReadStore{history: views}
	q := queries.NewVisitQueries(store)

	got, err := q.History(context.Background(), memberID, 0)
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff(views, got))
	assert.Equal(t, 50, store.gotLimit, "zero limit falls back to the default page size")
}
