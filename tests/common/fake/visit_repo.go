//go:build unit

// Package fake provides in-memory repository implementations with the
// same error-kind contract as the Postgres ones, so use case tests can
// exercise real concurrency without a database.
package fake

import (
	"context"
	"sort"
	"sync"
	"time"

	"clubhub/internal/domain/visit"
	"clubhub/internal/infra"

	"github.com/google/uuid"
)

type VisitRepo struct {
	mu       sync.Mutex
	sessions map[uuid.UUID]*visit.Session
}

func NewVisitRepo() *VisitRepo {
	return &VisitRepo{sessions: make(map[uuid.UUID]*visit.Session)}
}

func cloneVisit(s *visit.Session) *visit.Session {
	return visit.ReconstructSession(
		s.ID(), s.MemberID(), s.ClubID(),
		s.CheckInAt(), s.CheckOutAt(), s.Method(), s.ClosedBy(),
	)
}

func (r *VisitRepo) Create(_ context.Context, s *visit.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.sessions {
		if existing.MemberID() == s.MemberID() && existing.IsOpen() {
			return infra.WrapRepoErr("open visit session exists", nil, infra.KindConflict)
		}
	}

	r.sessions[s.ID()] = cloneVisit(s)
	return nil
}

func (r *VisitRepo) FindByID(_ context.Context, id uuid.UUID) (*visit.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[id]
	if !ok {
		return nil, infra.WrapRepoErr("visit session not found", nil, infra.KindNotFound)
	}
	return cloneVisit(s), nil
}

func (r *VisitRepo) FindActiveByMember(_ context.Context, memberID uuid.UUID) (*visit.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, s := range r.sessions {
		if s.MemberID() == memberID && s.IsOpen() {
			return cloneVisit(s), nil
		}
	}
	return nil, infra.WrapRepoErr("no active visit session", nil, infra.KindNotFound)
}

func (r *VisitRepo) Update(_ context.Context, s *visit.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sessions[s.ID()]; !ok {
		return infra.WrapRepoErr("visit session not found", nil, infra.KindNotFound)
	}
	r.sessions[s.ID()] = cloneVisit(s)
	return nil
}

func (r *VisitRepo) FindOpenCheckedInBefore(_ context.Context, cutoff time.Time) ([]*visit.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var result []*visit.Session
	for _, s := range r.sessions {
		if s.IsOpen() && s.CheckInAt().Before(cutoff) {
			result = append(result, cloneVisit(s))
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CheckInAt().Before(result[j].CheckInAt())
	})
	return result, nil
}
