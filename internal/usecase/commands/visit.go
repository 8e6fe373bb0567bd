package commands

import (
	"context"
	"log/slog"
	"time"

	"clubhub/internal/domain/visit"
	"clubhub/internal/infra"
	"clubhub/internal/pkg/clock"
	"clubhub/internal/pkg/config"
	"clubhub/internal/pkg/errs"
	"clubhub/internal/pkg/keymutex"

	"github.com/google/uuid"
)

var (
	ErrAlreadyCheckedIn     = errs.New("member is already checked in")
	ErrSessionNotFound      = errs.New("visit session not found")
	ErrSessionAlreadyClosed = errs.New("visit session already closed")
	ErrVisitStoreFailed     = errs.New("visit store operation failed")
)

type VisitRepository interface {
	Create(ctx context.Context, s *visit.Session) error
	FindByID(ctx context.Context, id uuid.UUID) (*visit.Session, error)
	// FindActiveByMember returns the member's open session at any club,
	// KindNotFound when the member is checked out everywhere.
	FindActiveByMember(ctx context.Context, memberID uuid.UUID) (*visit.Session, error)
	Update(ctx context.Context, s *visit.Session) error
	// FindOpenCheckedInBefore lists open sessions whose check-in predates
	// the cutoff, oldest first.
	FindOpenCheckedInBefore(ctx context.Context, cutoff time.Time) ([]*visit.Session, error)
}

type VisitCommands interface {
	CheckIn(ctx context.Context, memberID, clubID uuid.UUID, method visit.Method) (*visit.Session, error)
	CheckOut(ctx context.Context, sessionID uuid.UUID, by visit.ClosedBy) (*visit.Session, error)
	// ForceCloseStale closes sessions open past the configured maximum
	// duration. Sweep hook; per-record failures are logged and skipped.
	ForceCloseStale(ctx context.Context, now time.Time) (int, error)
}

type visitCommandsImpl struct {
	repo  VisitRepository
	locks *keymutex.KeyedMutex
	clock clock.Clock
	cfg   config.VisitConfig
}

func NewVisitCommands(repo VisitRepository, locks *keymutex.KeyedMutex, clk clock.Clock, cfg config.VisitConfig) VisitCommands {
	return &visitCommandsImpl{
		repo:  repo,
		locks: locks,
		clock: clk,
		cfg:   cfg,
	}
}

func (v *visitCommandsImpl) CheckIn(ctx context.Context, memberID, clubID uuid.UUID, method visit.Method) (*visit.Session, error) {
	unlock := v.locks.Lock(memberLockPrefix + memberID.String())
	defer unlock()

	_, err := v.repo.FindActiveByMember(ctx, memberID)
	switch {
	case err == nil:
		// Open session at any club, including this one: the member must
		// check out first.
		return nil, ErrAlreadyCheckedIn
	case !infra.IsKind(err, infra.KindNotFound):
		return nil, errs.Mark(err, ErrVisitStoreFailed)
	}

	session, err := visit.NewSession(memberID, clubID, method, v.clock.Now())
	if err != nil {
		return nil, err
	}

	if err := v.repo.Create(ctx, session); err != nil {
		if infra.IsKind(err, infra.KindConflict) || infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrAlreadyCheckedIn
		}
		return nil, errs.Mark(err, ErrVisitStoreFailed)
	}

	return session, nil
}

func (v *visitCommandsImpl) CheckOut(ctx context.Context, sessionID uuid.UUID, by visit.ClosedBy) (*visit.Session, error) {
	// Resolve the owning member before taking the member lock.
	session, err := v.repo.FindByID(ctx, sessionID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, errs.Mark(err, ErrVisitStoreFailed)
	}

	unlock := v.locks.Lock(memberLockPrefix + session.MemberID().String())
	defer unlock()

	return v.closeLocked(ctx, sessionID, by)
}

// closeLocked reloads and closes a session; the member lock must be held.
func (v *visitCommandsImpl) closeLocked(ctx context.Context, sessionID uuid.UUID, by visit.ClosedBy) (*visit.Session, error) {
	session, err := v.repo.FindByID(ctx, sessionID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, errs.Mark(err, ErrVisitStoreFailed)
	}

	if err := session.Close(v.clock.Now(), by); err != nil {
		return nil, errs.Mark(err, ErrSessionAlreadyClosed)
	}

	if err := v.repo.Update(ctx, session); err != nil {
		return nil, errs.Mark(err, ErrVisitStoreFailed)
	}

	return session, nil
}

func (v *visitCommandsImpl) ForceCloseStale(ctx context.Context, now time.Time) (int, error) {
	cutoff := now.Add(-v.cfg.MaxDuration)
	stale, err := v.repo.FindOpenCheckedInBefore(ctx, cutoff)
	if err != nil {
		return 0, errs.Mark(err, ErrVisitStoreFailed)
	}

	closed := 0
	for _, s := range stale {
		if _, err := v.forceCloseOne(ctx, s.ID(), s.MemberID()); err != nil {
			// One stuck record must not block the rest of the sweep; it
			// will be retried on the next tick.
			slog.Warn("failed to force-close stale visit",
				"session_id", s.ID(), "member_id", s.MemberID(), "error", err.Error())
			continue
		}
		closed++
	}

	return closed, nil
}

func (v *visitCommandsImpl) forceCloseOne(ctx context.Context, sessionID, memberID uuid.UUID) (*visit.Session, error) {
	unlock := v.locks.Lock(memberLockPrefix + memberID.String())
	defer unlock()

	return v.closeLocked(ctx, sessionID, visit.ClosedBySystem)
}
