package commands

import (
	"context"
	"errors"

	"clubhub/internal/domain/kiosk"
	"clubhub/internal/domain/visit"
	"clubhub/internal/infra"
	"clubhub/internal/pkg/clock"
	"clubhub/internal/pkg/config"
	"clubhub/internal/pkg/errs"
	"clubhub/internal/pkg/keymutex"

	"github.com/google/uuid"
)

var (
	ErrTokenNotFound    = errs.New("kiosk token not found")
	ErrTokenExpired     = errs.New("kiosk token expired")
	ErrTokenAlreadyUsed = errs.New("kiosk token already used")
	ErrTokenStoreFailed = errs.New("kiosk token store operation failed")
)

type KioskTokenRepository interface {
	Create(ctx context.Context, t *kiosk.Token) error
	FindByValue(ctx context.Context, value string) (*kiosk.Token, error)
	// MarkConsumed flips the consumed flag with a conditional update;
	// KindConflict when another redeemer got there first.
	MarkConsumed(ctx context.Context, value string) error
	// InvalidateUnconsumedByClub burns prior tokens so a stale QR left
	// on screen cannot be scanned after a refresh.
	InvalidateUnconsumedByClub(ctx context.Context, clubID uuid.UUID) error
}

type KioskCommands interface {
	// IssueToken always succeeds for a live store; the new token is the
	// only redeemable one for the club.
	IssueToken(ctx context.Context, clubID uuid.UUID) (*kiosk.Token, error)
	// RedeemToken consumes the token and checks the member in at the
	// token's club. Exactly one of any concurrent redeemers wins.
	RedeemToken(ctx context.Context, value string, memberID uuid.UUID) (*visit.Session, error)
}

type kioskCommandsImpl struct {
	tokens KioskTokenRepository
	visits VisitCommands
	locks  *keymutex.KeyedMutex
	clock  clock.Clock
	cfg    config.KioskConfig
}

func NewKioskCommands(
	tokens KioskTokenRepository,
	visits VisitCommands,
	locks *keymutex.KeyedMutex,
	clk clock.Clock,
	cfg config.KioskConfig,
) KioskCommands {
	return &kioskCommandsImpl{
		tokens: tokens,
		visits: visits,
		locks:  locks,
		clock:  clk,
		cfg:    cfg,
	}
}

func (k *kioskCommandsImpl) IssueToken(ctx context.Context, clubID uuid.UUID) (*kiosk.Token, error) {
	unlock := k.locks.Lock(clubLockPrefix + clubID.String())
	defer unlock()

	if err := k.tokens.InvalidateUnconsumedByClub(ctx, clubID); err != nil {
		return nil, errs.Mark(err, ErrTokenStoreFailed)
	}

	token, err := kiosk.NewToken(clubID, k.clock.Now(), k.cfg.TokenTTL)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenStoreFailed)
	}

	if err := k.tokens.Create(ctx, token); err != nil {
		return nil, errs.Mark(err, ErrTokenStoreFailed)
	}

	return token, nil
}

func (k *kioskCommandsImpl) RedeemToken(ctx context.Context, value string, memberID uuid.UUID) (*visit.Session, error) {
	// Token redemption has its own lock, independent of the visit and
	// lending locks: the test-and-set below must admit exactly one
	// redeemer even when two scans race within the same millisecond.
	unlock := k.locks.Lock(tokenLockPrefix + value)
	defer unlock()

	token, err := k.tokens.FindByValue(ctx, value)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrTokenNotFound
		}
		return nil, errs.Mark(err, ErrTokenStoreFailed)
	}

	if err := token.Redeem(k.clock.Now()); err != nil {
		switch {
		case errors.Is(err, kiosk.ErrTokenExpired):
			return nil, ErrTokenExpired
		case errors.Is(err, kiosk.ErrTokenAlreadyUsed):
			return nil, ErrTokenAlreadyUsed
		default:
			return nil, errs.Mark(err, ErrTokenStoreFailed)
		}
	}

	if err := k.tokens.MarkConsumed(ctx, value); err != nil {
		if infra.IsKind(err, infra.KindConflict) {
			return nil, ErrTokenAlreadyUsed
		}
		return nil, errs.Mark(err, ErrTokenStoreFailed)
	}

	// The token is burned even if the check-in below is rejected; the
	// member sees the check-in error and the kiosk shows a fresh code
	// within one refresh period.
	return k.visits.CheckIn(ctx, memberID, token.ClubID(), visit.MethodKiosk)
}
