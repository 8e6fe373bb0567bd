//go:build unit

package fake

import (
	"context"
	"sync"

	"clubhub/internal/domain/kiosk"
	"clubhub/internal/infra"

	"github.com/google/uuid"
)

type KioskTokenRepo struct {
	mu     sync.Mutex
	tokens map[string]*kiosk.Token
}

func NewKioskTokenRepo() *KioskTokenRepo {
	return &KioskTokenRepo{tokens: make(map[string]*kiosk.Token)}
}

func cloneToken(t *kiosk.Token) *kiosk.Token {
	return kiosk.ReconstructToken(t.Value(), t.ClubID(), t.IssuedAt(), t.ExpiresAt(), t.Consumed())
}

func (r *KioskTokenRepo) Create(_ context.Context, t *kiosk.Token) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.tokens[t.Value()]; ok {
		return infra.WrapRepoErr("token value collision", nil, infra.KindDuplicateKey)
	}
	r.tokens[t.Value()] = cloneToken(t)
	return nil
}

func (r *KioskTokenRepo) FindByValue(_ context.Context, value string) (*kiosk.Token, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.tokens[value]
	if !ok {
		return nil, infra.WrapRepoErr("token not found", nil, infra.KindNotFound)
	}
	return cloneToken(t), nil
}

func (r *KioskTokenRepo) MarkConsumed(_ context.Context, value string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.tokens[value]
	if !ok {
		return infra.WrapRepoErr("token not found", nil, infra.KindNotFound)
	}
	if t.Consumed() {
		return infra.WrapRepoErr("token already consumed", nil, infra.KindConflict)
	}
	r.tokens[value] = kiosk.ReconstructToken(t.Value(), t.ClubID(), t.IssuedAt(), t.ExpiresAt(), true)
	return nil
}

func (r *KioskTokenRepo) InvalidateUnconsumedByClub(_ context.Context, clubID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for value, t := range r.tokens {
		if t.ClubID() == clubID && !t.Consumed() {
			delete(r.tokens, value)
		}
	}
	return nil
}
