package repository

import (
	"context"
	"errors"
	"time"

	"clubhub/internal/domain/kiosk"
	"clubhub/internal/infra"
	"clubhub/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type KioskTokenRepository struct {
	db db.DBTX
}

func NewKioskTokenRepository(db db.DBTX) *KioskTokenRepository {
	return &KioskTokenRepository{db: db}
}

func (r *KioskTokenRepository) Create(ctx context.Context, t *kiosk.Token) error {
	const query = `
		INSERT INTO kiosk_tokens (value, club_id, issued_at, expires_at, consumed)
		VALUES ($1, $2, $3, $4, $5)`

	_, err := r.db.Exec(ctx, query,
		t.Value(), t.ClubID(), t.IssuedAt(), t.ExpiresAt(), t.Consumed(),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return infra.WrapRepoErr("token value collision", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to create kiosk token", err)
	}
	return nil
}

func (r *KioskTokenRepository) FindByValue(ctx context.Context, value string) (*kiosk.Token, error) {
	const query = `
		SELECT value, club_id, issued_at, expires_at, consumed
		FROM kiosk_tokens
		WHERE value = $1`

	var (
		tokenValue          string
		clubID              uuid.UUID
		issuedAt, expiresAt time.Time
		consumed            bool
	)
	err := r.db.QueryRow(ctx, query, value).Scan(&tokenValue, &clubID, &issuedAt, &expiresAt, &consumed)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("kiosk token not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find kiosk token", err)
	}

	return kiosk.ReconstructToken(tokenValue, clubID, issuedAt, expiresAt, consumed), nil
}

// MarkConsumed is the single-use test-and-set: the WHERE clause only
// matches an unconsumed row, so of any concurrent redeemers exactly one
// sees an affected row.
func (r *KioskTokenRepository) MarkConsumed(ctx context.Context, value string) error {
	const query = `UPDATE kiosk_tokens SET consumed = TRUE WHERE value = $1 AND NOT consumed`

	tag, err := r.db.Exec(ctx, query, value)
	if err != nil {
		return infra.WrapRepoErr("failed to consume kiosk token", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("kiosk token already consumed", nil, infra.KindConflict)
	}
	return nil
}

func (r *KioskTokenRepository) InvalidateUnconsumedByClub(ctx context.Context, clubID uuid.UUID) error {
	const query = `DELETE FROM kiosk_tokens WHERE club_id = $1 AND NOT consumed`

	if _, err := r.db.Exec(ctx, query, clubID); err != nil {
		return infra.WrapRepoErr("failed to invalidate kiosk tokens", err)
	}
	return nil
}
