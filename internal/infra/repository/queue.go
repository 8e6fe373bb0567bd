package repository

import (
	"context"
	"time"

	"clubhub/internal/domain/lending"
	"clubhub/internal/infra"
	"clubhub/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type QueueRepository struct {
	db db.DBTX
}

func NewQueueRepository(db db.DBTX) *QueueRepository {
	return &QueueRepository{db: db}
}

type queueRow struct {
	ItemID        uuid.UUID
	RequesterID   uuid.UUID
	EnqueuedAt    time.Time
	PromotedAt    *time.Time
	HoldExpiresAt *time.Time
}

func (r *QueueRepository) Append(ctx context.Context, e *lending.QueueEntry) error {
	const query = `
		INSERT INTO queue_entries (item_id, requester_id, enqueued_at, promoted_at, hold_expires_at)
		VALUES ($1, $2, $3, $4, $5)`

	_, err := r.db.Exec(ctx, query,
		e.ItemID(), e.RequesterID(), e.EnqueuedAt(), e.PromotedAt(), e.HoldExpiresAt(),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return infra.WrapRepoErr("requester already queued for item", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to append queue entry", err)
	}
	return nil
}

func (r *QueueRepository) Remove(ctx context.Context, itemID, requesterID uuid.UUID) (bool, error) {
	const query = `DELETE FROM queue_entries WHERE item_id = $1 AND requester_id = $2`

	tag, err := r.db.Exec(ctx, query, itemID, requesterID)
	if err != nil {
		return false, infra.WrapRepoErr("failed to remove queue entry", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *QueueRepository) FindByItem(ctx context.Context, itemID uuid.UUID) ([]*lending.QueueEntry, error) {
	const query = `
		SELECT item_id, requester_id, enqueued_at, promoted_at, hold_expires_at
		FROM queue_entries
		WHERE item_id = $1
		ORDER BY enqueued_at`

	return r.list(ctx, query, itemID)
}

func (r *QueueRepository) Update(ctx context.Context, e *lending.QueueEntry) error {
	const query = `
		UPDATE queue_entries
		SET promoted_at = $3, hold_expires_at = $4
		WHERE item_id = $1 AND requester_id = $2`

	tag, err := r.db.Exec(ctx, query, e.ItemID(), e.RequesterID(), e.PromotedAt(), e.HoldExpiresAt())
	if err != nil {
		return infra.WrapRepoErr("failed to update queue entry", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("queue entry not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *QueueRepository) FindLapsedHolds(ctx context.Context, now time.Time) ([]*lending.QueueEntry, error) {
	const query = `
		SELECT item_id, requester_id, enqueued_at, promoted_at, hold_expires_at
		FROM queue_entries
		WHERE promoted_at IS NOT NULL AND hold_expires_at < $1
		ORDER BY hold_expires_at`

	return r.list(ctx, query, now)
}

func (r *QueueRepository) list(ctx context.Context, query string, args ...any) ([]*lending.QueueEntry, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list queue entries", err)
	}
	defer rows.Close()

	var entries []*lending.QueueEntry
	for rows.Next() {
		row, err := scanQueueRow(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan queue entry", err)
		}
		entries = append(entries, lending.ReconstructQueueEntry(
			row.ItemID, row.RequesterID, row.EnqueuedAt, row.PromotedAt, row.HoldExpiresAt,
		))
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to list queue entries", err)
	}
	return entries, nil
}

func scanQueueRow(row pgx.Row) (queueRow, error) {
	var q queueRow
	err := row.Scan(&q.ItemID, &q.RequesterID, &q.EnqueuedAt, &q.PromotedAt, &q.HoldExpiresAt)
	return q, err
}
