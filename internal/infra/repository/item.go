package repository

import (
	"context"
	"errors"
	"time"

	"clubhub/internal/domain/lending"
	"clubhub/internal/infra"
	"clubhub/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type ItemRepository struct {
	db db.DBTX
}

func NewItemRepository(db db.DBTX) *ItemRepository {
	return &ItemRepository{db: db}
}

func (r *ItemRepository) Create(ctx context.Context, item *lending.Item) error {
	const query = `
		INSERT INTO items (id, club_id, name, status, max_borrow_seconds)
		VALUES ($1, $2, $3, $4, $5)`

	_, err := r.db.Exec(ctx, query,
		item.ID(), item.ClubID(), item.Name(), item.Status().String(),
		int64(item.MaxBorrowDuration()/time.Second),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create item", err)
	}
	return nil
}

func (r *ItemRepository) FindByID(ctx context.Context, id uuid.UUID) (*lending.Item, error) {
	const query = `
		SELECT id, club_id, name, status, max_borrow_seconds
		FROM items
		WHERE id = $1`

	var (
		itemID, clubID   uuid.UUID
		name, status     string
		maxBorrowSeconds int64
	)
	err := r.db.QueryRow(ctx, query, id).Scan(&itemID, &clubID, &name, &status, &maxBorrowSeconds)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("item not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find item by ID", err)
	}

	return lending.ReconstructItem(
		itemID, clubID, name, lending.Status(status),
		time.Duration(maxBorrowSeconds)*time.Second,
	), nil
}

func (r *ItemRepository) UpdateStatus(ctx context.Context, item *lending.Item) error {
	const query = `UPDATE items SET status = $2 WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, item.ID(), item.Status().String())
	if err != nil {
		return infra.WrapRepoErr("failed to update item status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("item not found", nil, infra.KindNotFound)
	}
	return nil
}
