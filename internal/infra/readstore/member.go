package readstore

import (
	"context"
	"errors"

	"clubhub/internal/infra"
	"clubhub/internal/infra/db"
	"clubhub/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type MemberReadStore struct {
	db db.DBTX
}

func NewMemberReadStore(db db.DBTX) *MemberReadStore {
	return &MemberReadStore{db: db}
}

func (r *MemberReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.MemberView, error) {
	const query = `
		SELECT id, email, role, is_active
		FROM members
		WHERE id = $1`

	var view queries.MemberView
	err := r.db.QueryRow(ctx, query, id).Scan(&view.ID, &view.Email, &view.Role, &view.IsActive)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("member not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find member by ID", err)
	}
	return &view, nil
}
