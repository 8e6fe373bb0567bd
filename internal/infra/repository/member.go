package repository

import (
	"context"
	"errors"

	"clubhub/internal/infra"
	"clubhub/internal/infra/db"
	"clubhub/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type MemberRepository struct {
	db db.DBTX
}

func NewMemberRepository(db db.DBTX) *MemberRepository {
	return &MemberRepository{db: db}
}

func (r *MemberRepository) FindByEmail(ctx context.Context, email string) (*commands.MemberSnapshot, error) {
	const query = `
		SELECT id, email, role, password_hash, is_active
		FROM members
		WHERE email = $1`

	return r.findOne(ctx, query, email)
}

func (r *MemberRepository) FindByID(ctx context.Context, id uuid.UUID) (*commands.MemberSnapshot, error) {
	const query = `
		SELECT id, email, role, password_hash, is_active
		FROM members
		WHERE id = $1`

	return r.findOne(ctx, query, id)
}

func (r *MemberRepository) UpdateLastLogin(ctx context.Context, id uuid.UUID) error {
	const query = `UPDATE members SET last_login_at = now() WHERE id = $1`

	if _, err := r.db.Exec(ctx, query, id); err != nil {
		return infra.WrapRepoErr("failed to update member last login", err)
	}
	return nil
}

func (r *MemberRepository) findOne(ctx context.Context, query string, arg any) (*commands.MemberSnapshot, error) {
	var snapshot commands.MemberSnapshot
	err := r.db.QueryRow(ctx, query, arg).Scan(
		&snapshot.ID, &snapshot.Email, &snapshot.Role, &snapshot.PasswordHash, &snapshot.IsActive,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("member not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find member", err)
	}
	return &snapshot, nil
}
