package commands

import (
	"context"
	"log/slog"

	"clubhub/internal/domain/member"
	"clubhub/internal/infra"
	"clubhub/internal/pkg/errs"
	"clubhub/internal/pkg/jwt"
	"clubhub/internal/pkg/password"

	"github.com/google/uuid"
)

var (
	ErrMemberNotFound       = errs.New("member not found")
	ErrInvalidCredentials   = errs.New("invalid credentials")
	ErrMemberInactive       = errs.New("member inactive")
	ErrAuthenticationFailed = errs.New("authentication failed")
	ErrTokenGeneration      = errs.New("token generation failed")
)

type MemberRepository interface {
	FindByEmail(ctx context.Context, email string) (*MemberSnapshot, error)
	FindByID(ctx context.Context, id uuid.UUID) (*MemberSnapshot, error)
	UpdateLastLogin(ctx context.Context, id uuid.UUID) error
}

type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

type LoginResult struct {
	MemberID uuid.UUID
	Role     member.Role
	Tokens   *TokenPair
}

type AuthCommands interface {
	Login(ctx context.Context, creds member.Credentials) (*LoginResult, error)
	RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error)
}

type authCommandsImpl struct {
	members    MemberRepository
	jwtService *jwt.Service
}

func NewAuthCommands(members MemberRepository, jwtService *jwt.Service) AuthCommands {
	return &authCommandsImpl{
		members:    members,
		jwtService: jwtService,
	}
}

func (a *authCommandsImpl) Login(ctx context.Context, creds member.Credentials) (*LoginResult, error) {
	snapshot, err := a.members.FindByEmail(ctx, creds.Email())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	if !snapshot.IsActive {
		return nil, ErrMemberInactive
	}

	if err := password.ComparePassword(snapshot.PasswordHash, creds.Password()); err != nil {
		return nil, ErrInvalidCredentials
	}

	role, err := member.NewRole(snapshot.Role)
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	tokens, err := a.generatePair(snapshot.ID, role)
	if err != nil {
		return nil, err
	}

	if err := a.members.UpdateLastLogin(ctx, snapshot.ID); err != nil {
		// Best effort; a failed timestamp must not block the login.
		slog.Warn("failed to update last login", "member_id", snapshot.ID, "error", err.Error())
	}

	return &LoginResult{
		MemberID: snapshot.ID,
		Role:     role,
		Tokens:   tokens,
	}, nil
}

func (a *authCommandsImpl) RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error) {
	claims, err := a.jwtService.ValidateToken(refreshToken)
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	snapshot, err := a.members.FindByID(ctx, claims.MemberID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrMemberNotFound
		}
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}
	if !snapshot.IsActive {
		return nil, ErrMemberInactive
	}

	role, err := member.NewRole(snapshot.Role)
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	return a.generatePair(snapshot.ID, role)
}

func (a *authCommandsImpl) generatePair(memberID uuid.UUID, role member.Role) (*TokenPair, error) {
	accessToken, err := a.jwtService.GenerateAccessToken(memberID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	refreshToken, err := a.jwtService.GenerateRefreshToken(memberID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	return &TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}
