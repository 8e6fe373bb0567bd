//go:build e2e

package helper

import (
	"net/http"
	"testing"
	"time"

	"clubhub/internal/domain/member"
	reqdto "clubhub/internal/handler/dto/request"
	"clubhub/internal/pkg/config"
	"clubhub/internal/pkg/jwt"
	"clubhub/tests/common/dbtest"
	"clubhub/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

type JWTTestHelper struct {
	pool *pgxpool.Pool
	cfg  config.JWTConfig
}

func NewJWTTestHelper(pool *pgxpool.Pool, cfg config.JWTConfig) *JWTTestHelper {
	return &JWTTestHelper{pool: pool, cfg: cfg}
}

func (h *JWTTestHelper) CreateTestMember(t *testing.T, email, role string) uuid.UUID {
	t.Helper()
	return dbtest.CreateTestMember(t, h.pool, email, role)
}

func (h *JWTTestHelper) LoginMember(t *testing.T, router *gin.Engine, email, password string) string {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, "/api/auth/login",
		reqdto.LoginRequest{Email: email, Password: password}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	cookie := httptest.ExtractCookie(w, "access_token")
	require.NotNil(t, cookie, "access token cookie not set")
	require.NotEmpty(t, cookie.Value, "access token cookie is empty")

	return cookie.Value
}

func (h *JWTTestHelper) CreateAndLogin(t *testing.T, router *gin.Engine, email, role string) string {
	t.Helper()
	h.CreateTestMember(t, email, role)
	return h.LoginMember(t, router, email, "password123")
}

func (h *JWTTestHelper) GenerateToken(t *testing.T, memberID uuid.UUID, role member.Role) string {
	t.Helper()
	duration, _ := time.ParseDuration(h.cfg.AccessTokenDuration)
	refreshDuration, _ := time.ParseDuration(h.cfg.RefreshTokenDuration)
	service := jwt.NewService(h.cfg.Secret, duration, refreshDuration)
	token, err := service.GenerateAccessToken(memberID, role)
	require.NoError(t, err)
	return token
}

func (h *JWTTestHelper) CreateExpiredToken(t *testing.T, memberID uuid.UUID, role member.Role) string {
	t.Helper()
	refreshDuration, _ := time.ParseDuration(h.cfg.RefreshTokenDuration)
	service := jwt.NewService(h.cfg.Secret, 1*time.Millisecond, refreshDuration)
	token, err := service.GenerateAccessToken(memberID, role)
	require.NoError(t, err)
	time.Sleep(10 * time.Millisecond)
	return token
}
