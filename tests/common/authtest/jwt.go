//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"resource-desk/internal/domain/user"
	"resource-desk/internal/pkg/clock"
	"resource-desk/internal/pkg/config"
	"resource-desk/internal/pkg/jwt"

	"github.com/stretchr/testify/require"
)

type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) GenerateToken(t *testing.T, userID int64, email string, role user.Role) string {
	t.Helper()
	duration, err := time.ParseDuration(h.cfg.Duration)
	require.NoError(t, err)
	service := jwt.NewService(h.cfg.Secret, duration, clock.NewRealClock())
	token, err := service.GenerateToken(userID, email, role)
	require.NoError(t, err)
	return token
}

func (h *JWTHelper) CreateExpiredToken(t *testing.T, userID int64, email string, role user.Role) string {
	t.Helper()
	// A clock pinned in the past expires the token at issue time.
	past := clock.NewMockClock(time.Now().Add(-24 * time.Hour))
	service := jwt.NewService(h.cfg.Secret, time.Minute, past)
	token, err := service.GenerateToken(userID, email, role)
	require.NoError(t, err)
	return token
}
