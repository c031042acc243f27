//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"booth-reservation/internal/pkg/config"
	"booth-reservation/internal/pkg/jwt"
	"booth-reservation/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// JWTHelper mints tokens the way the identity service would.
type JWTHelper struct {
	service *jwt.Service
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{service: jwt.NewService(cfg.Secret, cfg.Issuer)}
}

func (h *JWTHelper) GenerateToken(t *testing.T, userID uuid.UUID, role shared.Role) string {
	t.Helper()
	token, err := h.service.GenerateToken(userID, role, time.Hour)
	require.NoError(t, err)
	return token
}

func (h *JWTHelper) CreateExpiredToken(t *testing.T, userID uuid.UUID, role shared.Role) string {
	t.Helper()
	token, err := h.service.GenerateToken(userID, role, -time.Minute)
	require.NoError(t, err)
	return token
}

// NewActor returns a fresh actor with the given role and a valid token for it.
func (h *JWTHelper) NewActor(t *testing.T, role shared.Role) (shared.Actor, string) {
	t.Helper()
	actor := shared.Actor{UserID: uuid.New(), Role: role}
	return actor, h.GenerateToken(t, actor.UserID, role)
}
