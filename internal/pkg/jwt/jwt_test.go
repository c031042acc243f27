//go:build unit

package jwt_test

import (
	"testing"
	"time"

	"booth-reservation/internal/pkg/jwt"
	"booth-reservation/internal/usecase/shared"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateToken(t *testing.T) {
	svc := jwt.NewService("secret", "identity")
	userID := uuid.New()

	t.Run("round trip keeps the actor", func(t *testing.T) {
		token, err := svc.GenerateToken(userID, shared.RoleOrganizer, time.Hour)
		require.NoError(t, err)

		claims, err := svc.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, shared.Actor{UserID: userID, Role: shared.RoleOrganizer}, claims.Actor())
	})

	t.Run("expired", func(t *testing.T) {
		token, err := svc.GenerateToken(userID, shared.RoleRenter, -time.Minute)
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrExpiredToken)
	})

	t.Run("wrong secret", func(t *testing.T) {
		token, err := jwt.NewService("other", "identity").GenerateToken(userID, shared.RoleRenter, time.Hour)
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("wrong issuer", func(t *testing.T) {
		token, err := jwt.NewService("secret", "someone-else").GenerateToken(userID, shared.RoleRenter, time.Hour)
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("unsigned token", func(t *testing.T) {
		token := gojwt.NewWithClaims(gojwt.SigningMethodNone, jwt.Claims{UserID: userID, Role: "admin"})
		raw, err := token.SignedString(gojwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = svc.ValidateToken(raw)
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("unknown role degrades to no privileges", func(t *testing.T) {
		claims := &jwt.Claims{UserID: userID, Role: "superuser"}
		assert.Equal(t, shared.RoleUnknown, claims.Actor().Role)
	})
}
