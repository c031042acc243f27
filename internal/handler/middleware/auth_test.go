//go:build unit

package middleware_test

import (
	"net/http"
	"testing"
	"time"

	"booth-reservation/internal/handler/middleware"
	"booth-reservation/internal/pkg/jwt"
	"booth-reservation/internal/usecase/shared"
	"booth-reservation/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRouter(svc *jwt.Service, minRole shared.Role) *gin.Engine {
	gin.SetMode(gin.TestMode)
	auth := middleware.NewAuthMiddleware(svc)
	r := gin.New()
	r.GET("/whoami", auth.RequireAuth(), auth.RequireRoleAtLeast(minRole), func(c *gin.Context) {
		actor, _ := middleware.GetActor(c)
		c.JSON(http.StatusOK, gin.H{"userId": actor.UserID.String(), "role": actor.Role.String()})
	})
	return r
}

func TestRequireAuth(t *testing.T) {
	svc := jwt.NewService("test-secret", "identity")
	router := newRouter(svc, shared.RoleRenter)
	userID := uuid.New()

	t.Run("valid token sets the actor", func(t *testing.T) {
		token, err := svc.GenerateToken(userID, shared.RoleOrganizer, time.Hour)
		require.NoError(t, err)

		rec := httptest.PerformRequest(t, router, http.MethodGet, "/whoami", nil, token)

		var body map[string]string
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &body)
		assert.Equal(t, userID.String(), body["userId"])
		assert.Equal(t, "organizer", body["role"])
	})

	t.Run("missing token", func(t *testing.T) {
		rec := httptest.PerformRequest(t, router, http.MethodGet, "/whoami", nil, "")
		httptest.AssertErrorResponse(t, rec, http.StatusUnauthorized, "Access token required")
	})

	t.Run("expired token", func(t *testing.T) {
		token, err := svc.GenerateToken(userID, shared.RoleRenter, -time.Minute)
		require.NoError(t, err)

		rec := httptest.PerformRequest(t, router, http.MethodGet, "/whoami", nil, token)
		httptest.AssertErrorResponse(t, rec, http.StatusUnauthorized, "Invalid or expired token")
	})

	t.Run("token signed with another secret", func(t *testing.T) {
		token, err := jwt.NewService("other-secret", "identity").GenerateToken(userID, shared.RoleAdmin, time.Hour)
		require.NoError(t, err)

		rec := httptest.PerformRequest(t, router, http.MethodGet, "/whoami", nil, token)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestRequireRoleAtLeast(t *testing.T) {
	svc := jwt.NewService("test-secret", "identity")
	router := newRouter(svc, shared.RoleOrganizer)

	cases := []struct {
		role       shared.Role
		expectCode int
	}{
		{shared.RoleUnknown, http.StatusForbidden},
		{shared.RoleRenter, http.StatusForbidden},
		{shared.RoleOrganizer, http.StatusOK},
		{shared.RoleAdmin, http.StatusOK},
	}
	for _, tc := range cases {
		t.Run(tc.role.String(), func(t *testing.T) {
			token, err := svc.GenerateToken(uuid.New(), tc.role, time.Hour)
			require.NoError(t, err)

			rec := httptest.PerformRequest(t, router, http.MethodGet, "/whoami", nil, token)
			assert.Equal(t, tc.expectCode, rec.Code, rec.Body.String())
		})
	}
}
