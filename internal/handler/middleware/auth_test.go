//go:build unit

package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"techfest-backend/internal/handler/middleware"
	"techfest-backend/internal/pkg/config"
	"techfest-backend/internal/pkg/identity"
	"techfest-backend/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthRouter(t *testing.T) (*gin.Engine, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := config.NewTestConfig()
	svc := identity.NewService(cfg.Auth.JWTSecret)
	authMw := middleware.NewAuthMiddleware(usecase.NewTokenValidator(svc))

	router := gin.New()
	router.GET("/protected", authMw.RequireAuth(), func(c *gin.Context) {
		caller, ok := middleware.GetCaller(c)
		require.True(t, ok)
		c.JSON(http.StatusOK, gin.H{"uid": caller.UID, "email": caller.Email})
	})

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, identity.Claims{
		UID:   "uid-1",
		Email: "asha@example.com",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	signed, err := token.SignedString([]byte(cfg.Auth.JWTSecret))
	require.NoError(t, err)

	return router, signed
}

func TestRequireAuth(t *testing.T) {
	t.Run("valid bearer token passes", func(t *testing.T) {
		router, token := newAuthRouter(t)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "uid-1")
	})

	t.Run("missing header is rejected", func(t *testing.T) {
		router, _ := newAuthRouter(t)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("malformed header is rejected", func(t *testing.T) {
		router, token := newAuthRouter(t)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", token)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("invalid token is rejected", func(t *testing.T) {
		router, _ := newAuthRouter(t)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer not.a.token")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
