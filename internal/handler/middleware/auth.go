package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"techfest-backend/internal/usecase"

	"github.com/gin-gonic/gin"
)

const ctxCallerKey = "caller"

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
}

func NewAuthMiddleware(tokenValidator usecase.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

// RequireAuth validates the bearer ID token and attaches the caller identity
// to the request context.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		var token string

		authHeader := c.GetHeader("Authorization")
		if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
			token = strings.TrimSpace(authHeader[len("Bearer "):])
		}

		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error":   "Unauthorized",
				"message": "Missing or invalid authorization header",
			})
			c.Abort()
			return
		}

		caller, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			c.JSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error":   "Unauthorized",
				"message": "Invalid token",
			})
			c.Abort()
			return
		}

		c.Set(ctxCallerKey, caller)
		c.Set("jwt_claims", map[string]any{
			"user_id": caller.UID,
			"email":   caller.Email,
		})
		c.Next()
	}
}

func GetCaller(c *gin.Context) (usecase.Caller, bool) {
	v, exists := c.Get(ctxCallerKey)
	if !exists {
		return usecase.Caller{}, false
	}
	caller, ok := v.(usecase.Caller)
	return caller, ok
}
