package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/Pruthvi98/klaw/internal/domain/user"
	"github.com/Pruthvi98/klaw/internal/handler/httperr"
	"github.com/Pruthvi98/klaw/internal/pkg/cookie"
	"github.com/Pruthvi98/klaw/internal/pkg/errs"
	"github.com/Pruthvi98/klaw/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
}

const ctxActorKey = "actor"

func NewAuthMiddleware(tokenValidator usecase.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("missing access token"), "Access token required", nil)
			return
		}

		actor, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid or expired token", nil)
			return
		}

		c.Set(ctxActorKey, actor)
		c.Next()
	}
}

// RequireApproverRole gates decision endpoints; it must run after
// RequireAuth. Fine-grained permission checks stay in the usecases.
func (m *AuthMiddleware) RequireApproverRole() gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, ok := GetActor(c)
		if !ok {
			httperr.AbortWithError(c, http.StatusInternalServerError, errs.New("actor missing in context"), "Internal server error", nil)
			return
		}

		if actor.Role != user.RoleApprover && actor.Role != user.RoleSuperadmin {
			httperr.AbortWithError(c, http.StatusForbidden, errs.New("approver role required"), "Insufficient permissions", nil)
			return
		}

		c.Next()
	}
}

func extractToken(c *gin.Context) string {
	if token := cookie.GetAccessToken(c); token != "" {
		return token
	}
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(authHeader[len("Bearer "):])
	}
	return ""
}

// GetActor returns the authenticated caller set by RequireAuth.
func GetActor(c *gin.Context) (usecase.ActorContext, bool) {
	v, exists := c.Get(ctxActorKey)
	if !exists {
		return usecase.ActorContext{}, false
	}
	actor, ok := v.(usecase.ActorContext)
	return actor, ok
}
