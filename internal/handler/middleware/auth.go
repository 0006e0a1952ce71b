package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"fleet-rental/internal/handler/httperr"
	"fleet-rental/internal/pkg/errs"
	"fleet-rental/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var (
	errMissingToken  = errs.New("access token required")
	errInvalidToken  = errs.New("invalid or expired token")
	errMissingRole   = errs.New("role missing from authenticated context")
	errNotAnOperator = errs.New("operator role required")
)

type AuthMiddleware struct {
	tokenService *jwt.Service
}

const (
	ctxUserIDKey   = "user_id"
	ctxUserRoleKey = "user_role"
)

func NewAuthMiddleware(tokenService *jwt.Service) *AuthMiddleware {
	return &AuthMiddleware{
		tokenService: tokenService,
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractBearerToken(c)
		if token == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized, errMissingToken, "Access token required", nil)
			return
		}

		claims, err := m.tokenService.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			httperr.AbortWithError(c, http.StatusUnauthorized, errInvalidToken, "Invalid or expired token", nil)
			return
		}

		c.Set(ctxUserIDKey, claims.UserID)
		c.Set(ctxUserRoleKey, jwt.Role(claims.Role))
		c.Set("jwt_claims", map[string]any{
			"user_id": claims.UserID.String(),
			"role":    claims.Role,
		})
		c.Next()
	}
}

// RequireOperator must run after RequireAuth.
func (m *AuthMiddleware) RequireOperator() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := GetUserRole(c)
		if !ok {
			httperr.AbortWithError(c, http.StatusInternalServerError, errMissingRole, "Internal server error", nil)
			return
		}

		if role != jwt.RoleOperator {
			httperr.AbortWithError(c, http.StatusForbidden, errNotAnOperator, "Insufficient permissions", nil)
			return
		}

		c.Next()
	}
}

func extractBearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(authHeader[len("Bearer "):])
}

func GetUserID(c *gin.Context) (uuid.UUID, bool) {
	userID, exists := c.Get(ctxUserIDKey)
	if !exists {
		return uuid.Nil, false
	}

	id, ok := userID.(uuid.UUID)
	return id, ok
}

func GetUserRole(c *gin.Context) (jwt.Role, bool) {
	userRole, exists := c.Get(ctxUserRoleKey)
	if !exists {
		return "", false
	}

	role, ok := userRole.(jwt.Role)
	return role, ok
}
