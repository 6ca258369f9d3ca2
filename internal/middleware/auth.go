package middleware

import (
	"net/http"
	"strings"

	"backend/internal/model"
	"backend/internal/repository"
	"backend/internal/token"
	"backend/pkg/response"

	"github.com/gin-gonic/gin"
)

// Context keys set by RequireAuth.
const (
	ContextUser     = "user"
	ContextUserID   = "userID"
	ContextUserRole = "userRole"
)

// RequireAuth extracts the bearer token, verifies it, resolves the user
// record (password stays behind in the model's json:"-" field) and attaches
// it to the request context. Single attempt, no caching across requests.
func RequireAuth(tokens *token.Manager, users repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.Err("Authorization is missing"))
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.Err("Invalid authorization format. Expected 'Bearer <token>'"))
			return
		}

		claims, err := tokens.Verify(parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.Err("Invalid token"))
			return
		}

		user, err := users.GetByID(c.Request.Context(), claims.UserID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusNotFound, response.Err("User not found"))
			return
		}

		c.Set(ContextUser, user)
		c.Set(ContextUserID, user.ID.String())
		c.Set(ContextUserRole, user.Role)

		c.Next()
	}
}

// RequireRole gates a route to the given roles. It must run after
// RequireAuth. Role checks happen here, server-side, not in the client.
func RequireRole(allowedRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString(ContextUserRole)

		for _, allowed := range allowedRoles {
			if role == allowed {
				c.Next()
				return
			}
		}

		c.AbortWithStatusJSON(http.StatusForbidden, response.Err("Access denied: insufficient permissions"))
	}
}

// CurrentUser returns the authenticated user attached by RequireAuth.
func CurrentUser(c *gin.Context) (*model.User, bool) {
	value, exists := c.Get(ContextUser)
	if !exists {
		return nil, false
	}
	user, ok := value.(*model.User)
	return user, ok
}
