package handlers

import (
	"net/http"
	"strings"

	"pizza_delivery/internal/models"
	"pizza_delivery/internal/services"

	"github.com/gin-gonic/gin"
)

const userContextKey = "current_user"

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return ""
}

// resolveUser authenticates the request's Bearer token and stores the user
// in the context. It aborts with 401 itself; it never advances the chain, so
// callers can run further checks before the endpoint executes.
func resolveUser(c *gin.Context, userService services.UserService) (*models.User, bool) {
	token := bearerToken(c)
	if token == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing auth token"})
		return nil, false
	}

	user, err := userService.GetUserByToken(token)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid auth token"})
		return nil, false
	}

	c.Set(userContextKey, user)
	return user, true
}

// AuthRequired resolves the Bearer token to a user and aborts with 401 when
// it cannot.
func AuthRequired(userService services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := resolveUser(c, userService); !ok {
			return
		}
		c.Next()
	}
}

// AdminRequired is AuthRequired plus an admin role gate. The role is checked
// before the chain advances.
func AdminRequired(userService services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := resolveUser(c, userService)
		if !ok {
			return
		}
		if user.Role != string(models.RoleAdmin) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "admin access required"})
			return
		}
		c.Next()
	}
}

func currentUser(c *gin.Context) *models.User {
	value, exists := c.Get(userContextKey)
	if !exists {
		return nil
	}
	user, ok := value.(*models.User)
	if !ok {
		return nil
	}
	return user
}
