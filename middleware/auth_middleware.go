package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/reviewhub-api/models"
	"github.com/reviewhub-api/repositories"
	"github.com/reviewhub-api/services"
)

const userContextKey = "user"

// RequireAuth validates the Bearer token and loads the requester's user
// row into the context. The row is loaded per request so role changes and
// the superuser bit take effect immediately, not at next token issue.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := resolveRequester(c)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{
				"status":  "error",
				"message": err.Error(),
			})
			c.Abort()
			return
		}
		if user == nil {
			c.JSON(http.StatusUnauthorized, gin.H{
				"status":  "error",
				"message": "authentication required",
			})
			c.Abort()
			return
		}

		c.Set(userContextKey, user)
		c.Next()
	}
}

// OptionalAuth resolves the requester when a token is present and lets
// anonymous requests through. Used on endpoints whose reads are public.
func OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := resolveRequester(c)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{
				"status":  "error",
				"message": err.Error(),
			})
			c.Abort()
			return
		}
		if user != nil {
			c.Set(userContextKey, user)
		}
		c.Next()
	}
}

// CurrentUser returns the authenticated requester, nil for anonymous
func CurrentUser(c *gin.Context) *models.User {
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

// resolveRequester parses the Authorization header. Returns (nil, nil)
// when no credentials were presented at all.
func resolveRequester(c *gin.Context) (*models.User, error) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return nil, nil
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		return nil, errors.New("invalid authorization header format")
	}

	claims, err := services.ValidateToken(parts[1])
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, errors.New("token has expired")
		case errors.Is(err, jwt.ErrTokenMalformed):
			return nil, errors.New("token is malformed")
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return nil, errors.New("invalid token signature")
		default:
			return nil, errors.New("token validation failed")
		}
	}

	user, err := repositories.NewUserRepository().FindByID(claims.UserID)
	if err != nil {
		return nil, errors.New("token user no longer exists")
	}
	return &user, nil
}
