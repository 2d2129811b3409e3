package middleware

import (
	"net/http"
	"strings"

	"github.com/craftline/orders-api/config"
	"github.com/craftline/orders-api/models"
	"github.com/craftline/orders-api/utils"
	"github.com/gin-gonic/gin"
)

// EnsureValidToken is a middleware that checks the validity of the bearer
// token issued by POST /auth/login. On success the authenticated user id
// and capability scopes are stored in the Gin context.
func EnsureValidToken(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		auth := c.GetHeader("Authorization")
		if auth == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "MISSING_TOKEN",
					"message": "Authorization header is required",
				},
			})
			c.Abort()
			return
		}

		const bearer = "Bearer "
		if !strings.HasPrefix(auth, bearer) {
			c.JSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "INVALID_TOKEN",
					"message": "Authorization header must use the Bearer scheme",
				},
			})
			c.Abort()
			return
		}

		claims, err := utils.ValidateToken(cfg.JWTSecret, auth[len(bearer):])
		if err != nil {
			config.Logger().WithField("error", err.Error()).Warn("token validation failed")
			c.JSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "INVALID_TOKEN",
					"message": "Failed to validate token",
				},
			})
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("scopes", claims.Scopes)
		c.Next()
	}
}

// GetUserID extracts the authenticated user id from the Gin context
func GetUserID(c *gin.Context) (uint, error) {
	userID, exists := c.Get("user_id")
	if !exists {
		return 0, &AuthError{Code: "MISSING_USER_ID", Message: "User ID not found in context"}
	}

	id, ok := userID.(uint)
	if !ok {
		return 0, &AuthError{Code: "INVALID_USER_ID", Message: "User ID is not an integer"}
	}

	return id, nil
}

// GetScopes extracts the token's capability scopes from the Gin context
func GetScopes(c *gin.Context) (string, error) {
	scopes, exists := c.Get("scopes")
	if !exists {
		return "", &AuthError{Code: "MISSING_SCOPES", Message: "Scopes not found in context"}
	}

	s, ok := scopes.(string)
	if !ok {
		return "", &AuthError{Code: "INVALID_SCOPES", Message: "Scopes are not a string"}
	}

	return s, nil
}

// RequireScope is a middleware that checks if the token has a specific
// capability scope. Managers lacking the scope get a forbidden response.
func RequireScope(scope string) gin.HandlerFunc {
	return RequireAnyScope(scope)
}

// RequireAnyScope is a middleware that passes when the token holds at
// least one of the listed capability scopes
func RequireAnyScope(scopes ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		held, err := GetScopes(c)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "MISSING_SCOPES",
					"message": "Could not retrieve token scopes",
				},
			})
			c.Abort()
			return
		}

		for _, scope := range scopes {
			if models.HasScope(held, scope) {
				c.Next()
				return
			}
		}

		c.JSON(http.StatusForbidden, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "INSUFFICIENT_SCOPE",
				"message": "Insufficient permissions to access this resource",
			},
		})
		c.Abort()
	}
}

// AuthError represents an authentication error
type AuthError struct {
	Code    string
	Message string
}

func (e *AuthError) Error() string {
	return e.Message
}
