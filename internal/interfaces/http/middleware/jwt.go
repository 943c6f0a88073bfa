package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shoply/backend/internal/infrastructure/auth"
	"github.com/shoply/backend/internal/interfaces/http/dto"
)

// Context keys set by the JWT middleware
const (
	JWTUserIDKey  = "jwt_user_id"
	JWTIsAdminKey = "jwt_is_admin"
	AuthHeaderKey = "Authorization"
	BearerPrefix  = "Bearer "
)

// JWTAuth validates the bearer token and stores the caller's identity
// in the gin context
func JWTAuth(jwtService *auth.JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader(AuthHeaderKey)
		if authHeader == "" {
			abortUnauthorized(c, "Missing authorization header")
			return
		}
		if !strings.HasPrefix(authHeader, BearerPrefix) {
			abortUnauthorized(c, "Invalid authorization header format")
			return
		}

		tokenString := strings.TrimPrefix(authHeader, BearerPrefix)
		claims, err := jwtService.ValidateToken(tokenString)
		if err != nil {
			abortUnauthorized(c, "Token validation failed")
			return
		}

		userID, err := claims.UserUUID()
		if err != nil {
			abortUnauthorized(c, "Token carries no user identity")
			return
		}

		c.Set(JWTUserIDKey, userID)
		c.Set(JWTIsAdminKey, claims.IsAdmin)
		c.Next()
	}
}

// RequireAdmin rejects requests whose token lacks the admin flag.
// It must run after JWTAuth.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !GetIsAdmin(c) {
			c.AbortWithStatusJSON(http.StatusForbidden,
				dto.NewErrorResponse("FORBIDDEN", "Administrator access required", GetRequestID(c)))
			return
		}
		c.Next()
	}
}

// GetUserID returns the authenticated user ID from the gin context
func GetUserID(c *gin.Context) (uuid.UUID, bool) {
	value, exists := c.Get(JWTUserIDKey)
	if !exists {
		return uuid.Nil, false
	}
	userID, ok := value.(uuid.UUID)
	return userID, ok
}

// GetIsAdmin reports whether the authenticated user is an administrator
func GetIsAdmin(c *gin.Context) bool {
	return c.GetBool(JWTIsAdminKey)
}

func abortUnauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized,
		dto.NewErrorResponse(dto.ErrCodeUnauthorized, message, GetRequestID(c)))
}
