package middleware

import (
	"net/http"
	"strings"

	"newsdesk-http-service/services"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
)

var jwtService services.InterfaceJWTService

// InitAuthMiddleware wires the JWT service used by the auth middleware
func InitAuthMiddleware(svc services.InterfaceJWTService) {
	jwtService = svc
}

func unauthorized(c *gin.Context, message string) {
	c.JSON(http.StatusUnauthorized, gin.H{
		"success": false,
		"message": message,
	})
	c.Abort()
}

// Authentication validates the bearer token and stores the claims on the
// context. Role checks happen in the services against a fresh user row, so
// this middleware only establishes identity.
func Authentication() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			unauthorized(c, "Authorization header is required")
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			unauthorized(c, "Authorization header format must be Bearer {token}")
			return
		}
		tokenString := parts[1]
		if tokenString == "" {
			unauthorized(c, "Invalid token format")
			return
		}

		token, err := jwtService.ValidateToken(tokenString)
		if err != nil || !token.Valid {
			unauthorized(c, "Invalid or expired token")
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			unauthorized(c, "Invalid token claims")
			return
		}

		userID, ok := claims["user_id"].(float64)
		if !ok {
			unauthorized(c, "Invalid token claims")
			return
		}

		c.Set("userID", uint(userID))
		if role, ok := claims["role"].(string); ok {
			c.Set("role", role)
		}
		c.Set("claims", claims)
		c.Next()
	}
}

// RequireRoles rejects tokens whose role claim is not in the allowed set.
// This is a fast pre-check; the controllers re-verify against the database.
func RequireRoles(roles ...string) gin.HandlerFunc {
	allowed := make(map[string]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}

	return func(c *gin.Context) {
		role, ok := c.Get("role")
		if !ok {
			unauthorized(c, "authentication required")
			return
		}
		if roleStr, _ := role.(string); !allowed[roleStr] {
			c.JSON(http.StatusForbidden, gin.H{
				"success": false,
				"message": "insufficient permissions",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}
