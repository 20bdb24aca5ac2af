package auth

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// AuthClaimsKey is the key used to store JWT claims in gin context
const AuthClaimsKey = "auth_claims"

// OptionalAuthMiddleware creates a middleware that optionally authenticates.
// If a token is present and valid, claims are added to the context; if it is
// missing or invalid, the request continues without them.
func OptionalAuthMiddleware(jwtService *JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.Next()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			c.Next()
			return
		}

		claims, err := jwtService.ValidateToken(parts[1])
		if err != nil {
			c.Next()
			return
		}

		c.Set(AuthClaimsKey, claims)
		c.Next()
	}
}

// GetAuthClaims retrieves auth claims from gin context
func GetAuthClaims(c *gin.Context) *Claims {
	claims, exists := c.Get(AuthClaimsKey)
	if !exists {
		return nil
	}
	return claims.(*Claims)
}
