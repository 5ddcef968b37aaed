package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// Claims are the token claims the booking core consumes. Token issuance
// lives in the identity service; this middleware only verifies and reads.
type Claims struct {
	UserType string `json:"user_type"`
	jwt.RegisteredClaims
}

// AuthMiddleware resolves the bearer token into a principal and places it
// in the gin context as principalID/userType.
func AuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var tokenString string

		authHeader := c.GetHeader("Authorization")
		if authHeader != "" {
			parts := strings.Split(authHeader, " ")
			if len(parts) == 2 && parts[0] == "Bearer" {
				tokenString = parts[1]
			}
		}

		if tokenString == "" {
			abortUnauthorized(c, "authorization header required")
			return
		}

		claims := &Claims{}
		token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			abortUnauthorized(c, "invalid token")
			return
		}

		if claims.Subject == "" || !isKnownUserType(claims.UserType) {
			abortUnauthorized(c, "invalid token claims")
			return
		}

		c.Set("principalID", claims.Subject)
		c.Set("userType", claims.UserType)
		c.Next()
	}
}

func isKnownUserType(userType string) bool {
	switch userType {
	case "tourist", "guide", "admin":
		return true
	}
	return false
}

func abortUnauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"error": gin.H{"code": "unauthorized", "message": message},
	})
}
