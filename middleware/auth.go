package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"playlistpulse/models"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// SessionClaims carries the identity minted by the external OAuth flow.
// This service only verifies session tokens, it never issues them.
type SessionClaims struct {
	Email    string `json:"email"`
	Username string `json:"name"`
	jwt.RegisteredClaims
}

const (
	ctxUserEmail = "userEmail"
	ctxUsername  = "username"
)

func SessionAuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Skip middleware for OPTIONS requests (CORS preflight)
		if c.Request.Method == "OPTIONS" {
			c.Next()
			return
		}

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			// Try to get from query parameter
			token := c.Query("token")
			if token == "" {
				c.JSON(http.StatusUnauthorized, gin.H{
					"error":   "Authentication required",
					"message": "No session token provided",
				})
				c.Abort()
				return
			}
			authHeader = "Bearer " + token
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error":   "Invalid authorization header",
				"message": "Format should be: Bearer <token>",
			})
			c.Abort()
			return
		}

		claims := &SessionClaims{}
		token, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return []byte(secret), nil
		})

		if err != nil || !token.Valid || claims.Email == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error":   "Invalid session",
				"message": "Session token validation failed",
			})
			c.Abort()
			return
		}

		c.Set(ctxUserEmail, claims.Email)
		c.Set(ctxUsername, claims.Username)
		c.Next()
	}
}

// CurrentIdentity returns the caller identity placed in the context by
// SessionAuthMiddleware.
func CurrentIdentity(c *gin.Context) (models.Identity, bool) {
	email := c.GetString(ctxUserEmail)
	if email == "" {
		return models.Identity{}, false
	}
	return models.Identity{Email: email, Username: c.GetString(ctxUsername)}, true
}
