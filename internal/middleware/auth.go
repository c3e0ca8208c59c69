package middleware

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"kharcha/internal/config"
	"kharcha/internal/store"
)

// getSessionKey returns the session signing key from configuration
func getSessionKey() []byte {
	return []byte(config.Get().SessionSecret)
}

// SessionClaims represents the claims in an unlock session token
type SessionClaims struct {
	TokenType string `json:"token_type"`
	jwt.RegisteredClaims
}

// GenerateSessionToken issues a session token after a successful unlock.
func GenerateSessionToken() (string, error) {
	now := time.Now()
	claims := &SessionClaims{
		TokenType: "session",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(config.Get().SessionTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    "kharcha",
			Subject:   "local-user",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(getSessionKey())
}

// LockGuard returns a middleware that requires a valid unlock session token
// whenever a PIN is set. With no PIN configured the app is unlocked and all
// requests pass through.
func LockGuard(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		if st.Settings().PINHash == "" {
			c.Next()
			return
		}

		header := c.GetHeader("Authorization")
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unlock required"})
			c.Abort()
			return
		}

		claims := &SessionClaims{}
		token, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return getSessionKey(), nil
		})
		if err != nil || !token.Valid || claims.TokenType != "session" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired session"})
			c.Abort()
			return
		}

		c.Next()
	}
}
