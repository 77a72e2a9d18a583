package middleware

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// Identity is the authenticated caller as the external identity
// provider describes it.
type Identity struct {
	UserID string
	Email  string
}

// IdentityFromToken validates a bearer token issued by the identity
// provider and extracts the userId and email claims.
func IdentityFromToken(header, secret string) (Identity, error) {
	raw := strings.TrimSpace(header)
	if raw == "" {
		return Identity{}, errors.New("missing token")
	}

	parts := strings.Split(raw, " ")
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return Identity{}, errors.New("invalid token format")
	}

	token, err := jwt.Parse(parts[1], func(t *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return Identity{}, errors.New("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return Identity{}, errors.New("invalid token claims")
	}

	userID, _ := claims["userId"].(string)
	email, _ := claims["email"].(string)
	if strings.TrimSpace(userID) == "" {
		return Identity{}, errors.New("userId claim missing")
	}

	return Identity{UserID: userID, Email: strings.TrimSpace(email)}, nil
}

// UserAuth validates user tokens and injects the identity into the context.
func UserAuth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, err := IdentityFromToken(c.GetHeader("Authorization"), secret)
		if err != nil {
			log.Println("[AUTH] [ERROR] token validation failed:", err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		c.Set("identity", identity)
		c.Next()
	}
}

// OptionalIdentity extracts the identity when an Authorization header is
// present; anonymous requests pass through with ok=false.
func OptionalIdentity(c *gin.Context, secret string) (Identity, bool) {
	if strings.TrimSpace(c.GetHeader("Authorization")) == "" {
		return Identity{}, false
	}
	identity, err := IdentityFromToken(c.GetHeader("Authorization"), secret)
	if err != nil {
		log.Println("[AUTH] [WARN] ignoring invalid token:", err)
		return Identity{}, false
	}
	return identity, true
}

// CurrentIdentity reads the identity a preceding UserAuth stored.
func CurrentIdentity(c *gin.Context) (Identity, bool) {
	value, exists := c.Get("identity")
	if !exists {
		return Identity{}, false
	}
	identity, ok := value.(Identity)
	return identity, ok
}
