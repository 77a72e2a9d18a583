package middleware

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// AdminAuth gates the back-office API: the caller must authenticate and
// the authenticated email must appear in the configured allow-list.
func AdminAuth(secret string, adminEmails []string) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, err := IdentityFromToken(c.GetHeader("Authorization"), secret)
		if err != nil {
			log.Println("[AUTH] [ERROR] admin token validation failed:", err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		if !isAllowListed(identity.Email, adminEmails) {
			log.Println("[AUTH] [WARN] non-admin access attempt:", identity.Email)
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden"})
			return
		}

		c.Set("identity", identity)
		c.Next()
	}
}

func isAllowListed(email string, adminEmails []string) bool {
	normalized := strings.ToLower(strings.TrimSpace(email))
	if normalized == "" {
		return false
	}
	for _, admin := range adminEmails {
		if normalized == strings.ToLower(strings.TrimSpace(admin)) {
			return true
		}
	}
	return false
}
