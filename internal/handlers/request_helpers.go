package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"storefront-backend/internal/apperr"
)

const requestTimeout = 5 * time.Second

func handlePanic(c *gin.Context, route string) {
	if r := recover(); r != nil {
		log.Printf("[%s] panic recovered: %v", route, r)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

func requestContext(c *gin.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request.Context(), requestTimeout)
}

func respondWithError(c *gin.Context, status int, route string, message string) {
	log.Printf("[%s] returning error %d: %s", route, status, message)
	c.AbortWithStatusJSON(status, gin.H{"error": message})
}

// respondError maps the error taxonomy onto HTTP statuses: validation
// 400, not-found 404, authorization 401/403, upstream 502 with a
// generic message (the raw error goes to the log only).
func respondError(c *gin.Context, route string, err error) {
	var validation apperr.ValidationError
	if errors.As(err, &validation) {
		respondWithError(c, http.StatusBadRequest, route, validation.Msg)
		return
	}

	var notFound apperr.NotFoundError
	if errors.As(err, &notFound) {
		respondWithError(c, http.StatusNotFound, route, notFound.Error())
		return
	}

	var authz apperr.AuthorizationError
	if errors.As(err, &authz) {
		status := http.StatusUnauthorized
		if authz.Forbidden {
			status = http.StatusForbidden
		}
		respondWithError(c, status, route, authz.Msg)
		return
	}

	var upstream apperr.UpstreamError
	if errors.As(err, &upstream) {
		log.Printf("[%s] upstream failure: %v", route, err)
		respondWithError(c, http.StatusBadGateway, route, "service temporarily unavailable, please try again")
		return
	}

	log.Printf("[%s] unexpected error: %v", route, err)
	respondWithError(c, http.StatusInternalServerError, route, "internal server error")
}
