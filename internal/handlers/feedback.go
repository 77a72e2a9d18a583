package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"storefront-backend/internal/models"
	"storefront-backend/internal/store"
)

type feedbackRequest struct {
	Message      string `json:"message" binding:"required"`
	Email        string `json:"email"`
	UserID       string `json:"userId"`
	ErrorDetails string `json:"errorDetails"`
}

// SubmitFeedback appends one free-form message to the feedback log.
func SubmitFeedback(feedback store.FeedbackStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /feedback"
		defer handlePanic(c, route)

		var req feedbackRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondWithError(c, http.StatusBadRequest, route, "message is required")
			return
		}

		entry := models.Feedback{
			Date:         time.Now(),
			Message:      req.Message,
			Email:        req.Email,
			UserID:       req.UserID,
			ErrorDetails: req.ErrorDetails,
			Status:       "New",
		}
		if entry.Email == "" {
			entry.Email = "Anonymous"
		}
		if entry.UserID == "" {
			entry.UserID = "Not logged in"
		}
		if entry.ErrorDetails == "" {
			entry.ErrorDetails = "No error details"
		}

		ctx, cancel := requestContext(c)
		defer cancel()

		if err := feedback.Append(ctx, &entry); err != nil {
			respondError(c, route, err)
			return
		}

		c.JSON(http.StatusCreated, gin.H{"success": true})
	}
}
