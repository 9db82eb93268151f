package handlers

import (
	"errors"
	"net/http"

	"github.com/Coder-GW/Order-Delivery-Management-System/internal/models"
	"github.com/Coder-GW/Order-Delivery-Management-System/internal/services"

	"github.com/gin-gonic/gin"
)

type FeedbackHandler struct {
	feedbackService services.FeedbackService
}

func NewFeedbackHandler(feedbackService services.FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{feedbackService: feedbackService}
}

func (h *FeedbackHandler) SubmitFeedback(c *gin.Context) {
	var feedback models.Feedback
	if err := c.ShouldBindJSON(&feedback); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if err := h.feedbackService.SubmitFeedback(&feedback); err != nil {
		if errors.Is(err, services.ErrMissingFeedbackFields) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error saving feedback"})
		return
	}

	c.JSON(http.StatusCreated, feedback)
}

func (h *FeedbackHandler) SubmitReview(c *gin.Context) {
	var review models.Review
	if err := c.ShouldBindJSON(&review); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if err := h.feedbackService.SubmitReview(&review); err != nil {
		switch {
		case errors.Is(err, services.ErrMissingFeedbackFields), errors.Is(err, services.ErrInvalidRating):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error saving review"})
		}
		return
	}

	c.JSON(http.StatusCreated, review)
}
