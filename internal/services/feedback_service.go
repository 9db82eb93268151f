package services

import (
	"errors"
	"fmt"

	"github.com/Coder-GW/Order-Delivery-Management-System/internal/models"
	"github.com/Coder-GW/Order-Delivery-Management-System/internal/repository"
)

var (
	ErrMissingFeedbackFields = errors.New("customer id, title and context are required")
	ErrInvalidRating         = errors.New("rating must be between 1 and 5")
)

type FeedbackService interface {
	SubmitFeedback(feedback *models.Feedback) error
	SubmitReview(review *models.Review) error
	GetCustomerFeedback(customerID uint) ([]models.Feedback, error)
	GetCustomerReviews(customerID uint) ([]models.Review, error)
}

type feedbackService struct {
	feedbackRepo repository.FeedbackRepository
	reviewRepo   repository.ReviewRepository
}

func NewFeedbackService(feedbackRepo repository.FeedbackRepository, reviewRepo repository.ReviewRepository) FeedbackService {
	return &feedbackService{feedbackRepo: feedbackRepo, reviewRepo: reviewRepo}
}

func (s *feedbackService) SubmitFeedback(feedback *models.Feedback) error {
	if feedback.CustomerID == 0 || feedback.Title == "" || feedback.Context == "" {
		return ErrMissingFeedbackFields
	}

	if err := s.feedbackRepo.Create(feedback); err != nil {
		return fmt.Errorf("failed to save feedback: %w", err)
	}
	return nil
}

// SubmitReview stores a customer rating with an optional free-text review.
func (s *feedbackService) SubmitReview(review *models.Review) error {
	if review.CustomerID == 0 {
		return ErrMissingFeedbackFields
	}
	if review.Rating < 1 || review.Rating > 5 {
		return ErrInvalidRating
	}

	if err := s.reviewRepo.Create(review); err != nil {
		return fmt.Errorf("failed to save review: %w", err)
	}
	return nil
}

func (s *feedbackService) GetCustomerFeedback(customerID uint) ([]models.Feedback, error) {
	return s.feedbackRepo.GetByCustomerID(customerID)
}

func (s *feedbackService) GetCustomerReviews(customerID uint) ([]models.Review, error) {
	return s.reviewRepo.GetByCustomerID(customerID)
}
