package services

import (
	"testing"

	"github.com/Coder-GW/Order-Delivery-Management-System/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFeedbackFixture() (FeedbackService, *fakeFeedbackRepo, *fakeReviewRepo) {
	feedbackRepo := &fakeFeedbackRepo{}
	reviewRepo := &fakeReviewRepo{}
	return NewFeedbackService(feedbackRepo, reviewRepo), feedbackRepo, reviewRepo
}

func TestSubmitFeedback(t *testing.T) {
	svc, feedbackRepo, _ := newFeedbackFixture()

	feedback := &models.Feedback{
		CustomerID: 7,
		Title:      "Late delivery",
		Context:    "My order arrived a day late",
	}
	require.NoError(t, svc.SubmitFeedback(feedback))

	stored, err := svc.GetCustomerFeedback(7)
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, "Late delivery", stored[0].Title)
	assert.Len(t, feedbackRepo.feedback, 1)
}

func TestSubmitFeedbackMissingFields(t *testing.T) {
	svc, feedbackRepo, _ := newFeedbackFixture()

	err := svc.SubmitFeedback(&models.Feedback{CustomerID: 7, Title: "No context"})
	assert.ErrorIs(t, err, ErrMissingFeedbackFields)
	assert.Empty(t, feedbackRepo.feedback)
}

func TestSubmitReview(t *testing.T) {
	svc, _, reviewRepo := newFeedbackFixture()

	review := &models.Review{CustomerID: 7, Rating: 4.5, Review: "Quick and friendly"}
	require.NoError(t, svc.SubmitReview(review))

	stored, err := svc.GetCustomerReviews(7)
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, 4.5, stored[0].Rating)
	assert.Len(t, reviewRepo.reviews, 1)
}

func TestSubmitReviewRejectsOutOfRangeRating(t *testing.T) {
	svc, _, reviewRepo := newFeedbackFixture()

	err := svc.SubmitReview(&models.Review{CustomerID: 7, Rating: 6})
	assert.ErrorIs(t, err, ErrInvalidRating)

	err = svc.SubmitReview(&models.Review{CustomerID: 7, Rating: 0})
	assert.ErrorIs(t, err, ErrInvalidRating)

	assert.Empty(t, reviewRepo.reviews)
}

func TestSubmitReviewRequiresCustomer(t *testing.T) {
	svc, _, _ := newFeedbackFixture()

	err := svc.SubmitReview(&models.Review{Rating: 3})
	assert.ErrorIs(t, err, ErrMissingFeedbackFields)
}
