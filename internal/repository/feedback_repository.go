package repository

import (
	"github.com/Coder-GW/Order-Delivery-Management-System/internal/models"

	"gorm.io/gorm"
)

type FeedbackRepository interface {
	Create(feedback *models.Feedback) error
	GetByCustomerID(customerID uint) ([]models.Feedback, error)
}

type feedbackRepository struct {
	db *gorm.DB
}

func NewFeedbackRepository(db *gorm.DB) FeedbackRepository {
	return &feedbackRepository{db: db}
}

func (r *feedbackRepository) Create(feedback *models.Feedback) error {
	return r.db.Create(feedback).Error
}

func (r *feedbackRepository) GetByCustomerID(customerID uint) ([]models.Feedback, error) {
	var feedback []models.Feedback
	err := r.db.Where("customer_id = ?", customerID).
		Order("created_at desc").
		Find(&feedback).Error
	return feedback, err
}
