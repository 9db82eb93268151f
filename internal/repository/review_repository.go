package repository

import (
	"github.com/Coder-GW/Order-Delivery-Management-System/internal/models"

	"gorm.io/gorm"
)

type ReviewRepository interface {
	Create(review *models.Review) error
	GetByCustomerID(customerID uint) ([]models.Review, error)
}

type reviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &reviewRepository{db: db}
}

func (r *reviewRepository) Create(review *models.Review) error {
	return r.db.Create(review).Error
}

func (r *reviewRepository) GetByCustomerID(customerID uint) ([]models.Review, error) {
	var reviews []models.Review
	err := r.db.Where("customer_id = ?", customerID).
		Order("created_at desc").
		Find(&reviews).Error
	return reviews, err
}
