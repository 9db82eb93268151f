package repository

import (
	"github.com/Coder-GW/Order-Delivery-Management-System/internal/models"

	"gorm.io/gorm"
)

type OrderRepository interface {
	Create(order *models.Order) error
	GetByID(id uint) (*models.Order, error)
	GetPendingConfirmation() ([]models.Order, error)
	GetByStatus(status string) ([]models.Order, error)
	GetByCustomerID(customerID uint) ([]models.Order, error)
	UpdateStatus(id uint, status string) error
}

type orderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

func (r *orderRepository) Create(order *models.Order) error {
	return r.db.Create(order).Error
}

func (r *orderRepository) GetByID(id uint) (*models.Order, error) {
	var order models.Order
	err := r.db.First(&order, id).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) GetPendingConfirmation() ([]models.Order, error) {
	var orders []models.Order
	err := r.db.Where("status ILIKE ?", "%"+string(models.OrderPendingConfirmation)+"%").
		Order("order_id asc").
		Find(&orders).Error
	return orders, err
}

func (r *orderRepository) GetByStatus(status string) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.Where("status = ?", status).
		Order("created_at desc").
		Find(&orders).Error
	return orders, err
}

func (r *orderRepository) GetByCustomerID(customerID uint) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.Where("customer_id = ?", customerID).
		Order("created_at desc").
		Find(&orders).Error
	return orders, err
}

func (r *orderRepository) UpdateStatus(id uint, status string) error {
	return r.db.Model(&models.Order{}).Where("order_id = ?", id).Update("status", status).Error
}
