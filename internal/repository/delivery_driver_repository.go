package repository

import (
	"github.com/Coder-GW/Order-Delivery-Management-System/internal/models"

	"gorm.io/gorm"
)

type DeliveryDriverRepository interface {
	Create(driver *models.DeliveryDriver) error
	GetByDriverID(driverID string) (*models.DeliveryDriver, error)
	GetAvailable() ([]models.DeliveryDriver, error)
	GetAll() ([]models.DeliveryDriver, error)
	Update(driver *models.DeliveryDriver) error
}

type deliveryDriverRepository struct {
	db *gorm.DB
}

func NewDeliveryDriverRepository(db *gorm.DB) DeliveryDriverRepository {
	return &deliveryDriverRepository{db: db}
}

func (r *deliveryDriverRepository) Create(driver *models.DeliveryDriver) error {
	return r.db.Create(driver).Error
}

func (r *deliveryDriverRepository) GetByDriverID(driverID string) (*models.DeliveryDriver, error) {
	var driver models.DeliveryDriver
	err := r.db.Where("driver_id = ?", driverID).First(&driver).Error
	if err != nil {
		return nil, err
	}
	return &driver, nil
}

func (r *deliveryDriverRepository) GetAvailable() ([]models.DeliveryDriver, error) {
	var drivers []models.DeliveryDriver
	err := r.db.Where("is_available = ?", true).Find(&drivers).Error
	return drivers, err
}

func (r *deliveryDriverRepository) GetAll() ([]models.DeliveryDriver, error) {
	var drivers []models.DeliveryDriver
	err := r.db.Order("driver_id asc").Find(&drivers).Error
	return drivers, err
}

func (r *deliveryDriverRepository) Update(driver *models.DeliveryDriver) error {
	return r.db.Save(driver).Error
}
