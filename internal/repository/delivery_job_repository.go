package repository

import (
	"time"

	"github.com/Coder-GW/Order-Delivery-Management-System/internal/models"

	"gorm.io/gorm"
)

type DeliveryJobRepository interface {
	Create(job *models.DeliveryJob) error
	GetByJobID(jobID string) (*models.DeliveryJob, error)
	GetAll() ([]models.DeliveryJob, error)
	GetActive() ([]models.DeliveryJob, error)
	GetByCustomerName(customerName string) ([]models.DeliveryJob, error)
	Update(job *models.DeliveryJob) error
	ExistsDuplicate(customerName, address string, deliveryDate *time.Time) (bool, error)
	CountAssignedOnDate(driverID string, date time.Time) (int64, error)
	GetDriverScheduleOnDate(driverID string, date time.Time) ([]models.DeliveryJob, error)
}

type deliveryJobRepository struct {
	db *gorm.DB
}

func NewDeliveryJobRepository(db *gorm.DB) DeliveryJobRepository {
	return &deliveryJobRepository{db: db}
}

func (r *deliveryJobRepository) Create(job *models.DeliveryJob) error {
	return r.db.Create(job).Error
}

func (r *deliveryJobRepository) GetByJobID(jobID string) (*models.DeliveryJob, error) {
	var job models.DeliveryJob
	err := r.db.Where("job_id = ?", jobID).First(&job).Error
	if err != nil {
		return nil, err
	}
	return &job, nil
}

func (r *deliveryJobRepository) GetAll() ([]models.DeliveryJob, error) {
	var jobs []models.DeliveryJob
	err := r.db.Order("job_id asc").Find(&jobs).Error
	return jobs, err
}

func (r *deliveryJobRepository) GetActive() ([]models.DeliveryJob, error) {
	var jobs []models.DeliveryJob
	err := r.db.Where("status NOT IN ?", []string{string(models.JobDelivered), string(models.JobCancelled)}).
		Order("delivery_date asc NULLS LAST").
		Find(&jobs).Error
	return jobs, err
}

func (r *deliveryJobRepository) GetByCustomerName(customerName string) ([]models.DeliveryJob, error) {
	var jobs []models.DeliveryJob
	err := r.db.Where("customer_name = ?", customerName).
		Order("job_id asc").
		Find(&jobs).Error
	return jobs, err
}

func (r *deliveryJobRepository) Update(job *models.DeliveryJob) error {
	return r.db.Save(job).Error
}

// ExistsDuplicate matches the same customer and address on the same delivery
// day, which is how duplicate submissions are detected.
func (r *deliveryJobRepository) ExistsDuplicate(customerName, address string, deliveryDate *time.Time) (bool, error) {
	query := r.db.Model(&models.DeliveryJob{}).
		Where("LOWER(customer_name) = LOWER(?) AND LOWER(delivery_address) = LOWER(?)", customerName, address)

	if deliveryDate != nil {
		query = query.Where("DATE(delivery_date) = DATE(?)", *deliveryDate)
	} else {
		query = query.Where("delivery_date IS NULL")
	}

	var count int64
	err := query.Count(&count).Error
	return count > 0, err
}

func (r *deliveryJobRepository) CountAssignedOnDate(driverID string, date time.Time) (int64, error) {
	var count int64
	err := r.db.Model(&models.DeliveryJob{}).
		Where("assigned_driver_id = ? AND DATE(delivery_date) = DATE(?)", driverID, date).
		Where("status IN ?", []string{string(models.JobAssigned), string(models.JobInTransit)}).
		Count(&count).Error
	return count, err
}

// GetDriverScheduleOnDate lists a driver's jobs for one delivery day in
// delivery order.
func (r *deliveryJobRepository) GetDriverScheduleOnDate(driverID string, date time.Time) ([]models.DeliveryJob, error) {
	var jobs []models.DeliveryJob
	err := r.db.Where("assigned_driver_id = ? AND DATE(delivery_date) = DATE(?)", driverID, date).
		Order("delivery_date asc").
		Find(&jobs).Error
	return jobs, err
}
