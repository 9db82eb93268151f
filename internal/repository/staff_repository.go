package repository

import (
	"github.com/Coder-GW/Order-Delivery-Management-System/internal/models"

	"gorm.io/gorm"
)

type StaffRepository interface {
	Create(staff *models.Staff) error
	GetByStaffID(staffID string) (*models.Staff, error)
	Update(staff *models.Staff) error
}

type staffRepository struct {
	db *gorm.DB
}

func NewStaffRepository(db *gorm.DB) StaffRepository {
	return &staffRepository{db: db}
}

func (r *staffRepository) Create(staff *models.Staff) error {
	return r.db.Create(staff).Error
}

func (r *staffRepository) GetByStaffID(staffID string) (*models.Staff, error) {
	var staff models.Staff
	err := r.db.Where("staffid = ?", staffID).First(&staff).Error
	if err != nil {
		return nil, err
	}
	return &staff, nil
}

func (r *staffRepository) Update(staff *models.Staff) error {
	return r.db.Save(staff).Error
}
