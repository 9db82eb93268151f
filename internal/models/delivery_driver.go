package models

import (
	"time"

	"gorm.io/gorm"
)

type DeliveryDriver struct {
	ID            uint           `json:"id" gorm:"primaryKey"`
	DriverID      string         `json:"driver_id" gorm:"column:driver_id;unique;not null"`
	Name          string         `json:"name" gorm:"not null"`
	ContactNumber string         `json:"contact_number"`
	LicenseNumber string         `json:"license_number"`
	VehicleInfo   string         `json:"vehicle_info"`
	IsAvailable   bool           `json:"is_available" gorm:"default:true"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `json:"deleted_at" gorm:"index"`
}
