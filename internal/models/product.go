package models

import (
	"time"

	"gorm.io/gorm"
)

type Product struct {
	ProductID   uint           `json:"product_id" gorm:"primaryKey;column:product_id"`
	ProductName string         `json:"product_name" gorm:"unique;not null"`
	UnitPrice   float64        `json:"unit_price" gorm:"not null"`
	Stock       int            `json:"stock" gorm:"default:0"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `json:"deleted_at" gorm:"index"`
}
