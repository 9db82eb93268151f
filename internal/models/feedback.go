package models

import (
	"time"

	"gorm.io/gorm"
)

type Feedback struct {
	ID         uint           `json:"id" gorm:"primaryKey"`
	CustomerID uint           `json:"customer_id" gorm:"not null"`
	Title      string         `json:"title" gorm:"not null"`
	Context    string         `json:"context" gorm:"type:text;not null"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `json:"deleted_at" gorm:"index"`
}
