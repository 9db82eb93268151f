package models

import (
	"time"

	"gorm.io/gorm"
)

type Order struct {
	OrderID    uint           `json:"order_id" gorm:"primaryKey;column:order_id"`
	CustomerID uint           `json:"customer_id" gorm:"not null"`
	Items      string         `json:"items" gorm:"not null"` // descriptor: "<name>" or "<name>|<quantity>"
	Status     string         `json:"status" gorm:"default:'Pending Confirmation'"`
	OrderTotal float64        `json:"order_total" gorm:"not null"` // snapshot, never recomputed
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `json:"deleted_at" gorm:"index"`
}

type OrderStatus string

const (
	OrderPendingConfirmation OrderStatus = "Pending Confirmation"
	OrderConfirmed           OrderStatus = "Confirmed"
)
