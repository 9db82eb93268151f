package models

import (
	"time"

	"gorm.io/gorm"
)

// Invoice amounts are stored as fixed two-decimal strings to match the
// invoices table. At most one invoice may exist per order; enforcement is a
// read-then-write check plus the unique index below.
type Invoice struct {
	InvoiceID   uint           `json:"invoice_id" gorm:"primaryKey;column:invoice_id"`
	OrderID     uint           `json:"order_id" gorm:"uniqueIndex;not null"`
	CustomerID  uint           `json:"customer_id" gorm:"not null"`
	ItemsTotal  string         `json:"items_total" gorm:"not null"`
	TotalAmount string         `json:"total_amount" gorm:"not null"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `json:"deleted_at" gorm:"index"`
}
