package models

import (
	"time"

	"gorm.io/gorm"
)

type DeliveryJob struct {
	ID               uint           `json:"id" gorm:"primaryKey"`
	JobID            string         `json:"job_id" gorm:"column:job_id;unique;not null"`
	CustomerName     string         `json:"customer_name" gorm:"not null"`
	DeliveryAddress  string         `json:"delivery_address" gorm:"not null"`
	GoodsDescription string         `json:"goods_description" gorm:"type:text"` // ";"-joined "name|note" pairs
	Status           string         `json:"status" gorm:"default:'Pending'"`
	DeliveryDate     *time.Time     `json:"delivery_date"`
	AssignedDriverID string         `json:"assigned_driver_id"`
	TotalAmount      float64        `json:"total_amount" gorm:"not null"`
	AmountPaid       float64        `json:"amount_paid"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
	DeletedAt        gorm.DeletedAt `json:"deleted_at" gorm:"index"`
}

type DeliveryStatus string

const (
	JobPending   DeliveryStatus = "Pending"
	JobConfirmed DeliveryStatus = "Confirmed"
	JobAssigned  DeliveryStatus = "Assigned"
	JobInTransit DeliveryStatus = "In Transit"
	JobDelivered DeliveryStatus = "Delivered"
	JobCancelled DeliveryStatus = "Cancelled"
)

func (j *DeliveryJob) BalanceDue() float64 {
	return j.TotalAmount - j.AmountPaid
}

func (j *DeliveryJob) IsFullyPaid() bool {
	return j.AmountPaid >= j.TotalAmount
}

// IsTerminal reports whether the job has left the active delivery pipeline.
func (j *DeliveryJob) IsTerminal() bool {
	return j.Status == string(JobDelivered) || j.Status == string(JobCancelled)
}
