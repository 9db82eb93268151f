package models

import (
	"time"

	"gorm.io/gorm"
)

type Staff struct {
	ID           uint           `json:"id" gorm:"primaryKey"`
	StaffID      string         `json:"staffid" gorm:"column:staffid;unique;not null"`
	Name         string         `json:"name" gorm:"not null"`
	Email        string         `json:"email"`
	PasswordHash string         `json:"-" gorm:"not null"`
	IsActive     bool           `json:"is_active" gorm:"default:true"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `json:"deleted_at" gorm:"index"`
}

func (Staff) TableName() string {
	return "inhouse_staff"
}
