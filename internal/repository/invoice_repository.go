package repository

import (
	"github.com/Coder-GW/Order-Delivery-Management-System/internal/models"

	"gorm.io/gorm"
)

type InvoiceRepository interface {
	Create(invoice *models.Invoice) error
	GetByOrderID(orderID uint) ([]models.Invoice, error)
	GetByID(id uint) (*models.Invoice, error)
}

type invoiceRepository struct {
	db *gorm.DB
}

func NewInvoiceRepository(db *gorm.DB) InvoiceRepository {
	return &invoiceRepository{db: db}
}

func (r *invoiceRepository) Create(invoice *models.Invoice) error {
	return r.db.Create(invoice).Error
}

func (r *invoiceRepository) GetByOrderID(orderID uint) ([]models.Invoice, error) {
	var invoices []models.Invoice
	err := r.db.Where("order_id = ?", orderID).Find(&invoices).Error
	return invoices, err
}

func (r *invoiceRepository) GetByID(id uint) (*models.Invoice, error) {
	var invoice models.Invoice
	err := r.db.First(&invoice, id).Error
	if err != nil {
		return nil, err
	}
	return &invoice, nil
}
