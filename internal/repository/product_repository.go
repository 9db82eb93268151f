package repository

import (
	"github.com/Coder-GW/Order-Delivery-Management-System/internal/models"

	"gorm.io/gorm"
)

type ProductRepository interface {
	Create(product *models.Product) error
	GetByName(name string) (*models.Product, error)
	GetAll() ([]models.Product, error)
	UpdateStock(id uint, stock int) error
}

type productRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) Create(product *models.Product) error {
	return r.db.Create(product).Error
}

// GetByName is an exact-name lookup; when multiple rows match, the first one
// wins.
func (r *productRepository) GetByName(name string) (*models.Product, error) {
	var product models.Product
	err := r.db.Where("product_name = ?", name).First(&product).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepository) GetAll() ([]models.Product, error) {
	var products []models.Product
	err := r.db.Order("product_id asc").Find(&products).Error
	return products, err
}

func (r *productRepository) UpdateStock(id uint, stock int) error {
	return r.db.Model(&models.Product{}).Where("product_id = ?", id).Update("stock", stock).Error
}
