package repositories

import (
	"time"

	"supply-chain-app/models"

	"gorm.io/gorm"
)

type ProductRepository struct {
	DB *gorm.DB
}

func NewProductRepository(DB *gorm.DB) *ProductRepository {
	return &ProductRepository{DB: DB}
}

// Create product
func (r *ProductRepository) Create(product *models.Product) error {
	return r.DB.Create(product).Error
}

// Get product by ID
func (r *ProductRepository) GetByID(id uint) (*models.Product, error) {
	var product models.Product
	err := r.DB.First(&product, id).Error
	return &product, err
}

// Get all products in insertion order
func (r *ProductRepository) GetAll() ([]models.Product, error) {
	products := []models.Product{}
	err := r.DB.Order("id").Find(&products).Error
	return products, err
}

// Update product
func (r *ProductRepository) Update(product *models.Product) error {
	return r.DB.Save(product).Error
}

// Delete product, no-op when the row is already gone
func (r *ProductRepository) Delete(id uint) error {
	return r.DB.Delete(&models.Product{}, id).Error
}

// ApplyReorder bumps the stock level and sets the projected delivery date in a
// single UPDATE, so concurrent reorders against the same row cannot lose an
// increment.
func (r *ProductRepository) ApplyReorder(id uint, quantity int, nextDelivery time.Time) error {
	return r.DB.Model(&models.Product{}).Where("id = ?", id).Updates(map[string]interface{}{
		"current_stock": gorm.Expr("current_stock + ?", quantity),
		"next_delivery": nextDelivery,
	}).Error
}
