package repositories

import (
	"supply-chain-app/models"

	"gorm.io/gorm"
)

type SupplierRepository struct {
	DB *gorm.DB
}

func NewSupplierRepository(DB *gorm.DB) *SupplierRepository {
	return &SupplierRepository{DB: DB}
}

// Create supplier
func (r *SupplierRepository) Create(supplier *models.Supplier) error {
	return r.DB.Create(supplier).Error
}

// Get supplier by ID
func (r *SupplierRepository) GetByID(id uint) (*models.Supplier, error) {
	var supplier models.Supplier
	err := r.DB.First(&supplier, id).Error
	return &supplier, err
}

// Get all suppliers in insertion order
func (r *SupplierRepository) GetAll() ([]models.Supplier, error) {
	suppliers := []models.Supplier{}
	err := r.DB.Order("id").Find(&suppliers).Error
	return suppliers, err
}

// Delete supplier. Products referencing it keep their supplier_id; the
// reference is weak and deletion does not cascade.
func (r *SupplierRepository) Delete(id uint) error {
	return r.DB.Delete(&models.Supplier{}, id).Error
}
