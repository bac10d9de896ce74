package services

import (
	"fmt"

	"supply-chain-app/config"
	"supply-chain-app/controllers/idgen"
	"supply-chain-app/models"
	"supply-chain-app/repositories"
	"supply-chain-app/utils"

	"gorm.io/gorm"
)

// InventoryService carries the business rules: delivery projections, stock
// increments and the reorder log. Controllers only translate HTTP to these
// calls.
type InventoryService struct {
	products  *repositories.ProductRepository
	suppliers *repositories.SupplierRepository
	reorders  *repositories.ReorderLogRepository
	notifier  *NotificationService
}

func NewInventoryService(db *gorm.DB) *InventoryService {
	return &InventoryService{
		products:  repositories.NewProductRepository(db),
		suppliers: repositories.NewSupplierRepository(db),
		reorders:  repositories.NewReorderLogRepository(db),
		notifier:  NewNotificationService(),
	}
}

func (s *InventoryService) ListProducts() ([]models.Product, error) {
	return s.products.GetAll()
}

func (s *InventoryService) ListSuppliers() ([]models.Supplier, error) {
	return s.suppliers.GetAll()
}

func (s *InventoryService) ListReorders() ([]models.ReorderLog, error) {
	return s.reorders.GetAll()
}

// AddProduct persists a new product. A nonzero lead time projects the first
// delivery date from today; a zero lead time leaves next_delivery unset.
func (s *InventoryService) AddProduct(product *models.Product) error {
	if product.LeadTimeDays != 0 {
		delivery := utils.Today().AddDate(0, 0, product.LeadTimeDays)
		product.NextDelivery = &delivery
	}
	return s.products.Create(product)
}

func (s *InventoryService) AddSupplier(supplier *models.Supplier) error {
	return s.suppliers.Create(supplier)
}

// DeleteProduct removes the row if present and is a no-op otherwise.
func (s *InventoryService) DeleteProduct(id uint) error {
	return s.products.Delete(id)
}

// DeleteSupplier removes the supplier. Products referencing it are left
// untouched with a dangling supplier_id.
func (s *InventoryService) DeleteSupplier(id uint) error {
	if _, err := s.suppliers.GetByID(id); err != nil {
		return err
	}
	return s.suppliers.Delete(id)
}

type ReorderResult struct {
	Product   *models.Product
	Reference string
}

// ProcessReorder bumps the stock level by quantity and recomputes the
// projected delivery date. A zero lead time falls back to 7 days, matching
// the original replenishment policy. Quantity is applied as-is, so a negative
// quantity decrements stock; that is the caller's call to make. Reordering is
// not idempotent: every call increments again and pushes next_delivery
// forward.
func (s *InventoryService) ProcessReorder(productID uint, quantity int) (*ReorderResult, error) {
	product, err := s.products.GetByID(productID)
	if err != nil {
		return nil, err
	}

	waitDays := product.LeadTimeDays
	if waitDays == 0 {
		waitDays = 7
	}
	projected := utils.Today().AddDate(0, 0, waitDays)

	if err := s.products.ApplyReorder(product.ID, quantity, projected); err != nil {
		return nil, err
	}

	updated, err := s.products.GetByID(product.ID)
	if err != nil {
		return nil, err
	}

	reference := fmt.Sprintf("RO-%d", idgen.GenerateID())
	entry := models.ReorderLog{
		Reference:    reference,
		ProductID:    updated.ID,
		Quantity:     quantity,
		StockAfter:   updated.CurrentStock,
		NextDelivery: projected,
	}
	if err := s.reorders.Create(&entry); err != nil {
		config.GetLogger().Warnf("reorder %s: failed to record log entry: %v", reference, err)
	}

	s.notifySupplier(updated, quantity, reference)

	return &ReorderResult{Product: updated, Reference: reference}, nil
}

func (s *InventoryService) notifySupplier(product *models.Product, quantity int, reference string) {
	if !s.notifier.Enabled() || product.SupplierID == nil {
		return
	}

	supplier, err := s.suppliers.GetByID(*product.SupplierID)
	if err != nil || !utils.IsValidEmail(supplier.ContactEmail) {
		return
	}

	go func() {
		if err := s.notifier.SendReorderPlaced(supplier, product, quantity, reference); err != nil {
			config.LogError("services", "notifySupplier", reference, err)
		}
	}()
}
