// database/seeder.go
package database

import (
	"supply-chain-app/config"
	"supply-chain-app/models"
	"supply-chain-app/utils"

	"gorm.io/gorm"
)

func RunSeeders(db *gorm.DB) {
	SeedSupplyChain(db)
}

// SeedSupplyChain loads a sample supplier with two fabric products so a fresh
// install has something to show on the inventory screen. Safe to rerun.
func SeedSupplyChain(db *gorm.DB) {
	supplier := models.Supplier{
		Name:         "Global Fabrics Inc",
		ContactEmail: "orders@globalfabrics.example",
		LeadTimeDays: 14,
	}

	var existing models.Supplier
	if err := db.Where("name = ?", supplier.Name).First(&existing).Error; err != nil {
		if err != gorm.ErrRecordNotFound {
			config.GetLogger().Warnf("seeder: supplier lookup failed: %v", err)
			return
		}
		if err := db.Create(&supplier).Error; err != nil {
			config.GetLogger().Warnf("seeder: failed to create supplier: %v", err)
			return
		}
	} else {
		supplier = existing
	}

	delivery := utils.Today().AddDate(0, 0, 5)

	products := []models.Product{
		{
			SKU:          "COT-BLU-001",
			Name:         "Blue Cotton Roll",
			CurrentStock: 100,
			ReorderPoint: 40,
			UnitCost:     12.50,
			LeadTimeDays: 5,
			NextDelivery: &delivery,
			SupplierID:   &supplier.ID,
		},
		{
			SKU:          "SILK-RED-002",
			Name:         "Red Silk Sheet",
			CurrentStock: 15,
			ReorderPoint: 20, // below reorder point, shows up flagged
			UnitCost:     25.00,
			LeadTimeDays: 5,
			NextDelivery: &delivery,
			SupplierID:   &supplier.ID,
		},
	}

	for _, p := range products {
		var found models.Product
		if err := db.Where("sku = ?", p.SKU).First(&found).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				db.Create(&p)
			}
		}
	}
}
