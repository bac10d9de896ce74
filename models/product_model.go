package models

import "time"

// Product is an inventory row. SupplierID is a weak reference: deleting a
// supplier leaves it pointing at a row that no longer exists.
type Product struct {
	ID           uint       `json:"id" gorm:"primaryKey"`
	SKU          string     `json:"sku" gorm:"column:sku;unique"`
	Name         string     `json:"name"`
	CurrentStock int        `json:"current_stock"`
	ReorderPoint int        `json:"reorder_point"`
	UnitCost     float64    `json:"unit_cost"`
	LeadTimeDays int        `json:"lead_time_days"`
	NextDelivery *time.Time `json:"next_delivery"`
	SupplierID   *uint      `json:"supplier_id"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}
