package models

import "time"

// ReorderLog records one processed replenishment order. Reorders are
// at-least-once and not idempotent, so every call appends a new row.
type ReorderLog struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Reference    string    `json:"reference" gorm:"unique"`
	ProductID    uint      `json:"product_id"`
	Quantity     int       `json:"quantity"`
	StockAfter   int       `json:"stock_after"`
	NextDelivery time.Time `json:"next_delivery"`
	CreatedAt    time.Time `json:"created_at"`
}
