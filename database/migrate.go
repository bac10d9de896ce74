// database/migrate.go
package database

import (
	"supply-chain-app/models"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Supplier{},
		&models.Product{},
		&models.ReorderLog{},
	)
}
