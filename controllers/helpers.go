package controllers

import (
	"supply-chain-app/config"
	"supply-chain-app/database"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// openDB resolves the shared handle, answering 503 while the store is
// unreachable. Connectivity problems at boot are deferred to first use.
func openDB(ctx *fiber.Ctx, store *database.Connection) (*gorm.DB, bool) {
	db, err := store.DB()
	if err != nil {
		config.LogError("controllers", "openDB", ctx.Path(), err)
		_ = ctx.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": "Database unavailable"})
		return nil, false
	}
	return db, true
}
