package routes

import (
	"supply-chain-app/controllers"
	"supply-chain-app/database"

	"github.com/gofiber/fiber/v2"
)

func SetupInventoryRoutes(app *fiber.App, store *database.Connection) {
	inventoryController := controllers.NewInventoryController(store)

	api := app.Group("/inventory")
	api.Get("/", inventoryController.GetInventory)
	api.Get("/export", inventoryController.ExportExcel)
}
