package routes

import (
	"supply-chain-app/controllers"
	"supply-chain-app/database"

	"github.com/gofiber/fiber/v2"
)

func SetupSupplierRoutes(app *fiber.App, store *database.Connection) {
	supplierController := controllers.NewSupplierController(store)

	api := app.Group("/suppliers")
	api.Get("/", supplierController.GetAllSuppliers)
	api.Post("/", supplierController.CreateSupplier)
	api.Delete("/:id", supplierController.DeleteSupplier)
}
