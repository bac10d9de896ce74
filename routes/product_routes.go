package routes

import (
	"supply-chain-app/controllers"
	"supply-chain-app/database"

	"github.com/gofiber/fiber/v2"
)

func SetupProductRoutes(app *fiber.App, store *database.Connection) {
	productController := controllers.NewProductController(store)

	api := app.Group("/products")
	api.Post("/", productController.CreateProduct)
	api.Post("/upload", productController.CreateProductsFromExcel)
	api.Delete("/:id", productController.DeleteProduct)
}
