package routes

import (
	"supply-chain-app/controllers"
	"supply-chain-app/database"

	"github.com/gofiber/fiber/v2"
)

func SetupReorderRoutes(app *fiber.App, store *database.Connection) {
	reorderController := controllers.NewReorderController(store)

	app.Post("/reorder", reorderController.ProcessReorder)
	app.Get("/reorders", reorderController.GetReorderHistory)
}
