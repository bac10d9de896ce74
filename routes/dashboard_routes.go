package routes

import (
	"supply-chain-app/controllers"

	"github.com/gofiber/fiber/v2"
)

func SetupDashboardRoutes(app *fiber.App) {
	dashboardController := controllers.NewDashboardController()
	app.Get("/", dashboardController.Status)
}
