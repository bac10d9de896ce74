package main

import (
	"supply-chain-app/config"
	"supply-chain-app/controllers/idgen"
	"supply-chain-app/database"
	"supply-chain-app/middleware"
	"supply-chain-app/routes"

	"github.com/gofiber/fiber/v2"
)

func main() {
	config.LoadConfig()
	idgen.Init()

	app := fiber.New()

	config.SetupCORS(app)
	app.Use(middleware.RequestLogger())

	store := database.NewConnection()

	// Bootstrap eagerly when the store is reachable. A failure here is a
	// warning, not a crash; the first request retries the connection.
	if _, err := store.DB(); err != nil {
		config.GetLogger().Warnf("could not connect to database at startup: %v", err)
		config.GetLogger().Warn("server will start, but database operations may fail until connection is restored")
	} else {
		config.GetLogger().Info("database initialised")
	}

	routes.SetupDashboardRoutes(app)
	routes.SetupInventoryRoutes(app, store)
	routes.SetupProductRoutes(app, store)
	routes.SetupSupplierRoutes(app, store)
	routes.SetupReorderRoutes(app, store)

	config.GetLogger().Infof("server listening on port %s", config.AppPort)
	if err := app.Listen(":" + config.AppPort); err != nil {
		config.GetLogger().Fatal(err)
	}
}
