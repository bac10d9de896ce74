package controllers

import (
	"github.com/gofiber/fiber/v2"
)

type DashboardController struct{}

func NewDashboardController() *DashboardController {
	return &DashboardController{}
}

func (c *DashboardController) Status(ctx *fiber.Ctx) error {
	return ctx.JSON(fiber.Map{"status": "Supply Chain API is Online"})
}
