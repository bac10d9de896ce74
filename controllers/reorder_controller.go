package controllers

import (
	"errors"
	"fmt"

	"supply-chain-app/database"
	"supply-chain-app/services"
	"supply-chain-app/utils"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type ReorderController struct {
	Store *database.Connection
}

func NewReorderController(store *database.Connection) *ReorderController {
	return &ReorderController{Store: store}
}

type ReorderRequest struct {
	ProductID uint `json:"product_id" validate:"required"`
	// Quantity is deliberately unbounded; a negative value decrements stock.
	Quantity int `json:"quantity"`
}

func (c *ReorderController) ProcessReorder(ctx *fiber.Ctx) error {
	var input ReorderRequest
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	db, ok := openDB(ctx, c.Store)
	if !ok {
		return nil
	}

	result, err := services.NewInventoryService(db).ProcessReorder(input.ProductID, input.Quantity)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Product not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.JSON(fiber.Map{
		"message":   fmt.Sprintf("Successfully ordered %d units.", input.Quantity),
		"new_stock": result.Product.CurrentStock,
		"eta":       utils.FormatHumanDate(*result.Product.NextDelivery),
		"reference": result.Reference,
	})
}

func (c *ReorderController) GetReorderHistory(ctx *fiber.Ctx) error {
	db, ok := openDB(ctx, c.Store)
	if !ok {
		return nil
	}

	logs, err := services.NewInventoryService(db).ListReorders()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.JSON(logs)
}
