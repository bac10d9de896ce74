package controllers

import (
	"errors"

	"supply-chain-app/database"
	"supply-chain-app/models"
	"supply-chain-app/services"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type SupplierController struct {
	Store *database.Connection
}

func NewSupplierController(store *database.Connection) *SupplierController {
	return &SupplierController{Store: store}
}

type SupplierCreateRequest struct {
	Name         string `json:"name" validate:"required"`
	ContactEmail string `json:"contact_email"`
	LeadTimeDays *int   `json:"lead_time_days"`
}

func (c *SupplierController) CreateSupplier(ctx *fiber.Ctx) error {
	var input SupplierCreateRequest
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	leadTimeDays := 7
	if input.LeadTimeDays != nil {
		leadTimeDays = *input.LeadTimeDays
	}

	supplier := models.Supplier{
		Name:         input.Name,
		ContactEmail: input.ContactEmail,
		LeadTimeDays: leadTimeDays,
	}

	db, ok := openDB(ctx, c.Store)
	if !ok {
		return nil
	}

	if err := services.NewInventoryService(db).AddSupplier(&supplier); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ctx.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Supplier with this name already exists"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusCreated).JSON(supplier)
}

func (c *SupplierController) GetAllSuppliers(ctx *fiber.Ctx) error {
	db, ok := openDB(ctx, c.Store)
	if !ok {
		return nil
	}

	suppliers, err := services.NewInventoryService(db).ListSuppliers()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.JSON(suppliers)
}

func (c *SupplierController) DeleteSupplier(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	db, ok := openDB(ctx, c.Store)
	if !ok {
		return nil
	}

	if err := services.NewInventoryService(db).DeleteSupplier(uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Supplier not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.JSON(fiber.Map{"message": "Supplier deleted successfully"})
}
