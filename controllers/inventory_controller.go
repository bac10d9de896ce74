package controllers

import (
	"fmt"

	"supply-chain-app/database"
	"supply-chain-app/services"
	"supply-chain-app/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"
)

type InventoryController struct {
	Store *database.Connection
}

func NewInventoryController(store *database.Connection) *InventoryController {
	return &InventoryController{Store: store}
}

// GetInventory answers the full product list as a bare array, the shape the
// inventory table consumes.
func (c *InventoryController) GetInventory(ctx *fiber.Ctx) error {
	db, ok := openDB(ctx, c.Store)
	if !ok {
		return nil
	}

	products, err := services.NewInventoryService(db).ListProducts()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.JSON(products)
}

// ExportExcel streams the inventory snapshot as an xlsx download.
func (c *InventoryController) ExportExcel(ctx *fiber.Ctx) error {
	db, ok := openDB(ctx, c.Store)
	if !ok {
		return nil
	}

	products, err := services.NewInventoryService(db).ListProducts()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	f := excelize.NewFile()
	sheet := "Sheet1"

	f.SetCellValue(sheet, "A1", "SKU")
	f.SetCellValue(sheet, "B1", "Name")
	f.SetCellValue(sheet, "C1", "Current Stock")
	f.SetCellValue(sheet, "D1", "Reorder Point")
	f.SetCellValue(sheet, "E1", "Unit Cost")
	f.SetCellValue(sheet, "F1", "Lead Time Days")
	f.SetCellValue(sheet, "G1", "Next Delivery")
	f.SetCellValue(sheet, "H1", "Supplier ID")

	for i, item := range products {
		rowNum := i + 2
		f.SetCellValue(sheet, fmt.Sprintf("A%d", rowNum), item.SKU)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", rowNum), item.Name)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", rowNum), item.CurrentStock)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", rowNum), item.ReorderPoint)
		f.SetCellValue(sheet, fmt.Sprintf("E%d", rowNum), item.UnitCost)
		f.SetCellValue(sheet, fmt.Sprintf("F%d", rowNum), item.LeadTimeDays)
		if item.NextDelivery != nil {
			f.SetCellValue(sheet, fmt.Sprintf("G%d", rowNum), utils.FormatHumanDate(*item.NextDelivery))
		}
		if item.SupplierID != nil {
			f.SetCellValue(sheet, fmt.Sprintf("H%d", rowNum), *item.SupplierID)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to generate Excel file"})
	}

	ctx.Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Set("Content-Disposition", `attachment; filename="inventory.xlsx"`)
	return ctx.Send(buf.Bytes())
}
