package controllers

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"supply-chain-app/database"
	"supply-chain-app/models"
	"supply-chain-app/services"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

type ProductController struct {
	Store *database.Connection
}

func NewProductController(store *database.Connection) *ProductController {
	return &ProductController{Store: store}
}

type ProductCreateRequest struct {
	SKU          string  `json:"sku" validate:"required"`
	Name         string  `json:"name" validate:"required"`
	CurrentStock int     `json:"current_stock" validate:"gte=0"`
	ReorderPoint int     `json:"reorder_point"`
	UnitCost     float64 `json:"unit_cost" validate:"gte=0"`
	LeadTimeDays *int    `json:"lead_time_days"`
	SupplierID   *uint   `json:"supplier_id"`
}

func (c *ProductController) CreateProduct(ctx *fiber.Ctx) error {
	var input ProductCreateRequest
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	// Absent lead time defaults to 7. An explicit zero is stored as zero and
	// produces no delivery projection.
	leadTimeDays := 7
	if input.LeadTimeDays != nil {
		leadTimeDays = *input.LeadTimeDays
	}

	product := models.Product{
		SKU:          input.SKU,
		Name:         input.Name,
		CurrentStock: input.CurrentStock,
		ReorderPoint: input.ReorderPoint,
		UnitCost:     input.UnitCost,
		LeadTimeDays: leadTimeDays,
		SupplierID:   input.SupplierID,
	}

	db, ok := openDB(ctx, c.Store)
	if !ok {
		return nil
	}

	if err := services.NewInventoryService(db).AddProduct(&product); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ctx.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Product with this sku already exists"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusCreated).JSON(product)
}

func (c *ProductController) DeleteProduct(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	db, ok := openDB(ctx, c.Store)
	if !ok {
		return nil
	}

	// Deleting an absent product answers the same as deleting a present one.
	if err := services.NewInventoryService(db).DeleteProduct(uint(id)); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.JSON(fiber.Map{"message": "Deleted"})
}

type ProductUploadResult struct {
	TotalRows     int      `json:"total_rows"`
	SuccessCount  int      `json:"success_count"`
	SkippedCount  int      `json:"skipped_count"`
	ErrorCount    int      `json:"error_count"`
	SkippedItems  []string `json:"skipped_items"`
	ErrorMessages []string `json:"error_messages"`
}

// CreateProductsFromExcel bulk-imports products from a spreadsheet with the
// columns SKU | NAME | CURRENT_STOCK | REORDER_POINT | UNIT_COST |
// LEAD_TIME_DAYS | SUPPLIER_ID. Rows whose sku already exists are skipped.
func (c *ProductController) CreateProductsFromExcel(ctx *fiber.Ctx) error {
	file, err := ctx.FormFile("file")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "File is required",
		})
	}

	if !strings.HasSuffix(strings.ToLower(file.Filename), ".xlsx") &&
		!strings.HasSuffix(strings.ToLower(file.Filename), ".xls") {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Only Excel files (.xlsx, .xls) are allowed",
		})
	}

	fileContent, err := file.Open()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to open file",
		})
	}
	defer fileContent.Close()

	f, err := excelize.OpenReader(fileContent)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to read Excel file",
		})
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "No sheets found in Excel file",
		})
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to read rows",
		})
	}

	if len(rows) < 2 {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Excel file must contain header and at least one data row",
		})
	}

	db, ok := openDB(ctx, c.Store)
	if !ok {
		return nil
	}
	service := services.NewInventoryService(db)

	result := ProductUploadResult{
		TotalRows:     len(rows) - 1,
		SkippedItems:  []string{},
		ErrorMessages: []string{},
	}

	for i, row := range rows[1:] {
		rowNum := i + 2 // Excel row number (header is row 1)

		if len(row) == 0 || strings.TrimSpace(row[0]) == "" {
			continue
		}

		if len(row) < 5 {
			result.ErrorCount++
			result.ErrorMessages = append(result.ErrorMessages,
				fmt.Sprintf("Row %d: Insufficient columns (expected at least 5)", rowNum))
			continue
		}

		sku := strings.ToUpper(strings.TrimSpace(row[0]))
		name := strings.TrimSpace(row[1])

		if sku == "" || name == "" {
			result.ErrorCount++
			result.ErrorMessages = append(result.ErrorMessages,
				fmt.Sprintf("Row %d: SKU and NAME are required", rowNum))
			continue
		}

		currentStock, err := strconv.Atoi(strings.TrimSpace(row[2]))
		if err != nil || currentStock < 0 {
			result.ErrorCount++
			result.ErrorMessages = append(result.ErrorMessages,
				fmt.Sprintf("Row %d: Invalid CURRENT_STOCK '%s'", rowNum, row[2]))
			continue
		}

		reorderPoint, err := strconv.Atoi(strings.TrimSpace(row[3]))
		if err != nil {
			result.ErrorCount++
			result.ErrorMessages = append(result.ErrorMessages,
				fmt.Sprintf("Row %d: Invalid REORDER_POINT '%s'", rowNum, row[3]))
			continue
		}

		unitCost, err := strconv.ParseFloat(strings.TrimSpace(row[4]), 64)
		if err != nil || unitCost < 0 {
			result.ErrorCount++
			result.ErrorMessages = append(result.ErrorMessages,
				fmt.Sprintf("Row %d: Invalid UNIT_COST '%s'", rowNum, row[4]))
			continue
		}

		leadTimeDays := 7
		if len(row) > 5 && strings.TrimSpace(row[5]) != "" {
			leadTimeDays, err = strconv.Atoi(strings.TrimSpace(row[5]))
			if err != nil {
				result.ErrorCount++
				result.ErrorMessages = append(result.ErrorMessages,
					fmt.Sprintf("Row %d: Invalid LEAD_TIME_DAYS '%s'", rowNum, row[5]))
				continue
			}
		}

		var supplierID *uint
		if len(row) > 6 && strings.TrimSpace(row[6]) != "" {
			parsed, err := strconv.ParseUint(strings.TrimSpace(row[6]), 10, 32)
			if err != nil {
				result.ErrorCount++
				result.ErrorMessages = append(result.ErrorMessages,
					fmt.Sprintf("Row %d: Invalid SUPPLIER_ID '%s'", rowNum, row[6]))
				continue
			}
			id := uint(parsed)
			supplierID = &id
		}

		product := models.Product{
			SKU:          sku,
			Name:         name,
			CurrentStock: currentStock,
			ReorderPoint: reorderPoint,
			UnitCost:     unitCost,
			LeadTimeDays: leadTimeDays,
			SupplierID:   supplierID,
		}

		if err := service.AddProduct(&product); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				result.SkippedCount++
				result.SkippedItems = append(result.SkippedItems, sku)
				continue
			}
			result.ErrorCount++
			result.ErrorMessages = append(result.ErrorMessages,
				fmt.Sprintf("Row %d: Failed to create product - %s", rowNum, err.Error()))
			continue
		}

		result.SuccessCount++
	}

	return ctx.JSON(fiber.Map{
		"success": true,
		"message": fmt.Sprintf("Upload completed: %d success, %d skipped, %d errors",
			result.SuccessCount, result.SkippedCount, result.ErrorCount),
		"data": result,
	})
}
