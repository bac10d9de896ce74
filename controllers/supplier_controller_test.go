package controllers_test

import (
	"testing"

	"supply-chain-app/models"

	"github.com/gofiber/fiber/v2"
)

func TestCreateAndListSuppliers(t *testing.T) {
	app, _ := newTestApp(t)

	created := createSupplier(t, app, "Acme", "a@acme.com", 5)
	if created["name"] != "Acme" || created["lead_time_days"].(float64) != 5 {
		t.Fatalf("created = %v", created)
	}

	resp := doRequest(t, app, "GET", "/suppliers", nil)
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status code = %d, want 200", resp.StatusCode)
	}

	var suppliers []models.Supplier
	decodeBody(t, resp, &suppliers)
	if len(suppliers) != 1 || suppliers[0].Name != "Acme" {
		t.Fatalf("suppliers = %v", suppliers)
	}
}

func TestCreateSupplierDefaultsLeadTimeToSeven(t *testing.T) {
	app, _ := newTestApp(t)

	resp := doRequest(t, app, "POST", "/suppliers", map[string]interface{}{
		"name":          "No Lead Time Given",
		"contact_email": "x@example.com",
	})
	if resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("status code = %d, want 201", resp.StatusCode)
	}

	var supplier models.Supplier
	decodeBody(t, resp, &supplier)
	if supplier.LeadTimeDays != 7 {
		t.Fatalf("lead_time_days = %d, want 7", supplier.LeadTimeDays)
	}
}

func TestCreateSupplierDuplicateNameConflict(t *testing.T) {
	app, db := newTestApp(t)

	createSupplier(t, app, "Acme", "a@acme.com", 5)

	resp := doRequest(t, app, "POST", "/suppliers", map[string]interface{}{
		"name":           "Acme",
		"contact_email":  "other@acme.com",
		"lead_time_days": 3,
	})
	if resp.StatusCode != fiber.StatusConflict {
		t.Fatalf("status code = %d, want 409", resp.StatusCode)
	}

	var count int64
	db.Model(&models.Supplier{}).Count(&count)
	if count != 1 {
		t.Fatalf("supplier count = %d, want 1", count)
	}
}

func TestDeleteSupplierNotFound(t *testing.T) {
	app, _ := newTestApp(t)

	resp := doRequest(t, app, "DELETE", "/suppliers/42", nil)
	if resp.StatusCode != fiber.StatusNotFound {
		t.Fatalf("status code = %d, want 404", resp.StatusCode)
	}
}

// Deleting a supplier leaves its products with a dangling reference; the
// relation is weak and never cascades.
func TestDeleteSupplierLeavesProductsDangling(t *testing.T) {
	app, db := newTestApp(t)

	createSupplier(t, app, "Acme", "a@acme.com", 5)
	createProduct(t, app, map[string]interface{}{
		"sku":           "ORPHAN-1",
		"name":          "Soon Orphaned",
		"current_stock": 1,
		"reorder_point": 1,
		"unit_cost":     1.0,
		"supplier_id":   1,
	})

	resp := doRequest(t, app, "DELETE", "/suppliers/1", nil)
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status code = %d, want 200", resp.StatusCode)
	}
	var body map[string]string
	decodeBody(t, resp, &body)
	if body["message"] != "Supplier deleted successfully" {
		t.Fatalf("message = %q", body["message"])
	}

	var product models.Product
	if err := db.Where("sku = ?", "ORPHAN-1").First(&product).Error; err != nil {
		t.Fatalf("fetch product: %v", err)
	}
	if product.SupplierID == nil || *product.SupplierID != 1 {
		t.Fatalf("supplier_id = %v, want dangling 1", product.SupplierID)
	}
}

// Round trip: supplier, then a product referencing it, shows up in the
// listing with the reference intact.
func TestProductSupplierRoundTrip(t *testing.T) {
	app, _ := newTestApp(t)

	supplier := createSupplier(t, app, "Acme", "a@acme.com", 5)
	supplierID := uint(supplier["id"].(float64))

	createProduct(t, app, map[string]interface{}{
		"sku":           "RT-1",
		"name":          "Linked",
		"current_stock": 1,
		"reorder_point": 1,
		"unit_cost":     1.0,
		"supplier_id":   supplierID,
	})

	resp := doRequest(t, app, "GET", "/inventory", nil)
	var products []models.Product
	decodeBody(t, resp, &products)

	if len(products) != 1 {
		t.Fatalf("len = %d, want 1", len(products))
	}
	if products[0].SupplierID == nil || *products[0].SupplierID != supplierID {
		t.Fatalf("supplier_id = %v, want %d", products[0].SupplierID, supplierID)
	}
}
