package controllers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"supply-chain-app/config"
	"supply-chain-app/database"
	"supply-chain-app/routes"

	"github.com/gofiber/fiber/v2"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	config.LoadConfig()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	app := fiber.New()
	store := database.FromDB(db)

	routes.SetupDashboardRoutes(app)
	routes.SetupInventoryRoutes(app, store)
	routes.SetupProductRoutes(app, store)
	routes.SetupSupplierRoutes(app, store)
	routes.SetupReorderRoutes(app, store)

	return app, db
}

func doRequest(t *testing.T, app *fiber.App, method, path string, body interface{}) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request body: %v", err)
		}
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read response body: %v", err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		t.Fatalf("decode response %q: %v", string(data), err)
	}
}

func createSupplier(t *testing.T, app *fiber.App, name, email string, leadTimeDays int) map[string]interface{} {
	t.Helper()

	resp := doRequest(t, app, "POST", "/suppliers", map[string]interface{}{
		"name":           name,
		"contact_email":  email,
		"lead_time_days": leadTimeDays,
	})
	if resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("create supplier %s: status %d", name, resp.StatusCode)
	}

	var supplier map[string]interface{}
	decodeBody(t, resp, &supplier)
	return supplier
}

func createProduct(t *testing.T, app *fiber.App, body map[string]interface{}) map[string]interface{} {
	t.Helper()

	resp := doRequest(t, app, "POST", "/products", body)
	if resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("create product %v: status %d", body["sku"], resp.StatusCode)
	}

	var product map[string]interface{}
	decodeBody(t, resp, &product)
	return product
}
