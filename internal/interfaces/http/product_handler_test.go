package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Comercio-api/internal/application/dto"
	"github.com/jhoicas/Comercio-api/internal/application/usecase"
	"github.com/jhoicas/Comercio-api/internal/domain/entity"
	"github.com/jhoicas/Comercio-api/internal/domain/repository"
	apphttp "github.com/jhoicas/Comercio-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria para el caso de uso de productos
// ──────────────────────────────────────────────────────────────────────────────

type stubProductRepo struct {
	repository.ProductRepository
	bySKU map[string]*entity.Product
}

func (f *stubProductRepo) GetByCompanyAndSKU(_, sku string) (*entity.Product, error) {
	return f.bySKU[sku], nil
}

type stubProductWarehouseRepo struct {
	repository.WarehouseRepository
	byID map[string]*entity.Warehouse
}

func (f *stubProductWarehouseRepo) GetByID(id string) (*entity.Warehouse, error) {
	return f.byID[id], nil
}

// stubTxRunner no abre transacción real; solo no debe alcanzarse en los casos
// que fallan antes de persistir.
type stubTxRunner struct {
	called bool
}

func (f *stubTxRunner) Run(_ context.Context, _ func(
	repository.ProductRepository,
	repository.InventoryRepository,
	repository.InventoryHistoryRepository,
	repository.SalesRepository,
) error) error {
	f.called = true
	return nil
}

func buildProductApp(products *stubProductRepo, warehouses *stubProductWarehouseRepo, tx *stubTxRunner) *fiber.App {
	uc := usecase.NewProductUseCase(products, warehouses, tx)
	app := fiber.New()
	app.Post("/api/products",
		apphttp.AuthMiddleware(testJWTSecret),
		apphttp.NewProductHandler(uc).Create,
	)
	return app
}

func postProduct(t *testing.T, app *fiber.App, payload string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/products", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", tokenForRole(t, "admin"))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests POST /api/products
// ──────────────────────────────────────────────────────────────────────────────

// Stock inicial contra una bodega inexistente → 404, no 400: el recurso
// referenciado es el que falta, el cuerpo de la request es válido.
func TestProductHandler_Create_BodegaInexistente_Retorna404(t *testing.T) {
	tx := &stubTxRunner{}
	app := buildProductApp(
		&stubProductRepo{},
		&stubProductWarehouseRepo{},
		tx,
	)

	resp := postProduct(t, app, `{
		"sku": "SKU-001",
		"name": "Café 500g",
		"warehouse_id": "wh-inexistente",
		"initial_quantity": 10
	}`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	var body dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "WAREHOUSE_NOT_FOUND", body.Code)
	assert.False(t, tx.called, "no debe abrirse transacción si la bodega no existe")
}

// Bodega de otra empresa: mismo contrato que inexistente (404), sin revelar
// que la bodega existe.
func TestProductHandler_Create_BodegaDeOtraEmpresa_Retorna404(t *testing.T) {
	app := buildProductApp(
		&stubProductRepo{},
		&stubProductWarehouseRepo{byID: map[string]*entity.Warehouse{
			"wh-ajena": {ID: "wh-ajena", CompanyID: "otra-empresa", Name: "Bodega Ajena"},
		}},
		&stubTxRunner{},
	)

	resp := postProduct(t, app, `{
		"sku": "SKU-001",
		"name": "Café 500g",
		"warehouse_id": "wh-ajena",
		"initial_quantity": 10
	}`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

// SKU repetido en la empresa → 409.
func TestProductHandler_Create_SKURepetido_Retorna409(t *testing.T) {
	app := buildProductApp(
		&stubProductRepo{bySKU: map[string]*entity.Product{
			"SKU-001": {ID: "p-1", CompanyID: testCompanyID, SKU: "SKU-001"},
		}},
		&stubProductWarehouseRepo{},
		&stubTxRunner{},
	)

	resp := postProduct(t, app, `{"sku": "SKU-001", "name": "Café 500g"}`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	var body dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "DUPLICATE", body.Code)
}
