package alerts_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Comercio-api/internal/application/alerts"
	"github.com/jhoicas/Comercio-api/internal/domain/entity"
	"github.com/jhoicas/Comercio-api/internal/domain/repository"
	"github.com/jhoicas/Comercio-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria (solo los métodos que el caso de uso toca; el resto panic
// vía la interfaz embebida si algo inesperado los invoca)
// ──────────────────────────────────────────────────────────────────────────────

type fakeWarehouseRepo struct {
	repository.WarehouseRepository
	warehouses []*entity.Warehouse
	err        error
}

func (f *fakeWarehouseRepo) ListAllByCompany(companyID string) ([]*entity.Warehouse, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []*entity.Warehouse
	for _, w := range f.warehouses {
		if w.CompanyID == companyID {
			out = append(out, w)
		}
	}
	return out, nil
}

type fakeInventoryRepo struct {
	repository.InventoryRepository
	byWarehouse map[string][]repository.InventoryItem
}

func (f *fakeInventoryRepo) ListByWarehouse(_ context.Context, warehouseID string) ([]repository.InventoryItem, error) {
	return f.byWarehouse[warehouseID], nil
}

type fakeSalesRepo struct {
	repository.SalesRepository
	counts  map[string]int64
	failFor map[string]bool
}

func (f *fakeSalesRepo) CountRecentSales(_ context.Context, productID string, _ time.Time) (int64, error) {
	if f.failFor[productID] {
		return 0, errors.New("tabla de ventas inaccesible")
	}
	return f.counts[productID], nil
}

type fakeSupplierRepo struct {
	repository.SupplierRepository
	byProduct map[string]*entity.Supplier
	failFor   map[string]bool
}

func (f *fakeSupplierRepo) FindByProduct(_ context.Context, productID string) (*entity.Supplier, error) {
	if f.failFor[productID] {
		return nil, errors.New("tabla supplier_products inaccesible")
	}
	return f.byProduct[productID], nil
}

const testCompanyID = "00000000-0000-0000-0000-0000000000c0"

func buildUseCase(
	warehouses *fakeWarehouseRepo,
	inventory *fakeInventoryRepo,
	sales *fakeSalesRepo,
	suppliers *fakeSupplierRepo,
) *alerts.LowStockUseCase {
	return alerts.NewLowStockUseCase(
		warehouses, inventory, sales, suppliers,
		nil, nil, // companyRepo y pdfGenerator no participan en el reporte JSON
		logger.NewNop(),
	)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestGetLowStockReport_EmpresaSinBodegas_ReporteVacio(t *testing.T) {
	uc := buildUseCase(
		&fakeWarehouseRepo{},
		&fakeInventoryRepo{},
		&fakeSalesRepo{},
		&fakeSupplierRepo{},
	)

	report, err := uc.GetLowStockReport(context.Background(), testCompanyID)
	require.NoError(t, err, "empresa sin bodegas no es un error")
	assert.NotNil(t, report.Alerts, "alerts debe serializar como [], no null")
	assert.Empty(t, report.Alerts)
	assert.Equal(t, 0, report.TotalAlerts)
}

func TestGetLowStockReport_FlujoCompleto(t *testing.T) {
	warehouses := &fakeWarehouseRepo{warehouses: []*entity.Warehouse{
		{ID: "wh-1", CompanyID: testCompanyID, Name: "Bodega Norte"},
		{ID: "wh-2", CompanyID: testCompanyID, Name: "Bodega Sur"},
	}}
	inventory := &fakeInventoryRepo{byWarehouse: map[string][]repository.InventoryItem{
		"wh-1": {
			{ProductID: "p-1", SKU: "WID-001", ProductName: "Widget A", Quantity: 5, Threshold: 10},
			{ProductID: "p-2", SKU: "WID-002", ProductName: "Widget B", Quantity: 50, Threshold: 10},
		},
		"wh-2": {
			{ProductID: "p-1", SKU: "WID-001", ProductName: "Widget A", Quantity: 0, Threshold: 10},
		},
	}}
	sales := &fakeSalesRepo{counts: map[string]int64{"p-1": 30, "p-2": 100}}
	suppliers := &fakeSupplierRepo{byProduct: map[string]*entity.Supplier{
		"p-1": {ID: "sup-1", Name: "Acme", ContactEmail: "ventas@acme.com"},
	}}

	uc := buildUseCase(warehouses, inventory, sales, suppliers)
	report, err := uc.GetLowStockReport(context.Background(), testCompanyID)
	require.NoError(t, err)

	// p-2 queda fuera (stock 50 > umbral 10); p-1 alerta en ambas bodegas
	require.Len(t, report.Alerts, 2)
	assert.Equal(t, 2, report.TotalAlerts)

	first := report.Alerts[0]
	assert.Equal(t, "wh-1", first.WarehouseID)
	assert.Equal(t, "Bodega Norte", first.WarehouseName)
	assert.Equal(t, int64(5), first.CurrentStock)
	assert.Equal(t, int64(5), first.DaysUntilStockout) // 30/30 = 1/día
	require.NotNil(t, first.Supplier)
	assert.Equal(t, "ventas@acme.com", first.Supplier.ContactEmail)

	second := report.Alerts[1]
	assert.Equal(t, "wh-2", second.WarehouseID)
	assert.Equal(t, int64(0), second.CurrentStock)
	assert.Equal(t, int64(0), second.DaysUntilStockout)
}

// Un lookup de ventas caído para un producto degrada a "sin ventas" (el producto
// no alerta) sin abortar el reporte de los demás.
func TestGetLowStockReport_FalloVentasDeUnProducto_NoAbortaElReporte(t *testing.T) {
	warehouses := &fakeWarehouseRepo{warehouses: []*entity.Warehouse{
		{ID: "wh-1", CompanyID: testCompanyID, Name: "Bodega"},
	}}
	inventory := &fakeInventoryRepo{byWarehouse: map[string][]repository.InventoryItem{
		"wh-1": {
			{ProductID: "p-1", SKU: "AAA", ProductName: "A", Quantity: 2, Threshold: 10},
			{ProductID: "p-2", SKU: "BBB", ProductName: "B", Quantity: 3, Threshold: 10},
		},
	}}
	sales := &fakeSalesRepo{
		counts:  map[string]int64{"p-1": 10, "p-2": 10},
		failFor: map[string]bool{"p-1": true},
	}

	uc := buildUseCase(warehouses, inventory, sales, &fakeSupplierRepo{})
	report, err := uc.GetLowStockReport(context.Background(), testCompanyID)
	require.NoError(t, err)

	require.Len(t, report.Alerts, 1)
	assert.Equal(t, "p-2", report.Alerts[0].ProductID)
}

// Un lookup de proveedor caído degrada a "sin proveedor": la alerta sale igual.
func TestGetLowStockReport_FalloProveedor_AlertaSinProveedor(t *testing.T) {
	warehouses := &fakeWarehouseRepo{warehouses: []*entity.Warehouse{
		{ID: "wh-1", CompanyID: testCompanyID, Name: "Bodega"},
	}}
	inventory := &fakeInventoryRepo{byWarehouse: map[string][]repository.InventoryItem{
		"wh-1": {{ProductID: "p-1", SKU: "AAA", ProductName: "A", Quantity: 2, Threshold: 10}},
	}}
	sales := &fakeSalesRepo{counts: map[string]int64{"p-1": 6}}
	suppliers := &fakeSupplierRepo{failFor: map[string]bool{"p-1": true}}

	uc := buildUseCase(warehouses, inventory, sales, suppliers)
	report, err := uc.GetLowStockReport(context.Background(), testCompanyID)
	require.NoError(t, err)

	require.Len(t, report.Alerts, 1)
	assert.Nil(t, report.Alerts[0].Supplier)
}

// El fallo al listar bodegas sí es terminal: el caller debe poder distinguir
// "nada que alertar" de "no se pudo calcular".
func TestGetLowStockReport_FalloBodegas_RetornaError(t *testing.T) {
	uc := buildUseCase(
		&fakeWarehouseRepo{err: errors.New("db caída")},
		&fakeInventoryRepo{},
		&fakeSalesRepo{},
		&fakeSupplierRepo{},
	)

	report, err := uc.GetLowStockReport(context.Background(), testCompanyID)
	assert.Error(t, err)
	assert.Nil(t, report)
}
