package alerting_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Comercio-api/internal/domain/alerting"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// salesFrom devuelve un RecentSalesFunc basado en un mapa; productos ausentes → 0.
func salesFrom(m map[string]int64) alerting.RecentSalesFunc {
	return func(productID string) int64 { return m[productID] }
}

// suppliersFrom devuelve un SupplierFunc basado en un mapa; productos ausentes → nil.
func suppliersFrom(m map[string]*alerting.SupplierInfo) alerting.SupplierFunc {
	return func(productID string) *alerting.SupplierInfo { return m[productID] }
}

func noSuppliers(string) *alerting.SupplierInfo { return nil }

func warehouse(id, name string, records ...alerting.StockRecord) alerting.WarehouseStock {
	return alerting.WarehouseStock{WarehouseID: id, WarehouseName: name, Records: records}
}

func record(productID, sku, name string, qty, threshold int64) alerting.StockRecord {
	return alerting.StockRecord{ProductID: productID, SKU: sku, ProductName: name, Quantity: qty, Threshold: threshold}
}

// ──────────────────────────────────────────────────────────────────────────────
// Casos del enunciado: umbral=10, stock=5, ventas 30d=30 → incluido, 5 días.
// ──────────────────────────────────────────────────────────────────────────────

func TestComputeLowStockAlerts_ProductoEnRiesgo_IncluidoConProyeccion(t *testing.T) {
	warehouses := []alerting.WarehouseStock{
		warehouse("wh-1", "Bodega Principal",
			record("p-1", "WID-001", "Widget A", 5, 10),
		),
	}
	report := alerting.ComputeLowStockAlerts(warehouses,
		salesFrom(map[string]int64{"p-1": 30}),
		suppliersFrom(map[string]*alerting.SupplierInfo{
			"p-1": {ID: "sup-1", Name: "Acme Corp", ContactEmail: "orders@acme.com"},
		}),
	)

	require.Len(t, report.Alerts, 1)
	assert.Equal(t, 1, report.TotalAlerts)

	a := report.Alerts[0]
	assert.Equal(t, "p-1", a.ProductID)
	assert.Equal(t, "WID-001", a.SKU)
	assert.Equal(t, "Widget A", a.ProductName)
	assert.Equal(t, "wh-1", a.WarehouseID)
	assert.Equal(t, "Bodega Principal", a.WarehouseName)
	assert.Equal(t, int64(5), a.CurrentStock)
	assert.Equal(t, int64(10), a.Threshold)
	// 30 unidades / 30 días = 1/día → 5 unidades duran 5 días
	assert.Equal(t, int64(5), a.DaysUntilStockout)
	require.NotNil(t, a.Supplier)
	assert.Equal(t, "sup-1", a.Supplier.ID)
	assert.Equal(t, "orders@acme.com", a.Supplier.ContactEmail)
}

func TestComputeLowStockAlerts_StockSobreUmbral_Excluido(t *testing.T) {
	warehouses := []alerting.WarehouseStock{
		warehouse("wh-1", "Bodega Principal",
			record("p-1", "WID-001", "Widget A", 12, 10),
		),
	}
	report := alerting.ComputeLowStockAlerts(warehouses,
		salesFrom(map[string]int64{"p-1": 30}), noSuppliers)

	assert.Empty(t, report.Alerts, "stock 12 > umbral 10 no debe alertar")
	assert.Equal(t, 0, report.TotalAlerts)
}

func TestComputeLowStockAlerts_SinVentasRecientes_Excluido(t *testing.T) {
	warehouses := []alerting.WarehouseStock{
		warehouse("wh-1", "Bodega Principal",
			record("p-1", "WID-001", "Widget A", 3, 10),
			// Incluso con stock cero: sin velocidad de venta no hay alerta accionable
			record("p-2", "WID-002", "Widget B", 0, 10),
		),
	}
	report := alerting.ComputeLowStockAlerts(warehouses,
		salesFrom(map[string]int64{}), noSuppliers)

	assert.Empty(t, report.Alerts)
}

func TestComputeLowStockAlerts_StockEnUmbral_Incluido(t *testing.T) {
	warehouses := []alerting.WarehouseStock{
		warehouse("wh-1", "Bodega Principal",
			record("p-1", "WID-001", "Widget A", 10, 10),
		),
	}
	report := alerting.ComputeLowStockAlerts(warehouses,
		salesFrom(map[string]int64{"p-1": 15}), noSuppliers)

	// Umbral inclusivo: stock == umbral dispara la alerta
	require.Len(t, report.Alerts, 1)
	// ceil(10 / (15/30)) = ceil(20) = 20 días
	assert.Equal(t, int64(20), report.Alerts[0].DaysUntilStockout)
}

func TestComputeLowStockAlerts_StockCero_ProyeccionCeroDias(t *testing.T) {
	warehouses := []alerting.WarehouseStock{
		warehouse("wh-1", "Bodega Principal",
			record("p-1", "WID-001", "Widget A", 0, 10),
		),
	}
	report := alerting.ComputeLowStockAlerts(warehouses,
		salesFrom(map[string]int64{"p-1": 7}), noSuppliers)

	require.Len(t, report.Alerts, 1)
	assert.Equal(t, int64(0), report.Alerts[0].DaysUntilStockout)
}

func TestComputeLowStockAlerts_ProyeccionRedondeaHaciaArriba(t *testing.T) {
	warehouses := []alerting.WarehouseStock{
		warehouse("wh-1", "Bodega Principal",
			record("p-1", "WID-001", "Widget A", 7, 10),
		),
	}
	// 9 unidades / 30 días = 0.3/día → 7/0.3 = 23.33 → ceil = 24
	report := alerting.ComputeLowStockAlerts(warehouses,
		salesFrom(map[string]int64{"p-1": 9}), noSuppliers)

	require.Len(t, report.Alerts, 1)
	assert.Equal(t, int64(24), report.Alerts[0].DaysUntilStockout)
}

func TestComputeLowStockAlerts_SinProveedor_AlertaSinContacto(t *testing.T) {
	warehouses := []alerting.WarehouseStock{
		warehouse("wh-1", "Bodega Principal",
			record("p-1", "WID-001", "Widget A", 2, 10),
		),
	}
	report := alerting.ComputeLowStockAlerts(warehouses,
		salesFrom(map[string]int64{"p-1": 5}), noSuppliers)

	// La falta de proveedor no excluye la alerta; el campo queda nil
	require.Len(t, report.Alerts, 1)
	assert.Nil(t, report.Alerts[0].Supplier)
}

func TestComputeLowStockAlerts_SinBodegas_ReporteVacio(t *testing.T) {
	report := alerting.ComputeLowStockAlerts(nil,
		salesFrom(map[string]int64{"p-1": 30}), noSuppliers)

	assert.NotNil(t, report.Alerts, "el reporte vacío debe serializar como [], no null")
	assert.Empty(t, report.Alerts)
	assert.Equal(t, 0, report.TotalAlerts)
}

func TestComputeLowStockAlerts_BodegaSinRegistros_NoContribuye(t *testing.T) {
	warehouses := []alerting.WarehouseStock{
		warehouse("wh-1", "Bodega vacía"),
		warehouse("wh-2", "Bodega Sur",
			record("p-1", "WID-001", "Widget A", 1, 10),
		),
	}
	report := alerting.ComputeLowStockAlerts(warehouses,
		salesFrom(map[string]int64{"p-1": 10}), noSuppliers)

	require.Len(t, report.Alerts, 1)
	assert.Equal(t, "wh-2", report.Alerts[0].WarehouseID)
}

// El mismo producto bajo stock en dos bodegas produce dos alertas independientes:
// el stock se evalúa por bodega, nunca agregado.
func TestComputeLowStockAlerts_ProductoEnDosBodegas_DosAlertas(t *testing.T) {
	warehouses := []alerting.WarehouseStock{
		warehouse("wh-1", "Bodega Norte",
			record("p-1", "WID-001", "Widget A", 4, 10),
		),
		warehouse("wh-2", "Bodega Sur",
			record("p-1", "WID-001", "Widget A", 8, 10),
		),
	}
	report := alerting.ComputeLowStockAlerts(warehouses,
		salesFrom(map[string]int64{"p-1": 30}), noSuppliers)

	require.Len(t, report.Alerts, 2)
	assert.Equal(t, "wh-1", report.Alerts[0].WarehouseID)
	assert.Equal(t, int64(4), report.Alerts[0].CurrentStock)
	assert.Equal(t, "wh-2", report.Alerts[1].WarehouseID)
	assert.Equal(t, int64(8), report.Alerts[1].CurrentStock)
}

// El orden de salida es bodega-mayor, registro-menor, igual al orden de entrada:
// no se reordena por severidad.
func TestComputeLowStockAlerts_PreservaOrdenDeEntrada(t *testing.T) {
	warehouses := []alerting.WarehouseStock{
		warehouse("wh-1", "Bodega Norte",
			record("p-1", "AAA-001", "Casi agotado", 1, 10),
			record("p-2", "BBB-002", "Menos urgente", 9, 10),
		),
		warehouse("wh-2", "Bodega Sur",
			record("p-3", "CCC-003", "Urgente en Sur", 0, 10),
		),
	}
	report := alerting.ComputeLowStockAlerts(warehouses,
		salesFrom(map[string]int64{"p-1": 10, "p-2": 10, "p-3": 10}), noSuppliers)

	require.Len(t, report.Alerts, 3)
	assert.Equal(t, "p-1", report.Alerts[0].ProductID)
	assert.Equal(t, "p-2", report.Alerts[1].ProductID)
	assert.Equal(t, "p-3", report.Alerts[2].ProductID)
}

func TestComputeLowStockAlerts_TotalSiempreIgualALongitud(t *testing.T) {
	warehouses := []alerting.WarehouseStock{
		warehouse("wh-1", "Bodega Norte",
			record("p-1", "AAA-001", "A", 1, 10),
			record("p-2", "BBB-002", "B", 50, 10), // sobre umbral
			record("p-3", "CCC-003", "C", 3, 10),  // sin ventas
		),
	}
	report := alerting.ComputeLowStockAlerts(warehouses,
		salesFrom(map[string]int64{"p-1": 4, "p-2": 4}), noSuppliers)

	assert.Equal(t, len(report.Alerts), report.TotalAlerts)
	assert.Equal(t, 1, report.TotalAlerts)
}

func TestComputeLowStockAlerts_NoMutaEntradas(t *testing.T) {
	records := []alerting.StockRecord{
		record("p-1", "WID-001", "Widget A", 5, 10),
	}
	warehouses := []alerting.WarehouseStock{
		{WarehouseID: "wh-1", WarehouseName: "Bodega", Records: records},
	}
	_ = alerting.ComputeLowStockAlerts(warehouses,
		salesFrom(map[string]int64{"p-1": 30}), noSuppliers)

	assert.Equal(t, int64(5), records[0].Quantity)
	assert.Equal(t, "wh-1", warehouses[0].WarehouseID)
}
