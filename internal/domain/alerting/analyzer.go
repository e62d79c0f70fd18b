package alerting

// Servicio de dominio puro para el reporte de bajo stock: no hace I/O,
// no muta sus entradas y es seguro de invocar concurrentemente.

// SalesWindowDays ventana fija de ventas recientes usada para la proyección.
const SalesWindowDays = 30

// DaysUnknown centinela para "horizonte desconocido/infinito" cuando el promedio
// diario de ventas es cero (inalcanzable tras el filtro de ventas, pero defensivo).
const DaysUnknown = -1

// StockRecord es un registro de inventario ya unido con su producto.
type StockRecord struct {
	ProductID   string
	SKU         string
	ProductName string
	Quantity    int64 // stock actual en la bodega (>= 0)
	Threshold   int64 // umbral de bajo stock del producto (>= 0)
}

// WarehouseStock es el snapshot de inventario de una bodega, en el orden
// en que debe recorrerse.
type WarehouseStock struct {
	WarehouseID   string
	WarehouseName string
	Records       []StockRecord
}

// SupplierInfo datos de contacto del proveedor asociado a un producto.
type SupplierInfo struct {
	ID           string
	Name         string
	ContactEmail string
}

// Alert es una alerta de bajo stock para un par (producto, bodega).
type Alert struct {
	ProductID         string
	ProductName       string
	SKU               string
	WarehouseID       string
	WarehouseName     string
	CurrentStock      int64
	Threshold         int64
	DaysUntilStockout int64
	Supplier          *SupplierInfo // nil si el producto no tiene proveedor
}

// Report es el resultado del análisis: alertas ordenadas más el total.
// El orden es bodega-mayor, registro-menor, igual al orden de entrada;
// no se reordena por severidad (quien quiera prioridad ordena aguas abajo).
type Report struct {
	Alerts      []Alert
	TotalAlerts int
}

// RecentSalesFunc devuelve las unidades vendidas de un producto en la ventana
// de 30 días. Un lookup caído debe degradar a 0, nunca abortar el reporte.
type RecentSalesFunc func(productID string) int64

// SupplierFunc devuelve a lo sumo un proveedor por producto (nil = sin proveedor).
type SupplierFunc func(productID string) *SupplierInfo

// ComputeLowStockAlerts recorre cada bodega y cada registro de inventario y emite
// una alerta cuando el producto tuvo ventas recientes y su stock está en o bajo
// el umbral (inclusive). Reglas por par (producto, bodega):
//
//  1. Sin ventas en 30 días → se omite, sin importar el nivel de stock.
//  2. Stock > umbral → se omite.
//  3. Proyección: díasHastaAgotarse = ceil(stock / (ventas/30)); 0 si stock es 0.
//  4. Proveedor opcional; su ausencia no excluye la alerta.
func ComputeLowStockAlerts(warehouses []WarehouseStock, recentSales RecentSalesFunc, supplier SupplierFunc) Report {
	alerts := []Alert{}
	for _, wh := range warehouses {
		for _, rec := range wh.Records {
			sold := recentSales(rec.ProductID)
			if sold <= 0 {
				continue
			}
			if rec.Quantity > rec.Threshold {
				continue
			}
			alerts = append(alerts, Alert{
				ProductID:         rec.ProductID,
				ProductName:       rec.ProductName,
				SKU:               rec.SKU,
				WarehouseID:       wh.WarehouseID,
				WarehouseName:     wh.WarehouseName,
				CurrentStock:      rec.Quantity,
				Threshold:         rec.Threshold,
				DaysUntilStockout: daysUntilStockout(rec.Quantity, sold),
				Supplier:          supplier(rec.ProductID),
			})
		}
	}
	return Report{Alerts: alerts, TotalAlerts: len(alerts)}
}

// daysUntilStockout proyecta los días hasta stock cero al ritmo promedio de la
// ventana: ceil(stock / (ventas/30)) = ceil(stock*30/ventas), en aritmética entera.
func daysUntilStockout(stock, soldInWindow int64) int64 {
	if soldInWindow <= 0 {
		return DaysUnknown
	}
	if stock <= 0 {
		return 0
	}
	return (stock*SalesWindowDays + soldInWindow - 1) / soldInWindow
}
