package dto

// SupplierContactDTO contacto del proveedor adjunto a una alerta (opcional).
type SupplierContactDTO struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	ContactEmail string `json:"contact_email"`
}

// LowStockAlertDTO alerta de bajo stock para un par (producto, bodega).
// days_until_stockout = -1 significa horizonte desconocido/infinito.
type LowStockAlertDTO struct {
	ProductID         string              `json:"product_id"`
	ProductName       string              `json:"product_name"`
	SKU               string              `json:"sku"`
	WarehouseID       string              `json:"warehouse_id"`
	WarehouseName     string              `json:"warehouse_name"`
	CurrentStock      int64               `json:"current_stock"`
	Threshold         int64               `json:"threshold"`
	DaysUntilStockout int64               `json:"days_until_stockout"`
	Supplier          *SupplierContactDTO `json:"supplier,omitempty"`
}

// LowStockReportResponse respuesta de GET /api/companies/{company_id}/alerts/low-stock.
// Las alertas conservan el orden de enumeración (bodega-mayor, registro-menor).
type LowStockReportResponse struct {
	Alerts      []LowStockAlertDTO `json:"alerts"`
	TotalAlerts int                `json:"total_alerts"`
}
