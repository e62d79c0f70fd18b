package entity

import "time"

// InventoryRecord representa el stock actual de un producto en una bodega.
// Única por (product_id, warehouse_id); el stock de un producto está particionado
// por bodega y nunca se agrega implícitamente.
type InventoryRecord struct {
	ProductID   string
	WarehouseID string
	Quantity    int64 // >= 0
	UpdatedAt   time.Time
}
