package dto

import "time"

// RegisterMovementRequest body para POST /api/inventory/movements.
// Tipos: IN (entrada), OUT (salida manual), SALE (venta: resta stock y registra
// evento de venta), ADJUSTMENT (fija la cantidad en Quantity).
type RegisterMovementRequest struct {
	ProductID   string `json:"product_id"`
	WarehouseID string `json:"warehouse_id"`
	Type        string `json:"type"`
	Quantity    int64  `json:"quantity"`
}

// InventoryRecordResponse stock actual de un producto en una bodega.
type InventoryRecordResponse struct {
	ProductID   string    `json:"product_id"`
	WarehouseID string    `json:"warehouse_id"`
	Quantity    int64     `json:"quantity"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// MovementHistoryResponse entrada del historial de movimientos de un producto.
type MovementHistoryResponse struct {
	ID             string    `json:"id"`
	TransactionID  string    `json:"transaction_id"`
	ProductID      string    `json:"product_id"`
	WarehouseID    string    `json:"warehouse_id"`
	Type           string    `json:"type"`
	Quantity       int64     `json:"quantity"`
	QuantityBefore int64     `json:"quantity_before"`
	QuantityAfter  int64     `json:"quantity_after"`
	CreatedAt      time.Time `json:"created_at"`
}
