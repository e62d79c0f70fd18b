package entity

import "time"

// Tipos de movimiento de inventario.
const (
	MovementTypeIN         = "IN"         // entrada (reabastecimiento)
	MovementTypeOUT        = "OUT"        // salida manual
	MovementTypeSALE       = "SALE"       // venta: resta stock y registra evento de venta
	MovementTypeADJUSTMENT = "ADJUSTMENT" // ajuste (fija la cantidad)
)

// InventoryHistory registra cada cambio de stock de un producto en una bodega
// (quién, cuándo, tipo y cantidades antes/después). Append-only.
type InventoryHistory struct {
	ID             string
	TransactionID  string
	ProductID      string
	WarehouseID    string
	Type           string
	Quantity       int64 // positivo entrada, negativo salida/venta
	QuantityBefore int64
	QuantityAfter  int64
	CreatedAt      time.Time
	CreatedBy      string
}
