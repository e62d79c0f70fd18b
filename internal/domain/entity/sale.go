package entity

import "time"

// SalesEvent representa una venta de un producto (unidades vendidas en una fecha).
// El analizador de bajo stock solo consume el agregado de los últimos 30 días.
type SalesEvent struct {
	ID          string
	CompanyID   string
	ProductID   string
	WarehouseID string
	Quantity    int64 // unidades vendidas (> 0)
	SoldAt      time.Time
	CreatedAt   time.Time
}
