package repository

import (
	"context"

	"github.com/jhoicas/Comercio-api/internal/domain/entity"
)

// InventoryItem registro de inventario ya unido con su producto, tal como lo
// consume el reporte de bajo stock.
type InventoryItem struct {
	ProductID   string
	SKU         string
	ProductName string
	Quantity    int64
	Threshold   int64
}

// InventoryRepository define el puerto para el stock por (producto, bodega) (DIP).
type InventoryRepository interface {
	Get(productID, warehouseID string) (*entity.InventoryRecord, error)
	Upsert(record *entity.InventoryRecord) error

	// GetForUpdate obtiene el registro y bloquea la fila (SELECT FOR UPDATE).
	// Solo tiene sentido dentro de una transacción.
	GetForUpdate(productID, warehouseID string) (*entity.InventoryRecord, error)

	// ListByWarehouse devuelve el inventario de una bodega unido con productos,
	// ordenado por SKU ascendente (orden estable del reporte).
	ListByWarehouse(ctx context.Context, warehouseID string) ([]InventoryItem, error)
}

// InventoryHistoryRepository puerto append-only del historial de movimientos.
type InventoryHistoryRepository interface {
	Create(h *entity.InventoryHistory) error
	ListByProduct(ctx context.Context, productID string, limit, offset int) ([]*entity.InventoryHistory, error)
}
