package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Comercio-api/internal/domain/entity"
	"github.com/jhoicas/Comercio-api/internal/domain/repository"
)

var _ repository.InventoryRepository = (*InventoryRepo)(nil)

// InventoryRepo implementación de InventoryRepository sobre PostgreSQL (usable con pool o tx).
// Una fila por (product_id, warehouse_id); UNIQUE en la tabla respalda el invariante.
type InventoryRepo struct {
	q Querier
}

// NewInventoryRepository construye el adaptador de inventario. Pasar pool o tx (Querier).
func NewInventoryRepository(q Querier) *InventoryRepo {
	return &InventoryRepo{q: q}
}

// Get obtiene el stock actual de un producto en una bodega.
// Sin fila → registro con cantidad 0 (no es un error).
func (r *InventoryRepo) Get(productID, warehouseID string) (*entity.InventoryRecord, error) {
	query := `
		SELECT product_id, warehouse_id, quantity, updated_at
		FROM inventory WHERE product_id = $1 AND warehouse_id = $2`
	var rec entity.InventoryRecord
	err := r.q.QueryRow(context.Background(), query, productID, warehouseID).Scan(
		&rec.ProductID, &rec.WarehouseID, &rec.Quantity, &rec.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &entity.InventoryRecord{ProductID: productID, WarehouseID: warehouseID}, nil
		}
		return nil, fmt.Errorf("get inventory: %w", err)
	}
	return &rec, nil
}

// Upsert inserta o actualiza la cantidad en inventario (por producto y bodega).
func (r *InventoryRepo) Upsert(record *entity.InventoryRecord) error {
	query := `
		INSERT INTO inventory (product_id, warehouse_id, quantity, updated_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (product_id, warehouse_id)
		DO UPDATE SET quantity = EXCLUDED.quantity, updated_at = now()`
	_, err := r.q.Exec(context.Background(), query, record.ProductID, record.WarehouseID, record.Quantity)
	if err != nil {
		return fmt.Errorf("upsert inventory: %w", err)
	}
	return nil
}

// GetForUpdate obtiene el registro y bloquea la fila (SELECT FOR UPDATE).
func (r *InventoryRepo) GetForUpdate(productID, warehouseID string) (*entity.InventoryRecord, error) {
	query := `
		SELECT product_id, warehouse_id, quantity, updated_at
		FROM inventory WHERE product_id = $1 AND warehouse_id = $2
		FOR UPDATE`
	var rec entity.InventoryRecord
	err := r.q.QueryRow(context.Background(), query, productID, warehouseID).Scan(
		&rec.ProductID, &rec.WarehouseID, &rec.Quantity, &rec.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &entity.InventoryRecord{ProductID: productID, WarehouseID: warehouseID}, nil
		}
		return nil, fmt.Errorf("get inventory for update: %w", err)
	}
	return &rec, nil
}

// ListByWarehouse devuelve el inventario de la bodega unido con productos,
// ordenado por SKU ascendente (orden estable de los registros en el reporte).
func (r *InventoryRepo) ListByWarehouse(ctx context.Context, warehouseID string) ([]repository.InventoryItem, error) {
	query := `
		SELECT i.product_id, p.sku, p.name, i.quantity, p.low_stock_threshold
		FROM inventory i
		JOIN products p ON p.id = i.product_id
		WHERE i.warehouse_id = $1
		ORDER BY p.sku ASC`
	rows, err := r.q.Query(ctx, query, warehouseID)
	if err != nil {
		return nil, fmt.Errorf("list inventory by warehouse: %w", err)
	}
	defer rows.Close()
	var list []repository.InventoryItem
	for rows.Next() {
		var item repository.InventoryItem
		if err := rows.Scan(&item.ProductID, &item.SKU, &item.ProductName, &item.Quantity, &item.Threshold); err != nil {
			return nil, fmt.Errorf("scan inventory item: %w", err)
		}
		list = append(list, item)
	}
	return list, rows.Err()
}
