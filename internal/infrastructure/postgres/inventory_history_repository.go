package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Comercio-api/internal/domain/entity"
	"github.com/jhoicas/Comercio-api/internal/domain/repository"
)

var _ repository.InventoryHistoryRepository = (*InventoryHistoryRepo)(nil)

// InventoryHistoryRepo registro append-only de movimientos de inventario (usable con pool o tx).
type InventoryHistoryRepo struct {
	q Querier
}

// NewInventoryHistoryRepository construye el adaptador del historial. Pasar pool o tx (Querier).
func NewInventoryHistoryRepository(q Querier) *InventoryHistoryRepo {
	return &InventoryHistoryRepo{q: q}
}

// Create inserta una entrada de historial.
func (r *InventoryHistoryRepo) Create(h *entity.InventoryHistory) error {
	query := `
		INSERT INTO inventory_history (id, transaction_id, product_id, warehouse_id, type, quantity, quantity_before, quantity_after, created_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		h.ID, h.TransactionID, h.ProductID, h.WarehouseID, h.Type,
		h.Quantity, h.QuantityBefore, h.QuantityAfter, h.CreatedAt, h.CreatedBy,
	)
	if err != nil {
		return fmt.Errorf("insert inventory history: %w", err)
	}
	return nil
}

// ListByProduct lista el historial de un producto, más reciente primero.
func (r *InventoryHistoryRepo) ListByProduct(ctx context.Context, productID string, limit, offset int) ([]*entity.InventoryHistory, error) {
	query := `
		SELECT id, transaction_id, product_id, warehouse_id, type, quantity, quantity_before, quantity_after, created_at, created_by
		FROM inventory_history WHERE product_id = $1
		ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(ctx, query, productID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list inventory history: %w", err)
	}
	defer rows.Close()
	var list []*entity.InventoryHistory
	for rows.Next() {
		var h entity.InventoryHistory
		if err := rows.Scan(&h.ID, &h.TransactionID, &h.ProductID, &h.WarehouseID, &h.Type,
			&h.Quantity, &h.QuantityBefore, &h.QuantityAfter, &h.CreatedAt, &h.CreatedBy); err != nil {
			return nil, fmt.Errorf("scan inventory history: %w", err)
		}
		list = append(list, &h)
	}
	return list, rows.Err()
}
