package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/Comercio-api/internal/domain/entity"
	"github.com/jhoicas/Comercio-api/internal/domain/repository"
)

var _ repository.SalesRepository = (*SalesRepo)(nil)

// SalesRepo implementa SalesRepository sobre PostgreSQL (usable con pool o tx).
type SalesRepo struct {
	q Querier
}

// NewSalesRepository construye el adaptador de ventas. Pasar pool o tx (Querier).
func NewSalesRepository(q Querier) *SalesRepo {
	return &SalesRepo{q: q}
}

// Create inserta un evento de venta.
func (r *SalesRepo) Create(sale *entity.SalesEvent) error {
	query := `
		INSERT INTO sales (id, company_id, product_id, warehouse_id, quantity, sold_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		sale.ID, sale.CompanyID, sale.ProductID, sale.WarehouseID,
		sale.Quantity, sale.SoldAt, sale.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert sale: %w", err)
	}
	return nil
}

// CountRecentSales suma las unidades vendidas del producto desde `since`.
// Sin ventas en la ventana devuelve 0, no error.
func (r *SalesRepo) CountRecentSales(ctx context.Context, productID string, since time.Time) (int64, error) {
	query := `SELECT COALESCE(SUM(quantity), 0) FROM sales WHERE product_id = $1 AND sold_at >= $2`
	var total int64
	if err := r.q.QueryRow(ctx, query, productID, since).Scan(&total); err != nil {
		return 0, fmt.Errorf("count recent sales: %w", err)
	}
	return total, nil
}
