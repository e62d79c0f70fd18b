package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Comercio-api/internal/domain"
	"github.com/jhoicas/Comercio-api/internal/domain/entity"
	"github.com/jhoicas/Comercio-api/internal/domain/repository"
)

var _ repository.BundleRepository = (*BundleRepo)(nil)

// BundleRepo implementa BundleRepository sobre PostgreSQL (tabla product_bundles).
type BundleRepo struct {
	q Querier
}

// NewBundleRepository construye el adaptador de componentes de bundles.
func NewBundleRepository(q Querier) *BundleRepo {
	return &BundleRepo{q: q}
}

// SetComponents reemplaza los componentes del bundle por la lista dada.
// Borra los existentes e inserta los nuevos en la misma llamada.
func (r *BundleRepo) SetComponents(bundleID string, components []*entity.BundleComponent) error {
	ctx := context.Background()
	if _, err := r.q.Exec(ctx, `DELETE FROM product_bundles WHERE bundle_id = $1`, bundleID); err != nil {
		return fmt.Errorf("clear bundle components: %w", err)
	}
	query := `
		INSERT INTO product_bundles (bundle_id, component_id, quantity, created_at)
		VALUES ($1, $2, $3, $4)`
	for _, c := range components {
		if _, err := r.q.Exec(ctx, query, bundleID, c.ComponentID, c.Quantity, c.CreatedAt); err != nil {
			if isForeignKeyViolation(err) {
				return domain.ErrNotFound
			}
			return fmt.Errorf("insert bundle component: %w", err)
		}
	}
	return nil
}

// ListComponents lista los componentes de un bundle ordenados por componente.
func (r *BundleRepo) ListComponents(bundleID string) ([]*entity.BundleComponent, error) {
	query := `
		SELECT bundle_id, component_id, quantity, created_at
		FROM product_bundles WHERE bundle_id = $1 ORDER BY component_id ASC`
	rows, err := r.q.Query(context.Background(), query, bundleID)
	if err != nil {
		return nil, fmt.Errorf("list bundle components: %w", err)
	}
	defer rows.Close()
	var list []*entity.BundleComponent
	for rows.Next() {
		var c entity.BundleComponent
		if err := rows.Scan(&c.BundleID, &c.ComponentID, &c.Quantity, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan bundle component: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}
