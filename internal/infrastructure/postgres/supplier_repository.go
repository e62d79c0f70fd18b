package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Comercio-api/internal/domain"
	"github.com/jhoicas/Comercio-api/internal/domain/entity"
	"github.com/jhoicas/Comercio-api/internal/domain/repository"
)

var _ repository.SupplierRepository = (*SupplierRepo)(nil)

// SupplierRepo implementa SupplierRepository sobre PostgreSQL.
type SupplierRepo struct {
	q Querier
}

// NewSupplierRepository construye el adaptador de persistencia para proveedores.
func NewSupplierRepository(q Querier) *SupplierRepo {
	return &SupplierRepo{q: q}
}

const supplierColumns = `id, company_id, name, contact_email, phone, created_at, updated_at`

// Create persiste un nuevo proveedor.
func (r *SupplierRepo) Create(supplier *entity.Supplier) error {
	query := `
		INSERT INTO suppliers (` + supplierColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		supplier.ID, supplier.CompanyID, supplier.Name, supplier.ContactEmail,
		supplier.Phone, supplier.CreatedAt, supplier.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert supplier: %w", err)
	}
	return nil
}

// GetByID obtiene un proveedor por ID.
func (r *SupplierRepo) GetByID(id string) (*entity.Supplier, error) {
	return r.getOne(context.Background(), `SELECT `+supplierColumns+` FROM suppliers WHERE id = $1`, id)
}

func (r *SupplierRepo) getOne(ctx context.Context, query string, args ...any) (*entity.Supplier, error) {
	var s entity.Supplier
	err := r.q.QueryRow(ctx, query, args...).Scan(
		&s.ID, &s.CompanyID, &s.Name, &s.ContactEmail, &s.Phone, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get supplier: %w", err)
	}
	return &s, nil
}

// Update actualiza un proveedor existente.
func (r *SupplierRepo) Update(supplier *entity.Supplier) error {
	query := `
		UPDATE suppliers SET name = $2, contact_email = $3, phone = $4, updated_at = $5
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		supplier.ID, supplier.Name, supplier.ContactEmail, supplier.Phone, supplier.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update supplier: %w", err)
	}
	return nil
}

// ListByCompany lista proveedores por empresa con paginación.
func (r *SupplierRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.Supplier, error) {
	query := `
		SELECT ` + supplierColumns + `
		FROM suppliers WHERE company_id = $1 ORDER BY name ASC, id ASC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, companyID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list suppliers: %w", err)
	}
	defer rows.Close()
	var list []*entity.Supplier
	for rows.Next() {
		var s entity.Supplier
		if err := rows.Scan(&s.ID, &s.CompanyID, &s.Name, &s.ContactEmail, &s.Phone,
			&s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan supplier: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// Delete elimina un proveedor; los vínculos en supplier_products caen en cascada.
func (r *SupplierRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM suppliers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete supplier: %w", err)
	}
	return nil
}

// LinkProduct asocia un producto al proveedor. Repetir el vínculo es idempotente.
func (r *SupplierRepo) LinkProduct(supplierID, productID string) error {
	query := `
		INSERT INTO supplier_products (supplier_id, product_id, created_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (supplier_id, product_id) DO NOTHING`
	_, err := r.q.Exec(context.Background(), query, supplierID, productID, time.Now().UTC())
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("link supplier product: %w", err)
	}
	return nil
}

// UnlinkProduct elimina el vínculo proveedor-producto.
func (r *SupplierRepo) UnlinkProduct(supplierID, productID string) error {
	query := `DELETE FROM supplier_products WHERE supplier_id = $1 AND product_id = $2`
	_, err := r.q.Exec(context.Background(), query, supplierID, productID)
	if err != nil {
		return fmt.Errorf("unlink supplier product: %w", err)
	}
	return nil
}

// FindByProduct devuelve el proveedor del producto. Con varios proveedores el
// desempate es el menor id; sin proveedor devuelve (nil, nil).
func (r *SupplierRepo) FindByProduct(ctx context.Context, productID string) (*entity.Supplier, error) {
	query := `
		SELECT s.id, s.company_id, s.name, s.contact_email, s.phone, s.created_at, s.updated_at
		FROM suppliers s
		JOIN supplier_products sp ON sp.supplier_id = s.id
		WHERE sp.product_id = $1
		ORDER BY s.id ASC
		LIMIT 1`
	return r.getOne(ctx, query, productID)
}
