package repository

import (
	"context"

	"github.com/jhoicas/Comercio-api/internal/domain/entity"
)

// SupplierRepository define el puerto de persistencia para Supplier (DIP).
type SupplierRepository interface {
	Create(supplier *entity.Supplier) error
	GetByID(id string) (*entity.Supplier, error)
	Update(supplier *entity.Supplier) error
	ListByCompany(companyID string, limit, offset int) ([]*entity.Supplier, error)
	Delete(id string) error

	// LinkProduct asocia un producto al proveedor (supplier_products).
	LinkProduct(supplierID, productID string) error
	UnlinkProduct(supplierID, productID string) error

	// FindByProduct devuelve a lo sumo un proveedor del producto. Si hay varios,
	// el desempate es determinista: menor id de proveedor. nil = sin proveedor.
	FindByProduct(ctx context.Context, productID string) (*entity.Supplier, error)
}
