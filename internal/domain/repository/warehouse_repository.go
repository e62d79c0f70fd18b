package repository

import "github.com/jhoicas/Comercio-api/internal/domain/entity"

// WarehouseRepository define el puerto de persistencia para Warehouse (DIP).
type WarehouseRepository interface {
	Create(warehouse *entity.Warehouse) error
	GetByID(id string) (*entity.Warehouse, error)
	Update(warehouse *entity.Warehouse) error
	ListByCompany(companyID string, limit, offset int) ([]*entity.Warehouse, error)

	// ListAllByCompany devuelve todas las bodegas de la empresa ordenadas por
	// fecha de creación ascendente (orden estable del reporte de bajo stock).
	ListAllByCompany(companyID string) ([]*entity.Warehouse, error)

	Delete(id string) error
}
