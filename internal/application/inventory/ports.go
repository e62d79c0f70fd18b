package inventory

import (
	"context"

	"github.com/jhoicas/Comercio-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios
// atados a esa tx. Garantiza atomicidad para el motor de inventario y para la
// creación de producto con stock inicial.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		stockRepo repository.InventoryRepository,
		historyRepo repository.InventoryHistoryRepository,
		salesRepo repository.SalesRepository,
	) error) error
}
