package inventory

import (
	"context"

	"github.com/jhoicas/Comercio-api/internal/application/dto"
	"github.com/jhoicas/Comercio-api/internal/domain"
	"github.com/jhoicas/Comercio-api/internal/domain/repository"
)

// QueryUseCase lecturas de inventario: stock actual e historial de movimientos.
type QueryUseCase struct {
	productRepo   repository.ProductRepository
	inventoryRepo repository.InventoryRepository
	historyRepo   repository.InventoryHistoryRepository
}

// NewQueryUseCase construye el caso de uso de consultas de inventario.
func NewQueryUseCase(
	productRepo repository.ProductRepository,
	inventoryRepo repository.InventoryRepository,
	historyRepo repository.InventoryHistoryRepository,
) *QueryUseCase {
	return &QueryUseCase{
		productRepo:   productRepo,
		inventoryRepo: inventoryRepo,
		historyRepo:   historyRepo,
	}
}

// GetStock devuelve el stock actual del producto en la bodega.
// Producto sin fila de inventario cuenta como stock 0, no como error.
func (uc *QueryUseCase) GetStock(companyID, productID, warehouseID string) (*dto.InventoryRecordResponse, error) {
	if err := uc.checkProduct(companyID, productID); err != nil {
		return nil, err
	}
	record, err := uc.inventoryRepo.Get(productID, warehouseID)
	if err != nil {
		return nil, err
	}
	return &dto.InventoryRecordResponse{
		ProductID:   record.ProductID,
		WarehouseID: record.WarehouseID,
		Quantity:    record.Quantity,
		UpdatedAt:   record.UpdatedAt,
	}, nil
}

// GetHistory lista el historial de movimientos del producto, más reciente primero.
func (uc *QueryUseCase) GetHistory(ctx context.Context, companyID, productID string, limit, offset int) ([]dto.MovementHistoryResponse, error) {
	if err := uc.checkProduct(companyID, productID); err != nil {
		return nil, err
	}
	entries, err := uc.historyRepo.ListByProduct(ctx, productID, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.MovementHistoryResponse, 0, len(entries))
	for _, h := range entries {
		out = append(out, dto.MovementHistoryResponse{
			ID:             h.ID,
			TransactionID:  h.TransactionID,
			ProductID:      h.ProductID,
			WarehouseID:    h.WarehouseID,
			Type:           h.Type,
			Quantity:       h.Quantity,
			QuantityBefore: h.QuantityBefore,
			QuantityAfter:  h.QuantityAfter,
			CreatedAt:      h.CreatedAt,
		})
	}
	return out, nil
}

func (uc *QueryUseCase) checkProduct(companyID, productID string) error {
	product, err := uc.productRepo.GetByID(productID)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	if product.CompanyID != companyID {
		return domain.ErrForbidden
	}
	return nil
}
