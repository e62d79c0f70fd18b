package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Comercio-api/internal/domain"
	"github.com/jhoicas/Comercio-api/internal/domain/entity"
	"github.com/jhoicas/Comercio-api/internal/domain/repository"
)

// RegisterMovementUseCase registra movimientos de inventario de forma transaccional
// (IN, OUT, SALE, ADJUSTMENT) con bloqueo de fila (SELECT FOR UPDATE) y Commit/Rollback.
// Un SALE además registra el evento de venta que alimenta el reporte de bajo stock.
type RegisterMovementUseCase struct {
	txRunner      TxRunner
	productRepo   repository.ProductRepository
	warehouseRepo repository.WarehouseRepository
}

// NewRegisterMovementUseCase construye el caso de uso.
func NewRegisterMovementUseCase(
	txRunner TxRunner,
	productRepo repository.ProductRepository,
	warehouseRepo repository.WarehouseRepository,
) *RegisterMovementUseCase {
	return &RegisterMovementUseCase{
		txRunner:      txRunner,
		productRepo:   productRepo,
		warehouseRepo: warehouseRepo,
	}
}

// MovementInput entrada para registrar un movimiento de inventario.
// IN/OUT/SALE: Quantity > 0. ADJUSTMENT: Quantity >= 0 (cantidad final).
type MovementInput struct {
	CompanyID   string
	UserID      string
	ProductID   string
	WarehouseID string
	Type        string
	Quantity    int64
}

// RegisterMovement valida producto y bodega, inicia una transacción, bloquea la
// fila de inventario y aplica la lógica según el tipo. Commit si todo ok.
func (uc *RegisterMovementUseCase) RegisterMovement(ctx context.Context, input MovementInput) error {
	switch input.Type {
	case entity.MovementTypeIN, entity.MovementTypeOUT, entity.MovementTypeSALE:
		if input.Quantity <= 0 {
			return domain.ErrInvalidInput
		}
	case entity.MovementTypeADJUSTMENT:
		if input.Quantity < 0 {
			return domain.ErrInvalidInput
		}
	default:
		return domain.ErrInvalidInput
	}
	if input.ProductID == "" || input.WarehouseID == "" {
		return domain.ErrInvalidInput
	}

	// Validar que producto y bodega existan y sean de la empresa
	product, err := uc.productRepo.GetByID(input.ProductID)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	if product.CompanyID != input.CompanyID {
		return domain.ErrForbidden
	}
	wh, err := uc.warehouseRepo.GetByID(input.WarehouseID)
	if err != nil {
		return err
	}
	if wh == nil || wh.CompanyID != input.CompanyID {
		return domain.ErrNotFound
	}

	now := time.Now()
	txID := uuid.New().String()

	return uc.txRunner.Run(ctx, func(
		_ repository.ProductRepository,
		stockRepo repository.InventoryRepository,
		historyRepo repository.InventoryHistoryRepository,
		salesRepo repository.SalesRepository,
	) error {
		// Bloquea la fila de inventario (SELECT FOR UPDATE) para evitar carreras
		stock, err := stockRepo.GetForUpdate(input.ProductID, input.WarehouseID)
		if err != nil {
			return err
		}
		before := stock.Quantity

		var after int64
		switch input.Type {
		case entity.MovementTypeIN:
			after = before + input.Quantity
		case entity.MovementTypeOUT, entity.MovementTypeSALE:
			if before < input.Quantity {
				return domain.ErrInsufficientStock
			}
			after = before - input.Quantity
		case entity.MovementTypeADJUSTMENT:
			after = input.Quantity
		}

		stock.Quantity = after
		stock.UpdatedAt = now
		if err := stockRepo.Upsert(stock); err != nil {
			return err
		}

		if err := historyRepo.Create(&entity.InventoryHistory{
			ID:             uuid.New().String(),
			TransactionID:  txID,
			ProductID:      input.ProductID,
			WarehouseID:    input.WarehouseID,
			Type:           input.Type,
			Quantity:       after - before,
			QuantityBefore: before,
			QuantityAfter:  after,
			CreatedAt:      now,
			CreatedBy:      input.UserID,
		}); err != nil {
			return err
		}

		// Las ventas alimentan la ventana de 30 días del reporte de bajo stock
		if input.Type == entity.MovementTypeSALE {
			return salesRepo.Create(&entity.SalesEvent{
				ID:          uuid.New().String(),
				CompanyID:   input.CompanyID,
				ProductID:   input.ProductID,
				WarehouseID: input.WarehouseID,
				Quantity:    input.Quantity,
				SoldAt:      now,
				CreatedAt:   now,
			})
		}
		return nil
	})
}
