package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Comercio-api/internal/application/dto"
	"github.com/jhoicas/Comercio-api/internal/application/usecase"
	"github.com/jhoicas/Comercio-api/internal/domain"
	"github.com/jhoicas/Comercio-api/internal/domain/entity"
	"github.com/jhoicas/Comercio-api/internal/domain/repository"
)

const (
	testCompanyID = "00000000-0000-0000-0000-0000000000c0"
	testUserID    = "00000000-0000-0000-0000-0000000000a1"
)

type fakeProductRepo struct {
	repository.ProductRepository
	bySKU  map[string]*entity.Product
	skuErr error
}

func (f *fakeProductRepo) GetByCompanyAndSKU(_, sku string) (*entity.Product, error) {
	if f.skuErr != nil {
		return nil, f.skuErr
	}
	return f.bySKU[sku], nil
}

type fakeWarehouseRepo struct {
	repository.WarehouseRepository
	byID map[string]*entity.Warehouse
	err  error
}

func (f *fakeWarehouseRepo) GetByID(id string) (*entity.Warehouse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.byID[id], nil
}

type fakeTxRunner struct {
	called bool
}

func (f *fakeTxRunner) Run(_ context.Context, _ func(
	repository.ProductRepository,
	repository.InventoryRepository,
	repository.InventoryHistoryRepository,
	repository.SalesRepository,
) error) error {
	f.called = true
	return nil
}

func createRequest(warehouseID string) dto.CreateProductRequest {
	qty := int64(10)
	return dto.CreateProductRequest{
		SKU:             "SKU-001",
		Name:            "Café 500g",
		WarehouseID:     warehouseID,
		InitialQuantity: &qty,
	}
}

// Bodega del stock inicial inexistente → ErrNotFound y sin transacción abierta.
func TestProductCreate_BodegaInexistente(t *testing.T) {
	tx := &fakeTxRunner{}
	uc := usecase.NewProductUseCase(&fakeProductRepo{}, &fakeWarehouseRepo{}, tx)

	out, err := uc.Create(context.Background(), testCompanyID, testUserID, createRequest("wh-inexistente"))

	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Nil(t, out)
	assert.False(t, tx.called)
}

// Un fallo transitorio al consultar la bodega no debe degradarse a "no existe".
func TestProductCreate_FalloConsultaBodega_PropagaError(t *testing.T) {
	dbErr := errors.New("conexión caída")
	uc := usecase.NewProductUseCase(&fakeProductRepo{}, &fakeWarehouseRepo{err: dbErr}, &fakeTxRunner{})

	_, err := uc.Create(context.Background(), testCompanyID, testUserID, createRequest("wh-1"))

	require.Error(t, err)
	assert.ErrorIs(t, err, dbErr)
	assert.NotErrorIs(t, err, domain.ErrNotFound)
}

// El fallo al consultar el SKU también se propaga: sin esa lectura no hay
// garantía de unicidad.
func TestProductCreate_FalloConsultaSKU_PropagaError(t *testing.T) {
	dbErr := errors.New("conexión caída")
	uc := usecase.NewProductUseCase(&fakeProductRepo{skuErr: dbErr}, &fakeWarehouseRepo{}, &fakeTxRunner{})

	_, err := uc.Create(context.Background(), testCompanyID, testUserID, dto.CreateProductRequest{SKU: "SKU-001", Name: "Café 500g"})

	assert.ErrorIs(t, err, dbErr)
}
