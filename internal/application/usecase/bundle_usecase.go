package usecase

import (
	"time"

	"github.com/jhoicas/Comercio-api/internal/application/dto"
	"github.com/jhoicas/Comercio-api/internal/domain"
	"github.com/jhoicas/Comercio-api/internal/domain/entity"
	"github.com/jhoicas/Comercio-api/internal/domain/repository"
)

// BundleUseCase define y consulta los componentes de un producto tipo bundle.
// El reporte de bajo stock no consume bundles; son solo esquema + CRUD.
type BundleUseCase struct {
	repo        repository.BundleRepository
	productRepo repository.ProductRepository
}

// NewBundleUseCase construye el caso de uso.
func NewBundleUseCase(repo repository.BundleRepository, productRepo repository.ProductRepository) *BundleUseCase {
	return &BundleUseCase{repo: repo, productRepo: productRepo}
}

// SetComponents reemplaza los componentes del bundle. Reglas: el bundle y cada
// componente deben existir y ser de la empresa, cantidades > 0, y un bundle no
// puede contenerse a sí mismo.
func (uc *BundleUseCase) SetComponents(companyID, bundleID string, in dto.SetBundleRequest) (*dto.BundleResponse, error) {
	bundle, err := uc.productRepo.GetByID(bundleID)
	if err != nil || bundle == nil || bundle.CompanyID != companyID {
		return nil, domain.ErrNotFound
	}
	now := time.Now()
	components := make([]*entity.BundleComponent, 0, len(in.Components))
	for _, c := range in.Components {
		if c.Quantity <= 0 || c.ComponentID == bundleID {
			return nil, domain.ErrInvalidInput
		}
		component, err := uc.productRepo.GetByID(c.ComponentID)
		if err != nil || component == nil || component.CompanyID != companyID {
			return nil, domain.ErrNotFound
		}
		components = append(components, &entity.BundleComponent{
			BundleID:    bundleID,
			ComponentID: c.ComponentID,
			Quantity:    c.Quantity,
			CreatedAt:   now,
		})
	}
	if err := uc.repo.SetComponents(bundleID, components); err != nil {
		return nil, err
	}
	return uc.GetComponents(companyID, bundleID)
}

// GetComponents devuelve los componentes actuales del bundle.
func (uc *BundleUseCase) GetComponents(companyID, bundleID string) (*dto.BundleResponse, error) {
	bundle, err := uc.productRepo.GetByID(bundleID)
	if err != nil || bundle == nil || bundle.CompanyID != companyID {
		return nil, domain.ErrNotFound
	}
	list, err := uc.repo.ListComponents(bundleID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.BundleComponentDTO, 0, len(list))
	for _, c := range list {
		items = append(items, dto.BundleComponentDTO{
			ComponentID: c.ComponentID,
			Quantity:    c.Quantity,
		})
	}
	return &dto.BundleResponse{BundleID: bundleID, Components: items}, nil
}
