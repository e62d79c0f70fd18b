package repository

import "github.com/jhoicas/Comercio-api/internal/domain/entity"

// BundleRepository define el puerto para componentes de bundles (product_bundles).
type BundleRepository interface {
	// SetComponents reemplaza los componentes del bundle por la lista dada.
	SetComponents(bundleID string, components []*entity.BundleComponent) error
	ListComponents(bundleID string) ([]*entity.BundleComponent, error)
}
