package dto

// BundleComponentDTO componente de un bundle: producto y cantidad fija.
type BundleComponentDTO struct {
	ComponentID string `json:"component_id" validate:"required,uuid"`
	Quantity    int64  `json:"quantity" validate:"required,min=1"`
}

// SetBundleRequest body para definir los componentes de un bundle.
type SetBundleRequest struct {
	Components []BundleComponentDTO `json:"components" validate:"required,min=1,dive"`
}

// BundleResponse componentes actuales de un bundle.
type BundleResponse struct {
	BundleID   string               `json:"bundle_id"`
	Components []BundleComponentDTO `json:"components"`
}
