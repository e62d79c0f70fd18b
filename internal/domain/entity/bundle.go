package entity

import "time"

// BundleComponent representa un componente de un producto tipo bundle:
// el bundle contiene `Quantity` unidades del producto componente
// (tabla product_bundles; solo esquema, el analizador no lo consume).
type BundleComponent struct {
	BundleID    string
	ComponentID string
	Quantity    int64 // > 0
	CreatedAt   time.Time
}
