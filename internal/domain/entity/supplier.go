package entity

import "time"

// Supplier representa un proveedor de productos.
type Supplier struct {
	ID           string
	CompanyID    string
	Name         string
	ContactEmail string
	Phone        string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// SupplierProduct vincula un proveedor con un producto que suministra
// (tabla supplier_products; un producto puede tener varios proveedores).
type SupplierProduct struct {
	SupplierID string
	ProductID  string
	CreatedAt  time.Time
}
