package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// DefaultLowStockThreshold umbral por defecto cuando no se especifica al crear.
const DefaultLowStockThreshold = 10

// Product representa un producto o SKU del catálogo (multi-bodega).
// El stock se maneja por bodega en InventoryRecord, nunca agregado en el producto.
type Product struct {
	ID                string
	CompanyID         string
	SKU               string // código único por empresa
	Name              string
	Description       string
	Price             decimal.Decimal // precio de venta (decimal fijo, nunca float)
	LowStockThreshold int64           // stock <= umbral dispara alerta (>= 0)
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
