package repository

import (
	"context"
	"time"

	"github.com/jhoicas/Comercio-api/internal/domain/entity"
)

// SalesRepository puerto de persistencia y agregación de eventos de venta (DIP).
type SalesRepository interface {
	Create(sale *entity.SalesEvent) error

	// CountRecentSales devuelve las unidades vendidas del producto desde `since`
	// (suma de cantidades; 0 si no hay ventas en la ventana).
	CountRecentSales(ctx context.Context, productID string, since time.Time) (int64, error)
}
