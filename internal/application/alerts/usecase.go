package alerts

import (
	"context"
	"time"

	"github.com/jhoicas/Comercio-api/internal/application/dto"
	"github.com/jhoicas/Comercio-api/internal/domain"
	"github.com/jhoicas/Comercio-api/internal/domain/alerting"
	"github.com/jhoicas/Comercio-api/internal/domain/repository"
	"github.com/jhoicas/Comercio-api/pkg/logger"
)

// LowStockUseCase arma el snapshot de inventario de una empresa y delega el
// cálculo al servicio de dominio alerting. La obtención de datos vive aquí;
// el analizador recibe snapshots inmutables y lookups ya envueltos.
type LowStockUseCase struct {
	warehouseRepo repository.WarehouseRepository
	inventoryRepo repository.InventoryRepository
	salesRepo     repository.SalesRepository
	supplierRepo  repository.SupplierRepository
	pdfGenerator  ReportPDFGenerator
	companyRepo   repository.CompanyRepository
	log           *logger.Logger
}

// NewLowStockUseCase construye el caso de uso del reporte de bajo stock.
func NewLowStockUseCase(
	warehouseRepo repository.WarehouseRepository,
	inventoryRepo repository.InventoryRepository,
	salesRepo repository.SalesRepository,
	supplierRepo repository.SupplierRepository,
	companyRepo repository.CompanyRepository,
	pdfGenerator ReportPDFGenerator,
	log *logger.Logger,
) *LowStockUseCase {
	return &LowStockUseCase{
		warehouseRepo: warehouseRepo,
		inventoryRepo: inventoryRepo,
		salesRepo:     salesRepo,
		supplierRepo:  supplierRepo,
		companyRepo:   companyRepo,
		pdfGenerator:  pdfGenerator,
		log:           log,
	}
}

// GetLowStockReport devuelve las alertas de bajo stock de la empresa.
// Empresa sin bodegas o sin productos en riesgo → reporte vacío, nunca error.
// Un lookup de ventas o proveedor caído para un producto degrada a
// "sin ventas" / "sin proveedor" (con log) en vez de abortar el reporte;
// solo el fallo al leer bodegas o inventario es terminal.
func (uc *LowStockUseCase) GetLowStockReport(ctx context.Context, companyID string) (*dto.LowStockReportResponse, error) {
	warehouses, err := uc.warehouseRepo.ListAllByCompany(companyID)
	if err != nil {
		return nil, err
	}

	snapshot := make([]alerting.WarehouseStock, 0, len(warehouses))
	for _, wh := range warehouses {
		items, err := uc.inventoryRepo.ListByWarehouse(ctx, wh.ID)
		if err != nil {
			return nil, err
		}
		records := make([]alerting.StockRecord, 0, len(items))
		for _, item := range items {
			records = append(records, alerting.StockRecord{
				ProductID:   item.ProductID,
				SKU:         item.SKU,
				ProductName: item.ProductName,
				Quantity:    item.Quantity,
				Threshold:   item.Threshold,
			})
		}
		snapshot = append(snapshot, alerting.WarehouseStock{
			WarehouseID:   wh.ID,
			WarehouseName: wh.Name,
			Records:       records,
		})
	}

	since := time.Now().AddDate(0, 0, -alerting.SalesWindowDays)

	// Memoizar por producto: el mismo SKU bajo stock en varias bodegas
	// no debe repetir la consulta de ventas ni la de proveedor.
	salesCache := make(map[string]int64)
	recentSales := func(productID string) int64 {
		if count, ok := salesCache[productID]; ok {
			return count
		}
		count, err := uc.salesRepo.CountRecentSales(ctx, productID, since)
		if err != nil {
			// Degradar a "sin ventas recientes" para este producto: un join roto
			// no debe tumbar el reporte completo
			uc.log.Warn().Err(err).Str("product_id", productID).
				Msg("consulta de ventas recientes falló, se asume 0")
			count = 0
		}
		salesCache[productID] = count
		return count
	}

	supplierCache := make(map[string]*alerting.SupplierInfo)
	supplier := func(productID string) *alerting.SupplierInfo {
		if info, ok := supplierCache[productID]; ok {
			return info
		}
		var info *alerting.SupplierInfo
		s, err := uc.supplierRepo.FindByProduct(ctx, productID)
		if err != nil {
			uc.log.Warn().Err(err).Str("product_id", productID).
				Msg("consulta de proveedor falló, alerta sin proveedor")
		} else if s != nil {
			info = &alerting.SupplierInfo{ID: s.ID, Name: s.Name, ContactEmail: s.ContactEmail}
		}
		supplierCache[productID] = info
		return info
	}

	report := alerting.ComputeLowStockAlerts(snapshot, recentSales, supplier)
	return toReportResponse(report), nil
}

// GetLowStockReportPDF genera el reporte como PDF.
// Devuelve ErrNotFound si la empresa no existe.
func (uc *LowStockUseCase) GetLowStockReportPDF(ctx context.Context, companyID string) ([]byte, error) {
	company, err := uc.companyRepo.GetByID(companyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	report, err := uc.GetLowStockReport(ctx, companyID)
	if err != nil {
		return nil, err
	}
	return uc.pdfGenerator.GenerateLowStockPDF(ctx, company, report, time.Now())
}

func toReportResponse(r alerting.Report) *dto.LowStockReportResponse {
	alerts := make([]dto.LowStockAlertDTO, 0, len(r.Alerts))
	for _, a := range r.Alerts {
		item := dto.LowStockAlertDTO{
			ProductID:         a.ProductID,
			ProductName:       a.ProductName,
			SKU:               a.SKU,
			WarehouseID:       a.WarehouseID,
			WarehouseName:     a.WarehouseName,
			CurrentStock:      a.CurrentStock,
			Threshold:         a.Threshold,
			DaysUntilStockout: a.DaysUntilStockout,
		}
		if a.Supplier != nil {
			item.Supplier = &dto.SupplierContactDTO{
				ID:           a.Supplier.ID,
				Name:         a.Supplier.Name,
				ContactEmail: a.Supplier.ContactEmail,
			}
		}
		alerts = append(alerts, item)
	}
	return &dto.LowStockReportResponse{Alerts: alerts, TotalAlerts: r.TotalAlerts}
}
