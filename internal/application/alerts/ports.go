package alerts

import (
	"context"
	"time"

	"github.com/jhoicas/Comercio-api/internal/application/dto"
	"github.com/jhoicas/Comercio-api/internal/domain/entity"
)

// ReportPDFGenerator genera la representación PDF del reporte de bajo stock.
type ReportPDFGenerator interface {
	GenerateLowStockPDF(
		ctx context.Context,
		company *entity.Company,
		report *dto.LowStockReportResponse,
		generatedAt time.Time,
	) ([]byte, error)
}
