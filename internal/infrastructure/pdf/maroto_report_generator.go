// Package pdf implementa la generación del reporte de bajo stock en PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Razón Social + NIT  │  Título + Fecha de emisión   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: total de alertas de la empresa                    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: SKU | Producto | Bodega | Stock | Umbral | Días     │
//	│         | Proveedor                                         │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: leyenda de interpretación                          │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/Comercio-api/internal/application/alerts"
	"github.com/jhoicas/Comercio-api/internal/application/dto"
	"github.com/jhoicas/Comercio-api/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorAlert   = &props.Color{Red: 180, Green: 40, Blue: 40}
)

// ── Generator ─────────────────────────────────────────────────────────────────

var _ alerts.ReportPDFGenerator = (*MarotoReportGenerator)(nil)

// MarotoReportGenerator implementa alerts.ReportPDFGenerator usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GenerateLowStockPDF genera el PDF del reporte y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateLowStockPDF(
	_ context.Context,
	company *entity.Company,
	report *dto.LowStockReportResponse,
	generatedAt time.Time,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de Bajo Stock", true).
		WithAuthor(company.Name, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(company, generatedAt))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(summaryRow(report))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	if len(report.Alerts) == 0 {
		m.AddRows(row.New(12).Add(col.New(12).Add(
			text.New("Sin productos en riesgo: todo el inventario está sobre su umbral o sin rotación.", props.Text{
				Size: 9, Align: align.Center, Color: colorGray, Top: 4,
			}),
		)))
	} else {
		m.AddRows(tableHeaderRow())
		for _, r := range tableAlertRows(report.Alerts) {
			m.AddRows(r)
		}
	}

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow())

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: razón social + NIT (izq) y título + fecha (der).
func headerRow(company *entity.Company, generatedAt time.Time) core.Row {
	fecha := generatedAt.Format("02/01/2006 15:04")

	return row.New(18).Add(
		col.New(7).Add(
			text.New(company.Name, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("NIT: "+nonEmpty(company.NIT, "—"), props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("REPORTE DE BAJO STOCK", props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right,
				Color: colorAlert, Top: 2,
			}),
			text.New("Generado: "+fecha, props.Text{
				Size: 8, Align: align.Right, Top: 10, Color: colorGray,
			}),
		),
	)
}

// summaryRow: total de alertas del reporte.
func summaryRow(report *dto.LowStockReportResponse) core.Row {
	return row.New(10).Add(
		col.New(12).Add(
			text.New(fmt.Sprintf("Productos en riesgo (por bodega): %d", report.TotalAlerts), props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 2,
			}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de alertas.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("SKU", 2, align.Left),
		h("Producto", 3, align.Left),
		h("Bodega", 2, align.Left),
		h("Stock", 1, align.Right),
		h("Umbral", 1, align.Right),
		h("Días", 1, align.Center),
		h("Proveedor", 2, align.Left),
	)
}

// tableAlertRows: una fila por alerta, en el orden del reporte.
func tableAlertRows(alerts []dto.LowStockAlertDTO) []core.Row {
	cell := func(s string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(s, props.Text{
			Size: 8, Align: a, Top: 1, Left: 1, Right: 1,
		}))
	}
	result := make([]core.Row, 0, len(alerts))
	for _, a := range alerts {
		supplierName := "—"
		if a.Supplier != nil {
			supplierName = a.Supplier.Name
			if a.Supplier.ContactEmail != "" {
				supplierName += " (" + a.Supplier.ContactEmail + ")"
			}
		}
		result = append(result, row.New(7).Add(
			cell(a.SKU, 2, align.Left),
			cell(a.ProductName, 3, align.Left),
			cell(a.WarehouseName, 2, align.Left),
			cell(strconv.FormatInt(a.CurrentStock, 10), 1, align.Right),
			cell(strconv.FormatInt(a.Threshold, 10), 1, align.Right),
			cell(formatDays(a.DaysUntilStockout), 1, align.Center),
			cell(supplierName, 2, align.Left),
		))
	}
	return result
}

// footerRow: leyenda de interpretación del reporte.
func footerRow() core.Row {
	return row.New(10).Add(col.New(12).Add(
		text.New(
			"Días = proyección de agotamiento según las ventas de los últimos 30 días. "+
				"\"N/D\" indica horizonte desconocido. Solo aparecen productos con ventas "+
				"recientes y stock en o bajo su umbral.",
			props.Text{Size: 6.5, Color: colorGray, Top: 2},
		),
	))
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// formatDays muestra el sentinel -1 como "N/D".
func formatDays(days int64) string {
	if days < 0 {
		return "N/D"
	}
	return strconv.FormatInt(days, 10)
}
