package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Comercio-api/internal/application/alerts"
	"github.com/jhoicas/Comercio-api/internal/application/dto"
	"github.com/jhoicas/Comercio-api/internal/domain"
	"github.com/jhoicas/Comercio-api/pkg/logger"
)

// AlertHandler expone el reporte de alertas de bajo stock (protegido).
// Los errores internos se loguean y la respuesta lleva un mensaje genérico:
// el detalle (texto de queries, hosts) no sale por la API.
type AlertHandler struct {
	uc  *alerts.LowStockUseCase
	log *logger.Logger
}

// NewAlertHandler construye el handler.
func NewAlertHandler(uc *alerts.LowStockUseCase, log *logger.Logger) *AlertHandler {
	return &AlertHandler{uc: uc, log: log}
}

// GetLowStock godoc
// @Summary      Reporte de alertas de bajo stock de la empresa
// @Description  Productos con ventas en los últimos 30 días y stock en o bajo su
// @Description  umbral, con proyección de días hasta agotamiento y contacto del
// @Description  proveedor si existe. Empresa sin productos en riesgo → alerts: [].
// @Tags         alerts
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.LowStockReportResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/alerts/low-stock [get]
func (h *AlertHandler) GetLowStock(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "company_id requerido"})
	}
	out, err := h.uc.GetLowStockReport(c.UserContext(), companyID)
	if err != nil {
		h.log.Error().Err(err).Str("company_id", companyID).Msg("error generando reporte de bajo stock")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}
	return c.JSON(out)
}

// GetLowStockByCompany godoc
// @Summary      Reporte de alertas de bajo stock por empresa
// @Description  Variante con empresa explícita en la ruta. Misma semántica que
// @Description  /api/alerts/low-stock; empresa sin riesgo o inexistente → alerts: [].
// @Tags         alerts
// @Produce      json
// @Param        id   path  string  true  "ID de la empresa"
// @Success      200  {object}  dto.LowStockReportResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/companies/{id}/alerts/low-stock [get]
func (h *AlertHandler) GetLowStockByCompany(c *fiber.Ctx) error {
	companyID := c.Params("id")
	if companyID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	out, err := h.uc.GetLowStockReport(c.UserContext(), companyID)
	if err != nil {
		h.log.Error().Err(err).Str("company_id", companyID).Msg("error generando reporte de bajo stock")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}
	return c.JSON(out)
}

// GetLowStockPDF godoc
// @Summary      Reporte de bajo stock en PDF
// @Tags         alerts
// @Security     Bearer
// @Produce      application/pdf
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/alerts/low-stock/pdf [get]
func (h *AlertHandler) GetLowStockPDF(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "company_id requerido"})
	}
	pdfBytes, err := h.uc.GetLowStockReportPDF(c.UserContext(), companyID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "empresa no encontrada"})
		}
		h.log.Error().Err(err).Str("company_id", companyID).Msg("error generando PDF de bajo stock")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="reporte-bajo-stock.pdf"`)
	return c.Send(pdfBytes)
}
