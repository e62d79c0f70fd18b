package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Comercio-api/internal/application/dto"
	"github.com/jhoicas/Comercio-api/internal/application/usecase"
	"github.com/jhoicas/Comercio-api/internal/domain"
)

// BundleHandler maneja la definición de componentes de bundles (protegido).
type BundleHandler struct {
	uc *usecase.BundleUseCase
}

// NewBundleHandler construye el handler.
func NewBundleHandler(uc *usecase.BundleUseCase) *BundleHandler {
	return &BundleHandler{uc: uc}
}

// SetComponents godoc
// @Summary      Definir componentes de un bundle
// @Tags         bundles
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del producto bundle"
// @Param        body  body  dto.SetBundleRequest  true  "Componentes"
// @Success      200   {object}  dto.BundleResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/products/{id}/bundle [put]
func (h *BundleHandler) SetComponents(c *fiber.Ctx) error {
	bundleID := c.Params("id")
	if bundleID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	var in dto.SetBundleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.SetComponents(GetCompanyID(c), bundleID, in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "componentes inválidos: cantidad > 0 y sin auto-contención"})
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "bundle o componente no encontrados"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// GetComponents godoc
// @Summary      Componentes actuales de un bundle
// @Tags         bundles
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del producto bundle"
// @Success      200  {object}  dto.BundleResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id}/bundle [get]
func (h *BundleHandler) GetComponents(c *fiber.Ctx) error {
	bundleID := c.Params("id")
	if bundleID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	out, err := h.uc.GetComponents(GetCompanyID(c), bundleID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "bundle no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
