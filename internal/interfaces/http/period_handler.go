package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/performance-hub/internal/application/dto"
	"github.com/tu-usuario/performance-hub/internal/application/usecase"
	"github.com/tu-usuario/performance-hub/internal/domain"
)

// PeriodHandler maneja las peticiones HTTP para Period (protegido).
type PeriodHandler struct {
	uc *usecase.PeriodUseCase
}

// NewPeriodHandler construye el handler.
func NewPeriodHandler(uc *usecase.PeriodUseCase) *PeriodHandler {
	return &PeriodHandler{uc: uc}
}

// Create godoc
// @Summary      Crear periodo
// @Tags         periods
// @Security     BasicAuth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreatePeriodRequest  true  "month (1-12), year"
// @Success      201   {object}  dto.PeriodResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/periods [post]
func (h *PeriodHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePeriodRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "month debe estar entre 1 y 12"})
		}
		if err == domain.ErrDuplicate {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "el periodo (month, year) ya existe"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar periodos ordenados por (year, month)
// @Tags         periods
// @Security     BasicAuth
// @Produce      json
// @Success      200  {array}  dto.PeriodResponse
// @Router       /api/periods [get]
func (h *PeriodHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
