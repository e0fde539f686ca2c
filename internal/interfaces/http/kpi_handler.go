package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/performance-hub/internal/application/dto"
	"github.com/tu-usuario/performance-hub/internal/application/usecase"
	"github.com/tu-usuario/performance-hub/internal/domain"
)

// KPIHandler maneja las peticiones HTTP para KPI (protegido).
type KPIHandler struct {
	uc *usecase.KPIUseCase
}

// NewKPIHandler construye el handler.
func NewKPIHandler(uc *usecase.KPIUseCase) *KPIHandler {
	return &KPIHandler{uc: uc}
}

// Create godoc
// @Summary      Crear KPI
// @Tags         kpis
// @Security     BasicAuth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateKPIRequest  true  "name"
// @Success      201   {object}  dto.KPIResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/kpis [post]
func (h *KPIHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateKPIRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name es requerido"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		if err == domain.ErrDuplicate {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "el nombre de KPI ya existe"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar KPIs
// @Tags         kpis
// @Security     BasicAuth
// @Produce      json
// @Success      200  {array}  dto.KPIResponse
// @Router       /api/kpis [get]
func (h *KPIHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
