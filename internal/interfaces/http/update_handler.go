package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/performance-hub/internal/application/dto"
	"github.com/tu-usuario/performance-hub/internal/application/usecase"
	"github.com/tu-usuario/performance-hub/internal/domain"
)

// UpdateHandler maneja las peticiones HTTP para Update (protegido).
type UpdateHandler struct {
	uc *usecase.UpdateUseCase
}

// NewUpdateHandler construye el handler.
func NewUpdateHandler(uc *usecase.UpdateUseCase) *UpdateHandler {
	return &UpdateHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar valor de KPI (upsert sobre la tripleta outlet/period/kpi)
// @Tags         updates
// @Security     BasicAuth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateUpdateRequest  true  "outlet_id, period_id, kpi_id, value, note?"
// @Success      201   {object}  dto.UpdateResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/updates [post]
func (h *UpdateHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateUpdateRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.OutletID == "" || in.PeriodID == "" || in.KPIID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "outlet_id, period_id y kpi_id son requeridos"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "outlet, periodo o KPI no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar updates de un outlet y KPI, ordenados por period_id
// @Tags         updates
// @Security     BasicAuth
// @Produce      json
// @Param        outlet_id  path  string  true  "ID del outlet"
// @Param        kpi_id     path  string  true  "ID del KPI"
// @Success      200  {array}  dto.UpdateResponse
// @Router       /api/updates/{outlet_id}/{kpi_id} [get]
func (h *UpdateHandler) List(c *fiber.Ctx) error {
	outletID := c.Params("outlet_id")
	kpiID := c.Params("kpi_id")
	out, err := h.uc.ListByOutletAndKPI(outletID, kpiID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
