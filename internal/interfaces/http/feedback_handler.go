package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/performance-hub/internal/application/dto"
	"github.com/tu-usuario/performance-hub/internal/application/usecase"
	"github.com/tu-usuario/performance-hub/internal/domain"
)

// FeedbackHandler maneja las peticiones HTTP para Feedback (protegido).
type FeedbackHandler struct {
	uc *usecase.FeedbackUseCase
}

// NewFeedbackHandler construye el handler.
func NewFeedbackHandler(uc *usecase.FeedbackUseCase) *FeedbackHandler {
	return &FeedbackHandler{uc: uc}
}

// Create godoc
// @Summary      Crear feedback para un outlet en un periodo
// @Tags         feedback
// @Security     BasicAuth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateFeedbackRequest  true  "outlet_id, period_id, text"
// @Success      201   {object}  dto.FeedbackResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/feedback [post]
func (h *FeedbackHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateFeedbackRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.OutletID == "" || in.PeriodID == "" || in.Text == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "outlet_id, period_id y text son requeridos"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "outlet o periodo no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar feedback de un outlet ordenado por period_id
// @Tags         feedback
// @Security     BasicAuth
// @Produce      json
// @Param        outlet_id  path  string  true  "ID del outlet"
// @Success      200  {array}  dto.FeedbackResponse
// @Router       /api/feedback/{outlet_id} [get]
func (h *FeedbackHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.ListByOutlet(c.Params("outlet_id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
