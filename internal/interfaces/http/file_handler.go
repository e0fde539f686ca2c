package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/performance-hub/internal/application/dto"
	"github.com/tu-usuario/performance-hub/internal/application/usecase"
	"github.com/tu-usuario/performance-hub/internal/domain"
)

// FileHandler maneja las peticiones HTTP para metadatos de adjuntos (protegido).
type FileHandler struct {
	uc *usecase.FileUseCase
}

// NewFileHandler construye el handler.
func NewFileHandler(uc *usecase.FileUseCase) *FileHandler {
	return &FileHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar adjunto para un outlet en un periodo
// @Tags         files
// @Security     BasicAuth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateFileRequest  true  "outlet_id, period_id, path"
// @Success      201   {object}  dto.FileResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/files [post]
func (h *FileHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateFileRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.OutletID == "" || in.PeriodID == "" || in.Path == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "outlet_id, period_id y path son requeridos"})
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
// @Summary      Listar adjuntos de un outlet en un periodo
// @Tags         files
// @Security     BasicAuth
// @Produce      json
// @Param        outlet_id  path  string  true  "ID del outlet"
// @Param        period_id  path  string  true  "ID del periodo"
// @Success      200  {array}  dto.FileResponse
// @Router       /api/files/{outlet_id}/{period_id} [get]
func (h *FileHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.ListByOutletAndPeriod(c.Params("outlet_id"), c.Params("period_id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
