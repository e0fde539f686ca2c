package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/performance-hub/internal/application/dto"
	"github.com/tu-usuario/performance-hub/internal/application/usecase"
	"github.com/tu-usuario/performance-hub/internal/domain"
)

// OutletHandler maneja las peticiones HTTP para Outlet (protegido).
type OutletHandler struct {
	uc *usecase.OutletUseCase
}

// NewOutletHandler construye el handler.
func NewOutletHandler(uc *usecase.OutletUseCase) *OutletHandler {
	return &OutletHandler{uc: uc}
}

// Create godoc
// @Summary      Crear punto de venta
// @Tags         outlets
// @Security     BasicAuth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateOutletRequest  true  "name"
// @Success      201   {object}  dto.OutletResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/outlets [post]
func (h *OutletHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateOutletRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name es requerido"})
	}
	// El principal autenticado queda como manager del outlet.
	principal := GetPrincipal(c)
	if principal == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "se requiere autenticación"})
	}
	out, err := h.uc.Create(principal.ID, in)
	if err != nil {
		if err == domain.ErrDuplicate {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "el nombre de outlet ya existe"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar puntos de venta
// @Tags         outlets
// @Security     BasicAuth
// @Produce      json
// @Success      200  {array}  dto.OutletResponse
// @Router       /api/outlets [get]
func (h *OutletHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
