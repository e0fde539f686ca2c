package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/performance-hub/internal/application/dto"
	"github.com/tu-usuario/performance-hub/internal/application/metrics"
)

// MetricsHandler expone la serie temporal de un KPI para un outlet.
type MetricsHandler struct {
	uc *metrics.SeriesUseCase
}

// NewMetricsHandler construye el handler.
func NewMetricsHandler(uc *metrics.SeriesUseCase) *MetricsHandler {
	return &MetricsHandler{uc: uc}
}

// GetSeries godoc
// @Summary      Serie cronológica de un KPI para un outlet
// @Description  Join updates × periods ordenado por (year, month); la etiqueta de periodo va como "YYYY-MM". Una serie vacía responde 200 con lista vacía.
// @Tags         metrics
// @Security     BasicAuth
// @Produce      json
// @Param        outlet_id  path  string  true  "ID del outlet"
// @Param        kpi_id     path  string  true  "ID del KPI"
// @Success      200  {array}  dto.SeriesPointResponse
// @Router       /api/metrics/{outlet_id}/{kpi_id} [get]
func (h *MetricsHandler) GetSeries(c *fiber.Ctx) error {
	outletID := c.Params("outlet_id")
	kpiID := c.Params("kpi_id")
	out, err := h.uc.GetSeries(c.Context(), outletID, kpiID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
