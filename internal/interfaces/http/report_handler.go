package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/performance-hub/internal/application/dto"
	"github.com/tu-usuario/performance-hub/internal/application/report"
	"github.com/tu-usuario/performance-hub/internal/domain"
)

const pptxContentType = "application/vnd.openxmlformats-officedocument.presentationml.presentation"

// ReportHandler maneja la descarga del deck .pptx y del scorecard PDF.
type ReportHandler struct {
	deckUC      *report.DeckUseCase
	scorecardUC *report.ScorecardUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(deckUC *report.DeckUseCase, scorecardUC *report.ScorecardUseCase) *ReportHandler {
	return &ReportHandler{deckUC: deckUC, scorecardUC: scorecardUC}
}

// GetDeck godoc
// @Summary      Generar el deck (una diapositiva) de un outlet para un periodo
// @Description  Gráfico de barras con los valores de KPI del par incrustado en un .pptx descargable.
// @Tags         reports
// @Security     BasicAuth
// @Produce      application/vnd.openxmlformats-officedocument.presentationml.presentation
// @Param        outlet_id  path  string  true  "ID del outlet"
// @Param        period_id  path  string  true  "ID del periodo"
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/deck/{outlet_id}/{period_id} [get]
func (h *ReportHandler) GetDeck(c *fiber.Ctx) error {
	outletID := c.Params("outlet_id")
	periodID := c.Params("period_id")

	deck, filename, err := h.deckUC.GenerateDeck(c.Context(), outletID, periodID)
	if err != nil {
		return reportError(c, err)
	}

	c.Set(fiber.HeaderContentType, pptxContentType)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(deck)
}

// GetScorecard godoc
// @Summary      Generar el scorecard PDF de un outlet para un periodo
// @Tags         reports
// @Security     BasicAuth
// @Produce      application/pdf
// @Param        outlet_id  path  string  true  "ID del outlet"
// @Param        period_id  path  string  true  "ID del periodo"
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/reports/{outlet_id}/{period_id}/pdf [get]
func (h *ReportHandler) GetScorecard(c *fiber.Ctx) error {
	outletID := c.Params("outlet_id")
	periodID := c.Params("period_id")

	pdfBytes, filename, err := h.scorecardUC.GenerateScorecard(c.Context(), outletID, periodID)
	if err != nil {
		return reportError(c, err)
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdfBytes)
}

// reportError mapea los errores de los generadores: las dos variantes de
// not found (periodo u outlet inexistente, par sin datos) responden 404;
// fallos de render o del store responden 500.
func reportError(c *fiber.Ctx, err error) error {
	if errors.Is(err, domain.ErrNoDeckData) {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "no hay datos para el deck"})
	}
	if errors.Is(err, domain.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "outlet o periodo no encontrado"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
