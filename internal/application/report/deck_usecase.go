package report

import (
	"context"
	"fmt"

	"github.com/tu-usuario/performance-hub/internal/domain"
	"github.com/tu-usuario/performance-hub/internal/domain/repository"
)

// DeckUseCase genera el deck de una diapositiva con el gráfico de barras de los
// KPIs de un outlet en un periodo. Todo el render ocurre en memoria: no quedan
// artefactos temporales en disco en ningún camino de salida.
type DeckUseCase struct {
	periodRepo repository.PeriodRepository
	updateRepo repository.UpdateRepository
	renderer   ChartRenderer
	builder    DeckBuilder
}

// NewDeckUseCase construye el caso de uso inyectando sus dependencias.
func NewDeckUseCase(
	periodRepo repository.PeriodRepository,
	updateRepo repository.UpdateRepository,
	renderer ChartRenderer,
	builder DeckBuilder,
) *DeckUseCase {
	return &DeckUseCase{
		periodRepo: periodRepo,
		updateRepo: updateRepo,
		renderer:   renderer,
		builder:    builder,
	}
}

// GenerateDeck produce el .pptx y su nombre de descarga.
//
// Retorna:
//   - (deckBytes, filename, nil)  si todo sale bien.
//   - domain.ErrNotFound          si el periodo no existe o no hay updates
//     para (outlet, period); en ambos casos se corta antes de renderizar.
//   - error envuelto               si falla el gráfico o el armado del documento.
func (uc *DeckUseCase) GenerateDeck(ctx context.Context, outletID, periodID string) (deckBytes []byte, filename string, err error) {
	// ── 1. Resolver periodo ───────────────────────────────────────────────────
	period, err := uc.periodRepo.GetByID(periodID)
	if err != nil {
		return nil, "", fmt.Errorf("deck: obtener periodo: %w", err)
	}
	if period == nil {
		return nil, "", domain.ErrNotFound
	}

	// ── 2. Valores del par (outlet, period), join con nombre de KPI ───────────
	rows, err := uc.updateRepo.ListForDeck(ctx, outletID, periodID)
	if err != nil {
		return nil, "", fmt.Errorf("deck: consultar updates: %w", err)
	}
	if len(rows) == 0 {
		// Un deck sin datos no se genera.
		return nil, "", domain.ErrNoDeckData
	}

	// ── 3. Secuencias paralelas nombre/valor en el orden del fetch ────────────
	names := make([]string, 0, len(rows))
	values := make([]float64, 0, len(rows))
	for _, r := range rows {
		names = append(names, r.KPIName)
		values = append(values, r.Value.InexactFloat64())
	}

	// ── 4. Gráfico de barras en memoria ───────────────────────────────────────
	chartPNG, err := uc.renderer.RenderBars(names, values)
	if err != nil {
		return nil, "", fmt.Errorf("deck: renderizar gráfico: %w", err)
	}

	// ── 5. Documento de una diapositiva ───────────────────────────────────────
	title := fmt.Sprintf("Outlet %s %d-%02d", outletID, period.Year, period.Month)
	deckBytes, err = uc.builder.Build(title, chartPNG)
	if err != nil {
		return nil, "", fmt.Errorf("deck: armar documento: %w", err)
	}

	filename = fmt.Sprintf("deck_%s_%d-%02d.pptx", outletID, period.Year, period.Month)
	return deckBytes, filename, nil
}
