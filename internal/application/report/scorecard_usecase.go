package report

import (
	"context"
	"fmt"

	"github.com/tu-usuario/performance-hub/internal/domain"
	"github.com/tu-usuario/performance-hub/internal/domain/repository"
)

// ScorecardUseCase genera el scorecard PDF de un outlet en un periodo:
// la misma consulta que alimenta el deck, en formato tabular descargable.
type ScorecardUseCase struct {
	outletRepo repository.OutletRepository
	periodRepo repository.PeriodRepository
	updateRepo repository.UpdateRepository
	generator  ScorecardGenerator
}

// NewScorecardUseCase construye el caso de uso.
func NewScorecardUseCase(
	outletRepo repository.OutletRepository,
	periodRepo repository.PeriodRepository,
	updateRepo repository.UpdateRepository,
	generator ScorecardGenerator,
) *ScorecardUseCase {
	return &ScorecardUseCase{
		outletRepo: outletRepo,
		periodRepo: periodRepo,
		updateRepo: updateRepo,
		generator:  generator,
	}
}

// GenerateScorecard produce el PDF y su nombre de descarga. Mismas reglas de
// NotFound que el deck: periodo inexistente o par sin datos cortan antes del render.
func (uc *ScorecardUseCase) GenerateScorecard(ctx context.Context, outletID, periodID string) (pdfBytes []byte, filename string, err error) {
	outlet, err := uc.outletRepo.GetByID(outletID)
	if err != nil {
		return nil, "", fmt.Errorf("scorecard: obtener outlet: %w", err)
	}
	if outlet == nil {
		return nil, "", domain.ErrNotFound
	}

	period, err := uc.periodRepo.GetByID(periodID)
	if err != nil {
		return nil, "", fmt.Errorf("scorecard: obtener periodo: %w", err)
	}
	if period == nil {
		return nil, "", domain.ErrNotFound
	}

	rows, err := uc.updateRepo.ListForDeck(ctx, outletID, periodID)
	if err != nil {
		return nil, "", fmt.Errorf("scorecard: consultar updates: %w", err)
	}
	if len(rows) == 0 {
		return nil, "", domain.ErrNoDeckData
	}

	title := fmt.Sprintf("Outlet %s %s", outletID, period.Label())
	pdfBytes, err = uc.generator.Generate(ctx, title, outlet.Name, rows)
	if err != nil {
		return nil, "", fmt.Errorf("scorecard: generación fallida: %w", err)
	}

	filename = fmt.Sprintf("scorecard_%s_%s.pdf", outletID, period.Label())
	return pdfBytes, filename, nil
}
