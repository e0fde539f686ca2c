package metrics

import (
	"context"
	"fmt"

	"github.com/tu-usuario/performance-hub/internal/application/dto"
	"github.com/tu-usuario/performance-hub/internal/domain/repository"
)

// SeriesUseCase agrega la serie temporal de un KPI para un outlet:
// join updates × periods ordenado por (year, month), proyectado a la
// etiqueta "YYYY-MM". Se materializa por llamada, sin caché.
type SeriesUseCase struct {
	updateRepo repository.UpdateRepository
}

// NewSeriesUseCase construye el agregador.
func NewSeriesUseCase(updateRepo repository.UpdateRepository) *SeriesUseCase {
	return &SeriesUseCase{updateRepo: updateRepo}
}

// GetSeries devuelve la serie cronológica del par (outlet, kpi). Una serie
// vacía es un resultado válido, no un error.
func (uc *SeriesUseCase) GetSeries(ctx context.Context, outletID, kpiID string) ([]dto.SeriesPointResponse, error) {
	points, err := uc.updateRepo.ListSeries(ctx, outletID, kpiID)
	if err != nil {
		return nil, fmt.Errorf("metrics: consultar serie: %w", err)
	}
	out := make([]dto.SeriesPointResponse, 0, len(points))
	for _, p := range points {
		out = append(out, dto.SeriesPointResponse{
			Period: fmt.Sprintf("%d-%02d", p.Year, p.Month),
			Value:  p.Value,
			Note:   p.Note,
		})
	}
	return out, nil
}
