package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/performance-hub/internal/domain/entity"
)

// SeriesPoint fila cruda del join updates × periods para la serie temporal.
// La produce la DB; el use case la convierte en DTO con la etiqueta "YYYY-MM".
type SeriesPoint struct {
	Year  int
	Month int
	Value decimal.Decimal
	Note  *string
}

// DeckRow fila cruda del join updates × kpis para el deck y el scorecard.
type DeckRow struct {
	KPIName string
	Value   decimal.Decimal
	Note    *string
}

// UpdateRepository puerto de persistencia para Update.
// Upsert inserta o reemplaza el valor de la tripleta (outlet, period, kpi):
// la última escritura gana.
type UpdateRepository interface {
	Upsert(update *entity.Update) error
	// ListByOutletAndKPI devuelve los updates del par ordenados por period_id.
	ListByOutletAndKPI(outletID, kpiID string) ([]*entity.Update, error)
	// ListSeries devuelve la serie (outlet, kpi) unida con su periodo,
	// ordenada ascendente por (year, month). Vacía no es error.
	ListSeries(ctx context.Context, outletID, kpiID string) ([]SeriesPoint, error)
	// ListForDeck devuelve los valores de (outlet, period) unidos con el nombre
	// del KPI, ordenados por nombre de KPI para un render estable.
	ListForDeck(ctx context.Context, outletID, periodID string) ([]DeckRow, error)
}
