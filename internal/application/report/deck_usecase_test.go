package report_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/performance-hub/internal/application/report"
	"github.com/tu-usuario/performance-hub/internal/domain"
	"github.com/tu-usuario/performance-hub/internal/domain/entity"
	"github.com/tu-usuario/performance-hub/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes
// ──────────────────────────────────────────────────────────────────────────────

type fakePeriodRepo struct {
	periods map[string]*entity.Period
}

func (r *fakePeriodRepo) Create(*entity.Period) error { return nil }

func (r *fakePeriodRepo) GetByID(id string) (*entity.Period, error) {
	return r.periods[id], nil
}

func (r *fakePeriodRepo) List() ([]*entity.Period, error) { return nil, nil }

type fakeUpdateRepo struct {
	deck map[string][]repository.DeckRow // clave outletID|periodID
}

func (r *fakeUpdateRepo) Upsert(*entity.Update) error { return nil }

func (r *fakeUpdateRepo) ListByOutletAndKPI(_, _ string) ([]*entity.Update, error) {
	return nil, nil
}

func (r *fakeUpdateRepo) ListSeries(_ context.Context, _, _ string) ([]repository.SeriesPoint, error) {
	return nil, nil
}

func (r *fakeUpdateRepo) ListForDeck(_ context.Context, outletID, periodID string) ([]repository.DeckRow, error) {
	return r.deck[outletID+"|"+periodID], nil
}

// fakeRenderer registra lo que se le pidió dibujar.
type fakeRenderer struct {
	names  []string
	values []float64
	err    error
}

func (f *fakeRenderer) RenderBars(names []string, values []float64) ([]byte, error) {
	f.names, f.values = names, values
	if f.err != nil {
		return nil, f.err
	}
	return []byte("png-bytes"), nil
}

// fakeBuilder registra el título y la imagen recibidos.
type fakeBuilder struct {
	title string
	png   []byte
}

func (f *fakeBuilder) Build(title string, chartPNG []byte) ([]byte, error) {
	f.title, f.png = title, chartPNG
	return []byte("pptx-bytes"), nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestGenerateDeck_PeriodoInexistente(t *testing.T) {
	uc := report.NewDeckUseCase(
		&fakePeriodRepo{periods: map[string]*entity.Period{}},
		&fakeUpdateRepo{},
		&fakeRenderer{},
		&fakeBuilder{},
	)

	_, _, err := uc.GenerateDeck(context.Background(), "outlet-1", "periodo-fantasma")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGenerateDeck_SinUpdatesParaElPar(t *testing.T) {
	renderer := &fakeRenderer{}
	uc := report.NewDeckUseCase(
		&fakePeriodRepo{periods: map[string]*entity.Period{
			"p1": {ID: "p1", Month: 6, Year: 2024},
		}},
		&fakeUpdateRepo{deck: map[string][]repository.DeckRow{
			// Otro outlet sí tiene datos; el consultado no.
			"outlet-2|p1": {{KPIName: "Revenue", Value: decimal.NewFromInt(500)}},
		}},
		renderer,
		&fakeBuilder{},
	)

	_, _, err := uc.GenerateDeck(context.Background(), "outlet-1", "p1")
	assert.ErrorIs(t, err, domain.ErrNoDeckData,
		"periodo existente pero sin updates del outlet debe ser not found")
	assert.Nil(t, renderer.names, "no debe renderizarse nada si no hay datos")
}

func TestGenerateDeck_CaminoFeliz(t *testing.T) {
	renderer := &fakeRenderer{}
	builder := &fakeBuilder{}
	uc := report.NewDeckUseCase(
		&fakePeriodRepo{periods: map[string]*entity.Period{
			"p1": {ID: "p1", Month: 6, Year: 2024},
		}},
		&fakeUpdateRepo{deck: map[string][]repository.DeckRow{
			"outlet-1|p1": {
				{KPIName: "NPS", Value: decimal.NewFromInt(72)},
				{KPIName: "Revenue", Value: decimal.NewFromFloat(1000.0)},
			},
		}},
		renderer,
		builder,
	)

	deck, filename, err := uc.GenerateDeck(context.Background(), "outlet-1", "p1")
	require.NoError(t, err)

	assert.Equal(t, []byte("pptx-bytes"), deck)
	assert.Equal(t, "deck_outlet-1_2024-06.pptx", filename, "mes a dos dígitos en el nombre")

	// Secuencias paralelas en el orden del fetch.
	assert.Equal(t, []string{"NPS", "Revenue"}, renderer.names)
	assert.Equal(t, []float64{72, 1000}, renderer.values)

	assert.Equal(t, "Outlet outlet-1 2024-06", builder.title)
	assert.Equal(t, []byte("png-bytes"), builder.png, "el builder recibe el PNG del renderer")
}

func TestGenerateDeck_FalloDelRenderSePropaga(t *testing.T) {
	renderErr := errors.New("chart engine roto")
	uc := report.NewDeckUseCase(
		&fakePeriodRepo{periods: map[string]*entity.Period{
			"p1": {ID: "p1", Month: 1, Year: 2025},
		}},
		&fakeUpdateRepo{deck: map[string][]repository.DeckRow{
			"outlet-1|p1": {{KPIName: "Revenue", Value: decimal.NewFromInt(1)}},
		}},
		&fakeRenderer{err: renderErr},
		&fakeBuilder{},
	)

	_, _, err := uc.GenerateDeck(context.Background(), "outlet-1", "p1")
	assert.ErrorIs(t, err, renderErr)
	assert.NotErrorIs(t, err, domain.ErrNotFound)
}
