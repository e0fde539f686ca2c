package http_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/performance-hub/internal/application/report"
	"github.com/tu-usuario/performance-hub/internal/domain/entity"
	"github.com/tu-usuario/performance-hub/internal/domain/repository"
	apphttp "github.com/tu-usuario/performance-hub/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes
// ──────────────────────────────────────────────────────────────────────────────

type fakeOutletRepo struct {
	outlets map[string]*entity.Outlet
}

func (f *fakeOutletRepo) Create(outlet *entity.Outlet) error { return nil }
func (f *fakeOutletRepo) GetByID(id string) (*entity.Outlet, error) {
	return f.outlets[id], nil
}
func (f *fakeOutletRepo) List() ([]*entity.Outlet, error) { return nil, nil }

type fakePeriodRepo struct {
	periods map[string]*entity.Period
}

func (f *fakePeriodRepo) Create(period *entity.Period) error { return nil }
func (f *fakePeriodRepo) GetByID(id string) (*entity.Period, error) {
	return f.periods[id], nil
}
func (f *fakePeriodRepo) List() ([]*entity.Period, error) { return nil, nil }

type fakeUpdateRepo struct {
	rows []repository.DeckRow
}

func (f *fakeUpdateRepo) Upsert(update *entity.Update) error { return nil }
func (f *fakeUpdateRepo) ListByOutletAndKPI(outletID, kpiID string) ([]*entity.Update, error) {
	return nil, nil
}
func (f *fakeUpdateRepo) ListSeries(ctx context.Context, outletID, kpiID string) ([]repository.SeriesPoint, error) {
	return nil, nil
}
func (f *fakeUpdateRepo) ListForDeck(ctx context.Context, outletID, periodID string) ([]repository.DeckRow, error) {
	return f.rows, nil
}

type fakeRenderer struct{}

func (f *fakeRenderer) RenderBars(names []string, values []float64) ([]byte, error) {
	return []byte("png"), nil
}

type fakeBuilder struct{}

func (f *fakeBuilder) Build(title string, chartPNG []byte) ([]byte, error) {
	return []byte("pptx"), nil
}

type fakeScorecardGen struct{}

func (f *fakeScorecardGen) Generate(ctx context.Context, title, outletName string, rows []repository.DeckRow) ([]byte, error) {
	return []byte("pdf"), nil
}

func buildReportApp(outletRepo *fakeOutletRepo, periodRepo *fakePeriodRepo, updateRepo *fakeUpdateRepo) *fiber.App {
	deckUC := report.NewDeckUseCase(periodRepo, updateRepo, &fakeRenderer{}, &fakeBuilder{})
	scorecardUC := report.NewScorecardUseCase(outletRepo, periodRepo, updateRepo, &fakeScorecardGen{})
	handler := apphttp.NewReportHandler(deckUC, scorecardUC)

	app := fiber.New()
	app.Get("/deck/:outlet_id/:period_id", handler.GetDeck)
	app.Get("/reports/:outlet_id/:period_id/pdf", handler.GetScorecard)
	return app
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestGetScorecard_OutletInexistente_Retorna404(t *testing.T) {
	app := buildReportApp(
		&fakeOutletRepo{outlets: map[string]*entity.Outlet{}},
		&fakePeriodRepo{periods: map[string]*entity.Period{"p1": {ID: "p1", Month: 6, Year: 2024}}},
		&fakeUpdateRepo{rows: []repository.DeckRow{{KPIName: "NPS", Value: decimal.NewFromInt(72)}}},
	)

	req := httptest.NewRequest(http.MethodGet, "/reports/no-existe/p1/pdf", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	// El mensaje no debe culpar al periodo cuando el que falta es el outlet.
	assert.Contains(t, string(body), "outlet o periodo no encontrado")
}

func TestGetDeck_PeriodoInexistente_Retorna404(t *testing.T) {
	app := buildReportApp(
		&fakeOutletRepo{outlets: map[string]*entity.Outlet{"o1": {ID: "o1", Name: "Centro"}}},
		&fakePeriodRepo{periods: map[string]*entity.Period{}},
		&fakeUpdateRepo{},
	)

	req := httptest.NewRequest(http.MethodGet, "/deck/o1/no-existe", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "NOT_FOUND")
}

func TestGetDeck_ParSinDatos_Retorna404(t *testing.T) {
	app := buildReportApp(
		&fakeOutletRepo{outlets: map[string]*entity.Outlet{"o1": {ID: "o1", Name: "Centro"}}},
		&fakePeriodRepo{periods: map[string]*entity.Period{"p1": {ID: "p1", Month: 6, Year: 2024}}},
		&fakeUpdateRepo{rows: nil},
	)

	req := httptest.NewRequest(http.MethodGet, "/deck/o1/p1", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "no hay datos para el deck")
}

func TestGetDeck_Descarga(t *testing.T) {
	app := buildReportApp(
		&fakeOutletRepo{outlets: map[string]*entity.Outlet{"o1": {ID: "o1", Name: "Centro"}}},
		&fakePeriodRepo{periods: map[string]*entity.Period{"p1": {ID: "p1", Month: 6, Year: 2024}}},
		&fakeUpdateRepo{rows: []repository.DeckRow{{KPIName: "Revenue", Value: decimal.NewFromInt(1000)}}},
	)

	req := httptest.NewRequest(http.MethodGet, "/deck/o1/p1", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get(fiber.HeaderContentDisposition), `deck_o1_2024-06.pptx`)
	assert.Contains(t, resp.Header.Get(fiber.HeaderContentType), "presentationml")
}
