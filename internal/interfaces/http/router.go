package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/performance-hub/internal/application/auth"
	"github.com/tu-usuario/performance-hub/internal/application/metrics"
	"github.com/tu-usuario/performance-hub/internal/application/report"
	"github.com/tu-usuario/performance-hub/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	OutletUC    *usecase.OutletUseCase
	PeriodUC    *usecase.PeriodUseCase
	KPIUC       *usecase.KPIUseCase
	UpdateUC    *usecase.UpdateUseCase
	FeedbackUC  *usecase.FeedbackUseCase
	FileUC      *usecase.FileUseCase
	SeriesUC    *metrics.SeriesUseCase
	DeckUC      *report.DeckUseCase
	ScorecardUC *report.ScorecardUseCase
}

// Router registra las rutas de la API. Toda la API va con Basic Auth;
// el alta de usuarios exige además rol admin.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api", BasicAuthMiddleware(deps.AuthUC))

	// Users (solo admin)
	userHandler := NewUserHandler(deps.AuthUC)
	api.Post("/users", RequireAdmin(), userHandler.Create)

	// Outlets
	outlets := api.Group("/outlets")
	outletHandler := NewOutletHandler(deps.OutletUC)
	outlets.Get("/", outletHandler.List)
	outlets.Post("/", outletHandler.Create)

	// Periods
	periods := api.Group("/periods")
	periodHandler := NewPeriodHandler(deps.PeriodUC)
	periods.Post("/", periodHandler.Create)
	periods.Get("/", periodHandler.List)

	// KPIs
	kpis := api.Group("/kpis")
	kpiHandler := NewKPIHandler(deps.KPIUC)
	kpis.Post("/", kpiHandler.Create)
	kpis.Get("/", kpiHandler.List)

	// Updates
	updateHandler := NewUpdateHandler(deps.UpdateUC)
	api.Post("/updates", updateHandler.Create)
	api.Get("/updates/:outlet_id/:kpi_id", updateHandler.List)

	// Metrics (serie temporal)
	metricsHandler := NewMetricsHandler(deps.SeriesUC)
	api.Get("/metrics/:outlet_id/:kpi_id", metricsHandler.GetSeries)

	// Feedback
	feedbackHandler := NewFeedbackHandler(deps.FeedbackUC)
	api.Post("/feedback", feedbackHandler.Create)
	api.Get("/feedback/:outlet_id", feedbackHandler.List)

	// Files
	fileHandler := NewFileHandler(deps.FileUC)
	api.Post("/files", fileHandler.Create)
	api.Get("/files/:outlet_id/:period_id", fileHandler.List)

	// Reports: deck .pptx y scorecard PDF
	reportHandler := NewReportHandler(deps.DeckUC, deps.ScorecardUC)
	api.Get("/deck/:outlet_id/:period_id", reportHandler.GetDeck)
	api.Get("/reports/:outlet_id/:period_id/pdf", reportHandler.GetScorecard)
}
