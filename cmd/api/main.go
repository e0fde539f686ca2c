package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/tu-usuario/performance-hub/internal/application/auth"
	"github.com/tu-usuario/performance-hub/internal/application/metrics"
	"github.com/tu-usuario/performance-hub/internal/application/report"
	"github.com/tu-usuario/performance-hub/internal/application/usecase"
	infrachart "github.com/tu-usuario/performance-hub/internal/infrastructure/chart"
	infrapdf "github.com/tu-usuario/performance-hub/internal/infrastructure/pdf"
	"github.com/tu-usuario/performance-hub/internal/infrastructure/postgres"
	infrapptx "github.com/tu-usuario/performance-hub/internal/infrastructure/pptx"
	httpRouter "github.com/tu-usuario/performance-hub/internal/interfaces/http"
	"github.com/tu-usuario/performance-hub/pkg/config"
	"github.com/tu-usuario/performance-hub/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.Migrate(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("migración del esquema")
	}

	userRepo := postgres.NewUserRepository(pool)
	outletRepo := postgres.NewOutletRepository(pool)
	periodRepo := postgres.NewPeriodRepository(pool)
	kpiRepo := postgres.NewKPIRepository(pool)
	updateRepo := postgres.NewUpdateRepository(pool)
	feedbackRepo := postgres.NewFeedbackRepository(pool)
	fileRepo := postgres.NewFileRepository(pool)

	authUC := auth.NewAuthUseCase(userRepo)
	outletUC := usecase.NewOutletUseCase(outletRepo)
	periodUC := usecase.NewPeriodUseCase(periodRepo)
	kpiUC := usecase.NewKPIUseCase(kpiRepo)
	updateUC := usecase.NewUpdateUseCase(updateRepo)
	feedbackUC := usecase.NewFeedbackUseCase(feedbackRepo)
	fileUC := usecase.NewFileUseCase(fileRepo)
	seriesUC := metrics.NewSeriesUseCase(updateRepo)

	// Deck PPTX: gráfica de barras + diapositiva única, todo en memoria.
	barRenderer := infrachart.NewBarRenderer()
	deckBuilder := infrapptx.NewGenerator()
	deckUC := report.NewDeckUseCase(periodRepo, updateRepo, barRenderer, deckBuilder)

	// Scorecard PDF con los mismos datos del deck.
	scorecardGen := infrapdf.NewMarotoScorecardGenerator()
	scorecardUC := report.NewScorecardUseCase(outletRepo, periodRepo, updateRepo, scorecardGen)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Performance Hub API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		OutletUC:    outletUC,
		PeriodUC:    periodUC,
		KPIUC:       kpiUC,
		UpdateUC:    updateUC,
		FeedbackUC:  feedbackUC,
		FileUC:      fileUC,
		SeriesUC:    seriesUC,
		DeckUC:      deckUC,
		ScorecardUC: scorecardUC,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
