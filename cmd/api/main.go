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
	"github.com/prometheus/client_golang/prometheus"

	_ "github.com/jhoicas/rocketstore-api/docs"
	"github.com/jhoicas/rocketstore-api/internal/application/customers"
	"github.com/jhoicas/rocketstore-api/internal/infrastructure/geocoding"
	"github.com/jhoicas/rocketstore-api/internal/infrastructure/memory"
	"github.com/jhoicas/rocketstore-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/rocketstore-api/internal/interfaces/http"
	"github.com/jhoicas/rocketstore-api/internal/metrics"
	"github.com/jhoicas/rocketstore-api/pkg/config"
	"github.com/jhoicas/rocketstore-api/pkg/logger"
)

const swaggerFile = "./docs/swagger.json"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
		App:   cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("storage", cfg.DB.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()

	var txRunner customers.TxRunner
	switch cfg.DB.Driver {
	case config.StorageMemory:
		log.Warn().Msg("usando store in-memory: los datos no sobreviven al reinicio")
		txRunner = memory.NewStore()
	default:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()
		if cfg.DB.AutoMigrate {
			if err := postgres.EnsureSchema(ctx, pool); err != nil {
				log.Fatal().Err(err).Msg("esquema de base de datos")
			}
		}
		txRunner = postgres.NewTxRunner(pool)
	}

	if cfg.Geocoding.AccessKey == "" {
		log.Warn().Msg("GEOCODING_ACCESS_KEY vacío: GET /api/customers/:id fallará al geocodificar")
	}
	customerMetrics := metrics.NewCustomerMetrics(prometheus.DefaultRegisterer)
	geocoder := geocoding.NewPositionStackClient(
		cfg.Geocoding.BaseURL, cfg.Geocoding.AccessKey, cfg.Geocoding.Timeout, log,
		geocoding.WithObserver(customerMetrics),
	)
	customerUC := customers.NewCustomerUseCase(txRunner, geocoder, customerMetrics, log.Component("customers"))

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: cfg.Geocoding.Timeout + 5*time.Second,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	if _, err := os.Stat(swaggerFile); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: swaggerFile,
			Path:     "docs",
			Title:    "RocketStore API",
		}))
	}

	httpRouter.Router(app, httpRouter.RouterDeps{
		CustomerUC: customerUC,
		AppName:    cfg.App.Name,
		Gatherer:   prometheus.DefaultGatherer,
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
