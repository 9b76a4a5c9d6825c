package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jhoicas/despensa-api/internal/application/ports"
	"github.com/jhoicas/despensa-api/internal/application/usecase"
	"github.com/jhoicas/despensa-api/internal/domain/repository"
	infraai "github.com/jhoicas/despensa-api/internal/infrastructure/ai"
	"github.com/jhoicas/despensa-api/internal/infrastructure/excel"
	"github.com/jhoicas/despensa-api/internal/infrastructure/memory"
	"github.com/jhoicas/despensa-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/despensa-api/internal/interfaces/http"
	"github.com/jhoicas/despensa-api/migrations"
	"github.com/jhoicas/despensa-api/pkg/config"
	"github.com/jhoicas/despensa-api/pkg/logger"
)

// runMigrations aplica las migraciones goose incrustadas usando el driver
// database/sql de pgx.
func runMigrations(dsn string) error {
	sqlDB, err := goose.OpenDBWithDriver("pgx", dsn)
	if err != nil {
		return err
	}
	defer func() { _ = sqlDB.Close() }()
	goose.SetBaseFS(migrations.FS)
	return goose.Up(sqlDB, ".")
}

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

	// Persistencia: PostgreSQL por defecto; "memory" para correr sin base
	// de datos (los datos se pierden al apagar).
	var foodRepo repository.FoodRepository
	var supplyRepo repository.SupplyRepository
	if cfg.DB.Driver == "memory" {
		log.Warn().Msg("persistencia en memoria: los datos no sobreviven al proceso")
		foodRepo = memory.NewFoodRepository()
		supplyRepo = memory.NewSupplyRepository()
	} else {
		if err := runMigrations(cfg.DB.ConnectionString()); err != nil {
			log.Fatal().Err(err).Msg("migraciones")
		}
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()
		foodRepo = postgres.NewFoodRepository(pool)
		supplyRepo = postgres.NewSupplyRepository(pool)
	}

	// Motor de recetas: el modo se decide una sola vez aquí. Sin credencial
	// se usa la plantilla determinista; con credencial, la API de Anthropic.
	var recipeGen ports.RecipeGenerator
	if cfg.AI.AnthropicAPIKey == "" {
		recipeGen = infraai.NewMockGenerator()
	} else {
		recipeGen = infraai.NewAnthropicGenerator(cfg.AI.AnthropicAPIKey, cfg.AI.AnthropicModel)
	}
	log.Info().Str("mode", recipeGen.Mode()).Msg("motor de recetas configurado")

	foodUC := usecase.NewFoodUseCase(foodRepo)
	supplyUC := usecase.NewSupplyUseCase(supplyRepo)
	dashboardUC := usecase.NewDashboardUseCase(foodRepo, supplyRepo)
	recipeUC := usecase.NewRecipeUseCase(foodRepo, recipeGen)
	exportUC := usecase.NewExportUseCase(foodRepo, supplyRepo, excel.NewExporter())

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORS.AllowedOrigins,
		AllowCredentials: true,
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
	}))
	app.Use(httpRouter.RequestLogger(log))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Despensa API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})
	if cfg.Metrics.Enabled {
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
	}

	httpRouter.Router(app, httpRouter.RouterDeps{
		FoodUC:      foodUC,
		SupplyUC:    supplyUC,
		DashboardUC: dashboardUC,
		RecipeUC:    recipeUC,
		ExportUC:    exportUC,
		Validator:   httpRouter.NewValidator(),
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
