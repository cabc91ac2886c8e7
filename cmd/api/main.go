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

	appanalytics "github.com/jhoicas/Rrhh-api/internal/application/analytics"
	"github.com/jhoicas/Rrhh-api/internal/application/auth"
	"github.com/jhoicas/Rrhh-api/internal/application/directory"
	appscope "github.com/jhoicas/Rrhh-api/internal/application/scope"
	"github.com/jhoicas/Rrhh-api/internal/application/usecase"
	domainscope "github.com/jhoicas/Rrhh-api/internal/domain/scope"
	"github.com/jhoicas/Rrhh-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/Rrhh-api/internal/interfaces/http"
	"github.com/jhoicas/Rrhh-api/pkg/config"
	"github.com/jhoicas/Rrhh-api/pkg/logger"
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

	userRepo := postgres.NewUserRepository(pool)
	employeeRepo := postgres.NewEmployeeRepository(pool)
	positionRepo := postgres.NewPositionRepository(pool)
	analyticsRepo := postgres.NewAnalyticsRepository(pool)

	// Resolutor de alcance: el único punto que decide visibilidad. Dashboard,
	// menú, directorio y reportes consumen su predicado, nunca lo re-derivan.
	scopeSvc := appscope.NewService(appscope.Deps{
		Users:     userRepo,
		Employees: employeeRepo,
		Positions: positionRepo,
		Resolver:  domainscope.Resolver{SuperAdminEmail: cfg.Scope.SuperAdminEmail},
		CacheTTL:  time.Duration(cfg.Scope.CacheTTLSeconds) * time.Second,
		Log:       log,
	})

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	employeeUC := directory.NewEmployeeUseCase(employeeRepo, scopeSvc)
	dashboardUC := appanalytics.NewDashboardUseCase(analyticsRepo)
	menuSvc := usecase.NewMenuService()

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Rrhh API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		EmployeeUC:  employeeUC,
		DashboardUC: dashboardUC,
		MenuService: menuSvc,
		ScopeSvc:    scopeSvc,
		JWTSecret:   cfg.JWT.Secret,
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
