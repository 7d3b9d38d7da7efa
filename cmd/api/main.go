package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jhoicas/personal-api/internal/application/auth"
	"github.com/jhoicas/personal-api/internal/application/identity"
	"github.com/jhoicas/personal-api/internal/infrastructure/geocode"
	"github.com/jhoicas/personal-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/personal-api/internal/interfaces/http"
	"github.com/jhoicas/personal-api/pkg/config"
	"github.com/jhoicas/personal-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   "info",
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	identityRepo := postgres.NewIdentityRepository(pool)
	employmentRepo := postgres.NewEmploymentRepository(pool)
	assignmentRepo := postgres.NewRoleAssignmentRepository(pool)
	storeRepo := postgres.NewStoreRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	validator := identity.NewUniquenessValidator(identityRepo)

	// Validador de direcciones externo: consultivo, deshabilitado sin BaseURL.
	var geocoder identity.AddressNormalizer
	if cfg.Geo.BaseURL != "" {
		geocoder = geocode.NewClient(cfg.Geo.BaseURL, time.Duration(cfg.Geo.TimeoutMS)*time.Millisecond)
	}

	customerUC := identity.NewCustomerUseCase(identityRepo, validator, geocoder)
	employeeUC := identity.NewEmployeeUseCase(txRunner, identityRepo, employmentRepo, assignmentRepo, storeRepo, validator, geocoder)
	statusUC := identity.NewStatusUseCase(txRunner, identityRepo, employmentRepo)
	queryUC := identity.NewQueryUseCase(identityRepo, employmentRepo, assignmentRepo, storeRepo)
	authUC := auth.NewAuthUseCase(identityRepo, assignmentRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		CustomerUC: customerUC,
		EmployeeUC: employeeUC,
		StatusUC:   statusUC,
		QueryUC:    queryUC,
		AuthUC:     authUC,
		JWTSecret:  cfg.JWT.Secret,
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
