// seed puebla los datos paramétricos mínimos: tiendas, roles y la identidad
// administradora inicial. Idempotente: los inserts paramétricos usan ON CONFLICT
// DO NOTHING y el alta del admin se omite si el email ya existe.
//
// Uso: go run ./cmd/seed
// Variables: las mismas de la API más SEED_ADMIN_EMAIL y SEED_ADMIN_PASSWORD.
package main

import (
	"context"
	"os"

	"github.com/google/uuid"
	"github.com/jhoicas/personal-api/internal/application/dto"
	"github.com/jhoicas/personal-api/internal/application/identity"
	"github.com/jhoicas/personal-api/internal/domain/entity"
	"github.com/jhoicas/personal-api/internal/infrastructure/postgres"
	"github.com/jhoicas/personal-api/pkg/config"
	"github.com/jhoicas/personal-api/pkg/logger"
	"github.com/shopspring/decimal"
)

var stores = []entity.Store{
	{Code: "CHE999", Name: "Tienda Chetumal Centro"},
	{Code: "CUN001", Name: "Tienda Cancún Norte"},
	{Code: "MID001", Name: "Tienda Mérida Itzimná"},
}

var roles = []string{"ADMIN", "MANAGER_BRANCH", "HR", "SELLER"}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info", Service: cfg.App.Name + "-seed"})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	storeRepo := postgres.NewStoreRepository(pool)
	roleRepo := postgres.NewRoleRepository(pool)
	identityRepo := postgres.NewIdentityRepository(pool)
	employmentRepo := postgres.NewEmploymentRepository(pool)
	assignmentRepo := postgres.NewRoleAssignmentRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	for i := range stores {
		stores[i].ID = uuid.New().String()
		if err := storeRepo.Create(ctx, &stores[i]); err != nil {
			log.Fatal().Err(err).Str("code", stores[i].Code).Msg("seed tienda")
		}
	}
	log.Info().Int("stores", len(stores)).Msg("tiendas sembradas")

	for _, name := range roles {
		if err := roleRepo.Create(ctx, &entity.Role{ID: uuid.New().String(), Name: name}); err != nil {
			log.Fatal().Err(err).Str("role", name).Msg("seed rol")
		}
	}
	log.Info().Int("roles", len(roles)).Msg("roles sembrados")

	adminEmail := envOr("SEED_ADMIN_EMAIL", "admin@personal.local")
	adminPassword := envOr("SEED_ADMIN_PASSWORD", "")
	if adminPassword == "" {
		log.Info().Msg("SEED_ADMIN_PASSWORD vacío, se omite el admin inicial")
		return
	}

	existing, err := identityRepo.GetByEmail(ctx, adminEmail)
	if err != nil {
		log.Fatal().Err(err).Msg("verificar admin existente")
	}
	if existing != nil {
		log.Info().Str("email", adminEmail).Msg("el admin ya existe, nada que hacer")
		return
	}

	validator := identity.NewUniquenessValidator(identityRepo)
	employeeUC := identity.NewEmployeeUseCase(txRunner, identityRepo, employmentRepo, assignmentRepo, storeRepo, validator, nil)

	admin, err := employeeUC.CreateEmployee(ctx, dto.CreateEmployeeRequest{
		Email:      adminEmail,
		Password:   adminPassword,
		FirstName:  "Admin",
		LastName:   "Inicial",
		StoreCode:  stores[0].Code,
		RoleName:   "ADMIN",
		Position:   "Administrador",
		Department: "Dirección",
		Salary:     decimal.Zero,
		Currency:   "MXN",
	})
	if err != nil {
		log.Fatal().Err(err).Msg("crear admin inicial")
	}
	log.Info().
		Str("email", admin.Email).
		Str("employee_code", admin.Employment.EmployeeCode).
		Msg("admin inicial creado")
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
