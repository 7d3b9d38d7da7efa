package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/personal-api/internal/application/auth"
	"github.com/jhoicas/personal-api/internal/application/identity"
)

// Roles conocidos para RBAC de rutas.
const (
	RoleAdmin         = "ADMIN"
	RoleManagerBranch = "MANAGER_BRANCH"
	RoleHR            = "HR"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CustomerUC *identity.CustomerUseCase
	EmployeeUC *identity.EmployeeUseCase
	StatusUC   *identity.StatusUseCase
	QueryUC    *identity.QueryUseCase
	AuthUC     *auth.AuthUseCase
	JWTSecret  string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)

	// Customers: el alta es pública (registro), el resto protegido
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	api.Post("/customers", customerHandler.Create)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	protected.Put("/customers/:id", customerHandler.Update)

	// Employees (protegido, solo administración de personal)
	staffOnly := RequireRole(RoleAdmin, RoleManagerBranch, RoleHR)
	employees := protected.Group("/employees", staffOnly)
	employeeHandler := NewEmployeeHandler(deps.EmployeeUC)
	employees.Post("/", employeeHandler.Create)
	employees.Put("/:id", employeeHandler.Update)

	// Identities: listados, detalle y ciclo de estado (protegido)
	identities := protected.Group("/identities", staffOnly)
	identityHandler := NewIdentityHandler(deps.QueryUC, deps.StatusUC)
	identities.Get("/", identityHandler.List)
	identities.Get("/:id", identityHandler.GetByID)
	identities.Patch("/:id/status", identityHandler.SetStatus)
	identities.Post("/:id/activate", identityHandler.Activate)
	identities.Delete("/:id", identityHandler.Deactivate)
}
