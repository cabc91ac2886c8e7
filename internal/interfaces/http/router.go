package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/Rrhh-api/internal/application/analytics"
	"github.com/jhoicas/Rrhh-api/internal/application/auth"
	"github.com/jhoicas/Rrhh-api/internal/application/directory"
	appscope "github.com/jhoicas/Rrhh-api/internal/application/scope"
	"github.com/jhoicas/Rrhh-api/internal/application/usecase"
	"github.com/jhoicas/Rrhh-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	EmployeeUC  *directory.EmployeeUseCase
	DashboardUC *appanalytics.DashboardUseCase
	MenuService *usecase.MenuService
	ScopeSvc    *appscope.Service
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (login público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas: JWT + resolución de alcance una vez por petición.
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret), ScopeMiddleware(deps.ScopeSvc))

	// Alta de cuentas: solo roles administrativos.
	protected.Post("/auth/register",
		RequireRole(entity.RoleAdmin, entity.RoleSuperAdmin, entity.RoleRRHH),
		authHandler.Register,
	)

	// Directorio de empleados (el alcance lo aplica el predicado, no el rol)
	employees := protected.Group("/employees")
	employeeHandler := NewEmployeeHandler(deps.EmployeeUC)
	employees.Get("/", employeeHandler.List)
	employees.Get("/count", employeeHandler.Count)
	employees.Get("/export", employeeHandler.Export)
	employees.Post("/",
		RequireRole(entity.RoleAdmin, entity.RoleSuperAdmin, entity.RoleRRHH),
		employeeHandler.Create,
	)
	employees.Get("/:id", employeeHandler.GetByID)

	// Dashboard (protegido)
	dashboard := protected.Group("/dashboard")
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dashboard.Get("/summary", dashboardHandler.GetSummary)

	// Menú lateral y diagnóstico de alcance
	menuHandler := NewMenuHandler(deps.MenuService)
	protected.Get("/menu", menuHandler.GetMenu)
	protected.Get("/scope", menuHandler.GetScopeInfo)
}
