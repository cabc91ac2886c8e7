package http

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Rrhh-api/internal/application/dto"
	appscope "github.com/jhoicas/Rrhh-api/internal/application/scope"
	"github.com/jhoicas/Rrhh-api/internal/domain"
)

// LocalScope key del Resolution en c.Locals.
const LocalScope = "scope_resolution"

// scopeResolver es el contrato mínimo que necesita el middleware.
// Lo implementa *appscope.Service; la interfaz evita el acople directo.
type scopeResolver interface {
	Resolve(ctx context.Context, userID string) (appscope.Resolution, error)
}

// ScopeMiddleware resuelve el alcance del usuario autenticado UNA vez por
// petición y lo deja en c.Locals: todos los handlers (dashboard, menú,
// directorio, reportes) leen el mismo predicado, nunca re-derivan la
// heurística. Debe usarse DESPUÉS de AuthMiddleware.
//
// Si el índice cargo→área no está disponible la petición continúa con la
// resolución cerrada a SelfOnly (Degraded=true): la UI muestra un estado
// restringido en vez de uno incorrecto. Cualquier otro fallo responde 503.
func ScopeMiddleware(resolver scopeResolver) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID := GetUserID(c)
		if userID == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code: "UNAUTHORIZED", Message: "user_id no encontrado en el token",
			})
		}

		res, err := resolver.Resolve(c.Context(), userID)
		if err != nil && !errors.Is(err, domain.ErrIndexUnavailable) {
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{
				Code: "SCOPE_UNAVAILABLE", Message: "no se pudo resolver el alcance, intente más tarde",
			})
		}

		c.Locals(LocalScope, res)
		return c.Next()
	}
}

// GetScope devuelve el Resolution de la petición (después de ScopeMiddleware).
// Si falta, devuelve una resolución cerrada sin registro propio: no ve nada.
func GetScope(c *fiber.Ctx) appscope.Resolution {
	v := c.Locals(LocalScope)
	if v == nil {
		return appscope.Resolution{Degraded: true}
	}
	res, ok := v.(appscope.Resolution)
	if !ok {
		return appscope.Resolution{Degraded: true}
	}
	return res
}
