package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/Rrhh-api/internal/application/analytics"
	"github.com/jhoicas/Rrhh-api/internal/application/dto"
)

// DashboardHandler maneja los endpoints del módulo de Dashboard.
type DashboardHandler struct {
	uc *appanalytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *appanalytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetSummary devuelve el resumen de headcount y planilla del solicitante.
// GET /api/dashboard/summary
//
// El resumen se calcula siempre sobre el predicado resuelto por el
// ScopeMiddleware: los conteos del dashboard y los del directorio no pueden
// divergir porque aplican el mismo filtro.
func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	res := GetScope(c)

	summary, err := h.uc.GetSummary(c.Context(), res.Predicate)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "INTERNAL", Message: err.Error(),
		})
	}
	summary.Degraded = res.Degraded

	return c.JSON(summary)
}
