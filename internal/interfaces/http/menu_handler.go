package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Rrhh-api/internal/application/dto"
	"github.com/jhoicas/Rrhh-api/internal/application/usecase"
)

// MenuHandler entrega el menú lateral filtrado por alcance y el diagnóstico
// del predicado resuelto.
type MenuHandler struct {
	menu *usecase.MenuService
}

// NewMenuHandler construye el handler.
func NewMenuHandler(menu *usecase.MenuService) *MenuHandler {
	return &MenuHandler{menu: menu}
}

// GetMenu devuelve las entradas del menú visibles para el solicitante.
// GET /api/menu
func (h *MenuHandler) GetMenu(c *fiber.Ctx) error {
	res := GetScope(c)
	return c.JSON(dto.MenuResponse{
		Entries:  h.menu.Entries(res.Tier, res.Predicate),
		Degraded: res.Degraded,
	})
}

// GetScopeInfo devuelve nivel y predicado resueltos para el solicitante.
// GET /api/scope
//
// Endpoint de diagnóstico para soporte: muestra exactamente el filtro que
// dashboard, directorio y reportes están aplicando a este usuario.
func (h *MenuHandler) GetScopeInfo(c *fiber.Ctx) error {
	res := GetScope(c)
	return c.JSON(dto.ScopeResponse{
		Tier:      string(res.Tier),
		Predicate: res.Predicate,
		Degraded:  res.Degraded,
	})
}
