package usecase

import (
	"github.com/jhoicas/Rrhh-api/internal/application/dto"
	"github.com/jhoicas/Rrhh-api/internal/domain/scope"
)

// MenuService decide qué entradas del menú lateral ve cada usuario.
// Es el único punto de la aplicación que conoce la relación entre predicado
// de visibilidad y navegación; el frontend no re-deriva esta lógica.
type MenuService struct{}

// NewMenuService construye el servicio de menú.
func NewMenuService() *MenuService {
	return &MenuService{}
}

// Entries devuelve las entradas visibles, en orden estable, según el
// predicado resuelto. Las entradas de directorio y reportes solo aparecen
// cuando el alcance admite más registros que el propio; administración es
// exclusiva de visibilidad total.
func (s *MenuService) Entries(tier scope.Tier, pred scope.Predicate) []dto.MenuEntryDTO {
	entries := []dto.MenuEntryDTO{
		{Key: "dashboard", Label: "Dashboard", Path: "/dashboard"},
		{Key: "mi-ficha", Label: "Mi Ficha", Path: "/mi-ficha"},
	}

	if pred.Kind != scope.KindSelfOnly {
		entries = append(entries,
			dto.MenuEntryDTO{Key: "empleados", Label: "Empleados", Path: "/empleados"},
			dto.MenuEntryDTO{Key: "reportes", Label: "Reportes", Path: "/reportes"},
		)
	}
	if tier == scope.TierGlobalAdmin {
		entries = append(entries,
			dto.MenuEntryDTO{Key: "administracion", Label: "Administración", Path: "/administracion"},
		)
	}
	return entries
}
