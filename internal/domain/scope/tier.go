package scope

import (
	"strings"

	"github.com/jhoicas/Rrhh-api/pkg/normalize"
)

// Tier es el nivel de autorización asignado por el clasificador.
// Los niveles son mutuamente excluyentes y se evalúan en este orden de
// precedencia (gana la primera coincidencia).
type Tier string

const (
	// TierGlobalAdmin visibilidad irrestricta sobre todos los empleados.
	TierGlobalAdmin Tier = "GLOBAL_ADMIN"
	// TierAreaLead (jefe/gerente) ve toda su área, en cualquier sede.
	TierAreaLead Tier = "AREA_LEAD"
	// TierAreaSupervisor (supervisor/coordinador/analista) ve su área solo en su sede.
	TierAreaSupervisor Tier = "AREA_SUPERVISOR"
	// TierUnscoped tiene área resuelta pero ningún patrón de liderazgo:
	// no se le concede visibilidad por área.
	TierUnscoped Tier = "UNSCOPED"
	// TierNoArea sin área resoluble: respaldo por unidad de negocio o solo su registro.
	TierNoArea Tier = "NO_AREA"
)

// Roles con bypass administrativo. Es una allow-list explícita, no heurística:
// gana siempre sin importar el texto del cargo.
var adminRoles = map[string]struct{}{
	"ADMIN":           {},
	"SUPER ADMIN":     {},
	"JEFE_RRHH":       {},
	"GERENTE GENERAL": {},
	"SISTEMAS":        {},
}

// Cargos del área de Gente con visibilidad total (administran la planilla completa).
var adminPositionMarks = []string{"JEFE DE GENTE", "ANALISTA DE GENTE"}

// Patrones de nivel supervisor. Se evalúan ANTES que los de liderazgo:
// "SUPERVISOR DE OPERACIONES" no debe clasificar como jefatura solo porque
// el área también tenga jefes.
var supervisorMarks = []string{"SUPERVISOR", "COORDINADOR", "ANALISTA"}

// Resolver aplica las reglas de clasificación y resolución de alcance.
// Es un valor sin estado; SuperAdminEmail llega de configuración.
type Resolver struct {
	SuperAdminEmail string
}

// ClassifyTier decide el nivel de autorización a partir de rol y cargo
// normalizados. areaResolved indica si el índice cargo→área resolvió un área
// para el usuario (distingue TierUnscoped de TierNoArea).
//
// Función pura de clasificación de strings: sin I/O, testeable sin data store.
func (r Resolver) ClassifyTier(ctx UserContext, areaResolved bool) Tier {
	role := normalize.Text(ctx.Role)
	position := normalize.Text(ctx.Position)

	// 1. Bypass administrativo (allow-list explícita).
	if r.SuperAdminEmail != "" && strings.EqualFold(strings.TrimSpace(ctx.Email), r.SuperAdminEmail) {
		return TierGlobalAdmin
	}
	if _, ok := adminRoles[role]; ok {
		return TierGlobalAdmin
	}
	for _, mark := range adminPositionMarks {
		if strings.Contains(position, mark) {
			return TierGlobalAdmin
		}
	}

	// 2. Supervisores antes que jefaturas (ver comentario de supervisorMarks).
	for _, mark := range supervisorMarks {
		if strings.Contains(role, mark) || strings.Contains(position, mark) {
			return TierAreaSupervisor
		}
	}

	// 3. Jefaturas.
	if strings.Contains(role, "JEFE") || strings.Contains(position, "JEFE") || strings.Contains(role, "GERENTE") {
		return TierAreaLead
	}

	// 4-5. Sin patrón: con área queda sin alcance; sin área cae al respaldo.
	if areaResolved {
		return TierUnscoped
	}
	return TierNoArea
}
