package scope

import "github.com/jhoicas/Rrhh-api/pkg/normalize"

// Resolve combina nivel + área resuelta + sede/unidad del usuario en el
// predicado canónico de visibilidad.
//
// El orden de pasos es fijo: la resolución por área siempre precede al
// respaldo por unidad de negocio, y este último solo se consulta cuando NO se
// pudo resolver área alguna. Un usuario con área pero sin patrón de liderazgo
// queda en SelfOnly: no debe ganar en silencio visibilidad sobre toda su
// unidad de negocio.
//
// Sin efectos secundarios; solo lectura.
func (r Resolver) Resolve(ctx UserContext, idx *PositionAreaIndex) Predicate {
	areaID, areaResolved := idx.ResolveAreaID(ctx)
	tier := r.ClassifyTier(ctx, areaResolved)

	if tier == TierGlobalAdmin {
		return AllRecords()
	}

	if areaResolved {
		switch tier {
		case TierAreaLead:
			return AreaGlobal(areaID)
		case TierAreaSupervisor:
			return AreaAndLocation(areaID, ctx.Location)
		default:
			return SelfOnly(ctx.EmployeeID)
		}
	}

	if normalize.Text(ctx.BusinessUnit) != "" {
		return BusinessUnitOnly(ctx.BusinessUnit)
	}
	return SelfOnly(ctx.EmployeeID)
}
