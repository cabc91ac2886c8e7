package scope

import (
	"github.com/jhoicas/Rrhh-api/internal/domain/entity"
	"github.com/jhoicas/Rrhh-api/pkg/normalize"
)

// FilterFunc traduce un Predicate a un filtro en memoria sobre una colección
// ya cargada de empleados. Debe seleccionar exactamente el mismo conjunto de
// IDs que las consultas Count/List en base de datos: es el contrato central de
// equivalencia del motor.
//
// El área de cada empleado se deriva con el mismo índice cargo→área que usó la
// resolución (primero por PositionID, luego por nombre de cargo).
func FilterFunc(p Predicate, idx *PositionAreaIndex) func(entity.Employee) bool {
	switch p.Kind {
	case KindAllRecords:
		return func(entity.Employee) bool { return true }

	case KindAreaGlobal:
		return func(e entity.Employee) bool {
			return employeeAreaID(e, idx) == p.AreaID
		}

	case KindAreaAndLocation:
		sites := normalize.Sites(p.Location)
		return func(e entity.Employee) bool {
			if employeeAreaID(e, idx) != p.AreaID {
				return false
			}
			return anySiteMatch(normalize.Sites(e.Location), sites)
		}

	case KindBusinessUnitOnly:
		bu := normalize.Text(p.BusinessUnit)
		return func(e entity.Employee) bool {
			return normalize.Text(e.BusinessUnit) == bu
		}

	case KindSelfOnly:
		return func(e entity.Employee) bool {
			return p.EmployeeID != "" && e.ID == p.EmployeeID
		}

	default:
		// Variante desconocida: cerrar, nunca ampliar.
		return func(entity.Employee) bool { return false }
	}
}

// employeeAreaID resuelve el área de un empleado con el mismo mapeo del índice.
func employeeAreaID(e entity.Employee, idx *PositionAreaIndex) string {
	areaID, ok := idx.ResolveAreaID(UserContext{PositionID: e.PositionID, Position: e.Position})
	if !ok {
		return ""
	}
	return areaID
}

// anySiteMatch reporta si alguna sede del empleado coincide con alguna del usuario.
func anySiteMatch(employeeSites, userSites []string) bool {
	for _, es := range employeeSites {
		for _, us := range userSites {
			if es == us {
				return true
			}
		}
	}
	return false
}
