package scope

import "fmt"

// Kind discrimina la variante de un Predicate.
type Kind string

const (
	KindAllRecords       Kind = "ALL_RECORDS"
	KindAreaGlobal       Kind = "AREA_GLOBAL"
	KindAreaAndLocation  Kind = "AREA_AND_LOCATION"
	KindBusinessUnitOnly Kind = "BUSINESS_UNIT_ONLY"
	KindSelfOnly         Kind = "SELF_ONLY"
)

// Predicate es la descripción canónica y serializable de qué registros de
// empleados puede ver un usuario. Cada resolución produce exactamente una
// variante; el valor es función pura del UserContext más el snapshot del
// índice. Todo consumidor (dashboard, menú, reportes) debe aplicar el mismo
// predicado de forma idéntica.
type Predicate struct {
	Kind         Kind   `json:"kind"`
	AreaID       string `json:"area_id,omitempty"`
	Location     string `json:"location,omitempty"`
	BusinessUnit string `json:"business_unit,omitempty"`
	EmployeeID   string `json:"employee_id,omitempty"`
}

// AllRecords visibilidad total: sin filtro.
func AllRecords() Predicate {
	return Predicate{Kind: KindAllRecords}
}

// AreaGlobal empleados cuya posición mapea al área, en cualquier sede.
func AreaGlobal(areaID string) Predicate {
	return Predicate{Kind: KindAreaGlobal, AreaID: areaID}
}

// AreaAndLocation empleados del área cuya sede coincide con alguna de las
// sedes del usuario (location puede traer varias separadas por coma).
func AreaAndLocation(areaID, location string) Predicate {
	return Predicate{Kind: KindAreaAndLocation, AreaID: areaID, Location: location}
}

// BusinessUnitOnly empleados de la misma unidad de negocio (comparación normalizada).
func BusinessUnitOnly(businessUnit string) Predicate {
	return Predicate{Kind: KindBusinessUnitOnly, BusinessUnit: businessUnit}
}

// SelfOnly únicamente el registro del propio solicitante.
func SelfOnly(employeeID string) Predicate {
	return Predicate{Kind: KindSelfOnly, EmployeeID: employeeID}
}

// String descripción compacta para logs.
func (p Predicate) String() string {
	switch p.Kind {
	case KindAllRecords:
		return "all_records"
	case KindAreaGlobal:
		return fmt.Sprintf("area_global(%s)", p.AreaID)
	case KindAreaAndLocation:
		return fmt.Sprintf("area_and_location(%s, %s)", p.AreaID, p.Location)
	case KindBusinessUnitOnly:
		return fmt.Sprintf("business_unit(%s)", p.BusinessUnit)
	case KindSelfOnly:
		return fmt.Sprintf("self_only(%s)", p.EmployeeID)
	default:
		return "unknown"
	}
}
