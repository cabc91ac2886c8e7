package postgres

import (
	"fmt"

	"github.com/jhoicas/Rrhh-api/internal/domain/scope"
	"github.com/jhoicas/Rrhh-api/pkg/normalize"
)

// Cláusula FROM común a toda consulta sobre empleados visibles.
//
// El área de cada empleado se deriva con el MISMO orden del índice cargo→área:
// primero el cargo vinculado por id (aunque su área sea NULL: cargo catalogado
// sin área significa "sin área"); solo si el empleado no tiene cargo
// catalogado se busca por nombre normalizado, con desempate determinista por
// menor id. Requiere la extensión unaccent en la base para que la comparación
// sea insensible a tildes, igual que normalize.Text.
const employeeScopeFrom = `
	FROM employees e
	LEFT JOIN positions p ON p.id = e.position_id
	LEFT JOIN LATERAL (
		SELECT p2.area_id
		FROM positions p2
		WHERE unaccent(UPPER(TRIM(p2.name))) = unaccent(UPPER(TRIM(e.position)))
		ORDER BY p2.id
		LIMIT 1
	) pn ON TRUE`

// employeeAreaExpr expresión SQL del área efectiva del empleado.
const employeeAreaExpr = `CASE WHEN p.id IS NOT NULL THEN p.area_id ELSE pn.area_id END`

// buildScopeFilter traduce un scope.Predicate al fragmento WHERE y sus
// argumentos. Es el ÚNICO constructor del filtro de visibilidad: lo comparten
// conteo, listado, analítica y exportación, de modo que el mismo predicado
// seleccione siempre el mismo conjunto de filas.
func buildScopeFilter(pred scope.Predicate) (where string, args []any) {
	switch pred.Kind {
	case scope.KindAllRecords:
		return "TRUE", nil

	case scope.KindAreaGlobal:
		return employeeAreaExpr + " = $1", []any{pred.AreaID}

	case scope.KindAreaAndLocation:
		// El empleado puede tener varias sedes separadas por coma; coincide si
		// alguna de ellas está entre las sedes del usuario.
		where = employeeAreaExpr + ` = $1 AND EXISTS (
			SELECT 1 FROM unnest(string_to_array(e.location, ',')) AS site
			WHERE unaccent(UPPER(TRIM(site))) = ANY($2)
		)`
		return where, []any{pred.AreaID, normalize.Sites(pred.Location)}

	case scope.KindBusinessUnitOnly:
		return "unaccent(UPPER(TRIM(e.business_unit))) = $1", []any{normalize.Text(pred.BusinessUnit)}

	case scope.KindSelfOnly:
		if pred.EmployeeID == "" {
			return "FALSE", nil
		}
		return "e.id = $1", []any{pred.EmployeeID}

	default:
		// Variante desconocida: cerrar, nunca ampliar.
		return "FALSE", nil
	}
}

// nextArg devuelve el placeholder posicional siguiente a los args del filtro.
func nextArg(args []any) string {
	return fmt.Sprintf("$%d", len(args)+1)
}
