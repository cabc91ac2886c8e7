// Package scope es el resolutor de alcance organizacional: decide, para un
// usuario arbitrario, qué subconjunto de los empleados de la organización puede
// ver. Es el único dueño de la heurística de clasificación; dashboard, menú y
// reportes deben pasar por aquí en lugar de re-derivar los mismos string match.
//
// Todo el paquete es puro: una resolución lee un UserContext inmutable y un
// snapshot del índice cargo→área y devuelve un valor, sin I/O ni estado oculto.
package scope

// UserContext son los atributos del usuario para una resolución.
// Se construye fresco por petición; rol, cargo y área pueden cambiar entre
// sesiones, por lo que no es seguro cachearlo entre llamadas.
type UserContext struct {
	EmployeeID   string // registro de empleado del propio usuario (para SelfOnly)
	Email        string // solo para el bypass de super-admin
	Role         string // etiqueta libre de rol; puede estar vacía
	Position     string // etiqueta libre de cargo; puede estar vacía
	PositionID   string // vínculo al catálogo de cargos; vacío si no existe
	Location     string // sede(s) asignada(s); puede traer varias separadas por coma
	BusinessUnit string // unidad de negocio; eje de respaldo cuando no hay área
}
