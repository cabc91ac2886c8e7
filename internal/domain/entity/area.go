package entity

// Area es una agrupación organizacional de cargos: el eje principal de
// visibilidad. Dimensión plana, sin jerarquía.
type Area struct {
	ID   string
	Name string
}
