package entity

// Position es un cargo del catálogo organizacional. AreaID puede estar vacío:
// hay cargos históricos que nunca fueron asignados a un área.
type Position struct {
	ID     string
	Name   string
	AreaID string
}

// PositionAreaEntry es la fila mínima del índice cargo→área que consume el
// resolutor de alcance. Se construye desde el catálogo en un solo query.
type PositionAreaEntry struct {
	PositionID string
	Name       string
	AreaID     string
}
