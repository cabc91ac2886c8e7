package dto

// MenuEntryDTO entrada del menú lateral visible para el solicitante.
type MenuEntryDTO struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Path  string `json:"path"`
}

// MenuResponse menú lateral filtrado por el alcance del usuario.
type MenuResponse struct {
	Entries  []MenuEntryDTO `json:"entries"`
	Degraded bool           `json:"degraded,omitempty"`
}

// ScopeResponse diagnóstico: nivel y predicado que toda función aplicará.
type ScopeResponse struct {
	Tier      string      `json:"tier"`
	Predicate interface{} `json:"predicate"`
	Degraded  bool        `json:"degraded,omitempty"`
}
