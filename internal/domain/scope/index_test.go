package scope_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Rrhh-api/internal/domain/entity"
	"github.com/jhoicas/Rrhh-api/internal/domain/scope"
)

func catalogoPrueba() []entity.PositionAreaEntry {
	return []entity.PositionAreaEntry{
		{PositionID: "10", Name: "Jefe de Operaciones", AreaID: "6"},
		{PositionID: "11", Name: "Supervisor de Operaciones", AreaID: "6"},
		{PositionID: "20", Name: "Jefe de Ventas", AreaID: "3"},
		{PositionID: "30", Name: "Operario de Producción", AreaID: "9"},
		{PositionID: "40", Name: "Practicante", AreaID: ""},
	}
}

func TestResolveAreaID_PorID(t *testing.T) {
	idx := scope.NewPositionAreaIndex(catalogoPrueba(), nil)

	area, ok := idx.ResolveAreaID(scope.UserContext{PositionID: "10"})
	require.True(t, ok)
	assert.Equal(t, "6", area)
}

// El ID gana sobre el nombre: si el ID apunta a otra área, el nombre no importa.
func TestResolveAreaID_IDGanaSobreNombre(t *testing.T) {
	idx := scope.NewPositionAreaIndex(catalogoPrueba(), nil)

	area, ok := idx.ResolveAreaID(scope.UserContext{
		PositionID: "20",
		Position:   "Jefe de Operaciones",
	})
	require.True(t, ok)
	assert.Equal(t, "3", area)
}

// Un cargo catalogado sin área significa "sin área": no se intenta el
// respaldo por nombre aunque exista un homónimo con área.
func TestResolveAreaID_IDSinAreaNoCaeAlNombre(t *testing.T) {
	entries := append(catalogoPrueba(),
		entity.PositionAreaEntry{PositionID: "41", Name: "Practicante", AreaID: "9"},
	)
	idx := scope.NewPositionAreaIndex(entries, nil)

	_, ok := idx.ResolveAreaID(scope.UserContext{PositionID: "40", Position: "Practicante"})
	assert.False(t, ok)
}

// Sin ID catalogado se resuelve por nombre normalizado exacto.
func TestResolveAreaID_RespaldoPorNombre(t *testing.T) {
	idx := scope.NewPositionAreaIndex(catalogoPrueba(), nil)

	cases := []struct {
		name     string
		position string
		want     string
	}{
		{"nombre exacto", "Jefe de Operaciones", "6"},
		{"mayúsculas y espacios", "  jefe de operaciones  ", "6"},
		{"sin tildes en el catálogo", "OPERARIO DE PRODUCCION", "9"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			area, ok := idx.ResolveAreaID(scope.UserContext{Position: tc.position})
			require.True(t, ok)
			assert.Equal(t, tc.want, area)
		})
	}
}

func TestResolveAreaID_NoResuelto(t *testing.T) {
	idx := scope.NewPositionAreaIndex(catalogoPrueba(), nil)

	_, ok := idx.ResolveAreaID(scope.UserContext{Position: "Cargo Inexistente"})
	assert.False(t, ok)

	_, ok = idx.ResolveAreaID(scope.UserContext{})
	assert.False(t, ok)
}

// Ante nombres duplicados gana la fila con menor ID de cargo, sin importar el
// orden de llegada de las filas.
func TestResolveAreaID_DuplicadoGanaMenorID(t *testing.T) {
	entries := []entity.PositionAreaEntry{
		{PositionID: "52", Name: "Analista de Sistemas", AreaID: "8"},
		{PositionID: "17", Name: "Analista de Sistemas", AreaID: "2"},
		{PositionID: "33", Name: "Analista de Sistemas", AreaID: "5"},
	}
	idx := scope.NewPositionAreaIndex(entries, nil)

	area, ok := idx.ResolveAreaID(scope.UserContext{Position: "Analista de Sistemas"})
	require.True(t, ok)
	assert.Equal(t, "2", area)
}

// Una fila sucia sin id de cargo no gana la elección por nombre: "menor id"
// se decide entre los ids presentes.
func TestResolveAreaID_DuplicadoIgnoraIDVacio(t *testing.T) {
	entries := []entity.PositionAreaEntry{
		{PositionID: "", Name: "Analista de Sistemas", AreaID: "8"},
		{PositionID: "40", Name: "Analista de Sistemas", AreaID: "5"},
		{PositionID: "17", Name: "Analista de Sistemas", AreaID: "2"},
	}
	idx := scope.NewPositionAreaIndex(entries, nil)

	area, ok := idx.ResolveAreaID(scope.UserContext{Position: "Analista de Sistemas"})
	require.True(t, ok)
	assert.Equal(t, "2", area)
}

// El callback de ambigüedad se dispara solo cuando el mismo nombre apunta a
// áreas DISTINTAS; duplicados hacia la misma área no son ambiguos.
func TestNewPositionAreaIndex_CallbackDeAmbiguedad(t *testing.T) {
	entries := []entity.PositionAreaEntry{
		{PositionID: "1", Name: "Analista de Sistemas", AreaID: "2"},
		{PositionID: "2", Name: "Analista de Sistemas", AreaID: "8"},
		{PositionID: "3", Name: "Jefe de Ventas", AreaID: "3"},
		{PositionID: "4", Name: "Jefe de Ventas", AreaID: "3"},
	}

	var gotName string
	var gotAreas []string
	calls := 0
	scope.NewPositionAreaIndex(entries, func(name string, areaIDs []string) {
		calls++
		gotName = name
		gotAreas = append([]string(nil), areaIDs...)
	})

	require.Equal(t, 1, calls, "solo el nombre con áreas distintas es ambiguo")
	assert.Equal(t, "ANALISTA DE SISTEMAS", gotName)
	sort.Strings(gotAreas)
	assert.Equal(t, []string{"2", "8"}, gotAreas)
}

func TestPositionAreaIndex_Len(t *testing.T) {
	idx := scope.NewPositionAreaIndex(catalogoPrueba(), nil)
	assert.Equal(t, 5, idx.Len())
}
