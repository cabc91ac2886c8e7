package scope_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Rrhh-api/internal/domain/entity"
	"github.com/jhoicas/Rrhh-api/internal/domain/scope"
)

// Planilla de prueba: dos áreas, dos sedes, una unidad de negocio.
func planillaPrueba() []entity.Employee {
	return []entity.Employee{
		{ID: "e1", Name: "Rosa Díaz", PositionID: "10", Position: "Jefe de Operaciones", Location: "CHIMBOTE", BusinessUnit: "BEBIDAS"},
		{ID: "e2", Name: "Luis Paredes", PositionID: "11", Position: "Supervisor de Operaciones", Location: "CHIMBOTE", BusinessUnit: "BEBIDAS"},
		{ID: "e3", Name: "Ana Torres", Position: "Supervisor de Operaciones", Location: "LIMA", BusinessUnit: "BEBIDAS"},
		{ID: "e4", Name: "Marco Silva", PositionID: "20", Position: "Jefe de Ventas", Location: "LIMA", BusinessUnit: "ALIMENTOS"},
		{ID: "e5", Name: "Carla Ruiz", Position: "Cargo Sin Catálogo", Location: "CHIMBOTE", BusinessUnit: "BEBIDAS"},
		{ID: "e6", Name: "Pedro Gómez", PositionID: "30", Position: "Operario de Producción", Location: "chimbote, lima", BusinessUnit: "ALIMENTOS"},
	}
}

func filtrarIDs(p scope.Predicate, idx *scope.PositionAreaIndex) []string {
	keep := scope.FilterFunc(p, idx)
	var ids []string
	for _, e := range planillaPrueba() {
		if keep(e) {
			ids = append(ids, e.ID)
		}
	}
	return ids
}

func TestFilterFunc_PorVariante(t *testing.T) {
	idx := scope.NewPositionAreaIndex(catalogoPrueba(), nil)

	cases := []struct {
		name string
		pred scope.Predicate
		want []string
	}{
		{
			name: "todos los registros",
			pred: scope.AllRecords(),
			want: []string{"e1", "e2", "e3", "e4", "e5", "e6"},
		},
		{
			name: "área en todas las sedes",
			pred: scope.AreaGlobal("6"),
			want: []string{"e1", "e2", "e3"},
		},
		{
			name: "área y sede",
			pred: scope.AreaAndLocation("6", "CHIMBOTE"),
			want: []string{"e1", "e2"},
		},
		{
			name: "área y sede insensible a mayúsculas",
			pred: scope.AreaAndLocation("6", "  chimbote "),
			want: []string{"e1", "e2"},
		},
		{
			name: "usuario multisede ve ambas sedes del área",
			pred: scope.AreaAndLocation("6", "CHIMBOTE, LIMA"),
			want: []string{"e1", "e2", "e3"},
		},
		{
			name: "empleado multisede coincide por cualquiera de sus sedes",
			pred: scope.AreaAndLocation("9", "LIMA"),
			want: []string{"e6"},
		},
		{
			name: "unidad de negocio",
			pred: scope.BusinessUnitOnly("bebidas"),
			want: []string{"e1", "e2", "e3", "e5"},
		},
		{
			name: "solo el propio registro",
			pred: scope.SelfOnly("e5"),
			want: []string{"e5"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, filtrarIDs(tc.pred, idx))
		})
	}
}

// SelfOnly sin ID de empleado no selecciona nada: mejor vacío que abierto.
func TestFilterFunc_SelfOnlySinIDCierra(t *testing.T) {
	idx := scope.NewPositionAreaIndex(catalogoPrueba(), nil)
	assert.Empty(t, filtrarIDs(scope.SelfOnly(""), idx))
}

// Una variante que el aplicador no conoce no selecciona nada.
func TestFilterFunc_VarianteDesconocidaCierra(t *testing.T) {
	idx := scope.NewPositionAreaIndex(catalogoPrueba(), nil)
	assert.Empty(t, filtrarIDs(scope.Predicate{Kind: scope.Kind("FUTURA")}, idx))
}

// La resolución del propio usuario y el filtro sobre la colección usan el mismo
// mapeo cargo→área: lo que un jefe resuelve como su área es exactamente lo que
// el filtro selecciona.
func TestFilterFunc_CoherenteConResolve(t *testing.T) {
	r := testResolver()
	idx := scope.NewPositionAreaIndex(catalogoPrueba(), nil)

	jefe := scope.UserContext{EmployeeID: "e1", Position: "Jefe de Operaciones", PositionID: "10", Location: "CHIMBOTE"}
	pred := r.Resolve(jefe, idx)
	assert.Equal(t, []string{"e1", "e2", "e3"}, filtrarIDs(pred, idx))

	supervisor := scope.UserContext{EmployeeID: "e2", Position: "Supervisor de Operaciones", PositionID: "11", Location: "CHIMBOTE"}
	pred = r.Resolve(supervisor, idx)
	assert.Equal(t, []string{"e1", "e2"}, filtrarIDs(pred, idx))
}
