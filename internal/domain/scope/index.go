package scope

import (
	"github.com/jhoicas/Rrhh-api/internal/domain/entity"
	"github.com/jhoicas/Rrhh-api/pkg/normalize"
)

// AmbiguityFunc recibe cada nombre de cargo normalizado que aparece en el
// catálogo con más de un área distinta. Es monitoreo de calidad de datos,
// nunca un error: la resolución ya fue determinista.
type AmbiguityFunc func(name string, areaIDs []string)

// PositionAreaIndex es un snapshot inmutable del mapeo cargo→área.
// Resuelve primero por ID de cargo y, como respaldo, por nombre normalizado.
type PositionAreaIndex struct {
	byID   map[string]string
	byName map[string]nameEntry
}

// nameEntry es la elección determinista para un nombre de cargo: la fila con
// menor PositionID, para que el mapeo sea una función pura y repetible aunque
// el catálogo tenga nombres duplicados.
type nameEntry struct {
	positionID string
	areaID     string
}

// NewPositionAreaIndex construye el índice desde las filas del catálogo.
// onAmbiguity puede ser nil; si no lo es, se invoca una vez por cada nombre
// duplicado con áreas distintas.
func NewPositionAreaIndex(entries []entity.PositionAreaEntry, onAmbiguity AmbiguityFunc) *PositionAreaIndex {
	idx := &PositionAreaIndex{
		byID:   make(map[string]string, len(entries)),
		byName: make(map[string]nameEntry, len(entries)),
	}
	areasByName := make(map[string]map[string]struct{})

	for _, e := range entries {
		if e.PositionID != "" {
			idx.byID[e.PositionID] = e.AreaID
		}
		name := normalize.Text(e.Name)
		if name == "" {
			continue
		}
		if cur, ok := idx.byName[name]; !ok || winsNameElection(e.PositionID, cur.positionID) {
			idx.byName[name] = nameEntry{positionID: e.PositionID, areaID: e.AreaID}
		}
		if _, ok := areasByName[name]; !ok {
			areasByName[name] = make(map[string]struct{})
		}
		if e.AreaID != "" {
			areasByName[name][e.AreaID] = struct{}{}
		}
	}

	if onAmbiguity != nil {
		for name, areas := range areasByName {
			if len(areas) > 1 {
				ids := make([]string, 0, len(areas))
				for id := range areas {
					ids = append(ids, id)
				}
				onAmbiguity(name, ids)
			}
		}
	}
	return idx
}

// winsNameElection decide si el id candidato desplaza al actual en la elección
// por nombre. Un id vacío (fila sucia del catálogo) pierde siempre contra uno
// presente; entre presentes gana el menor.
func winsNameElection(candidate, current string) bool {
	if candidate == "" {
		return false
	}
	if current == "" {
		return true
	}
	return candidate < current
}

// Len devuelve el número de cargos indexados por ID.
func (idx *PositionAreaIndex) Len() int { return len(idx.byID) }

// ResolveAreaID determina el área efectiva del usuario.
//
// Orden: si PositionID existe en el catálogo se usa su área (aunque sea vacía:
// un cargo catalogado sin área significa "sin área", no "buscar por nombre");
// si no, se busca el cargo cuyo nombre normalizado coincida exactamente.
// ok es false cuando no hay área resoluble.
func (idx *PositionAreaIndex) ResolveAreaID(ctx UserContext) (areaID string, ok bool) {
	if ctx.PositionID != "" {
		if area, found := idx.byID[ctx.PositionID]; found {
			return area, area != ""
		}
	}
	if name := normalize.Text(ctx.Position); name != "" {
		if e, found := idx.byName[name]; found {
			return e.areaID, e.areaID != ""
		}
	}
	return "", false
}
