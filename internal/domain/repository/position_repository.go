package repository

import (
	"context"

	"github.com/jhoicas/Rrhh-api/internal/domain/entity"
)

// PositionRepository define el puerto de lectura del catálogo de cargos.
type PositionRepository interface {
	// GetPositionAreaIndex devuelve todas las filas cargo→área del catálogo,
	// la materia prima del snapshot que consume el resolutor de alcance.
	GetPositionAreaIndex(ctx context.Context) ([]entity.PositionAreaEntry, error)
	GetByID(ctx context.Context, id string) (*entity.Position, error)
}
