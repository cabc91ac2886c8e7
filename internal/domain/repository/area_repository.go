package repository

import (
	"context"

	"github.com/jhoicas/Rrhh-api/internal/domain/entity"
)

// AreaRepository define el puerto de lectura de áreas organizacionales.
type AreaRepository interface {
	List(ctx context.Context) ([]*entity.Area, error)
	GetByID(ctx context.Context, id string) (*entity.Area, error)
}
