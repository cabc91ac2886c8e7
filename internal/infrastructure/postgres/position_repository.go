package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/Rrhh-api/internal/domain/entity"
	"github.com/jhoicas/Rrhh-api/internal/domain/repository"
)

var _ repository.PositionRepository = (*PositionRepo)(nil)

// PositionRepo lectura del catálogo de cargos sobre PostgreSQL.
type PositionRepo struct {
	pool *pgxpool.Pool
}

// NewPositionRepository construye el adaptador del catálogo de cargos.
func NewPositionRepository(pool *pgxpool.Pool) *PositionRepo {
	return &PositionRepo{pool: pool}
}

// GetPositionAreaIndex devuelve todas las filas cargo→área del catálogo.
// El orden por id garantiza una construcción estable del snapshot.
func (r *PositionRepo) GetPositionAreaIndex(ctx context.Context) ([]entity.PositionAreaEntry, error) {
	query := `SELECT id, name, COALESCE(area_id, '') FROM positions ORDER BY id`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("get position-area index: %w", err)
	}
	defer rows.Close()

	var entries []entity.PositionAreaEntry
	for rows.Next() {
		var e entity.PositionAreaEntry
		if err := rows.Scan(&e.PositionID, &e.Name, &e.AreaID); err != nil {
			return nil, fmt.Errorf("scan position-area entry: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// GetByID obtiene un cargo por ID. Devuelve nil sin error si no existe.
func (r *PositionRepo) GetByID(ctx context.Context, id string) (*entity.Position, error) {
	query := `SELECT id, name, COALESCE(area_id, '') FROM positions WHERE id = $1`
	var p entity.Position
	err := r.pool.QueryRow(ctx, query, id).Scan(&p.ID, &p.Name, &p.AreaID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get position by id: %w", err)
	}
	return &p, nil
}
