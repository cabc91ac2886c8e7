// Package scope expone el punto de entrada único de resolución de alcance:
// toda función (dashboard, menú, listados, reportes) debe pedir aquí el
// predicado de visibilidad en lugar de re-derivar la heurística.
package scope

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/jhoicas/Rrhh-api/internal/domain"
	"github.com/jhoicas/Rrhh-api/internal/domain/repository"
	"github.com/jhoicas/Rrhh-api/internal/domain/scope"
	"github.com/jhoicas/Rrhh-api/pkg/logger"
)

// Resolution es el resultado de una resolución: el nivel clasificado y el
// predicado canónico que todo consumidor debe aplicar de forma idéntica.
type Resolution struct {
	Tier      scope.Tier
	Predicate scope.Predicate
	// Degraded indica que el índice cargo→área no estuvo disponible y la
	// resolución cerró el alcance a SelfOnly.
	Degraded bool
}

// Deps dependencias del servicio.
type Deps struct {
	Users     repository.UserRepository
	Employees repository.EmployeeRepository
	Positions repository.PositionRepository
	Resolver  scope.Resolver
	// CacheTTL ventana de vigencia del snapshot del índice. Cero desactiva el
	// cache (se recarga en cada resolución).
	CacheTTL time.Duration
	Log      *logger.Logger
	// Now inyectable en tests; nil usa time.Now.
	Now func() time.Time
}

// Service resuelve el alcance organizacional de un usuario. El snapshot del
// índice cargo→área se cachea con TTL acotado: un índice desfasado puede
// clasificar mal el área de un usuario recién reasignado durante unos
// segundos, lo cual es una inconsistencia aceptada y acotada en el tiempo,
// no una condición de error. El TTL es la ÚNICA cota de desactualización
// admitida: si al vencer no se puede recargar el catálogo, la resolución
// cierra a SelfOnly en vez de seguir sirviendo un snapshot de edad sin cota.
type Service struct {
	deps Deps

	mu       sync.Mutex
	snapshot *scope.PositionAreaIndex
	loadedAt time.Time
}

// NewService construye el servicio de alcance.
func NewService(deps Deps) *Service {
	if deps.Now == nil {
		deps.Now = time.Now
	}
	return &Service{deps: deps}
}

// Resolve calcula el alcance del usuario indicado.
//
// Cierre ante fallos: si la cuenta, su ficha de empleado o el índice no pueden
// cargarse (incluida cancelación del contexto), devuelve SelfOnly y
// domain.ErrIndexUnavailable envuelto — nunca un alcance más amplio. El error
// se devuelve además de la resolución para que la UI muestre un estado
// degradado en vez de uno incorrecto.
func (s *Service) Resolve(ctx context.Context, userID string) (Resolution, error) {
	user, err := s.deps.Users.GetByID(ctx, userID)
	if err != nil {
		return s.failClosed("", fmt.Errorf("cargar usuario %s: %w", userID, err))
	}
	if user == nil {
		return s.failClosed("", fmt.Errorf("usuario %s: %w", userID, domain.ErrUserNotFound))
	}

	uctx := scope.UserContext{
		EmployeeID: user.EmployeeID,
		Email:      user.Email,
		Role:       user.Role,
	}
	if user.EmployeeID != "" {
		emp, err := s.deps.Employees.GetByID(ctx, user.EmployeeID)
		if err != nil {
			return s.failClosed(user.EmployeeID, fmt.Errorf("cargar ficha de empleado: %w", err))
		}
		if emp != nil {
			uctx.Position = emp.Position
			uctx.PositionID = emp.PositionID
			uctx.Location = emp.Location
			uctx.BusinessUnit = emp.BusinessUnit
		}
	}

	idx, err := s.Snapshot(ctx)
	if err != nil {
		return s.failClosed(user.EmployeeID, err)
	}

	pred := s.deps.Resolver.Resolve(uctx, idx)
	_, areaResolved := idx.ResolveAreaID(uctx)
	tier := s.deps.Resolver.ClassifyTier(uctx, areaResolved)

	if s.deps.Log != nil {
		s.deps.Log.Debug().
			Str("user_id", userID).
			Str("tier", string(tier)).
			Str("predicate", pred.String()).
			Msg("alcance resuelto")
	}
	return Resolution{Tier: tier, Predicate: pred}, nil
}

// Snapshot devuelve el snapshot vigente del índice cargo→área, recargándolo
// desde el catálogo si expiró el TTL. Los demás casos de uso (ficha, reportes)
// lo usan para aplicar el mismo mapeo en memoria.
func (s *Service) Snapshot(ctx context.Context) (*scope.PositionAreaIndex, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.deps.Now()
	if s.snapshot != nil && s.deps.CacheTTL > 0 && now.Sub(s.loadedAt) < s.deps.CacheTTL {
		return s.snapshot, nil
	}

	entries, err := s.deps.Positions.GetPositionAreaIndex(ctx)
	if err != nil {
		// Un snapshot vencido NO se reutiliza: serviría visibilidad de área
		// sobre datos de antigüedad sin cota mientras el catálogo siga caído.
		// La desactualización admitida termina donde termina el TTL; pasado
		// ese punto toda resolución cierra y el fallo se reporta.
		s.snapshot = nil
		if s.deps.Log != nil {
			s.deps.Log.Warn().Err(err).Msg("recarga del índice cargo-área falló; las resoluciones cierran a SelfOnly")
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrIndexUnavailable, err)
	}

	s.snapshot = scope.NewPositionAreaIndex(entries, s.reportAmbiguity)
	s.loadedAt = now
	return s.snapshot, nil
}

// Invalidate descarta el snapshot cacheado; la siguiente resolución recarga.
func (s *Service) Invalidate() {
	s.mu.Lock()
	s.snapshot = nil
	s.mu.Unlock()
}

func (s *Service) failClosed(employeeID string, cause error) (Resolution, error) {
	if s.deps.Log != nil {
		s.deps.Log.Error().Err(cause).Msg("resolución de alcance falló; se cierra a SelfOnly")
	}
	res := Resolution{
		Tier:      scope.TierNoArea,
		Predicate: scope.SelfOnly(employeeID),
		Degraded:  true,
	}
	if errors.Is(cause, domain.ErrIndexUnavailable) {
		return res, cause
	}
	return res, fmt.Errorf("%w: %v", domain.ErrIndexUnavailable, cause)
}

// reportAmbiguity registra nombres de cargo duplicados con áreas distintas
// (monitoreo de calidad de datos; la resolución ya fue determinista).
func (s *Service) reportAmbiguity(name string, areaIDs []string) {
	if s.deps.Log != nil {
		s.deps.Log.Warn().
			Str("position_name", name).
			Strs("area_ids", areaIDs).
			Msg("nombre de cargo ambiguo en el catálogo")
	}
}
