package scope_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Rrhh-api/internal/domain/scope"
)

const testSuperAdmin = "sistemas@corporacion.pe"

func testResolver() scope.Resolver {
	return scope.Resolver{SuperAdminEmail: testSuperAdmin}
}

// ──────────────────────────────────────────────────────────────────────────────
// Clasificación por precedencia (gana la primera coincidencia)
// ──────────────────────────────────────────────────────────────────────────────

func TestClassifyTier_Precedencia(t *testing.T) {
	r := testResolver()

	cases := []struct {
		name         string
		ctx          scope.UserContext
		areaResolved bool
		want         scope.Tier
	}{
		{
			name: "rol ADMIN es admin global",
			ctx:  scope.UserContext{Role: "ADMIN"},
			want: scope.TierGlobalAdmin,
		},
		{
			name: "rol admin en minúsculas también",
			ctx:  scope.UserContext{Role: "admin"},
			want: scope.TierGlobalAdmin,
		},
		{
			name: "JEFE_RRHH es admin global",
			ctx:  scope.UserContext{Role: "JEFE_RRHH"},
			want: scope.TierGlobalAdmin,
		},
		{
			name: "GERENTE GENERAL es admin global, no jefatura de área",
			ctx:  scope.UserContext{Role: "Gerente General"},
			want: scope.TierGlobalAdmin,
		},
		{
			name: "cargo JEFE DE GENTE es admin global aunque el rol no diga nada",
			ctx:  scope.UserContext{Position: "Jefe de Gente y Cultura"},
			want: scope.TierGlobalAdmin,
		},
		{
			name: "ANALISTA DE GENTE es admin global, no supervisor",
			ctx:  scope.UserContext{Position: "Analista de Gente"},
			want: scope.TierGlobalAdmin,
		},
		{
			name:         "supervisor por cargo",
			ctx:          scope.UserContext{Position: "SUPERVISOR DE OPERACIONES"},
			areaResolved: true,
			want:         scope.TierAreaSupervisor,
		},
		{
			name:         "coordinador por rol",
			ctx:          scope.UserContext{Role: "Coordinadora de Almacén"},
			areaResolved: true,
			want:         scope.TierAreaSupervisor,
		},
		{
			name:         "analista genérico es supervisor",
			ctx:          scope.UserContext{Position: "Analista de Planillas"},
			areaResolved: true,
			want:         scope.TierAreaSupervisor,
		},
		{
			name:         "jefe por cargo",
			ctx:          scope.UserContext{Position: "Jefe de Operaciones"},
			areaResolved: true,
			want:         scope.TierAreaLead,
		},
		{
			name:         "gerente por rol",
			ctx:          scope.UserContext{Role: "Gerente de Ventas"},
			areaResolved: true,
			want:         scope.TierAreaLead,
		},
		{
			name:         "sin patrón pero con área: sin alcance",
			ctx:          scope.UserContext{Position: "Operario de Producción"},
			areaResolved: true,
			want:         scope.TierUnscoped,
		},
		{
			name: "sin patrón y sin área",
			ctx:  scope.UserContext{Position: "Operario de Producción"},
			want: scope.TierNoArea,
		},
		{
			name: "rol y cargo vacíos",
			ctx:  scope.UserContext{},
			want: scope.TierNoArea,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, r.ClassifyTier(tc.ctx, tc.areaResolved))
		})
	}
}

// El email de super-admin gana sin importar cualquier otro campo.
func TestClassifyTier_SuperAdminPorEmail(t *testing.T) {
	r := testResolver()
	ctx := scope.UserContext{
		Email:    "SISTEMAS@corporacion.pe", // insensible a mayúsculas
		Role:     "practicante",
		Position: "Operario",
	}
	assert.Equal(t, scope.TierGlobalAdmin, r.ClassifyTier(ctx, false))
}

// Un título supervisor jamás clasifica como jefatura aunque el texto se
// parezca a uno de liderazgo: supervisor se evalúa primero.
func TestClassifyTier_SupervisorNuncaEsJefatura(t *testing.T) {
	r := testResolver()
	cases := []scope.UserContext{
		{Position: "SUPERVISOR DE OPERACIONES"},
		{Position: "Supervisor a cargo del Jefe de Planta"},
		{Role: "supervisor", Position: "jefe de turno"},
	}
	for _, ctx := range cases {
		tier := r.ClassifyTier(ctx, true)
		assert.NotEqual(t, scope.TierAreaLead, tier,
			"un supervisor no debe clasificar como jefatura: %+v", ctx)
		assert.Equal(t, scope.TierAreaSupervisor, tier)
	}
}

// Espacios sobrantes y mayúsculas mixtas no cambian la clasificación.
func TestClassifyTier_NormalizaRolYCargo(t *testing.T) {
	r := testResolver()
	assert.Equal(t, scope.TierGlobalAdmin, r.ClassifyTier(scope.UserContext{Role: "  jefe_rrhh  "}, false))
	assert.Equal(t, scope.TierAreaSupervisor, r.ClassifyTier(scope.UserContext{Position: " coordinador de almacén "}, true))
}
