package identity_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/personal-api/internal/application/identity"
	"github.com/jhoicas/personal-api/internal/domain"
	"github.com/jhoicas/personal-api/internal/domain/entity"
)

var noviembre2025 = time.Date(2025, time.November, 15, 10, 0, 0, 0, time.UTC)

// ──────────────────────────────────────────────────────────────────────────────
// Prefijo del código de empleado
// ──────────────────────────────────────────────────────────────────────────────

func TestBuildCodePrefix_TomaLaParteMnemonicaDelCodigoDeTienda(t *testing.T) {
	assert.Equal(t, "TW2511CHE", identity.BuildCodePrefix("CHE999", noviembre2025),
		"debe usar los primeros 3 caracteres del código de tienda")
	assert.Equal(t, "TW2511CUN", identity.BuildCodePrefix("CUN001", noviembre2025))
}

func TestBuildCodePrefix_RellenaCodigosCortos(t *testing.T) {
	assert.Equal(t, "TW251100A", identity.BuildCodePrefix("A", noviembre2025),
		"códigos de tienda cortos se rellenan con ceros a la izquierda")
	assert.Equal(t, "TW25110AB", identity.BuildCodePrefix("AB", noviembre2025))
	assert.Equal(t, "TW2511CHE", identity.BuildCodePrefix("CHE", noviembre2025))
}

func TestBuildCodePrefix_MesYAnioDosDigitos(t *testing.T) {
	enero := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "TW2601CHE", identity.BuildCodePrefix("CHE", enero),
		"año y mes siempre en dos dígitos")
}

// ──────────────────────────────────────────────────────────────────────────────
// Secuencia
// ──────────────────────────────────────────────────────────────────────────────

func TestNextEmployeeCode_PrimeraAltaEmpiezaEn001(t *testing.T) {
	s := newMemStore()
	code, err := identity.NextEmployeeCode(context.Background(), &memEmploymentRepo{s: s}, "CHE", noviembre2025)
	require.NoError(t, err)
	assert.Equal(t, "TW2511CHE001", code)
}

func TestNextEmployeeCode_PrimeraAltaTiendaConSufijoNumerico(t *testing.T) {
	// Primera alta 2025-11 en la tienda CHE999: el código usa la parte
	// mnemónica de la tienda, nunca su sufijo numérico.
	s := newMemStore()
	code, err := identity.NextEmployeeCode(context.Background(), &memEmploymentRepo{s: s}, "CHE999", noviembre2025)
	require.NoError(t, err)
	assert.Equal(t, "TW2511CHE001", code)

	s.employments["i1"] = &entity.Employment{IdentityID: "i1", EmployeeCode: code}
	next, err := identity.NextEmployeeCode(context.Background(), &memEmploymentRepo{s: s}, "CHE999", noviembre2025)
	require.NoError(t, err)
	assert.Equal(t, "TW2511CHE002", next)
}

func TestNextEmployeeCode_IncrementaDesdeElUltimo(t *testing.T) {
	s := newMemStore()
	s.employments["i1"] = &entity.Employment{IdentityID: "i1", EmployeeCode: "TW2511CHE007"}
	code, err := identity.NextEmployeeCode(context.Background(), &memEmploymentRepo{s: s}, "CHE", noviembre2025)
	require.NoError(t, err)
	assert.Equal(t, "TW2511CHE008", code)
}

func TestNextEmployeeCode_IgnoraOtrosPrefijos(t *testing.T) {
	s := newMemStore()
	// Otra tienda y otro mes no cuentan para la secuencia.
	s.employments["i1"] = &entity.Employment{IdentityID: "i1", EmployeeCode: "TW2511CUN055"}
	s.employments["i2"] = &entity.Employment{IdentityID: "i2", EmployeeCode: "TW2510CHE099"}
	code, err := identity.NextEmployeeCode(context.Background(), &memEmploymentRepo{s: s}, "CHE", noviembre2025)
	require.NoError(t, err)
	assert.Equal(t, "TW2511CHE001", code)
}

func TestNextEmployeeCode_SecuenciaAgotadaFallaCerrado(t *testing.T) {
	s := newMemStore()
	s.employments["i1"] = &entity.Employment{IdentityID: "i1", EmployeeCode: "TW2511CHE999"}
	_, err := identity.NextEmployeeCode(context.Background(), &memEmploymentRepo{s: s}, "CHE", noviembre2025)
	assert.ErrorIs(t, err, domain.ErrCodigoEmpleadoAgotado,
		"la secuencia 999 agotada debe fallar, nunca ensanchar el formato")
}

func TestNextEmployeeCode_SecuenciaConPadding(t *testing.T) {
	s := newMemStore()
	for n := 1; n <= 12; n++ {
		id := fmt.Sprintf("i%d", n)
		s.employments[id] = &entity.Employment{IdentityID: id, EmployeeCode: fmt.Sprintf("TW2511CHE%03d", n)}
	}
	code, err := identity.NextEmployeeCode(context.Background(), &memEmploymentRepo{s: s}, "CHE", noviembre2025)
	require.NoError(t, err)
	assert.Equal(t, "TW2511CHE013", code, "la secuencia siempre va en 3 dígitos con ceros")
}
