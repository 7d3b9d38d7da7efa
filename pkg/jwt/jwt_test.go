package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/jhoicas/personal-api/pkg/jwt"
)

const (
	secret     = "test-secret-key-for-unit-tests"
	identityID = "00000000-0000-0000-0000-000000000001"
	storeID    = "00000000-0000-0000-0000-000000000002"
	issuer     = "personal-api-test"
)

func TestJWT_GenerateAndParse_ConRole(t *testing.T) {
	tok, err := pkgjwt.Generate(secret, identityID, storeID, "MANAGER_BRANCH", issuer, 60)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	gotIdentity, gotStore, gotRole, err := pkgjwt.Parse(secret, tok)
	require.NoError(t, err)

	assert.Equal(t, identityID, gotIdentity)
	assert.Equal(t, storeID, gotStore)
	assert.Equal(t, "MANAGER_BRANCH", gotRole)
}

func TestJWT_TokenExpirado_RetornaError(t *testing.T) {
	// Expiración -1 minuto (ya expirado)
	tok, err := pkgjwt.Generate(secret, identityID, storeID, "ADMIN", issuer, -1)
	require.NoError(t, err)

	_, _, _, err = pkgjwt.Parse(secret, tok)
	assert.Error(t, err, "token expirado debe retornar error")
}

func TestJWT_SecretIncorrecto_RetornaError(t *testing.T) {
	tok, err := pkgjwt.Generate(secret, identityID, storeID, "ADMIN", issuer, 60)
	require.NoError(t, err)

	_, _, _, err = pkgjwt.Parse("otro-secret-completamente-distinto", tok)
	assert.Error(t, err, "secret incorrecto debe invalidar el token")
}

func TestJWT_SecretVacio_RetornaError(t *testing.T) {
	_, err := pkgjwt.Generate("", identityID, storeID, "ADMIN", issuer, 60)
	assert.Error(t, err)
}
