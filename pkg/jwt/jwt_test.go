package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/punto-venta/pkg/jwt"
)

const testSecret = "secreto-de-prueba"

func TestGenerateYParse_RoundTrip(t *testing.T) {
	token, err := jwt.Generate(testSecret, "user-123", "punto-venta", 60)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, err := jwt.Parse(testSecret, token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", userID)
}

func TestParse_SecretoIncorrecto(t *testing.T) {
	token, err := jwt.Generate(testSecret, "user-123", "punto-venta", 60)
	require.NoError(t, err)

	_, err = jwt.Parse("otro-secreto", token)
	assert.Error(t, err)
}

func TestParse_TokenExpirado(t *testing.T) {
	token, err := jwt.Generate(testSecret, "user-123", "punto-venta", -1)
	require.NoError(t, err)

	_, err = jwt.Parse(testSecret, token)
	assert.Error(t, err)
}

func TestParse_TokenMalformado(t *testing.T) {
	_, err := jwt.Parse(testSecret, "no-es-un-jwt")
	assert.Error(t, err)
}

func TestGenerate_SecretoVacio(t *testing.T) {
	_, err := jwt.Generate("", "user-123", "punto-venta", 60)
	assert.Error(t, err)

	_, err = jwt.Parse("", "cualquier-cosa")
	assert.Error(t, err)
}
