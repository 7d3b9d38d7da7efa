package geocode_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/personal-api/internal/domain/entity"
	"github.com/jhoicas/personal-api/internal/infrastructure/geocode"
)

func TestNormalize_CompletaLaDireccion(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/ws/77000/json/", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"logradouro":"Av. Héroes","bairro":"Centro","localidade":"Chetumal","uf":"QR"}`))
	}))
	defer srv.Close()

	c := geocode.NewClient(srv.URL, time.Second)
	got, err := c.Normalize(context.Background(), entity.Address{ZipCode: "77000", Number: "12"})
	require.NoError(t, err)
	require.NotNil(t, got)

	assert.Equal(t, "Av. Héroes", got.Street)
	assert.Equal(t, "Centro", got.District)
	assert.Equal(t, "Chetumal", got.City)
	assert.Equal(t, "QR", got.State)
	assert.Equal(t, "12", got.Number, "los campos no devueltos se conservan")
}

func TestNormalize_FallosSonConsultivos(t *testing.T) {
	// Cualquier fallo del servicio devuelve (nil, nil): la operación que lo
	// invoca nunca se aborta por el lookup.
	t.Run("status no OK", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer srv.Close()

		c := geocode.NewClient(srv.URL, time.Second)
		got, err := c.Normalize(context.Background(), entity.Address{ZipCode: "77000"})
		assert.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("cuerpo no parseable", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("<html>"))
		}))
		defer srv.Close()

		c := geocode.NewClient(srv.URL, time.Second)
		got, err := c.Normalize(context.Background(), entity.Address{ZipCode: "77000"})
		assert.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("código postal desconocido", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"erro": true}`))
		}))
		defer srv.Close()

		c := geocode.NewClient(srv.URL, time.Second)
		got, err := c.Normalize(context.Background(), entity.Address{ZipCode: "00000"})
		assert.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("servidor caído", func(t *testing.T) {
		c := geocode.NewClient("http://127.0.0.1:1", 200*time.Millisecond)
		got, err := c.Normalize(context.Background(), entity.Address{ZipCode: "77000"})
		assert.NoError(t, err)
		assert.Nil(t, got)
	})
}

func TestNormalize_DeshabilitadoSinBaseURL(t *testing.T) {
	c := geocode.NewClient("", time.Second)
	got, err := c.Normalize(context.Background(), entity.Address{ZipCode: "77000"})
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestNormalize_SinCodigoPostalNoConsulta(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("no debe llegar ninguna petición sin código postal")
	}))
	defer srv.Close()

	c := geocode.NewClient(srv.URL, time.Second)
	got, err := c.Normalize(context.Background(), entity.Address{})
	assert.NoError(t, err)
	assert.Nil(t, got)
}
