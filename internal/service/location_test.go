package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocationServiceListUFs(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/estados", r.URL.Path)
		require.Equal(t, "nome", r.URL.Query().Get("orderBy"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":35,"sigla":"SP","nome":"São Paulo"},{"id":41,"sigla":"PR","nome":"Paraná"}]`))
	}))
	defer srv.Close()

	svc := NewLocationService(srv.URL)

	ufs, err := svc.ListUFs(context.Background())
	require.NoError(t, err)
	require.Len(t, ufs, 2)
	assert.Equal(t, "SP", ufs[0].Sigla)
	assert.Equal(t, "São Paulo", ufs[0].Nome)
}

func TestLocationServiceListCities(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/estados/SP/municipios", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":3534401,"nome":"Osasco"},{"id":3550308,"nome":"São Paulo"}]`))
	}))
	defer srv.Close()

	svc := NewLocationService(srv.URL)

	cities, err := svc.ListCities(context.Background(), "SP")
	require.NoError(t, err)
	require.Len(t, cities, 2)
	assert.Equal(t, "Osasco", cities[0].Nome)
}

func TestLocationServiceListCitiesUnknownUF(t *testing.T) {
	// IBGE answers 200 with an empty array for unknown abbreviations.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	svc := NewLocationService(srv.URL)

	_, err := svc.ListCities(context.Background(), "XX")
	assert.ErrorIs(t, err, ErrUFNotFound)
}

func TestLocationServiceUpstreamFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	svc := NewLocationService(srv.URL)

	_, err := svc.ListUFs(context.Background())
	assert.Error(t, err)
}
