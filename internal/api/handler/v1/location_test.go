package v1

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecoleta-app/api/internal/domain"
	"github.com/ecoleta-app/api/internal/service"
)

type stubLocationService struct {
	ufsFn    func(ctx context.Context) ([]domain.UF, error)
	citiesFn func(ctx context.Context, uf string) ([]domain.City, error)
}

func (s *stubLocationService) ListUFs(ctx context.Context) ([]domain.UF, error) {
	return s.ufsFn(ctx)
}

func (s *stubLocationService) ListCities(ctx context.Context, uf string) ([]domain.City, error) {
	return s.citiesFn(ctx, uf)
}

func newLocationRouter(svc LocationService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	handler := NewLocationHandler(svc)
	router.GET("/locations/ufs", handler.HandleListUFs)
	router.GET("/locations/ufs/:uf/cities", handler.HandleListCities)

	return router
}

func TestHandleListUFs(t *testing.T) {
	svc := &stubLocationService{
		ufsFn: func(ctx context.Context) ([]domain.UF, error) {
			return []domain.UF{{ID: 35, Sigla: "SP", Nome: "São Paulo"}}, nil
		},
	}
	router := newLocationRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/locations/ufs", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"id":35,"sigla":"SP","nome":"São Paulo"}]`, w.Body.String())
}

func TestHandleListCities(t *testing.T) {
	svc := &stubLocationService{
		citiesFn: func(ctx context.Context, uf string) ([]domain.City, error) {
			require.Equal(t, "SP", uf)

			return []domain.City{{ID: 3534401, Nome: "Osasco"}}, nil
		},
	}
	router := newLocationRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/locations/ufs/SP/cities", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"id":3534401,"nome":"Osasco"}]`, w.Body.String())
}

func TestHandleListCitiesUnknownUF(t *testing.T) {
	svc := &stubLocationService{
		citiesFn: func(ctx context.Context, uf string) ([]domain.City, error) {
			return nil, service.ErrUFNotFound
		},
	}
	router := newLocationRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/locations/ufs/XX/cities", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
