package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ecoleta-app/api/internal/api/handler/v1/response"
	"github.com/ecoleta-app/api/internal/domain"
	"github.com/ecoleta-app/api/internal/service"
)

type LocationService interface {
	ListUFs(ctx context.Context) ([]domain.UF, error)
	ListCities(ctx context.Context, uf string) ([]domain.City, error)
}

type LocationHandler struct {
	svc LocationService
}

func NewLocationHandler(svc LocationService) *LocationHandler {
	return &LocationHandler{
		svc: svc,
	}
}

// HandleListUFs godoc
// @Summary      List states
// @Description  Lists Brazilian states, proxied from the IBGE localidades API
// @Tags         locations
// @Produce      json
// @Success      200  {array}   domain.UF
// @Failure      502  {object}  response.Err
// @Router       /locations/ufs [get]
func (h *LocationHandler) HandleListUFs(ctx *gin.Context) {
	ufs, err := h.svc.ListUFs(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleListUFs -> h.svc.ListUFs -> %w", err)
		response.RenderErr(ctx, response.ErrBadGateway(err))
		return
	}

	ctx.JSON(http.StatusOK, ufs)
}

// HandleListCities godoc
// @Summary      List cities for a state
// @Description  Lists the municipalities of a state, proxied from the IBGE localidades API
// @Tags         locations
// @Produce      json
// @Param        uf   path      string  true  "state abbreviation"
// @Success      200  {array}   domain.City
// @Failure      404  {object}  response.Err
// @Failure      502  {object}  response.Err
// @Router       /locations/ufs/{uf}/cities [get]
func (h *LocationHandler) HandleListCities(ctx *gin.Context) {
	cities, err := h.svc.ListCities(ctx.Request.Context(), ctx.Param("uf"))
	if err != nil {
		if errors.Is(err, service.ErrUFNotFound) {
			response.RenderErr(ctx, response.ErrNotFound())
			return
		}

		err = fmt.Errorf("v1.HandleListCities -> h.svc.ListCities -> %w", err)
		response.RenderErr(ctx, response.ErrBadGateway(err))
		return
	}

	ctx.JSON(http.StatusOK, cities)
}
