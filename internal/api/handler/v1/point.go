package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ecoleta-app/api/internal/api/handler/v1/request"
	"github.com/ecoleta-app/api/internal/api/handler/v1/response"
	"github.com/ecoleta-app/api/internal/domain"
	"github.com/ecoleta-app/api/internal/service"
)

type PointService interface {
	CreatePoint(ctx context.Context, point domain.Point, itemIDs []uint) (domain.Point, error)
	ListPoints(ctx context.Context, uf, city string, itemIDs []uint) ([]domain.Point, error)
	GetPoint(ctx context.Context, id uint) (domain.PointDetail, error)
}

type PointHandler struct {
	svc PointService
}

func NewPointHandler(svc PointService) *PointHandler {
	return &PointHandler{
		svc: svc,
	}
}

// HandleListPoints godoc
// @Summary      List collection points
// @Description  Lists points in a city/uf that accept at least one of the given item categories
// @Tags         points
// @Produce      json
// @Param        uf     query     string  false  "state abbreviation"
// @Param        city   query     string  false  "city name"
// @Param        items  query     string  false  "comma-separated item ids"
// @Success      200  {array}   domain.Point
// @Failure      400  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /points [get]
func (h *PointHandler) HandleListPoints(ctx *gin.Context) {
	itemIDs, err := request.ParseItemIDs(ctx.Query("items"))
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	points, err := h.svc.ListPoints(ctx.Request.Context(), ctx.Query("uf"), ctx.Query("city"), itemIDs)
	if err != nil {
		err = fmt.Errorf("v1.HandleListPoints -> h.svc.ListPoints -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, points)
}

// HandleGetPoint godoc
// @Summary      Get a collection point
// @Description  Retrieves a point and the titles of the item categories it accepts
// @Tags         points
// @Produce      json
// @Param        id   path      int  true  "point ID"
// @Success      200  {object}  domain.PointDetail
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /points/{id} [get]
func (h *PointHandler) HandleGetPoint(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid point id: %w", err)))
		return
	}

	detail, err := h.svc.GetPoint(ctx.Request.Context(), uint(id))
	if err != nil {
		if errors.Is(err, service.ErrPointNotFound) {
			response.RenderErr(ctx, response.ErrNotFound())
			return
		}

		err = fmt.Errorf("v1.HandleGetPoint -> h.svc.GetPoint -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, detail)
}

// HandleCreatePoint godoc
// @Summary      Create a collection point
// @Description  Registers a new point together with the item categories it accepts
// @Tags         points
// @Accept       json
// @Produce      json
// @Param        input  body      request.CreatePointRequest  true  "point details"
// @Success      200    {object}  domain.Point
// @Failure      400    {object}  response.Err
// @Failure      500    {object}  response.Err
// @Router       /points [post]
func (h *PointHandler) HandleCreatePoint(ctx *gin.Context) {
	var input request.CreatePointRequest
	if err := ctx.ShouldBindJSON(&input); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := input.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	point := domain.Point{
		Name:      input.Name,
		Email:     input.Email,
		Whatsapp:  input.Whatsapp,
		Latitude:  input.Latitude,
		Longitude: input.Longitude,
		City:      input.City,
		UF:        input.UF,
	}

	created, err := h.svc.CreatePoint(ctx.Request.Context(), point, input.Items)
	if err != nil {
		if errors.Is(err, service.ErrItemNotFound) {
			response.RenderErr(ctx, response.ErrBadRequest(service.ErrItemNotFound))
			return
		}

		err = fmt.Errorf("v1.HandleCreatePoint -> h.svc.CreatePoint -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, created)
}
