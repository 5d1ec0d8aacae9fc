package v1

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ecoleta-app/api/internal/api/handler/v1/response"
	"github.com/ecoleta-app/api/internal/domain"
)

type ItemService interface {
	ListItems(ctx context.Context) ([]domain.Item, error)
}

type ItemHandler struct {
	svc ItemService
}

func NewItemHandler(svc ItemService) *ItemHandler {
	return &ItemHandler{
		svc: svc,
	}
}

// HandleListItems godoc
// @Summary      List item categories
// @Description  Lists all recyclable-material categories a point can accept
// @Tags         items
// @Produce      json
// @Success      200  {array}   domain.Item
// @Failure      500  {object}  response.Err
// @Router       /items [get]
func (h *ItemHandler) HandleListItems(ctx *gin.Context) {
	items, err := h.svc.ListItems(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleListItems -> h.svc.ListItems -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, items)
}
