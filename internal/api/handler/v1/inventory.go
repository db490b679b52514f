package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/storeops/inventory-api/internal/api/handler/v1/request"
	"github.com/storeops/inventory-api/internal/api/handler/v1/response"
	"github.com/storeops/inventory-api/internal/domain"
	"github.com/storeops/inventory-api/internal/repository"
	"github.com/storeops/inventory-api/internal/service"
)

type InventoryService interface {
	CreateInventory(ctx context.Context, inventory domain.Inventory) (domain.Inventory, error)
	GetInventory(ctx context.Context, id uint) (domain.Inventory, error)
	UpdateInventory(ctx context.Context, inventory domain.Inventory) (domain.Inventory, error)
	DeleteInventory(ctx context.Context, id uint) error
	ListInventories(ctx context.Context, filter repository.ListFilter) ([]domain.Inventory, error)
	RestockInventory(ctx context.Context, id uint, delta int) (domain.Inventory, error)
}

type InventoryHandler struct {
	svc InventoryService
}

func NewInventoryHandler(svc InventoryService) *InventoryHandler {
	return &InventoryHandler{
		svc: svc,
	}
}

// HandleCreateInventory godoc
// @Summary      Create an inventory item
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        request  body      request.CreateInventoryRequest  true  "request body"
// @Success      201      {object}  domain.Inventory
// @Header       201      {string}  Location  "URL of the created item"
// @Failure      400      {object}  response.Err
// @Failure      415      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /inventory [post]
func (h *InventoryHandler) HandleCreateInventory(ctx *gin.Context) {
	var req request.CreateInventoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	inventory, err := req.ToDomain()
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	created, err := h.svc.CreateInventory(ctx.Request.Context(), inventory)
	if err != nil {
		if errors.Is(err, service.ErrNegativeQuantity) {
			response.RenderErr(ctx, response.ErrBadRequest(service.ErrNegativeQuantity))
			return
		}

		err = fmt.Errorf("HandleCreateInventory -> h.svc.CreateInventory -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.Header("Location", fmt.Sprintf("/inventory/%d", created.ID))
	ctx.JSON(http.StatusCreated, created)
}

// HandleGetInventory godoc
// @Summary      Retrieve an inventory item
// @Tags         inventory
// @Produce      json
// @Param        inventoryID  path      int  true  "Inventory ID"
// @Success      200  {object}  domain.Inventory
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /inventory/{inventoryID} [get]
func (h *InventoryHandler) HandleGetInventory(ctx *gin.Context) {
	id, err := parseInventoryID(ctx)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	found, err := h.svc.GetInventory(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrInventoryNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("inventory", "id", id))
			return
		}

		err = fmt.Errorf("HandleGetInventory -> h.svc.GetInventory -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, found)
}

// HandleUpdateInventory godoc
// @Summary      Replace all fields of an inventory item
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        inventoryID  path      int                             true  "Inventory ID"
// @Param        request      body      request.UpdateInventoryRequest  true  "request body"
// @Success      200  {object}  domain.Inventory
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      415  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /inventory/{inventoryID} [put]
func (h *InventoryHandler) HandleUpdateInventory(ctx *gin.Context) {
	id, err := parseInventoryID(ctx)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	var req request.UpdateInventoryRequest
	if err = ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err = req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	inventory, err := req.ToDomain()
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}
	inventory.ID = id

	updated, err := h.svc.UpdateInventory(ctx.Request.Context(), inventory)
	if err != nil {
		if errors.Is(err, service.ErrInventoryNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("inventory", "id", id))
			return
		}

		err = fmt.Errorf("HandleUpdateInventory -> h.svc.UpdateInventory -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, updated)
}

// HandleDeleteInventory godoc
// @Summary      Delete an inventory item
// @Description  Deleting is idempotent. Removing an ID that does not exist still returns 204.
// @Tags         inventory
// @Param        inventoryID  path  int  true  "Inventory ID"
// @Success      204
// @Failure      400  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /inventory/{inventoryID} [delete]
func (h *InventoryHandler) HandleDeleteInventory(ctx *gin.Context) {
	id, err := parseInventoryID(ctx)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err = h.svc.DeleteInventory(ctx.Request.Context(), id); err != nil {
		err = fmt.Errorf("HandleDeleteInventory -> h.svc.DeleteInventory -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.Status(http.StatusNoContent)
}

// HandleListInventories godoc
// @Summary      List or search inventory items
// @Description  Filters combine with AND. No filters returns the full listing.
// @Tags         inventory
// @Produce      json
// @Param        name          query  string  false  "exact name match"
// @Param        quantity_min  query  int     false  "inclusive lower quantity bound"
// @Param        quantity_max  query  int     false  "inclusive upper quantity bound"
// @Param        condition     query  string  false  "one of NEW, OPENBOX, USED"
// @Param        stock_level   query  string  false  "one of IN_STOCK, LOW_STOCK, OUT_OF_STOCK"
// @Success      200  {array}   domain.Inventory
// @Failure      400  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /inventory [get]
func (h *InventoryHandler) HandleListInventories(ctx *gin.Context) {
	var query request.ListInventoryQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	filter := repository.ListFilter{
		Name:        query.Name,
		QuantityMin: query.QuantityMin,
		QuantityMax: query.QuantityMax,
	}

	if query.Condition != "" {
		condition, err := domain.ParseCondition(query.Condition)
		if err != nil {
			response.RenderErr(ctx, response.ErrBadRequest(err))
			return
		}
		filter.Condition = condition
	}

	if query.StockLevel != "" {
		stockLevel, err := domain.ParseStockLevel(query.StockLevel)
		if err != nil {
			response.RenderErr(ctx, response.ErrBadRequest(err))
			return
		}
		filter.StockLevel = stockLevel
	}

	inventories, err := h.svc.ListInventories(ctx.Request.Context(), filter)
	if err != nil {
		err = fmt.Errorf("HandleListInventories -> h.svc.ListInventories -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, inventories)
}

// HandleRestockInventory godoc
// @Summary      Restock an inventory item
// @Description  Applies a signed delta to the quantity. A delta that would make the quantity negative is rejected with 400.
// @Tags         inventory
// @Produce      json
// @Param        inventoryID  path  int  true  "Inventory ID"
// @Param        delta        path  int  true  "signed quantity delta"
// @Success      200  {object}  domain.Inventory
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /inventory/{inventoryID}/restock/{delta} [put]
func (h *InventoryHandler) HandleRestockInventory(ctx *gin.Context) {
	id, err := parseInventoryID(ctx)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	delta, err := strconv.Atoi(ctx.Param("delta"))
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("%q is not a valid integer", ctx.Param("delta"))))
		return
	}

	restocked, err := h.svc.RestockInventory(ctx.Request.Context(), id, delta)
	if err != nil {
		if errors.Is(err, service.ErrInventoryNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("inventory", "id", id))
			return
		}
		if errors.Is(err, service.ErrInvalidRestock) {
			response.RenderErr(ctx, response.ErrBadRequest(err))
			return
		}

		err = fmt.Errorf("HandleRestockInventory -> h.svc.RestockInventory -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, restocked)
}

func parseInventoryID(ctx *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(ctx.Param("inventoryID"), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid inventory ID: %w", err)
	}

	return uint(id), nil
}
