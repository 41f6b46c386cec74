package handlers

import (
	"net/http"
	"strconv"

	"github.com/born2vin/hoskote-backend/errors"
	"github.com/born2vin/hoskote-backend/middleware"
	"github.com/born2vin/hoskote-backend/models"
	"github.com/born2vin/hoskote-backend/types"
	"github.com/gin-gonic/gin"
)

// MarketplaceHandler exposes item lending endpoints.
type MarketplaceHandler struct {
	marketplaceModel *models.MarketplaceModel
}

func NewMarketplaceHandler(marketplaceModel *models.MarketplaceModel) *MarketplaceHandler {
	return &MarketplaceHandler{marketplaceModel: marketplaceModel}
}

// CreateItemHandler godoc
// @Summary List an item for lending
// @Tags marketplace
// @Accept json
// @Produce json
// @Param request body types.MarketplaceItemCreate true "Item details"
// @Success 201 {object} types.MarketplaceItem
// @Router /marketplace [post]
// @Security BearerAuth
func (h *MarketplaceHandler) CreateItemHandler(c *gin.Context) {
	var req types.MarketplaceItemCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(errors.ValidationFailed("Invalid request body", err.Error()))
		return
	}

	item, err := h.marketplaceModel.CreateItem(c.Request.Context(), middleware.GetUserID(c), &req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

// ListItemsHandler godoc
// @Summary Browse marketplace items
// @Tags marketplace
// @Produce json
// @Param category query string false "Filter by category"
// @Param item_type query string false "Filter by type" Enums(lend, borrow, both)
// @Param available_only query bool false "Only items currently available"
// @Param limit query int false "Page size" default(20)
// @Param offset query int false "Page offset" default(0)
// @Success 200 {object} types.PaginatedResponse
// @Router /marketplace [get]
// @Security BearerAuth
func (h *MarketplaceHandler) ListItemsHandler(c *gin.Context) {
	offset, limit := getPaginationParams(c)

	filter := types.MarketplaceFilter{
		Category:      c.Query("category"),
		ItemType:      types.ItemType(c.Query("item_type")),
		AvailableOnly: c.Query("available_only") == "true",
	}

	page, err := h.marketplaceModel.ListItems(c.Request.Context(), filter, offset, limit)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, page)
}

// ListMyItemsHandler godoc
// @Summary List items the requester has put up for lending
// @Tags marketplace
// @Produce json
// @Success 200 {array} types.MarketplaceItem
// @Router /marketplace/my-items [get]
// @Security BearerAuth
func (h *MarketplaceHandler) ListMyItemsHandler(c *gin.Context) {
	offset, limit := getPaginationParams(c)

	items, err := h.marketplaceModel.ListOwnedItems(c.Request.Context(), middleware.GetUserID(c), offset, limit)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// ListBorrowedItemsHandler godoc
// @Summary List items the requester currently holds
// @Tags marketplace
// @Produce json
// @Success 200 {array} types.MarketplaceItem
// @Router /marketplace/borrowed [get]
// @Security BearerAuth
func (h *MarketplaceHandler) ListBorrowedItemsHandler(c *gin.Context) {
	items, err := h.marketplaceModel.ListBorrowedItems(c.Request.Context(), middleware.GetUserID(c))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// GetItemHandler godoc
// @Summary Get a marketplace item by ID
// @Tags marketplace
// @Produce json
// @Param id path string true "Item ID"
// @Success 200 {object} types.MarketplaceItem
// @Failure 404 {object} middleware.ErrorResponse "Item not found"
// @Router /marketplace/{id} [get]
// @Security BearerAuth
func (h *MarketplaceHandler) GetItemHandler(c *gin.Context) {
	item, err := h.marketplaceModel.GetItem(c.Request.Context(), c.Param("id"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// UpdateItemHandler godoc
// @Summary Update a marketplace item
// @Tags marketplace
// @Accept json
// @Produce json
// @Param id path string true "Item ID"
// @Param request body types.MarketplaceItemUpdate true "Fields to update"
// @Success 200 {object} types.MarketplaceItem
// @Failure 403 {object} middleware.ErrorResponse "Only the owner can update"
// @Router /marketplace/{id} [put]
// @Security BearerAuth
func (h *MarketplaceHandler) UpdateItemHandler(c *gin.Context) {
	var update types.MarketplaceItemUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		_ = c.Error(errors.ValidationFailed("Invalid request body", err.Error()))
		return
	}

	item, err := h.marketplaceModel.UpdateItem(c.Request.Context(), c.Param("id"), middleware.GetUserID(c), &update)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// BorrowItemHandler godoc
// @Summary Borrow an item
// @Description Marks the item as borrowed for the given number of days and
// @Description returns the agreed return date and total cost.
// @Tags marketplace
// @Produce json
// @Param id path string true "Item ID"
// @Param days query int true "Borrow duration in days"
// @Success 200 {object} types.BorrowResult
// @Failure 400 {object} middleware.ErrorResponse "Item unavailable or duration invalid"
// @Failure 404 {object} middleware.ErrorResponse "Item not found"
// @Router /marketplace/{id}/borrow [post]
// @Security BearerAuth
func (h *MarketplaceHandler) BorrowItemHandler(c *gin.Context) {
	days, err := strconv.Atoi(c.Query("days"))
	if err != nil {
		_ = c.Error(errors.ValidationFailed("Invalid borrow duration", c.Query("days")))
		return
	}

	result, borrowErr := h.marketplaceModel.BorrowItem(c.Request.Context(), c.Param("id"), middleware.GetUserID(c), days)
	if borrowErr != nil {
		_ = c.Error(borrowErr)
		return
	}
	c.JSON(http.StatusOK, result)
}

// ReturnItemHandler godoc
// @Summary Return a borrowed item
// @Tags marketplace
// @Produce json
// @Param id path string true "Item ID"
// @Success 200 {object} types.MessageResponse
// @Failure 403 {object} middleware.ErrorResponse "Only the current borrower can return"
// @Router /marketplace/{id}/return [post]
// @Security BearerAuth
func (h *MarketplaceHandler) ReturnItemHandler(c *gin.Context) {
	if err := h.marketplaceModel.ReturnItem(c.Request.Context(), c.Param("id"), middleware.GetUserID(c)); err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, types.MessageResponse{Message: "Item returned successfully"})
}

// DeleteItemHandler godoc
// @Summary Delete a marketplace listing
// @Tags marketplace
// @Produce json
// @Param id path string true "Item ID"
// @Success 200 {object} types.MessageResponse
// @Failure 400 {object} middleware.ErrorResponse "Item is currently borrowed"
// @Failure 403 {object} middleware.ErrorResponse "Only the owner can delete"
// @Router /marketplace/{id} [delete]
// @Security BearerAuth
func (h *MarketplaceHandler) DeleteItemHandler(c *gin.Context) {
	if err := h.marketplaceModel.DeleteItem(c.Request.Context(), c.Param("id"), middleware.GetUserID(c)); err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, types.MessageResponse{Message: "Item deleted successfully"})
}
