package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/munna98/stock-star/internal/apperrors"
	portssvc "github.com/munna98/stock-star/internal/core/ports/services"
	"github.com/munna98/stock-star/internal/dto"
	"github.com/munna98/stock-star/internal/middleware"
)

// itemHandler handles HTTP requests related to items.
type itemHandler struct {
	itemService portssvc.ItemSvcFacade
}

func newItemHandler(itemService portssvc.ItemSvcFacade) *itemHandler {
	return &itemHandler{itemService: itemService}
}

// createItem godoc
// @Summary Create an item
// @Tags items
// @Accept  json
// @Produce  json
// @Param   item body dto.SaveItemRequest true "Item"
// @Success 201 {object} domain.Item
// @Failure 400 {object} map[string]string "Invalid request"
// @Failure 409 {object} map[string]string "Duplicate item code"
// @Router /items [post]
func (h *itemHandler) createItem(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	req := dto.SaveItemRequest{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	item, err := h.itemService.CreateItem(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrDuplicate):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to create item", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create item"})
		}
		return
	}

	c.JSON(http.StatusCreated, item)
}

// listItems godoc
// @Summary List items
// @Description Retrieves all items with their brand and model names resolved
// @Tags items
// @Produce  json
// @Success 200 {array} domain.Item
// @Router /items [get]
func (h *itemHandler) listItems(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	items, err := h.itemService.ListItems(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list items", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list items"})
		return
	}

	c.JSON(http.StatusOK, items)
}

// updateItem godoc
// @Summary Update an item
// @Tags items
// @Accept  json
// @Produce  json
// @Param   itemID path int true "Item ID"
// @Param   item body dto.SaveItemRequest true "Item"
// @Success 200 {object} domain.Item
// @Failure 404 {object} map[string]string "Item not found"
// @Router /items/{itemID} [put]
func (h *itemHandler) updateItem(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	itemID, ok := parseIDParam(c, "itemID")
	if !ok {
		return
	}

	req := dto.SaveItemRequest{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	item, err := h.itemService.UpdateItem(c.Request.Context(), itemID, req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
		case errors.Is(err, apperrors.ErrDuplicate):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to update item", slog.String("error", err.Error()), slog.Int64("item_id", itemID))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update item"})
		}
		return
	}

	c.JSON(http.StatusOK, item)
}

// deleteItem godoc
// @Summary Delete an item
// @Tags items
// @Produce  json
// @Param   itemID path int true "Item ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string "Item still referenced"
// @Failure 404 {object} map[string]string "Item not found"
// @Router /items/{itemID} [delete]
func (h *itemHandler) deleteItem(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	itemID, ok := parseIDParam(c, "itemID")
	if !ok {
		return
	}

	if err := h.itemService.DeleteItem(c.Request.Context(), itemID); err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to delete item", slog.String("error", err.Error()), slog.Int64("item_id", itemID))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete item"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Item deleted"})
}

// registerItemRoutes registers item specific routes
func registerItemRoutes(group *gin.RouterGroup, itemService portssvc.ItemSvcFacade) {
	handler := newItemHandler(itemService)

	items := group.Group("/items")
	{
		items.POST("", handler.createItem)
		items.GET("", handler.listItems)
		items.PUT("/:itemID", handler.updateItem)
		items.DELETE("/:itemID", handler.deleteItem)
	}
}
