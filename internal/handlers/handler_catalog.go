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

// catalogHandler handles HTTP requests for the brand and model lookup tables.
type catalogHandler struct {
	catalogService portssvc.CatalogSvcFacade
}

func newCatalogHandler(catalogService portssvc.CatalogSvcFacade) *catalogHandler {
	return &catalogHandler{catalogService: catalogService}
}

func (h *catalogHandler) handleCatalogErr(c *gin.Context, err error, entity string) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": entity + " not found"})
	case errors.Is(err, apperrors.ErrDuplicate):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		logger.Error("Catalog operation failed", slog.String("entity", entity), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process " + entity})
	}
}

// createBrand godoc
// @Summary Create a brand
// @Tags catalog
// @Accept  json
// @Produce  json
// @Param   brand body dto.SaveBrandRequest true "Brand"
// @Success 201 {object} domain.Brand
// @Router /brands [post]
func (h *catalogHandler) createBrand(c *gin.Context) {
	req := dto.SaveBrandRequest{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	brand, err := h.catalogService.CreateBrand(c.Request.Context(), req)
	if err != nil {
		h.handleCatalogErr(c, err, "brand")
		return
	}
	c.JSON(http.StatusCreated, brand)
}

// listBrands godoc
// @Summary List brands
// @Tags catalog
// @Produce  json
// @Success 200 {array} domain.Brand
// @Router /brands [get]
func (h *catalogHandler) listBrands(c *gin.Context) {
	brands, err := h.catalogService.ListBrands(c.Request.Context())
	if err != nil {
		h.handleCatalogErr(c, err, "brand")
		return
	}
	c.JSON(http.StatusOK, brands)
}

// updateBrand godoc
// @Summary Rename a brand
// @Tags catalog
// @Accept  json
// @Produce  json
// @Param   brandID path int true "Brand ID"
// @Param   brand body dto.SaveBrandRequest true "Brand"
// @Success 200 {object} domain.Brand
// @Router /brands/{brandID} [put]
func (h *catalogHandler) updateBrand(c *gin.Context) {
	brandID, ok := parseIDParam(c, "brandID")
	if !ok {
		return
	}
	req := dto.SaveBrandRequest{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	brand, err := h.catalogService.UpdateBrand(c.Request.Context(), brandID, req)
	if err != nil {
		h.handleCatalogErr(c, err, "brand")
		return
	}
	c.JSON(http.StatusOK, brand)
}

// deleteBrand godoc
// @Summary Delete a brand
// @Tags catalog
// @Produce  json
// @Param   brandID path int true "Brand ID"
// @Success 200 {object} map[string]string
// @Router /brands/{brandID} [delete]
func (h *catalogHandler) deleteBrand(c *gin.Context) {
	brandID, ok := parseIDParam(c, "brandID")
	if !ok {
		return
	}
	if err := h.catalogService.DeleteBrand(c.Request.Context(), brandID); err != nil {
		h.handleCatalogErr(c, err, "brand")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Brand deleted"})
}

// createModel godoc
// @Summary Create a model
// @Tags catalog
// @Accept  json
// @Produce  json
// @Param   model body dto.SaveModelRequest true "Model"
// @Success 201 {object} domain.Model
// @Router /models [post]
func (h *catalogHandler) createModel(c *gin.Context) {
	req := dto.SaveModelRequest{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	model, err := h.catalogService.CreateModel(c.Request.Context(), req)
	if err != nil {
		h.handleCatalogErr(c, err, "model")
		return
	}
	c.JSON(http.StatusCreated, model)
}

// listModels godoc
// @Summary List models
// @Tags catalog
// @Produce  json
// @Success 200 {array} domain.Model
// @Router /models [get]
func (h *catalogHandler) listModels(c *gin.Context) {
	models, err := h.catalogService.ListModels(c.Request.Context())
	if err != nil {
		h.handleCatalogErr(c, err, "model")
		return
	}
	c.JSON(http.StatusOK, models)
}

// updateModel godoc
// @Summary Rename a model
// @Tags catalog
// @Accept  json
// @Produce  json
// @Param   modelID path int true "Model ID"
// @Param   model body dto.SaveModelRequest true "Model"
// @Success 200 {object} domain.Model
// @Router /models/{modelID} [put]
func (h *catalogHandler) updateModel(c *gin.Context) {
	modelID, ok := parseIDParam(c, "modelID")
	if !ok {
		return
	}
	req := dto.SaveModelRequest{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	model, err := h.catalogService.UpdateModel(c.Request.Context(), modelID, req)
	if err != nil {
		h.handleCatalogErr(c, err, "model")
		return
	}
	c.JSON(http.StatusOK, model)
}

// deleteModel godoc
// @Summary Delete a model
// @Tags catalog
// @Produce  json
// @Param   modelID path int true "Model ID"
// @Success 200 {object} map[string]string
// @Router /models/{modelID} [delete]
func (h *catalogHandler) deleteModel(c *gin.Context) {
	modelID, ok := parseIDParam(c, "modelID")
	if !ok {
		return
	}
	if err := h.catalogService.DeleteModel(c.Request.Context(), modelID); err != nil {
		h.handleCatalogErr(c, err, "model")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Model deleted"})
}

// registerCatalogRoutes registers brand and model routes
func registerCatalogRoutes(group *gin.RouterGroup, catalogService portssvc.CatalogSvcFacade) {
	handler := newCatalogHandler(catalogService)

	brands := group.Group("/brands")
	{
		brands.POST("", handler.createBrand)
		brands.GET("", handler.listBrands)
		brands.PUT("/:brandID", handler.updateBrand)
		brands.DELETE("/:brandID", handler.deleteBrand)
	}

	models := group.Group("/models")
	{
		models.POST("", handler.createModel)
		models.GET("", handler.listModels)
		models.PUT("/:modelID", handler.updateModel)
		models.DELETE("/:modelID", handler.deleteModel)
	}
}
