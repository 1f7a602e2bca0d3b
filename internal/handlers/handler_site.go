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

// siteHandler handles HTTP requests related to sites.
type siteHandler struct {
	siteService portssvc.SiteSvcFacade
}

func newSiteHandler(siteService portssvc.SiteSvcFacade) *siteHandler {
	return &siteHandler{siteService: siteService}
}

// createSite godoc
// @Summary Create a site
// @Tags sites
// @Accept  json
// @Produce  json
// @Param   site body dto.SaveSiteRequest true "Site"
// @Success 201 {object} domain.Site
// @Failure 400 {object} map[string]string "Invalid request"
// @Failure 409 {object} map[string]string "Duplicate site code"
// @Router /sites [post]
func (h *siteHandler) createSite(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	req := dto.SaveSiteRequest{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	site, err := h.siteService.CreateSite(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to create site", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create site"})
		return
	}

	c.JSON(http.StatusCreated, site)
}

// listSites godoc
// @Summary List sites
// @Tags sites
// @Produce  json
// @Success 200 {array} domain.Site
// @Router /sites [get]
func (h *siteHandler) listSites(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	sites, err := h.siteService.ListSites(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list sites", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list sites"})
		return
	}

	c.JSON(http.StatusOK, sites)
}

// updateSite godoc
// @Summary Update a site
// @Tags sites
// @Accept  json
// @Produce  json
// @Param   siteID path int true "Site ID"
// @Param   site body dto.SaveSiteRequest true "Site"
// @Success 200 {object} domain.Site
// @Failure 404 {object} map[string]string "Site not found"
// @Router /sites/{siteID} [put]
func (h *siteHandler) updateSite(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	siteID, ok := parseIDParam(c, "siteID")
	if !ok {
		return
	}

	req := dto.SaveSiteRequest{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	site, err := h.siteService.UpdateSite(c.Request.Context(), siteID, req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Site not found"})
		case errors.Is(err, apperrors.ErrDuplicate):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to update site", slog.String("error", err.Error()), slog.Int64("site_id", siteID))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update site"})
		}
		return
	}

	c.JSON(http.StatusOK, site)
}

// deleteSite godoc
// @Summary Delete a site
// @Tags sites
// @Produce  json
// @Param   siteID path int true "Site ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string "Site still referenced"
// @Failure 404 {object} map[string]string "Site not found"
// @Router /sites/{siteID} [delete]
func (h *siteHandler) deleteSite(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	siteID, ok := parseIDParam(c, "siteID")
	if !ok {
		return
	}

	if err := h.siteService.DeleteSite(c.Request.Context(), siteID); err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Site not found"})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to delete site", slog.String("error", err.Error()), slog.Int64("site_id", siteID))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete site"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Site deleted"})
}

// registerSiteRoutes registers site specific routes
func registerSiteRoutes(group *gin.RouterGroup, siteService portssvc.SiteSvcFacade) {
	handler := newSiteHandler(siteService)

	sites := group.Group("/sites")
	{
		sites.POST("", handler.createSite)
		sites.GET("", handler.listSites)
		sites.PUT("/:siteID", handler.updateSite)
		sites.DELETE("/:siteID", handler.deleteSite)
	}
}
