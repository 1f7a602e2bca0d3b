package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/munna98/stock-star/internal/core/ports/services"
	"github.com/munna98/stock-star/internal/middleware"
)

// dashboardHandler serves the landing view counters.
type dashboardHandler struct {
	dashboardService portssvc.DashboardSvcFacade
}

func newDashboardHandler(dashboardService portssvc.DashboardSvcFacade) *dashboardHandler {
	return &dashboardHandler{dashboardService: dashboardService}
}

// getStats godoc
// @Summary Get dashboard statistics
// @Description Returns active item and site counts plus the number of vouchers posted in the last seven days
// @Tags dashboard
// @Produce  json
// @Success 200 {object} domain.DashboardStats
// @Router /dashboard/stats [get]
func (h *dashboardHandler) getStats(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	stats, err := h.dashboardService.GetStats(c.Request.Context())
	if err != nil {
		logger.Error("Failed to get dashboard stats", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get dashboard stats"})
		return
	}

	c.JSON(http.StatusOK, stats)
}

// registerDashboardRoutes registers dashboard routes
func registerDashboardRoutes(group *gin.RouterGroup, dashboardService portssvc.DashboardSvcFacade) {
	dashboard := group.Group("/dashboard")
	dashboard.GET("/stats", newDashboardHandler(dashboardService).getStats)
}
