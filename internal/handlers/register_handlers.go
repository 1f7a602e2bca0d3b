package handlers

import (
	"github.com/gin-gonic/gin"
	portssvc "github.com/munna98/stock-star/internal/core/ports/services"
	"github.com/munna98/stock-star/internal/platform/config"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {

	r.GET("/", getHome)

	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	setupAPIV1Routes(r, services)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	service *portssvc.ServiceContainer,
) {
	v1 := r.Group("/api/v1")

	registerDashboardRoutes(v1, service.Dashboard)
	registerSiteRoutes(v1, service.Site)
	registerItemRoutes(v1, service.Item)
	registerCatalogRoutes(v1, service.Catalog)
	registerVoucherRoutes(v1, service.Voucher)
	registerStockRoutes(v1, service.Balance, service.Ledger)
}
