package handlers

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/munna98/stock-star/internal/core/domain"
	portssvc "github.com/munna98/stock-star/internal/core/ports/services"
	"github.com/munna98/stock-star/internal/dto"
	"github.com/munna98/stock-star/internal/middleware"
	"github.com/munna98/stock-star/internal/utils/pagination"
)

// stockHandler handles HTTP requests for balance views and the movement
// ledger.
type stockHandler struct {
	balanceService portssvc.BalanceSvcFacade
	ledgerService  portssvc.LedgerSvcFacade
}

// newStockHandler creates a new stockHandler.
func newStockHandler(balanceService portssvc.BalanceSvcFacade, ledgerService portssvc.LedgerSvcFacade) *stockHandler {
	return &stockHandler{
		balanceService: balanceService,
		ledgerService:  ledgerService,
	}
}

func parseOptionalID(c *gin.Context, name string) (*int64, bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, true
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + name})
		return nil, false
	}
	return &id, true
}

func parseOptionalDate(c *gin.Context, name string) (*time.Time, bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, true
	}
	t, err := time.Parse(dto.DateFormat, raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + name + ", expected " + dto.DateFormat})
		return nil, false
	}
	return &t, true
}

// getBalance godoc
// @Summary Get the balance of one site/item pair
// @Description Returns the net stock balance for a single site and item, zero if the pair has no movements
// @Tags stock
// @Produce  json
// @Param   siteID query int true "Site ID"
// @Param   itemID query int true "Item ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string "Missing or invalid ids"
// @Router /stock/balance [get]
func (h *stockHandler) getBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	siteID, err := strconv.ParseInt(c.Query("siteID"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid siteID"})
		return
	}
	itemID, err := strconv.ParseInt(c.Query("itemID"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid itemID"})
		return
	}

	balance, err := h.balanceService.GetBalance(c.Request.Context(), siteID, itemID)
	if err != nil {
		logger.Error("Failed to get balance", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get balance"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"siteID": siteID, "itemID": itemID, "balance": balance})
}

// listBalances godoc
// @Summary List stock balances
// @Description Retrieves one page of the global balance listing, zero-balance pairs excluded, ordered by site then item name
// @Tags stock
// @Produce  json
// @Param   itemName query string false "Substring filter on item name"
// @Param   siteID query int false "Site filter"
// @Param   page query int false "Page number (default 1)"
// @Param   limit query int false "Page size (default 10, max 100)"
// @Success 200 {object} dto.PaginatedResponse[domain.StockBalance]
// @Failure 400 {object} map[string]string "Invalid filter or pagination"
// @Router /stock/balances [get]
func (h *stockHandler) listBalances(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	params, err := pagination.FromStrings(c.Query("page"), c.Query("limit"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	siteID, ok := parseOptionalID(c, "siteID")
	if !ok {
		return
	}

	filter := domain.BalanceFilter{
		ItemName: c.Query("itemName"),
		SiteID:   siteID,
	}

	balances, total, err := h.balanceService.ListBalances(c.Request.Context(), filter, params)
	if err != nil {
		logger.Error("Failed to list balances", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list balances"})
		return
	}

	c.JSON(http.StatusOK, dto.NewPaginatedResponse(balances, total))
}

// listItemBalances godoc
// @Summary List one item's balances across sites
// @Description Returns the item's non-zero balances per site, ordered by site name
// @Tags stock
// @Produce  json
// @Param   itemID path int true "Item ID"
// @Success 200 {array} domain.StockBalance
// @Router /stock/balances/item/{itemID} [get]
func (h *stockHandler) listItemBalances(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	itemID, ok := parseIDParam(c, "itemID")
	if !ok {
		return
	}

	balances, err := h.balanceService.ListItemBalances(c.Request.Context(), itemID)
	if err != nil {
		logger.Error("Failed to list item balances", slog.String("error", err.Error()), slog.Int64("item_id", itemID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list item balances"})
		return
	}

	c.JSON(http.StatusOK, balances)
}

// listSiteBalances godoc
// @Summary List one site's balances across items
// @Description Returns the site's non-zero balances per item, ordered by item name
// @Tags stock
// @Produce  json
// @Param   siteID path int true "Site ID"
// @Success 200 {array} domain.StockBalance
// @Router /stock/balances/site/{siteID} [get]
func (h *stockHandler) listSiteBalances(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	siteID, ok := parseIDParam(c, "siteID")
	if !ok {
		return
	}

	balances, err := h.balanceService.ListSiteBalances(c.Request.Context(), siteID)
	if err != nil {
		logger.Error("Failed to list site balances", slog.String("error", err.Error()), slog.Int64("site_id", siteID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list site balances"})
		return
	}

	c.JSON(http.StatusOK, balances)
}

// getMovementHistory godoc
// @Summary Get the stock movement ledger
// @Description Retrieves one page of the chronological movement history. When filtered to a single item, each row carries a running balance that stays continuous across pages.
// @Tags stock
// @Produce  json
// @Param   itemID query int false "Item filter"
// @Param   siteID query int false "Site filter"
// @Param   fromDate query string false "Inclusive start date (YYYY-MM-DD)"
// @Param   toDate query string false "Inclusive end date (YYYY-MM-DD)"
// @Param   page query int false "Page number (default 1)"
// @Param   limit query int false "Page size (default 10, max 100)"
// @Success 200 {object} dto.PaginatedResponse[domain.MovementRecord]
// @Failure 400 {object} map[string]string "Invalid filter or pagination"
// @Router /stock/movements [get]
func (h *stockHandler) getMovementHistory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	params, err := pagination.FromStrings(c.Query("page"), c.Query("limit"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	itemID, ok := parseOptionalID(c, "itemID")
	if !ok {
		return
	}
	siteID, ok := parseOptionalID(c, "siteID")
	if !ok {
		return
	}
	from, ok := parseOptionalDate(c, "fromDate")
	if !ok {
		return
	}
	to, ok := parseOptionalDate(c, "toDate")
	if !ok {
		return
	}

	filter := domain.MovementFilter{ItemID: itemID, SiteID: siteID, From: from, To: to}

	records, total, err := h.ledgerService.GetMovementHistory(c.Request.Context(), filter, params)
	if err != nil {
		logger.Error("Failed to get movement history", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get movement history"})
		return
	}

	c.JSON(http.StatusOK, dto.NewPaginatedResponse(records, total))
}

// registerStockRoutes registers balance and ledger routes
func registerStockRoutes(group *gin.RouterGroup, balanceService portssvc.BalanceSvcFacade, ledgerService portssvc.LedgerSvcFacade) {
	handler := newStockHandler(balanceService, ledgerService)

	stock := group.Group("/stock")
	{
		stock.GET("/balance", handler.getBalance)
		stock.GET("/balances", handler.listBalances)
		stock.GET("/balances/item/:itemID", handler.listItemBalances)
		stock.GET("/balances/site/:siteID", handler.listSiteBalances)
		stock.GET("/movements", handler.getMovementHistory)
	}
}
