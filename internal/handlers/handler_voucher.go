package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/munna98/stock-star/internal/apperrors"
	portssvc "github.com/munna98/stock-star/internal/core/ports/services"
	"github.com/munna98/stock-star/internal/dto"
	"github.com/munna98/stock-star/internal/middleware"
	"github.com/munna98/stock-star/internal/utils/pagination"
)

// voucherHandler handles HTTP requests related to vouchers.
type voucherHandler struct {
	voucherService portssvc.VoucherSvcFacade
}

// newVoucherHandler creates a new voucherHandler.
func newVoucherHandler(voucherService portssvc.VoucherSvcFacade) *voucherHandler {
	return &voucherHandler{
		voucherService: voucherService,
	}
}

func parseIDParam(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + name})
		return 0, false
	}
	return id, true
}

// postVoucher godoc
// @Summary Post a voucher
// @Description Creates a voucher with its lines, derives the stock movements and assigns the next transaction number
// @Tags vouchers
// @Accept  json
// @Produce  json
// @Param   voucher body dto.CreateVoucherRequest true "Voucher"
// @Success 201 {object} domain.Voucher
// @Failure 400 {object} map[string]string "Invalid request"
// @Failure 500 {object} map[string]string "Failed to post voucher"
// @Router /vouchers [post]
func (h *voucherHandler) postVoucher(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	createReq := dto.CreateVoucherRequest{}
	if err := c.ShouldBindJSON(&createReq); err != nil {
		logger.Error("Failed to bind JSON for postVoucher", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	voucher, err := h.voucherService.PostVoucher(c.Request.Context(), createReq)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error posting voucher", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to post voucher in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to post voucher"})
		}
		return
	}

	c.JSON(http.StatusCreated, voucher)
}

// getVoucher godoc
// @Summary Get a voucher
// @Description Retrieves a voucher with its lines by id
// @Tags vouchers
// @Produce  json
// @Param   voucherID path int true "Voucher ID"
// @Success 200 {object} domain.Voucher
// @Failure 404 {object} map[string]string "Voucher not found"
// @Router /vouchers/{voucherID} [get]
func (h *voucherHandler) getVoucher(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	voucherID, ok := parseIDParam(c, "voucherID")
	if !ok {
		return
	}

	voucher, err := h.voucherService.GetVoucher(c.Request.Context(), voucherID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Voucher not found"})
			return
		}
		logger.Error("Failed to get voucher from service", slog.String("error", err.Error()), slog.Int64("voucher_id", voucherID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve voucher"})
		return
	}

	c.JSON(http.StatusOK, voucher)
}

// listVouchers godoc
// @Summary List vouchers
// @Description Retrieves one page of the voucher listing, newest first
// @Tags vouchers
// @Produce  json
// @Param   page query int false "Page number (default 1)"
// @Param   limit query int false "Page size (default 10, max 100)"
// @Success 200 {object} dto.PaginatedResponse[domain.VoucherDisplay]
// @Failure 400 {object} map[string]string "Invalid pagination"
// @Router /vouchers [get]
func (h *voucherHandler) listVouchers(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	params, err := pagination.FromStrings(c.Query("page"), c.Query("limit"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	vouchers, total, err := h.voucherService.ListVouchers(c.Request.Context(), params)
	if err != nil {
		logger.Error("Failed to list vouchers", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list vouchers"})
		return
	}

	c.JSON(http.StatusOK, dto.NewPaginatedResponse(vouchers, total))
}

// updateVoucher godoc
// @Summary Update a voucher
// @Description Replaces a voucher's content, regenerating its lines and movements. The transaction number is preserved.
// @Tags vouchers
// @Accept  json
// @Produce  json
// @Param   voucherID path int true "Voucher ID"
// @Param   voucher body dto.UpdateVoucherRequest true "Voucher"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string "Invalid request"
// @Failure 404 {object} map[string]string "Voucher not found"
// @Router /vouchers/{voucherID} [put]
func (h *voucherHandler) updateVoucher(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	voucherID, ok := parseIDParam(c, "voucherID")
	if !ok {
		return
	}

	updateReq := dto.UpdateVoucherRequest{}
	if err := c.ShouldBindJSON(&updateReq); err != nil {
		logger.Error("Failed to bind JSON for updateVoucher", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if err := h.voucherService.UpdateVoucher(c.Request.Context(), voucherID, updateReq); err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Voucher not found"})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to update voucher in service", slog.String("error", err.Error()), slog.Int64("voucher_id", voucherID))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update voucher"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Voucher updated"})
}

// deleteVoucher godoc
// @Summary Delete a voucher
// @Description Removes a voucher with its lines and movements
// @Tags vouchers
// @Produce  json
// @Param   voucherID path int true "Voucher ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string "Voucher not found"
// @Router /vouchers/{voucherID} [delete]
func (h *voucherHandler) deleteVoucher(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	voucherID, ok := parseIDParam(c, "voucherID")
	if !ok {
		return
	}

	if err := h.voucherService.DeleteVoucher(c.Request.Context(), voucherID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Voucher not found"})
			return
		}
		logger.Error("Failed to delete voucher in service", slog.String("error", err.Error()), slog.Int64("voucher_id", voucherID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete voucher"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Voucher deleted"})
}

// listTransactionTypes godoc
// @Summary List transaction types
// @Description Retrieves the seeded transaction type vocabulary
// @Tags vouchers
// @Produce  json
// @Success 200 {array} domain.TransactionType
// @Router /transaction-types [get]
func (h *voucherHandler) listTransactionTypes(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	types, err := h.voucherService.ListTransactionTypes(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list transaction types", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list transaction types"})
		return
	}

	c.JSON(http.StatusOK, types)
}

// registerVoucherRoutes registers voucher specific routes
func registerVoucherRoutes(group *gin.RouterGroup, voucherService portssvc.VoucherSvcFacade) {
	handler := newVoucherHandler(voucherService)

	group.GET("/transaction-types", handler.listTransactionTypes)

	vouchers := group.Group("/vouchers")
	{
		vouchers.POST("", handler.postVoucher)
		vouchers.GET("", handler.listVouchers)
		vouchers.GET("/:voucherID", handler.getVoucher)
		vouchers.PUT("/:voucherID", handler.updateVoucher)
		vouchers.DELETE("/:voucherID", handler.deleteVoucher)
	}
}
