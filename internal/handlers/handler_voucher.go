package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/smallbooks/smallbooks/internal/apperrors"
	portssvc "github.com/smallbooks/smallbooks/internal/core/ports/services"
	"github.com/smallbooks/smallbooks/internal/dto"
	"github.com/smallbooks/smallbooks/internal/middleware"
)

// voucherHandler handles HTTP requests related to the voucher log.
type voucherHandler struct {
	voucherService portssvc.VoucherSvcFacade
}

// newVoucherHandler creates a new voucherHandler.
func newVoucherHandler(voucherService portssvc.VoucherSvcFacade) *voucherHandler {
	return &voucherHandler{
		voucherService: voucherService,
	}
}

func (h *voucherHandler) createVoucher(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateVoucherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for CreateVoucher", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	voucher, err := h.voucherService.CreateVoucher(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			logger.Warn("Validation error creating voucher", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrImbalanced):
			logger.Warn("Rejected imbalanced voucher", slog.String("error", err.Error()))
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrNotFound):
			logger.Warn("Voucher references unknown account", slog.String("error", err.Error()))
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to create voucher in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create voucher"})
		}
		return
	}

	logger.Info("Voucher created successfully", slog.String("voucher_id", voucher.VoucherID))
	c.JSON(http.StatusCreated, dto.ToVoucherResponse(voucher))
}

func (h *voucherHandler) getVoucher(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	voucherID := c.Param("voucherID")

	voucher, err := h.voucherService.GetVoucherByID(c.Request.Context(), voucherID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Voucher not found", slog.String("voucher_id", voucherID))
			c.JSON(http.StatusNotFound, gin.H{"error": "Voucher not found"})
			return
		}
		logger.Error("Failed to get voucher from service", slog.String("error", err.Error()), slog.String("voucher_id", voucherID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve voucher"})
		return
	}

	c.JSON(http.StatusOK, dto.ToVoucherResponse(voucher))
}

func (h *voucherHandler) listVouchers(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListVouchersParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Invalid query parameters for ListVouchers", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters"})
		return
	}

	page, err := h.voucherService.ListVouchers(c.Request.Context(), params)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Invalid pagination token", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to list vouchers from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve vouchers"})
		return
	}

	c.JSON(http.StatusOK, page)
}

func (h *voucherHandler) reverseVoucher(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	voucherID := c.Param("voucherID")

	reversal, err := h.voucherService.ReverseVoucher(c.Request.Context(), voucherID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Voucher not found for reversal", slog.String("voucher_id", voucherID))
			c.JSON(http.StatusNotFound, gin.H{"error": "Voucher not found"})
			return
		}
		logger.Error("Failed to reverse voucher in service", slog.String("error", err.Error()), slog.String("voucher_id", voucherID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reverse voucher"})
		return
	}

	logger.Info("Voucher reversed successfully",
		slog.String("original_voucher_id", voucherID),
		slog.String("reversal_voucher_id", reversal.VoucherID))
	c.JSON(http.StatusCreated, dto.ToVoucherResponse(reversal))
}

// registerVoucherRoutes registers voucher specific routes
func registerVoucherRoutes(group *gin.RouterGroup, voucherService portssvc.VoucherSvcFacade) {
	voucherHandler := newVoucherHandler(voucherService)

	vouchers := group.Group("/vouchers")
	{
		vouchers.POST("", voucherHandler.createVoucher)
		vouchers.GET("", voucherHandler.listVouchers)
		vouchers.GET("/:voucherID", voucherHandler.getVoucher)
		vouchers.POST("/:voucherID/reverse", voucherHandler.reverseVoucher)
	}
}
