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

// ledgerHandler handles HTTP requests for the per-account general ledger.
type ledgerHandler struct {
	chartService  portssvc.ChartSvcFacade
	ledgerService portssvc.LedgerSvcFacade
}

// newLedgerHandler creates a new ledgerHandler.
func newLedgerHandler(chartService portssvc.ChartSvcFacade, ledgerService portssvc.LedgerSvcFacade) *ledgerHandler {
	return &ledgerHandler{
		chartService:  chartService,
		ledgerService: ledgerService,
	}
}

func (h *ledgerHandler) getLedger(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID := c.Param("accountID")

	account, err := h.chartService.GetAccountByID(c.Request.Context(), accountID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Account not found for ledger", slog.String("account_id", accountID))
			c.JSON(http.StatusNotFound, gin.H{"error": "Account not found"})
			return
		}
		logger.Error("Failed to get account for ledger", slog.String("error", err.Error()), slog.String("account_id", accountID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve ledger"})
		return
	}

	lines, err := h.ledgerService.LedgerForAccount(c.Request.Context(), accountID)
	if err != nil {
		logger.Error("Failed to project ledger in service", slog.String("error", err.Error()), slog.String("account_id", accountID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve ledger"})
		return
	}

	logger.Debug("Ledger projected successfully", slog.String("account_id", accountID), slog.Int("line_count", len(lines)))
	c.JSON(http.StatusOK, dto.ToLedgerResponse(account, lines))
}

// registerLedgerRoutes registers ledger specific routes under accounts
func registerLedgerRoutes(group *gin.RouterGroup, chartService portssvc.ChartSvcFacade, ledgerService portssvc.LedgerSvcFacade) {
	ledgerHandler := newLedgerHandler(chartService, ledgerService)

	group.GET("/accounts/:accountID/ledger", ledgerHandler.getLedger)
}
