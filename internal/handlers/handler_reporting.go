package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/smallbooks/smallbooks/internal/core/ports/services"
	"github.com/smallbooks/smallbooks/internal/dto"
	"github.com/smallbooks/smallbooks/internal/middleware"
)

// reportingHandler handles HTTP requests for derived reports.
type reportingHandler struct {
	reportingService portssvc.ReportingSvcFacade
}

// newReportingHandler creates a new reportingHandler.
func newReportingHandler(reportingService portssvc.ReportingSvcFacade) *reportingHandler {
	return &reportingHandler{
		reportingService: reportingService,
	}
}

func (h *reportingHandler) getTrialBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	rows, err := h.reportingService.TrialBalance(c.Request.Context())
	if err != nil {
		logger.Error("Failed to compute trial balance", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute trial balance"})
		return
	}

	c.JSON(http.StatusOK, dto.ToTrialBalanceResponse(rows))
}

func (h *reportingHandler) getFinancialStatements(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	statements, err := h.reportingService.FinancialStatements(c.Request.Context())
	if err != nil {
		logger.Error("Failed to compose financial statements", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compose financial statements"})
		return
	}

	c.JSON(http.StatusOK, dto.ToFinancialStatementsResponse(statements))
}

// registerReportingRoutes registers reporting specific routes
func registerReportingRoutes(group *gin.RouterGroup, reportingService portssvc.ReportingSvcFacade) {
	reportingHandler := newReportingHandler(reportingService)

	reports := group.Group("/reports")
	{
		reports.GET("/trial-balance", reportingHandler.getTrialBalance)
		reports.GET("/financial-statements", reportingHandler.getFinancialStatements)
	}
}
