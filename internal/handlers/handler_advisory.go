package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/smallbooks/smallbooks/internal/core/ports/services"
	"github.com/smallbooks/smallbooks/internal/dto"
	"github.com/smallbooks/smallbooks/internal/middleware"
)

// advisoryHandler handles HTTP requests for the assistant features. These
// endpoints never fail with a 5xx because of a provider problem; a
// degraded provider just yields an empty result.
type advisoryHandler struct {
	advisoryService portssvc.AdvisorySvcFacade
}

// newAdvisoryHandler creates a new advisoryHandler.
func newAdvisoryHandler(advisoryService portssvc.AdvisorySvcFacade) *advisoryHandler {
	return &advisoryHandler{
		advisoryService: advisoryService,
	}
}

func (h *advisoryHandler) suggestAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.SuggestAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for SuggestAccount", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	account, ok := h.advisoryService.SuggestAccount(c.Request.Context(), req.Description, req.Side)
	if !ok {
		c.JSON(http.StatusOK, dto.SuggestAccountResponse{Suggestion: nil})
		return
	}

	response := dto.ToAccountResponse(account)
	c.JSON(http.StatusOK, dto.SuggestAccountResponse{Suggestion: &response})
}

func (h *advisoryHandler) getAdvice(c *gin.Context) {
	text, ok := h.advisoryService.Advice(c.Request.Context())
	c.JSON(http.StatusOK, dto.AdviceResponse{Available: ok, Advice: text})
}

// registerAdvisoryRoutes registers assistant specific routes
func registerAdvisoryRoutes(group *gin.RouterGroup, advisoryService portssvc.AdvisorySvcFacade) {
	advisoryHandler := newAdvisoryHandler(advisoryService)

	assistant := group.Group("/assistant")
	{
		assistant.POST("/suggest-account", advisoryHandler.suggestAccount)
		assistant.GET("/advice", advisoryHandler.getAdvice)
	}
}
