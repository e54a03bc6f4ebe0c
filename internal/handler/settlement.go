package handler

import (
	"net/http"

	"sportsbook-settlement/internal/model"

	"github.com/gin-gonic/gin"
)

// TriggerSettlement
// @Summary Run settlement
// @Description Completes every book whose outcomes are all resolved and settles its bets.
// @Description Served on the cron route (shared secret) and the admin route (admin identity).
// @Tags settlement
// @Produce json
// @Param X-Cron-Secret header string false "Cron shared secret (cron route)"
// @Param X-User-ID header string false "Caller id (admin route)"
// @Param X-User-Role header string false "Caller role (admin route)" Enums(admin)
// @Success 200 {object} model.SettlementTriggerResponse
// @Failure 401 {object} model.ErrorResponse "Unauthorized"
// @Failure 403 {object} model.ErrorResponse "Forbidden"
// @Failure 500 {object} model.ErrorResponse "Internal error"
// @Router /settlement/cron [post]
// @Router /admin/settlement [post]
func (h *Handler) TriggerSettlement(c *gin.Context) {
	report, err := h.settlementScheduler.CheckAndSettleCompletedBooks(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, model.SettlementTriggerResponse{
		Success: true,
		Message: "Settlement run completed",
		Counts:  report,
	})
}

// GetSettlementStatus
// @Summary Last settlement run
// @Tags settlement
// @Produce json
// @Param X-User-ID header string true "Caller id"
// @Param X-User-Role header string true "Caller role" Enums(admin)
// @Success 200 {object} model.SettlementStatusResponse
// @Router /admin/settlement/status [get]
func (h *Handler) GetSettlementStatus(c *gin.Context) {
	c.JSON(http.StatusOK, model.SettlementStatusResponse{LastRun: h.settlementScheduler.LastRun()})
}

// SetOutcomeResult
// @Summary Set an outcome result
// @Description PENDING to WON/LOST/VOID resolves the outcome. Changing a resolved result is a
// @Description correction: bets already settled are reversed and settled again.
// @Tags outcomes
// @Accept json
// @Produce json
// @Param X-User-ID header string true "Caller id"
// @Param X-User-Role header string true "Caller role" Enums(admin)
// @Param id path string true "Outcome ID"
// @Param result body model.SetResultRequest true "New result"
// @Success 200 {object} model.Resolution
// @Failure 400 {object} model.ErrorResponse "Invalid result"
// @Failure 404 {object} model.ErrorResponse "Outcome not found"
// @Failure 409 {object} model.ErrorResponse "Reopen or concurrent change"
// @Router /admin/outcomes/{id}/result [put]
func (h *Handler) SetOutcomeResult(c *gin.Context) {
	var req model.SetResultRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}

	resolution, err := h.outcomeResolver.SetResult(c.Request.Context(), c.Param("id"), req.Result)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, resolution)
}
