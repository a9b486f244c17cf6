package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/deudalibre/debt_payoff_app/internal/apperrors"
	portssvc "github.com/deudalibre/debt_payoff_app/internal/core/ports/services"
	"github.com/deudalibre/debt_payoff_app/internal/dto"
	"github.com/deudalibre/debt_payoff_app/internal/middleware"
	"github.com/deudalibre/debt_payoff_app/internal/utils"
	"github.com/gin-gonic/gin"
)

// plannerHandler handles HTTP requests for payoff projections.
type plannerHandler struct {
	plannerService portssvc.PlannerSvcFacade
	posthogClient  *utils.PosthogClientWrapper
}

// newPlannerHandler creates a new plannerHandler.
func newPlannerHandler(ps portssvc.PlannerSvcFacade, posthogClient *utils.PosthogClientWrapper) *plannerHandler {
	return &plannerHandler{
		plannerService: ps,
		posthogClient:  posthogClient,
	}
}

// registerPlannerRoutes registers routes for the payoff planner.
func registerPlannerRoutes(rg *gin.RouterGroup, plannerService portssvc.PlannerSvcFacade, posthogClient *utils.PosthogClientWrapper) {
	h := newPlannerHandler(plannerService, posthogClient)

	planner := rg.Group("/planner")
	{
		planner.POST("/simulate", h.simulatePayoff)
		planner.POST("/compare", h.compareStrategies)
		planner.POST("/lumpsum", h.allocateLumpSum)
	}
}

// respondPlannerError maps planner service errors onto HTTP statuses.
func respondPlannerError(c *gin.Context, logger *slog.Logger, err error, action string) {
	if errors.Is(err, apperrors.ErrValidation) {
		logger.Warn("Validation error in planner", slog.String("action", action), slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if errors.Is(err, apperrors.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Debt not found"})
		return
	}
	logger.Error("Planner service call failed", slog.String("action", action), slog.String("error", err.Error()))
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to " + action})
}

// simulatePayoff godoc
// @Summary Simulate debt payoff
// @Description Projects the user's active debts month by month under one strategy
// @Tags planner
// @Accept  json
// @Produce  json
// @Param   request body dto.SimulatePayoffRequest true "Simulation parameters"
// @Success 200 {object} dto.SimulationResponse
// @Failure 400 {object} map[string]string "Invalid input or no active debts"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to run simulation"
// @Security BearerAuth
// @Router /planner/simulate [post]
func (h *plannerHandler) simulatePayoff(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.SimulatePayoffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for SimulatePayoff", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	result, err := h.plannerService.SimulatePayoff(c.Request.Context(), userID, req)
	if err != nil {
		respondPlannerError(c, logger, err, "run simulation")
		return
	}

	middleware.PosthogEvent(c, h.posthogClient, "payoff_simulation_run", map[string]any{
		"strategy":     string(result.Strategy),
		"total_months": result.TotalMonths,
	})

	c.JSON(http.StatusOK, dto.SimulationResponse{Result: result})
}

// compareStrategies godoc
// @Summary Compare payoff strategies
// @Description Runs baseline, snowball and avalanche projections and reports the savings between the strategies
// @Tags planner
// @Accept  json
// @Produce  json
// @Param   request body dto.CompareStrategiesRequest true "Comparison parameters"
// @Success 200 {object} dto.ComparisonResponse
// @Failure 400 {object} map[string]string "Invalid input or no active debts"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to compare strategies"
// @Security BearerAuth
// @Router /planner/compare [post]
func (h *plannerHandler) compareStrategies(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CompareStrategiesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CompareStrategies", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	comparison, err := h.plannerService.CompareStrategies(c.Request.Context(), userID, req)
	if err != nil {
		respondPlannerError(c, logger, err, "compare strategies")
		return
	}

	middleware.PosthogEvent(c, h.posthogClient, "strategy_comparison_run", map[string]any{
		"best_strategy":     string(comparison.BestStrategy),
		"interest_saved":    comparison.InterestSaved,
		"months_difference": comparison.MonthsDifference,
	})

	c.JSON(http.StatusOK, dto.ComparisonResponse{Comparison: comparison})
}

// allocateLumpSum godoc
// @Summary Allocate a lump sum across debts
// @Description Distributes a one-time amount across the user's active debts by interest rate, highest first
// @Tags planner
// @Accept  json
// @Produce  json
// @Param   request body dto.AllocateLumpSumRequest true "Allocation parameters"
// @Success 200 {object} dto.LumpSumResponse
// @Failure 400 {object} map[string]string "Invalid input or no active debts"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to allocate lump sum"
// @Security BearerAuth
// @Router /planner/lumpsum [post]
func (h *plannerHandler) allocateLumpSum(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.AllocateLumpSumRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for AllocateLumpSum", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	result, err := h.plannerService.AllocateLumpSum(c.Request.Context(), userID, req)
	if err != nil {
		respondPlannerError(c, logger, err, "allocate lump sum")
		return
	}

	middleware.PosthogEvent(c, h.posthogClient, "lump_sum_allocated", map[string]any{
		"total_allocated": result.TotalAllocated,
		"accounts":        len(result.Allocations),
	})

	c.JSON(http.StatusOK, dto.LumpSumResponse{Result: result})
}

// singleDebtHandler handles the per-debt simulation nested under /debts.
type singleDebtHandler struct {
	plannerService portssvc.PlannerSvcFacade
}

// newSingleDebtHandler creates a new singleDebtHandler.
func newSingleDebtHandler(ps portssvc.PlannerSvcFacade) *singleDebtHandler {
	return &singleDebtHandler{plannerService: ps}
}

// simulateSingleDebt godoc
// @Summary Simulate a single debt
// @Description Contrasts one debt with and without an extra monthly contribution
// @Tags planner
// @Accept  json
// @Produce  json
// @Param   id path string true "Debt ID"
// @Param   request body dto.SimulateSingleDebtRequest true "Simulation parameters"
// @Success 200 {object} dto.SingleDebtResponse
// @Failure 400 {object} map[string]string "Invalid input or inactive debt"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Debt not found"
// @Failure 500 {object} map[string]string "Failed to run simulation"
// @Security BearerAuth
// @Router /debts/{id}/simulate [post]
func (h *singleDebtHandler) simulateSingleDebt(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	debtID := c.Param("id")

	var req dto.SimulateSingleDebtRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for SimulateSingleDebt", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	result, err := h.plannerService.SimulateSingleDebt(c.Request.Context(), userID, debtID, req)
	if err != nil {
		respondPlannerError(c, logger, err, "run simulation")
		return
	}

	c.JSON(http.StatusOK, dto.SingleDebtResponse{Result: result})
}
