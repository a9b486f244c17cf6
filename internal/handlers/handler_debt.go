package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/deudalibre/debt_payoff_app/internal/apperrors"
	portssvc "github.com/deudalibre/debt_payoff_app/internal/core/ports/services"
	"github.com/deudalibre/debt_payoff_app/internal/dto"
	"github.com/deudalibre/debt_payoff_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// debtHandler handles HTTP requests related to debts.
type debtHandler struct {
	debtService portssvc.DebtSvcFacade
}

// newDebtHandler creates a new debtHandler.
func newDebtHandler(ds portssvc.DebtSvcFacade) *debtHandler {
	return &debtHandler{
		debtService: ds,
	}
}

// RegisterDebtRoutes registers routes related to debts and their nested
// payment and simulation resources.
func RegisterDebtRoutes(rg *gin.RouterGroup, debtService portssvc.DebtSvcFacade, paymentService portssvc.PaymentSvcFacade, plannerService portssvc.PlannerSvcFacade) {
	h := newDebtHandler(debtService)
	ph := newPaymentHandler(paymentService)
	sh := newSingleDebtHandler(plannerService)

	debts := rg.Group("/debts")
	{
		debts.POST("", h.createDebt)
		debts.GET("/:id", h.getDebt)
		debts.GET("", h.listDebts)
		debts.PUT("/:id", h.updateDebt)
		debts.DELETE("/:id", h.deleteDebt)

		debts.POST("/:id/payments", ph.recordPayment)
		debts.GET("/:id/payments", ph.listPayments)

		debts.POST("/:id/simulate", sh.simulateSingleDebt)
	}
}

// createDebt godoc
// @Summary Create a new debt
// @Description Creates a new debt for the logged-in user
// @Tags debts
// @Accept  json
// @Produce  json
// @Param   debt body dto.CreateDebtRequest true "Debt details"
// @Success 201 {object} dto.DebtResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to create debt"
// @Security BearerAuth
// @Router /debts [post]
func (h *debtHandler) createDebt(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateDebtRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateDebt", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	logger = logger.With(slog.String("user_id", userID))
	logger.Info("Received request to create debt", slog.String("debt_name", req.Name), slog.String("currency_code", req.CurrencyCode))

	newDebt, err := h.debtService.CreateDebt(c.Request.Context(), userID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error creating debt", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else if errors.Is(err, apperrors.ErrNotFound) { // e.g. currency not in the directory
			logger.Warn("Dependency not found creating debt", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create debt in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create debt"})
		}
		return
	}

	logger.Info("Debt created successfully", slog.String("debt_id", newDebt.DebtID))
	c.JSON(http.StatusCreated, dto.ToDebtResponse(newDebt))
}

// getDebt godoc
// @Summary Get a debt by ID
// @Description Retrieves details for a specific debt owned by the logged-in user
// @Tags debts
// @Produce  json
// @Param   id path string true "Debt ID"
// @Success 200 {object} dto.DebtResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Debt not found"
// @Failure 500 {object} map[string]string "Failed to retrieve debt"
// @Security BearerAuth
// @Router /debts/{id} [get]
func (h *debtHandler) getDebt(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	debtID := c.Param("id")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	debt, err := h.debtService.GetDebtByID(c.Request.Context(), userID, debtID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Debt not found"})
		} else {
			logger.Error("Failed to get debt from service", slog.String("error", err.Error()), slog.String("debt_id", debtID))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve debt"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToDebtResponse(debt))
}

// listDebts godoc
// @Summary List debts for the logged-in user
// @Description Retrieves the list of debts owned by the logged-in user, active first
// @Tags debts
// @Produce  json
// @Param   activeOnly query bool false "Exclude deactivated debts" default(true)
// @Success 200 {object} dto.ListDebtsResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list debts"
// @Security BearerAuth
// @Router /debts [get]
func (h *debtHandler) listDebts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var params dto.ListDebtsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	debts, err := h.debtService.ListDebts(c.Request.Context(), userID, params.ActiveOnly)
	if err != nil {
		logger.Error("Failed to list debts from service", slog.String("error", err.Error()), slog.String("user_id", userID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list debts"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListDebtsResponse(debts))
}

// updateDebt godoc
// @Summary Update a debt
// @Description Updates a debt's details (name, balance, rate, payment, limit)
// @Tags debts
// @Accept  json
// @Produce  json
// @Param   id path string true "Debt ID to update"
// @Param   debt body dto.UpdateDebtRequest true "Debt details to update"
// @Success 200 {object} dto.DebtResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Debt not found"
// @Failure 500 {object} map[string]string "Failed to update debt"
// @Security BearerAuth
// @Router /debts/{id} [put]
func (h *debtHandler) updateDebt(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	debtID := c.Param("id")

	var req dto.UpdateDebtRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateDebt", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	logger = logger.With(slog.String("debt_id", debtID), slog.String("user_id", userID))

	updatedDebt, err := h.debtService.UpdateDebt(c.Request.Context(), userID, debtID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Debt not found"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error updating debt", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to update debt in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update debt"})
		}
		return
	}

	logger.Info("Debt updated successfully")
	c.JSON(http.StatusOK, dto.ToDebtResponse(updatedDebt))
}

// deleteDebt godoc
// @Summary Delete a debt
// @Description Marks a debt as inactive (soft delete)
// @Tags debts
// @Produce  json
// @Param   id path string true "Debt ID to delete"
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Debt not found"
// @Failure 409 {object} map[string]string "Conflict (e.g., already inactive)"
// @Failure 500 {object} map[string]string "Failed to delete debt"
// @Security BearerAuth
// @Router /debts/{id} [delete]
func (h *debtHandler) deleteDebt(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	debtID := c.Param("id")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	logger = logger.With(slog.String("debt_id", debtID), slog.String("user_id", userID))

	if err := h.debtService.DeactivateDebt(c.Request.Context(), userID, debtID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Debt not found"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			// The debt is already inactive
			c.JSON(http.StatusConflict, gin.H{"error": "Debt already inactive"})
		} else {
			logger.Error("Failed to delete debt in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete debt"})
		}
		return
	}

	logger.Info("Debt deactivated successfully")
	c.Status(http.StatusNoContent)
}
