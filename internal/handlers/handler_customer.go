package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	portssvc "github.com/cefinvest/invest_backend/internal/core/ports/services"
	"github.com/cefinvest/invest_backend/internal/dto"
	"github.com/cefinvest/invest_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// customerHandler serves the customer endpoints: the registry listing plus
// per-customer investment history and the derived risk profile.
type customerHandler struct {
	customerService    portssvc.CustomerSvc
	historyService     portssvc.HistorySvc
	riskProfileService portssvc.RiskProfileSvc
}

func newCustomerHandler(cs portssvc.CustomerSvc, hs portssvc.HistorySvc, rs portssvc.RiskProfileSvc) *customerHandler {
	return &customerHandler{customerService: cs, historyService: hs, riskProfileService: rs}
}

// registerCustomerRoutes registers routes related to customers.
func registerCustomerRoutes(rg *gin.RouterGroup, customerService portssvc.CustomerSvc, historyService portssvc.HistorySvc, riskProfileService portssvc.RiskProfileSvc) {
	h := newCustomerHandler(customerService, historyService, riskProfileService)

	customers := rg.Group("/customers")
	{
		customers.GET("", h.listCustomers)
		customers.GET("/:id/history", h.getCustomerHistory)
		customers.GET("/:id/risk-profile", h.getCustomerRiskProfile)
	}
}

// listCustomers godoc
// @Summary List customers
// @Description Returns every registered customer with its current risk profile
// @Tags customers
// @Produce  json
// @Success 200 {array} dto.CustomerResponse
// @Failure 500 {object} map[string]string "Failed to list customers"
// @Security BearerAuth
// @Router /customers [get]
func (h *customerHandler) listCustomers(c *gin.Context) {
	customers, err := h.customerService.ListCustomers(c.Request.Context())
	if err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to list customers", slog.String("error", err.Error()))
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCustomerResponses(customers))
}

// getCustomerHistory godoc
// @Summary Get a customer's investment history
// @Description Returns the customer's realized investments ordered by date
// @Tags customers
// @Produce  json
// @Param   id path int true "Customer ID"
// @Success 200 {array} dto.HistoryEntryResponse
// @Failure 400 {object} map[string]string "Invalid customer id"
// @Failure 500 {object} map[string]string "Failed to load history"
// @Security BearerAuth
// @Router /customers/{id}/history [get]
func (h *customerHandler) getCustomerHistory(c *gin.Context) {
	customerID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid customer id format"})
		return
	}

	entries, err := h.historyService.ListCustomerHistory(c.Request.Context(), customerID)
	if err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to load customer history", slog.Int64("customer_id", customerID), slog.String("error", err.Error()))
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToHistoryEntryResponses(entries))
}

// getCustomerRiskProfile godoc
// @Summary Calculate a customer's risk profile
// @Description Scores the customer's investment history and classifies it as Conservative, Moderate or Aggressive
// @Tags customers
// @Produce  json
// @Param   id path int true "Customer ID"
// @Success 200 {object} dto.RiskProfileResponse
// @Failure 400 {object} map[string]string "Invalid customer id"
// @Failure 500 {object} map[string]string "Failed to calculate risk profile"
// @Security BearerAuth
// @Router /customers/{id}/risk-profile [get]
func (h *customerHandler) getCustomerRiskProfile(c *gin.Context) {
	customerID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid customer id format"})
		return
	}

	assessment, err := h.riskProfileService.CalculateProfile(c.Request.Context(), customerID)
	if err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to calculate risk profile", slog.Int64("customer_id", customerID), slog.String("error", err.Error()))
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToRiskProfileResponse(assessment))
}
