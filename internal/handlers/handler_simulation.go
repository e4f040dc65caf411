package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/cefinvest/invest_backend/internal/core/ports/services"
	"github.com/cefinvest/invest_backend/internal/dto"
	"github.com/cefinvest/invest_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// simulationHandler handles HTTP requests related to investment simulations.
type simulationHandler struct {
	simulationService portssvc.SimulationSvc
}

func newSimulationHandler(ss portssvc.SimulationSvc) *simulationHandler {
	return &simulationHandler{simulationService: ss}
}

// registerSimulationRoutes registers routes related to simulations.
func registerSimulationRoutes(rg *gin.RouterGroup, simulationService portssvc.SimulationSvc) {
	h := newSimulationHandler(simulationService)

	simulations := rg.Group("/simulations")
	{
		simulations.POST("", h.createSimulation)
		simulations.GET("", h.listSimulations)
		simulations.GET("/by-product-day", h.simulationsByProductDay)
	}
}

// createSimulation godoc
// @Summary Run an investment simulation
// @Description Validates the chosen product, or auto-selects one matching term, type and risk profile, then computes the compound-interest projection and persists the run
// @Tags simulations
// @Accept  json
// @Produce  json
// @Param   simulation body dto.SimulationRequest true "Simulation parameters"
// @Success 200 {object} dto.SimulationResponse
// @Failure 400 {object} map[string]string "Invalid input or term outside product range"
// @Failure 404 {object} map[string]string "Customer or product not found"
// @Failure 422 {object} map[string]string "No product matches the requested term and type"
// @Failure 500 {object} map[string]string "Simulation failed"
// @Security BearerAuth
// @Router /simulations [post]
func (h *simulationHandler) createSimulation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.SimulationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateSimulation", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	response, err := h.simulationService.Simulate(c.Request.Context(), req)
	if err != nil {
		logger.Warn("Simulation failed", slog.Int64("customer_id", req.CustomerID), slog.String("error", err.Error()))
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// listSimulations godoc
// @Summary List all simulations
// @Description Returns every persisted simulation, newest first
// @Tags simulations
// @Produce  json
// @Success 200 {array} dto.SimulationHistoryResponse
// @Failure 500 {object} map[string]string "Failed to list simulations"
// @Security BearerAuth
// @Router /simulations [get]
func (h *simulationHandler) listSimulations(c *gin.Context) {
	simulations, err := h.simulationService.ListSimulations(c.Request.Context())
	if err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to list simulations", slog.String("error", err.Error()))
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, simulations)
}

// simulationsByProductDay godoc
// @Summary Aggregate simulations per product and day
// @Description Groups simulations by product name and calendar day with count and mean final value
// @Tags simulations
// @Produce  json
// @Success 200 {array} dto.SimulationByProductDayResponse
// @Failure 500 {object} map[string]string "Failed to aggregate simulations"
// @Security BearerAuth
// @Router /simulations/by-product-day [get]
func (h *simulationHandler) simulationsByProductDay(c *gin.Context) {
	aggregates, err := h.simulationService.SimulationsByProductDay(c.Request.Context())
	if err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to aggregate simulations", slog.String("error", err.Error()))
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, aggregates)
}
