package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/cefinvest/invest_backend/internal/core/ports/services"
	"github.com/cefinvest/invest_backend/internal/dto"
	"github.com/cefinvest/invest_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// recommendationHandler handles profile-based catalog lookups.
type recommendationHandler struct {
	recommendationService portssvc.RecommendationSvc
}

func newRecommendationHandler(rs portssvc.RecommendationSvc) *recommendationHandler {
	return &recommendationHandler{recommendationService: rs}
}

// registerRecommendationRoutes registers routes related to recommendations.
func registerRecommendationRoutes(rg *gin.RouterGroup, recommendationService portssvc.RecommendationSvc) {
	h := newRecommendationHandler(recommendationService)

	rg.GET("/recommendations/:profile", h.recommendByProfile)
}

// recommendByProfile godoc
// @Summary Recommend products for a risk profile
// @Description Returns the products whose recommended profile matches the label, case-insensitively
// @Tags recommendations
// @Produce  json
// @Param   profile path string true "Risk profile label (e.g. CONSERVATIVE)"
// @Success 200 {array} dto.ProductResponse
// @Failure 500 {object} map[string]string "Failed to load recommendations"
// @Security BearerAuth
// @Router /recommendations/{profile} [get]
func (h *recommendationHandler) recommendByProfile(c *gin.Context) {
	profile := c.Param("profile")

	products, err := h.recommendationService.RecommendByProfile(c.Request.Context(), profile)
	if err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to load recommendations", slog.String("profile", profile), slog.String("error", err.Error()))
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToProductResponses(products))
}
