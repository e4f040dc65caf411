package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/cefinvest/invest_backend/internal/dto"
	"github.com/cefinvest/invest_backend/internal/middleware"
	"github.com/cefinvest/invest_backend/internal/platform/config"
	"github.com/cefinvest/invest_backend/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

// authHandler issues JWTs for the two fixed operator accounts. Credentials
// are verified against bcrypt hashes from configuration; there is no user
// table behind this endpoint.
type authHandler struct {
	cfg *config.Config
}

func newAuthHandler(cfg *config.Config) *authHandler {
	return &authHandler{cfg: cfg}
}

// registerAuthRoutes registers the public login route, rate limited per IP.
func registerAuthRoutes(r *gin.Engine, cfg *config.Config) {
	h := newAuthHandler(cfg)

	rate := limiter.Rate{Period: time.Minute, Limit: 5}
	loginLimiter := limiter.New(memory.NewStore(), rate)

	auth := r.Group("/api/v1/auth")
	{
		auth.POST("/login", middleware.RateLimit(loginLimiter), h.login)
	}
}

// login godoc
// @Summary Authenticate an operator
// @Description Verifies the credentials of the fixed admin or user account and returns a signed JWT
// @Tags auth
// @Accept  json
// @Produce  json
// @Param   credentials body dto.LoginRequest true "Operator credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Invalid credentials"
// @Failure 429 {object} map[string]string "Too many attempts"
// @Router /auth/login [post]
func (h *authHandler) login(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	roles, ok := h.authenticate(req.Username, req.Password)
	if !ok {
		logger.Warn("Login rejected", slog.String("username", req.Username))
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	token, err := utils.GenerateJWT(req.Username, roles, h.cfg.JWTSecret, h.cfg.JWTExpiryDuration, h.cfg.JWTIssuer)
	if err != nil {
		logger.Error("Failed to sign token", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	logger.Info("Login succeeded", slog.String("username", req.Username))
	c.JSON(http.StatusOK, dto.LoginResponse{Token: token})
}

// authenticate checks the credentials against the configured accounts. The
// admin carries both roles so admin tokens pass plain user checks too.
func (h *authHandler) authenticate(username, password string) ([]string, bool) {
	switch username {
	case "admin":
		if h.cfg.AdminPasswordHash != "" && utils.CheckPasswordHash(password, h.cfg.AdminPasswordHash) {
			return []string{"admin", "user"}, true
		}
	case "user":
		if h.cfg.UserPasswordHash != "" && utils.CheckPasswordHash(password, h.cfg.UserPasswordHash) {
			return []string{"user"}, true
		}
	}
	return nil, false
}
