package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/bank_portal/internal/core/domain"
	portssvc "github.com/SscSPs/bank_portal/internal/core/ports/services"
	"github.com/SscSPs/bank_portal/internal/dto"
	"github.com/SscSPs/bank_portal/internal/middleware"
	"github.com/SscSPs/bank_portal/internal/platform/config"
	"github.com/gin-gonic/gin"
)

// AuthHandler handles authentication related requests.
type AuthHandler struct {
	sessions portssvc.SessionSvcFacade
	tokens   portssvc.TokenSvc
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(sessions portssvc.SessionSvcFacade, tokens portssvc.TokenSvc) *AuthHandler {
	return &AuthHandler{
		sessions: sessions,
		tokens:   tokens,
	}
}

// registerAuthRoutes sets up the routes for authentication.
func registerAuthRoutes(r *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer) {
	h := NewAuthHandler(services.Session, services.Token)

	auth := r.Group("/auth")
	{
		public := []gin.HandlerFunc{}
		if ipLimiter, err := middleware.NewLimiter(cfg.LoginRateLimit); err != nil {
			slog.Warn("Login rate limit disabled", slog.String("rate", cfg.LoginRateLimit), slog.String("error", err.Error()))
		} else {
			public = append(public, middleware.RateLimit(ipLimiter))
		}
		auth.POST("/login", append(public, h.Login)...)
		auth.POST("/register", append(public, h.Register)...)

		authed := auth.Group("", middleware.SessionAuth(cfg.JWTSecret, services.Session))
		authed.POST("/logout", h.Logout)
		authed.GET("/me", h.Me)
	}
}

// Login godoc
// @Summary User login
// @Description Authenticates against the core banking API, opens a portal session and returns a portal JWT.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Login Credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 429 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Username and password are required"})
		return
	}
	sess, err := h.sessions.Login(c.Request.Context(), req.ToDomain())
	if err != nil {
		respondError(c, err, "Login failed")
		return
	}
	h.respondWithToken(c, http.StatusOK, sess)
}

// Register godoc
// @Summary Register new user
// @Description Creates a customer profile in the core banking API and signs the user in.
// @Tags auth
// @Accept json
// @Produce json
// @Param register body dto.RegisterRequest true "User Registration Info"
// @Success 201 {object} dto.LoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Conflict (e.g., username exists)"
// @Failure 502 {object} ErrorResponse
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}
	sess, err := h.sessions.Register(c.Request.Context(), req.ToDomain())
	if err != nil {
		respondError(c, err, "Failed to register user")
		return
	}
	h.respondWithToken(c, http.StatusCreated, sess)
}

func (h *AuthHandler) respondWithToken(c *gin.Context, status int, sess *domain.Session) {
	token, expiresAt, err := h.tokens.GenerateAccessToken(c.Request.Context(), sess)
	if err != nil {
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Error("Failed to sign JWT token", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to generate token"})
		return
	}

	resp := dto.LoginResponse{
		Token:     token,
		TokenType: "Bearer",
		ExpiresAt: expiresAt,
		User:      dto.ToUserResponse(&sess.User),
	}
	// An unknown role leaves the landing page to the navigation call.
	if layout, ok := domain.LayoutFor(sess.Roles()); ok {
		resp.DashboardPath = layout.DashboardPath()
	}
	c.JSON(status, resp)
}

// Logout godoc
// @Summary User logout
// @Description Closes the portal session. The upstream token is discarded with it.
// @Tags auth
// @Produce json
// @Success 204 "No Content"
// @Failure 401 {object} SessionExpiredResponse
// @Security BearerAuth
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		return
	}
	if err := h.sessions.Logout(c.Request.Context(), sess.ID); err != nil {
		respondError(c, err, "Failed to log out")
		return
	}
	c.Status(http.StatusNoContent)
}

// Me godoc
// @Summary Current user
// @Description Re-reads the signed-in user's profile from the core banking API.
// @Tags auth
// @Produce json
// @Success 200 {object} dto.UserResponse
// @Failure 401 {object} SessionExpiredResponse
// @Security BearerAuth
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		return
	}
	refreshed, err := h.sessions.RefreshIdentity(c.Request.Context(), sess)
	if err != nil {
		respondError(c, err, "Failed to load profile")
		return
	}
	c.JSON(http.StatusOK, dto.ToUserResponse(&refreshed.User))
}
