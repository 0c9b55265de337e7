package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/bank_portal/internal/core/ports/services"
	"github.com/gin-gonic/gin"
)

// homeHandler serves the signed-in shell: navigation and the landing view.
type homeHandler struct {
	navigation portssvc.NavigationSvc
	dashboard  portssvc.DashboardSvc
}

func registerHomeRoutes(rg *gin.RouterGroup, navigation portssvc.NavigationSvc, dashboard portssvc.DashboardSvc) {
	h := &homeHandler{navigation: navigation, dashboard: dashboard}
	rg.GET("/navigation", h.getNavigation)
	rg.GET("/dashboard", h.getDashboard)
}

// getNavigation godoc
// @Summary Role-gated navigation
// @Description Returns the layout, landing path and menu of the signed-in user. Answers 202 with loading=true while the user's roles are unknown.
// @Tags navigation
// @Produce json
// @Success 200 {object} domain.Menu
// @Success 202 {object} LoadingResponse
// @Failure 401 {object} SessionExpiredResponse
// @Security BearerAuth
// @Router /api/v1/navigation [get]
func (h *homeHandler) getNavigation(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		return
	}
	menu, err := h.navigation.Menu(c.Request.Context(), sess)
	if err != nil {
		respondError(c, err, "Failed to build navigation")
		return
	}
	c.JSON(http.StatusOK, menu)
}

// getDashboard godoc
// @Summary Landing view
// @Description Accounts, total balance, recent transactions and counters of the signed-in user.
// @Tags navigation
// @Produce json
// @Success 200 {object} domain.Dashboard
// @Failure 401 {object} SessionExpiredResponse
// @Failure 502 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/v1/dashboard [get]
func (h *homeHandler) getDashboard(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		return
	}
	dash, err := h.dashboard.Dashboard(c.Request.Context(), sess)
	if err != nil {
		respondError(c, err, "Failed to load dashboard")
		return
	}
	c.JSON(http.StatusOK, dash)
}
