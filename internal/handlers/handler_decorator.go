package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/bank_portal/internal/core/ports/services"
	"github.com/SscSPs/bank_portal/internal/dto"
	"github.com/gin-gonic/gin"
)

// decoratorHandler manages account feature add-ons.
type decoratorHandler struct {
	decorators portssvc.DecoratorSvc
}

func registerDecoratorRoutes(rg *gin.RouterGroup, decorators portssvc.DecoratorSvc) {
	h := &decoratorHandler{decorators: decorators}

	d := rg.Group("/decorators")
	{
		d.GET("/info", h.getInfo)
		d.POST("/apply-monthly-fees", h.applyMonthlyFees)
		d.GET("/accounts/:id", h.listDecorators)
		d.POST("/accounts/:id", h.addDecorator)
		d.GET("/accounts/:id/active", h.listActive)
		d.GET("/accounts/:id/features", h.listFeatures)
		d.POST("/accounts/:id/:decoratorId/activate", h.activate)
		d.DELETE("/accounts/:id/:decoratorId", h.remove)
	}
}

// listDecorators godoc
// @Summary Decorators of an account
// @Tags decorators
// @Produce json
// @Param id path int true "Account ID"
// @Success 200 {array} domain.Decorator
// @Security BearerAuth
// @Router /api/v1/decorators/accounts/{id} [get]
func (h *decoratorHandler) listDecorators(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		return
	}
	accountID, ok := int64Param(c, "id")
	if !ok {
		return
	}
	list, err := h.decorators.List(c.Request.Context(), sess, accountID)
	if err != nil {
		respondError(c, err, "Failed to list decorators")
		return
	}
	c.JSON(http.StatusOK, list)
}

// listActive godoc
// @Summary Active decorators of an account
// @Tags decorators
// @Produce json
// @Param id path int true "Account ID"
// @Success 200 {array} domain.Decorator
// @Security BearerAuth
// @Router /api/v1/decorators/accounts/{id}/active [get]
func (h *decoratorHandler) listActive(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		return
	}
	accountID, ok := int64Param(c, "id")
	if !ok {
		return
	}
	list, err := h.decorators.Active(c.Request.Context(), sess, accountID)
	if err != nil {
		respondError(c, err, "Failed to list active decorators")
		return
	}
	c.JSON(http.StatusOK, list)
}

// listFeatures godoc
// @Summary Feature names enabled on an account
// @Tags decorators
// @Produce json
// @Param id path int true "Account ID"
// @Success 200 {array} string
// @Security BearerAuth
// @Router /api/v1/decorators/accounts/{id}/features [get]
func (h *decoratorHandler) listFeatures(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		return
	}
	accountID, ok := int64Param(c, "id")
	if !ok {
		return
	}
	features, err := h.decorators.Features(c.Request.Context(), sess, accountID)
	if err != nil {
		respondError(c, err, "Failed to list account features")
		return
	}
	c.JSON(http.StatusOK, features)
}

// getInfo godoc
// @Summary Decorator catalogue
// @Tags decorators
// @Produce json
// @Success 200 {object} dto.DecoratorInfoResponse
// @Security BearerAuth
// @Router /api/v1/decorators/info [get]
func (h *decoratorHandler) getInfo(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		return
	}
	info, err := h.decorators.Info(c.Request.Context(), sess)
	if err != nil {
		respondError(c, err, "Failed to load decorator information")
		return
	}
	c.JSON(http.StatusOK, dto.DecoratorInfoResponse{Info: info})
}

// addDecorator godoc
// @Summary Attach a decorator to an account
// @Description Managers and admins only. Returns the re-read decorator list.
// @Tags decorators
// @Accept json
// @Produce json
// @Param id path int true "Account ID"
// @Param decorator body dto.AddDecoratorRequest true "Decorator"
// @Success 201 {array} domain.Decorator
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/v1/decorators/accounts/{id} [post]
func (h *decoratorHandler) addDecorator(c *gin.Context) {
	accountID, ok := int64Param(c, "id")
	if !ok {
		return
	}
	var req dto.AddDecoratorRequest
	if !bindJSON(c, &req, "AddDecorator") {
		return
	}
	sess, ok := currentSession(c)
	if !ok {
		return
	}
	list, err := h.decorators.Add(c.Request.Context(), sess, req.ToDomain(accountID))
	if err != nil {
		respondError(c, err, "Failed to add decorator")
		return
	}
	c.JSON(http.StatusCreated, list)
}

// activate godoc
// @Summary Activate a decorator
// @Tags decorators
// @Produce json
// @Param id path int true "Account ID"
// @Param decoratorId path int true "Decorator ID"
// @Success 200 {array} domain.Decorator
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/v1/decorators/accounts/{id}/{decoratorId}/activate [post]
func (h *decoratorHandler) activate(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		return
	}
	accountID, ok := int64Param(c, "id")
	if !ok {
		return
	}
	decoratorID, ok := int64Param(c, "decoratorId")
	if !ok {
		return
	}
	list, err := h.decorators.Activate(c.Request.Context(), sess, accountID, decoratorID)
	if err != nil {
		respondError(c, err, "Failed to activate decorator")
		return
	}
	c.JSON(http.StatusOK, list)
}

// remove godoc
// @Summary Remove a decorator
// @Tags decorators
// @Produce json
// @Param id path int true "Account ID"
// @Param decoratorId path int true "Decorator ID"
// @Success 200 {array} domain.Decorator
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/v1/decorators/accounts/{id}/{decoratorId} [delete]
func (h *decoratorHandler) remove(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		return
	}
	accountID, ok := int64Param(c, "id")
	if !ok {
		return
	}
	decoratorID, ok := int64Param(c, "decoratorId")
	if !ok {
		return
	}
	list, err := h.decorators.Remove(c.Request.Context(), sess, accountID, decoratorID)
	if err != nil {
		respondError(c, err, "Failed to remove decorator")
		return
	}
	c.JSON(http.StatusOK, list)
}

// applyMonthlyFees godoc
// @Summary Charge monthly decorator fees
// @Tags decorators
// @Success 204 "No Content"
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/v1/decorators/apply-monthly-fees [post]
func (h *decoratorHandler) applyMonthlyFees(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		return
	}
	if err := h.decorators.ApplyMonthlyFees(c.Request.Context(), sess); err != nil {
		respondError(c, err, "Failed to apply monthly fees")
		return
	}
	c.Status(http.StatusNoContent)
}
