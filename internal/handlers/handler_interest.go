package handlers

import (
	"net/http"

	"github.com/SscSPs/bank_portal/internal/core/domain"
	portssvc "github.com/SscSPs/bank_portal/internal/core/ports/services"
	"github.com/SscSPs/bank_portal/internal/dto"
	"github.com/gin-gonic/gin"
)

// interestHandler renders interest figures computed by the banking service.
type interestHandler struct {
	interest portssvc.InterestSvc
}

func registerInterestRoutes(rg *gin.RouterGroup, interest portssvc.InterestSvc) {
	h := &interestHandler{interest: interest}

	in := rg.Group("/interest")
	{
		in.GET("/strategies", h.listStrategies)
		in.GET("/strategies/:accountType", h.listSupportedStrategies)
		in.POST("/apply-all", h.applyAll)
		in.GET("/accounts/:id/report", h.getReport)
		in.POST("/accounts/:id/change-strategy", h.changeStrategy)
		in.GET("/accounts/:id/compare", h.compare)
		in.GET("/accounts/:id/future", h.futureInterest)
		in.GET("/accounts/:id/effective-rate", h.effectiveRate)
		in.POST("/accounts/:id/apply", h.apply)
	}
}

// getReport godoc
// @Summary Interest report of an account
// @Tags interest
// @Produce json
// @Param id path int true "Account ID"
// @Success 200 {object} domain.InterestReport
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/v1/interest/accounts/{id}/report [get]
func (h *interestHandler) getReport(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		return
	}
	accountID, ok := int64Param(c, "id")
	if !ok {
		return
	}
	report, err := h.interest.GetReport(c.Request.Context(), sess, accountID)
	if err != nil {
		respondError(c, err, "Failed to load interest report")
		return
	}
	c.JSON(http.StatusOK, report)
}

// changeStrategy godoc
// @Summary Change the interest strategy of an account
// @Description Managers and admins only. Returns the re-read report.
// @Tags interest
// @Accept json
// @Produce json
// @Param id path int true "Account ID"
// @Param strategy body dto.ChangeStrategyRequest true "Strategy"
// @Success 200 {object} domain.InterestReport
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/v1/interest/accounts/{id}/change-strategy [post]
func (h *interestHandler) changeStrategy(c *gin.Context) {
	accountID, ok := int64Param(c, "id")
	if !ok {
		return
	}
	var req dto.ChangeStrategyRequest
	if !bindJSON(c, &req, "ChangeStrategy") {
		return
	}
	sess, ok := currentSession(c)
	if !ok {
		return
	}
	report, err := h.interest.ChangeStrategy(c.Request.Context(), sess, accountID, req.StrategyName)
	if err != nil {
		respondError(c, err, "Failed to change interest strategy")
		return
	}
	c.JSON(http.StatusOK, report)
}

// listStrategies godoc
// @Summary Available interest strategies
// @Tags interest
// @Produce json
// @Success 200 {array} domain.InterestStrategy
// @Security BearerAuth
// @Router /api/v1/interest/strategies [get]
func (h *interestHandler) listStrategies(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		return
	}
	strategies, err := h.interest.Strategies(c.Request.Context(), sess)
	if err != nil {
		respondError(c, err, "Failed to list interest strategies")
		return
	}
	c.JSON(http.StatusOK, strategies)
}

// listSupportedStrategies godoc
// @Summary Strategies supported by an account type
// @Tags interest
// @Produce json
// @Param accountType path string true "Account type"
// @Success 200 {array} domain.InterestStrategy
// @Security BearerAuth
// @Router /api/v1/interest/strategies/{accountType} [get]
func (h *interestHandler) listSupportedStrategies(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		return
	}
	strategies, err := h.interest.SupportedStrategies(c.Request.Context(), sess, domain.AccountType(c.Param("accountType")))
	if err != nil {
		respondError(c, err, "Failed to list interest strategies")
		return
	}
	c.JSON(http.StatusOK, strategies)
}

// compare godoc
// @Summary Compare two strategies for an account
// @Tags interest
// @Produce json
// @Param id path int true "Account ID"
// @Param strategy1 query string true "First strategy"
// @Param strategy2 query string true "Second strategy"
// @Success 200 {object} domain.StrategyComparison
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/v1/interest/accounts/{id}/compare [get]
func (h *interestHandler) compare(c *gin.Context) {
	accountID, ok := int64Param(c, "id")
	if !ok {
		return
	}
	var params dto.CompareStrategiesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Two strategies are required"})
		return
	}
	sess, ok := currentSession(c)
	if !ok {
		return
	}
	cmp, err := h.interest.Compare(c.Request.Context(), sess, accountID, params.Strategy1, params.Strategy2)
	if err != nil {
		respondError(c, err, "Failed to compare strategies")
		return
	}
	c.JSON(http.StatusOK, cmp)
}

// futureInterest godoc
// @Summary Projected interest
// @Tags interest
// @Produce json
// @Param id path int true "Account ID"
// @Param months query int true "Horizon in months"
// @Success 200 {object} dto.AmountResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/v1/interest/accounts/{id}/future [get]
func (h *interestHandler) futureInterest(c *gin.Context) {
	accountID, ok := int64Param(c, "id")
	if !ok {
		return
	}
	var params dto.FutureInterestParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "months must be between 1 and 600"})
		return
	}
	sess, ok := currentSession(c)
	if !ok {
		return
	}
	amount, err := h.interest.FutureInterest(c.Request.Context(), sess, accountID, params.Months)
	if err != nil {
		respondError(c, err, "Failed to project interest")
		return
	}
	c.JSON(http.StatusOK, dto.AmountResponse{Amount: amount})
}

// effectiveRate godoc
// @Summary Effective annual rate
// @Tags interest
// @Produce json
// @Param id path int true "Account ID"
// @Success 200 {object} dto.AmountResponse
// @Security BearerAuth
// @Router /api/v1/interest/accounts/{id}/effective-rate [get]
func (h *interestHandler) effectiveRate(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		return
	}
	accountID, ok := int64Param(c, "id")
	if !ok {
		return
	}
	rate, err := h.interest.EffectiveRate(c.Request.Context(), sess, accountID)
	if err != nil {
		respondError(c, err, "Failed to load effective rate")
		return
	}
	c.JSON(http.StatusOK, dto.AmountResponse{Amount: rate})
}

// apply godoc
// @Summary Credit interest to an account
// @Description Managers and admins only. Returns the re-read report.
// @Tags interest
// @Produce json
// @Param id path int true "Account ID"
// @Success 200 {object} domain.InterestReport
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/v1/interest/accounts/{id}/apply [post]
func (h *interestHandler) apply(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		return
	}
	accountID, ok := int64Param(c, "id")
	if !ok {
		return
	}
	report, err := h.interest.Apply(c.Request.Context(), sess, accountID)
	if err != nil {
		respondError(c, err, "Failed to apply interest")
		return
	}
	c.JSON(http.StatusOK, report)
}

// applyAll godoc
// @Summary Credit interest to every account
// @Tags interest
// @Success 204 "No Content"
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/v1/interest/apply-all [post]
func (h *interestHandler) applyAll(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		return
	}
	if err := h.interest.ApplyAll(c.Request.Context(), sess); err != nil {
		respondError(c, err, "Failed to apply interest")
		return
	}
	c.Status(http.StatusNoContent)
}
