package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/bank_portal/internal/core/ports/services"
	"github.com/SscSPs/bank_portal/internal/dto"
	"github.com/gin-gonic/gin"
)

// groupHandler handles account group requests. Group transfers go through
// the transfer forms.
type groupHandler struct {
	groups portssvc.GroupSvcFacade
}

func registerGroupRoutes(rg *gin.RouterGroup, groups portssvc.GroupSvcFacade) {
	h := &groupHandler{groups: groups}

	g := rg.Group("/groups")
	{
		g.GET("", h.listGroups)
		g.POST("", h.createGroup)
		g.GET("/mine", h.listMyGroups)
		g.GET("/:id", h.getGroup)
		g.DELETE("/:id", h.deleteGroup)
		g.GET("/:id/accounts", h.listGroupAccounts)
		g.POST("/:id/accounts/:accountId", h.addAccount)
		g.DELETE("/:id/accounts/:accountId", h.removeAccount)
		g.GET("/:id/balance", h.getGroupBalance)
		g.GET("/:id/statistics", h.getGroupStatistics)
		g.PATCH("/:id/status", h.setGroupStatus)
	}
}

// listGroups godoc
// @Summary List all groups
// @Description Managers and admins only.
// @Tags groups
// @Produce json
// @Success 200 {array} domain.Group
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/v1/groups [get]
func (h *groupHandler) listGroups(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		return
	}
	groups, err := h.groups.ListAll(c.Request.Context(), sess)
	if err != nil {
		respondError(c, err, "Failed to list groups")
		return
	}
	c.JSON(http.StatusOK, groups)
}

// listMyGroups godoc
// @Summary Groups of the signed-in user
// @Tags groups
// @Produce json
// @Success 200 {array} domain.Group
// @Security BearerAuth
// @Router /api/v1/groups/mine [get]
func (h *groupHandler) listMyGroups(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		return
	}
	groups, err := h.groups.ListMine(c.Request.Context(), sess)
	if err != nil {
		respondError(c, err, "Failed to list groups")
		return
	}
	c.JSON(http.StatusOK, groups)
}

// createGroup godoc
// @Summary Create a group
// @Tags groups
// @Accept json
// @Produce json
// @Param group body dto.CreateGroupRequest true "Group"
// @Success 201 {object} domain.Group
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/v1/groups [post]
func (h *groupHandler) createGroup(c *gin.Context) {
	var req dto.CreateGroupRequest
	if !bindJSON(c, &req, "CreateGroup") {
		return
	}
	sess, ok := currentSession(c)
	if !ok {
		return
	}
	group, err := h.groups.CreateGroup(c.Request.Context(), sess, req.ToDomain())
	if err != nil {
		respondError(c, err, "Failed to create group")
		return
	}
	c.JSON(http.StatusCreated, group)
}

// getGroup godoc
// @Summary Get a group
// @Tags groups
// @Produce json
// @Param id path int true "Group ID"
// @Success 200 {object} domain.Group
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/v1/groups/{id} [get]
func (h *groupHandler) getGroup(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		return
	}
	groupID, ok := int64Param(c, "id")
	if !ok {
		return
	}
	group, err := h.groups.GetGroup(c.Request.Context(), sess, groupID)
	if err != nil {
		respondError(c, err, "Failed to retrieve group")
		return
	}
	c.JSON(http.StatusOK, group)
}

// deleteGroup godoc
// @Summary Delete a group
// @Description Returns the re-read group list.
// @Tags groups
// @Produce json
// @Param id path int true "Group ID"
// @Success 200 {array} domain.Group
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/v1/groups/{id} [delete]
func (h *groupHandler) deleteGroup(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		return
	}
	groupID, ok := int64Param(c, "id")
	if !ok {
		return
	}
	groups, err := h.groups.DeleteGroup(c.Request.Context(), sess, groupID)
	if err != nil {
		respondError(c, err, "Failed to delete group")
		return
	}
	c.JSON(http.StatusOK, groups)
}

// listGroupAccounts godoc
// @Summary Accounts of a group
// @Tags groups
// @Produce json
// @Param id path int true "Group ID"
// @Success 200 {array} domain.Account
// @Security BearerAuth
// @Router /api/v1/groups/{id}/accounts [get]
func (h *groupHandler) listGroupAccounts(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		return
	}
	groupID, ok := int64Param(c, "id")
	if !ok {
		return
	}
	accounts, err := h.groups.Accounts(c.Request.Context(), sess, groupID)
	if err != nil {
		respondError(c, err, "Failed to list group accounts")
		return
	}
	c.JSON(http.StatusOK, accounts)
}

// addAccount godoc
// @Summary Add an account to a group
// @Description Returns the re-read member list.
// @Tags groups
// @Produce json
// @Param id path int true "Group ID"
// @Param accountId path int true "Account ID"
// @Success 200 {array} domain.Account
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/v1/groups/{id}/accounts/{accountId} [post]
func (h *groupHandler) addAccount(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		return
	}
	groupID, ok := int64Param(c, "id")
	if !ok {
		return
	}
	accountID, ok := int64Param(c, "accountId")
	if !ok {
		return
	}
	accounts, err := h.groups.AddAccount(c.Request.Context(), sess, groupID, accountID)
	if err != nil {
		respondError(c, err, "Failed to add account to group")
		return
	}
	c.JSON(http.StatusOK, accounts)
}

// removeAccount godoc
// @Summary Remove an account from a group
// @Description Returns the re-read member list.
// @Tags groups
// @Produce json
// @Param id path int true "Group ID"
// @Param accountId path int true "Account ID"
// @Success 200 {array} domain.Account
// @Security BearerAuth
// @Router /api/v1/groups/{id}/accounts/{accountId} [delete]
func (h *groupHandler) removeAccount(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		return
	}
	groupID, ok := int64Param(c, "id")
	if !ok {
		return
	}
	accountID, ok := int64Param(c, "accountId")
	if !ok {
		return
	}
	accounts, err := h.groups.RemoveAccount(c.Request.Context(), sess, groupID, accountID)
	if err != nil {
		respondError(c, err, "Failed to remove account from group")
		return
	}
	c.JSON(http.StatusOK, accounts)
}

// getGroupBalance godoc
// @Summary Combined balance of a group
// @Tags groups
// @Produce json
// @Param id path int true "Group ID"
// @Success 200 {object} dto.AmountResponse
// @Security BearerAuth
// @Router /api/v1/groups/{id}/balance [get]
func (h *groupHandler) getGroupBalance(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		return
	}
	groupID, ok := int64Param(c, "id")
	if !ok {
		return
	}
	balance, err := h.groups.Balance(c.Request.Context(), sess, groupID)
	if err != nil {
		respondError(c, err, "Failed to load group balance")
		return
	}
	c.JSON(http.StatusOK, dto.AmountResponse{Amount: balance})
}

// getGroupStatistics godoc
// @Summary Group statistics
// @Tags groups
// @Produce json
// @Param id path int true "Group ID"
// @Success 200 {object} domain.GroupStatistics
// @Security BearerAuth
// @Router /api/v1/groups/{id}/statistics [get]
func (h *groupHandler) getGroupStatistics(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		return
	}
	groupID, ok := int64Param(c, "id")
	if !ok {
		return
	}
	stats, err := h.groups.Statistics(c.Request.Context(), sess, groupID)
	if err != nil {
		respondError(c, err, "Failed to load group statistics")
		return
	}
	c.JSON(http.StatusOK, stats)
}

// setGroupStatus godoc
// @Summary Change group status
// @Tags groups
// @Accept json
// @Produce json
// @Param id path int true "Group ID"
// @Param status body dto.SetStatusRequest true "New status"
// @Success 200 {object} domain.Group
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/v1/groups/{id}/status [patch]
func (h *groupHandler) setGroupStatus(c *gin.Context) {
	groupID, ok := int64Param(c, "id")
	if !ok {
		return
	}
	var req dto.SetStatusRequest
	if !bindJSON(c, &req, "SetGroupStatus") {
		return
	}
	sess, ok := currentSession(c)
	if !ok {
		return
	}
	group, err := h.groups.SetStatus(c.Request.Context(), sess, groupID, req.Status)
	if err != nil {
		respondError(c, err, "Failed to change group status")
		return
	}
	c.JSON(http.StatusOK, group)
}
