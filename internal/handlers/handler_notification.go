package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/bank_portal/internal/core/ports/services"
	"github.com/SscSPs/bank_portal/internal/dto"
	"github.com/gin-gonic/gin"
)

// notificationHandler serves the signed-in user's inbox.
type notificationHandler struct {
	notifications portssvc.NotificationSvc
}

func registerNotificationRoutes(rg *gin.RouterGroup, notifications portssvc.NotificationSvc) {
	h := &notificationHandler{notifications: notifications}

	n := rg.Group("/notifications")
	{
		n.GET("", h.list)
		n.GET("/unread", h.listUnread)
		n.GET("/unread/count", h.unreadCount)
		n.POST("/read-all", h.markAllRead)
		n.POST("/:id/read", h.markRead)
		n.DELETE("/:id", h.delete)
	}
}

// list godoc
// @Summary Inbox
// @Tags notifications
// @Produce json
// @Success 200 {array} domain.Notification
// @Security BearerAuth
// @Router /api/v1/notifications [get]
func (h *notificationHandler) list(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		return
	}
	list, err := h.notifications.List(c.Request.Context(), sess)
	if err != nil {
		respondError(c, err, "Failed to load notifications")
		return
	}
	c.JSON(http.StatusOK, list)
}

// listUnread godoc
// @Summary Unread notifications
// @Tags notifications
// @Produce json
// @Success 200 {array} domain.Notification
// @Security BearerAuth
// @Router /api/v1/notifications/unread [get]
func (h *notificationHandler) listUnread(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		return
	}
	list, err := h.notifications.Unread(c.Request.Context(), sess)
	if err != nil {
		respondError(c, err, "Failed to load notifications")
		return
	}
	c.JSON(http.StatusOK, list)
}

// unreadCount godoc
// @Summary Unread badge count
// @Description The count kept fresh by the session's background poller.
// @Tags notifications
// @Produce json
// @Success 200 {object} dto.UnreadCountResponse
// @Security BearerAuth
// @Router /api/v1/notifications/unread/count [get]
func (h *notificationHandler) unreadCount(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		return
	}
	count, err := h.notifications.UnreadCount(c.Request.Context(), sess)
	if err != nil {
		respondError(c, err, "Failed to load unread count")
		return
	}
	c.JSON(http.StatusOK, dto.UnreadCountResponse{Count: count})
}

// markRead godoc
// @Summary Mark a notification read
// @Description Returns the re-read inbox.
// @Tags notifications
// @Produce json
// @Param id path int true "Notification ID"
// @Success 200 {array} domain.Notification
// @Security BearerAuth
// @Router /api/v1/notifications/{id}/read [post]
func (h *notificationHandler) markRead(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		return
	}
	id, ok := int64Param(c, "id")
	if !ok {
		return
	}
	list, err := h.notifications.MarkRead(c.Request.Context(), sess, id)
	if err != nil {
		respondError(c, err, "Failed to update notification")
		return
	}
	c.JSON(http.StatusOK, list)
}

// markAllRead godoc
// @Summary Mark every notification read
// @Tags notifications
// @Produce json
// @Success 200 {array} domain.Notification
// @Security BearerAuth
// @Router /api/v1/notifications/read-all [post]
func (h *notificationHandler) markAllRead(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		return
	}
	list, err := h.notifications.MarkAllRead(c.Request.Context(), sess)
	if err != nil {
		respondError(c, err, "Failed to update notifications")
		return
	}
	c.JSON(http.StatusOK, list)
}

// delete godoc
// @Summary Delete a notification
// @Tags notifications
// @Produce json
// @Param id path int true "Notification ID"
// @Success 200 {array} domain.Notification
// @Security BearerAuth
// @Router /api/v1/notifications/{id} [delete]
func (h *notificationHandler) delete(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		return
	}
	id, ok := int64Param(c, "id")
	if !ok {
		return
	}
	list, err := h.notifications.Delete(c.Request.Context(), sess, id)
	if err != nil {
		respondError(c, err, "Failed to delete notification")
		return
	}
	c.JSON(http.StatusOK, list)
}
