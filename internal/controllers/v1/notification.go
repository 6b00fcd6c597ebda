package v1

import (
	"net/http"

	"github.com/fintrack/backend/internal/httputil"
	"github.com/fintrack/backend/internal/models"
	"github.com/fintrack/backend/internal/notify"
	"github.com/gin-gonic/gin"
)

type NotificationList struct {
	Notifications []notify.Notification `json:"notifications"`      // Newest first
	Unread        int                   `json:"unread" example:"2"` // Number of unread notifications
	Toasts        []notify.Notification `json:"toasts"`             // Notifications currently shown as toast
}

func (co Controller) RegisterNotificationRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", httputil.OptionsGetDelete)
	r.GET("", co.GetNotifications)
	r.DELETE("", co.ClearNotifications)

	r.OPTIONS("/read", httputil.OptionsPost)
	r.POST("/read", co.MarkAllNotificationsRead)

	r.OPTIONS("/:id/read", httputil.OptionsPost)
	r.POST("/:id/read", co.MarkNotificationRead)

	r.OPTIONS("/:id/dismiss", httputil.OptionsPost)
	r.POST("/:id/dismiss", co.DismissToast)
}

func (co Controller) notificationList(c *gin.Context) NotificationList {
	inbox := co.inbox(c)

	return NotificationList{
		Notifications: inbox.List(),
		Unread:        inbox.UnreadCount(),
		Toasts:        inbox.Toasts(),
	}
}

// @Summary		Get notifications
// @Tags			Notifications
// @Produce		json
// @Success		200	{object}	Response[NotificationList]
// @Security		Bearer
// @Router			/v1/notifications [get]
func (co Controller) GetNotifications(c *gin.Context) {
	c.JSON(http.StatusOK, respond(co.notificationList(c)))
}

// @Summary		Mark notification as read
// @Tags			Notifications
// @Produce		json
// @Success		200	{object}	Response[NotificationList]
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Param			id	path		string	true	"ID formatted as string"
// @Security		Bearer
// @Router			/v1/notifications/{id}/read [post]
func (co Controller) MarkNotificationRead(c *gin.Context) {
	id, err := httputil.ParseUUID(c, "id")
	if err != nil {
		fail(c, err)
		return
	}

	if !co.inbox(c).MarkRead(id) {
		fail(c, models.NotFound("notification"))
		return
	}

	c.JSON(http.StatusOK, respond(co.notificationList(c)))
}

// @Summary		Mark all notifications as read
// @Tags			Notifications
// @Produce		json
// @Success		200	{object}	Response[NotificationList]
// @Security		Bearer
// @Router			/v1/notifications/read [post]
func (co Controller) MarkAllNotificationsRead(c *gin.Context) {
	co.inbox(c).MarkAllRead()
	c.JSON(http.StatusOK, respond(co.notificationList(c)))
}

// @Summary		Clear notifications
// @Tags			Notifications
// @Success		204
// @Security		Bearer
// @Router			/v1/notifications [delete]
func (co Controller) ClearNotifications(c *gin.Context) {
	co.inbox(c).Clear()
	c.Status(http.StatusNoContent)
}

// @Summary		Dismiss toast
// @Description	Hides the toast. The notification stays in the list.
// @Tags			Notifications
// @Success		204
// @Failure		400	{object}	httpError
// @Param			id	path		string	true	"ID formatted as string"
// @Security		Bearer
// @Router			/v1/notifications/{id}/dismiss [post]
func (co Controller) DismissToast(c *gin.Context) {
	id, err := httputil.ParseUUID(c, "id")
	if err != nil {
		fail(c, err)
		return
	}

	co.inbox(c).Dismiss(id)
	c.Status(http.StatusNoContent)
}
