package controllers

import (
	"strconv"

	"newsdesk-http-service/models"
	"newsdesk-http-service/services"
	"newsdesk-http-service/services/container"

	"github.com/gin-gonic/gin"
)

// NotificationController handles the per-user notification inbox
type NotificationController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewNotificationController creates a new notification controller
func NewNotificationController(ctx *gin.Context, container *container.ServiceContainer) *NotificationController {
	return &NotificationController{
		Ctx:       ctx,
		Container: container,
	}
}

// HandleNotificationFunc returns a Gin handler dispatching inbox methods
func HandleNotificationFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewNotificationController(ctx, container)

		switch method {
		case "getNotifications":
			controller.GetNotifications()
		case "unreadCount":
			controller.UnreadCount()
		case "markRead":
			controller.MarkRead()
		case "markAllRead":
			controller.MarkAllRead()
		case "deleteNotification":
			controller.DeleteNotification()
		default:
			respondInvalidMethod(ctx)
		}
	}
}

// GetNotifications lists the caller's inbox
// @Summary      List notifications
// @Tags         Notification
// @Produce      json
// @Param        unread query bool false "Only unread"
// @Success      200  {object}  map[string]interface{}
// @Router       /notifications [get]
// @Security     BearerAuth
func (c *NotificationController) GetNotifications() {
	user, ok := currentUser(c.Ctx, c.Container)
	if !ok {
		return
	}
	onlyUnread := c.Ctx.Query("unread") == "true"

	notificationService := c.Container.GetService("notification").(services.InterfaceNotificationService)
	notifications, err := notificationService.List(user.ID, onlyUnread)
	if err != nil {
		respondError(c.Ctx, err)
		return
	}
	if notifications == nil {
		notifications = []models.Notification{}
	}
	respondSuccess(c.Ctx, notifications)
}

// UnreadCount returns the caller's unread notification count
// @Summary      Unread count
// @Tags         Notification
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /notifications/unread-count [get]
// @Security     BearerAuth
func (c *NotificationController) UnreadCount() {
	user, ok := currentUser(c.Ctx, c.Container)
	if !ok {
		return
	}

	notificationService := c.Container.GetService("notification").(services.InterfaceNotificationService)
	count, err := notificationService.UnreadCount(user.ID)
	if err != nil {
		respondError(c.Ctx, err)
		return
	}
	respondSuccess(c.Ctx, gin.H{"count": count})
}

// MarkRead marks one notification as read
// @Summary      Mark notification read
// @Tags         Notification
// @Produce      json
// @Param        id path int true "Notification ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  ErrorResponse
// @Router       /notifications/{id}/read [post]
// @Security     BearerAuth
func (c *NotificationController) MarkRead() {
	user, ok := currentUser(c.Ctx, c.Container)
	if !ok {
		return
	}
	id, err := strconv.ParseUint(c.Ctx.Param("id"), 10, 32)
	if err != nil {
		respondBadRequest(c.Ctx, "invalid notification id")
		return
	}

	notificationService := c.Container.GetService("notification").(services.InterfaceNotificationService)
	if err := notificationService.MarkRead(user.ID, uint(id)); err != nil {
		respondError(c.Ctx, err)
		return
	}
	respondMessage(c.Ctx, "notification marked read")
}

// MarkAllRead marks the whole inbox as read
// @Summary      Mark all notifications read
// @Tags         Notification
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /notifications/read-all [post]
// @Security     BearerAuth
func (c *NotificationController) MarkAllRead() {
	user, ok := currentUser(c.Ctx, c.Container)
	if !ok {
		return
	}

	notificationService := c.Container.GetService("notification").(services.InterfaceNotificationService)
	if err := notificationService.MarkAllRead(user.ID); err != nil {
		respondError(c.Ctx, err)
		return
	}
	respondMessage(c.Ctx, "all notifications marked read")
}

// DeleteNotification removes one notification from the caller's inbox
// @Summary      Delete notification
// @Tags         Notification
// @Produce      json
// @Param        id path int true "Notification ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  ErrorResponse
// @Router       /notifications/{id} [delete]
// @Security     BearerAuth
func (c *NotificationController) DeleteNotification() {
	user, ok := currentUser(c.Ctx, c.Container)
	if !ok {
		return
	}
	id, err := strconv.ParseUint(c.Ctx.Param("id"), 10, 32)
	if err != nil {
		respondBadRequest(c.Ctx, "invalid notification id")
		return
	}

	notificationService := c.Container.GetService("notification").(services.InterfaceNotificationService)
	if err := notificationService.Delete(user.ID, uint(id)); err != nil {
		respondError(c.Ctx, err)
		return
	}
	respondMessage(c.Ctx, "notification deleted")
}
