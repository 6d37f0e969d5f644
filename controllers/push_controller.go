package controllers

import (
	"newsdesk-http-service/services"
	"newsdesk-http-service/services/container"

	"github.com/gin-gonic/gin"
)

// PushController manages browser web-push subscriptions
type PushController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewPushController creates a new push controller
func NewPushController(ctx *gin.Context, container *container.ServiceContainer) *PushController {
	return &PushController{
		Ctx:       ctx,
		Container: container,
	}
}

// UnsubscribeRequest names the endpoint to remove
type UnsubscribeRequest struct {
	Endpoint string `json:"endpoint" binding:"required"`
}

// HandlePushFunc returns a Gin handler dispatching push methods
func HandlePushFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewPushController(ctx, container)

		switch method {
		case "publicKey":
			controller.PublicKey()
		case "subscribe":
			controller.Subscribe()
		case "unsubscribe":
			controller.Unsubscribe()
		default:
			respondInvalidMethod(ctx)
		}
	}
}

// PublicKey returns the VAPID public key for subscription
// @Summary      VAPID public key
// @Tags         Push
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /push/public-key [get]
// @Security     BearerAuth
func (c *PushController) PublicKey() {
	if _, ok := currentUser(c.Ctx, c.Container); !ok {
		return
	}

	pushService := c.Container.GetService("push").(services.InterfacePushService)
	respondSuccess(c.Ctx, gin.H{"public_key": pushService.PublicKey()})
}

// Subscribe registers a browser push subscription for the caller
// @Summary      Subscribe to web push
// @Tags         Push
// @Accept       json
// @Produce      json
// @Param        request body services.PushSubscribeRequest true "Browser subscription"
// @Success      201  {object}  map[string]interface{}
// @Router       /push/subscribe [post]
// @Security     BearerAuth
func (c *PushController) Subscribe() {
	user, ok := currentUser(c.Ctx, c.Container)
	if !ok {
		return
	}

	var req services.PushSubscribeRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c.Ctx, "invalid request: "+err.Error())
		return
	}

	pushService := c.Container.GetService("push").(services.InterfacePushService)
	if err := pushService.Subscribe(user.ID, &req); err != nil {
		respondError(c.Ctx, err)
		return
	}
	respondCreated(c.Ctx, gin.H{"subscribed": true})
}

// Unsubscribe removes a browser push subscription
// @Summary      Unsubscribe from web push
// @Tags         Push
// @Accept       json
// @Produce      json
// @Param        request body UnsubscribeRequest true "Endpoint"
// @Success      200  {object}  map[string]interface{}
// @Router       /push/unsubscribe [post]
// @Security     BearerAuth
func (c *PushController) Unsubscribe() {
	user, ok := currentUser(c.Ctx, c.Container)
	if !ok {
		return
	}

	var req UnsubscribeRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c.Ctx, "invalid request: "+err.Error())
		return
	}

	pushService := c.Container.GetService("push").(services.InterfacePushService)
	if err := pushService.Unsubscribe(user.ID, req.Endpoint); err != nil {
		respondError(c.Ctx, err)
		return
	}
	respondMessage(c.Ctx, "unsubscribed")
}
