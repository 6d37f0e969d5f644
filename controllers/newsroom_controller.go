package controllers

import (
	"strconv"

	"newsdesk-http-service/models"
	"newsdesk-http-service/services"
	"newsdesk-http-service/services/container"

	"github.com/gin-gonic/gin"
)

// NewsroomController handles newsroom management
type NewsroomController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewNewsroomController creates a new newsroom controller
func NewNewsroomController(ctx *gin.Context, container *container.ServiceContainer) *NewsroomController {
	return &NewsroomController{
		Ctx:       ctx,
		Container: container,
	}
}

// CreateNewsroomRequest is the newsroom payload
type CreateNewsroomRequest struct {
	Name string `json:"name" binding:"required" example:"Informativna redakcija"`
	PIN  string `json:"pin" example:"4821"`
}

// HandleNewsroomFunc returns a Gin handler dispatching newsroom methods
func HandleNewsroomFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewNewsroomController(ctx, container)

		switch method {
		case "getNewsrooms":
			controller.GetNewsrooms()
		case "getNewsroom":
			controller.GetNewsroom()
		case "createNewsroom":
			controller.CreateNewsroom()
		case "updateNewsroom":
			controller.UpdateNewsroom()
		case "deleteNewsroom":
			controller.DeleteNewsroom()
		default:
			respondInvalidMethod(ctx)
		}
	}
}

// GetNewsrooms lists all newsrooms
// @Summary      List newsrooms
// @Tags         Newsroom
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /newsrooms [get]
// @Security     BearerAuth
func (c *NewsroomController) GetNewsrooms() {
	if _, ok := currentUser(c.Ctx, c.Container); !ok {
		return
	}

	newsroomService := c.Container.GetService("newsroom").(services.InterfaceNewsroomService)
	newsrooms, err := newsroomService.GetAllNewsrooms()
	if err != nil {
		respondError(c.Ctx, err)
		return
	}
	respondSuccess(c.Ctx, newsrooms)
}

// GetNewsroom returns one newsroom
// @Summary      Get newsroom
// @Tags         Newsroom
// @Produce      json
// @Param        id path int true "Newsroom ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  ErrorResponse
// @Router       /newsrooms/{id} [get]
// @Security     BearerAuth
func (c *NewsroomController) GetNewsroom() {
	if _, ok := currentUser(c.Ctx, c.Container); !ok {
		return
	}
	id, err := strconv.ParseUint(c.Ctx.Param("id"), 10, 32)
	if err != nil {
		respondBadRequest(c.Ctx, "invalid newsroom id")
		return
	}

	newsroomService := c.Container.GetService("newsroom").(services.InterfaceNewsroomService)
	newsroom, err := newsroomService.GetNewsroomByID(uint(id))
	if err != nil {
		respondError(c.Ctx, err)
		return
	}
	respondSuccess(c.Ctx, newsroom)
}

// CreateNewsroom adds a newsroom
// @Summary      Create newsroom
// @Tags         Newsroom
// @Accept       json
// @Produce      json
// @Param        request body CreateNewsroomRequest true "Newsroom"
// @Success      201  {object}  map[string]interface{}
// @Failure      403  {object}  ErrorResponse
// @Router       /newsrooms [post]
// @Security     BearerAuth
func (c *NewsroomController) CreateNewsroom() {
	user, ok := currentUser(c.Ctx, c.Container)
	if !ok {
		return
	}
	if !user.IsAdminOrProducer() {
		respondError(c.Ctx, services.ErrForbidden)
		return
	}

	var req CreateNewsroomRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c.Ctx, "invalid request: "+err.Error())
		return
	}

	newsroom := models.Newsroom{Name: req.Name, PIN: req.PIN}
	newsroomService := c.Container.GetService("newsroom").(services.InterfaceNewsroomService)
	if err := newsroomService.CreateNewsroom(&newsroom); err != nil {
		respondError(c.Ctx, err)
		return
	}
	respondCreated(c.Ctx, newsroom)
}

// UpdateNewsroom applies a partial update
// @Summary      Update newsroom
// @Tags         Newsroom
// @Accept       json
// @Produce      json
// @Param        id path int true "Newsroom ID"
// @Param        request body map[string]interface{} true "Changed fields"
// @Success      200  {object}  map[string]interface{}
// @Failure      403  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /newsrooms/{id} [put]
// @Security     BearerAuth
func (c *NewsroomController) UpdateNewsroom() {
	user, ok := currentUser(c.Ctx, c.Container)
	if !ok {
		return
	}
	if !user.IsAdminOrProducer() {
		respondError(c.Ctx, services.ErrForbidden)
		return
	}
	id, err := strconv.ParseUint(c.Ctx.Param("id"), 10, 32)
	if err != nil {
		respondBadRequest(c.Ctx, "invalid newsroom id")
		return
	}

	var updates map[string]interface{}
	if err := c.Ctx.ShouldBindJSON(&updates); err != nil {
		respondBadRequest(c.Ctx, "invalid request: "+err.Error())
		return
	}
	delete(updates, "id")

	newsroomService := c.Container.GetService("newsroom").(services.InterfaceNewsroomService)
	newsroom, err := newsroomService.UpdateNewsroom(uint(id), updates)
	if err != nil {
		respondError(c.Ctx, err)
		return
	}
	respondSuccess(c.Ctx, newsroom)
}

// DeleteNewsroom removes an empty newsroom
// @Summary      Delete newsroom
// @Description  Fails while tasks or users still belong to the newsroom
// @Tags         Newsroom
// @Produce      json
// @Param        id path int true "Newsroom ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse
// @Router       /newsrooms/{id} [delete]
// @Security     BearerAuth
func (c *NewsroomController) DeleteNewsroom() {
	user, ok := currentUser(c.Ctx, c.Container)
	if !ok {
		return
	}
	if user.Role != models.RoleAdmin {
		respondError(c.Ctx, services.ErrForbidden)
		return
	}
	id, err := strconv.ParseUint(c.Ctx.Param("id"), 10, 32)
	if err != nil {
		respondBadRequest(c.Ctx, "invalid newsroom id")
		return
	}

	newsroomService := c.Container.GetService("newsroom").(services.InterfaceNewsroomService)
	if err := newsroomService.DeleteNewsroom(uint(id)); err != nil {
		respondError(c.Ctx, err)
		return
	}
	respondMessage(c.Ctx, "newsroom deleted")
}
