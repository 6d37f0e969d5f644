package controllers

import (
	"strconv"

	"newsdesk-http-service/models"
	"newsdesk-http-service/services"
	"newsdesk-http-service/services/container"

	"github.com/gin-gonic/gin"
)

// InterfaceUserController defines the account controller surface
type InterfaceUserController interface {
	GetUsers()
	GetUser()
	CreateUser()
	UpdateUser()
	DeleteUser()
}

// UserController handles login account management, admin only
type UserController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewUserController creates a new user controller
func NewUserController(ctx *gin.Context, container *container.ServiceContainer) *UserController {
	return &UserController{
		Ctx:       ctx,
		Container: container,
	}
}

// CreateUserRequest is the account creation payload
type CreateUserRequest struct {
	Username   string `json:"username" binding:"required" example:"devleta.brkic"`
	Name       string `json:"name" example:"Devleta Brkić"`
	Password   string `json:"password" binding:"required,min=6" example:"Password@123"`
	Role       string `json:"role" binding:"required" example:"JOURNALIST"`
	NewsroomID *uint  `json:"newsroom_id"`
}

// HandleUserFunc returns a Gin handler dispatching account methods
func HandleUserFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewUserController(ctx, container)

		switch method {
		case "getUsers":
			controller.GetUsers()
		case "getUser":
			controller.GetUser()
		case "createUser":
			controller.CreateUser()
		case "updateUser":
			controller.UpdateUser()
		case "deleteUser":
			controller.DeleteUser()
		default:
			respondInvalidMethod(ctx)
		}
	}
}

func (c *UserController) requireAdmin() (*models.User, bool) {
	user, ok := currentUser(c.Ctx, c.Container)
	if !ok {
		return nil, false
	}
	if user.Role != models.RoleAdmin {
		respondError(c.Ctx, services.ErrForbidden)
		return nil, false
	}
	return user, true
}

// GetUsers lists login accounts
// @Summary      List accounts
// @Tags         User
// @Produce      json
// @Param        page query int false "Page, default 1"
// @Param        page_size query int false "Page size, default 50"
// @Param        search query string false "Search in username, name"
// @Success      200  {object}  map[string]interface{}
// @Failure      403  {object}  ErrorResponse
// @Router       /users [get]
// @Security     BearerAuth
func (c *UserController) GetUsers() {
	if _, ok := c.requireAdmin(); !ok {
		return
	}

	var query models.PaginationQuery
	if err := c.Ctx.ShouldBindQuery(&query); err != nil {
		respondBadRequest(c.Ctx, "invalid query: "+err.Error())
		return
	}
	query.Normalize()

	userService := c.Container.GetService("user").(services.InterfaceUserService)
	users, total, err := userService.GetAllUsers(query.Page, query.PageSize, query.Search)
	if err != nil {
		respondError(c.Ctx, err)
		return
	}

	respondSuccess(c.Ctx, struct {
		Users []models.User `json:"users"`
		models.PaginationResult
	}{users, models.NewPaginationResult(total, query.Page, query.PageSize)})
}

// GetUser returns one account
// @Summary      Get account
// @Tags         User
// @Produce      json
// @Param        id path int true "User ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  ErrorResponse
// @Router       /users/{id} [get]
// @Security     BearerAuth
func (c *UserController) GetUser() {
	if _, ok := c.requireAdmin(); !ok {
		return
	}
	id, err := strconv.ParseUint(c.Ctx.Param("id"), 10, 32)
	if err != nil {
		respondBadRequest(c.Ctx, "invalid user id")
		return
	}

	userService := c.Container.GetService("user").(services.InterfaceUserService)
	user, err := userService.GetUserByID(uint(id))
	if err != nil {
		respondError(c.Ctx, err)
		return
	}
	respondSuccess(c.Ctx, user)
}

// CreateUser adds a login account
// @Summary      Create account
// @Tags         User
// @Accept       json
// @Produce      json
// @Param        request body CreateUserRequest true "Account"
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse
// @Router       /users [post]
// @Security     BearerAuth
func (c *UserController) CreateUser() {
	if _, ok := c.requireAdmin(); !ok {
		return
	}

	var req CreateUserRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c.Ctx, "invalid request: "+err.Error())
		return
	}

	user := models.User{
		Username:   req.Username,
		Name:       req.Name,
		Password:   req.Password,
		Role:       req.Role,
		NewsroomID: req.NewsroomID,
		IsActive:   true,
	}
	userService := c.Container.GetService("user").(services.InterfaceUserService)
	if err := userService.CreateUser(&user); err != nil {
		respondError(c.Ctx, err)
		return
	}
	respondCreated(c.Ctx, user)
}

// UpdateUser applies a partial update
// @Summary      Update account
// @Tags         User
// @Accept       json
// @Produce      json
// @Param        id path int true "User ID"
// @Param        request body map[string]interface{} true "Changed fields"
// @Success      200  {object}  map[string]interface{}
// @Failure      403  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /users/{id} [put]
// @Security     BearerAuth
func (c *UserController) UpdateUser() {
	if _, ok := c.requireAdmin(); !ok {
		return
	}
	id, err := strconv.ParseUint(c.Ctx.Param("id"), 10, 32)
	if err != nil {
		respondBadRequest(c.Ctx, "invalid user id")
		return
	}

	var updates map[string]interface{}
	if err := c.Ctx.ShouldBindJSON(&updates); err != nil {
		respondBadRequest(c.Ctx, "invalid request: "+err.Error())
		return
	}
	delete(updates, "id")

	userService := c.Container.GetService("user").(services.InterfaceUserService)
	user, err := userService.UpdateUser(uint(id), updates)
	if err != nil {
		respondError(c.Ctx, err)
		return
	}
	respondSuccess(c.Ctx, user)
}

// DeleteUser removes or deactivates an account
// @Summary      Delete account
// @Description  Accounts referenced by tasks or notifications are deactivated instead of deleted
// @Tags         User
// @Produce      json
// @Param        id path int true "User ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      403  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /users/{id} [delete]
// @Security     BearerAuth
func (c *UserController) DeleteUser() {
	admin, ok := c.requireAdmin()
	if !ok {
		return
	}
	id, err := strconv.ParseUint(c.Ctx.Param("id"), 10, 32)
	if err != nil {
		respondBadRequest(c.Ctx, "invalid user id")
		return
	}
	if uint(id) == admin.ID {
		respondBadRequest(c.Ctx, "cannot delete your own account")
		return
	}

	userService := c.Container.GetService("user").(services.InterfaceUserService)
	if err := userService.DeleteUser(uint(id)); err != nil {
		respondError(c.Ctx, err)
		return
	}
	respondMessage(c.Ctx, "user deleted")
}
