package controllers

import (
	"strings"

	"newsdesk-http-service/services"
	"newsdesk-http-service/services/container"

	"github.com/gin-gonic/gin"
)

// InterfaceAuthController defines the auth controller surface
type InterfaceAuthController interface {
	Login()
	LoginWithPIN()
	Logout()
	Me()
}

// AuthController handles login, logout and current-user queries
type AuthController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewAuthController creates a new auth controller
func NewAuthController(ctx *gin.Context, container *container.ServiceContainer) *AuthController {
	return &AuthController{
		Ctx:       ctx,
		Container: container,
	}
}

// LoginRequest is the username/password login payload
type LoginRequest struct {
	Username string `json:"username" binding:"required" example:"devleta.brkic"`
	Password string `json:"password" binding:"required" example:"Password@123"`
}

// PINLoginRequest is the newsroom PIN login payload
type PINLoginRequest struct {
	Username   string `json:"username" binding:"required" example:"devleta.brkic"`
	NewsroomID uint   `json:"newsroom_id" binding:"required" example:"1"`
	PIN        string `json:"pin" binding:"required" example:"4821"`
}

// HandleAuthFunc returns a Gin handler dispatching auth methods
func HandleAuthFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewAuthController(ctx, container)

		switch method {
		case "login":
			controller.Login()
		case "loginPin":
			controller.LoginWithPIN()
		case "logout":
			controller.Logout()
		case "me":
			controller.Me()
		default:
			respondInvalidMethod(ctx)
		}
	}
}

// Login authenticates by username and password
// @Summary      Log in
// @Description  Authenticate with username and password, returns a JWT token
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request body LoginRequest true "Credentials"
// @Success      200  {object}  map[string]interface{}
// @Failure      403  {object}  ErrorResponse
// @Router       /auth/login [post]
func (c *AuthController) Login() {
	var req LoginRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c.Ctx, "invalid request: "+err.Error())
		return
	}

	authService := c.Container.GetService("auth").(services.InterfaceAuthService)
	user, token, err := authService.Login(req.Username, req.Password)
	if err != nil {
		respondError(c.Ctx, err)
		return
	}

	respondSuccess(c.Ctx, gin.H{
		"token": token,
		"user":  user,
	})
}

// LoginWithPIN authenticates through the newsroom's shared PIN
// @Summary      Log in with newsroom PIN
// @Description  Authenticate with username, newsroom and the newsroom's shared PIN
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request body PINLoginRequest true "Credentials"
// @Success      200  {object}  map[string]interface{}
// @Failure      403  {object}  ErrorResponse
// @Router       /auth/login-pin [post]
func (c *AuthController) LoginWithPIN() {
	var req PINLoginRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c.Ctx, "invalid request: "+err.Error())
		return
	}

	authService := c.Container.GetService("auth").(services.InterfaceAuthService)
	user, token, err := authService.LoginWithPIN(req.Username, req.NewsroomID, req.PIN)
	if err != nil {
		respondError(c.Ctx, err)
		return
	}

	respondSuccess(c.Ctx, gin.H{
		"token": token,
		"user":  user,
	})
}

// Logout revokes the presented token
// @Summary      Log out
// @Description  Revoke the current JWT token
// @Tags         Auth
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /auth/logout [post]
// @Security     BearerAuth
func (c *AuthController) Logout() {
	header := c.Ctx.GetHeader("Authorization")
	token := strings.TrimPrefix(header, "Bearer ")
	if token == "" || token == header {
		respondBadRequest(c.Ctx, "missing bearer token")
		return
	}

	authService := c.Container.GetService("auth").(services.InterfaceAuthService)
	if err := authService.Logout(token); err != nil {
		respondError(c.Ctx, err)
		return
	}
	respondMessage(c.Ctx, "logged out")
}

// Me returns the authenticated user
// @Summary      Current user
// @Description  Return the user attached to the presented token
// @Tags         Auth
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  ErrorResponse
// @Router       /auth/me [get]
// @Security     BearerAuth
func (c *AuthController) Me() {
	user, ok := currentUser(c.Ctx, c.Container)
	if !ok {
		return
	}
	respondSuccess(c.Ctx, user)
}
