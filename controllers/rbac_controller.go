package controllers

import (
	"strconv"

	"newsdesk-http-service/services"
	"newsdesk-http-service/services/container"

	"github.com/gin-gonic/gin"
)

// RBACController exposes the role and permission tables
type RBACController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewRBACController creates a new RBAC controller
func NewRBACController(ctx *gin.Context, container *container.ServiceContainer) *RBACController {
	return &RBACController{
		Ctx:       ctx,
		Container: container,
	}
}

// HandleRBACFunc returns a Gin handler dispatching RBAC methods
func HandleRBACFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewRBACController(ctx, container)

		switch method {
		case "getRoles":
			controller.GetRoles()
		case "getPermissions":
			controller.GetPermissions()
		case "getRolePermissions":
			controller.GetRolePermissions()
		default:
			respondInvalidMethod(ctx)
		}
	}
}

// GetRoles lists role definitions
// @Summary      List roles
// @Tags         RBAC
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /roles [get]
// @Security     BearerAuth
func (c *RBACController) GetRoles() {
	if _, ok := currentUser(c.Ctx, c.Container); !ok {
		return
	}

	rbacService := c.Container.GetService("rbac").(services.InterfaceRBACService)
	roles, err := rbacService.ListRoles()
	if err != nil {
		respondError(c.Ctx, err)
		return
	}
	respondSuccess(c.Ctx, roles)
}

// GetPermissions lists permission definitions
// @Summary      List permissions
// @Tags         RBAC
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /permissions [get]
// @Security     BearerAuth
func (c *RBACController) GetPermissions() {
	if _, ok := currentUser(c.Ctx, c.Container); !ok {
		return
	}

	rbacService := c.Container.GetService("rbac").(services.InterfaceRBACService)
	permissions, err := rbacService.ListPermissions()
	if err != nil {
		respondError(c.Ctx, err)
		return
	}
	respondSuccess(c.Ctx, permissions)
}

// GetRolePermissions lists the permissions of one role
// @Summary      Role permissions
// @Tags         RBAC
// @Produce      json
// @Param        id path int true "Role ID"
// @Success      200  {object}  map[string]interface{}
// @Router       /roles/{id}/permissions [get]
// @Security     BearerAuth
func (c *RBACController) GetRolePermissions() {
	if _, ok := currentUser(c.Ctx, c.Container); !ok {
		return
	}
	id, err := strconv.ParseUint(c.Ctx.Param("id"), 10, 32)
	if err != nil {
		respondBadRequest(c.Ctx, "invalid role id")
		return
	}

	rbacService := c.Container.GetService("rbac").(services.InterfaceRBACService)
	permissions, err := rbacService.PermissionsForRole(uint(id))
	if err != nil {
		respondError(c.Ctx, err)
		return
	}
	respondSuccess(c.Ctx, permissions)
}
