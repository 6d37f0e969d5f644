package controllers

import (
	"newsdesk-http-service/models"
	"newsdesk-http-service/services"
	"newsdesk-http-service/services/container"

	"github.com/gin-gonic/gin"
)

// AuditController exposes the audit trail, admin only
type AuditController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewAuditController creates a new audit controller
func NewAuditController(ctx *gin.Context, container *container.ServiceContainer) *AuditController {
	return &AuditController{
		Ctx:       ctx,
		Container: container,
	}
}

// HandleAuditFunc returns a Gin handler dispatching audit methods
func HandleAuditFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewAuditController(ctx, container)

		switch method {
		case "getAuditLogs":
			controller.GetAuditLogs()
		default:
			respondInvalidMethod(ctx)
		}
	}
}

// GetAuditLogs lists audit rows, newest first
// @Summary      List audit logs
// @Tags         Audit
// @Produce      json
// @Param        table_name query string false "Table filter"
// @Param        action query string false "Action filter (create, update, delete)"
// @Param        username query string false "Username filter"
// @Param        page query int false "Page, default 1"
// @Param        page_size query int false "Page size, default 50"
// @Success      200  {object}  map[string]interface{}
// @Failure      403  {object}  ErrorResponse
// @Router       /audit [get]
// @Security     BearerAuth
func (c *AuditController) GetAuditLogs() {
	user, ok := currentUser(c.Ctx, c.Container)
	if !ok {
		return
	}
	if user.Role != models.RoleAdmin {
		respondError(c.Ctx, services.ErrForbidden)
		return
	}

	var query services.AuditListQuery
	if err := c.Ctx.ShouldBindQuery(&query); err != nil {
		respondBadRequest(c.Ctx, "invalid query: "+err.Error())
		return
	}
	if query.Page < 1 {
		query.Page = 1
	}
	if query.PageSize < 1 || query.PageSize > 200 {
		query.PageSize = 50
	}

	auditService := c.Container.GetService("audit").(services.InterfaceAuditService)
	logs, total, err := auditService.List(&query)
	if err != nil {
		respondError(c.Ctx, err)
		return
	}

	respondSuccess(c.Ctx, gin.H{
		"logs":      logs,
		"total":     total,
		"page":      query.Page,
		"page_size": query.PageSize,
	})
}
