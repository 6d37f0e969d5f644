package controllers

import (
	"newsdesk-http-service/models"
	"newsdesk-http-service/services"
	"newsdesk-http-service/services/container"

	"github.com/gin-gonic/gin"
)

// BackupController handles database backup endpoints, admin only
type BackupController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewBackupController creates a new backup controller
func NewBackupController(ctx *gin.Context, container *container.ServiceContainer) *BackupController {
	return &BackupController{
		Ctx:       ctx,
		Container: container,
	}
}

// RestoreRequest names the archive to restore
type RestoreRequest struct {
	Filename string `json:"filename" binding:"required" example:"2026-08-30_020000_daily_a1b2c3d4.db"`
}

// HandleBackupFunc returns a Gin handler dispatching backup methods
func HandleBackupFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewBackupController(ctx, container)

		switch method {
		case "getBackups":
			controller.GetBackups()
		case "createBackup":
			controller.CreateBackup()
		case "restoreBackup":
			controller.RestoreBackup()
		default:
			respondInvalidMethod(ctx)
		}
	}
}

func (c *BackupController) requireAdmin() bool {
	user, ok := currentUser(c.Ctx, c.Container)
	if !ok {
		return false
	}
	if user.Role != models.RoleAdmin {
		respondError(c.Ctx, services.ErrForbidden)
		return false
	}
	return true
}

// GetBackups lists backup archives
// @Summary      List backups
// @Tags         Backup
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      403  {object}  ErrorResponse
// @Router       /backup [get]
// @Security     BearerAuth
func (c *BackupController) GetBackups() {
	if !c.requireAdmin() {
		return
	}

	backupService := c.Container.GetService("backup").(services.InterfaceBackupService)
	backups, err := backupService.ListBackups()
	if err != nil {
		respondError(c.Ctx, err)
		return
	}
	respondSuccess(c.Ctx, backups)
}

// CreateBackup triggers a manual backup
// @Summary      Create backup
// @Tags         Backup
// @Produce      json
// @Success      201  {object}  map[string]interface{}
// @Failure      403  {object}  ErrorResponse
// @Router       /backup [post]
// @Security     BearerAuth
func (c *BackupController) CreateBackup() {
	if !c.requireAdmin() {
		return
	}

	backupService := c.Container.GetService("backup").(services.InterfaceBackupService)
	info, err := backupService.CreateBackup("manual")
	if err != nil {
		respondError(c.Ctx, err)
		return
	}
	respondCreated(c.Ctx, info)
}

// RestoreBackup replaces the live database with an archive
// @Summary      Restore backup
// @Description  Replaces the live database file. Use only during a maintenance window.
// @Tags         Backup
// @Accept       json
// @Produce      json
// @Param        request body RestoreRequest true "Archive"
// @Success      200  {object}  map[string]interface{}
// @Failure      403  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /backup/restore [post]
// @Security     BearerAuth
func (c *BackupController) RestoreBackup() {
	if !c.requireAdmin() {
		return
	}

	var req RestoreRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c.Ctx, "invalid request: "+err.Error())
		return
	}

	backupService := c.Container.GetService("backup").(services.InterfaceBackupService)
	if err := backupService.RestoreBackup(req.Filename); err != nil {
		respondError(c.Ctx, err)
		return
	}
	respondMessage(c.Ctx, "database restored, restart the service to reload connections")
}
