package controllers

import (
	"strconv"

	"newsdesk-http-service/models"
	"newsdesk-http-service/services"
	"newsdesk-http-service/services/container"

	"github.com/gin-gonic/gin"
)

// PresetController handles saved task template endpoints
type PresetController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewPresetController creates a new preset controller
func NewPresetController(ctx *gin.Context, container *container.ServiceContainer) *PresetController {
	return &PresetController{
		Ctx:       ctx,
		Container: container,
	}
}

// HandlePresetFunc returns a Gin handler dispatching preset methods
func HandlePresetFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewPresetController(ctx, container)

		switch method {
		case "getPresets":
			controller.GetPresets()
		case "createPreset":
			controller.CreatePreset()
		case "updatePreset":
			controller.UpdatePreset()
		case "deletePreset":
			controller.DeletePreset()
		default:
			respondInvalidMethod(ctx)
		}
	}
}

// GetPresets lists saved task templates
// @Summary      List task presets
// @Tags         Preset
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /task-presets [get]
// @Security     BearerAuth
func (c *PresetController) GetPresets() {
	if _, ok := currentUser(c.Ctx, c.Container); !ok {
		return
	}

	presetService := c.Container.GetService("preset").(services.InterfacePresetService)
	presets, err := presetService.ListPresets()
	if err != nil {
		respondError(c.Ctx, err)
		return
	}
	respondSuccess(c.Ctx, presets)
}

// CreatePreset saves a task template
// @Summary      Create task preset
// @Tags         Preset
// @Accept       json
// @Produce      json
// @Param        request body models.TaskPreset true "Preset"
// @Success      201  {object}  map[string]interface{}
// @Router       /task-presets [post]
// @Security     BearerAuth
func (c *PresetController) CreatePreset() {
	user, ok := currentUser(c.Ctx, c.Container)
	if !ok {
		return
	}

	var preset models.TaskPreset
	if err := c.Ctx.ShouldBindJSON(&preset); err != nil {
		respondBadRequest(c.Ctx, "invalid request: "+err.Error())
		return
	}
	preset.CreatedBy = &user.ID

	presetService := c.Container.GetService("preset").(services.InterfacePresetService)
	if err := presetService.CreatePreset(&preset); err != nil {
		respondError(c.Ctx, err)
		return
	}
	respondCreated(c.Ctx, preset)
}

// UpdatePreset applies a partial update
// @Summary      Update task preset
// @Tags         Preset
// @Accept       json
// @Produce      json
// @Param        id path int true "Preset ID"
// @Param        request body map[string]interface{} true "Changed fields"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  ErrorResponse
// @Router       /task-presets/{id} [put]
// @Security     BearerAuth
func (c *PresetController) UpdatePreset() {
	if _, ok := currentUser(c.Ctx, c.Container); !ok {
		return
	}
	id, err := strconv.ParseUint(c.Ctx.Param("id"), 10, 32)
	if err != nil {
		respondBadRequest(c.Ctx, "invalid preset id")
		return
	}

	var updates map[string]interface{}
	if err := c.Ctx.ShouldBindJSON(&updates); err != nil {
		respondBadRequest(c.Ctx, "invalid request: "+err.Error())
		return
	}
	delete(updates, "id")

	presetService := c.Container.GetService("preset").(services.InterfacePresetService)
	preset, err := presetService.UpdatePreset(uint(id), updates)
	if err != nil {
		respondError(c.Ctx, err)
		return
	}
	respondSuccess(c.Ctx, preset)
}

// DeletePreset removes a saved template
// @Summary      Delete task preset
// @Tags         Preset
// @Produce      json
// @Param        id path int true "Preset ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  ErrorResponse
// @Router       /task-presets/{id} [delete]
// @Security     BearerAuth
func (c *PresetController) DeletePreset() {
	if _, ok := currentUser(c.Ctx, c.Container); !ok {
		return
	}
	id, err := strconv.ParseUint(c.Ctx.Param("id"), 10, 32)
	if err != nil {
		respondBadRequest(c.Ctx, "invalid preset id")
		return
	}

	presetService := c.Container.GetService("preset").(services.InterfacePresetService)
	if err := presetService.DeletePreset(uint(id)); err != nil {
		respondError(c.Ctx, err)
		return
	}
	respondMessage(c.Ctx, "preset deleted")
}
