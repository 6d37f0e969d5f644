package controllers

import (
	"strconv"

	"newsdesk-http-service/models"
	"newsdesk-http-service/services"
	"newsdesk-http-service/services/container"

	"github.com/gin-gonic/gin"
)

// VehicleController handles vehicle and equipment endpoints
type VehicleController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewVehicleController creates a new vehicle controller
func NewVehicleController(ctx *gin.Context, container *container.ServiceContainer) *VehicleController {
	return &VehicleController{
		Ctx:       ctx,
		Container: container,
	}
}

// HandleVehicleFunc returns a Gin handler dispatching vehicle/equipment methods
func HandleVehicleFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewVehicleController(ctx, container)

		switch method {
		case "getVehicles":
			controller.GetVehicles()
		case "createVehicle":
			controller.CreateVehicle()
		case "updateVehicle":
			controller.UpdateVehicle()
		case "deleteVehicle":
			controller.DeleteVehicle()
		case "getEquipment":
			controller.GetEquipment()
		case "createEquipment":
			controller.CreateEquipment()
		case "updateEquipment":
			controller.UpdateEquipment()
		case "deleteEquipment":
			controller.DeleteEquipment()
		default:
			respondInvalidMethod(ctx)
		}
	}
}

func (c *VehicleController) requireFleetManager() bool {
	user, ok := currentUser(c.Ctx, c.Container)
	if !ok {
		return false
	}
	switch user.Role {
	case models.RoleAdmin, models.RoleProducer, models.RoleChiefCamera:
		return true
	}
	respondError(c.Ctx, services.ErrForbidden)
	return false
}

// GetVehicles lists vehicles
// @Summary      List vehicles
// @Tags         Vehicle
// @Produce      json
// @Param        active query bool false "Only active vehicles"
// @Success      200  {object}  map[string]interface{}
// @Router       /vehicles [get]
// @Security     BearerAuth
func (c *VehicleController) GetVehicles() {
	if _, ok := currentUser(c.Ctx, c.Container); !ok {
		return
	}
	activeOnly := c.Ctx.Query("active") == "true"

	vehicleService := c.Container.GetService("vehicle").(services.InterfaceVehicleService)
	vehicles, err := vehicleService.GetAllVehicles(activeOnly)
	if err != nil {
		respondError(c.Ctx, err)
		return
	}
	respondSuccess(c.Ctx, vehicles)
}

// CreateVehicle adds a vehicle
// @Summary      Create vehicle
// @Tags         Vehicle
// @Accept       json
// @Produce      json
// @Param        request body models.Vehicle true "Vehicle"
// @Success      201  {object}  map[string]interface{}
// @Failure      403  {object}  ErrorResponse
// @Router       /vehicles [post]
// @Security     BearerAuth
func (c *VehicleController) CreateVehicle() {
	if !c.requireFleetManager() {
		return
	}

	var vehicle models.Vehicle
	if err := c.Ctx.ShouldBindJSON(&vehicle); err != nil {
		respondBadRequest(c.Ctx, "invalid request: "+err.Error())
		return
	}

	vehicleService := c.Container.GetService("vehicle").(services.InterfaceVehicleService)
	if err := vehicleService.CreateVehicle(&vehicle); err != nil {
		respondError(c.Ctx, err)
		return
	}
	respondCreated(c.Ctx, vehicle)
}

// UpdateVehicle applies a partial update
// @Summary      Update vehicle
// @Tags         Vehicle
// @Accept       json
// @Produce      json
// @Param        id path int true "Vehicle ID"
// @Param        request body map[string]interface{} true "Changed fields"
// @Success      200  {object}  map[string]interface{}
// @Failure      403  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /vehicles/{id} [put]
// @Security     BearerAuth
func (c *VehicleController) UpdateVehicle() {
	if !c.requireFleetManager() {
		return
	}
	id, err := strconv.ParseUint(c.Ctx.Param("id"), 10, 32)
	if err != nil {
		respondBadRequest(c.Ctx, "invalid vehicle id")
		return
	}

	var updates map[string]interface{}
	if err := c.Ctx.ShouldBindJSON(&updates); err != nil {
		respondBadRequest(c.Ctx, "invalid request: "+err.Error())
		return
	}
	delete(updates, "id")

	vehicleService := c.Container.GetService("vehicle").(services.InterfaceVehicleService)
	vehicle, err := vehicleService.UpdateVehicle(uint(id), updates)
	if err != nil {
		respondError(c.Ctx, err)
		return
	}
	respondSuccess(c.Ctx, vehicle)
}

// DeleteVehicle removes a vehicle
// @Summary      Delete vehicle
// @Tags         Vehicle
// @Produce      json
// @Param        id path int true "Vehicle ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      403  {object}  ErrorResponse
// @Router       /vehicles/{id} [delete]
// @Security     BearerAuth
func (c *VehicleController) DeleteVehicle() {
	if !c.requireFleetManager() {
		return
	}
	id, err := strconv.ParseUint(c.Ctx.Param("id"), 10, 32)
	if err != nil {
		respondBadRequest(c.Ctx, "invalid vehicle id")
		return
	}

	vehicleService := c.Container.GetService("vehicle").(services.InterfaceVehicleService)
	if err := vehicleService.DeleteVehicle(uint(id)); err != nil {
		respondError(c.Ctx, err)
		return
	}
	respondMessage(c.Ctx, "vehicle deleted")
}

// GetEquipment lists equipment kits
// @Summary      List equipment
// @Tags         Vehicle
// @Produce      json
// @Param        active query bool false "Only active equipment"
// @Success      200  {object}  map[string]interface{}
// @Router       /equipment [get]
// @Security     BearerAuth
func (c *VehicleController) GetEquipment() {
	if _, ok := currentUser(c.Ctx, c.Container); !ok {
		return
	}
	activeOnly := c.Ctx.Query("active") == "true"

	vehicleService := c.Container.GetService("vehicle").(services.InterfaceVehicleService)
	equipment, err := vehicleService.GetAllEquipment(activeOnly)
	if err != nil {
		respondError(c.Ctx, err)
		return
	}
	respondSuccess(c.Ctx, equipment)
}

// CreateEquipment adds an equipment kit
// @Summary      Create equipment
// @Tags         Vehicle
// @Accept       json
// @Produce      json
// @Param        request body models.Equipment true "Equipment"
// @Success      201  {object}  map[string]interface{}
// @Failure      403  {object}  ErrorResponse
// @Router       /equipment [post]
// @Security     BearerAuth
func (c *VehicleController) CreateEquipment() {
	if !c.requireFleetManager() {
		return
	}

	var equipment models.Equipment
	if err := c.Ctx.ShouldBindJSON(&equipment); err != nil {
		respondBadRequest(c.Ctx, "invalid request: "+err.Error())
		return
	}

	vehicleService := c.Container.GetService("vehicle").(services.InterfaceVehicleService)
	if err := vehicleService.CreateEquipment(&equipment); err != nil {
		respondError(c.Ctx, err)
		return
	}
	respondCreated(c.Ctx, equipment)
}

// UpdateEquipment applies a partial update
// @Summary      Update equipment
// @Tags         Vehicle
// @Accept       json
// @Produce      json
// @Param        id path int true "Equipment ID"
// @Param        request body map[string]interface{} true "Changed fields"
// @Success      200  {object}  map[string]interface{}
// @Failure      403  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /equipment/{id} [put]
// @Security     BearerAuth
func (c *VehicleController) UpdateEquipment() {
	if !c.requireFleetManager() {
		return
	}
	id, err := strconv.ParseUint(c.Ctx.Param("id"), 10, 32)
	if err != nil {
		respondBadRequest(c.Ctx, "invalid equipment id")
		return
	}

	var updates map[string]interface{}
	if err := c.Ctx.ShouldBindJSON(&updates); err != nil {
		respondBadRequest(c.Ctx, "invalid request: "+err.Error())
		return
	}
	delete(updates, "id")

	vehicleService := c.Container.GetService("vehicle").(services.InterfaceVehicleService)
	equipment, err := vehicleService.UpdateEquipment(uint(id), updates)
	if err != nil {
		respondError(c.Ctx, err)
		return
	}
	respondSuccess(c.Ctx, equipment)
}

// DeleteEquipment removes an equipment kit
// @Summary      Delete equipment
// @Tags         Vehicle
// @Produce      json
// @Param        id path int true "Equipment ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      403  {object}  ErrorResponse
// @Router       /equipment/{id} [delete]
// @Security     BearerAuth
func (c *VehicleController) DeleteEquipment() {
	if !c.requireFleetManager() {
		return
	}
	id, err := strconv.ParseUint(c.Ctx.Param("id"), 10, 32)
	if err != nil {
		respondBadRequest(c.Ctx, "invalid equipment id")
		return
	}

	vehicleService := c.Container.GetService("vehicle").(services.InterfaceVehicleService)
	if err := vehicleService.DeleteEquipment(uint(id)); err != nil {
		respondError(c.Ctx, err)
		return
	}
	respondMessage(c.Ctx, "equipment deleted")
}
