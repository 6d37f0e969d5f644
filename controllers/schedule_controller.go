package controllers

import (
	"strconv"

	"newsdesk-http-service/models"
	"newsdesk-http-service/services"
	"newsdesk-http-service/services/container"

	"github.com/gin-gonic/gin"
)

// ScheduleController handles shift schedules, shift types, desk notes and
// leave requests
type ScheduleController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewScheduleController creates a new schedule controller
func NewScheduleController(ctx *gin.Context, container *container.ServiceContainer) *ScheduleController {
	return &ScheduleController{
		Ctx:       ctx,
		Container: container,
	}
}

// HandleScheduleFunc returns a Gin handler dispatching schedule methods
func HandleScheduleFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewScheduleController(ctx, container)

		switch method {
		case "getSchedules":
			controller.GetSchedules()
		case "createSchedule":
			controller.CreateSchedule()
		case "updateSchedule":
			controller.UpdateSchedule()
		case "deleteSchedule":
			controller.DeleteSchedule()
		case "getShiftTypes":
			controller.GetShiftTypes()
		case "createShiftType":
			controller.CreateShiftType()
		case "updateShiftType":
			controller.UpdateShiftType()
		case "deleteShiftType":
			controller.DeleteShiftType()
		case "getNotes":
			controller.GetNotes()
		case "createNote":
			controller.CreateNote()
		case "deleteNote":
			controller.DeleteNote()
		case "getLeaveRequests":
			controller.GetLeaveRequests()
		case "createLeaveRequest":
			controller.CreateLeaveRequest()
		case "updateLeaveRequest":
			controller.UpdateLeaveRequest()
		case "deleteLeaveRequest":
			controller.DeleteLeaveRequest()
		default:
			respondInvalidMethod(ctx)
		}
	}
}

func (c *ScheduleController) scheduleService() services.InterfaceScheduleService {
	return c.Container.GetService("schedule").(services.InterfaceScheduleService)
}

// requireScheduler gates mutations to roles that manage the shift plan
func (c *ScheduleController) requireScheduler() bool {
	user, ok := currentUser(c.Ctx, c.Container)
	if !ok {
		return false
	}
	switch user.Role {
	case models.RoleAdmin, models.RoleProducer, models.RoleEditor,
		models.RoleDeskEditor, models.RoleChiefCamera:
		return true
	}
	respondError(c.Ctx, services.ErrForbidden)
	return false
}

func (c *ScheduleController) optionalUintQuery(name string) (*uint, bool) {
	raw := c.Ctx.Query(name)
	if raw == "" {
		return nil, true
	}
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		respondBadRequest(c.Ctx, "invalid "+name)
		return nil, false
	}
	v := uint(id)
	return &v, true
}

func (c *ScheduleController) pathID() (uint, bool) {
	id, err := strconv.ParseUint(c.Ctx.Param("id"), 10, 32)
	if err != nil {
		respondBadRequest(c.Ctx, "invalid id")
		return 0, false
	}
	return uint(id), true
}

// GetSchedules lists shift assignments
// @Summary      List shift assignments
// @Tags         Schedule
// @Produce      json
// @Param        date_from query string false "Range start YYYY-MM-DD"
// @Param        date_to query string false "Range end YYYY-MM-DD"
// @Param        person_id query int false "Person filter"
// @Success      200  {object}  map[string]interface{}
// @Router       /employee-schedules [get]
// @Security     BearerAuth
func (c *ScheduleController) GetSchedules() {
	if _, ok := currentUser(c.Ctx, c.Container); !ok {
		return
	}
	personID, ok := c.optionalUintQuery("person_id")
	if !ok {
		return
	}

	schedules, err := c.scheduleService().ListEmployeeSchedules(
		c.Ctx.Query("date_from"), c.Ctx.Query("date_to"), personID)
	if err != nil {
		respondError(c.Ctx, err)
		return
	}
	respondSuccess(c.Ctx, schedules)
}

// CreateSchedule adds or replaces a shift assignment
// @Summary      Create shift assignment
// @Tags         Schedule
// @Accept       json
// @Produce      json
// @Param        request body models.EmployeeSchedule true "Assignment"
// @Success      201  {object}  map[string]interface{}
// @Failure      403  {object}  ErrorResponse
// @Router       /employee-schedules [post]
// @Security     BearerAuth
func (c *ScheduleController) CreateSchedule() {
	if !c.requireScheduler() {
		return
	}

	var schedule models.EmployeeSchedule
	if err := c.Ctx.ShouldBindJSON(&schedule); err != nil {
		respondBadRequest(c.Ctx, "invalid request: "+err.Error())
		return
	}
	if err := c.scheduleService().CreateEmployeeSchedule(&schedule); err != nil {
		respondError(c.Ctx, err)
		return
	}
	respondCreated(c.Ctx, schedule)
}

// UpdateSchedule applies a partial update to a shift assignment
// @Summary      Update shift assignment
// @Tags         Schedule
// @Accept       json
// @Produce      json
// @Param        id path int true "Schedule ID"
// @Param        request body map[string]interface{} true "Changed fields"
// @Success      200  {object}  map[string]interface{}
// @Failure      403  {object}  ErrorResponse
// @Router       /employee-schedules/{id} [put]
// @Security     BearerAuth
func (c *ScheduleController) UpdateSchedule() {
	if !c.requireScheduler() {
		return
	}
	id, ok := c.pathID()
	if !ok {
		return
	}

	var updates map[string]interface{}
	if err := c.Ctx.ShouldBindJSON(&updates); err != nil {
		respondBadRequest(c.Ctx, "invalid request: "+err.Error())
		return
	}
	delete(updates, "id")

	schedule, err := c.scheduleService().UpdateEmployeeSchedule(id, updates)
	if err != nil {
		respondError(c.Ctx, err)
		return
	}
	respondSuccess(c.Ctx, schedule)
}

// DeleteSchedule removes a shift assignment
// @Summary      Delete shift assignment
// @Tags         Schedule
// @Produce      json
// @Param        id path int true "Schedule ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      403  {object}  ErrorResponse
// @Router       /employee-schedules/{id} [delete]
// @Security     BearerAuth
func (c *ScheduleController) DeleteSchedule() {
	if !c.requireScheduler() {
		return
	}
	id, ok := c.pathID()
	if !ok {
		return
	}
	if err := c.scheduleService().DeleteEmployeeSchedule(id); err != nil {
		respondError(c.Ctx, err)
		return
	}
	respondMessage(c.Ctx, "schedule deleted")
}

// GetShiftTypes lists shift types
// @Summary      List shift types
// @Tags         Schedule
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /shift-types [get]
// @Security     BearerAuth
func (c *ScheduleController) GetShiftTypes() {
	if _, ok := currentUser(c.Ctx, c.Container); !ok {
		return
	}
	shiftTypes, err := c.scheduleService().ListShiftTypes()
	if err != nil {
		respondError(c.Ctx, err)
		return
	}
	respondSuccess(c.Ctx, shiftTypes)
}

// CreateShiftType adds a shift type
// @Summary      Create shift type
// @Tags         Schedule
// @Accept       json
// @Produce      json
// @Param        request body models.ShiftType true "Shift type"
// @Success      201  {object}  map[string]interface{}
// @Failure      403  {object}  ErrorResponse
// @Router       /shift-types [post]
// @Security     BearerAuth
func (c *ScheduleController) CreateShiftType() {
	if !c.requireScheduler() {
		return
	}

	var shiftType models.ShiftType
	if err := c.Ctx.ShouldBindJSON(&shiftType); err != nil {
		respondBadRequest(c.Ctx, "invalid request: "+err.Error())
		return
	}
	if err := c.scheduleService().CreateShiftType(&shiftType); err != nil {
		respondError(c.Ctx, err)
		return
	}
	respondCreated(c.Ctx, shiftType)
}

// UpdateShiftType applies a partial update to a shift type
// @Summary      Update shift type
// @Tags         Schedule
// @Accept       json
// @Produce      json
// @Param        id path int true "Shift type ID"
// @Param        request body map[string]interface{} true "Changed fields"
// @Success      200  {object}  map[string]interface{}
// @Failure      403  {object}  ErrorResponse
// @Router       /shift-types/{id} [put]
// @Security     BearerAuth
func (c *ScheduleController) UpdateShiftType() {
	if !c.requireScheduler() {
		return
	}
	id, ok := c.pathID()
	if !ok {
		return
	}

	var updates map[string]interface{}
	if err := c.Ctx.ShouldBindJSON(&updates); err != nil {
		respondBadRequest(c.Ctx, "invalid request: "+err.Error())
		return
	}
	delete(updates, "id")

	shiftType, err := c.scheduleService().UpdateShiftType(id, updates)
	if err != nil {
		respondError(c.Ctx, err)
		return
	}
	respondSuccess(c.Ctx, shiftType)
}

// DeleteShiftType removes a shift type
// @Summary      Delete shift type
// @Tags         Schedule
// @Produce      json
// @Param        id path int true "Shift type ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      403  {object}  ErrorResponse
// @Router       /shift-types/{id} [delete]
// @Security     BearerAuth
func (c *ScheduleController) DeleteShiftType() {
	if !c.requireScheduler() {
		return
	}
	id, ok := c.pathID()
	if !ok {
		return
	}
	if err := c.scheduleService().DeleteShiftType(id); err != nil {
		respondError(c.Ctx, err)
		return
	}
	respondMessage(c.Ctx, "shift type deleted")
}

// GetNotes lists desk notes
// @Summary      List desk notes
// @Tags         Schedule
// @Produce      json
// @Param        date query string false "Date YYYY-MM-DD"
// @Param        newsroom_id query int false "Newsroom filter"
// @Success      200  {object}  map[string]interface{}
// @Router       /schedule/notes [get]
// @Security     BearerAuth
func (c *ScheduleController) GetNotes() {
	if _, ok := currentUser(c.Ctx, c.Container); !ok {
		return
	}
	newsroomID, ok := c.optionalUintQuery("newsroom_id")
	if !ok {
		return
	}

	notes, err := c.scheduleService().ListScheduleNotes(c.Ctx.Query("date"), newsroomID)
	if err != nil {
		respondError(c.Ctx, err)
		return
	}
	respondSuccess(c.Ctx, notes)
}

// CreateNote adds a desk note
// @Summary      Create desk note
// @Tags         Schedule
// @Accept       json
// @Produce      json
// @Param        request body models.ScheduleNote true "Note"
// @Success      201  {object}  map[string]interface{}
// @Failure      403  {object}  ErrorResponse
// @Router       /schedule/notes [post]
// @Security     BearerAuth
func (c *ScheduleController) CreateNote() {
	if !c.requireScheduler() {
		return
	}

	var note models.ScheduleNote
	if err := c.Ctx.ShouldBindJSON(&note); err != nil {
		respondBadRequest(c.Ctx, "invalid request: "+err.Error())
		return
	}
	if err := c.scheduleService().CreateScheduleNote(&note); err != nil {
		respondError(c.Ctx, err)
		return
	}
	respondCreated(c.Ctx, note)
}

// DeleteNote removes a desk note
// @Summary      Delete desk note
// @Tags         Schedule
// @Produce      json
// @Param        id path int true "Note ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      403  {object}  ErrorResponse
// @Router       /schedule/notes/{id} [delete]
// @Security     BearerAuth
func (c *ScheduleController) DeleteNote() {
	if !c.requireScheduler() {
		return
	}
	id, ok := c.pathID()
	if !ok {
		return
	}
	if err := c.scheduleService().DeleteScheduleNote(id); err != nil {
		respondError(c.Ctx, err)
		return
	}
	respondMessage(c.Ctx, "note deleted")
}

// GetLeaveRequests lists leave requests
// @Summary      List leave requests
// @Tags         Schedule
// @Produce      json
// @Param        person_id query int false "Person filter"
// @Param        status query string false "Status filter"
// @Success      200  {object}  map[string]interface{}
// @Router       /leave-requests [get]
// @Security     BearerAuth
func (c *ScheduleController) GetLeaveRequests() {
	if _, ok := currentUser(c.Ctx, c.Container); !ok {
		return
	}
	personID, ok := c.optionalUintQuery("person_id")
	if !ok {
		return
	}

	requests, err := c.scheduleService().ListLeaveRequests(personID, c.Ctx.Query("status"))
	if err != nil {
		respondError(c.Ctx, err)
		return
	}
	respondSuccess(c.Ctx, requests)
}

// CreateLeaveRequest adds a leave request
// @Summary      Create leave request
// @Tags         Schedule
// @Accept       json
// @Produce      json
// @Param        request body models.LeaveRequest true "Leave request"
// @Success      201  {object}  map[string]interface{}
// @Router       /leave-requests [post]
// @Security     BearerAuth
func (c *ScheduleController) CreateLeaveRequest() {
	if _, ok := currentUser(c.Ctx, c.Container); !ok {
		return
	}

	var request models.LeaveRequest
	if err := c.Ctx.ShouldBindJSON(&request); err != nil {
		respondBadRequest(c.Ctx, "invalid request: "+err.Error())
		return
	}
	if err := c.scheduleService().CreateLeaveRequest(&request); err != nil {
		respondError(c.Ctx, err)
		return
	}
	respondCreated(c.Ctx, request)
}

// UpdateLeaveRequest updates a leave request, typically its status
// @Summary      Update leave request
// @Tags         Schedule
// @Accept       json
// @Produce      json
// @Param        id path int true "Leave request ID"
// @Param        request body map[string]interface{} true "Changed fields"
// @Success      200  {object}  map[string]interface{}
// @Failure      403  {object}  ErrorResponse
// @Router       /leave-requests/{id} [put]
// @Security     BearerAuth
func (c *ScheduleController) UpdateLeaveRequest() {
	if !c.requireScheduler() {
		return
	}
	id, ok := c.pathID()
	if !ok {
		return
	}

	var updates map[string]interface{}
	if err := c.Ctx.ShouldBindJSON(&updates); err != nil {
		respondBadRequest(c.Ctx, "invalid request: "+err.Error())
		return
	}
	delete(updates, "id")

	request, err := c.scheduleService().UpdateLeaveRequest(id, updates)
	if err != nil {
		respondError(c.Ctx, err)
		return
	}
	respondSuccess(c.Ctx, request)
}

// DeleteLeaveRequest removes a leave request
// @Summary      Delete leave request
// @Tags         Schedule
// @Produce      json
// @Param        id path int true "Leave request ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      403  {object}  ErrorResponse
// @Router       /leave-requests/{id} [delete]
// @Security     BearerAuth
func (c *ScheduleController) DeleteLeaveRequest() {
	if !c.requireScheduler() {
		return
	}
	id, ok := c.pathID()
	if !ok {
		return
	}
	if err := c.scheduleService().DeleteLeaveRequest(id); err != nil {
		respondError(c.Ctx, err)
		return
	}
	respondMessage(c.Ctx, "leave request deleted")
}
