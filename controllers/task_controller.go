package controllers

import (
	"fmt"
	"strconv"
	"time"

	"newsdesk-http-service/models"
	"newsdesk-http-service/services"
	"newsdesk-http-service/services/container"

	"github.com/gin-gonic/gin"
)

// InterfaceTaskController defines the task controller surface
type InterfaceTaskController interface {
	GetTasks()
	GetTask()
	CreateTask()
	UpdateTask()
	DeleteTask()
	MarkDone()
	GetDayOverview()
	ExportCSV()
}

// TaskController handles task CRUD and lifecycle endpoints
type TaskController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewTaskController creates a new task controller
func NewTaskController(ctx *gin.Context, container *container.ServiceContainer) *TaskController {
	return &TaskController{
		Ctx:       ctx,
		Container: container,
	}
}

// HandleTaskFunc returns a Gin handler dispatching task methods
func HandleTaskFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewTaskController(ctx, container)

		switch method {
		case "getTasks":
			controller.GetTasks()
		case "getTask":
			controller.GetTask()
		case "createTask":
			controller.CreateTask()
		case "updateTask":
			controller.UpdateTask()
		case "deleteTask":
			controller.DeleteTask()
		case "markDone":
			controller.MarkDone()
		case "dayOverview":
			controller.GetDayOverview()
		case "exportCSV":
			controller.ExportCSV()
		default:
			respondInvalidMethod(ctx)
		}
	}
}

// GetTasks lists tasks visible to the caller
// @Summary      List tasks
// @Description  Paginated task list filtered by the caller's visibility scope
// @Tags         Task
// @Produce      json
// @Param        date query string false "Exact date YYYY-MM-DD"
// @Param        date_from query string false "Range start YYYY-MM-DD"
// @Param        date_to query string false "Range end YYYY-MM-DD"
// @Param        status query string false "Task status"
// @Param        search query string false "Search in title, slugline, location"
// @Param        newsroom_id query int false "Newsroom filter (privileged roles only)"
// @Param        page query int false "Page, default 1"
// @Param        page_size query int false "Page size, default 50"
// @Success      200  {object}  map[string]interface{}
// @Failure      403  {object}  ErrorResponse
// @Router       /tasks [get]
// @Security     BearerAuth
func (c *TaskController) GetTasks() {
	user, ok := currentUser(c.Ctx, c.Container)
	if !ok {
		return
	}

	var query services.TaskListQuery
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

	taskService := c.Container.GetService("task").(services.InterfaceTaskService)
	tasks, total, err := taskService.ListTasks(user, &query)
	if err != nil {
		respondError(c.Ctx, err)
		return
	}

	respondSuccess(c.Ctx, gin.H{
		"tasks":     tasks,
		"total":     total,
		"page":      query.Page,
		"page_size": query.PageSize,
	})
}

// GetTask returns one task
// @Summary      Get task
// @Tags         Task
// @Produce      json
// @Param        id path int true "Task ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      403  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /tasks/{id} [get]
// @Security     BearerAuth
func (c *TaskController) GetTask() {
	user, ok := currentUser(c.Ctx, c.Container)
	if !ok {
		return
	}
	id, err := strconv.ParseUint(c.Ctx.Param("id"), 10, 32)
	if err != nil {
		respondBadRequest(c.Ctx, "invalid task id")
		return
	}

	taskService := c.Container.GetService("task").(services.InterfaceTaskService)
	task, err := taskService.GetTask(user, uint(id))
	if err != nil {
		respondError(c.Ctx, err)
		return
	}
	respondSuccess(c.Ctx, task)
}

// CreateTask creates a task
// @Summary      Create task
// @Tags         Task
// @Accept       json
// @Produce      json
// @Param        request body services.CreateTaskRequest true "Task"
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse
// @Router       /tasks [post]
// @Security     BearerAuth
func (c *TaskController) CreateTask() {
	user, ok := currentUser(c.Ctx, c.Container)
	if !ok {
		return
	}

	var req services.CreateTaskRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c.Ctx, "invalid request: "+err.Error())
		return
	}

	taskService := c.Container.GetService("task").(services.InterfaceTaskService)
	task, err := taskService.CreateTask(user, &req, c.Ctx.ClientIP())
	if err != nil {
		respondError(c.Ctx, err)
		return
	}
	respondCreated(c.Ctx, task)
}

// UpdateTask applies a partial update to a task
// @Summary      Update task
// @Description  Only fields present in the body are changed
// @Tags         Task
// @Accept       json
// @Produce      json
// @Param        id path int true "Task ID"
// @Param        request body services.UpdateTaskRequest true "Changed fields"
// @Success      200  {object}  map[string]interface{}
// @Failure      403  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /tasks/{id} [put]
// @Security     BearerAuth
func (c *TaskController) UpdateTask() {
	user, ok := currentUser(c.Ctx, c.Container)
	if !ok {
		return
	}
	id, err := strconv.ParseUint(c.Ctx.Param("id"), 10, 32)
	if err != nil {
		respondBadRequest(c.Ctx, "invalid task id")
		return
	}

	var req services.UpdateTaskRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c.Ctx, "invalid request: "+err.Error())
		return
	}

	taskService := c.Container.GetService("task").(services.InterfaceTaskService)
	task, err := taskService.UpdateTask(user, uint(id), &req, c.Ctx.ClientIP())
	if err != nil {
		respondError(c.Ctx, err)
		return
	}
	respondSuccess(c.Ctx, task)
}

// DeleteTask removes a task
// @Summary      Delete task
// @Tags         Task
// @Produce      json
// @Param        id path int true "Task ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      403  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /tasks/{id} [delete]
// @Security     BearerAuth
func (c *TaskController) DeleteTask() {
	user, ok := currentUser(c.Ctx, c.Container)
	if !ok {
		return
	}
	id, err := strconv.ParseUint(c.Ctx.Param("id"), 10, 32)
	if err != nil {
		respondBadRequest(c.Ctx, "invalid task id")
		return
	}

	taskService := c.Container.GetService("task").(services.InterfaceTaskService)
	if err := taskService.DeleteTask(user, uint(id), c.Ctx.ClientIP()); err != nil {
		respondError(c.Ctx, err)
		return
	}
	respondMessage(c.Ctx, "task deleted")
}

// MarkDone confirms a task as done
// @Summary      Confirm task
// @Description  Appends the confirmation flag and records who confirmed
// @Tags         Task
// @Produce      json
// @Param        id path int true "Task ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      403  {object}  ErrorResponse
// @Router       /tasks/{id}/done [post]
// @Security     BearerAuth
func (c *TaskController) MarkDone() {
	user, ok := currentUser(c.Ctx, c.Container)
	if !ok {
		return
	}
	id, err := strconv.ParseUint(c.Ctx.Param("id"), 10, 32)
	if err != nil {
		respondBadRequest(c.Ctx, "invalid task id")
		return
	}

	taskService := c.Container.GetService("task").(services.InterfaceTaskService)
	task, err := taskService.MarkTaskDone(user, uint(id), c.Ctx.ClientIP())
	if err != nil {
		respondError(c.Ctx, err)
		return
	}
	respondSuccess(c.Ctx, task)
}

// GetDayOverview returns the caller's visible tasks for one day
// @Summary      Day overview
// @Tags         Task
// @Produce      json
// @Param        date query string false "Date YYYY-MM-DD, default today"
// @Param        newsroom_id query int false "Newsroom filter (privileged roles only)"
// @Success      200  {object}  map[string]interface{}
// @Router       /tasks/day [get]
// @Security     BearerAuth
func (c *TaskController) GetDayOverview() {
	user, ok := currentUser(c.Ctx, c.Container)
	if !ok {
		return
	}

	date := c.Ctx.DefaultQuery("date", time.Now().Format("2006-01-02"))
	var newsroomID *uint
	if raw := c.Ctx.Query("newsroom_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			respondBadRequest(c.Ctx, "invalid newsroom_id")
			return
		}
		nid := uint(id)
		newsroomID = &nid
	}

	taskService := c.Container.GetService("task").(services.InterfaceTaskService)
	tasks, err := taskService.TasksForDate(user, date, newsroomID)
	if err != nil {
		respondError(c.Ctx, err)
		return
	}
	if tasks == nil {
		tasks = []models.Task{}
	}
	respondSuccess(c.Ctx, gin.H{
		"date":  date,
		"tasks": tasks,
	})
}

// ExportCSV streams the caller's visible tasks as CSV
// @Summary      Export tasks as CSV
// @Tags         Task
// @Produce      text/csv
// @Param        date_from query string false "Range start YYYY-MM-DD"
// @Param        date_to query string false "Range end YYYY-MM-DD"
// @Param        status query string false "Task status"
// @Success      200  {string}  string
// @Router       /tasks/export [get]
// @Security     BearerAuth
func (c *TaskController) ExportCSV() {
	user, ok := currentUser(c.Ctx, c.Container)
	if !ok {
		return
	}

	var query services.TaskListQuery
	if err := c.Ctx.ShouldBindQuery(&query); err != nil {
		respondBadRequest(c.Ctx, "invalid query: "+err.Error())
		return
	}

	reportService := c.Container.GetService("report").(services.InterfaceReportService)
	data, err := reportService.ExportTasksCSV(user, &query)
	if err != nil {
		respondError(c.Ctx, err)
		return
	}

	filename := fmt.Sprintf("zadaci_%s.csv", time.Now().Format("2006-01-02"))
	c.Ctx.Header("Content-Disposition", "attachment; filename="+filename)
	c.Ctx.Data(200, "text/csv; charset=utf-8", data)
}
