package controllers

import (
	"strconv"

	"newsdesk-http-service/models"
	"newsdesk-http-service/services"
	"newsdesk-http-service/services/container"

	"github.com/gin-gonic/gin"
)

// InterfacePersonController defines the roster controller surface
type InterfacePersonController interface {
	GetPeople()
	GetPerson()
	CreatePerson()
	UpdatePerson()
	DeletePerson()
}

// PersonController handles the staff roster endpoints
type PersonController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewPersonController creates a new person controller
func NewPersonController(ctx *gin.Context, container *container.ServiceContainer) *PersonController {
	return &PersonController{
		Ctx:       ctx,
		Container: container,
	}
}

// CreatePersonRequest is the roster person payload
type CreatePersonRequest struct {
	Name       string `json:"name" binding:"required" example:"Devleta Brkić"`
	Role       string `json:"role" example:"journalist"`
	Phone      string `json:"phone" example:"+38761123456"`
	Email      string `json:"email" binding:"omitempty,email" example:"devleta.brkic@example.ba"`
	NewsroomID *uint  `json:"newsroom_id"`
	Position   string `json:"position" example:"reporter"`
}

// HandlePersonFunc returns a Gin handler dispatching roster methods
func HandlePersonFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewPersonController(ctx, container)

		switch method {
		case "getPeople":
			controller.GetPeople()
		case "getPerson":
			controller.GetPerson()
		case "createPerson":
			controller.CreatePerson()
		case "updatePerson":
			controller.UpdatePerson()
		case "deletePerson":
			controller.DeletePerson()
		default:
			respondInvalidMethod(ctx)
		}
	}
}

// GetPeople lists roster people
// @Summary      List roster people
// @Tags         Person
// @Produce      json
// @Param        page query int false "Page, default 1"
// @Param        page_size query int false "Page size, default 50"
// @Param        search query string false "Search in name, email, phone"
// @Param        newsroom_id query int false "Newsroom filter"
// @Success      200  {object}  map[string]interface{}
// @Router       /people [get]
// @Security     BearerAuth
func (c *PersonController) GetPeople() {
	if _, ok := currentUser(c.Ctx, c.Container); !ok {
		return
	}

	var query models.PaginationQuery
	if err := c.Ctx.ShouldBindQuery(&query); err != nil {
		respondBadRequest(c.Ctx, "invalid query: "+err.Error())
		return
	}
	query.Normalize()

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

	personService := c.Container.GetService("person").(services.InterfacePersonService)
	people, total, err := personService.GetAllPeople(query.Page, query.PageSize, query.Search, newsroomID)
	if err != nil {
		respondError(c.Ctx, err)
		return
	}

	respondSuccess(c.Ctx, struct {
		People []models.Person `json:"people"`
		models.PaginationResult
	}{people, models.NewPaginationResult(total, query.Page, query.PageSize)})
}

// GetPerson returns one roster person
// @Summary      Get roster person
// @Tags         Person
// @Produce      json
// @Param        id path int true "Person ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  ErrorResponse
// @Router       /people/{id} [get]
// @Security     BearerAuth
func (c *PersonController) GetPerson() {
	if _, ok := currentUser(c.Ctx, c.Container); !ok {
		return
	}
	id, err := strconv.ParseUint(c.Ctx.Param("id"), 10, 32)
	if err != nil {
		respondBadRequest(c.Ctx, "invalid person id")
		return
	}

	personService := c.Container.GetService("person").(services.InterfacePersonService)
	person, err := personService.GetPersonByID(uint(id))
	if err != nil {
		respondError(c.Ctx, err)
		return
	}
	respondSuccess(c.Ctx, person)
}

// CreatePerson adds a roster person
// @Summary      Create roster person
// @Tags         Person
// @Accept       json
// @Produce      json
// @Param        request body CreatePersonRequest true "Person"
// @Success      201  {object}  map[string]interface{}
// @Failure      403  {object}  ErrorResponse
// @Router       /people [post]
// @Security     BearerAuth
func (c *PersonController) CreatePerson() {
	user, ok := currentUser(c.Ctx, c.Container)
	if !ok {
		return
	}
	if !user.IsPrivileged() {
		respondError(c.Ctx, services.ErrForbidden)
		return
	}

	var req CreatePersonRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c.Ctx, "invalid request: "+err.Error())
		return
	}

	person := models.Person{
		Name:       req.Name,
		Role:       req.Role,
		Phone:      req.Phone,
		Email:      req.Email,
		NewsroomID: req.NewsroomID,
		Position:   req.Position,
		IsActive:   true,
	}
	personService := c.Container.GetService("person").(services.InterfacePersonService)
	if err := personService.CreatePerson(&person); err != nil {
		respondError(c.Ctx, err)
		return
	}
	respondCreated(c.Ctx, person)
}

// UpdatePerson applies a partial update
// @Summary      Update roster person
// @Tags         Person
// @Accept       json
// @Produce      json
// @Param        id path int true "Person ID"
// @Param        request body map[string]interface{} true "Changed fields"
// @Success      200  {object}  map[string]interface{}
// @Failure      403  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /people/{id} [put]
// @Security     BearerAuth
func (c *PersonController) UpdatePerson() {
	user, ok := currentUser(c.Ctx, c.Container)
	if !ok {
		return
	}
	if !user.IsPrivileged() {
		respondError(c.Ctx, services.ErrForbidden)
		return
	}
	id, err := strconv.ParseUint(c.Ctx.Param("id"), 10, 32)
	if err != nil {
		respondBadRequest(c.Ctx, "invalid person id")
		return
	}

	var updates map[string]interface{}
	if err := c.Ctx.ShouldBindJSON(&updates); err != nil {
		respondBadRequest(c.Ctx, "invalid request: "+err.Error())
		return
	}
	delete(updates, "id")

	personService := c.Container.GetService("person").(services.InterfacePersonService)
	person, err := personService.UpdatePerson(uint(id), updates)
	if err != nil {
		respondError(c.Ctx, err)
		return
	}
	respondSuccess(c.Ctx, person)
}

// DeletePerson removes a roster person and their task references
// @Summary      Delete roster person
// @Tags         Person
// @Produce      json
// @Param        id path int true "Person ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      403  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /people/{id} [delete]
// @Security     BearerAuth
func (c *PersonController) DeletePerson() {
	user, ok := currentUser(c.Ctx, c.Container)
	if !ok {
		return
	}
	if !user.IsPrivileged() {
		respondError(c.Ctx, services.ErrForbidden)
		return
	}
	id, err := strconv.ParseUint(c.Ctx.Param("id"), 10, 32)
	if err != nil {
		respondBadRequest(c.Ctx, "invalid person id")
		return
	}

	personService := c.Container.GetService("person").(services.InterfacePersonService)
	if err := personService.DeletePerson(uint(id)); err != nil {
		respondError(c.Ctx, err)
		return
	}
	respondMessage(c.Ctx, "person deleted")
}
