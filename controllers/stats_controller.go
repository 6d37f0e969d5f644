package controllers

import (
	"strconv"

	"newsdesk-http-service/services"
	"newsdesk-http-service/services/container"

	"github.com/gin-gonic/gin"
)

// StatsController handles the dashboard and statistics endpoints
type StatsController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewStatsController creates a new statistics controller
func NewStatsController(ctx *gin.Context, container *container.ServiceContainer) *StatsController {
	return &StatsController{
		Ctx:       ctx,
		Container: container,
	}
}

// HandleStatsFunc returns a Gin handler dispatching statistics methods
func HandleStatsFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewStatsController(ctx, container)

		switch method {
		case "dashboard":
			controller.Dashboard()
		case "statistics":
			controller.Statistics()
		default:
			respondInvalidMethod(ctx)
		}
	}
}

// Dashboard summarizes today's visible tasks
// @Summary      Dashboard
// @Tags         Statistics
// @Produce      json
// @Param        newsroom_id query int false "Newsroom filter (privileged roles only)"
// @Success      200  {object}  map[string]interface{}
// @Router       /dashboard [get]
// @Security     BearerAuth
func (c *StatsController) Dashboard() {
	user, ok := currentUser(c.Ctx, c.Container)
	if !ok {
		return
	}

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

	statsService := c.Container.GetService("stats").(services.InterfaceStatsService)
	stats, err := statsService.Dashboard(user, newsroomID)
	if err != nil {
		respondError(c.Ctx, err)
		return
	}
	respondSuccess(c.Ctx, stats)
}

// Statistics aggregates tasks per newsroom and per person over a range
// @Summary      Statistics
// @Tags         Statistics
// @Produce      json
// @Param        date_from query string false "Range start YYYY-MM-DD, default 30 days back"
// @Param        date_to query string false "Range end YYYY-MM-DD, default today"
// @Param        newsroom_id query int false "Newsroom filter"
// @Success      200  {object}  map[string]interface{}
// @Failure      403  {object}  ErrorResponse
// @Router       /statistics [get]
// @Security     BearerAuth
func (c *StatsController) Statistics() {
	user, ok := currentUser(c.Ctx, c.Container)
	if !ok {
		return
	}

	var query services.StatisticsQuery
	if err := c.Ctx.ShouldBindQuery(&query); err != nil {
		respondBadRequest(c.Ctx, "invalid query: "+err.Error())
		return
	}

	statsService := c.Container.GetService("stats").(services.InterfaceStatsService)
	result, err := statsService.Statistics(user, &query)
	if err != nil {
		respondError(c.Ctx, err)
		return
	}
	respondSuccess(c.Ctx, result)
}
