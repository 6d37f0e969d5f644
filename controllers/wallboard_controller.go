package controllers

import (
	"fmt"
	"time"

	"newsdesk-http-service/models"
	"newsdesk-http-service/services"
	"newsdesk-http-service/services/container"

	"github.com/gin-gonic/gin"
)

// WallboardController serves the public studio wallboard feed. The endpoint
// is unauthenticated: the wallboard runs on a fixed screen with no login.
type WallboardController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewWallboardController creates a new wallboard controller
func NewWallboardController(ctx *gin.Context, container *container.ServiceContainer) *WallboardController {
	return &WallboardController{
		Ctx:       ctx,
		Container: container,
	}
}

// wallboardEntry is the trimmed task shape exposed without authentication
type wallboardEntry struct {
	ID           uint     `json:"id"`
	TimeStart    string   `json:"time_start"`
	TimeEnd      string   `json:"time_end"`
	Title        string   `json:"title"`
	Location     string   `json:"location"`
	NewsroomName string   `json:"newsroom_name"`
	Status       string   `json:"status"`
	Flags        []string `json:"flags"`
}

// wallboardPayload is the cached response body
type wallboardPayload struct {
	Date    string           `json:"date"`
	Entries []wallboardEntry `json:"entries"`
}

// HandleWallboardFunc returns a Gin handler dispatching wallboard methods
func HandleWallboardFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewWallboardController(ctx, container)

		switch method {
		case "getWallboard":
			controller.GetWallboard()
		default:
			respondInvalidMethod(ctx)
		}
	}
}

// GetWallboard returns today's tasks for the studio display
// @Summary      Wallboard feed
// @Description  Today's tasks across all newsrooms, without assignment details. Cached for 30 seconds.
// @Tags         Wallboard
// @Produce      json
// @Param        date query string false "Date YYYY-MM-DD, default today"
// @Success      200  {object}  map[string]interface{}
// @Router       /wallboard [get]
func (c *WallboardController) GetWallboard() {
	date := c.Ctx.DefaultQuery("date", time.Now().Format("2006-01-02"))
	cacheKey := fmt.Sprintf("wallboard:%s", date)

	redisService := c.Container.GetService("redis").(services.InterfaceRedisService)
	if redisService.Available() {
		var cached wallboardPayload
		if err := redisService.Get(cacheKey, &cached); err == nil {
			respondSuccess(c.Ctx, cached)
			return
		}
	}

	var tasks []models.Task
	err := c.Container.GetDB().Preload("Newsroom").
		Where("date = ?", date).
		Where("status <> ?", models.StatusCancelled).
		Order("time_start ASC").
		Find(&tasks).Error
	if err != nil {
		respondError(c.Ctx, err)
		return
	}

	payload := wallboardPayload{
		Date:    date,
		Entries: make([]wallboardEntry, 0, len(tasks)),
	}
	for _, task := range tasks {
		newsroomName := ""
		if task.Newsroom != nil {
			newsroomName = task.Newsroom.Name
		}
		payload.Entries = append(payload.Entries, wallboardEntry{
			ID:           task.ID,
			TimeStart:    task.TimeStart,
			TimeEnd:      task.TimeEnd,
			Title:        task.Title,
			Location:     task.Location,
			NewsroomName: newsroomName,
			Status:       task.Status,
			Flags:        task.Flags,
		})
	}

	if redisService.Available() {
		_ = redisService.Set(cacheKey, payload, 30*time.Second)
	}
	respondSuccess(c.Ctx, payload)
}
