package controllers

import (
	"net/http"

	"newsdesk-http-service/services"
	"newsdesk-http-service/services/container"

	"github.com/gin-gonic/gin"
)

// HealthCheckController answers liveness probes
type HealthCheckController struct{}

// NewHealthCheckController creates a health check controller instance
func NewHealthCheckController() *HealthCheckController {
	return &HealthCheckController{}
}

// Ping is the liveness endpoint
func (h *HealthCheckController) Ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "pong",
		"status":  "healthy",
	})
}

// HandleHealthFunc returns a readiness handler that also reports the state
// of the database and cache connections.
func HandleHealthFunc(container *container.ServiceContainer) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		dbStatus := "ok"
		sqlDB, err := container.GetDB().DB()
		if err != nil || sqlDB.Ping() != nil {
			dbStatus = "down"
		}

		redisStatus := "ok"
		redisService := container.GetService("redis").(services.InterfaceRedisService)
		if !redisService.Available() {
			redisStatus = "unavailable"
		}

		status := http.StatusOK
		if dbStatus != "ok" {
			status = http.StatusServiceUnavailable
		}
		ctx.JSON(status, gin.H{
			"status": dbStatus,
			"redis":  redisStatus,
		})
	}
}
