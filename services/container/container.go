package container

import (
	"context"
	"log"
	"sync"
	"time"

	"newsdesk-http-service/config"
	"newsdesk-http-service/services"

	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"
)

// ServiceContainer wires all services together
type ServiceContainer struct {
	db     *gorm.DB
	config *config.Config
	redis  *redis.Client

	// base services
	jwtService   services.InterfaceJWTService
	redisService services.InterfaceRedisService
	mqttService  services.InterfaceMQTTService

	// business services
	authService         services.InterfaceAuthService
	visibilityService   services.InterfaceVisibilityService
	taskService         services.InterfaceTaskService
	notificationService services.InterfaceNotificationService
	personService       services.InterfacePersonService
	userService         services.InterfaceUserService
	newsroomService     services.InterfaceNewsroomService
	vehicleService      services.InterfaceVehicleService
	scheduleService     services.InterfaceScheduleService
	presetService       services.InterfacePresetService
	statsService        services.InterfaceStatsService
	rbacService         services.InterfaceRBACService
	auditService        services.InterfaceAuditService
	pushService         services.InterfacePushService
	backupService       services.InterfaceBackupService
	reportService       services.InterfaceReportService
	schedulerService    services.InterfaceSchedulerService

	mu sync.RWMutex
}

// NewServiceContainer creates a new service container
func NewServiceContainer(db *gorm.DB, cfg *config.Config, redisClient *redis.Client) *ServiceContainer {
	if db == nil {
		panic("database connection is nil")
	}
	if cfg == nil {
		panic("configuration is nil")
	}

	// probe the Redis connection; the app degrades to no cache without it
	if redisClient != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := redisClient.Ping(ctx).Err(); err != nil {
			log.Printf("Redis connection test failed: %v, continuing without cache", err)
		}
	}

	container := &ServiceContainer{
		db:     db,
		config: cfg,
		redis:  redisClient,
	}
	container.initializeServices()
	return container
}

// initializeServices builds all services in dependency order
func (c *ServiceContainer) initializeServices() {
	c.mu.Lock()
	defer c.mu.Unlock()

	// base services
	c.redisService = services.NewRedisService(c.config)
	c.jwtService = services.NewJWTService(c.config, c.redisService)
	c.mqttService = services.NewMQTTService(c.config)

	if err := c.mqttService.Connect(); err != nil {
		log.Printf("MQTT connection failed: %v", err)
	}

	// business services
	c.authService = services.NewAuthService(c.db, c.config, c.jwtService)
	c.visibilityService = services.NewVisibilityService(c.db, c.config)
	c.auditService = services.NewAuditService(c.db, c.config)
	c.pushService = services.NewPushService(c.db, c.config)
	c.notificationService = services.NewNotificationService(c.db, c.config, c.pushService)
	c.taskService = services.NewTaskService(c.db, c.config, c.visibilityService,
		c.notificationService, c.auditService, c.mqttService)
	c.personService = services.NewPersonService(c.db, c.config)
	c.userService = services.NewUserService(c.db, c.config)
	c.newsroomService = services.NewNewsroomService(c.db, c.config)
	c.vehicleService = services.NewVehicleService(c.db, c.config)
	c.scheduleService = services.NewScheduleService(c.db, c.config)
	c.presetService = services.NewPresetService(c.db, c.config)
	c.statsService = services.NewStatsService(c.db, c.config, c.visibilityService)
	c.rbacService = services.NewRBACService(c.db, c.config)
	c.backupService = services.NewBackupService(c.config)
	c.reportService = services.NewReportService(c.db, c.config, c.taskService)
	c.schedulerService = services.NewSchedulerService(c.config, c.notificationService, c.backupService)
}

// GetService returns the service registered under the given name
func (c *ServiceContainer) GetService(name string) interface{} {
	c.mu.RLock()
	defer c.mu.RUnlock()

	switch name {
	case "config":
		return c.config
	case "db":
		return c.db
	case "jwt":
		return c.jwtService
	case "redis":
		return c.redisService
	case "mqtt":
		return c.mqttService
	case "auth":
		return c.authService
	case "visibility":
		return c.visibilityService
	case "task":
		return c.taskService
	case "notification":
		return c.notificationService
	case "person":
		return c.personService
	case "user":
		return c.userService
	case "newsroom":
		return c.newsroomService
	case "vehicle":
		return c.vehicleService
	case "schedule":
		return c.scheduleService
	case "preset":
		return c.presetService
	case "stats":
		return c.statsService
	case "rbac":
		return c.rbacService
	case "audit":
		return c.auditService
	case "push":
		return c.pushService
	case "backup":
		return c.backupService
	case "report":
		return c.reportService
	case "scheduler":
		return c.schedulerService
	default:
		return nil
	}
}

// GetDB returns the database handle
func (c *ServiceContainer) GetDB() *gorm.DB {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.db
}

// GetConfig returns the active configuration
func (c *ServiceContainer) GetConfig() *config.Config {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.config
}
