package routes

import (
	"newsdesk-http-service/config"
	"newsdesk-http-service/controllers"
	_ "newsdesk-http-service/docs"
	"newsdesk-http-service/middleware"
	"newsdesk-http-service/models"
	"newsdesk-http-service/services"
	"newsdesk-http-service/services/container"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// SetupRouter builds the configured Gin engine
func SetupRouter(serviceContainer *container.ServiceContainer, cfg *config.Config) *gin.Engine {
	r := gin.Default()

	// CORS for the browser frontend
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, Accept, Origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS, PATCH")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	// wire the auth middleware to the shared JWT service
	middleware.InitAuthMiddleware(serviceContainer.GetService("jwt").(services.InterfaceJWTService))

	// Swagger documentation
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	registerRoutes(r, serviceContainer)
	return r
}

// registerRoutes configures all API routes
func registerRoutes(
	r *gin.Engine,
	container *container.ServiceContainer,
) {
	api := r.Group("/api")
	registerPublicRoutes(api, container)
	registerAuthenticatedRoutes(api, container)
}

// registerPublicRoutes registers routes that need no token
func registerPublicRoutes(
	api *gin.RouterGroup,
	container *container.ServiceContainer,
) {
	// health checks
	health := controllers.NewHealthCheckController()
	api.GET("/ping", health.Ping)
	api.GET("/health", controllers.HandleHealthFunc(container))

	// authentication
	api.POST("/auth/login", controllers.HandleAuthFunc(container, "login"))
	api.POST("/auth/login-pin", controllers.HandleAuthFunc(container, "loginPin"))

	// studio wallboard, a fixed screen with no login
	api.GET("/wallboard", controllers.HandleWallboardFunc(container, "getWallboard"))
}

// registerAuthenticatedRoutes registers routes behind the JWT middleware
func registerAuthenticatedRoutes(
	api *gin.RouterGroup,
	container *container.ServiceContainer,
) {
	auth := api.Group("/")
	auth.Use(middleware.Authentication())

	// session
	auth.POST("/auth/logout", controllers.HandleAuthFunc(container, "logout"))
	auth.GET("/auth/me", controllers.HandleAuthFunc(container, "me"))

	// tasks
	auth.Group("/tasks").GET("", controllers.HandleTaskFunc(container, "getTasks"))
	auth.Group("/tasks").GET("/day", controllers.HandleTaskFunc(container, "dayOverview"))
	auth.Group("/tasks").GET("/export", controllers.HandleTaskFunc(container, "exportCSV"))
	auth.Group("/tasks").GET("/:id", controllers.HandleTaskFunc(container, "getTask"))
	auth.Group("/tasks").POST("", controllers.HandleTaskFunc(container, "createTask"))
	auth.Group("/tasks").PUT("/:id", controllers.HandleTaskFunc(container, "updateTask"))
	auth.Group("/tasks").DELETE("/:id", controllers.HandleTaskFunc(container, "deleteTask"))
	auth.Group("/tasks").POST("/:id/done", controllers.HandleTaskFunc(container, "markDone"))

	// staff roster
	auth.Group("/people").GET("", controllers.HandlePersonFunc(container, "getPeople"))
	auth.Group("/people").GET("/:id", controllers.HandlePersonFunc(container, "getPerson"))
	auth.Group("/people").POST("", controllers.HandlePersonFunc(container, "createPerson"))
	auth.Group("/people").PUT("/:id", controllers.HandlePersonFunc(container, "updatePerson"))
	auth.Group("/people").DELETE("/:id", controllers.HandlePersonFunc(container, "deletePerson"))

	// login accounts
	auth.Group("/users").GET("", controllers.HandleUserFunc(container, "getUsers"))
	auth.Group("/users").GET("/:id", controllers.HandleUserFunc(container, "getUser"))
	auth.Group("/users").POST("", controllers.HandleUserFunc(container, "createUser"))
	auth.Group("/users").PUT("/:id", controllers.HandleUserFunc(container, "updateUser"))
	auth.Group("/users").DELETE("/:id", controllers.HandleUserFunc(container, "deleteUser"))

	// newsrooms
	auth.Group("/newsrooms").GET("", controllers.HandleNewsroomFunc(container, "getNewsrooms"))
	auth.Group("/newsrooms").GET("/:id", controllers.HandleNewsroomFunc(container, "getNewsroom"))
	auth.Group("/newsrooms").POST("", controllers.HandleNewsroomFunc(container, "createNewsroom"))
	auth.Group("/newsrooms").PUT("/:id", controllers.HandleNewsroomFunc(container, "updateNewsroom"))
	auth.Group("/newsrooms").DELETE("/:id", controllers.HandleNewsroomFunc(container, "deleteNewsroom"))

	// vehicles and equipment
	auth.Group("/vehicles").GET("", controllers.HandleVehicleFunc(container, "getVehicles"))
	auth.Group("/vehicles").POST("", controllers.HandleVehicleFunc(container, "createVehicle"))
	auth.Group("/vehicles").PUT("/:id", controllers.HandleVehicleFunc(container, "updateVehicle"))
	auth.Group("/vehicles").DELETE("/:id", controllers.HandleVehicleFunc(container, "deleteVehicle"))
	auth.Group("/equipment").GET("", controllers.HandleVehicleFunc(container, "getEquipment"))
	auth.Group("/equipment").POST("", controllers.HandleVehicleFunc(container, "createEquipment"))
	auth.Group("/equipment").PUT("/:id", controllers.HandleVehicleFunc(container, "updateEquipment"))
	auth.Group("/equipment").DELETE("/:id", controllers.HandleVehicleFunc(container, "deleteEquipment"))

	// notification inbox
	auth.Group("/notifications").GET("", controllers.HandleNotificationFunc(container, "getNotifications"))
	auth.Group("/notifications").GET("/unread-count", controllers.HandleNotificationFunc(container, "unreadCount"))
	auth.Group("/notifications").POST("/read-all", controllers.HandleNotificationFunc(container, "markAllRead"))
	auth.Group("/notifications").POST("/:id/read", controllers.HandleNotificationFunc(container, "markRead"))
	auth.Group("/notifications").DELETE("/:id", controllers.HandleNotificationFunc(container, "deleteNotification"))

	// shift schedules
	auth.Group("/employee-schedules").GET("", controllers.HandleScheduleFunc(container, "getSchedules"))
	auth.Group("/employee-schedules").POST("", controllers.HandleScheduleFunc(container, "createSchedule"))
	auth.Group("/employee-schedules").PUT("/:id", controllers.HandleScheduleFunc(container, "updateSchedule"))
	auth.Group("/employee-schedules").DELETE("/:id", controllers.HandleScheduleFunc(container, "deleteSchedule"))
	auth.Group("/shift-types").GET("", controllers.HandleScheduleFunc(container, "getShiftTypes"))
	auth.Group("/shift-types").POST("", controllers.HandleScheduleFunc(container, "createShiftType"))
	auth.Group("/shift-types").PUT("/:id", controllers.HandleScheduleFunc(container, "updateShiftType"))
	auth.Group("/shift-types").DELETE("/:id", controllers.HandleScheduleFunc(container, "deleteShiftType"))
	auth.Group("/schedule/notes").GET("", controllers.HandleScheduleFunc(container, "getNotes"))
	auth.Group("/schedule/notes").POST("", controllers.HandleScheduleFunc(container, "createNote"))
	auth.Group("/schedule/notes").DELETE("/:id", controllers.HandleScheduleFunc(container, "deleteNote"))
	auth.Group("/leave-requests").GET("", controllers.HandleScheduleFunc(container, "getLeaveRequests"))
	auth.Group("/leave-requests").POST("", controllers.HandleScheduleFunc(container, "createLeaveRequest"))
	auth.Group("/leave-requests").PUT("/:id", controllers.HandleScheduleFunc(container, "updateLeaveRequest"))
	auth.Group("/leave-requests").DELETE("/:id", controllers.HandleScheduleFunc(container, "deleteLeaveRequest"))

	// task presets
	auth.Group("/task-presets").GET("", controllers.HandlePresetFunc(container, "getPresets"))
	auth.Group("/task-presets").POST("", controllers.HandlePresetFunc(container, "createPreset"))
	auth.Group("/task-presets").PUT("/:id", controllers.HandlePresetFunc(container, "updatePreset"))
	auth.Group("/task-presets").DELETE("/:id", controllers.HandlePresetFunc(container, "deletePreset"))

	// statistics
	auth.GET("/dashboard", controllers.HandleStatsFunc(container, "dashboard"))
	auth.GET("/statistics", controllers.HandleStatsFunc(container, "statistics"))

	// roles and permissions
	auth.Group("/roles").GET("", controllers.HandleRBACFunc(container, "getRoles"))
	auth.Group("/roles").GET("/:id/permissions", controllers.HandleRBACFunc(container, "getRolePermissions"))
	auth.GET("/permissions", controllers.HandleRBACFunc(container, "getPermissions"))

	// audit trail, admin only
	auth.GET("/audit", middleware.RequireRoles(models.RoleAdmin), controllers.HandleAuditFunc(container, "getAuditLogs"))

	// backups, admin only
	backup := auth.Group("/backup", middleware.RequireRoles(models.RoleAdmin))
	backup.GET("", controllers.HandleBackupFunc(container, "getBackups"))
	backup.POST("", controllers.HandleBackupFunc(container, "createBackup"))
	backup.POST("/restore", controllers.HandleBackupFunc(container, "restoreBackup"))

	// reports
	auth.GET("/reports/pdf", controllers.HandleReportFunc(container, "dailyReport"))

	// web push
	auth.Group("/push").GET("/public-key", controllers.HandlePushFunc(container, "publicKey"))
	auth.Group("/push").POST("/subscribe", controllers.HandlePushFunc(container, "subscribe"))
	auth.Group("/push").POST("/unsubscribe", controllers.HandlePushFunc(container, "unsubscribe"))
}
