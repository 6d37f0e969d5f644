// @title           Newsdesk HTTP Service API
// @version         1.0
// @description     Task dispatch and scheduling service for a television newsroom

// @host      localhost:8080
// @BasePath  /api

// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 Enter the token with the `Bearer: ` prefix
package main

import (
	"fmt"
	"log"
	"os"

	"newsdesk-http-service/config"
	"newsdesk-http-service/models"
	"newsdesk-http-service/routes"
	"newsdesk-http-service/services"
	"newsdesk-http-service/services/container"

	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func main() {
	if err := config.SetupLogger(); err != nil {
		fmt.Printf("Failed to set up logging: %v\n", err)
		os.Exit(1)
	}

	if err := godotenv.Load(); err != nil {
		config.Warning("No .env file loaded: %v", err)
	} else {
		config.Info(".env file loaded")
	}

	cfg := config.GetConfig()

	db, err := initDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	switch cfg.DBMigrationMode {
	case "drop":
		log.Println("WARNING: running in drop mode, all tables will be dropped and recreated")
		if err := dropAndRecreateTables(db); err != nil {
			log.Fatalf("Failed to drop and recreate tables: %v", err)
		}
	default:
		if err := autoMigrate(db); err != nil {
			log.Fatalf("Database migration failed: %v", err)
		}
	}

	ensureAdminExists(db, cfg)
	seedRoles(db)
	seedShiftTypes(db)

	redisClient := redis.NewClient(&redis.Options{
		Addr: cfg.GetRedisAddr(),
		DB:   cfg.RedisDB,
	})

	serviceContainer := container.NewServiceContainer(db, cfg, redisClient)

	// nightly notification purge and backups
	scheduler := serviceContainer.GetService("scheduler").(services.InterfaceSchedulerService)
	if err := scheduler.Start(); err != nil {
		config.Error("Failed to start scheduler: %v", err)
	}
	defer scheduler.Stop()

	r := routes.SetupRouter(serviceContainer, cfg)

	port := cfg.ServerPort
	config.Info("Server listening on http://localhost:%s", port)
	if err := r.Run(":" + port); err != nil {
		config.Error("Server failed: %v", err)
		os.Exit(1)
	}
}

// initDB opens the SQLite database file
func initDB(cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(cfg.DBPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// SQLite allows one writer at a time; serializing through a single
	// connection avoids SQLITE_BUSY under concurrent requests.
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)

	fmt.Println("Database connection established")
	return db, nil
}

// autoMigrate creates missing tables and columns
func autoMigrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.Newsroom{},
		&models.User{},
		&models.Person{},
		&models.Task{},
		&models.Notification{},
		&models.Vehicle{},
		&models.Equipment{},
		&models.ShiftType{},
		&models.EmployeeSchedule{},
		&models.ScheduleNote{},
		&models.LeaveRequest{},
		&models.TaskPreset{},
		&models.Role{},
		&models.Permission{},
		&models.RolePermission{},
		&models.AuditLog{},
		&models.PushSubscription{},
	)
	if err != nil {
		return err
	}

	fmt.Println("Database migration completed")
	return nil
}

// dropAndRecreateTables drops every model table, then migrates from scratch
func dropAndRecreateTables(db *gorm.DB) error {
	log.Println("Dropping all tables, all data will be lost")

	tables := []interface{}{
		&models.PushSubscription{},
		&models.AuditLog{},
		&models.RolePermission{},
		&models.Permission{},
		&models.Role{},
		&models.TaskPreset{},
		&models.LeaveRequest{},
		&models.ScheduleNote{},
		&models.EmployeeSchedule{},
		&models.ShiftType{},
		&models.Equipment{},
		&models.Vehicle{},
		&models.Notification{},
		&models.Task{},
		&models.Person{},
		&models.User{},
		&models.Newsroom{},
	}
	for _, table := range tables {
		if err := db.Migrator().DropTable(table); err != nil {
			return fmt.Errorf("failed to drop table %T: %w", table, err)
		}
	}

	return autoMigrate(db)
}

// ensureAdminExists creates the default admin account on first start
func ensureAdminExists(db *gorm.DB, cfg *config.Config) {
	var count int64
	db.Model(&models.User{}).Where("role = ?", models.RoleAdmin).Count(&count)
	if count > 0 {
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(cfg.DefaultAdminPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("Failed to hash default admin password: %v", err)
		return
	}

	admin := models.User{
		Username: "admin",
		Name:     "Administrator",
		Password: string(hashedPassword),
		Role:     models.RoleAdmin,
		IsActive: true,
	}
	if result := db.Create(&admin); result.Error != nil {
		log.Printf("Failed to create default admin: %v", result.Error)
		return
	}

	log.Println("Created default admin account (username: admin)")
}

// seedRoles fills the role and permission tables used for enumeration
func seedRoles(db *gorm.DB) {
	var count int64
	db.Model(&models.Role{}).Count(&count)
	if count > 0 {
		return
	}

	roles := []models.Role{
		{Name: models.RoleAdmin, Description: "Full system access"},
		{Name: models.RoleProducer, Description: "All newsrooms, all tasks"},
		{Name: models.RoleEditor, Description: "Own newsroom's tasks"},
		{Name: models.RoleDeskEditor, Description: "Own newsroom's desk"},
		{Name: models.RoleJournalist, Description: "Own assignments only"},
		{Name: models.RoleCamera, Description: "Own camera assignments only"},
		{Name: models.RoleChiefCamera, Description: "Camera desk, all newsrooms"},
		{Name: models.RoleCameramanEdit, Description: "Cameraman assignment desk"},
		{Name: models.RoleViewer, Description: "Read-only newsroom view"},
		{Name: models.RoleControlRoom, Description: "Control room wallboard view"},
	}
	if err := db.Create(&roles).Error; err != nil {
		log.Printf("Failed to seed roles: %v", err)
		return
	}

	permissions := []models.Permission{
		{Name: "tasks.read", Description: "View tasks"},
		{Name: "tasks.create", Description: "Create tasks"},
		{Name: "tasks.update", Description: "Edit tasks"},
		{Name: "tasks.delete", Description: "Delete tasks"},
		{Name: "tasks.confirm", Description: "Confirm finished tasks"},
		{Name: "people.manage", Description: "Manage the staff roster"},
		{Name: "users.manage", Description: "Manage login accounts"},
		{Name: "schedules.manage", Description: "Manage shift schedules"},
		{Name: "backups.manage", Description: "Manage database backups"},
	}
	if err := db.Create(&permissions).Error; err != nil {
		log.Printf("Failed to seed permissions: %v", err)
		return
	}

	byName := make(map[string]uint, len(permissions))
	for _, p := range permissions {
		byName[p.Name] = p.ID
	}
	grants := map[string][]string{
		models.RoleAdmin:         {"tasks.read", "tasks.create", "tasks.update", "tasks.delete", "tasks.confirm", "people.manage", "users.manage", "schedules.manage", "backups.manage"},
		models.RoleProducer:      {"tasks.read", "tasks.create", "tasks.update", "tasks.delete", "tasks.confirm", "people.manage", "schedules.manage"},
		models.RoleEditor:        {"tasks.read", "tasks.create", "tasks.update", "tasks.delete", "schedules.manage"},
		models.RoleDeskEditor:    {"tasks.read", "tasks.create", "tasks.update", "tasks.delete", "schedules.manage"},
		models.RoleJournalist:    {"tasks.read", "tasks.create", "tasks.update"},
		models.RoleCamera:        {"tasks.read", "tasks.update"},
		models.RoleChiefCamera:   {"tasks.read", "tasks.create", "tasks.update", "people.manage", "schedules.manage"},
		models.RoleCameramanEdit: {"tasks.read", "tasks.create", "tasks.update", "tasks.delete"},
		models.RoleViewer:        {"tasks.read"},
		models.RoleControlRoom:   {"tasks.read"},
	}
	var links []models.RolePermission
	for _, role := range roles {
		for _, permName := range grants[role.Name] {
			links = append(links, models.RolePermission{RoleID: role.ID, PermissionID: byName[permName]})
		}
	}
	if err := db.Create(&links).Error; err != nil {
		log.Printf("Failed to seed role permissions: %v", err)
	}
}

// seedShiftTypes fills the default shift vocabulary on first start
func seedShiftTypes(db *gorm.DB) {
	var count int64
	db.Model(&models.ShiftType{}).Count(&count)
	if count > 0 {
		return
	}

	shiftTypes := []models.ShiftType{
		{Name: "JUTARNJA", Label: "Jutarnja smjena", TimeStart: "07:00", TimeEnd: "15:00", Color: "#4caf50", SortOrder: 1},
		{Name: "POPODNEVNA", Label: "Popodnevna smjena", TimeStart: "14:00", TimeEnd: "22:00", Color: "#2196f3", SortOrder: 2},
		{Name: "NOĆNA", Label: "Noćna smjena", TimeStart: "22:00", TimeEnd: "07:00", Color: "#9c27b0", SortOrder: 3},
		{Name: "SLOBODAN", Label: "Slobodan dan", TimeStart: "", TimeEnd: "", Color: "#9e9e9e", SortOrder: 4},
	}
	if err := db.Create(&shiftTypes).Error; err != nil {
		log.Printf("Failed to seed shift types: %v", err)
	}
}
