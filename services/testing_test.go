package services

import (
	"fmt"
	"testing"

	"newsdesk-http-service/config"
	"newsdesk-http-service/models"
	"newsdesk-http-service/utils"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB opens an isolated in-memory database with the full schema
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?cache=private"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(
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
	require.NoError(t, err)
	return db
}

func testConfig() *config.Config {
	return &config.Config{
		JWTSecretKey:    "test-secret",
		BackupRetention: 14,
	}
}

func createNewsroom(t *testing.T, db *gorm.DB, name string) *models.Newsroom {
	t.Helper()
	newsroom := &models.Newsroom{Name: name, PIN: "1234"}
	require.NoError(t, db.Create(newsroom).Error)
	return newsroom
}

func createUser(t *testing.T, db *gorm.DB, username, role string, newsroomID *uint) *models.User {
	t.Helper()
	hash, err := utils.HashPassword("Password@123")
	require.NoError(t, err)
	user := &models.User{
		Username:   username,
		Name:       utils.UsernameToDisplayName(username),
		Password:   hash,
		Role:       role,
		NewsroomID: newsroomID,
		IsActive:   true,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func createPerson(t *testing.T, db *gorm.DB, name, email string, newsroomID *uint) *models.Person {
	t.Helper()
	person := &models.Person{
		Name:       name,
		Email:      email,
		NewsroomID: newsroomID,
		IsActive:   true,
	}
	require.NoError(t, db.Create(person).Error)
	return person
}

func createTask(t *testing.T, db *gorm.DB, newsroomID uint, mutate func(*models.Task)) *models.Task {
	t.Helper()
	task := &models.Task{
		Date:       "2026-09-01",
		TimeStart:  "10:00",
		Title:      fmt.Sprintf("Zadatak %d", newsroomID),
		NewsroomID: newsroomID,
		Status:     models.StatusPlanned,
	}
	if mutate != nil {
		mutate(task)
	}
	require.NoError(t, db.Create(task).Error)
	return task
}

// newTaskService wires a task service with real collaborators on the test DB
func newTaskService(db *gorm.DB) *TaskService {
	cfg := testConfig()
	visibility := NewVisibilityService(db, cfg)
	notifications := NewNotificationService(db, cfg, nil)
	audit := NewAuditService(db, cfg)
	mqtt := NewMQTTService(cfg)
	return NewTaskService(db, cfg, visibility, notifications, audit, mqtt)
}
