package services

import (
	"errors"
	"fmt"

	"newsdesk-http-service/config"
	"newsdesk-http-service/models"
	"newsdesk-http-service/utils"

	"gorm.io/gorm"
)

// InterfaceUserService defines login account management operations
type InterfaceUserService interface {
	GetAllUsers(page, pageSize int, search string) ([]models.User, int64, error)
	GetUserByID(id uint) (*models.User, error)
	CreateUser(user *models.User) error
	UpdateUser(id uint, updates map[string]interface{}) (*models.User, error)
	DeleteUser(id uint) error
}

// UserService manages login accounts
type UserService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewUserService creates a new user service
func NewUserService(db *gorm.DB, cfg *config.Config) *UserService {
	return &UserService{
		DB:     db,
		Config: cfg,
	}
}

// GetAllUsers returns accounts with pagination and search
func (s *UserService) GetAllUsers(page, pageSize int, search string) ([]models.User, int64, error) {
	q := s.DB.Model(&models.User{})
	if search != "" {
		like := "%" + search + "%"
		q = q.Where("username LIKE ? OR name LIKE ?", like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var users []models.User
	if err := q.Preload("Newsroom").Order("username ASC").
		Limit(pageSize).Offset((page - 1) * pageSize).Find(&users).Error; err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

// GetUserByID loads one account
func (s *UserService) GetUserByID(id uint) (*models.User, error) {
	var user models.User
	if err := s.DB.Preload("Newsroom").First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// CreateUser adds an account, hashing the password
func (s *UserService) CreateUser(user *models.User) error {
	if user.Username == "" || user.Password == "" || user.Role == "" {
		return fmt.Errorf("username, password and role are required: %w", ErrValidation)
	}

	var count int64
	if err := s.DB.Model(&models.User{}).Where("username = ?", user.Username).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return fmt.Errorf("username already exists: %w", ErrValidation)
	}

	hashed, err := utils.HashPassword(user.Password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %v", err)
	}
	user.Password = hashed
	user.IsActive = true

	return s.DB.Create(user).Error
}

// UpdateUser applies a partial update; password values are re-hashed and
// username changes are checked for uniqueness.
func (s *UserService) UpdateUser(id uint, updates map[string]interface{}) (*models.User, error) {
	user, err := s.GetUserByID(id)
	if err != nil {
		return nil, err
	}

	if username, ok := updates["username"].(string); ok && username != user.Username {
		var count int64
		if err := s.DB.Model(&models.User{}).Where("username = ? AND id != ?", username, id).Count(&count).Error; err != nil {
			return nil, err
		}
		if count > 0 {
			return nil, fmt.Errorf("username already taken: %w", ErrValidation)
		}
	}

	if password, ok := updates["password"].(string); ok {
		if password == "" {
			delete(updates, "password")
		} else {
			hashed, err := utils.HashPassword(password)
			if err != nil {
				return nil, fmt.Errorf("failed to hash password: %v", err)
			}
			updates["password"] = hashed
		}
	}

	if err := s.DB.Model(user).Updates(updates).Error; err != nil {
		return nil, err
	}
	return s.GetUserByID(id)
}

// DeleteUser removes an account, or deactivates it when dependent rows
// (created tasks, notifications) still reference it.
func (s *UserService) DeleteUser(id uint) error {
	user, err := s.GetUserByID(id)
	if err != nil {
		return err
	}

	var createdTasks int64
	if err := s.DB.Model(&models.Task{}).Where("created_by = ?", id).Count(&createdTasks).Error; err != nil {
		return err
	}
	var notifications int64
	if err := s.DB.Model(&models.Notification{}).Where("user_id = ?", id).Count(&notifications).Error; err != nil {
		return err
	}

	if createdTasks > 0 || notifications > 0 {
		config.Info("user %s has %d tasks and %d notifications, deactivating instead of deleting",
			user.Username, createdTasks, notifications)
		return s.DB.Model(user).Update("is_active", false).Error
	}

	return s.DB.Delete(&models.User{}, id).Error
}
