package services

import (
	"errors"
	"fmt"

	"newsdesk-http-service/config"
	"newsdesk-http-service/models"
	"newsdesk-http-service/utils"

	"gorm.io/gorm"
)

// InterfaceAuthService defines login and session operations
type InterfaceAuthService interface {
	Login(username, password string) (*models.User, string, error)
	LoginWithPIN(username string, newsroomID uint, pin string) (*models.User, string, error)
	Logout(token string) error
	GetUser(id uint) (*models.User, error)
}

// AuthService authenticates users by username/password or by their
// newsroom's shared PIN and issues JWT tokens.
type AuthService struct {
	DB     *gorm.DB
	Config *config.Config
	JWT    InterfaceJWTService
}

// NewAuthService creates a new auth service
func NewAuthService(db *gorm.DB, cfg *config.Config, jwtService InterfaceJWTService) *AuthService {
	return &AuthService{
		DB:     db,
		Config: cfg,
		JWT:    jwtService,
	}
}

// Login authenticates by username and password
func (s *AuthService) Login(username, password string) (*models.User, string, error) {
	var user models.User
	if err := s.DB.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", fmt.Errorf("invalid username or password: %w", ErrForbidden)
		}
		return nil, "", err
	}

	if !user.IsActive {
		return nil, "", fmt.Errorf("account is deactivated: %w", ErrForbidden)
	}
	if !utils.CheckPasswordHash(password, user.Password) {
		return nil, "", fmt.Errorf("invalid username or password: %w", ErrForbidden)
	}

	token, err := s.JWT.GenerateToken(&user)
	if err != nil {
		return nil, "", err
	}

	config.Info("user %s logged in", user.Username)
	return &user, token, nil
}

// LoginWithPIN authenticates a user by their newsroom's shared PIN
func (s *AuthService) LoginWithPIN(username string, newsroomID uint, pin string) (*models.User, string, error) {
	var newsroom models.Newsroom
	if err := s.DB.First(&newsroom, newsroomID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", fmt.Errorf("invalid newsroom or PIN: %w", ErrForbidden)
		}
		return nil, "", err
	}
	if newsroom.PIN == "" || newsroom.PIN != pin {
		return nil, "", fmt.Errorf("invalid newsroom or PIN: %w", ErrForbidden)
	}

	var user models.User
	if err := s.DB.Where("username = ? AND newsroom_id = ?", username, newsroomID).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", fmt.Errorf("no such user in this newsroom: %w", ErrForbidden)
		}
		return nil, "", err
	}
	if !user.IsActive {
		return nil, "", fmt.Errorf("account is deactivated: %w", ErrForbidden)
	}

	token, err := s.JWT.GenerateToken(&user)
	if err != nil {
		return nil, "", err
	}

	config.Info("user %s logged in via newsroom PIN", user.Username)
	return &user, token, nil
}

// Logout revokes the presented token
func (s *AuthService) Logout(token string) error {
	return s.JWT.BlacklistToken(token)
}

// GetUser loads a user by id
func (s *AuthService) GetUser(id uint) (*models.User, error) {
	var user models.User
	if err := s.DB.Preload("Newsroom").First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}
