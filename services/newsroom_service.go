package services

import (
	"errors"
	"fmt"

	"newsdesk-http-service/config"
	"newsdesk-http-service/models"
	"newsdesk-http-service/utils"

	"gorm.io/gorm"
)

// InterfaceNewsroomService defines newsroom management operations
type InterfaceNewsroomService interface {
	GetAllNewsrooms() ([]models.Newsroom, error)
	GetNewsroomByID(id uint) (*models.Newsroom, error)
	CreateNewsroom(newsroom *models.Newsroom) error
	UpdateNewsroom(id uint, updates map[string]interface{}) (*models.Newsroom, error)
	DeleteNewsroom(id uint) error
}

// NewsroomService manages newsrooms
type NewsroomService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewNewsroomService creates a new newsroom service
func NewNewsroomService(db *gorm.DB, cfg *config.Config) *NewsroomService {
	return &NewsroomService{
		DB:     db,
		Config: cfg,
	}
}

// GetAllNewsrooms returns every newsroom
func (s *NewsroomService) GetAllNewsrooms() ([]models.Newsroom, error) {
	var newsrooms []models.Newsroom
	err := s.DB.Order("name ASC").Find(&newsrooms).Error
	return newsrooms, err
}

// GetNewsroomByID loads one newsroom
func (s *NewsroomService) GetNewsroomByID(id uint) (*models.Newsroom, error) {
	var newsroom models.Newsroom
	if err := s.DB.First(&newsroom, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &newsroom, nil
}

// CreateNewsroom adds a newsroom. A newsroom created without a PIN gets a
// random four-digit one so PIN login works out of the box.
func (s *NewsroomService) CreateNewsroom(newsroom *models.Newsroom) error {
	if newsroom.Name == "" {
		return fmt.Errorf("name is required: %w", ErrValidation)
	}
	if newsroom.PIN == "" {
		newsroom.PIN = utils.RandomDigits(4)
	}
	return s.DB.Create(newsroom).Error
}

// UpdateNewsroom applies a partial update
func (s *NewsroomService) UpdateNewsroom(id uint, updates map[string]interface{}) (*models.Newsroom, error) {
	newsroom, err := s.GetNewsroomByID(id)
	if err != nil {
		return nil, err
	}
	if err := s.DB.Model(newsroom).Updates(updates).Error; err != nil {
		return nil, err
	}
	return s.GetNewsroomByID(id)
}

// DeleteNewsroom removes a newsroom unless tasks or users still belong to it
func (s *NewsroomService) DeleteNewsroom(id uint) error {
	if _, err := s.GetNewsroomByID(id); err != nil {
		return err
	}

	var tasks int64
	if err := s.DB.Model(&models.Task{}).Where("newsroom_id = ?", id).Count(&tasks).Error; err != nil {
		return err
	}
	var users int64
	if err := s.DB.Model(&models.User{}).Where("newsroom_id = ?", id).Count(&users).Error; err != nil {
		return err
	}
	if tasks > 0 || users > 0 {
		return fmt.Errorf("newsroom still has %d tasks and %d users: %w", tasks, users, ErrValidation)
	}

	return s.DB.Delete(&models.Newsroom{}, id).Error
}
