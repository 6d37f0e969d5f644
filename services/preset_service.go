package services

import (
	"errors"
	"fmt"

	"newsdesk-http-service/config"
	"newsdesk-http-service/models"

	"gorm.io/gorm"
)

// InterfacePresetService defines task preset operations
type InterfacePresetService interface {
	ListPresets() ([]models.TaskPreset, error)
	CreatePreset(preset *models.TaskPreset) error
	UpdatePreset(id uint, updates map[string]interface{}) (*models.TaskPreset, error)
	DeletePreset(id uint) error
}

// PresetService manages saved task templates
type PresetService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewPresetService creates a new preset service
func NewPresetService(db *gorm.DB, cfg *config.Config) *PresetService {
	return &PresetService{
		DB:     db,
		Config: cfg,
	}
}

// ListPresets returns all saved presets
func (s *PresetService) ListPresets() ([]models.TaskPreset, error) {
	var presets []models.TaskPreset
	err := s.DB.Order("name ASC").Find(&presets).Error
	return presets, err
}

// CreatePreset saves a task template
func (s *PresetService) CreatePreset(preset *models.TaskPreset) error {
	if preset.Name == "" {
		return fmt.Errorf("name is required: %w", ErrValidation)
	}
	return s.DB.Create(preset).Error
}

// UpdatePreset applies a partial update
func (s *PresetService) UpdatePreset(id uint, updates map[string]interface{}) (*models.TaskPreset, error) {
	var preset models.TaskPreset
	if err := s.DB.First(&preset, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if err := s.DB.Model(&preset).Updates(updates).Error; err != nil {
		return nil, err
	}
	return &preset, nil
}

// DeletePreset removes a saved template
func (s *PresetService) DeletePreset(id uint) error {
	result := s.DB.Delete(&models.TaskPreset{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
