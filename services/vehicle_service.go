package services

import (
	"errors"
	"fmt"

	"newsdesk-http-service/config"
	"newsdesk-http-service/models"

	"gorm.io/gorm"
)

// InterfaceVehicleService defines vehicle and equipment management
type InterfaceVehicleService interface {
	GetAllVehicles(activeOnly bool) ([]models.Vehicle, error)
	GetVehicleByID(id uint) (*models.Vehicle, error)
	CreateVehicle(vehicle *models.Vehicle) error
	UpdateVehicle(id uint, updates map[string]interface{}) (*models.Vehicle, error)
	DeleteVehicle(id uint) error

	GetAllEquipment(activeOnly bool) ([]models.Equipment, error)
	CreateEquipment(equipment *models.Equipment) error
	UpdateEquipment(id uint, updates map[string]interface{}) (*models.Equipment, error)
	DeleteEquipment(id uint) error
}

// VehicleService manages vehicles and camera equipment
type VehicleService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewVehicleService creates a new vehicle service
func NewVehicleService(db *gorm.DB, cfg *config.Config) *VehicleService {
	return &VehicleService{
		DB:     db,
		Config: cfg,
	}
}

// GetAllVehicles returns vehicles, optionally only active ones
func (s *VehicleService) GetAllVehicles(activeOnly bool) ([]models.Vehicle, error) {
	q := s.DB.Model(&models.Vehicle{})
	if activeOnly {
		q = q.Where("is_active = ?", true)
	}
	var vehicles []models.Vehicle
	err := q.Order("name ASC").Find(&vehicles).Error
	return vehicles, err
}

// GetVehicleByID loads one vehicle
func (s *VehicleService) GetVehicleByID(id uint) (*models.Vehicle, error) {
	var vehicle models.Vehicle
	if err := s.DB.First(&vehicle, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &vehicle, nil
}

// CreateVehicle adds a vehicle
func (s *VehicleService) CreateVehicle(vehicle *models.Vehicle) error {
	if vehicle.Name == "" {
		return fmt.Errorf("name is required: %w", ErrValidation)
	}
	vehicle.IsActive = true
	return s.DB.Create(vehicle).Error
}

// UpdateVehicle applies a partial update
func (s *VehicleService) UpdateVehicle(id uint, updates map[string]interface{}) (*models.Vehicle, error) {
	vehicle, err := s.GetVehicleByID(id)
	if err != nil {
		return nil, err
	}
	if err := s.DB.Model(vehicle).Updates(updates).Error; err != nil {
		return nil, err
	}
	return s.GetVehicleByID(id)
}

// DeleteVehicle removes a vehicle and clears its task references
func (s *VehicleService) DeleteVehicle(id uint) error {
	if _, err := s.GetVehicleByID(id); err != nil {
		return err
	}
	if err := s.DB.Model(&models.Task{}).Where("vehicle_id = ?", id).
		Update("vehicle_id", nil).Error; err != nil {
		return err
	}
	return s.DB.Delete(&models.Vehicle{}, id).Error
}

// GetAllEquipment returns equipment, optionally only active
func (s *VehicleService) GetAllEquipment(activeOnly bool) ([]models.Equipment, error) {
	q := s.DB.Model(&models.Equipment{})
	if activeOnly {
		q = q.Where("is_active = ?", true)
	}
	var equipment []models.Equipment
	err := q.Order("name ASC").Find(&equipment).Error
	return equipment, err
}

// CreateEquipment adds an equipment kit
func (s *VehicleService) CreateEquipment(equipment *models.Equipment) error {
	if equipment.Name == "" {
		return fmt.Errorf("name is required: %w", ErrValidation)
	}
	equipment.IsActive = true
	return s.DB.Create(equipment).Error
}

// UpdateEquipment applies a partial update
func (s *VehicleService) UpdateEquipment(id uint, updates map[string]interface{}) (*models.Equipment, error) {
	var equipment models.Equipment
	if err := s.DB.First(&equipment, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if err := s.DB.Model(&equipment).Updates(updates).Error; err != nil {
		return nil, err
	}
	return &equipment, nil
}

// DeleteEquipment removes an equipment kit and clears its task references
func (s *VehicleService) DeleteEquipment(id uint) error {
	var equipment models.Equipment
	if err := s.DB.First(&equipment, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if err := s.DB.Model(&models.Task{}).Where("equipment_id = ?", id).
		Update("equipment_id", nil).Error; err != nil {
		return err
	}
	return s.DB.Delete(&models.Equipment{}, id).Error
}
