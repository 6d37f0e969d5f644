package services

import (
	"newsdesk-http-service/config"
	"newsdesk-http-service/models"

	"gorm.io/gorm"
)

// InterfaceRBACService exposes the role/permission tables for enumeration
type InterfaceRBACService interface {
	ListRoles() ([]models.Role, error)
	ListPermissions() ([]models.Permission, error)
	PermissionsForRole(roleID uint) ([]models.Permission, error)
}

// RBACService reads the role/permission triple. The tables exist so the
// frontend can enumerate permission names; enforcement happens in the
// services through role checks.
type RBACService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewRBACService creates a new RBAC service
func NewRBACService(db *gorm.DB, cfg *config.Config) *RBACService {
	return &RBACService{
		DB:     db,
		Config: cfg,
	}
}

// ListRoles returns all role rows
func (s *RBACService) ListRoles() ([]models.Role, error) {
	var roles []models.Role
	err := s.DB.Order("id ASC").Find(&roles).Error
	return roles, err
}

// ListPermissions returns all permission rows
func (s *RBACService) ListPermissions() ([]models.Permission, error) {
	var permissions []models.Permission
	err := s.DB.Order("id ASC").Find(&permissions).Error
	return permissions, err
}

// PermissionsForRole returns the permissions linked to one role
func (s *RBACService) PermissionsForRole(roleID uint) ([]models.Permission, error) {
	var permissions []models.Permission
	err := s.DB.
		Joins("JOIN role_permissions ON role_permissions.permission_id = permissions.id").
		Where("role_permissions.role_id = ?", roleID).
		Find(&permissions).Error
	return permissions, err
}
