package services

import (
	"encoding/json"

	"newsdesk-http-service/config"
	"newsdesk-http-service/models"

	"gorm.io/gorm"
)

// InterfaceAuditService defines audit logging operations
type InterfaceAuditService interface {
	Log(action, tableName string, recordID uint, oldValues, newValues interface{}, description string, user *models.User, ip string)
	List(query *AuditListQuery) ([]models.AuditLog, int64, error)
}

// AuditListQuery filters the audit trail listing
type AuditListQuery struct {
	TableName string `form:"table_name"`
	Action    string `form:"action"`
	Username  string `form:"username"`
	Page      int    `form:"page"`
	PageSize  int    `form:"page_size"`
}

// AuditService appends one row per mutating action. Logging is best effort:
// a failed insert is reported to the log file and otherwise ignored, so the
// mutation it describes always wins.
type AuditService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewAuditService creates a new audit service
func NewAuditService(db *gorm.DB, cfg *config.Config) *AuditService {
	return &AuditService{
		DB:     db,
		Config: cfg,
	}
}

// Log records a mutating action with before/after snapshots
func (s *AuditService) Log(action, tableName string, recordID uint, oldValues, newValues interface{}, description string, user *models.User, ip string) {
	entry := models.AuditLog{
		Action:      action,
		TableName:   tableName,
		RecordID:    recordID,
		Description: description,
		IPAddress:   ip,
	}

	if oldValues != nil {
		if b, err := json.Marshal(oldValues); err == nil {
			entry.OldValues = string(b)
		}
	}
	if newValues != nil {
		if b, err := json.Marshal(newValues); err == nil {
			entry.NewValues = string(b)
		}
	}
	if user != nil {
		entry.UserID = &user.ID
		entry.Username = user.Username
	}

	if err := s.DB.Create(&entry).Error; err != nil {
		config.Warning("audit log insert failed for %s %s/%d: %v", action, tableName, recordID, err)
	}
}

// List returns the audit trail, newest first
func (s *AuditService) List(query *AuditListQuery) ([]models.AuditLog, int64, error) {
	page := query.Page
	pageSize := query.PageSize
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 200 {
		pageSize = 50
	}

	q := s.DB.Model(&models.AuditLog{})
	if query.TableName != "" {
		q = q.Where("table_name = ?", query.TableName)
	}
	if query.Action != "" {
		q = q.Where("action = ?", query.Action)
	}
	if query.Username != "" {
		q = q.Where("username = ?", query.Username)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var logs []models.AuditLog
	if err := q.Order("id DESC").Limit(pageSize).Offset((page - 1) * pageSize).Find(&logs).Error; err != nil {
		return nil, 0, err
	}

	return logs, total, nil
}
