package models

import "time"

// AuditLog is an append-only row per mutating action. Writing it must never
// fail the mutation it describes.
type AuditLog struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Action      string    `gorm:"type:varchar(30);not null" json:"action"` // CREATE, UPDATE, DELETE, ...
	TableName   string    `gorm:"type:varchar(50)" json:"table_name"`
	RecordID    uint      `gorm:"index" json:"record_id"`
	OldValues   string    `gorm:"type:text" json:"old_values"` // JSON snapshot before the change
	NewValues   string    `gorm:"type:text" json:"new_values"` // JSON snapshot after the change
	Description string    `gorm:"type:varchar(300)" json:"description"`
	UserID      *uint     `gorm:"index" json:"user_id"`
	Username    string    `gorm:"type:varchar(50)" json:"username"`
	IPAddress   string    `gorm:"type:varchar(45)" json:"ip_address"`
	CreatedAt   time.Time `json:"created_at"`
}
