package models

import "time"

// TaskPreset is a saved template of task field values for quick reuse
type TaskPreset struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"type:varchar(100);not null" json:"name"`
	Payload   string    `gorm:"type:text" json:"payload"` // JSON of default task fields
	CreatedBy *uint     `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
