package models

import "time"

// Notification types
const (
	NotificationTaskCreated   = "TASK_CREATED"
	NotificationExchange      = "EXCHANGE"
	NotificationTravel        = "TRAVEL_ORDER"
	NotificationCameramanSet  = "CAMERAMAN_ASSIGNED"
	NotificationStatusChanged = "STATUS_CHANGED"
	NotificationTaskDone      = "TASK_DONE"
)

// Notification is created as a side effect of task mutations and purged
// nightly for rows older than the current day.
type Notification struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	Title     string    `gorm:"type:varchar(200)" json:"title"`
	Message   string    `gorm:"type:text" json:"message"`
	Type      string    `gorm:"type:varchar(40)" json:"type"`
	TaskID    *uint     `gorm:"index" json:"task_id"`
	IsRead    bool      `gorm:"default:false" json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}
