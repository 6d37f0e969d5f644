package models

import "time"

// PushSubscription stores a browser web-push subscription for a user
type PushSubscription struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	Endpoint  string    `gorm:"type:varchar(500);unique;not null" json:"endpoint"`
	P256dh    string    `gorm:"type:varchar(200)" json:"p256dh"`
	Auth      string    `gorm:"type:varchar(100)" json:"auth"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
