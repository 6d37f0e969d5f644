package models

import "time"

// Newsroom is an organizational unit with its own PIN-based login and roster
type Newsroom struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"type:varchar(100);unique;not null" json:"name"`
	PIN       string    `gorm:"type:varchar(20);column:pin" json:"-"` // shared login secret, not exposed
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
