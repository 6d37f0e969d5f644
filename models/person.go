package models

import "time"

// Person is a staff roster entry assignable to tasks as journalist or
// cameraman. It is linked to a User account only by name/email heuristics,
// there is no foreign key between the two tables.
type Person struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Name       string    `gorm:"type:varchar(100);not null" json:"name"`
	Role       string    `gorm:"type:varchar(50)" json:"role"` // role label: journalist, cameraman, ...
	Phone      string    `gorm:"type:varchar(30)" json:"phone"`
	Email      string    `gorm:"type:varchar(100)" json:"email"`
	NewsroomID *uint     `gorm:"index" json:"newsroom_id"`
	Position   string    `gorm:"type:varchar(100)" json:"position"`
	IsActive   bool      `gorm:"default:true" json:"is_active"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	Newsroom *Newsroom `gorm:"foreignKey:NewsroomID" json:"newsroom,omitempty"`
}
