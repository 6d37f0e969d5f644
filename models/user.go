package models

import "time"

// User roles. CAMERMAN_EDITOR keeps the historical spelling used by the
// production database; renaming it would orphan existing rows.
const (
	RoleAdmin          = "ADMIN"
	RoleProducer       = "PRODUCER"
	RoleEditor         = "EDITOR"
	RoleDeskEditor     = "DESK_EDITOR"
	RoleJournalist     = "JOURNALIST"
	RoleCamera         = "CAMERA"
	RoleChiefCamera    = "CHIEF_CAMERA"
	RoleCameramanEdit  = "CAMERMAN_EDITOR"
	RoleViewer         = "VIEWER"
	RoleControlRoom    = "CONTROL_ROOM"
)

// User is a login-capable account, distinct from a roster Person
type User struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Username   string    `gorm:"type:varchar(50);unique;not null" json:"username"`
	Name       string    `gorm:"type:varchar(100)" json:"name"`
	Password   string    `gorm:"type:varchar(100);not null" json:"-"` // bcrypt hash, never serialized
	Role       string    `gorm:"type:varchar(30);not null" json:"role"`
	NewsroomID *uint     `gorm:"index" json:"newsroom_id"`
	IsActive   bool      `gorm:"default:true" json:"is_active"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	Newsroom *Newsroom `gorm:"foreignKey:NewsroomID" json:"newsroom,omitempty"`
}

// IsPrivileged reports whether the role sees every newsroom's tasks.
func (u *User) IsPrivileged() bool {
	switch u.Role {
	case RoleAdmin, RoleProducer, RoleChiefCamera, RoleCameramanEdit:
		return true
	}
	return false
}

// IsAdminOrProducer reports whether the role bypasses newsroom ownership checks.
func (u *User) IsAdminOrProducer() bool {
	return u.Role == RoleAdmin || u.Role == RoleProducer
}
