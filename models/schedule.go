package models

import "time"

// ShiftType is a named work shift (morning, afternoon, night...)
type ShiftType struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"type:varchar(50);unique;not null" json:"name"`
	Label     string    `gorm:"type:varchar(100)" json:"label"`
	TimeStart string    `gorm:"type:varchar(5)" json:"time_start"`
	TimeEnd   string    `gorm:"type:varchar(5)" json:"time_end"`
	Color     string    `gorm:"type:varchar(20)" json:"color"`
	SortOrder int       `gorm:"default:0" json:"sort_order"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// EmployeeSchedule assigns a person to a shift on a date, independent of tasks
type EmployeeSchedule struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	PersonID    uint      `gorm:"not null;index" json:"person_id"`
	Date        string    `gorm:"type:varchar(10);not null;index" json:"date"`
	ShiftTypeID *uint     `json:"shift_type_id"`
	Note        string    `gorm:"type:varchar(200)" json:"note"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Person    *Person    `gorm:"foreignKey:PersonID" json:"person,omitempty"`
	ShiftType *ShiftType `gorm:"foreignKey:ShiftTypeID" json:"shift_type,omitempty"`
}

// ScheduleNote is a free-form desk note pinned to a date
type ScheduleNote struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Date       string    `gorm:"type:varchar(10);not null;index" json:"date"`
	NewsroomID *uint     `gorm:"index" json:"newsroom_id"`
	Text       string    `gorm:"type:text" json:"text"`
	CreatedBy  *uint     `json:"created_by"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// LeaveRequest tracks vacation and sick leave per person
type LeaveRequest struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	PersonID  uint      `gorm:"not null;index" json:"person_id"`
	DateFrom  string    `gorm:"type:varchar(10);not null" json:"date_from"`
	DateTo    string    `gorm:"type:varchar(10);not null" json:"date_to"`
	Type      string    `gorm:"type:varchar(30)" json:"type"`
	Status    string    `gorm:"type:varchar(30);default:PENDING" json:"status"`
	Note      string    `gorm:"type:varchar(200)" json:"note"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Person *Person `gorm:"foreignKey:PersonID" json:"person,omitempty"`
}
