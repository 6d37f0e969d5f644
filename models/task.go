package models

import (
	"strings"
	"time"
)

// Task statuses. The vocabulary is inherited from the production data and is
// intentionally not normalized: both ZAVRŠEN and COMPLETED appear as terminal
// states in existing rows.
const (
	StatusPlanned    = "PLANIRANO"
	StatusAssigned   = "DODIJELJENO"
	StatusInProgress = "U_TOKU"
	StatusRecorded   = "SNIMLJENO"
	StatusCancelled  = "OTKAZANO"
	StatusFinished   = "ZAVRŠEN"
	StatusCompleted  = "COMPLETED"
)

// Task flags
const (
	FlagUrgent     = "HITNO"
	FlagExchange   = "RAZMJENA"
	FlagTravel     = "SLUŽBENI PUT"
	FlagConfirmed  = "POTVRĐENO"
)

// AttachmentTypes is the closed vocabulary for Task.AttachmentType.
var AttachmentTypes = []string{"PACKAGE", "VO", "VO/SOT", "SOT", "FEATURE", "NATPKG"}

// Task is a single planned news-gathering assignment
type Task struct {
	ID                  uint        `gorm:"primaryKey" json:"id"`
	Date                string      `gorm:"type:varchar(10);not null;index" json:"date"` // YYYY-MM-DD
	TimeStart           string      `gorm:"type:varchar(5)" json:"time_start"`           // HH:MM, optional
	TimeEnd             string      `gorm:"type:varchar(5)" json:"time_end"`
	Title               string      `gorm:"type:varchar(200);not null" json:"title"`
	Slugline            string      `gorm:"type:varchar(100)" json:"slugline"`
	Location            string      `gorm:"type:varchar(200)" json:"location"`
	Description         string      `gorm:"type:text" json:"description"`
	NewsroomID          uint        `gorm:"not null;index" json:"newsroom_id"`
	CoverageType        string      `gorm:"type:varchar(50)" json:"coverage_type"`
	AttachmentType      *string     `gorm:"type:varchar(20)" json:"attachment_type"`
	Status              string      `gorm:"type:varchar(30);default:PLANIRANO" json:"status"`
	Flags               StringArray `gorm:"type:text" json:"flags"`
	JournalistIDs       UintArray   `gorm:"type:text" json:"journalist_ids"`
	CameramanIDs        UintArray   `gorm:"type:text" json:"cameraman_ids"`
	VehicleID           *uint       `json:"vehicle_id"`
	EquipmentID         *uint       `json:"equipment_id"`
	CreatedBy           *uint       `json:"created_by"`
	CameramanAssignedBy *uint       `json:"cameraman_assigned_by"`
	ConfirmedByName     string      `gorm:"type:varchar(100)" json:"confirmed_by_name"`
	CreatedAt           time.Time   `json:"created_at"`
	UpdatedAt           time.Time   `json:"updated_at"`

	Newsroom *Newsroom `gorm:"foreignKey:NewsroomID" json:"newsroom,omitempty"`
	Vehicle  *Vehicle  `gorm:"foreignKey:VehicleID" json:"vehicle,omitempty"`
}

// IsValidAttachmentType checks a value against the closed attachment
// vocabulary, case-insensitively. Returns the canonical spelling.
func IsValidAttachmentType(value string) (string, bool) {
	for _, t := range AttachmentTypes {
		if strings.EqualFold(value, t) {
			return t, true
		}
	}
	return "", false
}
