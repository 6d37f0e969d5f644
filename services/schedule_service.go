package services

import (
	"errors"
	"fmt"

	"newsdesk-http-service/config"
	"newsdesk-http-service/models"

	"gorm.io/gorm"
)

// InterfaceScheduleService defines shift scheduling operations
type InterfaceScheduleService interface {
	ListEmployeeSchedules(dateFrom, dateTo string, personID *uint) ([]models.EmployeeSchedule, error)
	CreateEmployeeSchedule(schedule *models.EmployeeSchedule) error
	UpdateEmployeeSchedule(id uint, updates map[string]interface{}) (*models.EmployeeSchedule, error)
	DeleteEmployeeSchedule(id uint) error

	ListShiftTypes() ([]models.ShiftType, error)
	CreateShiftType(shiftType *models.ShiftType) error
	UpdateShiftType(id uint, updates map[string]interface{}) (*models.ShiftType, error)
	DeleteShiftType(id uint) error

	ListScheduleNotes(date string, newsroomID *uint) ([]models.ScheduleNote, error)
	CreateScheduleNote(note *models.ScheduleNote) error
	DeleteScheduleNote(id uint) error

	ListLeaveRequests(personID *uint, status string) ([]models.LeaveRequest, error)
	CreateLeaveRequest(request *models.LeaveRequest) error
	UpdateLeaveRequest(id uint, updates map[string]interface{}) (*models.LeaveRequest, error)
	DeleteLeaveRequest(id uint) error
}

// ScheduleService manages shift assignments, shift types, desk notes and
// leave requests. These are keyed by person/date and independent of tasks.
type ScheduleService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewScheduleService creates a new schedule service
func NewScheduleService(db *gorm.DB, cfg *config.Config) *ScheduleService {
	return &ScheduleService{
		DB:     db,
		Config: cfg,
	}
}

// ListEmployeeSchedules returns shift assignments in a date range
func (s *ScheduleService) ListEmployeeSchedules(dateFrom, dateTo string, personID *uint) ([]models.EmployeeSchedule, error) {
	q := s.DB.Preload("Person").Preload("ShiftType").Model(&models.EmployeeSchedule{})
	if dateFrom != "" {
		q = q.Where("date >= ?", dateFrom)
	}
	if dateTo != "" {
		q = q.Where("date <= ?", dateTo)
	}
	if personID != nil {
		q = q.Where("person_id = ?", *personID)
	}

	var schedules []models.EmployeeSchedule
	err := q.Order("date ASC").Find(&schedules).Error
	return schedules, err
}

// CreateEmployeeSchedule adds a shift assignment, replacing an existing one
// for the same person and date.
func (s *ScheduleService) CreateEmployeeSchedule(schedule *models.EmployeeSchedule) error {
	if schedule.PersonID == 0 || schedule.Date == "" {
		return fmt.Errorf("person_id and date are required: %w", ErrValidation)
	}

	var existing models.EmployeeSchedule
	err := s.DB.Where("person_id = ? AND date = ?", schedule.PersonID, schedule.Date).First(&existing).Error
	if err == nil {
		existing.ShiftTypeID = schedule.ShiftTypeID
		existing.Note = schedule.Note
		if err := s.DB.Save(&existing).Error; err != nil {
			return err
		}
		*schedule = existing
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	return s.DB.Create(schedule).Error
}

// UpdateEmployeeSchedule applies a partial update
func (s *ScheduleService) UpdateEmployeeSchedule(id uint, updates map[string]interface{}) (*models.EmployeeSchedule, error) {
	var schedule models.EmployeeSchedule
	if err := s.DB.First(&schedule, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if err := s.DB.Model(&schedule).Updates(updates).Error; err != nil {
		return nil, err
	}
	return &schedule, nil
}

// DeleteEmployeeSchedule removes a shift assignment
func (s *ScheduleService) DeleteEmployeeSchedule(id uint) error {
	result := s.DB.Delete(&models.EmployeeSchedule{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ListShiftTypes returns all shift types in display order
func (s *ScheduleService) ListShiftTypes() ([]models.ShiftType, error) {
	var shiftTypes []models.ShiftType
	err := s.DB.Order("sort_order ASC, id ASC").Find(&shiftTypes).Error
	return shiftTypes, err
}

// CreateShiftType adds a shift type
func (s *ScheduleService) CreateShiftType(shiftType *models.ShiftType) error {
	if shiftType.Name == "" {
		return fmt.Errorf("name is required: %w", ErrValidation)
	}
	return s.DB.Create(shiftType).Error
}

// UpdateShiftType applies a partial update
func (s *ScheduleService) UpdateShiftType(id uint, updates map[string]interface{}) (*models.ShiftType, error) {
	var shiftType models.ShiftType
	if err := s.DB.First(&shiftType, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if err := s.DB.Model(&shiftType).Updates(updates).Error; err != nil {
		return nil, err
	}
	return &shiftType, nil
}

// DeleteShiftType removes a shift type and clears schedule references
func (s *ScheduleService) DeleteShiftType(id uint) error {
	if err := s.DB.Model(&models.EmployeeSchedule{}).Where("shift_type_id = ?", id).
		Update("shift_type_id", nil).Error; err != nil {
		return err
	}
	result := s.DB.Delete(&models.ShiftType{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ListScheduleNotes returns desk notes for a date
func (s *ScheduleService) ListScheduleNotes(date string, newsroomID *uint) ([]models.ScheduleNote, error) {
	q := s.DB.Model(&models.ScheduleNote{})
	if date != "" {
		q = q.Where("date = ?", date)
	}
	if newsroomID != nil {
		q = q.Where("newsroom_id = ?", *newsroomID)
	}

	var notes []models.ScheduleNote
	err := q.Order("id DESC").Find(&notes).Error
	return notes, err
}

// CreateScheduleNote adds a desk note
func (s *ScheduleService) CreateScheduleNote(note *models.ScheduleNote) error {
	if note.Date == "" || note.Text == "" {
		return fmt.Errorf("date and text are required: %w", ErrValidation)
	}
	return s.DB.Create(note).Error
}

// DeleteScheduleNote removes a desk note
func (s *ScheduleService) DeleteScheduleNote(id uint) error {
	result := s.DB.Delete(&models.ScheduleNote{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ListLeaveRequests returns leave requests, optionally filtered
func (s *ScheduleService) ListLeaveRequests(personID *uint, status string) ([]models.LeaveRequest, error) {
	q := s.DB.Preload("Person").Model(&models.LeaveRequest{})
	if personID != nil {
		q = q.Where("person_id = ?", *personID)
	}
	if status != "" {
		q = q.Where("status = ?", status)
	}

	var requests []models.LeaveRequest
	err := q.Order("date_from DESC").Find(&requests).Error
	return requests, err
}

// CreateLeaveRequest adds a leave request
func (s *ScheduleService) CreateLeaveRequest(request *models.LeaveRequest) error {
	if request.PersonID == 0 || request.DateFrom == "" || request.DateTo == "" {
		return fmt.Errorf("person_id, date_from and date_to are required: %w", ErrValidation)
	}
	if request.Status == "" {
		request.Status = "PENDING"
	}
	return s.DB.Create(request).Error
}

// UpdateLeaveRequest applies a partial update (typically a status change)
func (s *ScheduleService) UpdateLeaveRequest(id uint, updates map[string]interface{}) (*models.LeaveRequest, error) {
	var request models.LeaveRequest
	if err := s.DB.First(&request, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if err := s.DB.Model(&request).Updates(updates).Error; err != nil {
		return nil, err
	}
	return &request, nil
}

// DeleteLeaveRequest removes a leave request
func (s *ScheduleService) DeleteLeaveRequest(id uint) error {
	result := s.DB.Delete(&models.LeaveRequest{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
