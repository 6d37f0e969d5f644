package services

import (
	"errors"
	"fmt"

	"newsdesk-http-service/config"
	"newsdesk-http-service/models"

	"gorm.io/gorm"
)

// InterfacePersonService defines roster person operations
type InterfacePersonService interface {
	GetAllPeople(page, pageSize int, search string, newsroomID *uint) ([]models.Person, int64, error)
	GetPersonByID(id uint) (*models.Person, error)
	CreatePerson(person *models.Person) error
	UpdatePerson(id uint, updates map[string]interface{}) (*models.Person, error)
	DeletePerson(id uint) error
}

// PersonService manages the staff roster
type PersonService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewPersonService creates a new person service
func NewPersonService(db *gorm.DB, cfg *config.Config) *PersonService {
	return &PersonService{
		DB:     db,
		Config: cfg,
	}
}

// GetAllPeople returns roster people with pagination and search
func (s *PersonService) GetAllPeople(page, pageSize int, search string, newsroomID *uint) ([]models.Person, int64, error) {
	q := s.DB.Model(&models.Person{})
	if search != "" {
		like := "%" + search + "%"
		q = q.Where("name LIKE ? OR email LIKE ? OR phone LIKE ?", like, like, like)
	}
	if newsroomID != nil {
		q = q.Where("newsroom_id = ?", *newsroomID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var people []models.Person
	if err := q.Order("name ASC").Limit(pageSize).Offset((page - 1) * pageSize).Find(&people).Error; err != nil {
		return nil, 0, err
	}
	return people, total, nil
}

// GetPersonByID loads one roster person
func (s *PersonService) GetPersonByID(id uint) (*models.Person, error) {
	var person models.Person
	if err := s.DB.Preload("Newsroom").First(&person, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &person, nil
}

// CreatePerson adds a roster person
func (s *PersonService) CreatePerson(person *models.Person) error {
	if person.Name == "" {
		return fmt.Errorf("name is required: %w", ErrValidation)
	}
	person.IsActive = true
	return s.DB.Create(person).Error
}

// UpdatePerson applies a partial update
func (s *PersonService) UpdatePerson(id uint, updates map[string]interface{}) (*models.Person, error) {
	person, err := s.GetPersonByID(id)
	if err != nil {
		return nil, err
	}

	if err := s.DB.Model(person).Updates(updates).Error; err != nil {
		return nil, err
	}
	return s.GetPersonByID(id)
}

// DeletePerson removes a roster person and cascades by hand: their schedule
// and leave rows are deleted and their id is pruned from task assignment
// arrays (no FK cascade exists for JSON-array columns).
func (s *PersonService) DeletePerson(id uint) error {
	person, err := s.GetPersonByID(id)
	if err != nil {
		return err
	}

	if err := s.DB.Where("person_id = ?", id).Delete(&models.EmployeeSchedule{}).Error; err != nil {
		return err
	}
	if err := s.DB.Where("person_id = ?", id).Delete(&models.LeaveRequest{}).Error; err != nil {
		return err
	}

	// prune the person from assignment arrays; the LIKE is only a cheap
	// pre-filter, the exact membership check happens in Go
	var tasks []models.Task
	like := fmt.Sprintf("%%%d%%", id)
	if err := s.DB.Where("journalist_ids LIKE ? OR cameraman_ids LIKE ?", like, like).Find(&tasks).Error; err != nil {
		return err
	}
	for i := range tasks {
		t := &tasks[i]
		changed := false
		if t.JournalistIDs.Contains(id) {
			t.JournalistIDs = t.JournalistIDs.Without(id)
			changed = true
		}
		if t.CameramanIDs.Contains(id) {
			t.CameramanIDs = t.CameramanIDs.Without(id)
			changed = true
		}
		if changed {
			if err := s.DB.Save(t).Error; err != nil {
				config.Warning("failed to prune person %d from task %d: %v", id, t.ID, err)
			}
		}
	}

	config.Info("person %s (%d) deleted with schedule and leave rows", person.Name, id)
	return s.DB.Delete(&models.Person{}, id).Error
}
