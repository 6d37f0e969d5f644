package services

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"newsdesk-http-service/config"
	"newsdesk-http-service/models"
	"newsdesk-http-service/utils"

	"gorm.io/gorm"
)

// TaskScope describes which tasks a user may see. It is produced once per
// request by the visibility service and applied by every endpoint that lists
// tasks, so the role rules live in exactly one place.
type TaskScope struct {
	// NewsroomID restricts results to one newsroom when set.
	NewsroomID *uint
	// PersonID triggers assignment-membership filtering when non-zero.
	PersonID uint
	// Cameraman selects cameraman_ids over journalist_ids for membership.
	Cameraman bool
	// Empty means the user's roster identity could not be resolved;
	// the scope matches no tasks (this is not an error).
	Empty bool
}

// Apply narrows a task query to the scope. For person-scoped roles the SQL
// LIKE is only a cheap pre-filter; ids that merely overlap textually (7 vs 17)
// still come back and are rejected by Filter, which does the exact check.
func (sc *TaskScope) Apply(q *gorm.DB) *gorm.DB {
	if sc.Empty {
		return q.Where("1 = 0")
	}
	if sc.NewsroomID != nil {
		q = q.Where("newsroom_id = ?", *sc.NewsroomID)
	}
	if sc.PersonID != 0 {
		column := "journalist_ids"
		if sc.Cameraman {
			column = "cameraman_ids"
		}
		q = q.Where(column+" LIKE ?", "%"+strconv.FormatUint(uint64(sc.PersonID), 10)+"%")
	}
	return q
}

// Filter drops tasks whose assignment array does not contain the scoped
// person id exactly.
func (sc *TaskScope) Filter(tasks []models.Task) []models.Task {
	if sc.PersonID == 0 {
		return tasks
	}
	out := make([]models.Task, 0, len(tasks))
	for _, t := range tasks {
		ids := t.JournalistIDs
		if sc.Cameraman {
			ids = t.CameramanIDs
		}
		if ids.Contains(sc.PersonID) {
			out = append(out, t)
		}
	}
	return out
}

// InterfaceVisibilityService defines role-based task visibility resolution
type InterfaceVisibilityService interface {
	ScopeTasks(user *models.User, explicitNewsroom *uint) (*TaskScope, error)
	ResolvePerson(user *models.User) (*models.Person, error)
}

// VisibilityService resolves which tasks a user may see and which roster
// Person a login account corresponds to.
type VisibilityService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewVisibilityService creates a new visibility service
func NewVisibilityService(db *gorm.DB, cfg *config.Config) *VisibilityService {
	return &VisibilityService{
		DB:     db,
		Config: cfg,
	}
}

// ResolvePerson links a login account to a roster Person. There is no foreign
// key between the tables; matching falls through three heuristics in priority
// order: email containing the username, exact display name, then the
// title-cased transform of the username (dots become spaces).
func (s *VisibilityService) ResolvePerson(user *models.User) (*models.Person, error) {
	username := strings.ToLower(strings.TrimSpace(user.Username))

	var person models.Person
	if username != "" {
		err := s.DB.Where("email LIKE ?", "%"+username+"%").First(&person).Error
		if err == nil {
			return &person, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}

	if user.Name != "" {
		err := s.DB.Where("name = ?", user.Name).First(&person).Error
		if err == nil {
			return &person, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}

	displayName := utils.UsernameToDisplayName(username)
	if displayName != "" {
		err := s.DB.Where("name = ?", displayName).First(&person).Error
		if err == nil {
			return &person, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}

	return nil, gorm.ErrRecordNotFound
}

// ScopeTasks derives the task visibility scope for a user. explicitNewsroom
// carries an optional ?newsroom_id= query filter, honored only for the roles
// that may see every newsroom.
func (s *VisibilityService) ScopeTasks(user *models.User, explicitNewsroom *uint) (*TaskScope, error) {
	switch user.Role {
	case models.RoleAdmin, models.RoleProducer, models.RoleChiefCamera, models.RoleCameramanEdit:
		return &TaskScope{NewsroomID: explicitNewsroom}, nil

	case models.RoleViewer:
		// a viewer with no newsroom sees everything
		return &TaskScope{NewsroomID: user.NewsroomID}, nil

	case models.RoleJournalist:
		person, err := s.ResolvePerson(user)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &TaskScope{Empty: true}, nil
			}
			return nil, err
		}
		return &TaskScope{PersonID: person.ID}, nil

	case models.RoleCamera:
		person, err := s.ResolvePerson(user)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &TaskScope{Empty: true}, nil
			}
			return nil, err
		}
		return &TaskScope{PersonID: person.ID, Cameraman: true}, nil

	default:
		// ordinary newsroom roles are confined to their own newsroom
		if user.NewsroomID == nil {
			return nil, fmt.Errorf("user %s has no newsroom assigned: %w", user.Username, ErrForbidden)
		}
		return &TaskScope{NewsroomID: user.NewsroomID}, nil
	}
}
