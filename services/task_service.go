package services

import (
	"errors"
	"fmt"
	"time"

	"newsdesk-http-service/config"
	"newsdesk-http-service/models"

	"gorm.io/gorm"
)

// InterfaceTaskService defines the task CRUD and lifecycle operations
type InterfaceTaskService interface {
	ListTasks(user *models.User, query *TaskListQuery) ([]models.Task, int64, error)
	GetTask(user *models.User, id uint) (*models.Task, error)
	CreateTask(user *models.User, req *CreateTaskRequest, ip string) (*models.Task, error)
	UpdateTask(user *models.User, id uint, req *UpdateTaskRequest, ip string) (*models.Task, error)
	DeleteTask(user *models.User, id uint, ip string) error
	MarkTaskDone(user *models.User, id uint, ip string) (*models.Task, error)
	TasksForDate(user *models.User, date string, newsroomID *uint) ([]models.Task, error)
	UpcomingTasks(user *models.User, days int) ([]models.Task, error)
}

// TaskListQuery filters the task listing
type TaskListQuery struct {
	Date       string `form:"date"`
	DateFrom   string `form:"date_from"`
	DateTo     string `form:"date_to"`
	Status     string `form:"status"`
	Search     string `form:"search"`
	NewsroomID *uint  `form:"newsroom_id"`
	Page       int    `form:"page"`
	PageSize   int    `form:"page_size"`
}

// CreateTaskRequest carries the fields accepted on task creation
type CreateTaskRequest struct {
	Date           string             `json:"date" binding:"required"`
	TimeStart      string             `json:"time_start"`
	TimeEnd        string             `json:"time_end"`
	Title          string             `json:"title" binding:"required"`
	Slugline       string             `json:"slugline"`
	Location       string             `json:"location"`
	Description    string             `json:"description"`
	NewsroomID     uint               `json:"newsroom_id"`
	CoverageType   string             `json:"coverage_type"`
	AttachmentType string             `json:"attachment_type"`
	Status         string             `json:"status"`
	Flags          models.StringArray `json:"flags"`
	JournalistIDs  models.UintArray   `json:"journalist_ids"`
	CameramanIDs   models.UintArray   `json:"cameraman_ids"`
	VehicleID      *uint              `json:"vehicle_id"`
	EquipmentID    *uint              `json:"equipment_id"`
}

// UpdateTaskRequest carries optional fields; only present fields are applied
// (PATCH semantics inside PUT, as the frontend has always sent it).
type UpdateTaskRequest struct {
	Date           *string             `json:"date"`
	TimeStart      *string             `json:"time_start"`
	TimeEnd        *string             `json:"time_end"`
	Title          *string             `json:"title"`
	Slugline       *string             `json:"slugline"`
	Location       *string             `json:"location"`
	Description    *string             `json:"description"`
	CoverageType   *string             `json:"coverage_type"`
	AttachmentType *string             `json:"attachment_type"`
	Status         *string             `json:"status"`
	Flags          *models.StringArray `json:"flags"`
	JournalistIDs  *models.UintArray   `json:"journalist_ids"`
	CameramanIDs   *models.UintArray   `json:"cameraman_ids"`
	VehicleID      *uint               `json:"vehicle_id"`
	EquipmentID    *uint               `json:"equipment_id"`
}

// TaskService implements task CRUD with the role permission matrix and the
// notification side effects of lifecycle changes.
type TaskService struct {
	DB            *gorm.DB
	Config        *config.Config
	Visibility    InterfaceVisibilityService
	Notifications InterfaceNotificationService
	Audit         InterfaceAuditService
	MQTT          InterfaceMQTTService
}

// NewTaskService creates a new task service
func NewTaskService(db *gorm.DB, cfg *config.Config, visibility InterfaceVisibilityService,
	notifications InterfaceNotificationService, audit InterfaceAuditService, mqtt InterfaceMQTTService) *TaskService {
	return &TaskService{
		DB:            db,
		Config:        cfg,
		Visibility:    visibility,
		Notifications: notifications,
		Audit:         audit,
		MQTT:          mqtt,
	}
}

// ListTasks returns the tasks visible to the user, filtered and paginated
func (s *TaskService) ListTasks(user *models.User, query *TaskListQuery) ([]models.Task, int64, error) {
	scope, err := s.Visibility.ScopeTasks(user, query.NewsroomID)
	if err != nil {
		return nil, 0, err
	}

	page := query.Page
	pageSize := query.PageSize
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 200 {
		pageSize = 50
	}

	q := scope.Apply(s.DB.Model(&models.Task{}))
	if query.Date != "" {
		q = q.Where("date = ?", query.Date)
	}
	if query.DateFrom != "" {
		q = q.Where("date >= ?", query.DateFrom)
	}
	if query.DateTo != "" {
		q = q.Where("date <= ?", query.DateTo)
	}
	if query.Status != "" {
		q = q.Where("status = ?", query.Status)
	}
	if query.Search != "" {
		like := "%" + query.Search + "%"
		q = q.Where("title LIKE ? OR slugline LIKE ? OR location LIKE ?", like, like, like)
	}
	q = q.Order("date DESC, time_start ASC")

	// Person-scoped roles need the exact membership check after loading, so
	// pagination happens in memory for them.
	if scope.PersonID != 0 {
		var all []models.Task
		if err := q.Find(&all).Error; err != nil {
			return nil, 0, err
		}
		filtered := scope.Filter(all)
		total := int64(len(filtered))
		start := (page - 1) * pageSize
		if start > len(filtered) {
			start = len(filtered)
		}
		end := start + pageSize
		if end > len(filtered) {
			end = len(filtered)
		}
		return filtered[start:end], total, nil
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var tasks []models.Task
	if err := q.Limit(pageSize).Offset((page - 1) * pageSize).Find(&tasks).Error; err != nil {
		return nil, 0, err
	}
	return tasks, total, nil
}

// GetTask returns one task if the user may see it
func (s *TaskService) GetTask(user *models.User, id uint) (*models.Task, error) {
	var task models.Task
	if err := s.DB.Preload("Newsroom").Preload("Vehicle").First(&task, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if err := s.checkReadAccess(user, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

// CreateTask creates a task, enforcing the creation permission matrix
func (s *TaskService) CreateTask(user *models.User, req *CreateTaskRequest, ip string) (*models.Task, error) {
	switch user.Role {
	case models.RoleViewer, models.RoleCamera, models.RoleControlRoom:
		return nil, fmt.Errorf("role %s may not create tasks: %w", user.Role, ErrForbidden)
	}

	if req.Date == "" || req.Title == "" {
		return nil, fmt.Errorf("date and title are required: %w", ErrValidation)
	}

	if !user.IsAdminOrProducer() {
		if user.NewsroomID == nil {
			return nil, fmt.Errorf("user has no newsroom assigned: %w", ErrForbidden)
		}
		if req.NewsroomID == 0 {
			req.NewsroomID = *user.NewsroomID
		} else if req.NewsroomID != *user.NewsroomID {
			return nil, fmt.Errorf("tasks may only be created for your own newsroom: %w", ErrForbidden)
		}
	}
	if req.NewsroomID == 0 {
		return nil, fmt.Errorf("newsroom_id is required: %w", ErrValidation)
	}

	task := models.Task{
		Date:          req.Date,
		TimeStart:     req.TimeStart,
		TimeEnd:       req.TimeEnd,
		Title:         req.Title,
		Slugline:      req.Slugline,
		Location:      req.Location,
		Description:   req.Description,
		NewsroomID:    req.NewsroomID,
		CoverageType:  req.CoverageType,
		Status:        req.Status,
		Flags:         req.Flags,
		JournalistIDs: req.JournalistIDs,
		CameramanIDs:  req.CameramanIDs,
		VehicleID:     req.VehicleID,
		EquipmentID:   req.EquipmentID,
		CreatedBy:     &user.ID,
	}
	if task.Status == "" {
		task.Status = models.StatusPlanned
	}
	task.AttachmentType = s.validateAttachmentType(req.AttachmentType)
	if len(task.CameramanIDs) > 0 {
		task.CameramanAssignedBy = &user.ID
	}

	if err := s.DB.Create(&task).Error; err != nil {
		return nil, err
	}

	s.Audit.Log("CREATE", "tasks", task.ID, nil, task,
		fmt.Sprintf("Task %q created", task.Title), user, ip)
	s.Notifications.NotifyTaskCreated(&task, user)
	s.MQTT.PublishTaskEvent("task_created", &task)

	return &task, nil
}

// UpdateTask applies a partial update, enforcing the role matrix and firing
// the notification side effects of the changes it produced.
func (s *TaskService) UpdateTask(user *models.User, id uint, req *UpdateTaskRequest, ip string) (*models.Task, error) {
	var task models.Task
	if err := s.DB.First(&task, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	before := task

	if user.Role == models.RoleViewer {
		return nil, fmt.Errorf("viewers may not edit tasks: %w", ErrForbidden)
	}

	// CAMERA may flip the status on its own tasks, nothing else
	if user.Role == models.RoleCamera {
		person, err := s.Visibility.ResolvePerson(user)
		if err != nil || person == nil || !task.CameramanIDs.Contains(person.ID) {
			return nil, fmt.Errorf("task is not assigned to this cameraman: %w", ErrForbidden)
		}
		if req.Status == nil {
			return nil, fmt.Errorf("camera role may only update the task status: %w", ErrForbidden)
		}
		task.Status = *req.Status
		if err := s.DB.Save(&task).Error; err != nil {
			return nil, err
		}
		s.afterStatusChange(&task, before.Status, user)
		s.Audit.Log("UPDATE", "tasks", task.ID, before, task,
			fmt.Sprintf("Task %q status set to %s", task.Title, task.Status), user, ip)
		return &task, nil
	}

	if !user.IsPrivileged() {
		if user.NewsroomID == nil || task.NewsroomID != *user.NewsroomID {
			return nil, fmt.Errorf("task belongs to another newsroom: %w", ErrForbidden)
		}
	}

	// Once someone else has assigned cameramen, a cameraman editor may add
	// to the list but never remove or replace what is already there.
	if user.Role == models.RoleCameramanEdit && req.CameramanIDs != nil &&
		task.CameramanAssignedBy != nil && *task.CameramanAssignedBy != user.ID {
		if missing := task.CameramanIDs.Diff(*req.CameramanIDs); len(missing) > 0 {
			return nil, fmt.Errorf("previously assigned cameramen may not be removed: %w", ErrForbidden)
		}
	}

	applyTaskUpdate(&task, req)
	if req.AttachmentType != nil {
		task.AttachmentType = s.validateAttachmentType(*req.AttachmentType)
	}

	var addedCameramen models.UintArray
	if req.CameramanIDs != nil {
		addedCameramen = req.CameramanIDs.Diff(before.CameramanIDs)
		if len(addedCameramen) > 0 && task.CameramanAssignedBy == nil {
			task.CameramanAssignedBy = &user.ID
		}
	}

	if err := s.DB.Save(&task).Error; err != nil {
		return nil, err
	}

	// independent side-effect conditionals; any combination can fire
	if req.Flags != nil {
		if task.Flags.Contains(models.FlagExchange) && !before.Flags.Contains(models.FlagExchange) {
			s.Notifications.NotifyExchangeFlag(&task, user)
		}
		if task.Flags.Contains(models.FlagTravel) && !before.Flags.Contains(models.FlagTravel) {
			s.Notifications.NotifyTravelFlag(&task, user)
		}
	}
	if len(addedCameramen) > 0 {
		s.Notifications.NotifyCameramenAssigned(&task, addedCameramen, user)
	}
	s.afterStatusChange(&task, before.Status, user)

	s.Audit.Log("UPDATE", "tasks", task.ID, before, task,
		fmt.Sprintf("Task %q updated", task.Title), user, ip)
	s.MQTT.PublishTaskEvent("task_updated", &task)

	return &task, nil
}

// DeleteTask removes a task, enforcing the deletion permission matrix and
// cascading its notifications by hand (there is no FK cascade in the schema).
func (s *TaskService) DeleteTask(user *models.User, id uint, ip string) error {
	var task models.Task
	if err := s.DB.First(&task, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	switch user.Role {
	case models.RoleAdmin, models.RoleProducer, models.RoleEditor, models.RoleDeskEditor, models.RoleCameramanEdit:
	default:
		return fmt.Errorf("role %s may not delete tasks: %w", user.Role, ErrForbidden)
	}

	if !user.IsAdminOrProducer() {
		if user.NewsroomID == nil || task.NewsroomID != *user.NewsroomID {
			return fmt.Errorf("task belongs to another newsroom: %w", ErrForbidden)
		}
		if task.CreatedBy == nil {
			return fmt.Errorf("tasks without a creator may only be deleted by admins or producers: %w", ErrForbidden)
		}
		if user.Role == models.RoleDeskEditor || user.Role == models.RoleCameramanEdit {
			if *task.CreatedBy != user.ID {
				return fmt.Errorf("only tasks you created may be deleted: %w", ErrForbidden)
			}
		}
	}

	if err := s.DB.Where("task_id = ?", task.ID).Delete(&models.Notification{}).Error; err != nil {
		config.Warning("failed to cascade notifications for task %d: %v", task.ID, err)
	}

	// Related schedule and preset rows are deliberately left in place; the
	// schema has no FK to them, so only note their existence.
	var relatedAudits int64
	s.DB.Model(&models.AuditLog{}).Where("table_name = ? AND record_id = ?", "tasks", task.ID).Count(&relatedAudits)
	if relatedAudits > 0 {
		config.Info("task %d deleted with %d related audit rows retained", task.ID, relatedAudits)
	}

	if err := s.DB.Delete(&models.Task{}, task.ID).Error; err != nil {
		return err
	}

	s.Audit.Log("DELETE", "tasks", task.ID, task, nil,
		fmt.Sprintf("Task %q deleted", task.Title), user, ip)
	s.MQTT.PublishTaskEvent("task_deleted", &task)
	return nil
}

// MarkTaskDone confirms a completed travel order. It appends the POTVRĐENO
// flag without touching the status, and only admins and producers may do it.
func (s *TaskService) MarkTaskDone(user *models.User, id uint, ip string) (*models.Task, error) {
	if !user.IsAdminOrProducer() {
		return nil, fmt.Errorf("only admins and producers may confirm tasks: %w", ErrForbidden)
	}

	var task models.Task
	if err := s.DB.First(&task, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	before := task

	if !task.Flags.Contains(models.FlagConfirmed) {
		task.Flags = append(task.Flags, models.FlagConfirmed)
	}
	task.ConfirmedByName = user.Name

	if err := s.DB.Save(&task).Error; err != nil {
		return nil, err
	}

	s.Notifications.NotifyTaskDone(&task, user)
	s.Audit.Log("UPDATE", "tasks", task.ID, before, task,
		fmt.Sprintf("Task %q confirmed", task.Title), user, ip)
	s.MQTT.PublishTaskEvent("task_confirmed", &task)

	return &task, nil
}

// TasksForDate returns the visible tasks of one day, ordered by start time
func (s *TaskService) TasksForDate(user *models.User, date string, newsroomID *uint) ([]models.Task, error) {
	scope, err := s.Visibility.ScopeTasks(user, newsroomID)
	if err != nil {
		return nil, err
	}

	var tasks []models.Task
	q := scope.Apply(s.DB.Model(&models.Task{})).Where("date = ?", date).Order("time_start ASC")
	if err := q.Find(&tasks).Error; err != nil {
		return nil, err
	}
	return scope.Filter(tasks), nil
}

// UpcomingTasks returns visible tasks from tomorrow onward, limited to days
func (s *TaskService) UpcomingTasks(user *models.User, days int) ([]models.Task, error) {
	if days < 1 {
		days = 7
	}
	scope, err := s.Visibility.ScopeTasks(user, nil)
	if err != nil {
		return nil, err
	}

	from := time.Now().AddDate(0, 0, 1).Format("2006-01-02")
	to := time.Now().AddDate(0, 0, days).Format("2006-01-02")

	var tasks []models.Task
	q := scope.Apply(s.DB.Model(&models.Task{})).
		Where("date >= ? AND date <= ?", from, to).
		Order("date ASC, time_start ASC")
	if err := q.Find(&tasks).Error; err != nil {
		return nil, err
	}
	return scope.Filter(tasks), nil
}

// checkReadAccess enforces per-task detail visibility
func (s *TaskService) checkReadAccess(user *models.User, task *models.Task) error {
	if user.IsPrivileged() {
		return nil
	}

	switch user.Role {
	case models.RoleViewer:
		if user.NewsroomID != nil && task.NewsroomID != *user.NewsroomID {
			return fmt.Errorf("task belongs to another newsroom: %w", ErrForbidden)
		}
		return nil
	case models.RoleJournalist:
		person, err := s.Visibility.ResolvePerson(user)
		if err != nil || person == nil || !task.JournalistIDs.Contains(person.ID) {
			return fmt.Errorf("task is not assigned to this journalist: %w", ErrForbidden)
		}
		return nil
	case models.RoleCamera:
		person, err := s.Visibility.ResolvePerson(user)
		if err != nil || person == nil || !task.CameramanIDs.Contains(person.ID) {
			return fmt.Errorf("task is not assigned to this cameraman: %w", ErrForbidden)
		}
		return nil
	default:
		if user.NewsroomID == nil {
			return fmt.Errorf("user has no newsroom assigned: %w", ErrForbidden)
		}
		if task.NewsroomID != *user.NewsroomID {
			return fmt.Errorf("task belongs to another newsroom: %w", ErrForbidden)
		}
		return nil
	}
}

// afterStatusChange fires the SNIMLJENO/OTKAZANO notification fan-out when
// the saved status differs from the previous one.
func (s *TaskService) afterStatusChange(task *models.Task, oldStatus string, actor *models.User) {
	if task.Status == oldStatus {
		return
	}
	if task.Status == models.StatusRecorded || task.Status == models.StatusCancelled {
		s.Notifications.NotifyStatusChanged(task, actor)
	}
	s.MQTT.PublishTaskEvent("task_status", task)
}

// validateAttachmentType checks the closed enum; invalid values are dropped
// to null with a logged warning rather than rejected, matching what the
// frontend has always relied on.
func (s *TaskService) validateAttachmentType(value string) *string {
	if value == "" {
		return nil
	}
	canonical, ok := models.IsValidAttachmentType(value)
	if !ok {
		config.Warning("invalid attachment_type %q dropped", value)
		return nil
	}
	return &canonical
}

// applyTaskUpdate copies the provided fields onto the task
func applyTaskUpdate(task *models.Task, req *UpdateTaskRequest) {
	if req.Date != nil {
		task.Date = *req.Date
	}
	if req.TimeStart != nil {
		task.TimeStart = *req.TimeStart
	}
	if req.TimeEnd != nil {
		task.TimeEnd = *req.TimeEnd
	}
	if req.Title != nil {
		task.Title = *req.Title
	}
	if req.Slugline != nil {
		task.Slugline = *req.Slugline
	}
	if req.Location != nil {
		task.Location = *req.Location
	}
	if req.Description != nil {
		task.Description = *req.Description
	}
	if req.CoverageType != nil {
		task.CoverageType = *req.CoverageType
	}
	if req.Status != nil {
		task.Status = *req.Status
	}
	if req.Flags != nil {
		task.Flags = *req.Flags
	}
	if req.JournalistIDs != nil {
		task.JournalistIDs = *req.JournalistIDs
	}
	if req.CameramanIDs != nil {
		task.CameramanIDs = *req.CameramanIDs
	}
	if req.VehicleID != nil {
		task.VehicleID = req.VehicleID
	}
	if req.EquipmentID != nil {
		task.EquipmentID = req.EquipmentID
	}
}
