package services

import (
	"fmt"
	"time"

	"newsdesk-http-service/config"
	"newsdesk-http-service/models"
	"newsdesk-http-service/utils"

	"gorm.io/gorm"
)

// InterfaceNotificationService defines notification fan-out and inbox operations
type InterfaceNotificationService interface {
	NotifyTaskCreated(task *models.Task, actor *models.User)
	NotifyExchangeFlag(task *models.Task, actor *models.User)
	NotifyTravelFlag(task *models.Task, actor *models.User)
	NotifyCameramenAssigned(task *models.Task, addedIDs models.UintArray, actor *models.User)
	NotifyStatusChanged(task *models.Task, actor *models.User)
	NotifyTaskDone(task *models.Task, actor *models.User)
	List(userID uint, onlyUnread bool) ([]models.Notification, error)
	UnreadCount(userID uint) (int64, error)
	MarkRead(userID, notificationID uint) error
	MarkAllRead(userID uint) error
	Delete(userID, notificationID uint) error
	PurgeOld() (int64, error)
}

// NotificationService resolves the recipient set for every qualifying task
// event and inserts one inbox row per recipient. Role sets are looked up
// fresh per event. Every insert path is best effort: a failure is logged and
// never propagated to the mutation that triggered it.
type NotificationService struct {
	DB     *gorm.DB
	Config *config.Config
	Push   InterfacePushService
}

// NewNotificationService creates a new notification service
func NewNotificationService(db *gorm.DB, cfg *config.Config, push InterfacePushService) *NotificationService {
	return &NotificationService{
		DB:     db,
		Config: cfg,
		Push:   push,
	}
}

// NotifyTaskCreated notifies the camera desk about a new task; exchange
// tasks additionally go to every producer.
func (s *NotificationService) NotifyTaskCreated(task *models.Task, actor *models.User) {
	title := "Novi zadatak"
	message := fmt.Sprintf("Novi zadatak: %s (%s)", task.Title, task.Date)

	recipients := s.usersByRole(models.RoleChiefCamera, models.RoleCameramanEdit)
	if task.Flags.Contains(models.FlagExchange) {
		recipients = append(recipients, s.usersByRole(models.RoleProducer)...)
	}

	for _, u := range recipients {
		s.notifyTaskScoped(u.ID, title, message, models.NotificationTaskCreated, task.ID)
	}
}

// NotifyExchangeFlag notifies every producer that a task now needs exchange
func (s *NotificationService) NotifyExchangeFlag(task *models.Task, actor *models.User) {
	message := fmt.Sprintf("Zadatak označen za razmjenu: %s (%s)", task.Title, task.Date)
	for _, u := range s.usersByRole(models.RoleProducer) {
		s.notifyTaskScoped(u.ID, "Razmjena", message, models.NotificationExchange, task.ID)
	}
}

// NotifyTravelFlag notifies the camera desk about a travel order
func (s *NotificationService) NotifyTravelFlag(task *models.Task, actor *models.User) {
	message := fmt.Sprintf("Službeni put: %s (%s)", task.Title, task.Date)
	for _, u := range s.usersByRole(models.RoleChiefCamera, models.RoleCameramanEdit) {
		s.notifyTaskScoped(u.ID, "Službeni put", message, models.NotificationTravel, task.ID)
	}
}

// NotifyCameramenAssigned fans out a cameraman assignment: producers always,
// the camera desk for urgent tasks, the assigned cameramen's own accounts,
// the task creator when they are an editor, and the newsroom desk editor.
func (s *NotificationService) NotifyCameramenAssigned(task *models.Task, addedIDs models.UintArray, actor *models.User) {
	title := "Snimatelj dodijeljen"
	message := fmt.Sprintf("Snimatelj dodijeljen na zadatak: %s (%s)", task.Title, task.Date)

	for _, u := range s.usersByRole(models.RoleProducer) {
		s.notifyTaskScoped(u.ID, title, message, models.NotificationCameramanSet, task.ID)
	}

	if task.Flags.Contains(models.FlagUrgent) {
		for _, u := range s.usersByRole(models.RoleChiefCamera, models.RoleCameramanEdit) {
			s.notifyTaskScoped(u.ID, title, message, models.NotificationCameramanSet, task.ID)
		}
	}

	// direct notification to each newly assigned cameraman's account
	for _, personID := range addedIDs {
		var person models.Person
		if err := s.DB.First(&person, personID).Error; err != nil {
			continue
		}
		if u := s.resolveCameramanUser(&person); u != nil {
			s.notifyTaskScoped(u.ID, "Novi zadatak za vas",
				fmt.Sprintf("Dodijeljeni ste na zadatak: %s (%s)", task.Title, task.Date),
				models.NotificationCameramanSet, task.ID)
		}
	}

	var creator *models.User
	if task.CreatedBy != nil {
		var u models.User
		if err := s.DB.First(&u, *task.CreatedBy).Error; err == nil {
			creator = &u
			if u.Role == models.RoleEditor || u.Role == models.RoleDeskEditor {
				s.notifyTaskScoped(u.ID, title, message, models.NotificationCameramanSet, task.ID)
			}
		}
	}

	for _, u := range s.usersByRoleInNewsroom(task.NewsroomID, models.RoleDeskEditor) {
		if creator != nil && creator.ID == u.ID {
			continue
		}
		s.notifyTaskScoped(u.ID, title, message, models.NotificationCameramanSet, task.ID)
	}
}

// NotifyStatusChanged handles the SNIMLJENO/OTKAZANO transitions. Several
// routes can fire the same transition in quick succession, so duplicates are
// suppressed per recipient on message content within a one-minute window
// rather than per task id.
func (s *NotificationService) NotifyStatusChanged(task *models.Task, actor *models.User) {
	message := fmt.Sprintf("Zadatak %q je sada %s", task.Title, task.Status)

	recipients := s.usersByRoleInNewsroom(task.NewsroomID, models.RoleEditor, models.RoleDeskEditor)
	recipients = append(recipients, s.usersByRole(models.RoleChiefCamera, models.RoleCameramanEdit)...)
	if task.CreatedBy != nil {
		var creator models.User
		if err := s.DB.First(&creator, *task.CreatedBy).Error; err == nil {
			recipients = append(recipients, creator)
		}
	}

	seen := make(map[uint]bool)
	for _, u := range recipients {
		if seen[u.ID] {
			continue
		}
		seen[u.ID] = true
		if actor != nil && u.ID == actor.ID {
			continue
		}
		s.notifyWindowed(u.ID, "Status zadatka", message, models.NotificationStatusChanged, task.ID)
	}
}

// NotifyTaskDone announces a completed travel order
func (s *NotificationService) NotifyTaskDone(task *models.Task, actor *models.User) {
	message := fmt.Sprintf("Zadatak potvrđen: %s (%s)", task.Title, task.Date)

	recipients := s.usersByRoleInNewsroom(task.NewsroomID, models.RoleEditor, models.RoleDeskEditor)
	recipients = append(recipients, s.usersByRole(models.RoleChiefCamera, models.RoleCameramanEdit)...)

	seen := make(map[uint]bool)
	for _, u := range recipients {
		if seen[u.ID] {
			continue
		}
		seen[u.ID] = true
		s.notifyTaskScoped(u.ID, "Zadatak potvrđen", message, models.NotificationTaskDone, task.ID)
	}
}

// List returns the user's notifications, newest first
func (s *NotificationService) List(userID uint, onlyUnread bool) ([]models.Notification, error) {
	q := s.DB.Where("user_id = ?", userID)
	if onlyUnread {
		q = q.Where("is_read = ?", false)
	}
	var notifications []models.Notification
	err := q.Order("id DESC").Find(&notifications).Error
	return notifications, err
}

// UnreadCount returns the user's unread notification count
func (s *NotificationService) UnreadCount(userID uint) (int64, error) {
	var count int64
	err := s.DB.Model(&models.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).Count(&count).Error
	return count, err
}

// MarkRead marks one of the user's notifications as read
func (s *NotificationService) MarkRead(userID, notificationID uint) error {
	result := s.DB.Model(&models.Notification{}).
		Where("id = ? AND user_id = ?", notificationID, userID).
		Update("is_read", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// MarkAllRead marks all of the user's notifications as read
func (s *NotificationService) MarkAllRead(userID uint) error {
	return s.DB.Model(&models.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Update("is_read", true).Error
}

// Delete removes one of the user's notifications
func (s *NotificationService) Delete(userID, notificationID uint) error {
	result := s.DB.Where("id = ? AND user_id = ?", notificationID, userID).
		Delete(&models.Notification{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// PurgeOld deletes notifications created before the current day. Runs from
// the nightly cron job.
func (s *NotificationService) PurgeOld() (int64, error) {
	now := time.Now()
	startOfToday := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	result := s.DB.Where("created_at < ?", startOfToday).Delete(&models.Notification{})
	return result.RowsAffected, result.Error
}

// usersByRole returns all active users holding any of the given roles
func (s *NotificationService) usersByRole(roles ...string) []models.User {
	var users []models.User
	if err := s.DB.Where("role IN ? AND is_active = ?", roles, true).Find(&users).Error; err != nil {
		config.Warning("recipient lookup by role failed: %v", err)
	}
	return users
}

// usersByRoleInNewsroom returns active users of the given roles within one newsroom
func (s *NotificationService) usersByRoleInNewsroom(newsroomID uint, roles ...string) []models.User {
	var users []models.User
	if err := s.DB.Where("role IN ? AND newsroom_id = ? AND is_active = ?", roles, newsroomID, true).
		Find(&users).Error; err != nil {
		config.Warning("recipient lookup by newsroom failed: %v", err)
	}
	return users
}

// resolveCameramanUser finds the login account of a roster person, trying the
// email local part as username, then the exact display name, then the
// slugified name as username.
func (s *NotificationService) resolveCameramanUser(person *models.Person) *models.User {
	var user models.User

	if local := utils.EmailLocalPart(person.Email); local != "" {
		if err := s.DB.Where("username = ?", local).First(&user).Error; err == nil {
			return &user
		}
	}

	if person.Name != "" {
		if err := s.DB.Where("name = ?", person.Name).First(&user).Error; err == nil {
			return &user
		}
		if slug := utils.Slugify(person.Name); slug != "" {
			if err := s.DB.Where("username = ?", slug).First(&user).Error; err == nil {
				return &user
			}
		}
	}

	return nil
}

// notifyTaskScoped inserts a notification unless the same (user, task, type)
// row already exists.
func (s *NotificationService) notifyTaskScoped(userID uint, title, message, ntype string, taskID uint) {
	var count int64
	err := s.DB.Model(&models.Notification{}).
		Where("user_id = ? AND task_id = ? AND type = ?", userID, taskID, ntype).
		Count(&count).Error
	if err != nil {
		config.Warning("notification duplicate check failed: %v", err)
		return
	}
	if count > 0 {
		return
	}
	s.insert(userID, title, message, ntype, &taskID)
}

// notifyWindowed inserts a notification unless the same user received the
// same message within the last minute.
func (s *NotificationService) notifyWindowed(userID uint, title, message, ntype string, taskID uint) {
	var count int64
	since := time.Now().Add(-time.Minute)
	err := s.DB.Model(&models.Notification{}).
		Where("user_id = ? AND message = ? AND created_at > ?", userID, message, since).
		Count(&count).Error
	if err != nil {
		config.Warning("notification duplicate check failed: %v", err)
		return
	}
	if count > 0 {
		return
	}
	s.insert(userID, title, message, ntype, &taskID)
}

func (s *NotificationService) insert(userID uint, title, message, ntype string, taskID *uint) {
	n := models.Notification{
		UserID:  userID,
		Title:   title,
		Message: message,
		Type:    ntype,
		TaskID:  taskID,
	}
	if err := s.DB.Create(&n).Error; err != nil {
		config.Warning("notification insert failed for user %d: %v", userID, err)
		return
	}
	if s.Push != nil {
		s.Push.SendToUser(userID, title, message)
	}
}
