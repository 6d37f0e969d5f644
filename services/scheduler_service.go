package services

import (
	"newsdesk-http-service/config"

	"github.com/robfig/cron/v3"
)

// InterfaceSchedulerService defines background job control
type InterfaceSchedulerService interface {
	Start() error
	Stop()
}

// SchedulerService runs the nightly maintenance jobs: notification purge,
// daily backup and weekly backup.
type SchedulerService struct {
	Config        *config.Config
	Notifications InterfaceNotificationService
	Backups       InterfaceBackupService

	cron *cron.Cron
}

// NewSchedulerService creates a new scheduler service
func NewSchedulerService(cfg *config.Config, notifications InterfaceNotificationService, backups InterfaceBackupService) *SchedulerService {
	return &SchedulerService{
		Config:        cfg,
		Notifications: notifications,
		Backups:       backups,
		cron:          cron.New(),
	}
}

// Start registers the maintenance jobs and starts the cron loop
func (s *SchedulerService) Start() error {
	// notifications from previous days are purged every night
	if _, err := s.cron.AddFunc("30 1 * * *", s.purgeNotifications); err != nil {
		return err
	}
	if _, err := s.cron.AddFunc("0 2 * * *", func() { s.runBackup("daily") }); err != nil {
		return err
	}
	if _, err := s.cron.AddFunc("0 3 * * 0", func() { s.runBackup("weekly") }); err != nil {
		return err
	}

	s.cron.Start()
	config.Info("Scheduler started: notification purge 01:30, daily backup 02:00, weekly backup Sun 03:00")
	return nil
}

// Stop halts the cron loop; running jobs finish
func (s *SchedulerService) Stop() {
	if s.cron != nil {
		s.cron.Stop()
	}
}

func (s *SchedulerService) purgeNotifications() {
	count, err := s.Notifications.PurgeOld()
	if err != nil {
		config.Error("Notification purge failed: %v", err)
		return
	}
	config.Info("Notification purge removed %d rows", count)
}

func (s *SchedulerService) runBackup(label string) {
	info, err := s.Backups.CreateBackup(label)
	if err != nil {
		config.Error("Scheduled %s backup failed: %v", label, err)
		return
	}
	config.Info("Scheduled %s backup written: %s", label, info.Filename)

	removed, err := s.Backups.PruneOldBackups()
	if err != nil {
		config.Warning("Backup retention sweep failed: %v", err)
		return
	}
	if removed > 0 {
		config.Info("Backup retention removed %d old archives", removed)
	}
}
