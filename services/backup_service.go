package services

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"newsdesk-http-service/config"

	"github.com/google/uuid"
)

// InterfaceBackupService defines database backup operations
type InterfaceBackupService interface {
	CreateBackup(label string) (*BackupInfo, error)
	ListBackups() ([]BackupInfo, error)
	RestoreBackup(filename string) error
	PruneOldBackups() (int, error)
}

// BackupInfo describes one backup archive on disk
type BackupInfo struct {
	Filename  string    `json:"filename"`
	SizeBytes int64     `json:"size_bytes"`
	CreatedAt time.Time `json:"created_at"`
}

// BackupService copies the SQLite database file into the backup directory.
// A plain file copy is safe here because SQLite runs in rollback-journal
// mode and writes go through a single process.
type BackupService struct {
	Config *config.Config
}

// NewBackupService creates a new backup service
func NewBackupService(cfg *config.Config) *BackupService {
	return &BackupService{
		Config: cfg,
	}
}

// CreateBackup copies the database file into the backup directory. The label
// distinguishes scheduled backups ("daily", "weekly") from manual ones.
func (s *BackupService) CreateBackup(label string) (*BackupInfo, error) {
	if label == "" {
		label = "manual"
	}
	if err := os.MkdirAll(s.Config.BackupDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create backup directory: %w", err)
	}

	src, err := os.Open(s.Config.DBPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database file: %w", err)
	}
	defer src.Close()

	filename := fmt.Sprintf("%s_%s_%s.db",
		time.Now().Format("2006-01-02_150405"), label, uuid.New().String()[:8])
	dstPath := filepath.Join(s.Config.BackupDir, filename)

	dst, err := os.Create(dstPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create backup file: %w", err)
	}
	defer dst.Close()

	size, err := io.Copy(dst, src)
	if err != nil {
		os.Remove(dstPath)
		return nil, fmt.Errorf("failed to copy database: %w", err)
	}

	config.Info("Backup created: %s (%d bytes)", filename, size)
	return &BackupInfo{
		Filename:  filename,
		SizeBytes: size,
		CreatedAt: time.Now(),
	}, nil
}

// ListBackups returns backup archives, newest first
func (s *BackupService) ListBackups() ([]BackupInfo, error) {
	entries, err := os.ReadDir(s.Config.BackupDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []BackupInfo{}, nil
		}
		return nil, err
	}

	backups := make([]BackupInfo, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".db") {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		backups = append(backups, BackupInfo{
			Filename:  entry.Name(),
			SizeBytes: info.Size(),
			CreatedAt: info.ModTime(),
		})
	}

	sort.Slice(backups, func(i, j int) bool {
		return backups[i].CreatedAt.After(backups[j].CreatedAt)
	})
	return backups, nil
}

// RestoreBackup replaces the live database file with a backup archive.
// The caller must ensure no requests are mid-flight; in practice this is
// invoked by an admin during a maintenance window.
func (s *BackupService) RestoreBackup(filename string) error {
	// reject path traversal in the user-supplied filename
	if filepath.Base(filename) != filename || filename == "." || filename == ".." {
		return fmt.Errorf("invalid backup filename: %w", ErrValidation)
	}
	srcPath := filepath.Join(s.Config.BackupDir, filename)

	src, err := os.Open(srcPath)
	if err != nil {
		if os.IsNotExist(err) {
			return ErrNotFound
		}
		return err
	}
	defer src.Close()

	dst, err := os.Create(s.Config.DBPath)
	if err != nil {
		return fmt.Errorf("failed to open database file for restore: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return fmt.Errorf("failed to restore database: %w", err)
	}

	config.Warning("Database restored from backup %s", filename)
	return nil
}

// PruneOldBackups deletes archives older than the retention window and
// returns how many were removed.
func (s *BackupService) PruneOldBackups() (int, error) {
	backups, err := s.ListBackups()
	if err != nil {
		return 0, err
	}

	cutoff := time.Now().AddDate(0, 0, -s.Config.BackupRetention)
	removed := 0
	for _, backup := range backups {
		if backup.CreatedAt.After(cutoff) {
			continue
		}
		if err := os.Remove(filepath.Join(s.Config.BackupDir, backup.Filename)); err != nil {
			config.Warning("Failed to remove old backup %s: %v", backup.Filename, err)
			continue
		}
		removed++
	}
	return removed, nil
}
