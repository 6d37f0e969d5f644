package services

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"newsdesk-http-service/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBackupService(t *testing.T) (*BackupService, *config.Config) {
	t.Helper()
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "newsdesk.db")
	require.NoError(t, os.WriteFile(dbPath, []byte("baza podataka"), 0o644))

	cfg := testConfig()
	cfg.DBPath = dbPath
	cfg.BackupDir = filepath.Join(dir, "backups")
	return NewBackupService(cfg), cfg
}

func TestCreateAndListBackups(t *testing.T) {
	svc, cfg := newBackupService(t)

	info, err := svc.CreateBackup("daily")
	require.NoError(t, err)
	assert.Contains(t, info.Filename, "_daily_")
	assert.EqualValues(t, len("baza podataka"), info.SizeBytes)

	backups, err := svc.ListBackups()
	require.NoError(t, err)
	require.Len(t, backups, 1)
	assert.Equal(t, info.Filename, backups[0].Filename)

	copied, err := os.ReadFile(filepath.Join(cfg.BackupDir, info.Filename))
	require.NoError(t, err)
	assert.Equal(t, "baza podataka", string(copied))
}

func TestListBackupsWithoutDirectory(t *testing.T) {
	svc, _ := newBackupService(t)

	backups, err := svc.ListBackups()
	require.NoError(t, err)
	assert.Empty(t, backups)
}

func TestRestoreBackup(t *testing.T) {
	svc, cfg := newBackupService(t)

	info, err := svc.CreateBackup("manual")
	require.NoError(t, err)

	// clobber the live database, then bring it back
	require.NoError(t, os.WriteFile(cfg.DBPath, []byte("pokvareno"), 0o644))
	require.NoError(t, svc.RestoreBackup(info.Filename))

	restored, err := os.ReadFile(cfg.DBPath)
	require.NoError(t, err)
	assert.Equal(t, "baza podataka", string(restored))

	t.Run("path traversal is rejected", func(t *testing.T) {
		err := svc.RestoreBackup("../newsdesk.db")
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("missing archive is not found", func(t *testing.T) {
		err := svc.RestoreBackup("nepostojeci.db")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestPruneOldBackups(t *testing.T) {
	svc, cfg := newBackupService(t)

	old, err := svc.CreateBackup("daily")
	require.NoError(t, err)
	fresh, err := svc.CreateBackup("daily")
	require.NoError(t, err)

	// age one archive past the retention window
	stale := time.Now().AddDate(0, 0, -(cfg.BackupRetention + 1))
	require.NoError(t, os.Chtimes(filepath.Join(cfg.BackupDir, old.Filename), stale, stale))

	removed, err := svc.PruneOldBackups()
	require.NoError(t, err)
	assert.Equal(t, 1, removed)

	backups, err := svc.ListBackups()
	require.NoError(t, err)
	require.Len(t, backups, 1)
	assert.Equal(t, fresh.Filename, backups[0].Filename)
}
