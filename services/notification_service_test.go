package services

import (
	"testing"
	"time"

	"newsdesk-http-service/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func notificationsFor(t *testing.T, svc *NotificationService, userID uint) []models.Notification {
	t.Helper()
	list, err := svc.List(userID, false)
	require.NoError(t, err)
	return list
}

func TestNotifyTaskCreated(t *testing.T) {
	db := setupTestDB(t)
	newsroom := createNewsroom(t, db, "Informativni program")
	svc := NewNotificationService(db, testConfig(), nil)

	chief := createUser(t, db, "sef.kamere", models.RoleChiefCamera, nil)
	camEditor := createUser(t, db, "raspored.kamere", models.RoleCameramanEdit, nil)
	producer := createUser(t, db, "producent.jedan", models.RoleProducer, nil)
	editor := createUser(t, db, "urednik.jedan", models.RoleEditor, &newsroom.ID)

	t.Run("plain task goes to the camera desk only", func(t *testing.T) {
		task := createTask(t, db, newsroom.ID, nil)
		svc.NotifyTaskCreated(task, editor)

		assert.Len(t, notificationsFor(t, svc, chief.ID), 1)
		assert.Len(t, notificationsFor(t, svc, camEditor.ID), 1)
		assert.Empty(t, notificationsFor(t, svc, producer.ID))
		assert.Empty(t, notificationsFor(t, svc, editor.ID))
	})

	t.Run("exchange task additionally reaches producers", func(t *testing.T) {
		task := createTask(t, db, newsroom.ID, func(tk *models.Task) {
			tk.Flags = models.StringArray{models.FlagExchange}
		})
		svc.NotifyTaskCreated(task, editor)

		assert.Len(t, notificationsFor(t, svc, producer.ID), 1)
	})

	t.Run("repeated event for the same task is deduplicated", func(t *testing.T) {
		task := createTask(t, db, newsroom.ID, nil)
		svc.NotifyTaskCreated(task, editor)
		svc.NotifyTaskCreated(task, editor)

		var count int64
		require.NoError(t, db.Model(&models.Notification{}).
			Where("user_id = ? AND task_id = ?", chief.ID, task.ID).Count(&count).Error)
		assert.EqualValues(t, 1, count)
	})

	t.Run("inactive accounts receive nothing", func(t *testing.T) {
		dormant := createUser(t, db, "sef.neaktivan", models.RoleChiefCamera, nil)
		dormant.IsActive = false
		require.NoError(t, db.Save(dormant).Error)

		task := createTask(t, db, newsroom.ID, nil)
		svc.NotifyTaskCreated(task, editor)

		assert.Empty(t, notificationsFor(t, svc, dormant.ID))
	})
}

func TestNotifyCameramenAssigned(t *testing.T) {
	db := setupTestDB(t)
	newsroom := createNewsroom(t, db, "Informativni program")
	svc := NewNotificationService(db, testConfig(), nil)

	producer := createUser(t, db, "producent.dva", models.RoleProducer, nil)
	chief := createUser(t, db, "sef.kamere", models.RoleChiefCamera, nil)
	deskEditor := createUser(t, db, "desk.urednik", models.RoleDeskEditor, &newsroom.ID)

	camPerson := createPerson(t, db, "Mirza Begić", "mirza.begic@rtv.ba", &newsroom.ID)
	camUser := createUser(t, db, "mirza.begic", models.RoleCamera, &newsroom.ID)

	t.Run("producers, the cameraman and the desk editor are notified", func(t *testing.T) {
		task := createTask(t, db, newsroom.ID, func(tk *models.Task) {
			tk.CameramanIDs = models.UintArray{camPerson.ID}
		})
		svc.NotifyCameramenAssigned(task, models.UintArray{camPerson.ID}, producer)

		assert.Len(t, notificationsFor(t, svc, producer.ID), 1)
		assert.Len(t, notificationsFor(t, svc, camUser.ID), 1)
		assert.Len(t, notificationsFor(t, svc, deskEditor.ID), 1)
		// not urgent, so the chief camera desk stays quiet
		assert.Empty(t, notificationsFor(t, svc, chief.ID))
	})

	t.Run("urgent assignment also reaches the camera desk", func(t *testing.T) {
		task := createTask(t, db, newsroom.ID, func(tk *models.Task) {
			tk.Flags = models.StringArray{models.FlagUrgent}
			tk.CameramanIDs = models.UintArray{camPerson.ID}
		})
		svc.NotifyCameramenAssigned(task, models.UintArray{camPerson.ID}, producer)

		assert.Len(t, notificationsFor(t, svc, chief.ID), 1)
	})

	t.Run("an editor creator is told their task got a cameraman", func(t *testing.T) {
		editor := createUser(t, db, "urednik.kreator", models.RoleEditor, &newsroom.ID)
		task := createTask(t, db, newsroom.ID, func(tk *models.Task) {
			tk.CreatedBy = &editor.ID
			tk.CameramanIDs = models.UintArray{camPerson.ID}
		})
		svc.NotifyCameramenAssigned(task, models.UintArray{camPerson.ID}, producer)

		assert.Len(t, notificationsFor(t, svc, editor.ID), 1)
	})
}

func TestNotifyStatusChanged(t *testing.T) {
	db := setupTestDB(t)
	newsroom := createNewsroom(t, db, "Informativni program")
	svc := NewNotificationService(db, testConfig(), nil)

	editor := createUser(t, db, "urednik.status", models.RoleEditor, &newsroom.ID)
	chief := createUser(t, db, "sef.status", models.RoleChiefCamera, nil)

	t.Run("the actor is excluded from the fan-out", func(t *testing.T) {
		task := createTask(t, db, newsroom.ID, func(tk *models.Task) {
			tk.Status = models.StatusRecorded
		})
		svc.NotifyStatusChanged(task, editor)

		assert.Empty(t, notificationsFor(t, svc, editor.ID))
		assert.Len(t, notificationsFor(t, svc, chief.ID), 1)
	})

	t.Run("the same message is suppressed within the window", func(t *testing.T) {
		task := createTask(t, db, newsroom.ID, func(tk *models.Task) {
			tk.Status = models.StatusCancelled
		})
		svc.NotifyStatusChanged(task, nil)
		svc.NotifyStatusChanged(task, nil)

		var count int64
		require.NoError(t, db.Model(&models.Notification{}).
			Where("user_id = ? AND type = ?", chief.ID, models.NotificationStatusChanged).
			Where("message LIKE ?", "%OTKAZANO%").Count(&count).Error)
		assert.EqualValues(t, 1, count)
	})
}

func TestNotificationInbox(t *testing.T) {
	db := setupTestDB(t)
	svc := NewNotificationService(db, testConfig(), nil)
	newsroom := createNewsroom(t, db, "Informativni program")
	user := createUser(t, db, "inbox.korisnik", models.RoleEditor, &newsroom.ID)
	stranger := createUser(t, db, "inbox.tudji", models.RoleEditor, &newsroom.ID)

	seed := func(title string) models.Notification {
		n := models.Notification{UserID: user.ID, Title: title, Message: title, Type: models.NotificationTaskCreated}
		require.NoError(t, db.Create(&n).Error)
		return n
	}

	first := seed("Prva")
	seed("Druga")

	t.Run("unread count and mark read", func(t *testing.T) {
		count, err := svc.UnreadCount(user.ID)
		require.NoError(t, err)
		assert.EqualValues(t, 2, count)

		require.NoError(t, svc.MarkRead(user.ID, first.ID))
		count, err = svc.UnreadCount(user.ID)
		require.NoError(t, err)
		assert.EqualValues(t, 1, count)

		unread, err := svc.List(user.ID, true)
		require.NoError(t, err)
		require.Len(t, unread, 1)
		assert.Equal(t, "Druga", unread[0].Title)
	})

	t.Run("another user's rows are untouchable", func(t *testing.T) {
		assert.ErrorIs(t, svc.MarkRead(stranger.ID, first.ID), ErrNotFound)
		assert.ErrorIs(t, svc.Delete(stranger.ID, first.ID), ErrNotFound)
	})

	t.Run("mark all read", func(t *testing.T) {
		require.NoError(t, svc.MarkAllRead(user.ID))
		count, err := svc.UnreadCount(user.ID)
		require.NoError(t, err)
		assert.Zero(t, count)
	})

	t.Run("delete own row", func(t *testing.T) {
		require.NoError(t, svc.Delete(user.ID, first.ID))
		list, err := svc.List(user.ID, false)
		require.NoError(t, err)
		assert.Len(t, list, 1)
	})
}

func TestPurgeOldNotifications(t *testing.T) {
	db := setupTestDB(t)
	svc := NewNotificationService(db, testConfig(), nil)
	newsroom := createNewsroom(t, db, "Informativni program")
	user := createUser(t, db, "purge.korisnik", models.RoleEditor, &newsroom.ID)

	old := models.Notification{UserID: user.ID, Title: "Stara", Message: "Stara", Type: models.NotificationTaskCreated}
	require.NoError(t, db.Create(&old).Error)
	require.NoError(t, db.Model(&models.Notification{}).Where("id = ?", old.ID).
		Update("created_at", time.Now().AddDate(0, 0, -2)).Error)

	fresh := models.Notification{UserID: user.ID, Title: "Nova", Message: "Nova", Type: models.NotificationTaskCreated}
	require.NoError(t, db.Create(&fresh).Error)

	deleted, err := svc.PurgeOld()
	require.NoError(t, err)
	assert.EqualValues(t, 1, deleted)

	remaining, err := svc.List(user.ID, false)
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, "Nova", remaining[0].Title)
}
