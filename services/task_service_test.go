package services

import (
	"testing"

	"newsdesk-http-service/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateTaskPermissions(t *testing.T) {
	db := setupTestDB(t)
	newsroom := createNewsroom(t, db, "Informativni program")
	svc := newTaskService(db)

	req := func() *CreateTaskRequest {
		return &CreateTaskRequest{
			Date:       "2026-09-02",
			Title:      "Pres konferencija",
			NewsroomID: newsroom.ID,
		}
	}

	t.Run("viewer, camera and control room are rejected", func(t *testing.T) {
		for _, role := range []string{models.RoleViewer, models.RoleCamera, models.RoleControlRoom} {
			user := createUser(t, db, "odbijen."+role, role, &newsroom.ID)
			_, err := svc.CreateTask(user, req(), "127.0.0.1")
			assert.ErrorIs(t, err, ErrForbidden, "role %s", role)
		}
	})

	t.Run("editor creates in own newsroom by default", func(t *testing.T) {
		editor := createUser(t, db, "urednik.kreira", models.RoleEditor, &newsroom.ID)
		r := req()
		r.NewsroomID = 0

		task, err := svc.CreateTask(editor, r, "127.0.0.1")
		require.NoError(t, err)
		assert.Equal(t, newsroom.ID, task.NewsroomID)
		assert.Equal(t, models.StatusPlanned, task.Status)
		require.NotNil(t, task.CreatedBy)
		assert.Equal(t, editor.ID, *task.CreatedBy)
	})

	t.Run("editor may not create for another newsroom", func(t *testing.T) {
		other := createNewsroom(t, db, "Banja Luka")
		editor := createUser(t, db, "urednik.tudji", models.RoleEditor, &newsroom.ID)
		r := req()
		r.NewsroomID = other.ID

		_, err := svc.CreateTask(editor, r, "127.0.0.1")
		assert.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("producer may create anywhere", func(t *testing.T) {
		other := createNewsroom(t, db, "Mostar")
		producer := createUser(t, db, "producent.svuda", models.RoleProducer, nil)
		r := req()
		r.NewsroomID = other.ID

		task, err := svc.CreateTask(producer, r, "127.0.0.1")
		require.NoError(t, err)
		assert.Equal(t, other.ID, task.NewsroomID)
	})

	t.Run("missing title is a validation error", func(t *testing.T) {
		admin := createUser(t, db, "admin.valid", models.RoleAdmin, nil)
		r := req()
		r.Title = ""

		_, err := svc.CreateTask(admin, r, "127.0.0.1")
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("invalid attachment type is dropped to null", func(t *testing.T) {
		admin := createUser(t, db, "admin.attach", models.RoleAdmin, nil)
		r := req()
		r.AttachmentType = "NEPOSTOJEĆI"

		task, err := svc.CreateTask(admin, r, "127.0.0.1")
		require.NoError(t, err)
		assert.Nil(t, task.AttachmentType)
	})

	t.Run("creating with cameramen records the assigner", func(t *testing.T) {
		admin := createUser(t, db, "admin.snimatelji", models.RoleAdmin, nil)
		cam := createPerson(t, db, "Snimatelj Prvi", "", &newsroom.ID)
		r := req()
		r.CameramanIDs = models.UintArray{cam.ID}

		task, err := svc.CreateTask(admin, r, "127.0.0.1")
		require.NoError(t, err)
		require.NotNil(t, task.CameramanAssignedBy)
		assert.Equal(t, admin.ID, *task.CameramanAssignedBy)
	})
}

func TestUpdateTaskCameraRole(t *testing.T) {
	db := setupTestDB(t)
	newsroom := createNewsroom(t, db, "Informativni program")
	svc := newTaskService(db)

	person := createPerson(t, db, "Mirza Begić", "mirza.begic@rtv.ba", &newsroom.ID)
	camera := createUser(t, db, "mirza.begic", models.RoleCamera, &newsroom.ID)

	t.Run("may flip status on an assigned task", func(t *testing.T) {
		task := createTask(t, db, newsroom.ID, func(tk *models.Task) {
			tk.CameramanIDs = models.UintArray{person.ID}
		})
		status := models.StatusRecorded

		updated, err := svc.UpdateTask(camera, task.ID, &UpdateTaskRequest{Status: &status}, "127.0.0.1")
		require.NoError(t, err)
		assert.Equal(t, models.StatusRecorded, updated.Status)
	})

	t.Run("may not touch a task not assigned to them", func(t *testing.T) {
		task := createTask(t, db, newsroom.ID, nil)
		status := models.StatusRecorded

		_, err := svc.UpdateTask(camera, task.ID, &UpdateTaskRequest{Status: &status}, "127.0.0.1")
		assert.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("may not change anything but the status", func(t *testing.T) {
		task := createTask(t, db, newsroom.ID, func(tk *models.Task) {
			tk.CameramanIDs = models.UintArray{person.ID}
		})
		title := "Preimenovano"

		_, err := svc.UpdateTask(camera, task.ID, &UpdateTaskRequest{Title: &title}, "127.0.0.1")
		assert.ErrorIs(t, err, ErrForbidden)
	})
}

func TestUpdateTaskCameramanEditorAppendOnly(t *testing.T) {
	db := setupTestDB(t)
	newsroom := createNewsroom(t, db, "Informativni program")
	svc := newTaskService(db)

	chief := createUser(t, db, "sef.kamere", models.RoleChiefCamera, nil)
	camEditor := createUser(t, db, "raspored.kamere", models.RoleCameramanEdit, nil)

	newTaskAssignedBy := func(assigner *models.User, ids models.UintArray) *models.Task {
		return createTask(t, db, newsroom.ID, func(tk *models.Task) {
			tk.CameramanIDs = ids
			tk.CameramanAssignedBy = &assigner.ID
		})
	}

	t.Run("may append to another assigner's list", func(t *testing.T) {
		task := newTaskAssignedBy(chief, models.UintArray{3})
		ids := models.UintArray{3, 8}

		updated, err := svc.UpdateTask(camEditor, task.ID, &UpdateTaskRequest{CameramanIDs: &ids}, "127.0.0.1")
		require.NoError(t, err)
		assert.Equal(t, models.UintArray{3, 8}, updated.CameramanIDs)
	})

	t.Run("may not remove another assigner's cameraman", func(t *testing.T) {
		task := newTaskAssignedBy(chief, models.UintArray{3, 8})
		ids := models.UintArray{8}

		_, err := svc.UpdateTask(camEditor, task.ID, &UpdateTaskRequest{CameramanIDs: &ids}, "127.0.0.1")
		assert.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("may freely rewrite their own assignments", func(t *testing.T) {
		task := newTaskAssignedBy(camEditor, models.UintArray{3, 8})
		ids := models.UintArray{8}

		updated, err := svc.UpdateTask(camEditor, task.ID, &UpdateTaskRequest{CameramanIDs: &ids}, "127.0.0.1")
		require.NoError(t, err)
		assert.Equal(t, models.UintArray{8}, updated.CameramanIDs)
	})

	t.Run("admin may remove anyone", func(t *testing.T) {
		admin := createUser(t, db, "admin.kamera", models.RoleAdmin, nil)
		task := newTaskAssignedBy(chief, models.UintArray{3, 8})
		ids := models.UintArray{}

		updated, err := svc.UpdateTask(admin, task.ID, &UpdateTaskRequest{CameramanIDs: &ids}, "127.0.0.1")
		require.NoError(t, err)
		assert.Empty(t, updated.CameramanIDs)
	})
}

func TestUpdateTaskNewsroomConfinement(t *testing.T) {
	db := setupTestDB(t)
	newsroom := createNewsroom(t, db, "Sarajevo")
	other := createNewsroom(t, db, "Banja Luka")
	svc := newTaskService(db)

	editor := createUser(t, db, "urednik.sa", models.RoleEditor, &newsroom.ID)
	task := createTask(t, db, other.ID, nil)
	title := "Izmjena"

	_, err := svc.UpdateTask(editor, task.ID, &UpdateTaskRequest{Title: &title}, "127.0.0.1")
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestUpdateTaskExchangeFlagNotifiesProducers(t *testing.T) {
	db := setupTestDB(t)
	newsroom := createNewsroom(t, db, "Informativni program")
	svc := newTaskService(db)

	producer := createUser(t, db, "producent.jedan", models.RoleProducer, nil)
	editor := createUser(t, db, "urednik.razmjena", models.RoleEditor, &newsroom.ID)
	task := createTask(t, db, newsroom.ID, nil)

	flags := models.StringArray{models.FlagExchange}
	_, err := svc.UpdateTask(editor, task.ID, &UpdateTaskRequest{Flags: &flags}, "127.0.0.1")
	require.NoError(t, err)

	var notifications []models.Notification
	require.NoError(t, db.Where("user_id = ? AND type = ?", producer.ID, models.NotificationExchange).Find(&notifications).Error)
	require.Len(t, notifications, 1)
	require.NotNil(t, notifications[0].TaskID)
	assert.Equal(t, task.ID, *notifications[0].TaskID)

	// flag already present on the saved task, a second no-op update stays quiet
	_, err = svc.UpdateTask(editor, task.ID, &UpdateTaskRequest{Flags: &flags}, "127.0.0.1")
	require.NoError(t, err)

	var count int64
	require.NoError(t, db.Model(&models.Notification{}).
		Where("user_id = ? AND type = ?", producer.ID, models.NotificationExchange).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestMarkTaskDone(t *testing.T) {
	db := setupTestDB(t)
	newsroom := createNewsroom(t, db, "Informativni program")
	svc := newTaskService(db)

	t.Run("appends the confirmation flag without touching status", func(t *testing.T) {
		admin := createUser(t, db, "admin.potvrda", models.RoleAdmin, nil)
		task := createTask(t, db, newsroom.ID, func(tk *models.Task) {
			tk.Status = models.StatusRecorded
			tk.Flags = models.StringArray{models.FlagTravel}
		})

		done, err := svc.MarkTaskDone(admin, task.ID, "127.0.0.1")
		require.NoError(t, err)
		assert.Equal(t, models.StatusRecorded, done.Status)
		assert.True(t, done.Flags.Contains(models.FlagTravel))
		assert.True(t, done.Flags.Contains(models.FlagConfirmed))
		assert.Equal(t, admin.Name, done.ConfirmedByName)

		// idempotent: confirming twice does not duplicate the flag
		done, err = svc.MarkTaskDone(admin, task.ID, "127.0.0.1")
		require.NoError(t, err)
		count := 0
		for _, f := range done.Flags {
			if f == models.FlagConfirmed {
				count++
			}
		}
		assert.Equal(t, 1, count)
	})

	t.Run("editors may not confirm", func(t *testing.T) {
		editor := createUser(t, db, "urednik.potvrda", models.RoleEditor, &newsroom.ID)
		task := createTask(t, db, newsroom.ID, nil)

		_, err := svc.MarkTaskDone(editor, task.ID, "127.0.0.1")
		assert.ErrorIs(t, err, ErrForbidden)
	})
}

func TestDeleteTask(t *testing.T) {
	db := setupTestDB(t)
	newsroom := createNewsroom(t, db, "Informativni program")
	other := createNewsroom(t, db, "Banja Luka")
	svc := newTaskService(db)

	t.Run("journalist may not delete", func(t *testing.T) {
		journalist := createUser(t, db, "novinar.brise", models.RoleJournalist, &newsroom.ID)
		task := createTask(t, db, newsroom.ID, nil)

		err := svc.DeleteTask(journalist, task.ID, "127.0.0.1")
		assert.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("editor may delete in own newsroom", func(t *testing.T) {
		editor := createUser(t, db, "urednik.brise", models.RoleEditor, &newsroom.ID)
		task := createTask(t, db, newsroom.ID, func(tk *models.Task) {
			tk.CreatedBy = &editor.ID
		})

		require.NoError(t, svc.DeleteTask(editor, task.ID, "127.0.0.1"))

		var count int64
		db.Model(&models.Task{}).Where("id = ?", task.ID).Count(&count)
		assert.Zero(t, count)
	})

	t.Run("editor may not delete in another newsroom", func(t *testing.T) {
		editor := createUser(t, db, "urednik.tudje", models.RoleEditor, &newsroom.ID)
		task := createTask(t, db, other.ID, func(tk *models.Task) {
			tk.CreatedBy = &editor.ID
		})

		err := svc.DeleteTask(editor, task.ID, "127.0.0.1")
		assert.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("desk editor may only delete own tasks", func(t *testing.T) {
		deskEditor := createUser(t, db, "desk.brise", models.RoleDeskEditor, &newsroom.ID)
		someoneElse := createUser(t, db, "desk.drugi", models.RoleDeskEditor, &newsroom.ID)
		task := createTask(t, db, newsroom.ID, func(tk *models.Task) {
			tk.CreatedBy = &someoneElse.ID
		})

		err := svc.DeleteTask(deskEditor, task.ID, "127.0.0.1")
		assert.ErrorIs(t, err, ErrForbidden)

		own := createTask(t, db, newsroom.ID, func(tk *models.Task) {
			tk.CreatedBy = &deskEditor.ID
		})
		assert.NoError(t, svc.DeleteTask(deskEditor, own.ID, "127.0.0.1"))
	})

	t.Run("delete cascades the task's notifications", func(t *testing.T) {
		admin := createUser(t, db, "admin.kaskada", models.RoleAdmin, nil)
		inboxOwner := createUser(t, db, "primalac.kaskada", models.RoleEditor, &newsroom.ID)
		task := createTask(t, db, newsroom.ID, nil)
		require.NoError(t, db.Create(&models.Notification{
			UserID: inboxOwner.ID, Title: "Test", Message: "Test", Type: models.NotificationTaskCreated, TaskID: &task.ID,
		}).Error)

		require.NoError(t, svc.DeleteTask(admin, task.ID, "127.0.0.1"))

		var count int64
		db.Model(&models.Notification{}).Where("task_id = ?", task.ID).Count(&count)
		assert.Zero(t, count)
	})
}

func TestListTasksPersonScoped(t *testing.T) {
	db := setupTestDB(t)
	newsroom := createNewsroom(t, db, "Informativni program")
	svc := newTaskService(db)

	// force a person whose id is a textual substring of another's
	require.NoError(t, db.Exec("INSERT INTO people (id, name, email, is_active) VALUES (7, 'Sedmi Novinar', 'sedmi.novinar@rtv.ba', 1)").Error)
	require.NoError(t, db.Exec("INSERT INTO people (id, name, email, is_active) VALUES (17, 'Sedamnaesti Novinar', 'sedamnaesti.novinar@rtv.ba', 1)").Error)

	journalist := createUser(t, db, "sedmi.novinar", models.RoleJournalist, &newsroom.ID)

	mine := createTask(t, db, newsroom.ID, func(tk *models.Task) {
		tk.Title = "Moj zadatak"
		tk.JournalistIDs = models.UintArray{7}
	})
	createTask(t, db, newsroom.ID, func(tk *models.Task) {
		tk.Title = "Tuđi zadatak"
		tk.JournalistIDs = models.UintArray{17}
	})
	createTask(t, db, newsroom.ID, func(tk *models.Task) {
		tk.Title = "Bez mene"
	})

	tasks, total, err := svc.ListTasks(journalist, &TaskListQuery{})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, tasks, 1)
	assert.Equal(t, mine.ID, tasks[0].ID)
}

func TestListTasksFilters(t *testing.T) {
	db := setupTestDB(t)
	newsroom := createNewsroom(t, db, "Sarajevo")
	other := createNewsroom(t, db, "Banja Luka")
	svc := newTaskService(db)
	admin := createUser(t, db, "admin.lista", models.RoleAdmin, nil)

	createTask(t, db, newsroom.ID, func(tk *models.Task) {
		tk.Date = "2026-09-01"
		tk.Title = "Sjednica vlade"
		tk.Status = models.StatusPlanned
	})
	createTask(t, db, newsroom.ID, func(tk *models.Task) {
		tk.Date = "2026-09-02"
		tk.Title = "Otvaranje škole"
		tk.Status = models.StatusCancelled
	})
	createTask(t, db, other.ID, func(tk *models.Task) {
		tk.Date = "2026-09-01"
		tk.Title = "Poplave"
		tk.Status = models.StatusPlanned
	})

	t.Run("by date", func(t *testing.T) {
		tasks, total, err := svc.ListTasks(admin, &TaskListQuery{Date: "2026-09-01"})
		require.NoError(t, err)
		assert.EqualValues(t, 2, total)
		assert.Len(t, tasks, 2)
	})

	t.Run("by status", func(t *testing.T) {
		tasks, total, err := svc.ListTasks(admin, &TaskListQuery{Status: models.StatusCancelled})
		require.NoError(t, err)
		assert.EqualValues(t, 1, total)
		require.Len(t, tasks, 1)
		assert.Equal(t, "Otvaranje škole", tasks[0].Title)
	})

	t.Run("by newsroom", func(t *testing.T) {
		_, total, err := svc.ListTasks(admin, &TaskListQuery{NewsroomID: &other.ID})
		require.NoError(t, err)
		assert.EqualValues(t, 1, total)
	})

	t.Run("by search", func(t *testing.T) {
		tasks, total, err := svc.ListTasks(admin, &TaskListQuery{Search: "škole"})
		require.NoError(t, err)
		assert.EqualValues(t, 1, total)
		require.Len(t, tasks, 1)
		assert.Equal(t, "Otvaranje škole", tasks[0].Title)
	})

	t.Run("pagination", func(t *testing.T) {
		tasks, total, err := svc.ListTasks(admin, &TaskListQuery{Page: 2, PageSize: 2})
		require.NoError(t, err)
		assert.EqualValues(t, 3, total)
		assert.Len(t, tasks, 1)
	})
}

func TestGetTaskReadAccess(t *testing.T) {
	db := setupTestDB(t)
	newsroom := createNewsroom(t, db, "Sarajevo")
	other := createNewsroom(t, db, "Banja Luka")
	svc := newTaskService(db)

	task := createTask(t, db, newsroom.ID, nil)

	t.Run("viewer sees own newsroom only", func(t *testing.T) {
		viewer := createUser(t, db, "gledalac.bl", models.RoleViewer, &other.ID)
		_, err := svc.GetTask(viewer, task.ID)
		assert.ErrorIs(t, err, ErrForbidden)

		homeViewer := createUser(t, db, "gledalac.sa", models.RoleViewer, &newsroom.ID)
		got, err := svc.GetTask(homeViewer, task.ID)
		require.NoError(t, err)
		assert.Equal(t, task.ID, got.ID)
	})

	t.Run("journalist sees only assigned tasks", func(t *testing.T) {
		person := createPerson(t, db, "Lejla Husić", "lejla.husic@rtv.ba", &newsroom.ID)
		journalist := createUser(t, db, "lejla.husic", models.RoleJournalist, &newsroom.ID)

		_, err := svc.GetTask(journalist, task.ID)
		assert.ErrorIs(t, err, ErrForbidden)

		assigned := createTask(t, db, newsroom.ID, func(tk *models.Task) {
			tk.JournalistIDs = models.UintArray{person.ID}
		})
		got, err := svc.GetTask(journalist, assigned.ID)
		require.NoError(t, err)
		assert.Equal(t, assigned.ID, got.ID)
	})

	t.Run("missing task yields not found", func(t *testing.T) {
		admin := createUser(t, db, "admin.get", models.RoleAdmin, nil)
		_, err := svc.GetTask(admin, 99999)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}
