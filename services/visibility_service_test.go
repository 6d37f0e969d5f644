package services

import (
	"testing"

	"newsdesk-http-service/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolvePerson(t *testing.T) {
	db := setupTestDB(t)
	newsroom := createNewsroom(t, db, "Informativni program")
	svc := NewVisibilityService(db, testConfig())

	t.Run("matches by email containing the username", func(t *testing.T) {
		person := createPerson(t, db, "Devleta Brkić", "devleta.brkic@rtv.ba", &newsroom.ID)
		user := createUser(t, db, "devleta.brkic", models.RoleJournalist, &newsroom.ID)

		got, err := svc.ResolvePerson(user)
		require.NoError(t, err)
		assert.Equal(t, person.ID, got.ID)
	})

	t.Run("falls back to exact display name", func(t *testing.T) {
		person := createPerson(t, db, "Amir Hodžić", "", &newsroom.ID)
		user := createUser(t, db, "ahodzic", models.RoleJournalist, &newsroom.ID)
		user.Name = "Amir Hodžić"
		require.NoError(t, db.Save(user).Error)

		got, err := svc.ResolvePerson(user)
		require.NoError(t, err)
		assert.Equal(t, person.ID, got.ID)
	})

	t.Run("falls back to title-cased username", func(t *testing.T) {
		person := createPerson(t, db, "Sanja Kovac", "", &newsroom.ID)
		user := createUser(t, db, "sanja.kovac", models.RoleJournalist, &newsroom.ID)
		user.Name = "S. Kovac"
		require.NoError(t, db.Save(user).Error)

		got, err := svc.ResolvePerson(user)
		require.NoError(t, err)
		assert.Equal(t, person.ID, got.ID)
	})

	t.Run("unresolvable user yields record not found", func(t *testing.T) {
		user := createUser(t, db, "nepoznat.korisnik", models.RoleJournalist, &newsroom.ID)
		user.Name = "Niko Nikad"
		require.NoError(t, db.Save(user).Error)

		_, err := svc.ResolvePerson(user)
		assert.Error(t, err)
	})
}

func TestScopeTasks(t *testing.T) {
	db := setupTestDB(t)
	newsroom := createNewsroom(t, db, "Sarajevo")
	other := createNewsroom(t, db, "Banja Luka")
	svc := NewVisibilityService(db, testConfig())

	t.Run("admin sees everything and may filter by newsroom", func(t *testing.T) {
		admin := createUser(t, db, "admin.user", models.RoleAdmin, nil)

		scope, err := svc.ScopeTasks(admin, nil)
		require.NoError(t, err)
		assert.Nil(t, scope.NewsroomID)
		assert.Zero(t, scope.PersonID)

		scope, err = svc.ScopeTasks(admin, &other.ID)
		require.NoError(t, err)
		require.NotNil(t, scope.NewsroomID)
		assert.Equal(t, other.ID, *scope.NewsroomID)
	})

	t.Run("editor is confined to own newsroom", func(t *testing.T) {
		editor := createUser(t, db, "urednik.jedan", models.RoleEditor, &newsroom.ID)

		scope, err := svc.ScopeTasks(editor, &other.ID)
		require.NoError(t, err)
		require.NotNil(t, scope.NewsroomID)
		assert.Equal(t, newsroom.ID, *scope.NewsroomID)
	})

	t.Run("editor without a newsroom is rejected", func(t *testing.T) {
		editor := createUser(t, db, "urednik.bez", models.RoleEditor, nil)

		_, err := svc.ScopeTasks(editor, nil)
		assert.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("journalist scope carries the resolved person id", func(t *testing.T) {
		person := createPerson(t, db, "Jasmin Durak", "jasmin.durak@rtv.ba", &newsroom.ID)
		journalist := createUser(t, db, "jasmin.durak", models.RoleJournalist, &newsroom.ID)

		scope, err := svc.ScopeTasks(journalist, nil)
		require.NoError(t, err)
		assert.Equal(t, person.ID, scope.PersonID)
		assert.False(t, scope.Cameraman)
	})

	t.Run("camera scope selects the cameraman column", func(t *testing.T) {
		person := createPerson(t, db, "Mirza Begić", "mirza.begic@rtv.ba", &newsroom.ID)
		camera := createUser(t, db, "mirza.begic", models.RoleCamera, &newsroom.ID)

		scope, err := svc.ScopeTasks(camera, nil)
		require.NoError(t, err)
		assert.Equal(t, person.ID, scope.PersonID)
		assert.True(t, scope.Cameraman)
	})

	t.Run("unresolved journalist gets an empty scope, not an error", func(t *testing.T) {
		journalist := createUser(t, db, "bez.kartona", models.RoleJournalist, &newsroom.ID)
		journalist.Name = "Nema Ga"
		require.NoError(t, db.Save(journalist).Error)

		scope, err := svc.ScopeTasks(journalist, nil)
		require.NoError(t, err)
		assert.True(t, scope.Empty)
	})
}

func TestTaskScopeFilterExactMembership(t *testing.T) {
	// the SQL LIKE pre-filter matches id 7 inside "17"; Filter must reject it
	tasks := []models.Task{
		{Title: "A", JournalistIDs: models.UintArray{17}},
		{Title: "B", JournalistIDs: models.UintArray{7, 3}},
		{Title: "C", JournalistIDs: models.UintArray{170}},
	}
	scope := &TaskScope{PersonID: 7}

	out := scope.Filter(tasks)
	require.Len(t, out, 1)
	assert.Equal(t, "B", out[0].Title)
}

func TestTaskScopeFilterCameramanColumn(t *testing.T) {
	tasks := []models.Task{
		{Title: "A", JournalistIDs: models.UintArray{5}, CameramanIDs: models.UintArray{9}},
		{Title: "B", CameramanIDs: models.UintArray{5}},
	}
	scope := &TaskScope{PersonID: 5, Cameraman: true}

	out := scope.Filter(tasks)
	require.Len(t, out, 1)
	assert.Equal(t, "B", out[0].Title)
}
