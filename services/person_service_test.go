package services

import (
	"testing"

	"newsdesk-http-service/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPersonCRUD(t *testing.T) {
	db := setupTestDB(t)
	newsroom := createNewsroom(t, db, "Informativni program")
	svc := NewPersonService(db, testConfig())

	t.Run("create requires a name", func(t *testing.T) {
		err := svc.CreatePerson(&models.Person{Email: "bez.imena@rtv.ba"})
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("search matches name, email and phone", func(t *testing.T) {
		createPerson(t, db, "Devleta Brkić", "devleta.brkic@rtv.ba", &newsroom.ID)
		p := createPerson(t, db, "Amir Hodžić", "amir.hodzic@rtv.ba", &newsroom.ID)
		p.Phone = "061-555-123"
		require.NoError(t, db.Save(p).Error)

		people, total, err := svc.GetAllPeople(1, 50, "555-123", nil)
		require.NoError(t, err)
		assert.EqualValues(t, 1, total)
		require.Len(t, people, 1)
		assert.Equal(t, "Amir Hodžić", people[0].Name)
	})

	t.Run("partial update leaves other fields alone", func(t *testing.T) {
		p := createPerson(t, db, "Sanja Kovač", "sanja.kovac@rtv.ba", &newsroom.ID)

		updated, err := svc.UpdatePerson(p.ID, map[string]interface{}{"phone": "062-111-222"})
		require.NoError(t, err)
		assert.Equal(t, "062-111-222", updated.Phone)
		assert.Equal(t, "Sanja Kovač", updated.Name)
		assert.Equal(t, "sanja.kovac@rtv.ba", updated.Email)
	})

	t.Run("update of a missing person is not found", func(t *testing.T) {
		_, err := svc.UpdatePerson(99999, map[string]interface{}{"phone": "x"})
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestDeletePersonCascades(t *testing.T) {
	db := setupTestDB(t)
	newsroom := createNewsroom(t, db, "Informativni program")
	svc := NewPersonService(db, testConfig())

	person := createPerson(t, db, "Jasmin Durak", "jasmin.durak@rtv.ba", &newsroom.ID)
	other := createPerson(t, db, "Lejla Husić", "lejla.husic@rtv.ba", &newsroom.ID)

	require.NoError(t, db.Create(&models.EmployeeSchedule{PersonID: person.ID, Date: "2026-09-01"}).Error)
	require.NoError(t, db.Create(&models.LeaveRequest{
		PersonID: person.ID, DateFrom: "2026-09-10", DateTo: "2026-09-14", Status: "PENDING",
	}).Error)

	task := createTask(t, db, newsroom.ID, func(tk *models.Task) {
		tk.JournalistIDs = models.UintArray{person.ID, other.ID}
		tk.CameramanIDs = models.UintArray{person.ID}
	})

	require.NoError(t, svc.DeletePerson(person.ID))

	var schedules, leaves int64
	db.Model(&models.EmployeeSchedule{}).Where("person_id = ?", person.ID).Count(&schedules)
	db.Model(&models.LeaveRequest{}).Where("person_id = ?", person.ID).Count(&leaves)
	assert.Zero(t, schedules)
	assert.Zero(t, leaves)

	var reloaded models.Task
	require.NoError(t, db.First(&reloaded, task.ID).Error)
	assert.Equal(t, models.UintArray{other.ID}, reloaded.JournalistIDs)
	assert.Empty(t, reloaded.CameramanIDs)

	_, err := svc.GetPersonByID(person.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}
