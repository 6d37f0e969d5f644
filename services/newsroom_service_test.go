package services

import (
	"testing"

	"newsdesk-http-service/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateNewsroom(t *testing.T) {
	db := setupTestDB(t)
	svc := NewNewsroomService(db, testConfig())

	t.Run("requires a name", func(t *testing.T) {
		err := svc.CreateNewsroom(&models.Newsroom{})
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("keeps an explicit PIN", func(t *testing.T) {
		newsroom := models.Newsroom{Name: "Sportska redakcija", PIN: "9876"}
		require.NoError(t, svc.CreateNewsroom(&newsroom))
		assert.Equal(t, "9876", newsroom.PIN)
	})

	t.Run("generates a PIN when none is given", func(t *testing.T) {
		newsroom := models.Newsroom{Name: "Dokumentarni program"}
		require.NoError(t, svc.CreateNewsroom(&newsroom))
		require.Len(t, newsroom.PIN, 4)
		for _, r := range newsroom.PIN {
			assert.True(t, r >= '0' && r <= '9', "unexpected rune %q in PIN", r)
		}

		var stored models.Newsroom
		require.NoError(t, db.First(&stored, newsroom.ID).Error)
		assert.Equal(t, newsroom.PIN, stored.PIN)
	})
}

func TestDeleteNewsroomGuards(t *testing.T) {
	db := setupTestDB(t)
	svc := NewNewsroomService(db, testConfig())

	newsroom := createNewsroom(t, db, "Informativni program")

	t.Run("refuses while tasks remain", func(t *testing.T) {
		task := createTask(t, db, newsroom.ID, nil)
		assert.ErrorIs(t, svc.DeleteNewsroom(newsroom.ID), ErrValidation)
		require.NoError(t, db.Delete(&models.Task{}, task.ID).Error)
	})

	t.Run("refuses while users remain", func(t *testing.T) {
		user := createUser(t, db, "vezani.urednik", models.RoleEditor, &newsroom.ID)
		assert.ErrorIs(t, svc.DeleteNewsroom(newsroom.ID), ErrValidation)
		require.NoError(t, db.Delete(&models.User{}, user.ID).Error)
	})

	t.Run("deletes once unreferenced", func(t *testing.T) {
		require.NoError(t, svc.DeleteNewsroom(newsroom.ID))
		_, err := svc.GetNewsroomByID(newsroom.ID)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("missing newsroom", func(t *testing.T) {
		assert.ErrorIs(t, svc.DeleteNewsroom(99999), ErrNotFound)
	})
}
