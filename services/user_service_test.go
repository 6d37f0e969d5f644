package services

import (
	"testing"

	"newsdesk-http-service/models"
	"newsdesk-http-service/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserCRUD(t *testing.T) {
	db := setupTestDB(t)
	newsroom := createNewsroom(t, db, "Informativni program")
	svc := NewUserService(db, testConfig())

	t.Run("create hashes the password", func(t *testing.T) {
		user := &models.User{
			Username: "novi.korisnik",
			Name:     "Novi Korisnik",
			Password: "Tajna@123",
			Role:     models.RoleEditor,
		}
		require.NoError(t, svc.CreateUser(user))
		assert.NotEqual(t, "Tajna@123", user.Password)
		assert.True(t, utils.CheckPasswordHash("Tajna@123", user.Password))
		assert.True(t, user.IsActive)
	})

	t.Run("duplicate username is rejected", func(t *testing.T) {
		err := svc.CreateUser(&models.User{
			Username: "novi.korisnik", Password: "x", Role: models.RoleEditor,
		})
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("update re-hashes a new password and skips blanks", func(t *testing.T) {
		user := createUser(t, db, "mijenja.lozinku", models.RoleEditor, &newsroom.ID)

		updated, err := svc.UpdateUser(user.ID, map[string]interface{}{"password": "Nova@456"})
		require.NoError(t, err)
		assert.True(t, utils.CheckPasswordHash("Nova@456", updated.Password))

		updated, err = svc.UpdateUser(user.ID, map[string]interface{}{"password": "", "name": "Novo Ime"})
		require.NoError(t, err)
		assert.Equal(t, "Novo Ime", updated.Name)
		assert.True(t, utils.CheckPasswordHash("Nova@456", updated.Password))
	})

	t.Run("username change must stay unique", func(t *testing.T) {
		user := createUser(t, db, "zauzece.ime", models.RoleEditor, &newsroom.ID)

		_, err := svc.UpdateUser(user.ID, map[string]interface{}{"username": "novi.korisnik"})
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("search matches username and name", func(t *testing.T) {
		users, total, err := svc.GetAllUsers(1, 50, "novi.korisnik")
		require.NoError(t, err)
		assert.EqualValues(t, 1, total)
		require.Len(t, users, 1)
		assert.Equal(t, "novi.korisnik", users[0].Username)
	})
}

func TestDeleteUser(t *testing.T) {
	db := setupTestDB(t)
	newsroom := createNewsroom(t, db, "Informativni program")
	svc := NewUserService(db, testConfig())

	t.Run("clean account is removed outright", func(t *testing.T) {
		user := createUser(t, db, "bez.tragova", models.RoleEditor, &newsroom.ID)
		require.NoError(t, svc.DeleteUser(user.ID))

		_, err := svc.GetUserByID(user.ID)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("account with created tasks is deactivated instead", func(t *testing.T) {
		user := createUser(t, db, "sa.zadacima", models.RoleEditor, &newsroom.ID)
		createTask(t, db, newsroom.ID, func(tk *models.Task) {
			tk.CreatedBy = &user.ID
		})

		require.NoError(t, svc.DeleteUser(user.ID))

		kept, err := svc.GetUserByID(user.ID)
		require.NoError(t, err)
		assert.False(t, kept.IsActive)
	})
}
