package services

import (
	"testing"

	"newsdesk-http-service/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newAuthService(db *gorm.DB) *AuthService {
	cfg := testConfig()
	return NewAuthService(db, cfg, NewJWTService(cfg, nil))
}

func TestLogin(t *testing.T) {
	db := setupTestDB(t)
	newsroom := createNewsroom(t, db, "Informativni program")
	svc := newAuthService(db)

	user := createUser(t, db, "devleta.brkic", models.RoleJournalist, &newsroom.ID)

	t.Run("valid credentials return a token", func(t *testing.T) {
		got, token, err := svc.Login("devleta.brkic", "Password@123")
		require.NoError(t, err)
		assert.Equal(t, user.ID, got.ID)
		assert.NotEmpty(t, token)
	})

	t.Run("wrong password is rejected", func(t *testing.T) {
		_, _, err := svc.Login("devleta.brkic", "pogresna")
		assert.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("unknown username is rejected the same way", func(t *testing.T) {
		_, _, err := svc.Login("ne.postoji", "Password@123")
		assert.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("deactivated account may not log in", func(t *testing.T) {
		dormant := createUser(t, db, "bivsi.radnik", models.RoleEditor, &newsroom.ID)
		dormant.IsActive = false
		require.NoError(t, db.Save(dormant).Error)

		_, _, err := svc.Login("bivsi.radnik", "Password@123")
		assert.ErrorIs(t, err, ErrForbidden)
	})
}

func TestLoginWithPIN(t *testing.T) {
	db := setupTestDB(t)
	newsroom := createNewsroom(t, db, "Informativni program")
	other := createNewsroom(t, db, "Banja Luka")
	svc := newAuthService(db)

	createUser(t, db, "amir.hodzic", models.RoleJournalist, &newsroom.ID)

	t.Run("correct newsroom PIN logs in without a password", func(t *testing.T) {
		user, token, err := svc.LoginWithPIN("amir.hodzic", newsroom.ID, "1234")
		require.NoError(t, err)
		assert.Equal(t, "amir.hodzic", user.Username)
		assert.NotEmpty(t, token)
	})

	t.Run("wrong PIN is rejected", func(t *testing.T) {
		_, _, err := svc.LoginWithPIN("amir.hodzic", newsroom.ID, "0000")
		assert.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("user must belong to the newsroom", func(t *testing.T) {
		_, _, err := svc.LoginWithPIN("amir.hodzic", other.ID, "1234")
		assert.ErrorIs(t, err, ErrForbidden)
	})
}

func TestJWTRoundTrip(t *testing.T) {
	db := setupTestDB(t)
	newsroom := createNewsroom(t, db, "Informativni program")
	cfg := testConfig()
	svc := NewJWTService(cfg, nil)

	user := createUser(t, db, "token.nosilac", models.RoleEditor, &newsroom.ID)

	token, err := svc.GenerateToken(user)
	require.NoError(t, err)

	claims, err := svc.ExtractClaims(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, models.RoleEditor, claims.Role)
	require.NotNil(t, claims.NewsroomID)
	assert.Equal(t, newsroom.ID, *claims.NewsroomID)

	t.Run("tampered token fails validation", func(t *testing.T) {
		_, err := svc.ValidateToken(token + "x")
		assert.Error(t, err)
	})

	t.Run("token signed with another key fails", func(t *testing.T) {
		otherCfg := testConfig()
		otherCfg.JWTSecretKey = "different-secret"
		foreign, err := NewJWTService(otherCfg, nil).GenerateToken(user)
		require.NoError(t, err)

		_, err = svc.ValidateToken(foreign)
		assert.Error(t, err)
	})
}
