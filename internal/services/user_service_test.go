package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bcorey85/timestamp-api/internal/models"
	"github.com/bcorey85/timestamp-api/internal/utils"
)

func TestGetUserDataSeedsTutorialOnFirstLogin(t *testing.T) {
	db := setupDB(t)
	user := createTestUser(t, db)

	svc := NewUserService(db)
	svc.now = fixedClock(user.CreatedAt.Add(time.Second))

	data, err := svc.GetUserData(user)
	require.NoError(t, err)

	require.Len(t, data.Projects, 1)
	require.Len(t, data.Tasks, 1)
	require.Len(t, data.Notes, 1)

	assert.Equal(t, "I'm a Project", data.Projects[0].Title)
	assert.Equal(t, 1.0, data.Projects[0].Hours)
	assert.Equal(t, 1, data.Projects[0].Tasks)
	assert.Equal(t, 1, data.Projects[0].Notes)
	assert.Equal(t, 1.0, data.Tasks[0].Hours)
	assert.Equal(t, 1, data.Tasks[0].Notes)
	assert.Equal(t, 1.0, data.Hours)

	assertRollupsConsistent(t, db)
}

func TestGetUserDataNoSeedForOldAccount(t *testing.T) {
	db := setupDB(t)
	user := createTestUser(t, db)

	svc := NewUserService(db)
	svc.now = fixedClock(user.CreatedAt.Add(time.Hour))

	data, err := svc.GetUserData(user)
	require.NoError(t, err)
	assert.Empty(t, data.Projects)
	assert.Empty(t, data.Tasks)
	assert.Empty(t, data.Notes)
	assert.Equal(t, 0.0, data.Hours)
}

func TestGetUserDataTotalsAndRecents(t *testing.T) {
	db := setupDB(t)
	user := createTestUser(t, db)
	project := createTestProject(t, db, user.ID)
	task := createTestTask(t, db, user.ID, project.ID)

	start := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	var notes []*models.Note
	for i := 0; i < 8; i++ {
		n := createTestNote(t, db, user.ID, project.ID, task.ID, start, start.Add(30*time.Minute))
		// Spread updated_at so the recency order is deterministic.
		stamp := time.Date(2024, 1, 1, 0, 0, i, 0, time.UTC)
		require.NoError(t, db.Model(&models.Note{}).Where("id = ?", n.ID).
			UpdateColumn("updated_at", stamp).Error)
		notes = append(notes, n)
	}

	svc := NewUserService(db)
	svc.now = fixedClock(user.CreatedAt.Add(time.Hour))

	data, err := svc.GetUserData(user)
	require.NoError(t, err)

	assert.InDelta(t, 4.0, data.Hours, 1e-9)
	assert.Len(t, data.Notes, 8)
	require.Len(t, data.RecentItems.Notes, 6)

	// Most recently touched first.
	assert.Equal(t, notes[7].ID, data.RecentItems.Notes[0].ID)
	assert.Equal(t, notes[2].ID, data.RecentItems.Notes[5].ID)
}

func TestUpdateUserChangesPassword(t *testing.T) {
	db := setupDB(t)
	user := createTestUser(t, db)

	password := "new-password"
	svc := NewUserService(db)
	_, err := svc.UpdateUser(user.ID, &models.UserUpdateRequest{Password: &password})
	require.NoError(t, err)

	var stored models.User
	require.NoError(t, db.First(&stored, user.ID).Error)
	assert.NotEqual(t, password, stored.Password)

	match, err := utils.VerifyPassword(password, stored.Password)
	require.NoError(t, err)
	assert.True(t, match)
}

func TestUpdateUserEmailInUse(t *testing.T) {
	db := setupDB(t)
	user := createTestUser(t, db)
	other := createTestUser(t, db)

	svc := NewUserService(db)
	_, err := svc.UpdateUser(user.ID, &models.UserUpdateRequest{Email: &other.Email})
	assert.ErrorIs(t, err, ErrEmailInUse)
}

func TestUpdateUserChangesEmail(t *testing.T) {
	db := setupDB(t)
	user := createTestUser(t, db)

	email := "changed@example.com"
	svc := NewUserService(db)
	updated, err := svc.UpdateUser(user.ID, &models.UserUpdateRequest{Email: &email})
	require.NoError(t, err)
	assert.Equal(t, email, updated.Email)
}

func TestDeleteUserRemovesOwnedItems(t *testing.T) {
	db := setupDB(t)
	user := createTestUser(t, db)
	project := createTestProject(t, db, user.ID)
	task := createTestTask(t, db, user.ID, project.ID)

	start := time.Now()
	createTestNote(t, db, user.ID, project.ID, task.ID, start, start.Add(time.Hour))

	svc := NewUserService(db)
	require.NoError(t, svc.DeleteUser(user.ID))

	for _, model := range []interface{}{&models.Project{}, &models.Task{}, &models.Note{}} {
		var count int64
		require.NoError(t, db.Model(model).Where("user_id = ?", user.ID).Count(&count).Error)
		assert.Equal(t, int64(0), count)
	}

	err := svc.DeleteUser(user.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}
