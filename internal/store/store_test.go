package store

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/bcorey85/timestamp-api/internal/database"
	"github.com/bcorey85/timestamp-api/internal/models"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=1", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db))
	return db
}

func seedUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()

	user := models.User{
		Email:     fmt.Sprintf("%s@example.com", uuid.NewString()),
		Password:  "hashed-password",
		LastLogin: time.Now(),
	}
	require.NoError(t, db.Create(&user).Error)
	return &user
}

func TestFindAbsenceIsNotAnError(t *testing.T) {
	db := setupDB(t)
	st := NewStores(db)

	user, err := st.Users.Find(map[string]interface{}{"email": "nobody@example.com"})
	require.NoError(t, err)
	assert.Nil(t, user)

	project, err := st.Projects.Find(map[string]interface{}{"id": 9999})
	require.NoError(t, err)
	assert.Nil(t, project)
}

func TestUserUpdateStripsPassword(t *testing.T) {
	db := setupDB(t)
	st := NewStores(db)
	user := seedUser(t, db)

	updated, err := st.Users.Update(user.ID, map[string]interface{}{
		"email":    "renamed@example.com",
		"password": "sneaky",
	})
	require.NoError(t, err)
	assert.Equal(t, "renamed@example.com", updated.Email)
	assert.Equal(t, "hashed-password", updated.Password)
}

func TestUserUpdatePassword(t *testing.T) {
	db := setupDB(t)
	st := NewStores(db)
	user := seedUser(t, db)

	require.NoError(t, st.Users.UpdatePassword(user.ID, "new-hash"))

	updated, err := st.Users.Find(map[string]interface{}{"id": user.ID})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, "new-hash", updated.Password)
}

func TestProjectAddTotalsAccumulates(t *testing.T) {
	db := setupDB(t)
	st := NewStores(db)
	user := seedUser(t, db)

	project := models.Project{UserID: user.ID, Title: "p", Description: "d"}
	require.NoError(t, st.Projects.Create(&project))

	require.NoError(t, st.Projects.AddTotals(project.ID, 1.5, 1, 2))
	require.NoError(t, st.Projects.AddTotals(project.ID, 0.25, 0, 1))
	require.NoError(t, st.Projects.AddTotals(project.ID, -0.5, 0, -1))

	stored, err := st.Projects.Find(map[string]interface{}{"id": project.ID})
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.InDelta(t, 1.25, stored.Hours, 1e-9)
	assert.Equal(t, 1, stored.Tasks)
	assert.Equal(t, 2, stored.Notes)
}

func TestTaskAddTotalsAccumulates(t *testing.T) {
	db := setupDB(t)
	st := NewStores(db)
	user := seedUser(t, db)

	project := models.Project{UserID: user.ID, Title: "p", Description: "d"}
	require.NoError(t, st.Projects.Create(&project))
	task := models.Task{UserID: user.ID, ProjectID: project.ID, Title: "t", Description: "d"}
	require.NoError(t, st.Tasks.Create(&task))

	require.NoError(t, st.Tasks.AddTotals(task.ID, 2.0, 1))
	require.NoError(t, st.Tasks.AddTotals(task.ID, -0.5, 0))

	stored, err := st.Tasks.Find(map[string]interface{}{"id": task.ID})
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.InDelta(t, 1.5, stored.Hours, 1e-9)
	assert.Equal(t, 1, stored.Notes)
}

func TestTransactionRollbackDiscardsWrites(t *testing.T) {
	db := setupDB(t)
	user := seedUser(t, db)

	err := db.Transaction(func(tx *gorm.DB) error {
		st := NewStores(tx)
		project := models.Project{UserID: user.ID, Title: "p", Description: "d"}
		if err := st.Projects.Create(&project); err != nil {
			return err
		}
		return fmt.Errorf("force rollback")
	})
	require.Error(t, err)

	var count int64
	require.NoError(t, db.Model(&models.Project{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}
