package services

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/bcorey85/timestamp-api/internal/database"
	"github.com/bcorey85/timestamp-api/internal/models"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()

	// A named shared-cache database so every pooled connection sees the
	// same in-memory store.
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=1", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db))
	return db
}

func createTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()

	user := models.User{
		Email:     fmt.Sprintf("%s@example.com", uuid.NewString()),
		Password:  "hashed-password",
		LastLogin: time.Now(),
	}
	require.NoError(t, db.Create(&user).Error)
	return &user
}

func createTestProject(t *testing.T, db *gorm.DB, userID uint) *models.Project {
	t.Helper()

	svc := NewProjectService(db)
	project, err := svc.CreateProject(userID, &models.ProjectCreateRequest{
		Title:       "Test Project",
		Description: "A project",
	})
	require.NoError(t, err)
	return project
}

func createTestTask(t *testing.T, db *gorm.DB, userID, projectID uint) *models.Task {
	t.Helper()

	svc := NewTaskService(db)
	task, err := svc.CreateTask(userID, &models.TaskCreateRequest{
		Title:       "Test Task",
		Description: "A task",
		ProjectID:   projectID,
	})
	require.NoError(t, err)
	return task
}

func createTestNote(t *testing.T, db *gorm.DB, userID, projectID, taskID uint, start, end time.Time) *models.Note {
	t.Helper()

	svc := NewNoteService(db)
	note, err := svc.CreateNote(userID, &models.NoteCreateRequest{
		Title:       "Test Note",
		Description: "A note",
		ProjectID:   projectID,
		TaskID:      taskID,
		StartTime:   start,
		EndTime:     end,
	})
	require.NoError(t, err)
	return note
}

func reloadProject(t *testing.T, db *gorm.DB, id uint) *models.Project {
	t.Helper()

	var project models.Project
	require.NoError(t, db.First(&project, id).Error)
	return &project
}

func reloadTask(t *testing.T, db *gorm.DB, id uint) *models.Task {
	t.Helper()

	var task models.Task
	require.NoError(t, db.First(&task, id).Error)
	return &task
}

func reloadNote(t *testing.T, db *gorm.DB, id uint) *models.Note {
	t.Helper()

	var note models.Note
	require.NoError(t, db.First(&note, id).Error)
	return &note
}

// assertRollupsConsistent recomputes every rollup from the note rows and
// compares against the stored counters.
func assertRollupsConsistent(t *testing.T, db *gorm.DB) {
	t.Helper()

	var tasks []models.Task
	require.NoError(t, db.Find(&tasks).Error)
	for _, task := range tasks {
		var notes []models.Note
		require.NoError(t, db.Where("task_id = ?", task.ID).Find(&notes).Error)

		var hours float64
		for _, n := range notes {
			hours += n.Hours
		}
		require.InDelta(t, hours, task.Hours, 1e-9, "task %d hours", task.ID)
		require.Equal(t, len(notes), task.Notes, "task %d notes", task.ID)
	}

	var projects []models.Project
	require.NoError(t, db.Find(&projects).Error)
	for _, project := range projects {
		var notes []models.Note
		require.NoError(t, db.Where("project_id = ?", project.ID).Find(&notes).Error)

		var hours float64
		for _, n := range notes {
			hours += n.Hours
		}
		require.InDelta(t, hours, project.Hours, 1e-9, "project %d hours", project.ID)
		require.Equal(t, len(notes), project.Notes, "project %d notes", project.ID)

		var taskCount int64
		require.NoError(t, db.Model(&models.Task{}).Where("project_id = ?", project.ID).Count(&taskCount).Error)
		require.Equal(t, int(taskCount), project.Tasks, "project %d tasks", project.ID)
	}
}
