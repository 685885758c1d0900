package services

import (
	"time"

	"gorm.io/gorm"

	"github.com/bcorey85/timestamp-api/internal/models"
	"github.com/bcorey85/timestamp-api/internal/store"
)

type TaskService struct {
	db  *gorm.DB
	now func() time.Time
}

func NewTaskService(db *gorm.DB) *TaskService {
	return &TaskService{db: db, now: time.Now}
}

func (s *TaskService) GetTasks(userID uint) ([]models.Task, error) {
	return store.NewStores(s.db).Tasks.FindAll(map[string]interface{}{"user_id": userID})
}

func (s *TaskService) GetTaskByID(taskID, userID uint) (*models.Task, error) {
	task, err := store.NewStores(s.db).Tasks.Find(map[string]interface{}{"id": taskID, "user_id": userID})
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, ErrNotFound
	}
	return task, nil
}

func (s *TaskService) CreateTask(userID uint, req *models.TaskCreateRequest) (*models.Task, error) {
	var task models.Task

	err := s.db.Transaction(func(tx *gorm.DB) error {
		st := store.NewStores(tx)

		project, err := st.Projects.Find(map[string]interface{}{"id": req.ProjectID, "user_id": userID})
		if err != nil {
			return err
		}
		if project == nil {
			return ErrNotFound
		}

		task = models.Task{
			UserID:      userID,
			ProjectID:   project.ID,
			Title:       req.Title,
			Description: req.Description,
			Tags:        MergeTags(req.Tags),
			Pinned:      req.Pinned,
		}
		if err := st.Tasks.Create(&task); err != nil {
			return err
		}
		return st.Projects.AddTotals(project.ID, 0, 1, 0)
	})
	if err != nil {
		return nil, err
	}
	return &task, nil
}

// UpdateTask merges field changes and, when the project reference changed,
// relocates the task with all of its notes to the new project.
func (s *TaskService) UpdateTask(taskID, userID uint, req *models.TaskUpdateRequest) (*models.Task, error) {
	var updated *models.Task

	err := s.db.Transaction(func(tx *gorm.DB) error {
		st := store.NewStores(tx)

		task, err := st.Tasks.Find(map[string]interface{}{"id": taskID, "user_id": userID})
		if err != nil {
			return err
		}
		if task == nil {
			return ErrNotFound
		}

		if req.ProjectID != task.ProjectID {
			if err := moveTaskToNewProject(st, task, req.ProjectID); err != nil {
				return err
			}
		}

		updated, err = st.Tasks.Update(task.ID, map[string]interface{}{
			"title":       req.Title,
			"description": req.Description,
			"tags":        MergeTags(req.Tags),
			"pinned":      req.Pinned,
		})
		return err
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// DeleteTask subtracts everything the task contributed to its project
// before the row removal cascades to the task's notes at the storage layer.
func (s *TaskService) DeleteTask(taskID, userID uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		st := store.NewStores(tx)

		task, err := st.Tasks.Find(map[string]interface{}{"id": taskID, "user_id": userID})
		if err != nil {
			return err
		}
		if task == nil {
			return ErrNotFound
		}

		project, err := st.Projects.Find(map[string]interface{}{"id": task.ProjectID})
		if err != nil {
			return err
		}
		if project == nil {
			return ErrNotFound
		}
		if err := st.Projects.AddTotals(project.ID, -task.Hours, -1, -task.Notes); err != nil {
			return err
		}

		return st.Tasks.Delete(task.ID)
	})
}

// CompleteTask toggles the task's completion state with the user origin
// and cascades to its notes.
func (s *TaskService) CompleteTask(taskID, userID uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		st := store.NewStores(tx)

		task, err := st.Tasks.Find(map[string]interface{}{"id": taskID, "user_id": userID})
		if err != nil {
			return err
		}
		if task == nil {
			return ErrNotFound
		}
		return completeTask(st, s.now(), task, models.CompletedByUser)
	})
}
