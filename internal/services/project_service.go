package services

import (
	"time"

	"gorm.io/gorm"

	"github.com/bcorey85/timestamp-api/internal/models"
	"github.com/bcorey85/timestamp-api/internal/store"
)

type ProjectService struct {
	db  *gorm.DB
	now func() time.Time
}

func NewProjectService(db *gorm.DB) *ProjectService {
	return &ProjectService{db: db, now: time.Now}
}

func (s *ProjectService) GetProjects(userID uint) ([]models.Project, error) {
	return store.NewStores(s.db).Projects.FindAll(map[string]interface{}{"user_id": userID})
}

func (s *ProjectService) GetProjectByID(projectID, userID uint) (*models.Project, error) {
	project, err := store.NewStores(s.db).Projects.Find(map[string]interface{}{"id": projectID, "user_id": userID})
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, ErrNotFound
	}
	return project, nil
}

func (s *ProjectService) CreateProject(userID uint, req *models.ProjectCreateRequest) (*models.Project, error) {
	project := models.Project{
		UserID:      userID,
		Title:       req.Title,
		Description: req.Description,
		Pinned:      req.Pinned,
	}
	if err := store.NewStores(s.db).Projects.Create(&project); err != nil {
		return nil, err
	}
	return &project, nil
}

func (s *ProjectService) UpdateProject(projectID, userID uint, req *models.ProjectUpdateRequest) (*models.Project, error) {
	st := store.NewStores(s.db)

	project, err := st.Projects.Find(map[string]interface{}{"id": projectID, "user_id": userID})
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, ErrNotFound
	}

	return st.Projects.Update(project.ID, map[string]interface{}{
		"title":       req.Title,
		"description": req.Description,
		"pinned":      req.Pinned,
	})
}

// DeleteProject removes the project. Tasks and notes under it are removed
// by the storage-level cascade; no rollups outlive the project itself.
func (s *ProjectService) DeleteProject(projectID, userID uint) error {
	st := store.NewStores(s.db)

	project, err := st.Projects.Find(map[string]interface{}{"id": projectID, "user_id": userID})
	if err != nil {
		return err
	}
	if project == nil {
		return ErrNotFound
	}
	return st.Projects.Delete(project.ID)
}

// CompleteProject toggles the project's completion state and cascades to
// every task and note under it.
func (s *ProjectService) CompleteProject(projectID, userID uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		st := store.NewStores(tx)

		project, err := st.Projects.Find(map[string]interface{}{"id": projectID, "user_id": userID})
		if err != nil {
			return err
		}
		if project == nil {
			return ErrNotFound
		}
		return completeProject(st, s.now(), project)
	})
}
