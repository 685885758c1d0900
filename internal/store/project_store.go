package store

import (
	"errors"

	"gorm.io/gorm"

	"github.com/bcorey85/timestamp-api/internal/models"
)

type ProjectStore struct {
	db *gorm.DB
}

func NewProjectStore(db *gorm.DB) *ProjectStore {
	return &ProjectStore{db: db}
}

func (s *ProjectStore) Create(project *models.Project) error {
	return s.db.Create(project).Error
}

func (s *ProjectStore) Find(criteria map[string]interface{}) (*models.Project, error) {
	var project models.Project
	err := s.db.Where(criteria).First(&project).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &project, nil
}

func (s *ProjectStore) FindAll(criteria map[string]interface{}) ([]models.Project, error) {
	var projects []models.Project
	if err := s.db.Where(criteria).Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}

func (s *ProjectStore) Update(id uint, fields map[string]interface{}) (*models.Project, error) {
	if err := s.db.Model(&models.Project{}).Where("id = ?", id).Updates(fields).Error; err != nil {
		return nil, err
	}
	return s.Find(map[string]interface{}{"id": id})
}

func (s *ProjectStore) Delete(id uint) error {
	return s.db.Delete(&models.Project{}, id).Error
}

// AddTotals applies rollup deltas atomically in the database, so two
// concurrent mutations can never lose an increment.
func (s *ProjectStore) AddTotals(id uint, hours float64, tasks, notes int) error {
	return s.db.Model(&models.Project{}).Where("id = ?", id).Updates(map[string]interface{}{
		"hours": gorm.Expr("hours + ?", hours),
		"tasks": gorm.Expr("tasks + ?", tasks),
		"notes": gorm.Expr("notes + ?", notes),
	}).Error
}
