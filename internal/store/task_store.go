package store

import (
	"errors"

	"gorm.io/gorm"

	"github.com/bcorey85/timestamp-api/internal/models"
)

type TaskStore struct {
	db *gorm.DB
}

func NewTaskStore(db *gorm.DB) *TaskStore {
	return &TaskStore{db: db}
}

func (s *TaskStore) Create(task *models.Task) error {
	return s.db.Create(task).Error
}

func (s *TaskStore) Find(criteria map[string]interface{}) (*models.Task, error) {
	var task models.Task
	err := s.db.Where(criteria).First(&task).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &task, nil
}

func (s *TaskStore) FindAll(criteria map[string]interface{}) ([]models.Task, error) {
	var tasks []models.Task
	if err := s.db.Where(criteria).Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

func (s *TaskStore) Update(id uint, fields map[string]interface{}) (*models.Task, error) {
	if err := s.db.Model(&models.Task{}).Where("id = ?", id).Updates(fields).Error; err != nil {
		return nil, err
	}
	return s.Find(map[string]interface{}{"id": id})
}

func (s *TaskStore) Delete(id uint) error {
	return s.db.Delete(&models.Task{}, id).Error
}

func (s *TaskStore) AddTotals(id uint, hours float64, notes int) error {
	return s.db.Model(&models.Task{}).Where("id = ?", id).Updates(map[string]interface{}{
		"hours": gorm.Expr("hours + ?", hours),
		"notes": gorm.Expr("notes + ?", notes),
	}).Error
}
