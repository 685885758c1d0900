package store

import (
	"errors"

	"gorm.io/gorm"

	"github.com/bcorey85/timestamp-api/internal/models"
)

type NoteStore struct {
	db *gorm.DB
}

func NewNoteStore(db *gorm.DB) *NoteStore {
	return &NoteStore{db: db}
}

func (s *NoteStore) Create(note *models.Note) error {
	return s.db.Create(note).Error
}

func (s *NoteStore) Find(criteria map[string]interface{}) (*models.Note, error) {
	var note models.Note
	err := s.db.Where(criteria).First(&note).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &note, nil
}

func (s *NoteStore) FindAll(criteria map[string]interface{}) ([]models.Note, error) {
	var notes []models.Note
	if err := s.db.Where(criteria).Find(&notes).Error; err != nil {
		return nil, err
	}
	return notes, nil
}

func (s *NoteStore) Update(id uint, fields map[string]interface{}) (*models.Note, error) {
	if err := s.db.Model(&models.Note{}).Where("id = ?", id).Updates(fields).Error; err != nil {
		return nil, err
	}
	return s.Find(map[string]interface{}{"id": id})
}

func (s *NoteStore) Delete(id uint) error {
	return s.db.Delete(&models.Note{}, id).Error
}
