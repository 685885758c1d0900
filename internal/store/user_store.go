package store

import (
	"errors"

	"gorm.io/gorm"

	"github.com/bcorey85/timestamp-api/internal/models"
)

type UserStore struct {
	db *gorm.DB
}

func NewUserStore(db *gorm.DB) *UserStore {
	return &UserStore{db: db}
}

func (s *UserStore) Create(user *models.User) error {
	return s.db.Create(user).Error
}

func (s *UserStore) Find(criteria map[string]interface{}) (*models.User, error) {
	var user models.User
	err := s.db.Where(criteria).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *UserStore) FindAll(criteria map[string]interface{}) ([]models.User, error) {
	var users []models.User
	if err := s.db.Where(criteria).Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// Update merges the given fields. The password column can never be set
// through this path; password changes go through UpdatePassword so the
// hashing step cannot be bypassed.
func (s *UserStore) Update(id uint, fields map[string]interface{}) (*models.User, error) {
	delete(fields, "password")
	if len(fields) > 0 {
		if err := s.db.Model(&models.User{}).Where("id = ?", id).Updates(fields).Error; err != nil {
			return nil, err
		}
	}
	return s.Find(map[string]interface{}{"id": id})
}

func (s *UserStore) UpdatePassword(id uint, hashedPassword string) error {
	return s.db.Model(&models.User{}).Where("id = ?", id).
		Update("password", hashedPassword).Error
}

func (s *UserStore) Delete(id uint) error {
	return s.db.Delete(&models.User{}, id).Error
}
