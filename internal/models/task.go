package models

import "time"

type Task struct {
	ID          uint       `json:"id" gorm:"primaryKey"`
	UserID      uint       `json:"user_id" gorm:"not null;index"`
	ProjectID   uint       `json:"project_id" gorm:"not null;index"`
	Title       string     `json:"title" gorm:"size:1000;not null"`
	Description string     `json:"description" gorm:"type:text"`
	Tags        *string    `json:"tags" gorm:"size:1000"`
	Pinned      bool       `json:"pinned" gorm:"default:false"`
	Hours       float64    `json:"hours" gorm:"not null;default:0"`
	Notes       int        `json:"notes" gorm:"not null;default:0"`
	CompletedOn *time.Time `json:"completed_on"`
	CompletedBy *string    `json:"completed_by" gorm:"size:20"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`

	User    User    `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Project Project `json:"-" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
}

type TaskCreateRequest struct {
	Title       string   `json:"title" validate:"required,max=1000"`
	Description string   `json:"description" validate:"required"`
	ProjectID   uint     `json:"project_id" validate:"required"`
	Tags        []string `json:"tags"`
	Pinned      bool     `json:"pinned"`
}

type TaskUpdateRequest struct {
	Title       string   `json:"title" validate:"required,max=1000"`
	Description string   `json:"description" validate:"required"`
	ProjectID   uint     `json:"project_id" validate:"required"`
	Tags        []string `json:"tags"`
	Pinned      bool     `json:"pinned"`
}
