package models

import "time"

type Project struct {
	ID          uint       `json:"id" gorm:"primaryKey"`
	UserID      uint       `json:"user_id" gorm:"not null;index"`
	Title       string     `json:"title" gorm:"size:1000;not null"`
	Description string     `json:"description" gorm:"type:text;not null"`
	Pinned      bool       `json:"pinned" gorm:"default:false"`
	Hours       float64    `json:"hours" gorm:"not null;default:0"`
	Tasks       int        `json:"tasks" gorm:"not null;default:0"`
	Notes       int        `json:"notes" gorm:"not null;default:0"`
	CompletedOn *time.Time `json:"completed_on"`
	CompletedBy *string    `json:"completed_by" gorm:"size:20"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`

	User User `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

type ProjectCreateRequest struct {
	Title       string `json:"title" validate:"required,max=1000"`
	Description string `json:"description" validate:"required"`
	Pinned      bool   `json:"pinned"`
}

type ProjectUpdateRequest struct {
	Title       string `json:"title" validate:"required,max=1000"`
	Description string `json:"description" validate:"required"`
	Pinned      bool   `json:"pinned"`
}
