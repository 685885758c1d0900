package models

import "time"

// Note is a single logged time entry. ProjectID is denormalized from the
// parent task and must always match that task's project.
type Note struct {
	ID          uint       `json:"id" gorm:"primaryKey"`
	UserID      uint       `json:"user_id" gorm:"not null;index"`
	ProjectID   uint       `json:"project_id" gorm:"not null;index"`
	TaskID      uint       `json:"task_id" gorm:"not null;index"`
	Title       string     `json:"title" gorm:"size:1000;not null"`
	Description string     `json:"description" gorm:"type:text;not null"`
	Tags        *string    `json:"tags" gorm:"size:1000"`
	StartTime   time.Time  `json:"start_time" gorm:"not null"`
	EndTime     time.Time  `json:"end_time" gorm:"not null"`
	Hours       float64    `json:"hours" gorm:"not null;default:0"`
	Pinned      bool       `json:"pinned" gorm:"default:false"`
	CompletedOn *time.Time `json:"completed_on"`
	CompletedBy *string    `json:"completed_by" gorm:"size:20"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`

	User    User    `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Project Project `json:"-" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
	Task    Task    `json:"-" gorm:"foreignKey:TaskID;constraint:OnDelete:CASCADE"`
}

type NoteCreateRequest struct {
	Title       string    `json:"title" validate:"required,max=1000"`
	Description string    `json:"description" validate:"required"`
	ProjectID   uint      `json:"project_id" validate:"required"`
	TaskID      uint      `json:"task_id" validate:"required"`
	Tags        []string  `json:"tags"`
	StartTime   time.Time `json:"start_time" validate:"required"`
	EndTime     time.Time `json:"end_time" validate:"required"`
	Pinned      bool      `json:"pinned"`
}

type NoteUpdateRequest struct {
	Title       string    `json:"title" validate:"required,max=1000"`
	Description string    `json:"description" validate:"required"`
	TaskID      uint      `json:"task_id" validate:"required"`
	Tags        []string  `json:"tags"`
	StartTime   time.Time `json:"start_time" validate:"required"`
	EndTime     time.Time `json:"end_time" validate:"required"`
	Pinned      bool      `json:"pinned"`
}
