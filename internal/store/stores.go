// Package store provides typed CRUD access to the persistent entities.
// Absence is reported as a nil record, not an error; callers decide
// whether a missing row is a failure.
package store

import "gorm.io/gorm"

type Stores struct {
	Users    *UserStore
	Projects *ProjectStore
	Tasks    *TaskStore
	Notes    *NoteStore
}

func NewStores(db *gorm.DB) *Stores {
	return &Stores{
		Users:    NewUserStore(db),
		Projects: NewProjectStore(db),
		Tasks:    NewTaskStore(db),
		Notes:    NewNoteStore(db),
	}
}
