package services

import (
	"time"

	"gorm.io/gorm"

	"github.com/bcorey85/timestamp-api/internal/models"
	"github.com/bcorey85/timestamp-api/internal/store"
)

type NoteService struct {
	db  *gorm.DB
	now func() time.Time
}

func NewNoteService(db *gorm.DB) *NoteService {
	return &NoteService{db: db, now: time.Now}
}

func (s *NoteService) GetNotes(userID uint) ([]models.Note, error) {
	return store.NewStores(s.db).Notes.FindAll(map[string]interface{}{"user_id": userID})
}

func (s *NoteService) GetNoteByID(noteID, userID uint) (*models.Note, error) {
	note, err := store.NewStores(s.db).Notes.Find(map[string]interface{}{"id": noteID, "user_id": userID})
	if err != nil {
		return nil, err
	}
	if note == nil {
		return nil, ErrNotFound
	}
	return note, nil
}

// CreateNote inserts a note and rolls its hours and note count up into the
// parent task and project.
func (s *NoteService) CreateNote(userID uint, req *models.NoteCreateRequest) (*models.Note, error) {
	var note models.Note

	err := s.db.Transaction(func(tx *gorm.DB) error {
		st := store.NewStores(tx)

		project, err := st.Projects.Find(map[string]interface{}{"id": req.ProjectID, "user_id": userID})
		if err != nil {
			return err
		}
		if project == nil {
			return ErrNotFound
		}

		task, err := st.Tasks.Find(map[string]interface{}{"id": req.TaskID, "user_id": userID})
		if err != nil {
			return err
		}
		if task == nil {
			return ErrNotFound
		}
		if task.ProjectID != project.ID {
			return ErrBadRequest
		}

		hours := CalcHours(req.StartTime, req.EndTime)

		if err := st.Projects.AddTotals(project.ID, hours, 0, 1); err != nil {
			return err
		}
		if err := st.Tasks.AddTotals(task.ID, hours, 1); err != nil {
			return err
		}

		note = models.Note{
			UserID:      userID,
			ProjectID:   project.ID,
			TaskID:      task.ID,
			Title:       req.Title,
			Description: req.Description,
			Tags:        MergeTags(req.Tags),
			StartTime:   req.StartTime,
			EndTime:     req.EndTime,
			Hours:       hours,
			Pinned:      req.Pinned,
		}
		return st.Notes.Create(&note)
	})
	if err != nil {
		return nil, err
	}
	return &note, nil
}

// UpdateNote merges field changes, recomputes hours when the time range
// moved, and reparents the note when the task changed. The note's project
// always follows its task, so a task move across projects also transfers
// the project-level totals.
func (s *NoteService) UpdateNote(noteID, userID uint, req *models.NoteUpdateRequest) (*models.Note, error) {
	var updated *models.Note

	err := s.db.Transaction(func(tx *gorm.DB) error {
		st := store.NewStores(tx)

		note, err := st.Notes.Find(map[string]interface{}{"id": noteID, "user_id": userID})
		if err != nil {
			return err
		}
		if note == nil {
			return ErrNotFound
		}

		oldHours := note.Hours
		newHours := CalcHours(req.StartTime, req.EndTime)

		if req.TaskID != note.TaskID {
			oldProjectID := note.ProjectID
			newTask, err := moveNoteToNewTask(st, note, req.TaskID, oldHours)
			if err != nil {
				return err
			}
			if newTask.ProjectID != oldProjectID {
				if err := moveNoteToNewProject(st, note, newTask.ProjectID, oldHours, true, true); err != nil {
					return err
				}
			}
		}

		if delta := newHours - oldHours; delta != 0 {
			if err := st.Tasks.AddTotals(note.TaskID, delta, 0); err != nil {
				return err
			}
			if err := st.Projects.AddTotals(note.ProjectID, delta, 0, 0); err != nil {
				return err
			}
		}

		updated, err = st.Notes.Update(note.ID, map[string]interface{}{
			"title":       req.Title,
			"description": req.Description,
			"tags":        MergeTags(req.Tags),
			"start_time":  req.StartTime,
			"end_time":    req.EndTime,
			"hours":       newHours,
			"pinned":      req.Pinned,
		})
		return err
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// DeleteNote removes the note after subtracting its stored hours and its
// note count from the parent task and project.
func (s *NoteService) DeleteNote(noteID, userID uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		st := store.NewStores(tx)

		note, err := st.Notes.Find(map[string]interface{}{"id": noteID, "user_id": userID})
		if err != nil {
			return err
		}
		if note == nil {
			return ErrNotFound
		}

		task, err := st.Tasks.Find(map[string]interface{}{"id": note.TaskID})
		if err != nil {
			return err
		}
		if task == nil {
			return ErrNotFound
		}
		if err := st.Tasks.AddTotals(task.ID, -note.Hours, -1); err != nil {
			return err
		}

		project, err := st.Projects.Find(map[string]interface{}{"id": note.ProjectID})
		if err != nil {
			return err
		}
		if project == nil {
			return ErrNotFound
		}
		if err := st.Projects.AddTotals(project.ID, -note.Hours, 0, -1); err != nil {
			return err
		}

		return st.Notes.Delete(note.ID)
	})
}

// CompleteNote toggles the note's completion state with the user origin.
func (s *NoteService) CompleteNote(noteID, userID uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		st := store.NewStores(tx)

		note, err := st.Notes.Find(map[string]interface{}{"id": noteID, "user_id": userID})
		if err != nil {
			return err
		}
		if note == nil {
			return ErrNotFound
		}
		return completeNote(st, s.now(), note)
	})
}
