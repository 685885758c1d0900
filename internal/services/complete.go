package services

import (
	"time"

	"github.com/bcorey85/timestamp-api/internal/models"
	"github.com/bcorey85/timestamp-api/internal/store"
)

// Completion is a toggle: an open entity completes with the given origin
// tag, a completed one reopens. Cascades flow down only, complete only
// children that are still open, and on reopen undo only the records the
// same cascade produced. A completion the user made directly is never
// touched from above.

func completeProject(st *store.Stores, now time.Time, project *models.Project) error {
	childTasks, err := st.Tasks.FindAll(map[string]interface{}{"project_id": project.ID})
	if err != nil {
		return err
	}
	childNotes, err := st.Notes.FindAll(map[string]interface{}{"project_id": project.ID})
	if err != nil {
		return err
	}

	if project.CompletedOn == nil {
		if _, err := st.Projects.Update(project.ID, map[string]interface{}{
			"completed_on": now,
			"completed_by": models.CompletedByUser,
		}); err != nil {
			return err
		}
		for i := range childTasks {
			if childTasks[i].CompletedBy != nil {
				continue
			}
			if _, err := st.Tasks.Update(childTasks[i].ID, map[string]interface{}{
				"completed_on": now,
				"completed_by": models.CompletedByProject,
			}); err != nil {
				return err
			}
		}
		for i := range childNotes {
			if childNotes[i].CompletedBy != nil {
				continue
			}
			if _, err := st.Notes.Update(childNotes[i].ID, map[string]interface{}{
				"completed_on": now,
				"completed_by": models.CompletedByProject,
			}); err != nil {
				return err
			}
		}
		return nil
	}

	if _, err := st.Projects.Update(project.ID, map[string]interface{}{
		"completed_on": nil,
		"completed_by": nil,
	}); err != nil {
		return err
	}
	for i := range childTasks {
		if childTasks[i].CompletedBy == nil || *childTasks[i].CompletedBy != models.CompletedByProject {
			continue
		}
		if _, err := st.Tasks.Update(childTasks[i].ID, map[string]interface{}{
			"completed_on": nil,
			"completed_by": nil,
		}); err != nil {
			return err
		}
	}
	for i := range childNotes {
		if childNotes[i].CompletedBy == nil || *childNotes[i].CompletedBy != models.CompletedByProject {
			continue
		}
		if _, err := st.Notes.Update(childNotes[i].ID, map[string]interface{}{
			"completed_on": nil,
			"completed_by": nil,
		}); err != nil {
			return err
		}
	}
	return nil
}

func completeTask(st *store.Stores, now time.Time, task *models.Task, completedBy string) error {
	childNotes, err := st.Notes.FindAll(map[string]interface{}{"task_id": task.ID})
	if err != nil {
		return err
	}

	if task.CompletedOn == nil {
		if _, err := st.Tasks.Update(task.ID, map[string]interface{}{
			"completed_on": now,
			"completed_by": completedBy,
		}); err != nil {
			return err
		}
		for i := range childNotes {
			if childNotes[i].CompletedBy != nil {
				continue
			}
			if _, err := st.Notes.Update(childNotes[i].ID, map[string]interface{}{
				"completed_on": now,
				"completed_by": models.CompletedByTask,
			}); err != nil {
				return err
			}
		}
		return nil
	}

	if _, err := st.Tasks.Update(task.ID, map[string]interface{}{
		"completed_on": nil,
		"completed_by": nil,
	}); err != nil {
		return err
	}
	for i := range childNotes {
		if childNotes[i].CompletedBy == nil || *childNotes[i].CompletedBy != models.CompletedByTask {
			continue
		}
		if _, err := st.Notes.Update(childNotes[i].ID, map[string]interface{}{
			"completed_on": nil,
			"completed_by": nil,
		}); err != nil {
			return err
		}
	}
	return nil
}

// completeNote toggles a note's own completion state. Notes have no
// children, so there is nothing to cascade.
func completeNote(st *store.Stores, now time.Time, note *models.Note) error {
	if note.CompletedOn == nil {
		_, err := st.Notes.Update(note.ID, map[string]interface{}{
			"completed_on": now,
			"completed_by": models.CompletedByUser,
		})
		return err
	}
	_, err := st.Notes.Update(note.ID, map[string]interface{}{
		"completed_on": nil,
		"completed_by": nil,
	})
	return err
}
