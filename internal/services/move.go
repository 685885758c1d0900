package services

import (
	"github.com/bcorey85/timestamp-api/internal/models"
	"github.com/bcorey85/timestamp-api/internal/store"
)

// Reparenting helpers. Every load here is a precondition for the counter
// math that follows it, so a missing row aborts the move with ErrNotFound.
// Callers run these inside a transaction.

// moveNoteToNewTask relocates a note between tasks, transferring hours and
// the note count at the task level only. Project totals are left alone;
// when the project changes as well, moveNoteToNewProject handles them.
func moveNoteToNewTask(st *store.Stores, note *models.Note, newTaskID uint, hours float64) (*models.Task, error) {
	oldTask, err := st.Tasks.Find(map[string]interface{}{"id": note.TaskID})
	if err != nil {
		return nil, err
	}
	if oldTask == nil {
		return nil, ErrNotFound
	}
	if err := st.Tasks.AddTotals(oldTask.ID, -hours, -1); err != nil {
		return nil, err
	}

	newTask, err := st.Tasks.Find(map[string]interface{}{"id": newTaskID, "user_id": note.UserID})
	if err != nil {
		return nil, err
	}
	if newTask == nil {
		return nil, ErrNotFound
	}
	if err := st.Tasks.AddTotals(newTask.ID, hours, 1); err != nil {
		return nil, err
	}

	if _, err := st.Notes.Update(note.ID, map[string]interface{}{"task_id": newTask.ID}); err != nil {
		return nil, err
	}
	note.TaskID = newTask.ID
	return newTask, nil
}

// moveNoteToNewProject repoints a note's denormalized project reference.
// The flags control which project totals move with it: a note changing
// tasks within one project must not touch project totals at all, and a
// task-level bulk move transfers totals once for the whole task rather
// than note by note.
func moveNoteToNewProject(st *store.Stores, note *models.Note, newProjectID uint, hours float64, updateNoteTotals, updateHours bool) error {
	oldProject, err := st.Projects.Find(map[string]interface{}{"id": note.ProjectID})
	if err != nil {
		return err
	}
	if oldProject == nil {
		return ErrNotFound
	}

	dHours := 0.0
	if updateHours {
		dHours = hours
	}
	dNotes := 0
	if updateNoteTotals {
		dNotes = 1
	}
	if dHours != 0 || dNotes != 0 {
		if err := st.Projects.AddTotals(oldProject.ID, -dHours, 0, -dNotes); err != nil {
			return err
		}
	}

	newProject, err := st.Projects.Find(map[string]interface{}{"id": newProjectID, "user_id": note.UserID})
	if err != nil {
		return err
	}
	if newProject == nil {
		return ErrNotFound
	}
	if dHours != 0 || dNotes != 0 {
		if err := st.Projects.AddTotals(newProject.ID, dHours, 0, dNotes); err != nil {
			return err
		}
	}

	if _, err := st.Notes.Update(note.ID, map[string]interface{}{"project_id": newProject.ID}); err != nil {
		return err
	}
	note.ProjectID = newProject.ID
	return nil
}

// moveTaskToNewProject relocates a task and everything under it. Project
// totals transfer in bulk from the task's own rollups; the per-note loop
// only fixes each note's denormalized project pointer.
func moveTaskToNewProject(st *store.Stores, task *models.Task, newProjectID uint) error {
	oldProject, err := st.Projects.Find(map[string]interface{}{"id": task.ProjectID})
	if err != nil {
		return err
	}
	if oldProject == nil {
		return ErrNotFound
	}
	if err := st.Projects.AddTotals(oldProject.ID, -task.Hours, -1, -task.Notes); err != nil {
		return err
	}

	newProject, err := st.Projects.Find(map[string]interface{}{"id": newProjectID, "user_id": task.UserID})
	if err != nil {
		return err
	}
	if newProject == nil {
		return ErrNotFound
	}

	notes, err := st.Notes.FindAll(map[string]interface{}{"task_id": task.ID})
	if err != nil {
		return err
	}
	for i := range notes {
		if err := moveNoteToNewProject(st, &notes[i], newProject.ID, notes[i].Hours, false, false); err != nil {
			return err
		}
	}

	if err := st.Projects.AddTotals(newProject.ID, task.Hours, 1, task.Notes); err != nil {
		return err
	}
	if _, err := st.Tasks.Update(task.ID, map[string]interface{}{"project_id": newProject.ID}); err != nil {
		return err
	}
	task.ProjectID = newProject.ID
	return nil
}
