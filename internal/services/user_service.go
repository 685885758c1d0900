package services

import (
	"sort"
	"time"

	"gorm.io/gorm"

	"github.com/bcorey85/timestamp-api/internal/models"
	"github.com/bcorey85/timestamp-api/internal/store"
	"github.com/bcorey85/timestamp-api/internal/utils"
)

const recentItemCount = 6

type UserService struct {
	db  *gorm.DB
	now func() time.Time
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db, now: time.Now}
}

type RecentItems struct {
	Projects []models.Project `json:"projects"`
	Tasks    []models.Task    `json:"tasks"`
	Notes    []models.Note    `json:"notes"`
}

type UserData struct {
	ID          uint             `json:"id"`
	Email       string           `json:"email"`
	LastLogin   time.Time        `json:"last_login"`
	CreatedAt   time.Time        `json:"created_at"`
	Hours       float64          `json:"hours"`
	Projects    []models.Project `json:"projects"`
	Tasks       []models.Task    `json:"tasks"`
	Notes       []models.Note    `json:"notes"`
	RecentItems RecentItems      `json:"recent_items"`
}

// GetUserData assembles the dashboard payload: every item the user owns,
// total logged hours, and the most recently touched items per kind. A
// brand new account gets a seeded tutorial hierarchy instead.
func (s *UserService) GetUserData(user *models.User) (*UserData, error) {
	st := store.NewStores(s.db)
	criteria := map[string]interface{}{"user_id": user.ID}

	projects, err := st.Projects.FindAll(criteria)
	if err != nil {
		return nil, err
	}
	tasks, err := st.Tasks.FindAll(criteria)
	if err != nil {
		return nil, err
	}
	notes, err := st.Notes.FindAll(criteria)
	if err != nil {
		return nil, err
	}

	isInitialLogin := s.now().Sub(user.CreatedAt) < 2*time.Second
	if isInitialLogin && len(projects) == 0 {
		project, task, note, err := s.seedTutorialData(user.ID)
		if err != nil {
			return nil, err
		}
		projects = []models.Project{*project}
		tasks = []models.Task{*task}
		notes = []models.Note{*note}
	}

	return &UserData{
		ID:        user.ID,
		Email:     user.Email,
		LastLogin: user.LastLogin,
		CreatedAt: user.CreatedAt,
		Hours:     totalHours(notes),
		Projects:  projects,
		Tasks:     tasks,
		Notes:     notes,
		RecentItems: RecentItems{
			Projects: recentProjects(projects),
			Tasks:    recentTasks(tasks),
			Notes:    recentNotes(notes),
		},
	}, nil
}

// UpdateUser changes the email and/or the password. Password changes go
// through the dedicated hashing path; the generic update cannot set one.
func (s *UserService) UpdateUser(userID uint, req *models.UserUpdateRequest) (*models.User, error) {
	st := store.NewStores(s.db)

	user, err := st.Users.Find(map[string]interface{}{"id": userID})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrNotFound
	}

	if req.Password != nil {
		hashed, err := utils.HashPassword(*req.Password)
		if err != nil {
			return nil, err
		}
		if err := st.Users.UpdatePassword(user.ID, hashed); err != nil {
			return nil, err
		}
	}

	if req.Email != nil && *req.Email != user.Email {
		existing, err := st.Users.Find(map[string]interface{}{"email": *req.Email})
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, ErrEmailInUse
		}
		return st.Users.Update(user.ID, map[string]interface{}{"email": *req.Email})
	}

	return st.Users.Find(map[string]interface{}{"id": user.ID})
}

func (s *UserService) DeleteUser(userID uint) error {
	st := store.NewStores(s.db)

	user, err := st.Users.Find(map[string]interface{}{"id": userID})
	if err != nil {
		return err
	}
	if user == nil {
		return ErrNotFound
	}
	return st.Users.Delete(user.ID)
}

// seedTutorialData creates the demo project/task/note a new account sees
// on first login, with rollups already consistent.
func (s *UserService) seedTutorialData(userID uint) (*models.Project, *models.Task, *models.Note, error) {
	var (
		project models.Project
		task    models.Task
		note    models.Note
	)

	err := s.db.Transaction(func(tx *gorm.DB) error {
		st := store.NewStores(tx)
		now := s.now()

		project = models.Project{
			UserID:      userID,
			Title:       "I'm a Project",
			Description: `Projects are the "big goals" of Timestamp. Start by creating one for any long-term goal that you want to achieve and get to work!`,
			Pinned:      true,
		}
		if err := st.Projects.Create(&project); err != nil {
			return err
		}

		task = models.Task{
			UserID:      userID,
			ProjectID:   project.ID,
			Title:       "I'm a Task",
			Description: "Tasks divide your Project into bite-sized chunks. They can help you stay organized, focused, and motivated to achieve your goals.",
			Tags:        MergeTags([]string{"#demo", "#task", "#tags"}),
			Pinned:      true,
		}
		if err := st.Tasks.Create(&task); err != nil {
			return err
		}

		note = models.Note{
			UserID:      userID,
			ProjectID:   project.ID,
			TaskID:      task.ID,
			Title:       "I'm a Note",
			Description: "Notes allow you to input daily progress towards your goals. They track how much time you invest each day and document your growth.",
			Tags:        MergeTags([]string{"#demo", "#note", "#tags"}),
			StartTime:   now,
			EndTime:     now.Add(time.Hour),
			Hours:       1,
			Pinned:      true,
		}
		if err := st.Notes.Create(&note); err != nil {
			return err
		}

		if err := st.Projects.AddTotals(project.ID, 1, 1, 1); err != nil {
			return err
		}
		if err := st.Tasks.AddTotals(task.ID, 1, 1); err != nil {
			return err
		}

		project.Hours, project.Tasks, project.Notes = 1, 1, 1
		task.Hours, task.Notes = 1, 1
		return nil
	})
	if err != nil {
		return nil, nil, nil, err
	}
	return &project, &task, &note, nil
}

func totalHours(notes []models.Note) float64 {
	var hours float64
	for i := range notes {
		hours += notes[i].Hours
	}
	return hours
}

func recentProjects(projects []models.Project) []models.Project {
	sorted := make([]models.Project, len(projects))
	copy(sorted, projects)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].UpdatedAt.After(sorted[j].UpdatedAt)
	})
	if len(sorted) > recentItemCount {
		sorted = sorted[:recentItemCount]
	}
	return sorted
}

func recentTasks(tasks []models.Task) []models.Task {
	sorted := make([]models.Task, len(tasks))
	copy(sorted, tasks)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].UpdatedAt.After(sorted[j].UpdatedAt)
	})
	if len(sorted) > recentItemCount {
		sorted = sorted[:recentItemCount]
	}
	return sorted
}

func recentNotes(notes []models.Note) []models.Note {
	sorted := make([]models.Note, len(notes))
	copy(sorted, notes)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].UpdatedAt.After(sorted[j].UpdatedAt)
	})
	if len(sorted) > recentItemCount {
		sorted = sorted[:recentItemCount]
	}
	return sorted
}
