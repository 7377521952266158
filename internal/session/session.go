// Package session holds the per-user state around one generated course: the
// editable suggested resources, developer mode, the active tab, the export
// menu and the single-export-in-flight guard.
package session

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/VictoriaCloud360/CursoAPP/internal/course"
	"github.com/VictoriaCloud360/CursoAPP/internal/grading"
)

var (
	ErrNotFound         = errors.New("session not found")
	ErrDevModeRequired  = errors.New("developer mode is off")
	ErrExportInFlight   = errors.New("an export is already running")
	ErrResourceIndex    = errors.New("resource index out of range")
	ErrResourceField    = errors.New("resource field must be title or url")
	ErrUnknownTab       = errors.New("unknown tab")
	ErrIncompleteQuiz   = errors.New("every question needs an answer")
	ErrAnswerOutOfRange = errors.New("answer index out of range")
)

// Resource fields accepted by UpdateResource.
const (
	FieldTitle = "title"
	FieldURL   = "url"
)

type Session struct {
	ID        string
	CreatedAt time.Time

	mu         sync.RWMutex
	course     course.Course
	resources  []course.Resource
	devMode    bool
	menuOpen   bool
	activeTab  string
	lastResult *grading.Result

	exporting sync.Mutex
}

func New(id string, c course.Course, now time.Time) *Session {
	return &Session{
		ID:        id,
		CreatedAt: now,
		course:    c,
		resources: course.DefaultResources(),
		activeTab: course.ModuleTab(0),
	}
}

// View is a point-in-time copy of the session for rendering.
type View struct {
	ID         string            `json:"id"`
	CreatedAt  time.Time         `json:"created_at"`
	Course     course.Course     `json:"course"`
	Resources  []course.Resource `json:"resources"`
	DevMode    bool              `json:"dev_mode"`
	ActiveTab  string            `json:"active_tab"`
	MenuOpen   bool              `json:"menu_open"`
	LastResult *grading.Result   `json:"last_result,omitempty"`
}

func (s *Session) View() View {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v := View{
		ID:        s.ID,
		CreatedAt: s.CreatedAt,
		Course:    s.course,
		Resources: course.CloneResources(s.resources),
		DevMode:   s.devMode,
		ActiveTab: s.activeTab,
		MenuOpen:  s.menuOpen,
	}
	if s.lastResult != nil {
		r := *s.lastResult
		v.LastResult = &r
	}
	return v
}

// Course is read-only for every caller.
func (s *Session) Course() course.Course {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.course
}

func (s *Session) Resources() []course.Resource {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return course.CloneResources(s.resources)
}

// ---- developer mode ----

func (s *Session) DevMode() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.devMode
}

func (s *Session) ToggleDevMode() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.devMode = !s.devMode
	return s.devMode
}

func (s *Session) SetDevMode(on bool) {
	s.mu.Lock()
	s.devMode = on
	s.mu.Unlock()
}

// ---- suggested resources (dev mode only) ----

func (s *Session) AddResource() ([]course.Resource, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.devMode {
		return nil, ErrDevModeRequired
	}
	s.resources = append(s.resources, course.NewResource())
	return course.CloneResources(s.resources), nil
}

func (s *Session) UpdateResource(idx int, field, value string) ([]course.Resource, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.devMode {
		return nil, ErrDevModeRequired
	}
	if idx < 0 || idx >= len(s.resources) {
		return nil, fmt.Errorf("%w: %d", ErrResourceIndex, idx)
	}
	switch field {
	case FieldTitle:
		s.resources[idx].Title = value
	case FieldURL:
		s.resources[idx].URL = value
	default:
		return nil, fmt.Errorf("%w: %q", ErrResourceField, field)
	}
	return course.CloneResources(s.resources), nil
}

func (s *Session) RemoveResource(idx int) ([]course.Resource, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.devMode {
		return nil, ErrDevModeRequired
	}
	if idx < 0 || idx >= len(s.resources) {
		return nil, fmt.Errorf("%w: %d", ErrResourceIndex, idx)
	}
	s.resources = append(s.resources[:idx], s.resources[idx+1:]...)
	return course.CloneResources(s.resources), nil
}

// ---- navigation ----

func (s *Session) ActiveTab() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.activeTab
}

func (s *Session) SetActiveTab(tab string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, id := range s.course.TabIDs() {
		if id == tab {
			s.activeTab = tab
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrUnknownTab, tab)
}

// ---- export menu ----

func (s *Session) MenuOpen() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.menuOpen
}

func (s *Session) ToggleMenu() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.menuOpen = !s.menuOpen
	return s.menuOpen
}

func (s *Session) CloseMenu() {
	s.mu.Lock()
	s.menuOpen = false
	s.mu.Unlock()
}

// BeginExport claims the session's single export slot. The returned func
// releases it and must be called exactly once.
func (s *Session) BeginExport() (func(), error) {
	if !s.exporting.TryLock() {
		return nil, ErrExportInFlight
	}
	var once sync.Once
	return func() { once.Do(s.exporting.Unlock) }, nil
}

// ---- quiz ----

// SubmitQuiz grades one answer per question. Like the packaged player it
// refuses submissions with a blank (grading.Unanswered) entry.
func (s *Session) SubmitQuiz(answers []int) (grading.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(answers) != len(s.course.Quiz) {
		return grading.Result{}, fmt.Errorf("%w: got %d, want %d", ErrIncompleteQuiz, len(answers), len(s.course.Quiz))
	}
	for i, a := range answers {
		if a == grading.Unanswered {
			return grading.Result{}, fmt.Errorf("%w: question %d is blank", ErrIncompleteQuiz, i+1)
		}
		if a < 0 || a >= len(s.course.Quiz[i].Options) {
			return grading.Result{}, fmt.Errorf("%w: question %d answer %d", ErrAnswerOutOfRange, i+1, a)
		}
	}
	res, err := grading.GradeComplete(s.course.CorrectAnswers(), answers)
	if err != nil {
		return grading.Result{}, fmt.Errorf("%w: %w", ErrIncompleteQuiz, err)
	}
	s.lastResult = &res
	return res, nil
}
