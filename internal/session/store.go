package session

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/VictoriaCloud360/CursoAPP/internal/course"
)

type Store interface {
	Create(c course.Course) (*Session, error)
	Get(id string) (*Session, error)
	Delete(id string) error
	List() []*Session
}

type memoryStore struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	now      func() time.Time
}

func NewMemoryStore() Store {
	return &memoryStore{sessions: map[string]*Session{}, now: time.Now}
}

func (m *memoryStore) Create(c course.Course) (*Session, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	s := New(uuid.NewString(), c, m.now())
	m.mu.Lock()
	m.sessions[s.ID] = s
	m.mu.Unlock()
	return s, nil
}

func (m *memoryStore) Get(id string) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}
	return s, nil
}

func (m *memoryStore) Delete(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.sessions[id]; !ok {
		return ErrNotFound
	}
	delete(m.sessions, id)
	return nil
}

// List returns sessions oldest first.
func (m *memoryStore) List() []*Session {
	m.mu.RLock()
	out := make([]*Session, 0, len(m.sessions))
	for _, s := range m.sessions {
		out = append(out, s)
	}
	m.mu.RUnlock()
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out
}
