package web

import (
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// ErrTitleRequired is returned when a task is added without a title.
var ErrTitleRequired = errors.New("title is required")

// Task is a card on the board.
type Task struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

// Store keeps tasks in memory, in insertion order.
type Store struct {
	mu    sync.RWMutex
	tasks []Task
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{}
}

// Add validates and stores a new task.
func (s *Store) Add(title, description string) (Task, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return Task{}, ErrTitleRequired
	}
	t := Task{
		ID:          uuid.NewString(),
		Title:       title,
		Description: strings.TrimSpace(description),
		CreatedAt:   time.Now(),
	}

	s.mu.Lock()
	s.tasks = append(s.tasks, t)
	s.mu.Unlock()
	return t, nil
}

// List returns a copy of all tasks.
func (s *Store) List() []Task {
	s.mu.RLock()
	defer s.mu.RUnlock()
	res := make([]Task, len(s.tasks))
	copy(res, s.tasks)
	return res
}

// Count returns the number of tasks.
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.tasks)
}

// Reset removes all tasks.
func (s *Store) Reset() {
	s.mu.Lock()
	s.tasks = nil
	s.mu.Unlock()
}
