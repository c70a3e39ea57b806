package memory

import (
	"sync"

	"todolist-api/internal/domain"
	"todolist-api/internal/ports/output"

	"github.com/google/uuid"
)

// Compile-time check to ensure TodoStore implements output.TodoStore interface
var _ output.TodoStore = (*TodoStore)(nil)

// TodoStore struct - Output adapter for in-memory todo storage
// Items are kept by value in insertion order behind a RWMutex, so every
// operation is atomic with respect to the others and callers only ever
// receive copies.
type TodoStore struct {
	mu    sync.RWMutex
	items []domain.TodoItem
}

// NewTodoStore creates an empty in-memory todo store.
// Each instance is independent; there is no process-wide state.
func NewTodoStore() *TodoStore {
	return &TodoStore{
		items: make([]domain.TodoItem, 0),
	}
}

// GetAll returns a snapshot of all items in insertion order.
func (s *TodoStore) GetAll() ([]domain.TodoItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]domain.TodoItem, len(s.items))
	copy(items, s.items)
	return items, nil
}

// GetByID returns a copy of the item with the given id.
func (s *TodoStore) GetByID(id uuid.UUID) (domain.TodoItem, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.indexOf(id)
	if i < 0 {
		return domain.TodoItem{}, false, nil
	}
	return s.items[i], true, nil
}

// Add validates the title, assigns id and creation time, and appends the item.
func (s *TodoStore) Add(title string, isCompleted bool) (domain.TodoItem, error) {
	item, err := domain.NewTodoItem(title, isCompleted)
	if err != nil {
		return domain.TodoItem{}, err
	}

	s.mu.Lock()
	s.items = append(s.items, item)
	s.mu.Unlock()

	return item, nil
}

// Update replaces title and completion flag in place.
// An absent id reports false before the title is looked at.
func (s *TodoStore) Update(id uuid.UUID, title string, isCompleted bool) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return false, nil
	}
	if err := domain.ValidateTitle(title); err != nil {
		return false, err
	}

	s.items[i].Title = title
	s.items[i].IsCompleted = isCompleted
	return true, nil
}

// Delete removes the item with the given id, keeping the order of the rest.
func (s *TodoStore) Delete(id uuid.UUID) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return false, nil
	}
	s.items = append(s.items[:i], s.items[i+1:]...)
	return true, nil
}

// indexOf must be called with mu held.
func (s *TodoStore) indexOf(id uuid.UUID) int {
	for i := range s.items {
		if s.items[i].ID == id {
			return i
		}
	}
	return -1
}
