package application

import (
	"todolist-api/internal/domain"
	"todolist-api/internal/ports/input"
	"todolist-api/internal/ports/output"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Compile-time check to ensure TodoService implements input.TodoService interface
var _ input.TodoService = (*TodoService)(nil)

// TodoService struct - Application service implementing use cases
type TodoService struct {
	store output.TodoStore
}

// NewTodoService func - Creates new todo service
func NewTodoService(store output.TodoStore) *TodoService {
	return &TodoService{
		store: store,
	}
}

// GetAll func - Use case: List every todo
func (s *TodoService) GetAll() ([]domain.TodoItem, error) {
	items, err := s.store.GetAll()
	if err != nil {
		logrus.Errorln(err)
		return nil, err
	}
	return items, nil
}

// GetByID func - Use case: Get a single todo
func (s *TodoService) GetByID(id uuid.UUID) (domain.TodoItem, bool, error) {
	item, ok, err := s.store.GetByID(id)
	if err != nil {
		logrus.Errorln(err)
	}
	return item, ok, err
}

// Add func - Use case: Create a new todo
func (s *TodoService) Add(title string, isCompleted bool) (domain.TodoItem, error) {
	item, err := s.store.Add(title, isCompleted)
	if err != nil {
		s.logFailure("create", err)
		return domain.TodoItem{}, err
	}
	logrus.WithField("id", item.ID.String()).Info("todo item created")
	return item, nil
}

// Update func - Use case: Update an existing todo
func (s *TodoService) Update(id uuid.UUID, title string, isCompleted bool) (bool, error) {
	updated, err := s.store.Update(id, title, isCompleted)
	if err != nil {
		s.logFailure("update", err)
		return false, err
	}
	return updated, nil
}

// Delete func - Use case: Delete a todo
func (s *TodoService) Delete(id uuid.UUID) (bool, error) {
	deleted, err := s.store.Delete(id)
	if err != nil {
		logrus.Errorln(err)
		return false, err
	}
	return deleted, nil
}

// logFailure reports rejected input as a warning and anything else as an error
func (s *TodoService) logFailure(action string, err error) {
	if domain.IsValidationError(err) {
		logrus.WithField("action", action).Warnf("invalid todo item rejected: %s", err)
		return
	}
	logrus.WithField("action", action).Errorln(err)
}
