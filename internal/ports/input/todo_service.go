package input

import (
	"todolist-api/internal/domain"

	"github.com/google/uuid"
)

// TodoService interface - Input port (use case)
// Defines what the application can do with todos
type TodoService interface {
	GetAll() ([]domain.TodoItem, error)
	GetByID(id uuid.UUID) (domain.TodoItem, bool, error)
	Add(title string, isCompleted bool) (domain.TodoItem, error)
	Update(id uuid.UUID, title string, isCompleted bool) (bool, error)
	Delete(id uuid.UUID) (bool, error)
}
