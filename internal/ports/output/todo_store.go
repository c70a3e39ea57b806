package output

import (
	"todolist-api/internal/domain"

	"github.com/google/uuid"
)

// TodoStore interface - Output port
// Owns the authoritative collection of todo items and enforces the
// non-empty title invariant. Implementations must be safe for concurrent use
// and must hand out copies, never references to stored items.
type TodoStore interface {
	// GetAll returns every item in insertion order. The slice is never nil.
	GetAll() ([]domain.TodoItem, error)

	// GetByID returns the item and true, or the zero item and false when absent.
	GetByID(id uuid.UUID) (domain.TodoItem, bool, error)

	// Add stores a new item with a generated id and creation time.
	// Returns a *domain.ValidationError when title is blank.
	Add(title string, isCompleted bool) (domain.TodoItem, error)

	// Update replaces title and completion flag of an existing item.
	// Returns false with no error when the id is absent, without validating title.
	Update(id uuid.UUID, title string, isCompleted bool) (bool, error)

	// Delete removes the item, reporting whether it was present.
	Delete(id uuid.UUID) (bool, error)
}
