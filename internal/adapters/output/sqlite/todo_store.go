package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"todolist-api/internal/domain"
	"todolist-api/internal/ports/output"

	"github.com/google/uuid"
)

// Compile-time check to ensure TodoStore implements output.TodoStore interface
var _ output.TodoStore = (*TodoStore)(nil)

const schema = `
CREATE TABLE IF NOT EXISTS todos (
	seq          INTEGER PRIMARY KEY AUTOINCREMENT,
	id           TEXT    NOT NULL UNIQUE,
	title        TEXT    NOT NULL,
	is_completed INTEGER NOT NULL DEFAULT 0,
	created_at   TEXT    NOT NULL
)`

// TodoStore struct - Secondary/Driven adapter for SQLite
type TodoStore struct {
	db *sql.DB
}

// NewTodoStore func - Creates the todos table when missing and returns the store
func NewTodoStore(db *sql.DB) (*TodoStore, error) {
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("creating todos table: %w", err)
	}
	return &TodoStore{db: db}, nil
}

// GetAll func - Lists todos in insertion order
func (s *TodoStore) GetAll() ([]domain.TodoItem, error) {
	rows, err := s.db.Query(`SELECT id, title, is_completed, created_at FROM todos ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("querying todos: %w", err)
	}
	defer rows.Close()

	items := make([]domain.TodoItem, 0)
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating todos: %w", err)
	}
	return items, nil
}

// GetByID func
func (s *TodoStore) GetByID(id uuid.UUID) (domain.TodoItem, bool, error) {
	row := s.db.QueryRow(`SELECT id, title, is_completed, created_at FROM todos WHERE id = ?`, id.String())
	item, err := scanItem(row)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.TodoItem{}, false, nil
	}
	if err != nil {
		return domain.TodoItem{}, false, err
	}
	return item, true, nil
}

// Add func
func (s *TodoStore) Add(title string, isCompleted bool) (domain.TodoItem, error) {
	item, err := domain.NewTodoItem(title, isCompleted)
	if err != nil {
		return domain.TodoItem{}, err
	}
	_, err = s.db.Exec(
		`INSERT INTO todos (id, title, is_completed, created_at) VALUES (?, ?, ?, ?)`,
		item.ID.String(), item.Title, item.IsCompleted, item.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return domain.TodoItem{}, fmt.Errorf("inserting todo: %w", err)
	}
	return item, nil
}

// Update func - Checks existence, validates, and updates in one transaction
func (s *TodoStore) Update(id uuid.UUID, title string, isCompleted bool) (bool, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return false, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	var exists int
	err = tx.QueryRow(`SELECT 1 FROM todos WHERE id = ?`, id.String()).Scan(&exists)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("looking up todo: %w", err)
	}
	if err := domain.ValidateTitle(title); err != nil {
		return false, err
	}

	if _, err := tx.Exec(`UPDATE todos SET title = ?, is_completed = ? WHERE id = ?`, title, isCompleted, id.String()); err != nil {
		return false, fmt.Errorf("updating todo: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("committing update: %w", err)
	}
	return true, nil
}

// Delete func
func (s *TodoStore) Delete(id uuid.UUID) (bool, error) {
	res, err := s.db.Exec(`DELETE FROM todos WHERE id = ?`, id.String())
	if err != nil {
		return false, fmt.Errorf("deleting todo: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("deleting todo: %w", err)
	}
	return n > 0, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanItem(row scanner) (domain.TodoItem, error) {
	var (
		item      domain.TodoItem
		id        string
		createdAt string
	)
	if err := row.Scan(&id, &item.Title, &item.IsCompleted, &createdAt); err != nil {
		return domain.TodoItem{}, err
	}

	parsedID, err := uuid.Parse(id)
	if err != nil {
		return domain.TodoItem{}, fmt.Errorf("parsing todo id %q: %w", id, err)
	}
	item.ID = parsedID

	item.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		return domain.TodoItem{}, fmt.Errorf("parsing created_at %q: %w", createdAt, err)
	}
	return item, nil
}
