package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TitleMaxLength is the longest title accepted over HTTP and stored in the database
const TitleMaxLength = 200

// TodoItem struct - Core domain entity
type TodoItem struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	IsCompleted bool      `json:"isCompleted"`
	CreatedAt   time.Time `json:"createdAt"`
}

// NewTodoItem func - Builds a fresh item with a generated id and the current time.
// This is the only place todo ids are assigned. CreatedAt is UTC at microsecond
// precision so it survives a round trip through every store unchanged.
func NewTodoItem(title string, isCompleted bool) (TodoItem, error) {
	if err := ValidateTitle(title); err != nil {
		return TodoItem{}, err
	}
	id, err := uuid.NewRandom() // v4
	if err != nil {
		return TodoItem{}, err
	}
	return TodoItem{
		ID:          id,
		Title:       title,
		IsCompleted: isCompleted,
		CreatedAt:   Now(),
	}, nil
}

// Now returns the current time in UTC truncated to microseconds
func Now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

// ValidateTitle func - A title must contain at least one non-whitespace character
func ValidateTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return &ValidationError{Field: "title", Message: MsgEmptyTitle}
	}
	return nil
}

// TodoRecord struct - Persistence model for the gorm backed store
type TodoRecord struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;"`
	Title       string    `gorm:"type:varchar(200);not null;"`
	IsCompleted bool      `gorm:"not null;default:false;"`
	CreatedAt   time.Time `gorm:"type:timestamptz;not null;index;"`
}

// TableName func
func (t *TodoRecord) TableName() string {
	return "todos"
}

// ToItem func - Converts the persistence model into the domain entity
func (t *TodoRecord) ToItem() TodoItem {
	return TodoItem{
		ID:          t.ID,
		Title:       t.Title,
		IsCompleted: t.IsCompleted,
		CreatedAt:   t.CreatedAt.UTC(),
	}
}

// MigrateDatabase func - Auto-migrate database schema
func MigrateDatabase(db *gorm.DB) {
	if db == nil {
		panic("An error when connect database")
	}

	err := db.AutoMigrate(&TodoRecord{})
	if err != nil {
		panic(err)
	}
}
