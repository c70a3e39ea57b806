package postgres

import (
	"errors"

	"todolist-api/internal/domain"
	"todolist-api/internal/ports/output"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Compile-time check to ensure TodoStore implements output.TodoStore interface
var _ output.TodoStore = (*TodoStore)(nil)

// TodoStore struct - Secondary/Driven adapter for PostgreSQL
type TodoStore struct {
	dbGorm *gorm.DB
}

// NewTodoStore func - Creates new PostgreSQL store and migrates the todos table
func NewTodoStore(dbGorm *gorm.DB) *TodoStore {
	logrus.Info("Migrate database ...")
	domain.MigrateDatabase(dbGorm)
	return &TodoStore{
		dbGorm: dbGorm,
	}
}

// GetAll func - Lists todos ordered by creation time
func (p *TodoStore) GetAll() ([]domain.TodoItem, error) {
	var records []domain.TodoRecord
	if err := p.dbGorm.Order("created_at ASC").Find(&records).Error; err != nil {
		return nil, err
	}
	items := make([]domain.TodoItem, 0, len(records))
	for i := range records {
		items = append(items, records[i].ToItem())
	}
	return items, nil
}

// GetByID func - Finds one todo by id
func (p *TodoStore) GetByID(id uuid.UUID) (domain.TodoItem, bool, error) {
	var record domain.TodoRecord
	err := p.dbGorm.Where(map[string]interface{}{"id": id}).First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.TodoItem{}, false, nil
	}
	if err != nil {
		return domain.TodoItem{}, false, err
	}
	return record.ToItem(), true, nil
}

// Add func - Inserts a new todo
func (p *TodoStore) Add(title string, isCompleted bool) (domain.TodoItem, error) {
	item, err := domain.NewTodoItem(title, isCompleted)
	if err != nil {
		return domain.TodoItem{}, err
	}
	record := domain.TodoRecord{
		ID:          item.ID,
		Title:       item.Title,
		IsCompleted: item.IsCompleted,
		CreatedAt:   item.CreatedAt,
	}
	if err = p.dbGorm.Create(&record).Error; err != nil {
		return domain.TodoItem{}, err
	}
	return record.ToItem(), nil
}

// Update func - Updates title and completion flag inside a transaction
func (p *TodoStore) Update(id uuid.UUID, title string, isCompleted bool) (bool, error) {
	var record domain.TodoRecord
	found := false
	err := p.dbGorm.Transaction(func(tx *gorm.DB) error {
		err := tx.Where(map[string]interface{}{"id": id}).First(&record).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		found = true
		if err := domain.ValidateTitle(title); err != nil {
			return err
		}
		columns := map[string]interface{}{
			"title":        title,
			"is_completed": isCompleted,
		}
		return tx.Table(record.TableName()).Where(map[string]interface{}{"id": id}).Updates(columns).Error
	})
	if err != nil {
		return false, err
	}
	return found, nil
}

// Delete func - Deletes a todo permanently
func (p *TodoStore) Delete(id uuid.UUID) (bool, error) {
	tx := p.dbGorm.Where(map[string]interface{}{"id": id}).Delete(&domain.TodoRecord{})
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected > 0, nil
}
