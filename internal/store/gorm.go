package store

import (
	"errors"
	"fmt"
	"time"

	"task-calendar/backend/internal/models"

	"github.com/gofrs/uuid"
	"gorm.io/gorm"
)

// taskRecord is the persisted row shape. Completed is stored as an
// integer 0/1 and converted back to a bool on every read, so the same
// schema works under sqlite and postgres.
type taskRecord struct {
	ID        string    `gorm:"primaryKey"`
	Text      string    `gorm:"not null"`
	Completed int       `gorm:"not null;default:0"`
	Date      string    `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (taskRecord) TableName() string {
	return "tasks"
}

func (r taskRecord) toTask() models.Task {
	return models.Task{
		ID:        r.ID,
		Text:      r.Text,
		Completed: r.Completed != 0,
		Date:      r.Date,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// GormStore persists tasks through GORM. Every operation is a single
// SQL statement, so the driver's own locking provides per-operation
// atomicity.
type GormStore struct {
	db *gorm.DB
}

// NewGormStore ensures the tasks table exists and returns the store.
func NewGormStore(db *gorm.DB) (*GormStore, error) {
	if err := db.AutoMigrate(&taskRecord{}); err != nil {
		return nil, fmt.Errorf("migrate tasks table: %w", err)
	}
	return &GormStore{db: db}, nil
}

func (s *GormStore) ListAll() ([]models.Task, error) {
	var records []taskRecord
	result := s.db.Order("date DESC, created_at DESC").Find(&records)
	if result.Error != nil {
		return nil, fmt.Errorf("list tasks: %w", result.Error)
	}
	return recordsToTasks(records), nil
}

func (s *GormStore) ListByDate(date string) ([]models.Task, error) {
	var records []taskRecord
	result := s.db.Where("date = ?", date).Order("created_at DESC").Find(&records)
	if result.Error != nil {
		return nil, fmt.Errorf("list tasks for date %q: %w", date, result.Error)
	}
	return recordsToTasks(records), nil
}

func (s *GormStore) Create(task models.Task) (models.Task, error) {
	if task.ID == "" {
		id, err := uuid.NewV4()
		if err != nil {
			return models.Task{}, fmt.Errorf("generate task id: %w", err)
		}
		task.ID = id.String()
	}

	record := taskRecord{
		ID:        task.ID,
		Text:      task.Text,
		Completed: boolToInt(task.Completed),
		Date:      task.Date,
	}
	if result := s.db.Create(&record); result.Error != nil {
		return models.Task{}, fmt.Errorf("create task: %w", result.Error)
	}
	return record.toTask(), nil
}

func (s *GormStore) Update(id string, updates models.TaskUpdate) (models.Task, error) {
	fields := map[string]interface{}{
		"updated_at": time.Now(),
	}
	if updates.Text != nil {
		fields["text"] = *updates.Text
	}
	if updates.Completed != nil {
		fields["completed"] = boolToInt(*updates.Completed)
	}
	if updates.Date != nil {
		fields["date"] = *updates.Date
	}

	result := s.db.Model(&taskRecord{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return models.Task{}, fmt.Errorf("update task %s: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return models.Task{}, ErrTaskNotFound
	}

	var record taskRecord
	if err := s.db.First(&record, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Task{}, ErrTaskNotFound
		}
		return models.Task{}, fmt.Errorf("reload task %s: %w", id, err)
	}
	return record.toTask(), nil
}

func (s *GormStore) Delete(id string) error {
	result := s.db.Delete(&taskRecord{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("delete task %s: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrTaskNotFound
	}
	return nil
}

func (s *GormStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("access underlying db: %w", err)
	}
	return sqlDB.Close()
}

func recordsToTasks(records []taskRecord) []models.Task {
	tasks := make([]models.Task, 0, len(records))
	for _, r := range records {
		tasks = append(tasks, r.toTask())
	}
	return tasks
}
