package store

import (
	"errors"

	"task-calendar/backend/internal/models"
)

// ErrTaskNotFound is returned when an id does not resolve to a stored
// task. It is the only store error handlers translate to a specific
// client-visible status; everything else is a storage failure.
var ErrTaskNotFound = errors.New("task not found")

// TaskStore is the persistence seam for tasks. It is implemented by the
// GORM-backed store, the in-memory store used in tests, and the Redis
// read-through decorator. Each operation must appear atomic to
// concurrent callers.
type TaskStore interface {
	// ListAll returns every task ordered by date descending, then
	// creation order descending. An empty database yields an empty
	// slice, not an error.
	ListAll() ([]models.Task, error)

	// ListByDate returns tasks whose date matches exactly, ordered by
	// creation order descending. The date is an opaque string; a
	// malformed value simply matches nothing.
	ListByDate(date string) ([]models.Task, error)

	// Create persists the task as given. When the incoming ID is empty
	// the store assigns one; uniqueness is the only format requirement.
	Create(task models.Task) (models.Task, error)

	// Update applies only the non-nil fields of the update and
	// refreshes the update timestamp. Returns ErrTaskNotFound for an
	// unknown id, otherwise the merged task.
	Update(id string, updates models.TaskUpdate) (models.Task, error)

	// Delete removes the task. Returns ErrTaskNotFound for an unknown
	// id. After a successful delete the id resolves to nothing.
	Delete(id string) error

	// Close releases underlying resources. Called once at shutdown.
	Close() error
}
