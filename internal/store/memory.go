package store

import (
	"sort"
	"strconv"
	"sync"

	"task-calendar/backend/internal/models"
)

// MemoryStore is the in-memory TaskStore used in tests and local runs
// without a database. A mutex gives each operation the same atomicity
// the SQL backing provides; insertion sequence stands in for creation
// timestamps.
type MemoryStore struct {
	mu    sync.Mutex
	tasks map[string]models.Task
	seq   map[string]int64
	next  int64
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		tasks: make(map[string]models.Task),
		seq:   make(map[string]int64),
	}
}

func (s *MemoryStore) ListAll() ([]models.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tasks := s.snapshot()
	sort.SliceStable(tasks, func(i, j int) bool {
		if tasks[i].Date != tasks[j].Date {
			return tasks[i].Date > tasks[j].Date
		}
		return s.seq[tasks[i].ID] > s.seq[tasks[j].ID]
	})
	return tasks, nil
}

func (s *MemoryStore) ListByDate(date string) ([]models.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var tasks []models.Task
	for _, task := range s.tasks {
		if task.Date == date {
			tasks = append(tasks, task)
		}
	}
	sort.SliceStable(tasks, func(i, j int) bool {
		return s.seq[tasks[i].ID] > s.seq[tasks[j].ID]
	})
	if tasks == nil {
		tasks = []models.Task{}
	}
	return tasks, nil
}

func (s *MemoryStore) Create(task models.Task) (models.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.next++
	if task.ID == "" {
		task.ID = "mem-" + strconv.FormatInt(s.next, 10)
	}
	s.tasks[task.ID] = task
	s.seq[task.ID] = s.next
	return task, nil
}

func (s *MemoryStore) Update(id string, updates models.TaskUpdate) (models.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	task, ok := s.tasks[id]
	if !ok {
		return models.Task{}, ErrTaskNotFound
	}
	if updates.Text != nil {
		task.Text = *updates.Text
	}
	if updates.Completed != nil {
		task.Completed = *updates.Completed
	}
	if updates.Date != nil {
		task.Date = *updates.Date
	}
	s.tasks[id] = task
	return task, nil
}

func (s *MemoryStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.tasks[id]; !ok {
		return ErrTaskNotFound
	}
	delete(s.tasks, id)
	delete(s.seq, id)
	return nil
}

func (s *MemoryStore) Close() error {
	return nil
}

func (s *MemoryStore) snapshot() []models.Task {
	tasks := make([]models.Task, 0, len(s.tasks))
	for _, task := range s.tasks {
		tasks = append(tasks, task)
	}
	return tasks
}
