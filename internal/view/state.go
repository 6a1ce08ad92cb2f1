package view

import "task-calendar/backend/internal/models"

// TaskList is the client-held task collection. It is a value type:
// every mutation returns a new list and never modifies the receiver's
// backing slice, mirroring the UI's optimistic update flow where each
// state change produces a fresh collection.
type TaskList struct {
	tasks []models.Task
}

func NewTaskList(tasks []models.Task) TaskList {
	return TaskList{tasks: copyTasks(tasks)}
}

// Tasks returns a copy; callers cannot reach the internal slice.
func (l TaskList) Tasks() []models.Task {
	return copyTasks(l.tasks)
}

func (l TaskList) Len() int {
	return len(l.tasks)
}

// WithTask appends a newly created task.
func (l TaskList) WithTask(task models.Task) TaskList {
	next := make([]models.Task, 0, len(l.tasks)+1)
	next = append(next, l.tasks...)
	next = append(next, task)
	return TaskList{tasks: next}
}

// WithToggled sets the completion flag of the matching task, the way
// the UI applies a toggle response.
func (l TaskList) WithToggled(id string, completed bool) TaskList {
	next := copyTasks(l.tasks)
	for i := range next {
		if next[i].ID == id {
			next[i].Completed = completed
		}
	}
	return TaskList{tasks: next}
}

// WithUpdated replaces the matching task wholesale.
func (l TaskList) WithUpdated(task models.Task) TaskList {
	next := copyTasks(l.tasks)
	for i := range next {
		if next[i].ID == task.ID {
			next[i] = task
		}
	}
	return TaskList{tasks: next}
}

// WithoutTask drops the matching task.
func (l TaskList) WithoutTask(id string) TaskList {
	next := make([]models.Task, 0, len(l.tasks))
	for _, task := range l.tasks {
		if task.ID != id {
			next = append(next, task)
		}
	}
	return TaskList{tasks: next}
}

func copyTasks(tasks []models.Task) []models.Task {
	next := make([]models.Task, len(tasks))
	copy(next, tasks)
	return next
}
