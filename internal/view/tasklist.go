// Package view derives what the task panel shows from the full task
// collection and the selected date, and owns the client-side task list
// state.
package view

import (
	"strings"
	"time"

	"task-calendar/backend/internal/models"
)

// DateKey formats a date the way tasks store it.
func DateKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// Heading renders the long-form panel title, e.g.
// "Tasks for Monday, November 3, 2025".
func Heading(t time.Time) string {
	return "Tasks for " + t.Format("Monday, January 2, 2006")
}

// Summary counts the tasks shown for a date. Total zero means the
// "no tasks" state.
type Summary struct {
	Total     int `json:"total"`
	Completed int `json:"completed"`
	Remaining int `json:"remaining"`
}

// ForDate filters tasks to the selected date and tallies them. Order is
// preserved from the input collection.
func ForDate(tasks []models.Task, selected time.Time) ([]models.Task, Summary) {
	key := DateKey(selected)

	matched := make([]models.Task, 0)
	var summary Summary
	for _, task := range tasks {
		if task.Date != key {
			continue
		}
		matched = append(matched, task)
		summary.Total++
		if task.Completed {
			summary.Completed++
		} else {
			summary.Remaining++
		}
	}
	return matched, summary
}

// ValidateNewText trims the input and reports whether a create request
// should be sent at all. Blank input is rejected client-side.
func ValidateNewText(s string) (string, bool) {
	trimmed := strings.TrimSpace(s)
	return trimmed, trimmed != ""
}
