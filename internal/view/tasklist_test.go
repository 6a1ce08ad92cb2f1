package view_test

import (
	"testing"
	"time"

	"task-calendar/backend/internal/models"
	"task-calendar/backend/internal/view"

	"github.com/stretchr/testify/assert"
)

var selected = time.Date(2025, time.November, 6, 0, 0, 0, 0, time.UTC)

func sampleTasks() []models.Task {
	return []models.Task{
		{ID: "1", Text: "write report", Date: "2025-11-06", Completed: true},
		{ID: "2", Text: "review PR", Date: "2025-11-06"},
		{ID: "3", Text: "other day", Date: "2025-11-07"},
	}
}

func TestDateKey(t *testing.T) {
	assert.Equal(t, "2025-11-06", view.DateKey(selected))
}

func TestHeading(t *testing.T) {
	assert.Equal(t, "Tasks for Thursday, November 6, 2025", view.Heading(selected))
}

func TestForDateFiltersAndCounts(t *testing.T) {
	matched, summary := view.ForDate(sampleTasks(), selected)

	assert.Len(t, matched, 2)
	for _, task := range matched {
		assert.Equal(t, "2025-11-06", task.Date)
	}
	assert.Equal(t, view.Summary{Total: 2, Completed: 1, Remaining: 1}, summary)
}

func TestForDateEmptyState(t *testing.T) {
	matched, summary := view.ForDate(sampleTasks(), selected.AddDate(0, 1, 0))

	assert.Empty(t, matched)
	assert.Zero(t, summary.Total, "zero total renders the no-tasks state")
}

func TestValidateNewText(t *testing.T) {
	text, ok := view.ValidateNewText("  Valid task  ")
	assert.True(t, ok)
	assert.Equal(t, "Valid task", text)

	_, ok = view.ValidateNewText("")
	assert.False(t, ok, "empty input must not produce a request")

	_, ok = view.ValidateNewText("   ")
	assert.False(t, ok, "whitespace-only input must not produce a request")
}
