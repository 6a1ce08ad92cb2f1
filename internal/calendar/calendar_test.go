package calendar_test

import (
	"testing"
	"time"

	"task-calendar/backend/internal/calendar"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestMonthGridNovember2025(t *testing.T) {
	// 2025-11-01 is a Saturday: six leading blanks, then 30 days.
	selected := date(2025, time.November, 1)
	today := date(2025, time.November, 15)

	grid := calendar.MonthGrid(selected, today)
	require.Len(t, grid, 36)

	for i := 0; i < 6; i++ {
		assert.True(t, grid[i].Empty, "cell %d should be a leading blank", i)
		assert.Zero(t, grid[i].Day)
	}
	for i := 6; i < 36; i++ {
		assert.False(t, grid[i].Empty)
		assert.Equal(t, i-5, grid[i].Day)
	}

	assert.True(t, grid[6].Selected, "day 1 is the selected date")
	assert.False(t, grid[6].Today)
	assert.True(t, grid[6+14].Today, "day 15 is today")
	assert.False(t, grid[6+14].Selected)
}

func TestMonthGridSelectedAndTodayIndependent(t *testing.T) {
	day := date(2025, time.November, 6)

	grid := calendar.MonthGrid(day, day)
	cell := grid[6+5] // six blanks, then days 1..5 precede day 6
	assert.Equal(t, 6, cell.Day)
	assert.True(t, cell.Selected)
	assert.True(t, cell.Today, "selected and today are independent flags")
}

func TestMonthGridTodayOutsideMonth(t *testing.T) {
	selected := date(2025, time.November, 6)
	today := date(2025, time.December, 6)

	for _, cell := range calendar.MonthGrid(selected, today) {
		assert.False(t, cell.Today, "no cell is today when today falls in another month")
	}
}

func TestDaysInMonth(t *testing.T) {
	assert.Equal(t, 30, calendar.DaysInMonth(2025, time.November))
	assert.Equal(t, 31, calendar.DaysInMonth(2025, time.December))
	assert.Equal(t, 28, calendar.DaysInMonth(2025, time.February))
	assert.Equal(t, 29, calendar.DaysInMonth(2024, time.February), "leap year")
}

func TestMonthNavigationSelectsDayOne(t *testing.T) {
	selected := date(2025, time.November, 21)

	prev := calendar.PrevMonth(selected)
	assert.Equal(t, date(2025, time.October, 1), prev, "day-of-month is not preserved")

	next := calendar.NextMonth(selected)
	assert.Equal(t, date(2025, time.December, 1), next)
}

func TestMonthNavigationAcrossYears(t *testing.T) {
	assert.Equal(t, date(2024, time.December, 1), calendar.PrevMonth(date(2025, time.January, 10)))
	assert.Equal(t, date(2026, time.January, 1), calendar.NextMonth(date(2025, time.December, 10)))
}

func TestSelectDay(t *testing.T) {
	displayed := date(2025, time.November, 1)
	assert.Equal(t, date(2025, time.November, 21), calendar.SelectDay(displayed, 21))
}

func TestTitle(t *testing.T) {
	assert.Equal(t, "November 2025", calendar.Title(date(2025, time.November, 6)))
}
