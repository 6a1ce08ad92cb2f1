// Package calendar computes the month day-grid the UI renders. It is
// the only place dates are parsed into calendar fields; everywhere else
// they travel as opaque YYYY-MM-DD strings.
package calendar

import (
	"fmt"
	"time"
)

// Cell is one slot in the month grid. Leading cells before day 1 have
// Empty set and Day zero. Selected and Today are independent flags;
// both may be set on the same cell.
type Cell struct {
	Day      int  `json:"day"`
	Empty    bool `json:"empty"`
	Selected bool `json:"selected"`
	Today    bool `json:"today"`
}

var Weekdays = [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// MonthGrid lays out the month containing selected: one empty cell per
// weekday slot before day 1 (Sunday = 0), then one cell per day of the
// month. today supplies the real current date so the computation stays
// pure.
func MonthGrid(selected, today time.Time) []Cell {
	year, month, _ := selected.Date()

	firstDay := time.Date(year, month, 1, 0, 0, 0, 0, selected.Location())
	leading := int(firstDay.Weekday())
	days := DaysInMonth(year, month)

	grid := make([]Cell, 0, leading+days)
	for i := 0; i < leading; i++ {
		grid = append(grid, Cell{Empty: true})
	}
	for day := 1; day <= days; day++ {
		grid = append(grid, Cell{
			Day:      day,
			Selected: matches(selected, year, month, day),
			Today:    matches(today, year, month, day),
		})
	}
	return grid
}

// DaysInMonth returns the month length; day 0 of the next month is the
// last day of this one.
func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// PrevMonth selects day 1 of the previous month. The day-of-month is
// deliberately not preserved across navigation.
func PrevMonth(selected time.Time) time.Time {
	year, month, _ := selected.Date()
	return time.Date(year, month-1, 1, 0, 0, 0, 0, selected.Location())
}

// NextMonth selects day 1 of the next month.
func NextMonth(selected time.Time) time.Time {
	year, month, _ := selected.Date()
	return time.Date(year, month+1, 1, 0, 0, 0, 0, selected.Location())
}

// SelectDay picks an exact date within the displayed month and year.
func SelectDay(displayed time.Time, day int) time.Time {
	year, month, _ := displayed.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, displayed.Location())
}

// Title renders the grid header, e.g. "November 2025".
func Title(t time.Time) string {
	return fmt.Sprintf("%s %d", t.Month().String(), t.Year())
}

func matches(t time.Time, year int, month time.Month, day int) bool {
	ty, tm, td := t.Date()
	return ty == year && tm == month && td == day
}
