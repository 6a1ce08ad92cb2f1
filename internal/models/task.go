package models

import "time"

// Task is a dated to-do item. Date is an opaque YYYY-MM-DD string; only
// the calendar layer ever parses it into calendar fields.
type Task struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Completed bool      `json:"completed"`
	Date      string    `json:"date"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TaskUpdate is a partial update. Nil fields are left untouched; the ID
// is never updatable.
type TaskUpdate struct {
	Text      *string `json:"text"`
	Completed *bool   `json:"completed"`
	Date      *string `json:"date"`
}

// IsEmpty reports whether the update carries no recognized fields. An
// empty update is still legal and only refreshes the update timestamp.
func (u TaskUpdate) IsEmpty() bool {
	return u.Text == nil && u.Completed == nil && u.Date == nil
}
