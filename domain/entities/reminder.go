package entities

import "time"

// Reminder is a short note with an importance flag. ImportantAt is set when
// the flag turns true and cleared when it turns false, always in the same
// update. Example reminders are seed rows that the app refuses to edit or
// delete.
type Reminder struct {
	ID          int64      `json:"id"`
	Content     string     `json:"content"`
	IsImportant bool       `json:"is_important"`
	ImportantAt *time.Time `json:"important_at,omitempty"`
	IsCompleted bool       `json:"is_completed"`
	IsExample   bool       `json:"is_example"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`
}

// ReminderUpdate carries a partial update; nil fields are left untouched.
// When IsImportant is set, the importance timestamp is stamped or cleared
// atomically with the flag by the gateway.
type ReminderUpdate struct {
	Content     *string
	IsImportant *bool
	IsCompleted *bool
}
