package models

import "time"

// Task is a unit of work owned by one user. Its lifecycle is monotonic:
// created → performed (at most once), deletable at any point.
type Task struct {
	// TaskID is the unique identifier of the task.
	TaskID int64 `json:"id"`

	// Name is the short title of the task.
	Name string `json:"name"`

	// Summary describes what the task is about.
	Summary string `json:"summary"`

	// DatePerformed is the moment the task was marked performed.
	// Nil means not yet performed. Set at most once, never overwritten.
	DatePerformed *time.Time `json:"date_performed"`

	// UserID is the owning user's identifier.
	UserID int64 `json:"user_id"`

	// Owner is the owning user record, populated only by listings that
	// embed owner details.
	Owner *User `json:"owner,omitempty"`

	// CreatedAt is the timestamp when the task was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Task model.
func (t Task) TableName() string {
	return "tasks"
}

// Performed reports whether the task has already been marked performed.
func (t Task) Performed() bool {
	return t.DatePerformed != nil
}
