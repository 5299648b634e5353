package models

import (
	"fmt"
	"strings"
	"time"
)

const (
	// DateLayout is the wire format of a task's due date.
	DateLayout = "2006-01-02"
	// TimeLayout is the wire format of a task's creation timestamp.
	TimeLayout = "2006-01-02 15:04:05"

	DefaultPriority = 1
	DefaultStatus   = "Pending"
)

// DefaultDue is the due date given to tasks created without one.
var DefaultDue = time.Date(2025, time.December, 31, 0, 0, 0, 0, time.UTC)

// Task is one unit of work owned by a single user.
type Task struct {
	ID        int
	Title     string
	Due       time.Time
	Priority  int
	Status    string
	CreatedAt time.Time
}

// View converts the task to its wire form.
func (t Task) View() TaskView {
	return TaskView{
		ID:       t.ID,
		Title:    t.Title,
		Due:      t.Due.Format(DateLayout),
		Priority: t.Priority,
		Status:   t.Status,
		Time:     t.CreatedAt.Format(TimeLayout),
	}
}

// Done reports whether the task's status marks it finished.
func (t Task) Done() bool {
	switch strings.ToLower(t.Status) {
	case "done", "completed", "complete":
		return true
	}
	return false
}

// TaskView is the JSON shape the client renders.
type TaskView struct {
	ID       int    `json:"id"`
	Title    string `json:"title"`
	Due      string `json:"due"`
	Priority int    `json:"priority"`
	Status   string `json:"status"`
	Time     string `json:"time"`
}

// OwnedTask pairs a task with the user holding it (manager view).
type OwnedTask struct {
	Username string `json:"username"`
	TaskView
}

// Draft holds the user-supplied fields of a task that has no id yet.
// Priority is a pointer so an omitted value can be told apart from zero.
type Draft struct {
	Title    string
	Due      string
	Priority *int
	Status   string
}

// Build validates the draft and fills defaults. The returned task has no id.
func (d Draft) Build(defaultDue time.Time, now time.Time) (Task, error) {
	title := strings.TrimSpace(d.Title)
	if title == "" {
		return Task{}, fmt.Errorf("title is required: %w", ErrInvalidInput)
	}
	due := defaultDue
	if s := strings.TrimSpace(d.Due); s != "" {
		parsed, err := ParseDate(s)
		if err != nil {
			return Task{}, err
		}
		due = parsed
	}
	priority := DefaultPriority
	if d.Priority != nil {
		priority = *d.Priority
	}
	status := strings.TrimSpace(d.Status)
	if status == "" {
		status = DefaultStatus
	}
	return Task{
		Title:     title,
		Due:       due,
		Priority:  priority,
		Status:    status,
		CreatedAt: now,
	}, nil
}

// Patch lists the fields an edit changes. Nil fields are left as they are.
type Patch struct {
	Title    *string
	Due      *string
	Priority *int
	Status   *string
}

// Apply returns a copy of t with the patch applied. ID and CreatedAt never change.
func (p Patch) Apply(t Task) (Task, error) {
	if p.Title != nil {
		title := strings.TrimSpace(*p.Title)
		if title == "" {
			return Task{}, fmt.Errorf("title cannot be blank: %w", ErrInvalidInput)
		}
		t.Title = title
	}
	if p.Due != nil {
		due, err := ParseDate(strings.TrimSpace(*p.Due))
		if err != nil {
			return Task{}, err
		}
		t.Due = due
	}
	if p.Priority != nil {
		t.Priority = *p.Priority
	}
	if p.Status != nil {
		if s := strings.TrimSpace(*p.Status); s != "" {
			t.Status = s
		}
	}
	return t, nil
}

// Empty reports whether the patch changes nothing.
func (p Patch) Empty() bool {
	return p.Title == nil && p.Due == nil && p.Priority == nil && p.Status == nil
}

// ParseDate parses a YYYY-MM-DD calendar date.
func ParseDate(s string) (time.Time, error) {
	d, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("due date %q is not YYYY-MM-DD: %w", s, ErrInvalidInput)
	}
	return d, nil
}
