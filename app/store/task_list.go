package store

import (
	"fmt"

	"github.com/shborse/Task-Manager/app/models"
)

// TaskList is one user's tasks in insertion order. It is not safe for
// concurrent use on its own; callers hold the owning User's lock.
type TaskList struct {
	tasks  []models.Task
	lastID int
}

// NewTaskList creates an empty list whose first allocated id is 1.
func NewTaskList() *TaskList {
	return &TaskList{}
}

// NextID allocates a fresh id. Ids are never handed out twice, even after
// the task holding one is removed.
func (l *TaskList) NextID() int {
	l.lastID++
	return l.lastID
}

// Len returns the number of tasks.
func (l *TaskList) Len() int { return len(l.tasks) }

// Append adds t at the end of the list.
func (l *TaskList) Append(t models.Task) error {
	return l.Insert(len(l.tasks), t)
}

// Insert places t at index, shifting later tasks back. An index past the
// end appends. t must carry an id no other task in the list holds.
func (l *TaskList) Insert(index int, t models.Task) error {
	if t.ID <= 0 {
		return fmt.Errorf("task has no id: %w", models.ErrInvalidInput)
	}
	if l.indexOf(t.ID) >= 0 {
		return fmt.Errorf("task #%d already present: %w", t.ID, models.ErrInvalidInput)
	}
	if index < 0 {
		index = 0
	}
	if index > len(l.tasks) {
		index = len(l.tasks)
	}
	l.tasks = append(l.tasks, models.Task{})
	copy(l.tasks[index+1:], l.tasks[index:])
	l.tasks[index] = t
	if t.ID > l.lastID {
		l.lastID = t.ID
	}
	return nil
}

// Remove deletes the task with the given id and reports where it was.
func (l *TaskList) Remove(id int) (models.Task, int, error) {
	i := l.indexOf(id)
	if i < 0 {
		return models.Task{}, -1, fmt.Errorf("task #%d: %w", id, models.ErrNotFound)
	}
	t := l.tasks[i]
	l.tasks = append(l.tasks[:i], l.tasks[i+1:]...)
	return t, i, nil
}

// Replace swaps in t for the task sharing its id and returns the old value.
func (l *TaskList) Replace(t models.Task) (models.Task, error) {
	i := l.indexOf(t.ID)
	if i < 0 {
		return models.Task{}, fmt.Errorf("task #%d: %w", t.ID, models.ErrNotFound)
	}
	old := l.tasks[i]
	l.tasks[i] = t
	return old, nil
}

// Get returns the task with the given id.
func (l *TaskList) Get(id int) (models.Task, bool) {
	if i := l.indexOf(id); i >= 0 {
		return l.tasks[i], true
	}
	return models.Task{}, false
}

// Snapshot returns a copy of the tasks in order.
func (l *TaskList) Snapshot() []models.Task {
	out := make([]models.Task, len(l.tasks))
	copy(out, l.tasks)
	return out
}

func (l *TaskList) indexOf(id int) int {
	for i := range l.tasks {
		if l.tasks[i].ID == id {
			return i
		}
	}
	return -1
}
