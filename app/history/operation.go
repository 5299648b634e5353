package history

import (
	"fmt"
	"math"

	"github.com/shborse/Task-Manager/app/models"
)

// TaskList is the part of a user's task store that operations act on.
type TaskList interface {
	Insert(index int, t models.Task) error
	Remove(id int) (models.Task, int, error)
	Replace(t models.Task) (models.Task, error)
}

// Kind names an operation variant.
type Kind string

const (
	KindAdd    Kind = "add"
	KindEdit   Kind = "edit"
	KindDelete Kind = "delete"
)

// Operation is a reversible change to a TaskList. Apply followed by Revert
// leaves the list exactly as it was, and so does Revert followed by Apply.
type Operation interface {
	Kind() Kind
	TaskID() int
	Apply(l TaskList) error
	Revert(l TaskList) error
	// Describe is a short human-readable summary, e.g. "Task #2 created: Buy milk".
	Describe() string
}

// AddTask inserts a task that already carries its id. Redoing it puts the
// task back with that same id at the position it was removed from.
type AddTask struct {
	Task  models.Task
	index int
}

// NewAddTask returns an operation appending t.
func NewAddTask(t models.Task) *AddTask {
	return &AddTask{Task: t, index: -1}
}

// Kind returns KindAdd.
func (op *AddTask) Kind() Kind { return KindAdd }

// TaskID returns the id of the added task.
func (op *AddTask) TaskID() int { return op.Task.ID }

// Apply inserts the task at the end, or where it was last removed from.
func (op *AddTask) Apply(l TaskList) error {
	index := op.index
	if index < 0 {
		index = math.MaxInt
	}
	return l.Insert(index, op.Task)
}

// Revert removes the task and remembers its position.
func (op *AddTask) Revert(l TaskList) error {
	_, i, err := l.Remove(op.Task.ID)
	if err != nil {
		return err
	}
	op.index = i
	return nil
}

// Describe reports the created task.
func (op *AddTask) Describe() string {
	return fmt.Sprintf("Task #%d created: %s", op.Task.ID, op.Task.Title)
}

// EditTask swaps a task's fields between two snapshots sharing one id.
type EditTask struct {
	Before models.Task
	After  models.Task
}

// Kind returns KindEdit.
func (op *EditTask) Kind() Kind { return KindEdit }

// TaskID returns the id of the edited task.
func (op *EditTask) TaskID() int { return op.After.ID }

// Apply writes the After snapshot.
func (op *EditTask) Apply(l TaskList) error {
	_, err := l.Replace(op.After)
	return err
}

// Revert writes the Before snapshot.
func (op *EditTask) Revert(l TaskList) error {
	_, err := l.Replace(op.Before)
	return err
}

// Describe reports the edited task.
func (op *EditTask) Describe() string {
	return fmt.Sprintf("Task #%d edited: %s", op.After.ID, op.After.Title)
}

// DeleteTask removes a task by id. Reverting restores it at its old position.
type DeleteTask struct {
	ID    int
	task  models.Task
	index int
}

// NewDeleteTask returns an operation deleting the task with the given id.
func NewDeleteTask(id int) *DeleteTask {
	return &DeleteTask{ID: id, index: -1}
}

// Kind returns KindDelete.
func (op *DeleteTask) Kind() Kind { return KindDelete }

// TaskID returns the id of the deleted task.
func (op *DeleteTask) TaskID() int { return op.ID }

// Removed returns the task as it was when last deleted.
func (op *DeleteTask) Removed() models.Task { return op.task }

// Apply removes the task, keeping a copy and its position.
func (op *DeleteTask) Apply(l TaskList) error {
	t, i, err := l.Remove(op.ID)
	if err != nil {
		return err
	}
	op.task, op.index = t, i
	return nil
}

// Revert puts the removed task back at its old position.
func (op *DeleteTask) Revert(l TaskList) error {
	if op.index < 0 {
		return fmt.Errorf("delete of task #%d was never applied", op.ID)
	}
	return l.Insert(op.index, op.task)
}

// Describe reports the removed task, with its title once known.
func (op *DeleteTask) Describe() string {
	if op.task.Title == "" {
		return fmt.Sprintf("Task #%d removed", op.ID)
	}
	return fmt.Sprintf("Task #%d removed: %s", op.ID, op.task.Title)
}
