package services

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/shborse/Task-Manager/app/history"
	"github.com/shborse/Task-Manager/app/mirror"
	"github.com/shborse/Task-Manager/app/models"
	"github.com/shborse/Task-Manager/app/store"
)

// Options tunes a TaskService. Zero values pick the defaults.
type Options struct {
	DefaultDue time.Time
	Clock      func() time.Time
}

// Outcome describes the operation an undo or redo acted on.
type Outcome struct {
	Kind    history.Kind `json:"kind"`
	TaskID  int          `json:"id"`
	Message string       `json:"message"`
}

// Stats is the aggregate view across every user.
type Stats struct {
	Users     int `json:"users"`
	Tasks     int `json:"tasks_total"`
	UndoDepth int `json:"undo_depth"`
	RedoDepth int `json:"redo_depth"`
}

// TaskService handles task-related operations for all users.
type TaskService struct {
	users      *store.Registry
	mirror     mirror.Mirror
	defaultDue time.Time
	now        func() time.Time
}

// NewTaskService creates a new instance of TaskService. A nil mirror
// disables mirroring.
func NewTaskService(users *store.Registry, m mirror.Mirror, opts Options) *TaskService {
	if m == nil {
		m = mirror.Noop{}
	}
	if opts.DefaultDue.IsZero() {
		opts.DefaultDue = models.DefaultDue
	}
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	return &TaskService{
		users:      users,
		mirror:     m,
		defaultDue: opts.DefaultDue,
		now:        opts.Clock,
	}
}

// AddTask creates a task for username, allocating the user's next id.
// The add becomes the newest undoable operation and clears redo.
func (s *TaskService) AddTask(ctx context.Context, username string, d models.Draft) (models.Task, error) {
	name, err := requireUser(username)
	if err != nil {
		return models.Task{}, err
	}
	task, err := d.Build(s.defaultDue, s.now())
	if err != nil {
		return models.Task{}, err
	}

	u := s.users.GetOrCreate(name)
	err = u.Do(func(tasks *store.TaskList, h *history.History) error {
		task.ID = tasks.NextID()
		if err := h.Do(tasks, history.NewAddTask(task)); err != nil {
			return err
		}
		s.record(ctx, mirror.Event{Username: name, Action: mirror.ActionUpsert, Task: task})
		return nil
	})
	if err != nil {
		return models.Task{}, fmt.Errorf("add task for %s: %w", name, err)
	}
	return task, nil
}

// ListTasks returns the user's tasks in creation order. Unknown users
// have no tasks.
func (s *TaskService) ListTasks(username string) []models.Task {
	u, ok := s.users.Lookup(strings.TrimSpace(username))
	if !ok {
		return []models.Task{}
	}
	var out []models.Task
	u.Do(func(tasks *store.TaskList, _ *history.History) error {
		out = tasks.Snapshot()
		return nil
	})
	return out
}

// EditTask changes fields of an existing task as one undoable operation.
func (s *TaskService) EditTask(ctx context.Context, username string, id int, p models.Patch) (models.Task, error) {
	name, err := requireUser(username)
	if err != nil {
		return models.Task{}, err
	}
	if p.Empty() {
		return models.Task{}, fmt.Errorf("no fields to change: %w", models.ErrInvalidInput)
	}
	u, ok := s.users.Lookup(name)
	if !ok {
		return models.Task{}, fmt.Errorf("task #%d for %s: %w", id, name, models.ErrNotFound)
	}

	var after models.Task
	err = u.Do(func(tasks *store.TaskList, h *history.History) error {
		before, ok := tasks.Get(id)
		if !ok {
			return fmt.Errorf("task #%d: %w", id, models.ErrNotFound)
		}
		var err error
		if after, err = p.Apply(before); err != nil {
			return err
		}
		if err := h.Do(tasks, &history.EditTask{Before: before, After: after}); err != nil {
			return err
		}
		s.record(ctx, mirror.Event{Username: name, Action: mirror.ActionUpsert, Task: after})
		return nil
	})
	if err != nil {
		return models.Task{}, fmt.Errorf("edit task for %s: %w", name, err)
	}
	return after, nil
}

// DeleteTask removes a task as one undoable operation.
func (s *TaskService) DeleteTask(ctx context.Context, username string, id int) (models.Task, error) {
	name, err := requireUser(username)
	if err != nil {
		return models.Task{}, err
	}
	u, ok := s.users.Lookup(name)
	if !ok {
		return models.Task{}, fmt.Errorf("task #%d for %s: %w", id, name, models.ErrNotFound)
	}

	// op belongs to the history once done; read it only under the user lock.
	var removed models.Task
	err = u.Do(func(tasks *store.TaskList, h *history.History) error {
		op := history.NewDeleteTask(id)
		if err := h.Do(tasks, op); err != nil {
			return err
		}
		removed = op.Removed()
		s.record(ctx, mirror.Event{Username: name, Action: mirror.ActionRemove, Task: removed})
		return nil
	})
	if err != nil {
		return models.Task{}, fmt.Errorf("delete task for %s: %w", name, err)
	}
	return removed, nil
}

// Undo reverts the user's most recent operation.
func (s *TaskService) Undo(ctx context.Context, username string) (Outcome, error) {
	return s.step(ctx, username, "Undo", models.ErrNothingToUndo, (*history.History).Undo)
}

// Redo re-applies the user's most recently undone operation.
func (s *TaskService) Redo(ctx context.Context, username string) (Outcome, error) {
	return s.step(ctx, username, "Redo", models.ErrNothingToRedo, (*history.History).Redo)
}

type historyStep func(h *history.History, l history.TaskList) (history.Operation, error)

func (s *TaskService) step(ctx context.Context, username, verb string, empty error, fn historyStep) (Outcome, error) {
	name, err := requireUser(username)
	if err != nil {
		return Outcome{}, err
	}
	u, ok := s.users.Lookup(name)
	if !ok {
		return Outcome{}, empty
	}

	var out Outcome
	err = u.Do(func(tasks *store.TaskList, h *history.History) error {
		op, err := fn(h, tasks)
		if err != nil {
			return err
		}
		out = Outcome{
			Kind:    op.Kind(),
			TaskID:  op.TaskID(),
			Message: verb + " performed: " + op.Describe(),
		}

		ev := mirror.Event{Username: name, Action: mirror.ActionRemove, Task: models.Task{ID: out.TaskID}}
		if current, ok := tasks.Get(out.TaskID); ok {
			ev.Action, ev.Task = mirror.ActionUpsert, current
		}
		s.record(ctx, ev)
		return nil
	})
	if err != nil {
		return Outcome{}, fmt.Errorf("%s for %s: %w", strings.ToLower(verb), name, err)
	}
	return out, nil
}

// SearchTasks returns the user's tasks whose title contains query.
func (s *TaskService) SearchTasks(username, query string) []models.Task {
	if query == "" {
		return []models.Task{}
	}
	return s.filter(username, func(t models.Task) bool {
		return strings.Contains(t.Title, query)
	})
}

// FilterTasks returns the user's tasks matching status (when non-empty)
// and priority (when positive).
func (s *TaskService) FilterTasks(username, status string, priority int) []models.Task {
	return s.filter(username, func(t models.Task) bool {
		if status != "" && t.Status != status {
			return false
		}
		if priority > 0 && t.Priority != priority {
			return false
		}
		return true
	})
}

func (s *TaskService) filter(username string, keep func(models.Task) bool) []models.Task {
	out := []models.Task{}
	for _, t := range s.ListTasks(username) {
		if keep(t) {
			out = append(out, t)
		}
	}
	return out
}

// Users lists every user that has written at least once.
func (s *TaskService) Users() []string {
	return s.users.Names()
}

// AllTasks returns every user's tasks, users in first-seen order.
func (s *TaskService) AllTasks() []models.OwnedTask {
	out := []models.OwnedTask{}
	for _, u := range s.users.Users() {
		u.Do(func(tasks *store.TaskList, _ *history.History) error {
			for _, t := range tasks.Snapshot() {
				out = append(out, models.OwnedTask{Username: u.Name, TaskView: t.View()})
			}
			return nil
		})
	}
	return out
}

// Stats aggregates counts across users. Each user is read under its own
// lock, so the totals are not a single atomic snapshot.
func (s *TaskService) Stats() Stats {
	var st Stats
	for _, u := range s.users.Users() {
		st.Users++
		u.Do(func(tasks *store.TaskList, h *history.History) error {
			undo, redo := h.Depth()
			st.Tasks += tasks.Len()
			st.UndoDepth += undo
			st.RedoDepth += redo
			return nil
		})
	}
	return st
}

// record forwards ev to the mirror. Callers hold the user's lock, so one
// user's events reach the mirror in the order the store applied them.
// The in-memory store is authoritative: a mirror failure is logged and
// otherwise ignored.
func (s *TaskService) record(ctx context.Context, ev mirror.Event) {
	if err := s.mirror.Record(ctx, ev); err != nil {
		log.Printf("mirror: %v", err)
	}
}

func requireUser(username string) (string, error) {
	name := strings.TrimSpace(username)
	if name == "" {
		return "", fmt.Errorf("username is required: %w", models.ErrInvalidInput)
	}
	return name, nil
}
