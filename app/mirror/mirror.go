// Package mirror forwards task changes to an external sink after they have
// been applied in memory. Mirrors are write-only: nothing is read back.
package mirror

import (
	"context"

	"github.com/shborse/Task-Manager/app/models"
)

// Action says what happened to a task.
type Action string

const (
	ActionUpsert Action = "upsert"
	ActionRemove Action = "remove"
)

// Event is one change to one user's task.
type Event struct {
	Username string
	Action   Action
	Task     models.Task
}

// Mirror receives task changes. Record is called while the user's lock is
// held, so events for one user arrive in the order the store applied them.
type Mirror interface {
	Record(ctx context.Context, ev Event) error
	Close(ctx context.Context) error
}

// Noop discards every event.
type Noop struct{}

// Record does nothing.
func (Noop) Record(context.Context, Event) error { return nil }

// Close does nothing.
func (Noop) Close(context.Context) error { return nil }
