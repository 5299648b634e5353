// Package store holds the in-memory per-user state: each user's ordered
// task list and command history, and the registry mapping usernames to
// them. State lives for the lifetime of the process.
package store

import (
	"sync"

	"github.com/shborse/Task-Manager/app/history"
)

// User is the state kept for one username. All access goes through
// Do, which serializes operations for that user only.
type User struct {
	Name string

	mu      sync.Mutex
	tasks   *TaskList
	history *history.History
}

func newUser(name string, historyLimit int) *User {
	return &User{
		Name:    name,
		tasks:   NewTaskList(),
		history: history.New(historyLimit),
	}
}

// Do runs fn while holding the user's lock.
func (u *User) Do(fn func(tasks *TaskList, h *history.History) error) error {
	u.mu.Lock()
	defer u.mu.Unlock()
	return fn(u.tasks, u.history)
}

// Registry maps usernames to their state. Usernames are case-sensitive.
type Registry struct {
	mu           sync.RWMutex
	users        map[string]*User
	order        []string // first-seen order
	historyLimit int
}

// NewRegistry creates an empty registry. historyLimit caps each user's
// undo stack; 0 leaves it unbounded.
func NewRegistry(historyLimit int) *Registry {
	return &Registry{
		users:        make(map[string]*User),
		historyLimit: historyLimit,
	}
}

// Lookup returns the user's state without creating it.
func (r *Registry) Lookup(name string) (*User, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.users[name]
	return u, ok
}

// GetOrCreate returns the user's state, creating it on first use.
// Concurrent first calls for the same name all get the same *User.
func (r *Registry) GetOrCreate(name string) *User {
	if u, ok := r.Lookup(name); ok {
		return u
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.users[name]; ok {
		return u
	}
	u := newUser(name, r.historyLimit)
	r.users[name] = u
	r.order = append(r.order, name)
	return u
}

// Names lists known users in the order they were first seen.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Users returns every user's state in first-seen order.
func (r *Registry) Users() []*User {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*User, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.users[name])
	}
	return out
}
