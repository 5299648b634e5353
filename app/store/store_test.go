package store

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/shborse/Task-Manager/app/history"
	"github.com/shborse/Task-Manager/app/models"
)

// ---------------------------------------------------------------------------
// TaskList
// ---------------------------------------------------------------------------

func TestTaskListAppendKeepsOrder(t *testing.T) {
	l := NewTaskList()
	for _, title := range []string{"a", "b", "c"} {
		if err := l.Append(models.Task{ID: l.NextID(), Title: title}); err != nil {
			t.Fatalf("append %s: %v", title, err)
		}
	}
	got := l.Snapshot()
	if len(got) != 3 || got[0].Title != "a" || got[2].Title != "c" {
		t.Fatalf("unexpected order: %+v", got)
	}
	if got[0].ID != 1 || got[2].ID != 3 {
		t.Fatalf("unexpected ids: %+v", got)
	}
}

func TestTaskListIDsNotReused(t *testing.T) {
	l := NewTaskList()
	l.Append(models.Task{ID: l.NextID(), Title: "a"})
	if _, _, err := l.Remove(1); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if id := l.NextID(); id != 2 {
		t.Fatalf("expected next id 2 after removal, got %d", id)
	}
}

func TestTaskListRemoveNotFound(t *testing.T) {
	l := NewTaskList()
	if _, _, err := l.Remove(5); !errors.Is(err, models.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestTaskListInsertAtIndex(t *testing.T) {
	l := NewTaskList()
	l.Append(models.Task{ID: 1})
	l.Append(models.Task{ID: 3})
	if err := l.Insert(1, models.Task{ID: 2}); err != nil {
		t.Fatalf("insert: %v", err)
	}
	got := l.Snapshot()
	for i, want := range []int{1, 2, 3} {
		if got[i].ID != want {
			t.Fatalf("position %d: expected id %d, got %d", i, want, got[i].ID)
		}
	}
}

func TestTaskListRejectsDuplicateID(t *testing.T) {
	l := NewTaskList()
	l.Append(models.Task{ID: 1})
	if err := l.Append(models.Task{ID: 1}); !errors.Is(err, models.ErrInvalidInput) {
		t.Fatalf("expected duplicate id to be rejected, got %v", err)
	}
	if err := l.Append(models.Task{}); !errors.Is(err, models.ErrInvalidInput) {
		t.Fatalf("expected missing id to be rejected, got %v", err)
	}
}

func TestTaskListReplace(t *testing.T) {
	l := NewTaskList()
	l.Append(models.Task{ID: 1, Title: "old"})
	old, err := l.Replace(models.Task{ID: 1, Title: "new"})
	if err != nil {
		t.Fatalf("replace: %v", err)
	}
	if old.Title != "old" {
		t.Fatalf("expected old title returned, got %q", old.Title)
	}
	if got, _ := l.Get(1); got.Title != "new" {
		t.Fatalf("expected new title stored, got %q", got.Title)
	}
	if _, err := l.Replace(models.Task{ID: 2}); !errors.Is(err, models.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestSnapshotIsCopy(t *testing.T) {
	l := NewTaskList()
	l.Append(models.Task{ID: 1, Title: "a"})
	snap := l.Snapshot()
	snap[0].Title = "changed"
	if got, _ := l.Get(1); got.Title != "a" {
		t.Fatal("mutating a snapshot changed the list")
	}
}

// ---------------------------------------------------------------------------
// Registry
// ---------------------------------------------------------------------------

func TestLookupDoesNotCreate(t *testing.T) {
	r := NewRegistry(0)
	if _, ok := r.Lookup("bob"); ok {
		t.Fatal("unexpected user")
	}
	if len(r.Names()) != 0 {
		t.Fatal("Lookup must not create users")
	}
}

func TestUsernamesCaseSensitive(t *testing.T) {
	r := NewRegistry(0)
	a := r.GetOrCreate("alice")
	b := r.GetOrCreate("Alice")
	if a == b {
		t.Fatal("alice and Alice must be distinct users")
	}
	if names := r.Names(); len(names) != 2 || names[0] != "alice" || names[1] != "Alice" {
		t.Fatalf("unexpected names %v", names)
	}
}

func TestConcurrentGetOrCreate(t *testing.T) {
	r := NewRegistry(0)
	const n = 64
	got := make([]*User, n)

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			got[i] = r.GetOrCreate("carol")
		}(i)
	}
	wg.Wait()

	for i := 1; i < n; i++ {
		if got[i] != got[0] {
			t.Fatal("concurrent first writes created more than one user")
		}
	}
	if len(r.Names()) != 1 {
		t.Fatalf("expected one user, got %v", r.Names())
	}
}

func TestConcurrentUsersIsolated(t *testing.T) {
	r := NewRegistry(0)
	const perUser = 100
	users := []string{"u1", "u2", "u3", "u4"}

	var wg sync.WaitGroup
	for _, name := range users {
		for i := 0; i < perUser; i++ {
			wg.Add(1)
			go func(name string, i int) {
				defer wg.Done()
				u := r.GetOrCreate(name)
				u.Do(func(tasks *TaskList, h *history.History) error {
					task := models.Task{ID: tasks.NextID(), Title: fmt.Sprintf("%s-%d", name, i)}
					return h.Do(tasks, history.NewAddTask(task))
				})
			}(name, i)
		}
	}
	wg.Wait()

	for _, name := range users {
		u, _ := r.Lookup(name)
		u.Do(func(tasks *TaskList, h *history.History) error {
			if tasks.Len() != perUser {
				t.Errorf("%s: expected %d tasks, got %d", name, perUser, tasks.Len())
			}
			if undo, _ := h.Depth(); undo != perUser {
				t.Errorf("%s: expected undo depth %d, got %d", name, perUser, undo)
			}
			return nil
		})
	}
}
