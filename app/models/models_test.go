package models

import (
	"encoding/json"
	"errors"
	"testing"
	"time"
)

func TestNotificationWireShapes(t *testing.T) {
	task := Task{
		ID:        3,
		Title:     "Buy milk",
		Due:       time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC),
		Priority:  2,
		Status:    "Pending",
		CreatedAt: time.Date(2025, 6, 1, 9, 15, 0, 0, time.UTC),
	}
	feed := []Notification{TaskNotification(task), TextNotification("No recent notifications")}

	b, err := json.Marshal(feed)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `[{"id":3,"title":"Buy milk","due":"2025-12-31","priority":2,"status":"Pending","time":"2025-06-01 09:15:00"},"No recent notifications"]`
	if string(b) != want {
		t.Fatalf("unexpected JSON:\n got %s\nwant %s", b, want)
	}

	var back []Notification
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(back) != 2 || !back[0].IsTask() || back[0].Task.Title != "Buy milk" || back[1].IsTask() || back[1].Message != "No recent notifications" {
		t.Fatalf("unexpected decoded feed %+v", back)
	}
}

func TestNotificationRejectsOtherShapes(t *testing.T) {
	var n Notification
	if err := json.Unmarshal([]byte(`42`), &n); err == nil {
		t.Fatal("expected error for a number")
	}
}

func TestDraftBuildDefaults(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	task, err := Draft{Title: " x "}.Build(DefaultDue, now)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if task.Title != "x" || task.Priority != DefaultPriority || task.Status != DefaultStatus || !task.Due.Equal(DefaultDue) {
		t.Fatalf("defaults not applied: %+v", task)
	}
	if task.ID != 0 {
		t.Fatalf("Build must not assign an id, got %d", task.ID)
	}

	zero := 0
	task, _ = Draft{Title: "x", Priority: &zero}.Build(DefaultDue, now)
	if task.Priority != 0 {
		t.Fatalf("explicit zero priority should be kept, got %d", task.Priority)
	}
}

func TestDraftBuildInvalid(t *testing.T) {
	for _, d := range []Draft{{Title: ""}, {Title: " \t"}, {Title: "x", Due: "tomorrow"}} {
		if _, err := d.Build(DefaultDue, time.Now()); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("%+v: expected ErrInvalidInput, got %v", d, err)
		}
	}
}

func TestPatchKeepsIdentity(t *testing.T) {
	orig := Task{ID: 5, Title: "a", Status: "Pending", CreatedAt: time.Now()}
	status := "  "
	due := "2026-02-01"
	got, err := Patch{Status: &status, Due: &due}.Apply(orig)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if got.ID != orig.ID || !got.CreatedAt.Equal(orig.CreatedAt) {
		t.Fatal("patch changed identity fields")
	}
	if got.Status != "Pending" {
		t.Fatalf("blank status should be ignored, got %q", got.Status)
	}
	if got.Due.Format(DateLayout) != "2026-02-01" {
		t.Fatalf("due not applied: %v", got.Due)
	}
}

func TestTaskDone(t *testing.T) {
	for status, want := range map[string]bool{"Done": true, "completed": true, "Pending": false, "In progress": false} {
		if got := (Task{Status: status}).Done(); got != want {
			t.Errorf("%q: Done() = %v, want %v", status, got, want)
		}
	}
}
