package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/shborse/Task-Manager/app/history"
	"github.com/shborse/Task-Manager/app/models"
	"github.com/shborse/Task-Manager/app/store"
)

// NoRecentNotifications is shown when a user has tasks but nothing to report.
const NoRecentNotifications = "No recent notifications"

// NotificationService derives a user's feed from the current store and
// history on every call. Nothing is cached, so the feed always reflects
// the latest undo or redo.
type NotificationService struct {
	users *store.Registry
	limit int
	now   func() time.Time
}

// NewNotificationService creates a feed listing at most limit recent tasks.
func NewNotificationService(users *store.Registry, limit int, clock func() time.Time) *NotificationService {
	if limit < 1 {
		limit = 1
	}
	if clock == nil {
		clock = time.Now
	}
	return &NotificationService{users: users, limit: limit, now: clock}
}

// GetNotifications returns, in order: the tasks touched by the user's most
// recent operations (newest first), then one message per overdue open task.
// Unknown users and empty stores get an empty feed.
func (s *NotificationService) GetNotifications(username string) []models.Notification {
	out := []models.Notification{}
	u, ok := s.users.Lookup(strings.TrimSpace(username))
	if !ok {
		return out
	}
	today := dateOf(s.now())

	u.Do(func(tasks *store.TaskList, h *history.History) error {
		if tasks.Len() == 0 {
			return nil
		}
		seen := make(map[int]bool)
		for _, op := range h.Recent(0) {
			if len(seen) >= s.limit {
				break
			}
			id := op.TaskID()
			if seen[id] {
				continue
			}
			if t, ok := tasks.Get(id); ok {
				seen[id] = true
				out = append(out, models.TaskNotification(t))
			}
		}
		for _, t := range tasks.Snapshot() {
			if t.Due.Before(today) && !t.Done() {
				out = append(out, models.TextNotification(fmt.Sprintf("Task #%d overdue: %s", t.ID, t.Title)))
			}
		}
		if len(out) == 0 {
			out = append(out, models.TextNotification(NoRecentNotifications))
		}
		return nil
	})
	return out
}

// dateOf truncates t to its calendar date, expressed in UTC like task due dates.
func dateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
