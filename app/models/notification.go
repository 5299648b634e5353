package models

import (
	"bytes"
	"encoding/json"
	"errors"
)

// Notification is one entry of a user's feed. Exactly one of Task or
// Message is set: the client renders the first as a task card and the
// second as plain text.
type Notification struct {
	Task    *TaskView
	Message string
}

// TaskNotification builds the task variant.
func TaskNotification(t Task) Notification {
	v := t.View()
	return Notification{Task: &v}
}

// TextNotification builds the message variant.
func TextNotification(msg string) Notification {
	return Notification{Message: msg}
}

// IsTask reports whether n is the task variant.
func (n Notification) IsTask() bool { return n.Task != nil }

// MarshalJSON writes an object for the task variant and a bare string otherwise.
func (n Notification) MarshalJSON() ([]byte, error) {
	if n.Task != nil {
		return json.Marshal(n.Task)
	}
	return json.Marshal(n.Message)
}

// UnmarshalJSON accepts either wire shape.
func (n *Notification) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 {
		return errors.New("empty notification")
	}
	switch b[0] {
	case '"':
		*n = Notification{}
		return json.Unmarshal(b, &n.Message)
	case '{':
		var v TaskView
		if err := json.Unmarshal(b, &v); err != nil {
			return err
		}
		*n = Notification{Task: &v}
		return nil
	}
	return errors.New("notification must be an object or a string")
}
