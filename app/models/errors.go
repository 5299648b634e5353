package models

import "errors"

// Errors returned by the task core. Callers match them with errors.Is;
// most are wrapped with context on the way out.
var (
	ErrInvalidInput  = errors.New("invalid input")
	ErrNotFound      = errors.New("task not found")
	ErrNothingToUndo = errors.New("nothing to undo")
	ErrNothingToRedo = errors.New("nothing to redo")
)
