// Package history implements a linear undo/redo history of reversible
// task operations.
//
// Operations are strictly LIFO: Undo reverts the newest applied operation,
// Redo re-applies the newest reverted one, and any new Do discards the
// redo stack. A failed step leaves both the task list and the stacks as
// they were before the call.
package history

import "github.com/shborse/Task-Manager/app/models"

// History is a per-user pair of undo and redo stacks. It is not safe for
// concurrent use; the owning user's lock guards it.
type History struct {
	undo  []Operation
	redo  []Operation
	limit int // max undo depth, 0 = unbounded
}

// New creates an empty history keeping at most limit undo entries.
func New(limit int) *History {
	if limit < 0 {
		limit = 0
	}
	return &History{limit: limit}
}

// Do applies op and records it. The redo stack is cleared only if op applied.
func (h *History) Do(l TaskList, op Operation) error {
	if err := op.Apply(l); err != nil {
		return err
	}
	h.push(op)
	h.redo = nil
	return nil
}

// Undo reverts the most recent operation and moves it to the redo stack.
func (h *History) Undo(l TaskList) (Operation, error) {
	if len(h.undo) == 0 {
		return nil, models.ErrNothingToUndo
	}
	op := h.undo[len(h.undo)-1]
	if err := op.Revert(l); err != nil {
		return nil, err
	}
	h.undo = h.undo[:len(h.undo)-1]
	h.redo = append(h.redo, op)
	return op, nil
}

// Redo re-applies the most recently undone operation.
func (h *History) Redo(l TaskList) (Operation, error) {
	if len(h.redo) == 0 {
		return nil, models.ErrNothingToRedo
	}
	op := h.redo[len(h.redo)-1]
	if err := op.Apply(l); err != nil {
		return nil, err
	}
	h.redo = h.redo[:len(h.redo)-1]
	h.push(op)
	return op, nil
}

// Recent returns up to n undoable operations, newest first.
func (h *History) Recent(n int) []Operation {
	if n <= 0 || n > len(h.undo) {
		n = len(h.undo)
	}
	out := make([]Operation, 0, n)
	for i := len(h.undo) - 1; i >= 0 && len(out) < n; i-- {
		out = append(out, h.undo[i])
	}
	return out
}

// Depth reports the sizes of the undo and redo stacks.
func (h *History) Depth() (undo, redo int) {
	return len(h.undo), len(h.redo)
}

func (h *History) push(op Operation) {
	h.undo = append(h.undo, op)
	if h.limit > 0 && len(h.undo) > h.limit {
		// drop the oldest entry
		copy(h.undo, h.undo[1:])
		h.undo[len(h.undo)-1] = nil
		h.undo = h.undo[:len(h.undo)-1]
	}
}
