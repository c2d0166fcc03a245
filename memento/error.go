package memento

import "errors"

var (
	// ErrNothingToUndo the undo stack is empty
	ErrNothingToUndo = errors.New("nothing to undo")

	// ErrNothingToRedo the redo stack is empty
	ErrNothingToRedo = errors.New("nothing to redo")
)
