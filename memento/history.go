package memento

// History is the caretaker. It keeps snapshots in two ordered stacks and
// never inspects their contents.
type History struct {
	undo []Snapshot
	redo []Snapshot
}

func NewHistory() *History {
	return &History{}
}

// Backup records the editor's current state. A fresh recorded mutation
// invalidates everything that was undone, so the redo stack is cleared.
func (h *History) Backup(editor *Editor) error {
	s, err := editor.Save()
	if err != nil {
		return err
	}
	h.undo = append(h.undo, s)
	h.redo = nil
	return nil
}

// Undo pops the current snapshot onto the redo stack and restores the new
// top of the undo stack; with the undo stack drained it restores the
// initial empty state.
func (h *History) Undo(editor *Editor) error {
	if len(h.undo) == 0 {
		return ErrNothingToUndo
	}
	current := h.undo[len(h.undo)-1]
	h.undo = h.undo[:len(h.undo)-1]
	h.redo = append(h.redo, current)
	if len(h.undo) == 0 {
		editor.Reset()
		return nil
	}
	return editor.Restore(h.undo[len(h.undo)-1])
}

// Redo pops the redo stack, pushes the snapshot back onto undo and
// restores it.
func (h *History) Redo(editor *Editor) error {
	if len(h.redo) == 0 {
		return ErrNothingToRedo
	}
	s := h.redo[len(h.redo)-1]
	h.redo = h.redo[:len(h.redo)-1]
	h.undo = append(h.undo, s)
	return editor.Restore(s)
}
