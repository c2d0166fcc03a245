package memento

import (
	"context"

	"github.com/go-leo/gof/scenario"
)

// Scenario demonstrates the memento: type, back up, undo twice, redo once,
// then run out of redo steps.
func Scenario() scenario.Scenario {
	return scenario.Func(func(ctx context.Context, t *scenario.Transcript) error {
		editor := &Editor{}
		history := NewHistory()

		editor.Type("A")
		if err := history.Backup(editor); err != nil {
			return err
		}
		editor.Type("B")
		if err := history.Backup(editor); err != nil {
			return err
		}
		t.Printf("content: %q", editor.Content())

		for i := 0; i < 2; i++ {
			if err := history.Undo(editor); err != nil {
				return err
			}
			t.Printf("after undo: %q", editor.Content())
		}
		if err := history.Redo(editor); err != nil {
			return err
		}
		t.Printf("after redo: %q", editor.Content())

		// a fresh recorded mutation clears the redo stack
		editor.Type("C")
		if err := history.Backup(editor); err != nil {
			return err
		}
		t.Printf("content: %q", editor.Content())
		if err := history.Redo(editor); err != nil {
			t.Printf("redo after mutation: %s", err)
		}
		return nil
	})
}
