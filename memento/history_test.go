package memento

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUndoUndoRedoTrace(t *testing.T) {
	editor := &Editor{}
	history := NewHistory()

	editor.Type("A")
	require.NoError(t, history.Backup(editor))
	editor.Type("B")
	require.NoError(t, history.Backup(editor))

	require.NoError(t, history.Undo(editor))
	assert.Equal(t, "A", editor.Content())

	require.NoError(t, history.Undo(editor))
	assert.Equal(t, "", editor.Content())

	require.NoError(t, history.Redo(editor))
	assert.Equal(t, "A", editor.Content())
}

func TestEmptyStacksAreReportedNotFatal(t *testing.T) {
	editor := &Editor{}
	history := NewHistory()
	assert.ErrorIs(t, history.Undo(editor), ErrNothingToUndo)
	assert.ErrorIs(t, history.Redo(editor), ErrNothingToRedo)
}

func TestFreshMutationClearsRedo(t *testing.T) {
	editor := &Editor{}
	history := NewHistory()

	editor.Type("A")
	require.NoError(t, history.Backup(editor))
	require.NoError(t, history.Undo(editor))

	editor.Type("C")
	require.NoError(t, history.Backup(editor))
	assert.ErrorIs(t, history.Redo(editor), ErrNothingToRedo)
}

func TestSnapshotIsOpaque(t *testing.T) {
	editor := &Editor{}
	editor.Type("secret")
	first, err := editor.Save()
	require.NoError(t, err)
	second, err := editor.Save()
	require.NoError(t, err)

	// equal state, distinct captures
	assert.NotEqual(t, first.ID(), second.ID())

	other := &Editor{}
	require.NoError(t, other.Restore(first))
	assert.Equal(t, "secret", other.Content())
}
