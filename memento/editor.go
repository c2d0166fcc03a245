package memento

import (
	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"
)

type editorState struct {
	Content string `json:"content"`
}

// A Snapshot is an opaque capture of the editor's state at one point in
// time. Only the originator ever looks inside; the caretaker just stacks it.
type Snapshot struct {
	id    uuid.UUID
	state []byte
}

// ID identifies the capture without revealing anything about its contents.
func (s Snapshot) ID() uuid.UUID {
	return s.id
}

// Editor is the originator.
type Editor struct {
	content string
}

func (e *Editor) Type(text string) {
	e.content += text
}

func (e *Editor) Content() string {
	return e.content
}

// Reset puts the editor back to its initial empty state.
func (e *Editor) Reset() {
	e.content = ""
}

func (e *Editor) Save() (Snapshot, error) {
	state, err := jsoniter.Marshal(editorState{Content: e.content})
	if err != nil {
		return Snapshot{}, err
	}
	return Snapshot{id: uuid.New(), state: state}, nil
}

func (e *Editor) Restore(s Snapshot) error {
	var state editorState
	if err := jsoniter.Unmarshal(s.state, &state); err != nil {
		return err
	}
	e.content = state.Content
	return nil
}
