package command

import (
	"context"
	"fmt"
	"io"
)

// Light is the receiver. Commands bind it at construction time.
type Light struct {
	Name string
}

func (l *Light) On(w io.Writer) {
	fmt.Fprintf(w, "%s light is on\n", l.Name)
}

func (l *Light) Off(w io.Writer) {
	fmt.Fprintf(w, "%s light is off\n", l.Name)
}

// NewTurnOnCommand binds the on operation to one light.
func NewTurnOnCommand(light *Light, w io.Writer) Command {
	return CommandFunc(func(ctx context.Context) error {
		light.On(w)
		return nil
	})
}

// NewTurnOffCommand binds the off operation to one light.
func NewTurnOffCommand(light *Light, w io.Writer) Command {
	return CommandFunc(func(ctx context.Context) error {
		light.Off(w)
		return nil
	})
}

// RemoteControl is the invoker. It stores the current Command and knows
// nothing about receivers.
type RemoteControl struct {
	command Command
}

func (r *RemoteControl) SetCommand(cmd Command) {
	r.command = cmd
}

func (r *RemoteControl) PressButton(ctx context.Context) error {
	if r.command == nil {
		return ErrNotCommand
	}
	return r.command.Execute(ctx)
}
