package command

import (
	"context"
	"errors"
)

// ErrNotCommand the invoker has no Command to run
var ErrNotCommand = errors.New("not implement Command interface")

// A Command encapsulates a unit of processing work to be performed.
// A concrete command binds one receiver and one operation at construction.
type Command interface {
	// Execute a unit of processing work to be performed
	Execute(ctx context.Context) error
}

// The CommandFunc type is an adapter to allow the use of ordinary functions as Command.
// If f is a function with the appropriate signature, CommandFunc(f) is a Command that calls f.
type CommandFunc func(ctx context.Context) error

// Execute calls f(ctx).
func (f CommandFunc) Execute(ctx context.Context) error {
	return f(ctx)
}
