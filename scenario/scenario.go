package scenario

import "context"

// A Scenario is the scripted sequence of operations demonstrating one
// design pattern. Playing a Scenario produces a deterministic, ordered
// sequence of lines on the Transcript.
type Scenario interface {
	Play(ctx context.Context, t *Transcript) error
}

// The Func type is an adapter to allow the use of ordinary functions as Scenario.
// If f is a function with the appropriate signature, Func(f) is a Scenario that calls f.
type Func func(ctx context.Context, t *Transcript) error

// Play calls f(ctx, t).
func (f Func) Play(ctx context.Context, t *Transcript) error {
	return f(ctx, t)
}

// Noop is a Scenario that does nothing and produces no lines.
var Noop Scenario = Func(func(ctx context.Context, t *Transcript) error { return nil })
