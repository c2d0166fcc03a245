package chain

import (
	"context"

	"github.com/go-leo/gof/scenario"
)

// Scenario demonstrates the chain of responsibility: each request travels
// the Auth→Log→Data chain until one handler takes it; an unrecognized
// request falls off the end silently.
func Scenario() scenario.Scenario {
	return scenario.Func(func(ctx context.Context, t *scenario.Transcript) error {
		chain := NewAuthHandler(NewLogHandler(NewDataHandler(nil)))
		chain.Handle(t, Request{Kind: KindData, Body: "users"})
		chain.Handle(t, Request{Kind: KindAuth, Body: "alice"})
		chain.Handle(t, Request{Kind: "unknown", Body: "noise"})
		chain.Handle(t, Request{Kind: KindLog, Body: "login"})
		return nil
	})
}
