package singleton

import (
	"context"

	"github.com/go-leo/gof/scenario"
)

// Scenario demonstrates the singleton: the first acquisition fixes the
// value, later acquisitions with other arguments observe the same instance.
func Scenario() scenario.Scenario {
	return scenario.Func(func(ctx context.Context, t *scenario.Transcript) error {
		first := GetInstance("gold")
		second := GetInstance("silver")
		t.Printf("acquired: %s", first.Value())
		t.Printf("acquired again with different argument: %s", second.Value())
		t.Printf("same instance: %t", first == second)
		t.Printf("constructions: %d", Default().Constructed())
		return nil
	})
}
