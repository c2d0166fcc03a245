package composite

import (
	"context"

	"github.com/go-leo/gof/scenario"
)

// Scenario demonstrates the composite: a directory tree prints depth-first
// in insertion order, and a leaf rejects child operations.
func Scenario() scenario.Scenario {
	return scenario.Func(func(ctx context.Context, t *scenario.Transcript) error {
		root := NewDirectory("root")
		readme := NewFile("README.md")
		src := NewDirectory("src")
		_ = root.Add(readme)
		_ = root.Add(src)
		_ = src.Add(NewFile("main.go"))
		_ = src.Add(NewFile("util.go"))

		root.Print(t, 0)

		if err := readme.Add(NewFile("orphan.go")); err != nil {
			t.Printf("add to a file: %s", err)
		}
		return nil
	})
}
