package visitor

import (
	"context"

	"github.com/go-leo/gof/scenario"
)

// Scenario demonstrates the visitor: two visitors configure two modem
// types through double dispatch.
func Scenario() scenario.Scenario {
	return scenario.Func(func(ctx context.Context, t *scenario.Transcript) error {
		modems := []Modem{Hayes{}, Zoom{}}
		visitors := []ModemVisitor{ConfigureForDosVisitor{W: t}, ConfigureForUnixVisitor{W: t}}
		for _, visitor := range visitors {
			for _, modem := range modems {
				modem.Accept(visitor)
			}
		}
		return nil
	})
}
