package command

import (
	"context"

	"github.com/go-leo/gof/scenario"
)

// Scenario demonstrates the command: the remote control runs whatever
// command it currently holds, fully decoupled from the light.
func Scenario() scenario.Scenario {
	return scenario.Func(func(ctx context.Context, t *scenario.Transcript) error {
		light := &Light{Name: "kitchen"}
		remote := &RemoteControl{}

		remote.SetCommand(NewTurnOnCommand(light, t))
		if err := remote.PressButton(ctx); err != nil {
			return err
		}
		remote.SetCommand(NewTurnOffCommand(light, t))
		return remote.PressButton(ctx)
	})
}
