package observer

import (
	"context"

	"github.com/go-leo/gof/scenario"
)

// Scenario demonstrates the observer: both races watch the weather, then
// the orcs stop caring.
func Scenario() scenario.Scenario {
	return scenario.Func(func(ctx context.Context, t *scenario.Transcript) error {
		weather := NewWeather(t)
		hobbits := Hobbits{}
		orcs := Orcs{}
		weather.Subscribe(hobbits)
		weather.Subscribe(orcs)

		weather.Change(Rainy)
		weather.Unsubscribe(orcs)
		weather.Change(Windy)
		return nil
	})
}
