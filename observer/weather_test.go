package observer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotificationOrderIsSubscriptionOrder(t *testing.T) {
	var buf strings.Builder
	weather := NewWeather(&buf)
	weather.Subscribe(Orcs{})
	weather.Subscribe(Hobbits{})

	weather.Change(Rainy)
	want := "the orcs are facing rainy weather now\n" +
		"the hobbits are facing rainy weather now\n"
	assert.Equal(t, want, buf.String())
}

func TestUnsubscribeStopsNotifications(t *testing.T) {
	var buf strings.Builder
	weather := NewWeather(&buf)
	weather.Subscribe(Hobbits{})
	weather.Subscribe(Orcs{})
	weather.Unsubscribe(Orcs{})

	weather.Change(Windy)
	assert.Equal(t, "the hobbits are facing windy weather now\n", buf.String())
}

func TestUnsubscribeUnknownObserverIsHarmless(t *testing.T) {
	var buf strings.Builder
	weather := NewWeather(&buf)
	weather.Subscribe(Hobbits{})
	weather.Unsubscribe(Orcs{})

	weather.Change(Sunny)
	assert.Equal(t, "the hobbits are facing sunny weather now\n", buf.String())
}

func TestCurrentTracksLastChange(t *testing.T) {
	weather := NewWeather(&strings.Builder{})
	assert.Equal(t, Sunny, weather.Current())
	weather.Change(Rainy)
	assert.Equal(t, Rainy, weather.Current())
}
