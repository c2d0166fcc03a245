package observer

import (
	"fmt"
	"io"

	"github.com/go-leo/gox/slicex"
)

type WeatherType string

const (
	Sunny WeatherType = "sunny"
	Rainy WeatherType = "rainy"
	Windy WeatherType = "windy"
)

// An Observer is told about every weather change.
type Observer interface {
	Update(w io.Writer, weather WeatherType)
}

type Hobbits struct{}

func (Hobbits) Update(w io.Writer, weather WeatherType) {
	fmt.Fprintf(w, "the hobbits are facing %s weather now\n", weather)
}

type Orcs struct{}

func (Orcs) Update(w io.Writer, weather WeatherType) {
	fmt.Fprintf(w, "the orcs are facing %s weather now\n", weather)
}

// Weather is the subject. Observers are notified in subscription order and
// may unsubscribe at any time.
type Weather struct {
	w         io.Writer
	current   WeatherType
	observers []Observer
}

func NewWeather(w io.Writer) *Weather {
	return &Weather{w: w, current: Sunny}
}

func (s *Weather) Subscribe(o Observer) {
	s.observers = append(s.observers, o)
}

func (s *Weather) Unsubscribe(o Observer) {
	indexes := slicex.Indexes(s.observers, o)
	if slicex.IsEmpty(indexes) {
		return
	}
	s.observers = slicex.DeleteAll(s.observers, indexes...)
}

func (s *Weather) Change(next WeatherType) {
	s.current = next
	for _, o := range s.observers {
		o.Update(s.w, next)
	}
}

func (s *Weather) Current() WeatherType {
	return s.current
}
