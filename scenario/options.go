package scenario

import (
	"io"

	"github.com/go-leo/gox/syncx/gopher"
	"github.com/go-leo/gox/syncx/gopher/sample"
)

type option struct {
	Writer      io.Writer
	Middlewares []Middleware
	Pool        gopher.Gopher
}

func newOption(opts ...Option) *option {
	o := &option{}
	for _, opt := range opts {
		opt(o)
	}
	if o.Pool == nil {
		o.Pool = sample.Gopher{}
	}
	return o
}

type Option func(*option)

// Writer tees every transcript line to w as it is emitted.
func Writer(w io.Writer) Option {
	return func(o *option) {
		o.Writer = w
	}
}

// Middlewares wraps every Scenario the Runner plays, outermost first.
func Middlewares(middlewares ...Middleware) Option {
	return func(o *option) {
		o.Middlewares = append(o.Middlewares, middlewares...)
	}
}

// Pool sets the goroutine pool used by AsyncRunAll.
func Pool(pool gopher.Gopher) Option {
	return func(o *option) {
		o.Pool = pool
	}
}
