package scenario

import (
	"context"
	"sync"
	"time"

	"github.com/go-leo/gox/syncx/chanx"
)

// A Report is the outcome of one Scenario run.
type Report struct {
	Name    string        `json:"name"`
	Lines   []string      `json:"lines"`
	Elapsed time.Duration `json:"elapsed"`
}

// A Runner plays one named Scenario, or every registered Scenario in
// registration order, collecting a Report per run. The transcript lines
// are relayed unmodified to the configured writer, if any.
type Runner struct {
	registry *Registry
	options  *option
}

func NewRunner(registry *Registry, opts ...Option) *Runner {
	return &Runner{registry: registry, options: newOption(opts...)}
}

// Run plays the Scenario registered under name.
func (r *Runner) Run(ctx context.Context, name string) (Report, error) {
	s, err := r.registry.Lookup(name)
	if err != nil {
		return Report{Name: name}, err
	}
	return r.play(ctx, name, s)
}

// RunAll plays every registered Scenario in registration order, stopping
// at the first failure.
func (r *Runner) RunAll(ctx context.Context) ([]Report, error) {
	names := r.registry.Names()
	reports := make([]Report, 0, len(names))
	for _, name := range names {
		s, err := r.registry.Lookup(name)
		if err != nil {
			return reports, err
		}
		report, err := r.play(ctx, name, s)
		if err != nil {
			return reports, err
		}
		reports = append(reports, report)
	}
	return reports, nil
}

// AsyncRunAll plays every registered Scenario on the Runner's pool. Each
// Scenario still runs single-threaded with its own Transcript; only the
// runs themselves may overlap, so Report order is not deterministic.
func (r *Runner) AsyncRunAll(ctx context.Context) (<-chan Report, <-chan error) {
	names := r.registry.Names()
	reportC := make(chan Report, len(names))
	errCs := make([]<-chan error, 0, len(names))
	var wg sync.WaitGroup
	for _, name := range names {
		name := name
		errC := make(chan error, 1)
		wg.Add(1)
		err := r.options.Pool.Go(func() {
			defer wg.Done()
			defer close(errC)
			s, err := r.registry.Lookup(name)
			if err != nil {
				errC <- err
				return
			}
			report, err := r.play(ctx, name, s)
			if err != nil {
				errC <- err
				return
			}
			reportC <- report
		})
		if err != nil {
			errC <- err
			close(errC)
			wg.Done()
		}
		errCs = append(errCs, errC)
	}
	go func() {
		wg.Wait()
		close(reportC)
	}()
	return reportC, chanx.Combine[error](errCs...)
}

func (r *Runner) play(ctx context.Context, name string, s Scenario) (Report, error) {
	var t *Transcript
	if r.options.Writer != nil {
		t = NewTeeTranscript(r.options.Writer)
	} else {
		t = NewTranscript()
	}
	start := time.Now()
	if err := Chain(s, r.options.Middlewares...).Play(ctx, t); err != nil {
		return Report{Name: name}, err
	}
	return Report{Name: name, Lines: t.Lines(), Elapsed: time.Since(start)}, nil
}
