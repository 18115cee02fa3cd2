// Package eval runs the bounded escape-time test over a full sample grid
// and streams the in-set points to a Sink. The index space is split
// statically across a fixed pool of workers; the sink is the only shared
// resource and every write to it happens inside one short critical section.
package eval

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/marben/mandelgrid"
)

var (
	// ErrThreads flags a non-positive worker count.
	ErrThreads = errors.New("nthreads must be positive")
	// ErrPoints flags a grid resolution below 2. One sample per axis would
	// divide by zero in the index-to-coordinate mapping.
	ErrPoints = errors.New("npoints must be at least 2")
)

// Config parameterizes one evaluation run. Threads and Points come from the
// caller; Region and MaxIter default to the full-set view and the standard
// iteration cap when left zero.
type Config struct {
	Threads int
	Points  int
	Region  mandelgrid.Region
	MaxIter int
}

func (c *Config) validate() error {
	if c.Threads <= 0 {
		return fmt.Errorf("%w (got %d)", ErrThreads, c.Threads)
	}
	if c.Points < 2 {
		return fmt.Errorf("%w (got %d)", ErrPoints, c.Points)
	}
	if c.Region == (mandelgrid.Region{}) {
		c.Region = mandelgrid.FullSet
	}
	if c.MaxIter == 0 {
		c.MaxIter = mandelgrid.MaxIter
	}
	return nil
}

// Run evaluates every point of the cfg.Points × cfg.Points grid and emits
// the in-set ones to sink. Validation happens before any output, so an
// invalid config produces no stream at all. The set of emitted points does
// not depend on cfg.Threads; only their interleaving does.
//
// A sink error is fatal: the first one is kept, all later emissions are
// suppressed and the remaining workers bail out. Run returns that first
// error after the pool has drained.
func Run(cfg Config, sink Sink) error {
	if err := cfg.validate(); err != nil {
		return err
	}
	if err := sink.Header(); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	grid := mandelgrid.Grid{Region: cfg.Region, N: cfg.Points}

	var (
		mu      sync.Mutex
		sinkErr error
		failed  atomic.Bool
	)
	emit := func(x, y float64) {
		mu.Lock()
		defer mu.Unlock()
		if sinkErr != nil {
			return
		}
		if err := sink.Point(x, y); err != nil {
			sinkErr = fmt.Errorf("write point: %w", err)
			failed.Store(true)
		}
	}

	var wg sync.WaitGroup
	for _, s := range partition(grid.Cells(), cfg.Threads) {
		wg.Add(1)
		go func(s span) {
			defer wg.Done()
			for k := s.Lo; k < s.Hi; k++ {
				if failed.Load() {
					return
				}
				x, y := grid.At(k/cfg.Points, k%cfg.Points)
				if mandelgrid.EscapeIter(x, y, cfg.MaxIter) == cfg.MaxIter {
					emit(x, y)
				}
			}
		}(s)
	}
	wg.Wait()

	mu.Lock()
	defer mu.Unlock()
	return sinkErr
}
