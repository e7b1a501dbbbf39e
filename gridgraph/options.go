// SPDX-License-Identifier: MIT

package gridgraph

import (
	"context"
	"fmt"

	"github.com/katalvlaran/gridkit/grid"
)

// Option configures a traversal. An invalid Option is recorded and surfaced
// as ErrOptionViolation when the traversal is invoked.
type Option func(*Options)

// Options holds the resolved traversal parameters.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// Conn selects 4- or 8-neighbour adjacency.
	Conn grid.Connectivity

	// MaxDistance, if > 0, stops BFS expansion beyond this many steps.
	// 0 disables the limit.
	MaxDistance int

	// OnVisit is called for every cell BFS dequeues, with its distance.
	// A non-nil error aborts the walk and is returned wrapped.
	OnVisit func(p grid.Point, dist int) error

	err error
}

// DefaultOptions returns Options with Context.Background, Conn4, no
// distance limit and a no-op OnVisit.
func DefaultOptions() Options {
	return Options{
		Ctx:         context.Background(),
		Conn:        grid.Conn4,
		MaxDistance: 0,
		OnVisit:     func(grid.Point, int) error { return nil },
	}
}

func gatherOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o, o.err
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithConnectivity selects Conn4 or Conn8. Any other value is an
// ErrOptionViolation.
func WithConnectivity(c grid.Connectivity) Option {
	return func(o *Options) {
		if c != grid.Conn4 && c != grid.Conn8 {
			o.err = fmt.Errorf("%w: unknown connectivity %d", ErrOptionViolation, int(c))
			return
		}
		o.Conn = c
	}
}

// WithMaxDistance limits BFS to cells at most d steps from the start.
//
//	d > 0: limit to distance d
//	d == 0: explicit no limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDistance(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDistance cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDistance = d
	}
}

// WithOnVisit registers a callback run on every dequeued cell.
func WithOnVisit(fn func(p grid.Point, dist int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}
