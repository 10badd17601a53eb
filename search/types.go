package search

import "context"

// Options configures a search engine. The zero value runs with an
// unbounded expansion budget and context.Background.
type Options struct {
	Ctx             context.Context
	ExpansionBudget int // 0 means unbounded.
}

// DefaultOptions returns the zero-configuration Options.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// Option customizes Options at call time.
type Option func(*Options)

// WithContext sets the context checked for cancellation once per
// expansion.
func WithContext(ctx context.Context) Option {
	return func(o *Options) { o.Ctx = ctx }
}

// WithExpansionBudget caps the number of node expansions before the engine
// raises a *pathgraph.TimeoutError. A budget of 0 (the default) is
// unbounded.
func WithExpansionBudget(budget int) Option {
	return func(o *Options) { o.ExpansionBudget = budget }
}

func buildOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.Ctx == nil {
		o.Ctx = context.Background()
	}

	return o
}
