package spectrum

import "fmt"

const maxWorkers = 256

type config struct {
	skipDivergent bool
	workers       int
}

func defaultConfig() config {
	return config{
		skipDivergent: false,
		workers:       1,
	}
}

// Option configures a sweep.
type Option func(*config) error

// WithSkipDivergent makes the sweep skip indices whose solve diverges
// instead of aborting. The resulting curve simply lacks those entries;
// the anchor index must still converge or Generate fails.
func WithSkipDivergent() Option {
	return func(cfg *config) error {
		cfg.skipDivergent = true

		return nil
	}
}

// WithWorkers distributes the sweep over n goroutines (default 1, i.e.
// serial). Results are collected into ascending-N order, so the curve is
// identical to a serial sweep.
func WithWorkers(n int) Option {
	return func(cfg *config) error {
		if n < 1 || n > maxWorkers {
			return fmt.Errorf("spectrum: worker count must be in [1, %d]: %d", maxWorkers, n)
		}

		cfg.workers = n

		return nil
	}
}
