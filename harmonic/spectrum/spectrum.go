package spectrum

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"sync"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-harmonics/harmonic/drift"
)

// Errors returned by sweep and lookup functions.
var (
	ErrInvalidIndex  = errors.New("spectrum: sweep bounds must satisfy 1 <= minN <= anchorN <= maxN")
	ErrAnchorMissing = errors.New("spectrum: anchor index missing from sweep")
	ErrEmptySpectrum = errors.New("spectrum: curve has no entries")
)

// Entry is one point of the spectrum curve.
type Entry struct {
	N     int     // harmonic index
	Root  float64 // drift root m(N)
	Proxy float64 // mass proxy N*sqrt(1-m^2)
	Ratio float64 // Proxy normalised by the anchor proxy
}

// Curve is the ordered result of a sweep, ascending in N with unique
// indices. It is pure data: no method mutates it after Generate returns.
type Curve struct {
	entries []Entry
	anchorN int
}

// MatchResult identifies the curve entry whose ratio is nearest a target.
type MatchResult struct {
	N         int
	Ratio     float64
	FracError float64 // |Ratio - target| / |target|
}

// Generate sweeps the drift solver over [minN, maxN] ascending and
// normalises every mass proxy against the proxy at anchorN.
//
// Bounds must satisfy 1 <= minN <= anchorN <= maxN. A per-index solver
// failure aborts the whole sweep by default, since a missing entry would
// silently shift every downstream ratio; [WithSkipDivergent] opts into
// skip-and-continue instead. [WithWorkers] distributes the sweep over a
// bounded worker pool; the result is identical to a serial sweep.
func Generate(minN, maxN, anchorN int, opts ...Option) (*Curve, error) {
	if minN < 1 || minN > maxN || anchorN < minN || anchorN > maxN {
		return nil, fmt.Errorf("%w: minN=%d maxN=%d anchorN=%d", ErrInvalidIndex, minN, maxN, anchorN)
	}

	cfg := defaultConfig()

	for _, opt := range opts {
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	var (
		entries []Entry
		err     error
	)

	if cfg.workers > 1 {
		entries, err = sweepParallel(minN, maxN, cfg)
	} else {
		entries, err = sweepSerial(minN, maxN, cfg)
	}

	if err != nil {
		return nil, err
	}

	anchorIdx := -1

	for i := range entries {
		if entries[i].N == anchorN {
			anchorIdx = i
			break
		}
	}

	if anchorIdx < 0 {
		return nil, fmt.Errorf("%w: anchorN=%d", ErrAnchorMissing, anchorN)
	}

	normalize(entries, anchorIdx)

	return &Curve{entries: entries, anchorN: anchorN}, nil
}

// normalize fills in the ratio of every entry relative to the anchor's
// proxy. The bulk pass is vectorised; the anchor entry is then pinned to
// exactly 1.0 so the invariant holds bit-exactly.
func normalize(entries []Entry, anchorIdx int) {
	proxies := make([]float64, len(entries))
	for i := range entries {
		proxies[i] = entries[i].Proxy
	}

	ratios := make([]float64, len(entries))
	vecmath.ScaleBlock(ratios, proxies, 1/entries[anchorIdx].Proxy)

	for i := range entries {
		entries[i].Ratio = ratios[i]
	}

	entries[anchorIdx].Ratio = 1.0
}

func sweepSerial(minN, maxN int, cfg config) ([]Entry, error) {
	entries := make([]Entry, 0, maxN-minN+1)

	for n := minN; n <= maxN; n++ {
		e, err := solveEntry(n)
		if err != nil {
			if cfg.skipDivergent {
				continue
			}

			return nil, fmt.Errorf("spectrum: sweep aborted: %w", err)
		}

		entries = append(entries, e)
	}

	return entries, nil
}

// sweepParallel runs the per-index solves across cfg.workers goroutines.
// Each index is independent, so results land in pre-assigned slots and
// only need compaction afterwards; the error scan is ascending in N so
// the reported failure matches what a serial sweep would hit first.
func sweepParallel(minN, maxN int, cfg config) ([]Entry, error) {
	count := maxN - minN + 1
	slots := make([]Entry, count)
	errs := make([]error, count)

	indices := make(chan int)

	var wg sync.WaitGroup

	for range cfg.workers {
		wg.Add(1)

		go func() {
			defer wg.Done()

			for n := range indices {
				e, err := solveEntry(n)
				if err != nil {
					errs[n-minN] = err
					continue
				}

				slots[n-minN] = e
			}
		}()
	}

	for n := minN; n <= maxN; n++ {
		indices <- n
	}

	close(indices)
	wg.Wait()

	entries := make([]Entry, 0, count)

	for i := range count {
		if errs[i] != nil {
			if cfg.skipDivergent {
				continue
			}

			return nil, fmt.Errorf("spectrum: sweep aborted: %w", errs[i])
		}

		entries = append(entries, slots[i])
	}

	return entries, nil
}

func solveEntry(n int) (Entry, error) {
	m, err := drift.Solve(n)
	if err != nil {
		return Entry{}, err
	}

	return Entry{
		N:     n,
		Root:  m,
		Proxy: float64(n) * math.Sqrt(1-m*m),
	}, nil
}

// Entries returns the curve points ascending in N. The slice is shared;
// callers must treat it as read-only.
func (c *Curve) Entries() []Entry {
	return c.entries
}

// Len returns the number of curve entries.
func (c *Curve) Len() int {
	return len(c.entries)
}

// AnchorN returns the anchor index the curve was normalised against.
func (c *Curve) AnchorN() int {
	return c.anchorN
}

// Lookup returns the entry for harmonic index n, if present.
func (c *Curve) Lookup(n int) (Entry, bool) {
	i := sort.Search(len(c.entries), func(i int) bool {
		return c.entries[i].N >= n
	})

	if i < len(c.entries) && c.entries[i].N == n {
		return c.entries[i], true
	}

	return Entry{}, false
}

// Match returns the entry whose ratio minimises |ratio - target| over the
// whole curve, ties broken by smallest N. The scan is linear: match calls
// are rare relative to sweep size, so no index structure is kept.
func (c *Curve) Match(target float64) (MatchResult, error) {
	if len(c.entries) == 0 {
		return MatchResult{}, ErrEmptySpectrum
	}

	best := c.entries[0]
	bestDiff := math.Abs(best.Ratio - target)

	for _, e := range c.entries[1:] {
		if d := math.Abs(e.Ratio - target); d < bestDiff {
			best, bestDiff = e, d
		}
	}

	res := MatchResult{N: best.N, Ratio: best.Ratio}
	if target != 0 {
		res.FracError = bestDiff / math.Abs(target)
	}

	return res, nil
}

// Spacing returns the root spacing m(n) - m(n+1), characterising how the
// allowed drift bands tighten with N. The second value reports whether
// both indices are present in the curve.
func (c *Curve) Spacing(n int) (float64, bool) {
	a, ok := c.Lookup(n)
	if !ok {
		return 0, false
	}

	b, ok := c.Lookup(n + 1)
	if !ok {
		return 0, false
	}

	return a.Root - b.Root, true
}
