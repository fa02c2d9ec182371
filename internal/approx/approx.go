// Package approx maps arbitrary RGB values to the closest entry of a
// constrained target palette.
//
// Palette entries are projected into the comparison space once per
// (palette, metric) pair and reused for every request. Results are
// cached per (input, palette, metric, count); the cache tolerates
// redundant concurrent computation of the same key and inserts finished
// results whole, so readers never observe a partial entry.
package approx

import (
	"errors"
	"fmt"
	"sync"

	"termhue/internal/color"
	"termhue/internal/palette"
)

// ErrEmptyPalette reports an approximation request against a palette
// with no entries. This is a configuration error, not a runtime miss:
// against any non-empty palette approximation always succeeds, however
// large the distance.
var ErrEmptyPalette = errors.New("empty target palette")

// Match is one approximation result: the matched palette color and its
// exact distance to the input under the requested metric.
type Match struct {
	Color    color.Color
	Distance float64
}

// EntryMatch pairs a raw palette entry with its distance. Produced by
// Search for callers working with explicit entry lists.
type EntryMatch struct {
	Entry    palette.Entry
	Distance float64
}

// Search finds the n entries closest to rgb under metric m, in
// ascending distance order. Entries must be sorted by ascending code;
// on equal distance the earlier (lower-code) entry ranks first.
func Search(entries []palette.Entry, rgb color.RGB, n int, m color.Metric) ([]EntryMatch, error) {
	if len(entries) == 0 {
		return nil, ErrEmptyPalette
	}
	if n < 1 {
		return nil, fmt.Errorf("result count must be positive, got %d", n)
	}

	q, err := m.Project(rgb)
	if err != nil {
		return nil, err
	}

	best := make([]EntryMatch, 0, n)
	for _, e := range entries {
		p, err := m.Project(e.RGB)
		if err != nil {
			return nil, err
		}
		best = rank(best, EntryMatch{Entry: e, Distance: m.Between(q, p)}, n)
	}
	return best, nil
}

// rank inserts cand into the ascending top-n list. Strict comparisons
// keep the ordering stable: an equal-distance candidate never displaces
// or precedes an earlier entry.
func rank(best []EntryMatch, cand EntryMatch, n int) []EntryMatch {
	if len(best) == n && cand.Distance >= best[n-1].Distance {
		return best
	}

	pos := len(best)
	for pos > 0 && cand.Distance < best[pos-1].Distance {
		pos--
	}

	if len(best) < n {
		best = append(best, EntryMatch{})
	}
	copy(best[pos+1:], best[pos:])
	best[pos] = cand
	return best
}

/////////////////////////////////////////////////////////////////////////////
// APPROXIMATOR
/////////////////////////////////////////////////////////////////////////////

type tableKey struct {
	id     palette.ID
	metric color.Metric
}

// projTable holds one palette's entries projected into a comparison
// space, built once and shared by all subsequent requests.
type projTable struct {
	once    sync.Once
	entries []palette.Entry
	points  [][3]float64
	err     error
}

type resultKey struct {
	rgb    int
	id     palette.ID
	metric color.Metric
	n      int
}

// Approximator finds nearest palette entries for a registry, caching
// projected palette tables and search results. Safe for concurrent use.
type Approximator struct {
	reg     *palette.Registry
	tables  sync.Map // tableKey -> *projTable
	results sync.Map // resultKey -> []Match
}

// New builds an Approximator over the given registry.
func New(reg *palette.Registry) *Approximator {
	return &Approximator{reg: reg}
}

// Closest returns the single best match for rgb in the target palette
// under the default perceptual (LAB) metric.
func (a *Approximator) Closest(rgb color.RGB, id palette.ID) (Match, error) {
	matches, err := a.ClosestN(rgb, id, 1, color.MetricLAB)
	if err != nil {
		return Match{}, err
	}
	return matches[0], nil
}

// ClosestN returns the n best matches for rgb in the target palette
// under metric m, in ascending distance order. The returned slice is
// shared with the cache and must not be modified.
func (a *Approximator) ClosestN(rgb color.RGB, id palette.ID, n int, m color.Metric) ([]Match, error) {
	key := resultKey{rgb: rgb.Int(), id: id, metric: m, n: n}
	if cached, ok := a.results.Load(key); ok {
		return cached.([]Match), nil
	}

	tbl, err := a.table(id, m)
	if err != nil {
		return nil, err
	}
	if n < 1 {
		return nil, fmt.Errorf("result count must be positive, got %d", n)
	}

	q, err := m.Project(rgb)
	if err != nil {
		return nil, err
	}

	best := make([]EntryMatch, 0, n)
	for i, e := range tbl.entries {
		best = rank(best, EntryMatch{Entry: e, Distance: m.Between(q, tbl.points[i])}, n)
	}

	matches := make([]Match, len(best))
	for i, em := range best {
		c, err := a.reg.ByCode(id, em.Entry.Code)
		if err != nil {
			return nil, err
		}
		matches[i] = Match{Color: c, Distance: em.Distance}
	}

	// Concurrent computations of the same key are idempotent; keep
	// whichever slice landed first so repeated calls stay bit-identical.
	if prev, loaded := a.results.LoadOrStore(key, matches); loaded {
		return prev.([]Match), nil
	}
	return matches, nil
}

// table returns the projected entry table for (id, m), building it on
// first use.
func (a *Approximator) table(id palette.ID, m color.Metric) (*projTable, error) {
	key := tableKey{id: id, metric: m}
	v, _ := a.tables.LoadOrStore(key, &projTable{})
	tbl := v.(*projTable)

	tbl.once.Do(func() {
		entries, err := a.reg.Entries(id)
		if err != nil {
			tbl.err = err
			return
		}
		if len(entries) == 0 {
			tbl.err = fmt.Errorf("%w: %v", ErrEmptyPalette, id)
			return
		}
		points := make([][3]float64, len(entries))
		for i, e := range entries {
			points[i], err = m.Project(e.RGB)
			if err != nil {
				tbl.err = err
				return
			}
		}
		tbl.entries = entries
		tbl.points = points
	})

	if tbl.err != nil {
		return nil, tbl.err
	}
	return tbl, nil
}
