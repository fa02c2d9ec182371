// Package palette holds the immutable color lookup tables: the 16-color
// base table, the computed 256-color cube and grayscale ramp, and an
// open registry of named RGB colors seeded from the W3C color names.
//
// A Registry is populated once and never mutated afterwards, so it can
// be shared across concurrent callers without locking.
package palette

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/text/cases"

	"termhue/internal/color"
)

var (
	// ErrNotFound reports a named-color or code lookup miss.
	ErrNotFound = errors.New("color not found")

	// ErrUnknownPalette reports an unrecognized palette identifier.
	ErrUnknownPalette = errors.New("unknown palette")

	// ErrDuplicateName reports two registry entries normalizing to the
	// same name.
	ErrDuplicateName = errors.New("duplicate color name")
)

/////////////////////////////////////////////////////////////////////////////
// PALETTE IDENTIFIERS
/////////////////////////////////////////////////////////////////////////////

// ID identifies one of the three palettes a color can be matched into.
type ID int

const (
	Palette16 ID = iota
	Palette256
	PaletteNamed
)

func (id ID) String() string {
	switch id {
	case Palette16:
		return "16"
	case Palette256:
		return "256"
	case PaletteNamed:
		return "named"
	default:
		return fmt.Sprintf("ID(%d)", int(id))
	}
}

// ParseID maps a palette name ("16", "256", "named") to its ID.
func ParseID(s string) (ID, error) {
	switch strings.ToLower(s) {
	case "16":
		return Palette16, nil
	case "256":
		return Palette256, nil
	case "named":
		return PaletteNamed, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownPalette, s)
	}
}

// Entry is one palette member: a stable code, its RGB value, and an
// optional name.
type Entry struct {
	Code int
	RGB  color.RGB
	Name string
}

/////////////////////////////////////////////////////////////////////////////
// REGISTRY
/////////////////////////////////////////////////////////////////////////////

// Registry holds the palette tables. Populate it once with NewRegistry
// (or NewRegistryWithNames) and treat it as read-only afterwards.
type Registry struct {
	entries16  []Entry
	entries256 []Entry
	named      []Entry

	byName     map[string]Entry
	exact16    map[color.RGB]int
	exact256   map[color.RGB]int
	exactNamed map[color.RGB]int
}

var defaultRegistry = sync.OnceValue(NewRegistry)

// Default returns the shared process-wide registry, built on first use.
func Default() *Registry {
	return defaultRegistry()
}

// NewRegistry builds a registry with the builtin named-color set: the 16
// ANSI base names plus the W3C color names carried by tcell.
func NewRegistry() *Registry {
	r, err := NewRegistryWithNames(nil)
	if err != nil {
		// The builtin set has no duplicates; only caller-supplied names
		// can collide.
		panic(err)
	}
	return r
}

// NewRegistryWithNames builds a registry whose named set is the builtin
// set extended with extra name→RGB entries. Names are matched after
// normalization (case folding, punctuation stripped); a collision with a
// builtin or extra name fails with ErrDuplicateName.
func NewRegistryWithNames(extra map[string]color.RGB) (*Registry, error) {
	r := &Registry{
		byName:     make(map[string]Entry),
		exact16:    make(map[color.RGB]int),
		exact256:   make(map[color.RGB]int),
		exactNamed: make(map[color.RGB]int),
	}

	r.entries16 = make([]Entry, 16)
	for code := 0; code < 16; code++ {
		c, _ := color.New16(code)
		r.entries16[code] = Entry{Code: code, RGB: c.RGB(), Name: c.Name()}
		if _, dup := r.exact16[c.RGB()]; !dup {
			r.exact16[c.RGB()] = code
		}
	}

	// Codes 0-15 stay addressable through ByCode but are excluded from
	// enumeration and exact matching: terminals theme them, so their RGB
	// values are not trustworthy approximation targets.
	r.entries256 = make([]Entry, 0, 240)
	for code := 16; code < 256; code++ {
		c, _ := color.New256(code)
		r.entries256 = append(r.entries256, Entry{Code: code, RGB: c.RGB(), Name: c.Name()})
		if _, dup := r.exact256[c.RGB()]; !dup {
			r.exact256[c.RGB()] = code
		}
	}

	names := make(map[string]Entry)
	addName := func(name string, rgb color.RGB) error {
		key := NormalizeName(name)
		if _, dup := names[key]; dup {
			return fmt.Errorf("%w: %q", ErrDuplicateName, name)
		}
		names[key] = Entry{RGB: rgb, Name: name}
		return nil
	}

	for code := 0; code < 16; code++ {
		c, _ := color.New16(code)
		if err := addName(c.Name(), c.RGB()); err != nil {
			return nil, err
		}
	}
	for name, tc := range tcell.ColorNames {
		tr, tg, tb := tc.RGB()
		rgb := color.RGB{R: uint8(tr), G: uint8(tg), B: uint8(tb)}
		if _, taken := names[NormalizeName(name)]; taken {
			continue // ANSI base names shadow the W3C set
		}
		if err := addName(name, rgb); err != nil {
			return nil, err
		}
	}
	for name, rgb := range extra {
		if err := addName(name, rgb); err != nil {
			return nil, err
		}
	}

	keys := make([]string, 0, len(names))
	for key := range names {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	r.named = make([]Entry, len(keys))
	for i, key := range keys {
		e := names[key]
		e.Code = i
		r.named[i] = e
		r.byName[key] = e
		if _, dup := r.exactNamed[e.RGB]; !dup {
			r.exactNamed[e.RGB] = i
		}
	}

	return r, nil
}

var foldCaser = cases.Fold()

// NormalizeName maps a color name to its lookup key: case-folded with
// spaces and common punctuation stripped, so "Icathian Yellow" and
// "icathian-yellow" resolve identically.
func NormalizeName(name string) string {
	folded := foldCaser.String(name)
	return strings.Map(func(c rune) rune {
		switch c {
		case ' ', '-', '_', '.', '\'':
			return -1
		}
		return c
	}, folded)
}

// Entries returns every member of the requested palette in ascending
// code order. The returned slice is shared and must not be modified.
func (r *Registry) Entries(id ID) ([]Entry, error) {
	switch id {
	case Palette16:
		return r.entries16, nil
	case Palette256:
		return r.entries256, nil
	case PaletteNamed:
		return r.named, nil
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownPalette, id)
	}
}

// ByCode returns the palette member with the given code, failing with
// ErrNotFound when the code is outside the palette's range.
func (r *Registry) ByCode(id ID, code int) (color.Color, error) {
	switch id {
	case Palette16:
		if code < 0 || code > 15 {
			return nil, fmt.Errorf("%w: code %d in palette %v", ErrNotFound, code, id)
		}
		c, _ := color.New16(code)
		return c, nil
	case Palette256:
		if code < 0 || code > 255 {
			return nil, fmt.Errorf("%w: code %d in palette %v", ErrNotFound, code, id)
		}
		c, _ := color.New256(code)
		return c, nil
	case PaletteNamed:
		if code < 0 || code >= len(r.named) {
			return nil, fmt.Errorf("%w: code %d in palette %v", ErrNotFound, code, id)
		}
		e := r.named[code]
		return color.NewNamedRGB(e.RGB, e.Name), nil
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownPalette, id)
	}
}

// ByName looks up a named color, matching case-insensitively and
// ignoring punctuation. Fails with ErrNotFound when no entry matches.
func (r *Registry) ByName(name string) (color.ColorRGB, error) {
	e, ok := r.byName[NormalizeName(name)]
	if !ok {
		return color.ColorRGB{}, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	return color.NewNamedRGB(e.RGB, e.Name), nil
}

// ExactIn reports whether rgb is representable exactly in the palette,
// returning the matching entry when it is. For Palette256 the themable
// codes 0-15 are not considered exact matches.
func (r *Registry) ExactIn(id ID, rgb color.RGB) (color.Color, bool) {
	switch id {
	case Palette16:
		if code, ok := r.exact16[rgb]; ok {
			c, _ := color.New16(code)
			return c, true
		}
	case Palette256:
		if code, ok := r.exact256[rgb]; ok {
			c, _ := color.New256(code)
			return c, true
		}
	case PaletteNamed:
		if idx, ok := r.exactNamed[rgb]; ok {
			e := r.named[idx]
			return color.NewNamedRGB(e.RGB, e.Name), true
		}
	}
	return nil, false
}
