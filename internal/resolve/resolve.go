// Package resolve is the single entry point for turning caller-supplied
// color descriptors (hex integers, hex strings, names, channel values,
// or existing Color instances) into concrete colors of a target palette.
//
// The facade's core contract is exactness before approximation: a
// descriptor representable exactly in the target palette resolves to
// that exact entry, never to an approximated neighbor. Approximation is
// the fallback for everything else.
package resolve

import (
	"fmt"
	"strings"
	"sync"

	"termhue/internal/approx"
	"termhue/internal/color"
	"termhue/internal/palette"
)

// Resolver resolves descriptors against a registry, approximating
// through apx when the target palette cannot represent them exactly.
type Resolver struct {
	reg *palette.Registry
	apx *approx.Approximator
}

// New builds a Resolver over an explicit registry and approximator.
func New(reg *palette.Registry, apx *approx.Approximator) *Resolver {
	return &Resolver{reg: reg, apx: apx}
}

var defaultResolver = sync.OnceValue(func() *Resolver {
	reg := palette.Default()
	return New(reg, approx.New(reg))
})

// Default returns the shared resolver over the default registry.
func Default() *Resolver {
	return defaultResolver()
}

// RGB resolves an explicit RGB value into the target palette.
func (r *Resolver) RGB(c color.RGB, target palette.ID) (color.Color, error) {
	if exact, ok := r.reg.ExactIn(target, c); ok {
		return exact, nil
	}
	m, err := r.apx.Closest(c, target)
	if err != nil {
		return nil, err
	}
	return m.Color, nil
}

// Int resolves a 24-bit integer descriptor such as 0xFF0000.
func (r *Resolver) Int(v int, target palette.ID) (color.Color, error) {
	c, err := color.RGBFromInt(v)
	if err != nil {
		return nil, err
	}
	return r.RGB(c, target)
}

// Hex resolves a 6-hex-digit string descriptor.
func (r *Resolver) Hex(s string, target palette.ID) (color.Color, error) {
	c, err := color.RGBFromHex(s)
	if err != nil {
		return nil, err
	}
	return r.RGB(c, target)
}

// Name resolves a named-color descriptor. The name must exist in the
// registry; its RGB value is then resolved into the target palette.
func (r *Resolver) Name(name string, target palette.ID) (color.Color, error) {
	named, err := r.reg.ByName(name)
	if err != nil {
		return nil, err
	}
	if target == palette.PaletteNamed {
		return named, nil
	}
	return r.RGB(named.RGB(), target)
}

// Color resolves an already-constructed Color. Colors that belong to
// the target palette pass through unchanged; everything else is
// resolved by RGB value.
func (r *Resolver) Color(c color.Color, target palette.ID) (color.Color, error) {
	switch v := c.(type) {
	case color.Color16:
		if target == palette.Palette16 {
			return v, nil
		}
	case color.Color256:
		if target == palette.Palette256 {
			return v, nil
		}
	case color.ColorRGB:
		if target == palette.PaletteNamed && v.Name() != "" {
			return v, nil
		}
	}
	return r.RGB(c.RGB(), target)
}

// String resolves a free-form descriptor: "#rrggbb" (or a bare
// 6-hex-digit string that matches no name) or a registry name.
func (r *Resolver) String(s string, target palette.ID) (color.Color, error) {
	if strings.HasPrefix(s, "#") {
		return r.Hex(s, target)
	}
	c, nameErr := r.Name(s, target)
	if nameErr == nil {
		return c, nil
	}
	if len(s) == 6 {
		if c, err := r.Hex(s, target); err == nil {
			return c, nil
		}
	}
	return nil, fmt.Errorf("cannot resolve descriptor %q: %w", s, nameErr)
}
