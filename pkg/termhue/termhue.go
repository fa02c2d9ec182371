// Package termhue provides the public API for terminal color modeling,
// approximation and styled-text rendering.
//
// This package provides functions to:
//   - Represent colors in the 16-color, 256-color and 24-bit RGB spaces
//   - Approximate arbitrary RGB values into constrained palettes
//   - Resolve color descriptors (hex, name, channels) into palette entries
//   - Render styled text fragments as ANSI, HTML, tmux markup or plain text
//
// Example usage:
//
//	import "termhue/pkg/termhue"
//
//	res := termhue.DefaultResolver()
//	c, _ := res.String("#ff8000", termhue.Palette256)
//	out, _ := termhue.NewANSIRenderer(res, termhue.Mode256).Render([]termhue.Fragment{
//		{Text: "warm", Style: termhue.Style{Fg: c, Bold: true}},
//	})
//	fmt.Print(out)
package termhue

import (
	"termhue/internal/approx"
	"termhue/internal/color"
	"termhue/internal/palette"
	"termhue/internal/render"
	"termhue/internal/resolve"
	"termhue/internal/style"
)

// Type aliases for public API
type (
	// RGB is a 24-bit color value with 8-bit channels.
	RGB = color.RGB

	// Color is the variant over Color16, Color256 and ColorRGB.
	Color = color.Color

	// Color16 is a 4-bit terminal color (codes 0-15).
	Color16 = color.Color16

	// Color256 is an 8-bit indexed terminal color (codes 0-255).
	Color256 = color.Color256

	// ColorRGB wraps an arbitrary 24-bit color, optionally named.
	ColorRGB = color.ColorRGB

	// Metric selects the comparison space for color distance.
	Metric = color.Metric

	// PaletteID identifies a target palette.
	PaletteID = palette.ID

	// PaletteEntry is one palette member.
	PaletteEntry = palette.Entry

	// Registry holds the immutable palette tables.
	Registry = palette.Registry

	// Approximator finds nearest palette entries.
	Approximator = approx.Approximator

	// Match is one approximation result.
	Match = approx.Match

	// Resolver turns color descriptors into concrete palette colors.
	Resolver = resolve.Resolver

	// Style holds the visual attributes of a text fragment.
	Style = style.Style

	// Fragment is a run of text with its style.
	Fragment = render.Fragment

	// Renderer produces one output syntax from fragments.
	Renderer = render.Renderer

	// RenderMode selects the color depth a renderer emits.
	RenderMode = render.Mode
)

// Palette identifiers
const (
	Palette16    = palette.Palette16
	Palette256   = palette.Palette256
	PaletteNamed = palette.PaletteNamed
)

// Distance metrics
const (
	MetricLAB = color.MetricLAB
	MetricRGB = color.MetricRGB
	MetricHSV = color.MetricHSV
)

// Render modes
const (
	Mode16  = render.Mode16
	Mode256 = render.Mode256
	ModeRGB = render.ModeRGB
)

// Error values surfaced by the API
var (
	ErrInvalidColorFormat = color.ErrInvalidColorFormat
	ErrInvalidCode        = color.ErrInvalidCode
	ErrUnknownMetric      = color.ErrUnknownMetric
	ErrNotFound           = palette.ErrNotFound
	ErrEmptyPalette       = approx.ErrEmptyPalette
)

// RGBFromInt builds an RGB from a 24-bit integer such as 0xFF8000.
func RGBFromInt(v int) (RGB, error) {
	return color.RGBFromInt(v)
}

// RGBFromHex builds an RGB from a 6-hex-digit string.
func RGBFromHex(s string) (RGB, error) {
	return color.RGBFromHex(s)
}

// New16 builds a Color16, rejecting codes outside [0,15].
func New16(code int) (Color16, error) {
	return color.New16(code)
}

// New256 builds a Color256, rejecting codes outside [0,255].
func New256(code int) (Color256, error) {
	return color.New256(code)
}

// Distance computes the distance between two colors under metric m.
func Distance(a, b Color, m Metric) (float64, error) {
	return color.Distance(a, b, m)
}

// NewRegistry builds a registry with the builtin named-color set.
func NewRegistry() *Registry {
	return palette.NewRegistry()
}

// NewRegistryWithNames builds a registry extended with extra names.
func NewRegistryWithNames(extra map[string]RGB) (*Registry, error) {
	return palette.NewRegistryWithNames(extra)
}

// NewApproximator builds an Approximator over a registry.
func NewApproximator(reg *Registry) *Approximator {
	return approx.New(reg)
}

// NewResolver builds a Resolver over a registry and approximator.
func NewResolver(reg *Registry, apx *Approximator) *Resolver {
	return resolve.New(reg, apx)
}

// DefaultResolver returns the shared resolver over the default registry.
func DefaultResolver() *Resolver {
	return resolve.Default()
}

// NewANSIRenderer builds a renderer emitting SGR escape sequences.
func NewANSIRenderer(res *Resolver, mode RenderMode) Renderer {
	return render.NewANSI(res, mode)
}

// NewHTMLRenderer builds a renderer emitting HTML spans.
func NewHTMLRenderer() Renderer {
	return render.NewHTML()
}

// NewTmuxRenderer builds a renderer emitting tmux #[...] markup.
func NewTmuxRenderer(res *Resolver, mode RenderMode) Renderer {
	return render.NewTmux(res, mode)
}

// NewTextRenderer builds a renderer emitting bare text.
func NewTextRenderer() Renderer {
	return render.NewText()
}
