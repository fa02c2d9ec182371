// Package color defines the color value types used throughout termhue:
// the RGB triple, and the three terminal color variants (Color16,
// Color256, ColorRGB) together with their distance metrics.
package color

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"termhue/internal/colorspace"
)

var (
	// ErrInvalidColorFormat reports a malformed color descriptor (bad hex
	// string or out-of-range channel/integer value).
	ErrInvalidColorFormat = errors.New("invalid color format")

	// ErrInvalidCode reports a palette code outside the valid range for
	// the requested variant.
	ErrInvalidCode = errors.New("invalid palette code")

	// ErrUnknownMetric reports an unrecognized distance metric.
	ErrUnknownMetric = errors.New("unknown distance metric")
)

/////////////////////////////////////////////////////////////////////////////
// RGB
/////////////////////////////////////////////////////////////////////////////

// RGB is an immutable 24-bit color value with 8-bit channels.
type RGB struct {
	R, G, B uint8
}

// RGBFromInt builds an RGB from a 24-bit integer such as 0xFF8000.
// Values outside [0, 0xFFFFFF] are rejected, not clamped.
func RGBFromInt(v int) (RGB, error) {
	if v < 0 || v > 0xFFFFFF {
		return RGB{}, fmt.Errorf("%w: integer %#x out of 24-bit range", ErrInvalidColorFormat, v)
	}
	return RGB{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
	}, nil
}

// RGBFromHex builds an RGB from a 6-hex-digit string, with or without a
// leading '#'.
func RGBFromHex(s string) (RGB, error) {
	h := strings.TrimPrefix(s, "#")
	if len(h) != 6 {
		return RGB{}, fmt.Errorf("%w: hex string %q must have 6 digits", ErrInvalidColorFormat, s)
	}
	var v int
	for _, c := range h {
		var d int
		switch {
		case c >= '0' && c <= '9':
			d = int(c - '0')
		case c >= 'a' && c <= 'f':
			d = int(c-'a') + 10
		case c >= 'A' && c <= 'F':
			d = int(c-'A') + 10
		default:
			return RGB{}, fmt.Errorf("%w: hex string %q contains %q", ErrInvalidColorFormat, s, c)
		}
		v = v<<4 | d
	}
	return RGB{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
}

// Int returns the 24-bit integer form of the color.
func (c RGB) Int() int {
	return int(c.R)<<16 | int(c.G)<<8 | int(c.B)
}

// Hex returns the 6-hex-digit lowercase form without a '#' prefix.
func (c RGB) Hex() string {
	return fmt.Sprintf("%02x%02x%02x", c.R, c.G, c.B)
}

func (c RGB) String() string {
	return "#" + c.Hex()
}

/////////////////////////////////////////////////////////////////////////////
// COLOR VARIANTS
/////////////////////////////////////////////////////////////////////////////

// Color is the closed variant over Color16, Color256 and ColorRGB.
//
// Every variant resolves to a deterministic RGB equivalent. Equality is
// same-variant only: a Color256 at code 1 and a Color16 at code 1 denote
// the same nominal color but never compare equal (the Go type system
// enforces this; see the equality note in DESIGN.md).
type Color interface {
	// RGB returns the resolved RGB equivalent. Pure and deterministic:
	// two calls on the same value always agree.
	RGB() RGB

	// Name returns the human-readable name of the palette entry, or ""
	// when the entry has none.
	Name() string

	String() string

	// variant seals the interface to the three in-package types.
	variant()
}

// ansi16 holds the conventional RGB values of the 16 base colors. These
// are terminal-default approximations: real terminals theme the first 16
// codes, so exact on-screen values are not guaranteed.
var ansi16 = [16]RGB{
	{0x00, 0x00, 0x00}, // 0: black
	{0x80, 0x00, 0x00}, // 1: red
	{0x00, 0x80, 0x00}, // 2: green
	{0x80, 0x80, 0x00}, // 3: yellow
	{0x00, 0x00, 0x80}, // 4: blue
	{0x80, 0x00, 0x80}, // 5: magenta
	{0x00, 0x80, 0x80}, // 6: cyan
	{0xC0, 0xC0, 0xC0}, // 7: white
	{0x80, 0x80, 0x80}, // 8: bright black
	{0xFF, 0x00, 0x00}, // 9: bright red
	{0x00, 0xFF, 0x00}, // 10: bright green
	{0xFF, 0xFF, 0x00}, // 11: bright yellow
	{0x00, 0x00, 0xFF}, // 12: bright blue
	{0xFF, 0x00, 0xFF}, // 13: bright magenta
	{0x00, 0xFF, 0xFF}, // 14: bright cyan
	{0xFF, 0xFF, 0xFF}, // 15: bright white
}

var ansi16Names = [16]string{
	"black", "red", "green", "yellow",
	"blue", "magenta", "cyan", "white",
	"bright-black", "bright-red", "bright-green", "bright-yellow",
	"bright-blue", "bright-magenta", "bright-cyan", "bright-white",
}

// ANSI16 returns the conventional RGB value of base color code (0-15).
// The boolean reports whether the code is in range.
func ANSI16(code int) (RGB, bool) {
	if code < 0 || code > 15 {
		return RGB{}, false
	}
	return ansi16[code], true
}

// Color16 is a 4-bit terminal color: 8 base hues with a bright
// counterpart each, addressed by code 0-15.
type Color16 struct {
	Code uint8
}

// New16 builds a Color16, rejecting codes outside [0,15].
func New16(code int) (Color16, error) {
	if code < 0 || code > 15 {
		return Color16{}, fmt.Errorf("%w: %d outside 16-color range", ErrInvalidCode, code)
	}
	return Color16{Code: uint8(code)}, nil
}

// Bright reports whether the color is one of the 8 bright counterparts.
func (c Color16) Bright() bool {
	return c.Code >= 8
}

func (c Color16) RGB() RGB {
	return ansi16[c.Code]
}

func (c Color16) Name() string {
	return ansi16Names[c.Code]
}

func (c Color16) String() string {
	return fmt.Sprintf("c16(%d %s)", c.Code, c.Name())
}

func (Color16) variant() {}

// Color256 is an 8-bit indexed terminal color. Codes 0-15 alias the 16
// base colors, 16-231 form a 6x6x6 RGB cube and 232-255 a 24-step
// grayscale ramp. Cube and ramp values are computed, not looked up.
type Color256 struct {
	Code uint8
}

// New256 builds a Color256, rejecting codes outside [0,255].
func New256(code int) (Color256, error) {
	if code < 0 || code > 255 {
		return Color256{}, fmt.Errorf("%w: %d outside 256-color range", ErrInvalidCode, code)
	}
	return Color256{Code: uint8(code)}, nil
}

// cubeLevels are the 6 channel values of the xterm 6x6x6 cube.
func cubeLevel(v uint8) uint8 {
	if v == 0 {
		return 0
	}
	return 55 + v*40
}

func (c Color256) RGB() RGB {
	switch {
	case c.Code < 16:
		return ansi16[c.Code]
	case c.Code < 232:
		idx := c.Code - 16
		return RGB{
			R: cubeLevel(idx / 36),
			G: cubeLevel((idx / 6) % 6),
			B: cubeLevel(idx % 6),
		}
	default:
		v := 8 + 10*(c.Code-232)
		return RGB{R: v, G: v, B: v}
	}
}

func (c Color256) Name() string {
	if c.Code < 16 {
		return ansi16Names[c.Code]
	}
	return ""
}

func (c Color256) String() string {
	return fmt.Sprintf("c256(%d %s)", c.Code, c.RGB())
}

func (Color256) variant() {}

// ColorRGB wraps an arbitrary 24-bit color, optionally carrying the name
// of the registry entry it was resolved from. The name participates in
// equality: two ColorRGB values with the same RGB but different names
// are distinct entries.
type ColorRGB struct {
	Value RGB
	name  string
}

// NewRGB wraps an RGB value without a name.
func NewRGB(v RGB) ColorRGB {
	return ColorRGB{Value: v}
}

// NewNamedRGB wraps an RGB value carrying its registry name.
func NewNamedRGB(v RGB, name string) ColorRGB {
	return ColorRGB{Value: v, name: name}
}

func (c ColorRGB) RGB() RGB {
	return c.Value
}

func (c ColorRGB) Name() string {
	return c.name
}

func (c ColorRGB) String() string {
	if c.name != "" {
		return fmt.Sprintf("rgb(%s %s)", c.Value, c.name)
	}
	return fmt.Sprintf("rgb(%s)", c.Value)
}

func (ColorRGB) variant() {}

/////////////////////////////////////////////////////////////////////////////
// DISTANCE METRICS
/////////////////////////////////////////////////////////////////////////////

// Metric selects the comparison space for color distance.
type Metric int

const (
	// MetricLAB is Euclidean distance in CIE L*a*b*, the default
	// perceptual metric.
	MetricLAB Metric = iota

	// MetricRGB is Euclidean distance over raw 8-bit channels. Cheaper,
	// less perceptually accurate.
	MetricRGB

	// MetricHSV is Euclidean distance over (h/360, s, v) with circular
	// hue difference.
	MetricHSV
)

func (m Metric) String() string {
	switch m {
	case MetricLAB:
		return "lab"
	case MetricRGB:
		return "rgb"
	case MetricHSV:
		return "hsv"
	default:
		return fmt.Sprintf("Metric(%d)", int(m))
	}
}

// ParseMetric maps a metric name to its Metric value.
func ParseMetric(s string) (Metric, error) {
	switch strings.ToLower(s) {
	case "lab":
		return MetricLAB, nil
	case "rgb":
		return MetricRGB, nil
	case "hsv":
		return MetricHSV, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownMetric, s)
	}
}

// Project converts an RGB value into the metric's comparison space.
func (m Metric) Project(c RGB) ([3]float64, error) {
	switch m {
	case MetricLAB:
		l, a, b := colorspace.RGBToLAB(c.R, c.G, c.B)
		return [3]float64{l, a, b}, nil
	case MetricRGB:
		return [3]float64{float64(c.R), float64(c.G), float64(c.B)}, nil
	case MetricHSV:
		h, s, v := colorspace.RGBToHSV(c.R, c.G, c.B)
		return [3]float64{h / 360, s, v}, nil
	default:
		return [3]float64{}, fmt.Errorf("%w: %d", ErrUnknownMetric, int(m))
	}
}

// Between computes Euclidean distance between two projected points.
// Under MetricHSV the first component is circular.
func (m Metric) Between(u, v [3]float64) float64 {
	d0 := u[0] - v[0]
	if m == MetricHSV {
		d0 = math.Abs(d0)
		if d0 > 0.5 {
			d0 = 1 - d0
		}
	}
	d1 := u[1] - v[1]
	d2 := u[2] - v[2]
	return math.Sqrt(d0*d0 + d1*d1 + d2*d2)
}

// Distance computes the distance between two colors in the comparison
// space selected by m. Both sides are resolved to RGB first.
func Distance(a, b Color, m Metric) (float64, error) {
	u, err := m.Project(a.RGB())
	if err != nil {
		return 0, err
	}
	v, err := m.Project(b.RGB())
	if err != nil {
		return 0, err
	}
	return m.Between(u, v), nil
}
