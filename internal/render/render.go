// Package render turns styled text fragments into concrete output
// syntaxes: raw ANSI escape sequences, HTML spans, tmux status-line
// markup, and plain text.
//
// Renderers resolve fragment colors through the resolution facade for
// their declared output mode; deciding which mode a terminal actually
// supports is the caller's concern.
package render

import (
	"termhue/internal/style"
)

// Fragment is a run of text with the style to apply to it.
type Fragment struct {
	Text  string
	Style style.Style
}

// Renderer produces one output syntax from a fragment sequence.
type Renderer interface {
	Render(frags []Fragment) (string, error)
}

// Mode selects the color depth a renderer emits.
type Mode int

const (
	// Mode16 resolves colors into the 16-color palette.
	Mode16 Mode = iota
	// Mode256 resolves colors into the 256-color palette.
	Mode256
	// ModeRGB emits 24-bit color values unchanged.
	ModeRGB
)

func (m Mode) String() string {
	switch m {
	case Mode16:
		return "16"
	case Mode256:
		return "256"
	case ModeRGB:
		return "rgb"
	default:
		return "unknown"
	}
}
