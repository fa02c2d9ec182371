// Package style describes the visual attributes of a text fragment:
// foreground and background colors plus the standard SGR toggles.
package style

import (
	"fmt"
	"strings"

	"termhue/internal/color"
)

// Style holds the attributes applied to a fragment of text. A nil Fg or
// Bg means the terminal default. The zero value is the unstyled state.
type Style struct {
	Fg color.Color
	Bg color.Color

	Bold          bool
	Dim           bool
	Italic        bool
	Underline     bool
	Blink         bool
	Reverse       bool
	Hidden        bool
	Strikethrough bool
}

// Merge overlays other on s: other's colors win when set, attribute
// flags are OR'd.
func (s Style) Merge(other Style) Style {
	out := s
	if other.Fg != nil {
		out.Fg = other.Fg
	}
	if other.Bg != nil {
		out.Bg = other.Bg
	}
	out.Bold = out.Bold || other.Bold
	out.Dim = out.Dim || other.Dim
	out.Italic = out.Italic || other.Italic
	out.Underline = out.Underline || other.Underline
	out.Blink = out.Blink || other.Blink
	out.Reverse = out.Reverse || other.Reverse
	out.Hidden = out.Hidden || other.Hidden
	out.Strikethrough = out.Strikethrough || other.Strikethrough
	return out
}

// Diff returns the parts of other that differ from s: colors where
// other disagrees, and attribute flags other sets that s does not.
// Merging the result onto s yields other's colors and the union of
// both attribute sets.
func (s Style) Diff(other Style) Style {
	var out Style
	if other.Fg != s.Fg {
		out.Fg = other.Fg
	}
	if other.Bg != s.Bg {
		out.Bg = other.Bg
	}
	out.Bold = other.Bold && !s.Bold
	out.Dim = other.Dim && !s.Dim
	out.Italic = other.Italic && !s.Italic
	out.Underline = other.Underline && !s.Underline
	out.Blink = other.Blink && !s.Blink
	out.Reverse = other.Reverse && !s.Reverse
	out.Hidden = other.Hidden && !s.Hidden
	out.Strikethrough = other.Strikethrough && !s.Strikethrough
	return out
}

// IsZero reports whether the style carries no colors and no attributes.
func (s Style) IsZero() bool {
	return s == Style{}
}

func (s Style) String() string {
	var parts []string

	if s.Fg != nil {
		parts = append(parts, fmt.Sprintf("fg:%s", s.Fg))
	} else {
		parts = append(parts, "fg:default")
	}
	if s.Bg != nil {
		parts = append(parts, fmt.Sprintf("bg:%s", s.Bg))
	} else {
		parts = append(parts, "bg:default")
	}

	for _, attr := range []struct {
		set  bool
		name string
	}{
		{s.Bold, "bold"},
		{s.Dim, "dim"},
		{s.Italic, "italic"},
		{s.Underline, "underline"},
		{s.Blink, "blink"},
		{s.Reverse, "reverse"},
		{s.Hidden, "hidden"},
		{s.Strikethrough, "strikethrough"},
	} {
		if attr.set {
			parts = append(parts, attr.name)
		}
	}

	return strings.Join(parts, ", ")
}
