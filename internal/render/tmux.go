package render

import (
	"fmt"
	"strings"

	"termhue/internal/color"
	"termhue/internal/palette"
	"termhue/internal/resolve"
	"termhue/internal/style"
)

// Tmux renders fragments as tmux #[...] status-line markup. Indexed
// colors are emitted as colourN; in ModeRGB colors pass through as
// #rrggbb literals.
type Tmux struct {
	res  *resolve.Resolver
	mode Mode
}

// NewTmux builds a tmux renderer resolving colors through res.
func NewTmux(res *resolve.Resolver, mode Mode) *Tmux {
	return &Tmux{res: res, mode: mode}
}

func (r *Tmux) Render(frags []Fragment) (string, error) {
	var b strings.Builder

	for _, frag := range frags {
		attrs, err := r.tmuxAttrs(frag.Style)
		if err != nil {
			return "", err
		}
		if len(attrs) == 0 {
			b.WriteString(frag.Text)
			continue
		}
		b.WriteString("#[" + strings.Join(attrs, ",") + "]")
		b.WriteString(frag.Text)
		b.WriteString("#[default]")
	}

	return b.String(), nil
}

func (r *Tmux) tmuxAttrs(s style.Style) ([]string, error) {
	var attrs []string

	if s.Fg != nil {
		v, err := r.tmuxColor(s.Fg)
		if err != nil {
			return nil, fmt.Errorf("resolving foreground: %w", err)
		}
		attrs = append(attrs, "fg="+v)
	}
	if s.Bg != nil {
		v, err := r.tmuxColor(s.Bg)
		if err != nil {
			return nil, fmt.Errorf("resolving background: %w", err)
		}
		attrs = append(attrs, "bg="+v)
	}

	if s.Bold {
		attrs = append(attrs, "bold")
	}
	if s.Dim {
		attrs = append(attrs, "dim")
	}
	if s.Italic {
		attrs = append(attrs, "italics")
	}
	if s.Underline {
		attrs = append(attrs, "underscore")
	}
	if s.Blink {
		attrs = append(attrs, "blink")
	}
	if s.Reverse {
		attrs = append(attrs, "reverse")
	}
	if s.Hidden {
		attrs = append(attrs, "hidden")
	}
	if s.Strikethrough {
		attrs = append(attrs, "strikethrough")
	}

	return attrs, nil
}

func (r *Tmux) tmuxColor(c color.Color) (string, error) {
	if r.mode == ModeRGB {
		return c.RGB().String(), nil
	}

	target := palette.Palette256
	if r.mode == Mode16 {
		target = palette.Palette16
	}
	resolved, err := r.res.Color(c, target)
	if err != nil {
		return "", err
	}

	switch v := resolved.(type) {
	case color.Color16:
		return fmt.Sprintf("colour%d", v.Code), nil
	case color.Color256:
		return fmt.Sprintf("colour%d", v.Code), nil
	default:
		return resolved.RGB().String(), nil
	}
}
