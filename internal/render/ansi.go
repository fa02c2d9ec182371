package render

import (
	"fmt"
	"strings"

	"termhue/internal/color"
	"termhue/internal/palette"
	"termhue/internal/resolve"
	"termhue/internal/style"
)

const sgrReset = "\x1b[0m"

// ANSI renders fragments as SGR escape sequences at the color depth of
// its mode. Each styled fragment opens with one SGR sequence and closes
// with a reset.
type ANSI struct {
	res  *resolve.Resolver
	mode Mode
}

// NewANSI builds an ANSI renderer resolving colors through res.
func NewANSI(res *resolve.Resolver, mode Mode) *ANSI {
	return &ANSI{res: res, mode: mode}
}

func (r *ANSI) Render(frags []Fragment) (string, error) {
	var b strings.Builder

	for _, frag := range frags {
		codes, err := r.sgrCodes(frag.Style)
		if err != nil {
			return "", err
		}
		if len(codes) == 0 {
			b.WriteString(frag.Text)
			continue
		}
		b.WriteString("\x1b[" + strings.Join(codes, ";") + "m")
		b.WriteString(frag.Text)
		b.WriteString(sgrReset)
	}

	return b.String(), nil
}

func (r *ANSI) sgrCodes(s style.Style) ([]string, error) {
	var codes []string

	if s.Fg != nil {
		fg, err := r.resolveMode(s.Fg)
		if err != nil {
			return nil, fmt.Errorf("resolving foreground: %w", err)
		}
		codes = append(codes, colorCodes(fg, false)...)
	}
	if s.Bg != nil {
		bg, err := r.resolveMode(s.Bg)
		if err != nil {
			return nil, fmt.Errorf("resolving background: %w", err)
		}
		codes = append(codes, colorCodes(bg, true)...)
	}

	if s.Bold {
		codes = append(codes, "1")
	}
	if s.Dim {
		codes = append(codes, "2")
	}
	if s.Italic {
		codes = append(codes, "3")
	}
	if s.Underline {
		codes = append(codes, "4")
	}
	if s.Blink {
		codes = append(codes, "5")
	}
	if s.Reverse {
		codes = append(codes, "7")
	}
	if s.Hidden {
		codes = append(codes, "8")
	}
	if s.Strikethrough {
		codes = append(codes, "9")
	}

	return codes, nil
}

func (r *ANSI) resolveMode(c color.Color) (color.Color, error) {
	switch r.mode {
	case Mode16:
		return r.res.Color(c, palette.Palette16)
	case Mode256:
		return r.res.Color(c, palette.Palette256)
	default:
		return color.NewRGB(c.RGB()), nil
	}
}

// colorCodes emits the SGR parameters for a resolved color.
func colorCodes(c color.Color, background bool) []string {
	switch v := c.(type) {
	case color.Color16:
		base := 30
		if v.Bright() {
			base = 90
		}
		if background {
			base += 10
		}
		return []string{fmt.Sprintf("%d", base+int(v.Code%8))}
	case color.Color256:
		if background {
			return []string{fmt.Sprintf("48;5;%d", v.Code)}
		}
		return []string{fmt.Sprintf("38;5;%d", v.Code)}
	case color.ColorRGB:
		rgb := v.RGB()
		if background {
			return []string{fmt.Sprintf("48;2;%d;%d;%d", rgb.R, rgb.G, rgb.B)}
		}
		return []string{fmt.Sprintf("38;2;%d;%d;%d", rgb.R, rgb.G, rgb.B)}
	default:
		return nil
	}
}
