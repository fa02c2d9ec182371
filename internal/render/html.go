package render

import (
	"html"
	"strings"

	"termhue/internal/style"
)

// HTML renders fragments as <span> elements with inline CSS. HTML
// output has no palette constraint, so colors are emitted at their full
// 24-bit values.
type HTML struct{}

// NewHTML builds an HTML renderer.
func NewHTML() *HTML {
	return &HTML{}
}

func (r *HTML) Render(frags []Fragment) (string, error) {
	var b strings.Builder

	for _, frag := range frags {
		props := cssProps(frag.Style)
		if len(props) == 0 {
			b.WriteString(html.EscapeString(frag.Text))
			continue
		}
		b.WriteString(`<span style="` + strings.Join(props, ";") + `">`)
		b.WriteString(html.EscapeString(frag.Text))
		b.WriteString("</span>")
	}

	return b.String(), nil
}

func cssProps(s style.Style) []string {
	var props []string

	fg, bg := s.Fg, s.Bg
	if s.Reverse {
		fg, bg = bg, fg
	}
	if fg != nil {
		props = append(props, "color:"+fg.RGB().String())
	}
	if bg != nil {
		props = append(props, "background-color:"+bg.RGB().String())
	}

	if s.Bold {
		props = append(props, "font-weight:bold")
	}
	if s.Dim {
		props = append(props, "opacity:0.6")
	}
	if s.Italic {
		props = append(props, "font-style:italic")
	}

	var deco []string
	if s.Underline {
		deco = append(deco, "underline")
	}
	if s.Strikethrough {
		deco = append(deco, "line-through")
	}
	if s.Blink {
		deco = append(deco, "blink")
	}
	if len(deco) > 0 {
		props = append(props, "text-decoration:"+strings.Join(deco, " "))
	}

	if s.Hidden {
		props = append(props, "visibility:hidden")
	}

	return props
}
