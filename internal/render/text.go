package render

import "strings"

// Text renders fragments as their bare text, dropping all styling.
type Text struct{}

// NewText builds a plain text renderer.
func NewText() *Text {
	return &Text{}
}

func (r *Text) Render(frags []Fragment) (string, error) {
	var b strings.Builder
	for _, frag := range frags {
		b.WriteString(frag.Text)
	}
	return b.String(), nil
}
