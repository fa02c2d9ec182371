package style

import (
	"strings"
	"testing"

	"termhue/internal/color"
)

func TestMergeColorsWin(t *testing.T) {
	red, _ := color.New16(1)
	blue, _ := color.New16(4)

	base := Style{Fg: red, Bold: true}
	over := Style{Fg: blue, Italic: true}

	merged := base.Merge(over)
	if merged.Fg != color.Color(blue) {
		t.Errorf("merged Fg = %v, want blue", merged.Fg)
	}
	if !merged.Bold || !merged.Italic {
		t.Errorf("merged attributes should accumulate: %v", merged)
	}
}

func TestMergeKeepsBaseWhenUnset(t *testing.T) {
	red, _ := color.New16(1)
	base := Style{Fg: red, Underline: true}

	merged := base.Merge(Style{Dim: true})
	if merged.Fg != color.Color(red) {
		t.Errorf("merged Fg = %v, want red", merged.Fg)
	}
	if !merged.Underline || !merged.Dim {
		t.Errorf("merged attributes = %v", merged)
	}
}

func TestDiffReportsChanges(t *testing.T) {
	red, _ := color.New16(1)
	blue, _ := color.New16(4)

	base := Style{Fg: red, Bold: true}
	next := Style{Fg: blue, Bold: true, Underline: true}

	d := base.Diff(next)
	if d.Fg != color.Color(blue) {
		t.Errorf("diff Fg = %v, want blue", d.Fg)
	}
	if d.Bold {
		t.Errorf("unchanged attribute should not appear in diff")
	}
	if !d.Underline {
		t.Errorf("newly set attribute should appear in diff")
	}

	if merged := base.Merge(d); merged != next {
		t.Errorf("base.Merge(diff) = %v, want %v", merged, next)
	}
}

func TestDiffIdenticalIsZero(t *testing.T) {
	red, _ := color.New16(1)
	s := Style{Fg: red, Dim: true}
	if d := s.Diff(s); !d.IsZero() {
		t.Errorf("diff of a style with itself = %v, want zero", d)
	}
}

func TestEqualityAndZero(t *testing.T) {
	red, _ := color.New16(1)
	a := Style{Fg: red, Bold: true}
	b := Style{Fg: red, Bold: true}
	if a != b {
		t.Errorf("identical styles should be equal")
	}

	if !(Style{}).IsZero() {
		t.Errorf("zero style should report IsZero")
	}
	if a.IsZero() {
		t.Errorf("styled value should not report IsZero")
	}
}

func TestStringListsAttributes(t *testing.T) {
	s := Style{Bold: true, Strikethrough: true}
	out := s.String()
	for _, want := range []string{"fg:default", "bg:default", "bold", "strikethrough"} {
		if !strings.Contains(out, want) {
			t.Errorf("String() = %q, missing %q", out, want)
		}
	}
}
