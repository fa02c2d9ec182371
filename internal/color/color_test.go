package color

import (
	"errors"
	"testing"
)

func TestRGBFromInt(t *testing.T) {
	c, err := RGBFromInt(0xFF8000)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c != (RGB{0xFF, 0x80, 0x00}) {
		t.Fatalf("RGBFromInt(0xFF8000) = %v", c)
	}
	if c.Int() != 0xFF8000 {
		t.Fatalf("Int() = %#x, want 0xFF8000", c.Int())
	}
	if c.Hex() != "ff8000" {
		t.Fatalf("Hex() = %q, want %q", c.Hex(), "ff8000")
	}

	if _, err := RGBFromInt(0x1000000); !errors.Is(err, ErrInvalidColorFormat) {
		t.Fatalf("out-of-range int should fail with ErrInvalidColorFormat, got %v", err)
	}
	if _, err := RGBFromInt(-1); !errors.Is(err, ErrInvalidColorFormat) {
		t.Fatalf("negative int should fail with ErrInvalidColorFormat, got %v", err)
	}
}

func TestRGBFromHex(t *testing.T) {
	for _, s := range []string{"#1a2B3c", "1a2B3c"} {
		c, err := RGBFromHex(s)
		if err != nil {
			t.Fatalf("RGBFromHex(%q): %v", s, err)
		}
		if c != (RGB{0x1A, 0x2B, 0x3C}) {
			t.Fatalf("RGBFromHex(%q) = %v", s, c)
		}
	}

	for _, s := range []string{"", "fff", "gggggg", "#12345", "1234567"} {
		if _, err := RGBFromHex(s); !errors.Is(err, ErrInvalidColorFormat) {
			t.Errorf("RGBFromHex(%q) should fail with ErrInvalidColorFormat, got %v", s, err)
		}
	}
}

func TestNew16Range(t *testing.T) {
	c, err := New16(9)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !c.Bright() {
		t.Errorf("code 9 should be bright")
	}
	if c.RGB() != (RGB{0xFF, 0, 0}) {
		t.Errorf("code 9 RGB = %v, want #ff0000", c.RGB())
	}
	if c.Name() != "bright-red" {
		t.Errorf("code 9 name = %q", c.Name())
	}

	for _, code := range []int{-1, 16, 300} {
		if _, err := New16(code); !errors.Is(err, ErrInvalidCode) {
			t.Errorf("New16(%d) should fail with ErrInvalidCode, got %v", code, err)
		}
	}
}

func TestNew256Range(t *testing.T) {
	if _, err := New256(255); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, code := range []int{-1, 256, 300} {
		if _, err := New256(code); !errors.Is(err, ErrInvalidCode) {
			t.Errorf("New256(%d) should fail with ErrInvalidCode, got %v", code, err)
		}
	}
}

func TestColor256CubeAndRamp(t *testing.T) {
	cases := []struct {
		code int
		rgb  RGB
	}{
		{16, RGB{0x00, 0x00, 0x00}},  // black cube corner
		{21, RGB{0x00, 0x00, 0xFF}},  // blue cube corner
		{46, RGB{0x00, 0xFF, 0x00}},  // green cube corner
		{196, RGB{0xFF, 0x00, 0x00}}, // red cube corner
		{231, RGB{0xFF, 0xFF, 0xFF}}, // white cube corner
		{232, RGB{0x08, 0x08, 0x08}}, // first gray
		{255, RGB{0xEE, 0xEE, 0xEE}}, // last gray
		{1, RGB{0x80, 0x00, 0x00}},   // aliases the base table
	}

	for _, c := range cases {
		col, err := New256(c.code)
		if err != nil {
			t.Fatalf("New256(%d): %v", c.code, err)
		}
		if col.RGB() != c.rgb {
			t.Errorf("Color256(%d).RGB() = %v, want %v", c.code, col.RGB(), c.rgb)
		}
	}
}

func TestColorRGBDeterminism(t *testing.T) {
	c := NewNamedRGB(RGB{12, 34, 56}, "test-blue")
	if c.RGB() != c.RGB() {
		t.Fatalf("RGB() must be deterministic")
	}
	if c.Name() != "test-blue" {
		t.Fatalf("Name() = %q", c.Name())
	}
}

func TestSameVariantEquality(t *testing.T) {
	a, _ := New16(1)
	b, _ := New16(1)
	if a != b {
		t.Errorf("Color16 values with equal codes must be equal")
	}

	// Cross-variant comparisons are intentionally type errors in Go; the
	// closest check is via the interface, where variants never mix.
	var ca Color = a
	var cb Color = Color256{Code: 1}
	if ca == cb {
		t.Errorf("Color16(1) and Color256(1) must not be equal")
	}
}

func TestDistanceZeroForSameColor(t *testing.T) {
	a, _ := New256(196)
	for _, m := range []Metric{MetricLAB, MetricRGB, MetricHSV} {
		d, err := Distance(a, a, m)
		if err != nil {
			t.Fatalf("Distance under %v: %v", m, err)
		}
		if d != 0 {
			t.Errorf("distance of a color to itself under %v = %v, want 0", m, d)
		}
	}
}

func TestDistanceUnknownMetric(t *testing.T) {
	a, _ := New16(0)
	if _, err := Distance(a, a, Metric(99)); !errors.Is(err, ErrUnknownMetric) {
		t.Fatalf("unknown metric should fail with ErrUnknownMetric, got %v", err)
	}
}

func TestParseMetric(t *testing.T) {
	for s, want := range map[string]Metric{"lab": MetricLAB, "RGB": MetricRGB, "hsv": MetricHSV} {
		m, err := ParseMetric(s)
		if err != nil {
			t.Fatalf("ParseMetric(%q): %v", s, err)
		}
		if m != want {
			t.Errorf("ParseMetric(%q) = %v, want %v", s, m, want)
		}
	}
	if _, err := ParseMetric("cmyk"); !errors.Is(err, ErrUnknownMetric) {
		t.Fatalf("ParseMetric(cmyk) should fail with ErrUnknownMetric, got %v", err)
	}
}

func TestHSVMetricHueWrap(t *testing.T) {
	m := MetricHSV
	// Hues 10 and 350 degrees are 20 degrees apart across the wrap.
	u := [3]float64{10.0 / 360, 1, 1}
	v := [3]float64{350.0 / 360, 1, 1}
	got := m.Between(u, v)
	want := 20.0 / 360
	if diff := got - want; diff > 1e-9 || diff < -1e-9 {
		t.Fatalf("wrapped hue distance = %v, want %v", got, want)
	}
}
