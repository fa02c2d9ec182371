package colorspace

import (
	"math"
	"testing"

	colorful "github.com/lucasb-eyer/go-colorful"
)

func absDiff(a, b float64) float64 {
	return math.Abs(a - b)
}

func channelDiff(a, b uint8) int {
	d := int(a) - int(b)
	if d < 0 {
		return -d
	}
	return d
}

func TestRGBToHSVKnownValues(t *testing.T) {
	cases := []struct {
		r, g, b uint8
		h, s, v float64
	}{
		{255, 0, 0, 0, 1, 1},
		{0, 255, 0, 120, 1, 1},
		{0, 0, 255, 240, 1, 1},
		{255, 255, 0, 60, 1, 1},
		{0, 0, 0, 0, 0, 0},
		{255, 255, 255, 0, 0, 1},
		{128, 128, 128, 0, 0, 128.0 / 255.0},
	}

	for _, c := range cases {
		h, s, v := RGBToHSV(c.r, c.g, c.b)
		if absDiff(h, c.h) > 1e-9 || absDiff(s, c.s) > 1e-9 || absDiff(v, c.v) > 1e-9 {
			t.Errorf("RGBToHSV(%d,%d,%d) = (%v,%v,%v), want (%v,%v,%v)",
				c.r, c.g, c.b, h, s, v, c.h, c.s, c.v)
		}
	}
}

func TestRGBToLABKnownValues(t *testing.T) {
	cases := []struct {
		r, g, b uint8
		l, a, bb float64
	}{
		{255, 0, 0, 53.2408, 80.0925, 67.2032},
		{0, 0, 0, 0, 0, 0},
		{255, 255, 255, 100, 0, 0},
	}

	for _, c := range cases {
		l, a, b := RGBToLAB(c.r, c.g, c.b)
		if absDiff(l, c.l) > 0.01 || absDiff(a, c.a) > 0.01 || absDiff(b, c.bb) > 0.01 {
			t.Errorf("RGBToLAB(%d,%d,%d) = (%v,%v,%v), want (%v,%v,%v)",
				c.r, c.g, c.b, l, a, b, c.l, c.a, c.bb)
		}
	}
}

// The go-colorful library implements the same standard conversions; both
// sides must agree. colorful keeps L*, a*, b* on a 0..1 scale.
func TestConversionsAgainstColorful(t *testing.T) {
	for r := 0; r <= 255; r += 51 {
		for g := 0; g <= 255; g += 51 {
			for b := 0; b <= 255; b += 51 {
				ref := colorful.Color{
					R: float64(r) / 255.0,
					G: float64(g) / 255.0,
					B: float64(b) / 255.0,
				}

				h, s, v := RGBToHSV(uint8(r), uint8(g), uint8(b))
				rh, rs, rv := ref.Hsv()
				if absDiff(h, rh) > 1e-6 || absDiff(s, rs) > 1e-6 || absDiff(v, rv) > 1e-6 {
					t.Fatalf("HSV mismatch at (%d,%d,%d): got (%v,%v,%v), colorful (%v,%v,%v)",
						r, g, b, h, s, v, rh, rs, rv)
				}

				x, y, z := RGBToXYZ(uint8(r), uint8(g), uint8(b))
				rx, ry, rz := ref.Xyz()
				if absDiff(x, rx) > 1e-3 || absDiff(y, ry) > 1e-3 || absDiff(z, rz) > 1e-3 {
					t.Fatalf("XYZ mismatch at (%d,%d,%d): got (%v,%v,%v), colorful (%v,%v,%v)",
						r, g, b, x, y, z, rx, ry, rz)
				}

				l, la, lb := RGBToLAB(uint8(r), uint8(g), uint8(b))
				cl, ca, cb := ref.Lab()
				if absDiff(l/100, cl) > 5e-3 || absDiff(la/100, ca) > 5e-3 || absDiff(lb/100, cb) > 5e-3 {
					t.Fatalf("LAB mismatch at (%d,%d,%d): got (%v,%v,%v), colorful (%v,%v,%v)",
						r, g, b, l/100, la/100, lb/100, cl, ca, cb)
				}
			}
		}
	}
}

func TestHSVRoundTrip(t *testing.T) {
	for r := 0; r <= 255; r += 17 {
		for g := 0; g <= 255; g += 17 {
			for b := 0; b <= 255; b += 17 {
				h, s, v := RGBToHSV(uint8(r), uint8(g), uint8(b))
				rr, rg, rb := HSVToRGB(h, s, v)
				if channelDiff(rr, uint8(r)) > 1 || channelDiff(rg, uint8(g)) > 1 || channelDiff(rb, uint8(b)) > 1 {
					t.Fatalf("HSV round trip (%d,%d,%d) -> (%d,%d,%d)", r, g, b, rr, rg, rb)
				}
			}
		}
	}
}

func TestLABRoundTrip(t *testing.T) {
	for r := 0; r <= 255; r += 17 {
		for g := 0; g <= 255; g += 17 {
			for b := 0; b <= 255; b += 17 {
				l, a, bb := RGBToLAB(uint8(r), uint8(g), uint8(b))
				rr, rg, rb := LABToRGB(l, a, bb)
				if channelDiff(rr, uint8(r)) > 1 || channelDiff(rg, uint8(g)) > 1 || channelDiff(rb, uint8(b)) > 1 {
					t.Fatalf("LAB round trip (%d,%d,%d) -> (%d,%d,%d)", r, g, b, rr, rg, rb)
				}
			}
		}
	}
}

func TestHSVToRGBWrapsHue(t *testing.T) {
	r1, g1, b1 := HSVToRGB(-120, 1, 1)
	r2, g2, b2 := HSVToRGB(240, 1, 1)
	if r1 != r2 || g1 != g2 || b1 != b2 {
		t.Errorf("hue -120 and 240 should agree: (%d,%d,%d) vs (%d,%d,%d)", r1, g1, b1, r2, g2, b2)
	}
}
