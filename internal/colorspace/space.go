// Package colorspace provides pure conversions between the RGB, HSV,
// CIE XYZ and CIE L*a*b* color spaces.
//
// All conversions use floating point internally. The RGB-producing
// inverses round to the nearest integer and clamp to [0,255]. XYZ and
// LAB use the D65 reference white (2° observer).
package colorspace

import "math"

// D65 reference white, Y normalized to 1.
const (
	refWhiteX = 0.95047
	refWhiteY = 1.00000
	refWhiteZ = 1.08883
)

// CIE constants for the LAB nonlinearity
const (
	labEpsilon = 216.0 / 24389.0
	labKappa   = 24389.0 / 27.0
)

// RGBToHSV converts 8-bit RGB channels to HSV.
// h is in degrees [0,360), s and v are in [0,1].
func RGBToHSV(r, g, b uint8) (h, s, v float64) {
	rf := float64(r) / 255.0
	gf := float64(g) / 255.0
	bf := float64(b) / 255.0

	maxC := math.Max(rf, math.Max(gf, bf))
	minC := math.Min(rf, math.Min(gf, bf))
	diff := maxC - minC

	v = maxC

	if maxC == 0 {
		s = 0
	} else {
		s = diff / maxC
	}

	switch {
	case diff == 0:
		h = 0
	case maxC == rf:
		h = 60 * math.Mod((gf-bf)/diff, 6)
	case maxC == gf:
		h = 60 * ((bf-rf)/diff + 2)
	default:
		h = 60 * ((rf-gf)/diff + 4)
	}

	if h < 0 {
		h += 360
	}

	return h, s, v
}

// HSVToRGB converts HSV back to 8-bit RGB channels.
// h is in degrees (any value, wrapped to [0,360)), s and v in [0,1].
func HSVToRGB(h, s, v float64) (r, g, b uint8) {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}

	c := v * s
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := v - c

	var rf, gf, bf float64
	switch {
	case h < 60:
		rf, gf, bf = c, x, 0
	case h < 120:
		rf, gf, bf = x, c, 0
	case h < 180:
		rf, gf, bf = 0, c, x
	case h < 240:
		rf, gf, bf = 0, x, c
	case h < 300:
		rf, gf, bf = x, 0, c
	default:
		rf, gf, bf = c, 0, x
	}

	return clampChannel(rf + m), clampChannel(gf + m), clampChannel(bf + m)
}

// RGBToXYZ converts 8-bit sRGB channels to CIE XYZ (D65, Y in [0,1]).
func RGBToXYZ(r, g, b uint8) (x, y, z float64) {
	rl := linearize(float64(r) / 255.0)
	gl := linearize(float64(g) / 255.0)
	bl := linearize(float64(b) / 255.0)

	x = 0.4124564*rl + 0.3575761*gl + 0.1804375*bl
	y = 0.2126729*rl + 0.7151522*gl + 0.0721750*bl
	z = 0.0193339*rl + 0.1191920*gl + 0.9503041*bl
	return x, y, z
}

// XYZToRGB converts CIE XYZ (D65, Y in [0,1]) back to 8-bit sRGB channels.
func XYZToRGB(x, y, z float64) (r, g, b uint8) {
	rl := 3.2404542*x - 1.5371385*y - 0.4985314*z
	gl := -0.9692660*x + 1.8760108*y + 0.0415560*z
	bl := 0.0556434*x - 0.2040259*y + 1.0572252*z

	return clampChannel(delinearize(rl)), clampChannel(delinearize(gl)), clampChannel(delinearize(bl))
}

// XYZToLAB converts CIE XYZ (D65, Y in [0,1]) to CIE L*a*b*.
// l is in [0,100], a and b are unbounded (roughly [-128,127]).
func XYZToLAB(x, y, z float64) (l, a, b float64) {
	fx := labF(x / refWhiteX)
	fy := labF(y / refWhiteY)
	fz := labF(z / refWhiteZ)

	l = 116*fy - 16
	a = 500 * (fx - fy)
	b = 200 * (fy - fz)
	return l, a, b
}

// LABToXYZ converts CIE L*a*b* back to CIE XYZ (D65, Y in [0,1]).
func LABToXYZ(l, a, b float64) (x, y, z float64) {
	fy := (l + 16) / 116
	fx := fy + a/500
	fz := fy - b/200

	return labFInv(fx) * refWhiteX, labFInv(fy) * refWhiteY, labFInv(fz) * refWhiteZ
}

// RGBToLAB is the composition of RGBToXYZ and XYZToLAB. LAB is the space
// in which perceptual color distance is computed, since Euclidean
// distance there tracks human-perceived difference far better than in
// raw RGB.
func RGBToLAB(r, g, b uint8) (l, aa, bb float64) {
	return XYZToLAB(RGBToXYZ(r, g, b))
}

// LABToRGB is the composition of LABToXYZ and XYZToRGB.
func LABToRGB(l, a, b float64) (r, g, bl uint8) {
	return XYZToRGB(LABToXYZ(l, a, b))
}

// linearize removes the sRGB gamma encoding from a [0,1] channel.
func linearize(c float64) float64 {
	if c > 0.04045 {
		return math.Pow((c+0.055)/1.055, 2.4)
	}
	return c / 12.92
}

// delinearize applies the sRGB gamma encoding to a [0,1] linear channel.
func delinearize(c float64) float64 {
	if c > 0.0031308 {
		return 1.055*math.Pow(c, 1/2.4) - 0.055
	}
	return 12.92 * c
}

func labF(t float64) float64 {
	if t > labEpsilon {
		return math.Cbrt(t)
	}
	return (labKappa*t + 16) / 116
}

func labFInv(t float64) float64 {
	if t3 := t * t * t; t3 > labEpsilon {
		return t3
	}
	return (116*t - 16) / labKappa
}

// clampChannel rounds a [0,1] float channel to the nearest 8-bit value,
// clamping out-of-range results.
func clampChannel(c float64) uint8 {
	v := math.Round(c * 255.0)
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
