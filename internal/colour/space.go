// Package colour provides colour space conversions, perceptual metrics and
// distinct palette generation.
package colour

import "math"

// XYZ represents a colour in CIE XYZ space under the D65 illuminant,
// scaled to a 0-100 range.
type XYZ struct {
	X float64
	Y float64
	Z float64
}

// Lab represents a colour in CIELAB space. L is lightness (roughly 0-100);
// A and B are the chroma/hue axes, practically within [-128, 128].
type Lab struct {
	L float64
	A float64
	B float64
}

// D65 reference white.
const (
	refWhiteX = 95.047
	refWhiteY = 100.0
	refWhiteZ = 108.883
)

// RGBToXYZ converts an sRGB colour to XYZ (D65, 0-100 scale).
func RGBToXYZ(c RGB) XYZ {
	r := expandGamma(float64(c.R) / 255.0)
	g := expandGamma(float64(c.G) / 255.0)
	b := expandGamma(float64(c.B) / 255.0)

	return XYZ{
		X: (r*0.4124564 + g*0.3575761 + b*0.1804375) * 100,
		Y: (r*0.2126729 + g*0.7151522 + b*0.0721750) * 100,
		Z: (r*0.0193339 + g*0.1191920 + b*0.9503041) * 100,
	}
}

// expandGamma converts a single sRGB component in [0,1] to linear light.
// Note the 0.04045 threshold; the WCAG luminance formula in metrics.go uses
// 0.03928, which comes from a different reference and must stay separate.
func expandGamma(v float64) float64 {
	if v <= 0.04045 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// XYZToLab converts an XYZ colour to CIELAB.
func XYZToLab(c XYZ) Lab {
	fx := labF(c.X / refWhiteX)
	fy := labF(c.Y / refWhiteY)
	fz := labF(c.Z / refWhiteZ)

	return Lab{
		L: 116*fy - 16,
		A: 500 * (fx - fy),
		B: 200 * (fy - fz),
	}
}

func labF(t float64) float64 {
	if t > 0.008856 {
		return math.Cbrt(t)
	}
	return 7.787*t + 16.0/116.0
}

// LabToXYZ converts a CIELAB colour back to XYZ.
func LabToXYZ(c Lab) XYZ {
	fy := (c.L + 16) / 116
	fx := c.A/500 + fy
	fz := fy - c.B/200

	return XYZ{
		X: refWhiteX * labFInv(fx),
		Y: refWhiteY * labFInv(fy),
		Z: refWhiteZ * labFInv(fz),
	}
}

func labFInv(t float64) float64 {
	if t > 0.206893 {
		return t * t * t
	}
	return (t - 16.0/116.0) / 7.787
}

// XYZToRGB converts an XYZ colour to sRGB, rounding each channel to the
// nearest integer and clamping to [0,255]. The conversion is total: any
// finite XYZ input yields a valid RGB value.
func XYZToRGB(c XYZ) RGB {
	r, g, b := xyzToChannels(c)
	return RGB{
		R: clampChannel(r),
		G: clampChannel(g),
		B: clampChannel(b),
	}
}

// xyzToChannels returns the continuous sRGB channel values on a 0-255 scale
// before rounding. The sampler uses these to reject out-of-gamut Lab points
// instead of silently clamping them.
func xyzToChannels(c XYZ) (r, g, b float64) {
	x := c.X / 100
	y := c.Y / 100
	z := c.Z / 100

	lr := x*3.2404542 - y*1.5371385 - z*0.4985314
	lg := -x*0.9692660 + y*1.8760108 + z*0.0415560
	lb := x*0.0556434 - y*0.2040259 + z*1.0572252

	return compressGamma(lr) * 255, compressGamma(lg) * 255, compressGamma(lb) * 255
}

// compressGamma converts a linear component back to sRGB encoding.
func compressGamma(v float64) float64 {
	if v <= 0.0031308 {
		return 12.92 * v
	}
	return 1.055*math.Pow(v, 1/2.4) - 0.055
}

func clampChannel(v float64) uint8 {
	r := math.Round(v)
	if r < 0 {
		return 0
	}
	if r > 255 {
		return 255
	}
	return uint8(r)
}

// inGamut reports whether all continuous channel values lie within the
// representable sRGB range.
func inGamut(r, g, b float64) bool {
	return r >= 0 && r <= 255 && g >= 0 && g <= 255 && b >= 0 && b <= 255
}
