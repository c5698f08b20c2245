package colour

import "math"

// Distance calculates the perceptual distance between two CIELAB colours as
// the Euclidean distance over (L, a, b). This is a deliberate simplification
// of CIEDE2000: it is close enough for judging visual distinctness, but it is
// not exact perceptual uniformity.
func Distance(c1, c2 Lab) float64 {
	dl := c2.L - c1.L
	da := c2.A - c1.A
	db := c2.B - c1.B
	return math.Sqrt(dl*dl + da*da + db*db)
}

// Luminance calculates the relative luminance of a colour according to WCAG 2.0.
// Returns a value between 0 (darkest) and 1 (lightest).
// https://www.w3.org/TR/WCAG20/#relativeluminancedef.
func Luminance(c RGB) float64 {
	r := luminanceComponent(float64(c.R) / 255.0)
	g := luminanceComponent(float64(c.G) / 255.0)
	b := luminanceComponent(float64(c.B) / 255.0)

	return 0.2126*r + 0.7152*g + 0.0722*b
}

// luminanceComponent linearises a single channel for the WCAG luminance
// formula. The 0.03928 threshold is the WCAG constant; the sRGB-to-XYZ path
// in space.go uses 0.04045 from a different reference formula, and the two
// must not be unified.
func luminanceComponent(v float64) float64 {
	if v <= 0.03928 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// ContrastRatio calculates the contrast ratio between two colours according
// to WCAG 2.0. Returns a value between 1 and 21, where 21 is maximum contrast
// (black vs white). Symmetric in its arguments.
// Meets WCAG AA standard for normal text at 4.5:1, large text at 3:1.
// https://www.w3.org/TR/WCAG20/#contrast-ratiodef.
func ContrastRatio(c1, c2 RGB) float64 {
	l1 := Luminance(c1)
	l2 := Luminance(c2)

	// Ensure l1 is the lighter colour.
	if l1 < l2 {
		l1, l2 = l2, l1
	}

	return (l1 + 0.05) / (l2 + 0.05)
}

// ContrastRatioHex calculates the WCAG contrast ratio between two hex colour
// strings. Returns an error if either string is not a valid hex colour.
func ContrastRatioHex(hex1, hex2 string) (float64, error) {
	c1, err := ParseHex(hex1)
	if err != nil {
		return 0, err
	}
	c2, err := ParseHex(hex2)
	if err != nil {
		return 0, err
	}
	return ContrastRatio(c1, c2), nil
}
