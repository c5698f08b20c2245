package colour

// SelectForeground picks the foreground for a background colour: whichever of
// pure white or pure black has the higher WCAG contrast ratio against it.
// Ties favour white. Returns the chosen foreground and its contrast ratio.
//
// Hue is not considered; only contrast matters for text readability.
func SelectForeground(bg RGB) (RGB, float64) {
	white := ContrastRatio(bg, White)
	black := ContrastRatio(bg, Black)

	if black > white {
		return Black, black
	}
	return White, white
}

// foregroundFloor returns the minimum foreground contrast required for a
// palette of n colours. Medium palettes mirror the WCAG AA minimum for normal
// text; small palettes are already contrast-validated pairwise, so the floor
// is loose; large palettes rely on the white/black choice alone.
func foregroundFloor(n int) float64 {
	switch {
	case n <= 5:
		return 1.5
	case n <= 10:
		return 4.5
	default:
		return 0
	}
}
