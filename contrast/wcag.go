package contrast

import (
	"math"

	"github.com/jmylchreest/contrasty/colour"
)

// WCAG21 returns the WCAG 2.1 relative-luminance contrast ratio between two
// colours. The result is in [1, 21] and independent of which colour is the
// foreground.
// https://www.w3.org/TR/WCAG21/#dfn-contrast-ratio
func WCAG21(fg, bg colour.Color) float64 {
	l1 := relativeLuminance(fg)
	l2 := relativeLuminance(bg)
	if l1 < l2 {
		l1, l2 = l2, l1
	}
	return (l1 + 0.05) / (l2 + 0.05)
}

// relativeLuminance computes WCAG 2.1 relative luminance from gamma-encoded
// sRGB components.
// https://www.w3.org/TR/WCAG21/#dfn-relative-luminance
func relativeLuminance(c colour.Color) float64 {
	s, _ := c.Convert(colour.SpaceSRGB)
	r := wcagLinearise(s.Get(0))
	g := wcagLinearise(s.Get(1))
	b := wcagLinearise(s.Get(2))
	return 0.2126*r + 0.7152*g + 0.0722*b
}

// wcagLinearise applies the WCAG 2.1 transfer function. Note the 0.03928
// threshold: WCAG kept the sRGB draft constant, so this intentionally
// differs from the 0.04045 used for colour-space conversion.
func wcagLinearise(v float64) float64 {
	if v <= 0.03928 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}
