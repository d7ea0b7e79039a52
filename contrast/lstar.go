package contrast

import "github.com/jmylchreest/contrasty/colour"

// Lstar returns the lightness difference between background and foreground
// on the CIE L* scale (Lab D65): positive when the background is lighter
// than the text, negative when darker. The range is roughly [-100, 100].
func Lstar(fg, bg colour.Color) float64 {
	f, _ := fg.Convert(colour.SpaceLabD65)
	b, _ := bg.Convert(colour.SpaceLabD65)
	return b.Get(0) - f.Get(0)
}
