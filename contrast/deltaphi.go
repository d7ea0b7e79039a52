package contrast

import (
	"math"

	"github.com/jmylchreest/contrasty/colour"
)

// Delta Phi Star constants.
// https://github.com/Myndex/deltaphistar
var (
	// phi is the golden ratio, used as both exponent and root.
	phi = math.Sqrt(5)*0.5 + 0.5
)

// deltaPhiFloor is the threshold below which Delta Phi Star reports no
// usable contrast at all.
const deltaPhiFloor = 7.5

// DeltaPhiStar returns the Delta Phi Star contrast between text and
// background: the golden-ratio power difference of their CIE L* lightness,
// rooted back, scaled by root 2 and offset by 40. Values below 7.5 collapse
// to exactly 0.
func DeltaPhiStar(text, background colour.Color) float64 {
	t, _ := text.Convert(colour.SpaceLabD65)
	b, _ := background.Convert(colour.SpaceLabD65)
	lTxt := t.Get(0)
	lBg := b.Get(0)

	c := nthRoot(math.Abs(spow(lBg, phi)-spow(lTxt, phi)), phi)*math.Sqrt2 - 40.0
	if c < deltaPhiFloor {
		return 0.0
	}
	return c
}
