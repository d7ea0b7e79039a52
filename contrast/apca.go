package contrast

import (
	"math"

	"github.com/jmylchreest/contrasty/colour"
)

// APCA 0.0.98G constants. The licence for APCA requires implementations to
// reproduce the published constants and ordering exactly, including the
// bespoke luminance weighting, so do not "fix" these to match other parts of
// the codebase.
// https://github.com/Myndex/SAPC-APCA
const (
	// Polarity exponents.
	apcaNormBG  = 0.56
	apcaNormTxt = 0.57
	apcaRevTxt  = 0.62
	apcaRevBG   = 0.65

	// Clamps.
	apcaBlkThrs   = 0.022
	apcaBlkClmp   = 1.414
	apcaLoClip    = 0.1
	apcaDeltaYMin = 0.0005

	// Scaling.
	apcaScale    = 1.14
	apcaLoOffset = 0.027

	// Linearisation.
	apcaMainTRC = 2.4
)

var apcaWeights = [3]float64{0.2126729, 0.7151522, 0.0721750}

// APCA returns the APCA 0.0.98G lightness contrast Lc between text and
// background colours. Positive values mean dark text on a light background,
// negative values light text on a dark background; magnitude indicates
// strength, topping out a little above 106.
func APCA(text, background colour.Color) float64 {
	yTxt := apcaSoftClamp(apcaLuminance(text))
	yBg := apcaSoftClamp(apcaLuminance(background))

	// Noise gate for extremely small luminance deltas.
	if math.Abs(yBg-yTxt) < apcaDeltaYMin {
		return 0.0
	}

	var sapc float64
	if yBg > yTxt {
		// Normal polarity: dark text on light background.
		sapc = (math.Pow(yBg, apcaNormBG) - math.Pow(yTxt, apcaNormTxt)) * apcaScale
	} else {
		// Reverse polarity: light text on dark background.
		sapc = (math.Pow(yBg, apcaRevBG) - math.Pow(yTxt, apcaRevTxt)) * apcaScale
	}

	switch {
	case math.Abs(sapc) < apcaLoClip:
		sapc = 0.0
	case sapc > 0:
		sapc -= apcaLoOffset
	default:
		sapc += apcaLoOffset
	}

	return sapc * 100.0
}

// apcaLuminance is APCA's own estimate of luminance: gamma-encoded sRGB
// raised to a flat 2.4 exponent and weighted with APCA's coefficients. This
// is deliberately not the same as CIE Y.
func apcaLuminance(c colour.Color) float64 {
	s, _ := c.Convert(colour.SpaceSRGB)
	var y float64
	for i, w := range apcaWeights {
		y += spow(s.Get(i), apcaMainTRC) * w
	}
	return y
}

// apcaSoftClamp lifts near-black luminances to account for flare and
// ambient light.
func apcaSoftClamp(y float64) float64 {
	if y >= apcaBlkThrs {
		return y
	}
	return y + math.Pow(apcaBlkThrs-y, apcaBlkClmp)
}
