package colour

import "github.com/lucasb-eyer/go-colorful"

// DefaultGamutTolerance is the channel tolerance used when deciding whether
// a colour needs gamut mapping. Large enough to absorb conversion round-trip
// noise, small enough to be invisible at 8 bits per channel.
const DefaultGamutTolerance = 0.000075

// fitIterations bounds the chroma bisection in Fit. 20 halvings resolve
// chroma to well below one display quantum.
const fitIterations = 20

// InGamut reports whether the colour lies inside the gamut of the target
// space, within tol per channel. Spaces without fixed channel ranges are
// treated as unbounded, so membership is always true for them.
func (c Color) InGamut(space string, tol float64) bool {
	conv, err := c.Convert(space)
	if err != nil {
		return false
	}
	s, _ := lookupSpace(conv.space)
	bounded, ok := s.(boundedSpace)
	if !ok {
		return true
	}
	for i, r := range bounded.Bounds() {
		v := conv.coords[i]
		// Written so NaN fails the test.
		if !(v >= r[0]-tol && v <= r[1]+tol) {
			return false
		}
	}
	return true
}

// Fit maps the colour into the gamut of the target space by reducing chroma
// in oklch at constant lightness and hue, the same strategy CSS gamut
// mapping uses. Lightness is clamped to [0, 1] first; a final per-channel
// clamp catches the residual tolerance. The result stays in the colour's
// original space and keeps its alpha.
func (c Color) Fit(space string) Color {
	if c.InGamut(space, DefaultGamutTolerance) {
		return c
	}

	lch, err := c.Convert(SpaceOkLCh)
	if err != nil {
		return c
	}
	l := clamp(lch.coords[0], 0, 1)
	hue := lch.coords[2]

	lo, hi := 0.0, lch.coords[1]
	for i := 0; i < fitIterations; i++ {
		mid := (lo + hi) / 2
		cand := Color{space: SpaceOkLCh, coords: []float64{l, mid, hue}, alpha: c.alpha}
		if cand.InGamut(space, DefaultGamutTolerance) {
			lo = mid
		} else {
			hi = mid
		}
	}

	fitted := Color{space: SpaceOkLCh, coords: []float64{l, lo, hue}, alpha: c.alpha}
	conv, err := fitted.Convert(space)
	if err != nil {
		return c
	}
	if s, _ := lookupSpace(conv.space); s != nil {
		if bounded, ok := s.(boundedSpace); ok {
			for i, r := range bounded.Bounds() {
				conv.coords[i] = clamp(conv.coords[i], r[0], r[1])
			}
		}
	}
	out, err := conv.Convert(c.space)
	if err != nil {
		return c
	}
	return out
}

// Clamped returns the colour hard-clamped per channel in sRGB. It is a
// cheaper, hue-distorting alternative to Fit for display purposes.
func (c Color) Clamped() Color {
	s, err := c.Convert(SpaceSRGB)
	if err != nil {
		return c
	}
	rgb := colorful.Color{R: s.coords[0], G: s.coords[1], B: s.coords[2]}.Clamped()
	out, err := Color{space: SpaceSRGB, coords: []float64{rgb.R, rgb.G, rgb.B}, alpha: c.alpha}.Convert(c.space)
	if err != nil {
		return c
	}
	return out
}
