// Package colour implements a compact colour model: immutable colour values
// addressed by colour-space name, conversion between registered spaces,
// sRGB gamut testing and fitting, and name-dispatched contrast measurement.
//
// All operations are pure: they return new Color values and never mutate the
// receiver, so values can be shared freely across goroutines.
package colour

import (
	"fmt"
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Names of the built-in colour spaces.
const (
	SpaceSRGB       = "srgb"
	SpaceSRGBLinear = "srgb-linear"
	SpaceLabD65     = "lab-d65"
	SpaceOkLab      = "oklab"
	SpaceOkLCh      = "oklch"
	SpaceOkLrAb     = "oklrab"
	SpaceOkLrCh     = "oklrch"
)

// Color is an immutable colour value: a coordinate triple in a named colour
// space plus an alpha channel in [0, 1].
type Color struct {
	space  string
	coords []float64
	alpha  float64
}

// New creates a colour from a space name, its component values and an alpha
// channel. The space must be registered and the component count must match
// the space's channel count.
func New(space string, coords []float64, alpha float64) (Color, error) {
	s, err := lookupSpace(space)
	if err != nil {
		return Color{}, err
	}
	if len(coords) != len(s.Channels()) {
		return Color{}, fmt.Errorf("colour: space %q expects %d components, got %d",
			s.Name(), len(s.Channels()), len(coords))
	}
	c := make([]float64, len(coords))
	copy(c, coords)
	return Color{space: s.Name(), coords: c, alpha: clamp(alpha, 0, 1)}, nil
}

// cssBasicColours maps the CSS basic colour keywords to sRGB hex strings.
var cssBasicColours = map[string]string{
	"black":   "#000000",
	"silver":  "#c0c0c0",
	"gray":    "#808080",
	"grey":    "#808080",
	"white":   "#ffffff",
	"maroon":  "#800000",
	"red":     "#ff0000",
	"purple":  "#800080",
	"fuchsia": "#ff00ff",
	"green":   "#008000",
	"lime":    "#00ff00",
	"olive":   "#808000",
	"yellow":  "#ffff00",
	"navy":    "#000080",
	"blue":    "#0000ff",
	"teal":    "#008080",
	"aqua":    "#00ffff",
}

// Parse creates an sRGB colour from a string representation. Accepted forms
// are #RGB, #RGBA, #RRGGBB and #RRGGBBAA hex notation, plus the CSS basic
// colour keywords. Errors from malformed input are returned as-is, never
// masked.
func Parse(s string) (Color, error) {
	in := strings.ToLower(strings.TrimSpace(s))
	if hex, ok := cssBasicColours[in]; ok {
		in = hex
	}
	if !strings.HasPrefix(in, "#") {
		return Color{}, fmt.Errorf("colour: cannot parse %q: expected hex notation or a CSS colour keyword", s)
	}

	alpha := 1.0
	switch len(in) {
	case 4, 7: // #RGB, #RRGGBB
	case 5: // #RGBA
		var a int
		if _, err := fmt.Sscanf(in[4:], "%1x", &a); err != nil {
			return Color{}, fmt.Errorf("colour: invalid alpha in %q: %w", s, err)
		}
		alpha = float64(a) / 15.0
		in = in[:4]
	case 9: // #RRGGBBAA
		var a int
		if _, err := fmt.Sscanf(in[7:], "%02x", &a); err != nil {
			return Color{}, fmt.Errorf("colour: invalid alpha in %q: %w", s, err)
		}
		alpha = float64(a) / 255.0
		in = in[:7]
	default:
		// go-colorful's scan ignores trailing characters, so reject bad
		// lengths before delegating to it.
		return Color{}, fmt.Errorf("colour: cannot parse %q: hex notation must be #RGB, #RGBA, #RRGGBB or #RRGGBBAA", s)
	}

	rgb, err := colorful.Hex(in)
	if err != nil {
		return Color{}, fmt.Errorf("colour: cannot parse %q: %w", s, err)
	}
	return Color{space: SpaceSRGB, coords: []float64{rgb.R, rgb.G, rgb.B}, alpha: alpha}, nil
}

// Space returns the name of the colour's current space.
func (c Color) Space() string { return c.space }

// Coords returns a copy of the colour's component values.
func (c Color) Coords() []float64 {
	out := make([]float64, len(c.coords))
	copy(out, c.coords)
	return out
}

// Get returns the component at the given channel index. Out-of-range indices
// return NaN rather than panicking.
func (c Color) Get(i int) float64 {
	if i < 0 || i >= len(c.coords) {
		return math.NaN()
	}
	return c.coords[i]
}

// Channel returns the component with the given channel name, as declared by
// the colour's space. "alpha" is accepted for every space.
func (c Color) Channel(name string) (float64, error) {
	name = strings.ToLower(name)
	if name == "alpha" {
		return c.alpha, nil
	}
	s, err := lookupSpace(c.space)
	if err != nil {
		return 0, err
	}
	for i, ch := range s.Channels() {
		if ch == name {
			return c.coords[i], nil
		}
	}
	return 0, fmt.Errorf("colour: space %q has no channel %q", c.space, name)
}

// Alpha returns the alpha channel in [0, 1].
func (c Color) Alpha() float64 { return c.alpha }

// Convert returns the colour expressed in the target space. Conversion goes
// through the linear-sRGB hub and preserves alpha.
func (c Color) Convert(space string) (Color, error) {
	dst, err := lookupSpace(space)
	if err != nil {
		return Color{}, err
	}
	if dst.Name() == c.space {
		return c, nil
	}
	src, err := lookupSpace(c.space)
	if err != nil {
		return Color{}, err
	}
	r, g, b := src.ToLinearRGB(c.coords)
	return Color{space: dst.Name(), coords: dst.FromLinearRGB(r, g, b), alpha: c.alpha}, nil
}

// Contrast measures the contrast between the colour and a background using
// the named registered method. Sign conventions and value ranges are defined
// by the individual methods.
func (c Color) Contrast(bg Color, method string) (float64, error) {
	fn, err := lookupContrast(method)
	if err != nil {
		return 0, err
	}
	return fn(c, bg), nil
}

// Hex returns the colour as hex notation, clamped into the sRGB gamut.
// Opaque colours render as #RRGGBB, translucent ones as #RRGGBBAA.
func (c Color) Hex() string {
	s, _ := c.Convert(SpaceSRGB)
	s = s.Clamped()
	rgb := colorful.Color{R: s.Get(0), G: s.Get(1), B: s.Get(2)}
	if c.alpha < 1 {
		return fmt.Sprintf("%s%02x", rgb.Hex(), int(math.Round(c.alpha*255)))
	}
	return rgb.Hex()
}

// String renders the colour with its space name and components, in the style
// "oklrch(0.5000 0.1000 30.0000 / 1)".
func (c Color) String() string {
	parts := make([]string, len(c.coords))
	for i, v := range c.coords {
		parts[i] = fmt.Sprintf("%.4f", v)
	}
	return fmt.Sprintf("%s(%s / %g)", c.space, strings.Join(parts, " "), c.alpha)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
