package colour

import "math"

// OKLab conversion matrices, from Björn Ottosson's reference implementation.
// https://bottosson.github.io/posts/oklab/

func linearRGBToOKLab(r, g, b float64) (float64, float64, float64) {
	// M1: linear RGB to LMS.
	l := 0.4122214708*r + 0.5363325363*g + 0.0514459929*b
	m := 0.2119034982*r + 0.6806995451*g + 0.1073969566*b
	s := 0.0883024619*r + 0.2817188376*g + 0.6299787005*b

	// Cube root, sign preserving.
	lp := math.Cbrt(l)
	mp := math.Cbrt(m)
	sp := math.Cbrt(s)

	// M2: LMS' to Lab.
	L := 0.2104542553*lp + 0.7936177850*mp - 0.0040720468*sp
	A := 1.9779984951*lp - 2.4285922050*mp + 0.4505937099*sp
	B := 0.0259040371*lp + 0.7827717662*mp - 0.8086757660*sp

	return L, A, B
}

func okLabToLinearRGB(L, a, b float64) (float64, float64, float64) {
	// Inverse M2: Lab to LMS'.
	lp := L + 0.3963377774*a + 0.2158037573*b
	mp := L - 0.1055613458*a - 0.0638541728*b
	sp := L - 0.0894841775*a - 1.2914855480*b

	// Cube: LMS' to LMS.
	l := lp * lp * lp
	m := mp * mp * mp
	s := sp * sp * sp

	// Inverse M1: LMS to linear RGB.
	r := 4.0767416621*l - 3.3077115913*m + 0.2309699292*s
	g := -1.2684380046*l + 2.6097574011*m - 0.3413193965*s
	bl := -0.0041960863*l - 0.7034186147*m + 1.7076147010*s

	return r, g, bl
}

// Toe constants for the Lr lightness estimate used by oklrab/oklrch.
// https://bottosson.github.io/posts/colorpicker/#intermission---a-new-lightness-estimate-for-oklab
const (
	toeK1 = 0.206
	toeK2 = 0.03
	toeK3 = (1.0 + toeK1) / (1.0 + toeK2)
)

// toe maps OKLab L to the toe-corrected lightness Lr, which behaves closer
// to CIE L* near black.
func toe(l float64) float64 {
	d := toeK3*l - toeK1
	return 0.5 * (d + math.Sqrt(d*d+4*toeK2*toeK3*l))
}

// toeInv maps toe-corrected lightness Lr back to OKLab L.
func toeInv(lr float64) float64 {
	return (lr*lr + toeK1*lr) / (toeK3 * (lr + toeK2))
}

// toPolar converts rectangular a/b components to chroma and hue in degrees
// [0, 360).
func toPolar(a, b float64) (chroma, hue float64) {
	chroma = math.Hypot(a, b)
	hue = math.Atan2(b, a) * 180 / math.Pi
	if hue < 0 {
		hue += 360
	}
	return chroma, hue
}

// fromPolar converts chroma and hue in degrees back to rectangular a/b.
func fromPolar(chroma, hue float64) (a, b float64) {
	rad := hue * math.Pi / 180
	return chroma * math.Cos(rad), chroma * math.Sin(rad)
}

type okLabSpace struct{}

func (okLabSpace) Name() string       { return SpaceOkLab }
func (okLabSpace) Channels() []string { return []string{"l", "a", "b"} }

func (okLabSpace) FromLinearRGB(r, g, b float64) []float64 {
	L, A, B := linearRGBToOKLab(r, g, b)
	return []float64{L, A, B}
}

func (okLabSpace) ToLinearRGB(coords []float64) (float64, float64, float64) {
	return okLabToLinearRGB(coords[0], coords[1], coords[2])
}

type okLChSpace struct{}

func (okLChSpace) Name() string       { return SpaceOkLCh }
func (okLChSpace) Channels() []string { return []string{"l", "c", "h"} }

func (okLChSpace) FromLinearRGB(r, g, b float64) []float64 {
	L, A, B := linearRGBToOKLab(r, g, b)
	chroma, hue := toPolar(A, B)
	return []float64{L, chroma, hue}
}

func (okLChSpace) ToLinearRGB(coords []float64) (float64, float64, float64) {
	a, b := fromPolar(coords[1], coords[2])
	return okLabToLinearRGB(coords[0], a, b)
}

type okLrAbSpace struct{}

func (okLrAbSpace) Name() string       { return SpaceOkLrAb }
func (okLrAbSpace) Channels() []string { return []string{"l", "a", "b"} }

func (okLrAbSpace) FromLinearRGB(r, g, b float64) []float64 {
	L, A, B := linearRGBToOKLab(r, g, b)
	return []float64{toe(L), A, B}
}

func (okLrAbSpace) ToLinearRGB(coords []float64) (float64, float64, float64) {
	return okLabToLinearRGB(toeInv(coords[0]), coords[1], coords[2])
}

type okLrChSpace struct{}

func (okLrChSpace) Name() string       { return SpaceOkLrCh }
func (okLrChSpace) Channels() []string { return []string{"l", "c", "h"} }

func (okLrChSpace) FromLinearRGB(r, g, b float64) []float64 {
	L, A, B := linearRGBToOKLab(r, g, b)
	chroma, hue := toPolar(A, B)
	return []float64{toe(L), chroma, hue}
}

func (okLrChSpace) ToLinearRGB(coords []float64) (float64, float64, float64) {
	a, b := fromPolar(coords[1], coords[2])
	return okLabToLinearRGB(toeInv(coords[0]), a, b)
}

func init() {
	RegisterSpace(okLabSpace{})
	RegisterSpace(okLChSpace{})
	RegisterSpace(okLrAbSpace{})
	RegisterSpace(okLrChSpace{})
}
