// Package contrast implements perceptual contrast metrics (WCAG 2.1, L*,
// APCA, Delta Phi Star) and Contrasty, an inverse search that adjusts a
// foreground colour's lightness until a target contrast against a background
// is met.
//
// The metrics register themselves with the colour package, so importing this
// package makes them available through Color.Contrast as well.
package contrast

import (
	"math"

	"github.com/jmylchreest/contrasty/colour"
)

// Registered contrast method names.
const (
	MethodWCAG21   = "wcag21"
	MethodLstar    = "lstar"
	MethodAPCA     = "apca"
	MethodDeltaPhi = "delta-phi"
)

func init() {
	colour.RegisterContrast(MethodWCAG21, WCAG21)
	colour.RegisterContrast(MethodLstar, Lstar)
	colour.RegisterContrast(MethodAPCA, APCA)
	colour.RegisterContrast(MethodDeltaPhi, DeltaPhiStar)
}

// Methods returns the method names this package registers, in their
// conventional order.
func Methods() []string {
	return []string{MethodWCAG21, MethodLstar, MethodAPCA, MethodDeltaPhi}
}

// spow raises the absolute value of base to exp and reapplies the original
// sign. Several metrics treat lightness as signed, where math.Pow alone
// would produce NaN.
func spow(base, exp float64) float64 {
	if base < 0 {
		return -math.Pow(-base, exp)
	}
	return math.Pow(base, exp)
}

// nthRoot returns the sign-preserving n-th root of v.
func nthRoot(v, n float64) float64 {
	return spow(v, 1/n)
}
