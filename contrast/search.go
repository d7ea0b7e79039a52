package contrast

import (
	"math"

	"github.com/hashicorp/go-hclog"
)

const (
	// lightnessEpsilon is the resolution of the lightness search: the
	// nudge applied when foreground and background lightness coincide, and
	// the smallest midpoint movement before the search is considered
	// stalled.
	lightnessEpsilon = 1e-4

	// zeroTargetEpsilon is the magnitude below which a target contrast is
	// treated as a request for no contrast at all.
	zeroTargetEpsilon = 1e-6

	// maxIterations caps the bisection so worst-case latency is bounded by
	// a fixed number of metric evaluations.
	maxIterations = 50
)

// methodConfig carries the per-method search parameters: the convergence
// tolerance appropriate to the metric's scale, and a priming step that moves
// the starting lightness to where the metric has usable gradient.
type methodConfig struct {
	tolerance float64
	prime     func(l, bgL float64, darker bool) float64
}

var methodConfigs = map[string]methodConfig{
	MethodWCAG21:   {tolerance: 0.01, prime: primeNone},
	MethodLstar:    {tolerance: 0.5, prime: primeNone},
	MethodAPCA:     {tolerance: 0.5, prime: primeAPCA},
	MethodDeltaPhi: {tolerance: 0.5, prime: primeDeltaPhi},
}

// defaultMethodConfig covers contrast methods registered by callers outside
// this package.
var defaultMethodConfig = methodConfig{tolerance: 0.05, prime: primeNone}

func configFor(method string) methodConfig {
	if cfg, ok := methodConfigs[method]; ok {
		return cfg
	}
	return defaultMethodConfig
}

func primeNone(l, _ float64, _ bool) float64 { return l }

// primeAPCA starts the search well onto the requested side of the
// background. APCA is flat near equal luminance, so starting close to the
// background wastes iterations in the noise-gated region.
func primeAPCA(l, bgL float64, darker bool) float64 {
	if darker && l > bgL {
		return bgL * 0.7
	}
	if !darker && l < bgL {
		return math.Min(bgL*1.3, 0.95)
	}
	return l
}

// primeDeltaPhi starts the search beyond Delta Phi Star's threshold floor,
// where everything reads as zero contrast.
func primeDeltaPhi(l, bgL float64, darker bool) float64 {
	if darker && l > bgL-0.2 {
		return math.Max(bgL-0.25, 0.05)
	}
	if !darker && l < bgL+0.2 {
		return math.Min(bgL+0.25, 0.95)
	}
	return l
}

// prober abstracts the colour work a single bisection step needs: build the
// candidate at the requested lightness and chroma, fit it into the display
// gamut, and measure its contrast against the background. The lightness
// actually achieved after fitting is reported back so the search tracks what
// was displayable, not what was asked for.
type prober interface {
	probe(l, chroma float64) (achieved, contrast float64)
}

// searchParams are the fixed inputs of one search invocation.
type searchParams struct {
	target    float64 // target contrast magnitude, >= 0
	startL    float64 // starting lightness, after nudge and priming
	refL      float64 // original foreground lightness, chroma scale reference
	bgL       float64 // background lightness, the pivot of the search
	chroma    float64 // original foreground chroma
	darker    bool    // search below the background lightness
	preserve  bool    // scale chroma proportionally with lightness
	tolerance float64
	log       hclog.Logger
}

// searchState is the transient per-invocation state of the bisection,
// threaded through the loop as an explicit value.
type searchState struct {
	l          float64
	minL, maxL float64
	bestL      float64
	bestErr    float64 // smallest |contrast| - target seen so far
	iterations int
}

// chromaFor returns the candidate chroma at lightness l: the original chroma
// scaled by l/refL when proportions are preserved, otherwise the original
// chroma unchanged. refL of zero disables scaling rather than dividing by it.
func chromaFor(c0, l, refL float64, preserve bool) float64 {
	if preserve && refL > 0 {
		return c0 * (l / refL)
	}
	return c0
}

// runSearch bisects the lightness interval [0, 1] until the probed contrast
// magnitude is within tolerance of the target, the search stalls, the
// interval inverts, or the iteration cap is hit. Whatever the exit reason,
// the best lightness seen is recorded in the returned state; there is no
// failure outcome.
func runSearch(p prober, sp searchParams) searchState {
	st := searchState{
		l:       sp.startL,
		minL:    0,
		maxL:    1,
		bestL:   sp.startL,
		bestErr: math.Inf(1),
	}

	for st.iterations < maxIterations {
		st.iterations++

		achieved, measured := p.probe(st.l, chromaFor(sp.chroma, st.l, sp.refL, sp.preserve))
		if math.Abs(achieved-st.l) > lightnessEpsilon {
			// Gamut fitting snapped the candidate; follow the lightness
			// that is actually displayable.
			st.l = achieved
		}

		err := math.Abs(measured) - sp.target
		if math.Abs(err) < math.Abs(st.bestErr) {
			st.bestErr = err
			st.bestL = st.l
		}
		sp.log.Debug("bisection step",
			"iteration", st.iterations,
			"lightness", st.l,
			"contrast", measured,
			"error", err,
			"interval", []float64{st.minL, st.maxL},
		)
		if math.Abs(err) < sp.tolerance {
			break
		}

		// Contrast magnitude is V-shaped around the background lightness,
		// so the bounds move relative to it. On the committed side, too
		// little contrast pushes the bound away from the background and
		// too much pulls it back toward the background. On the wrong side
		// the bound always moves toward and past the background, whatever
		// the sign of the error.
		if sp.darker {
			if st.l > sp.bgL || err < 0 {
				st.maxL = st.l
			} else {
				st.minL = st.l
			}
		} else {
			if st.l < sp.bgL || err < 0 {
				st.minL = st.l
			} else {
				st.maxL = st.l
			}
		}
		if st.minL > st.maxL {
			break
		}

		next := (st.minL + st.maxL) / 2
		if math.Abs(next-st.l) <= lightnessEpsilon {
			// Stalled, typically at a gamut boundary or after fitting
			// snapped the lightness. Nudge once toward the live interval;
			// if even that escapes the interval there is no progress left.
			dir := 1.0
			if next < st.l || (next == st.l && sp.darker) {
				dir = -1
			}
			next = st.l + dir*lightnessEpsilon
			if next < st.minL || next > st.maxL {
				break
			}
		}
		st.l = next
	}

	return st
}
