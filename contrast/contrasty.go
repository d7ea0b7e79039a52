package contrast

import (
	"fmt"
	"math"

	"github.com/hashicorp/go-hclog"

	"github.com/jmylchreest/contrasty/colour"
)

// Options control a Contrasty search.
type Options struct {
	// Method selects the contrast metric; defaults to wcag21.
	Method string

	// PreserveChroma scales chroma proportionally with lightness so the
	// result keeps the foreground's chroma/lightness ratio. When false,
	// chroma and hue are held at the foreground's values and only
	// lightness moves.
	PreserveChroma bool

	// Logger receives per-iteration search traces at debug level. Nil
	// disables tracing.
	Logger hclog.Logger
}

// Contrasty finds a variant of the foreground colour whose contrast against
// the background reaches the target, adjusting only perceptual lightness
// (oklrch). A positive target searches on the darker side of the background
// lightness; a negative target flips the search to the lighter side.
//
// The search degrades gracefully: when the exact target is unreachable
// within the sRGB gamut it returns the closest displayable approximation
// rather than an error. The result is expressed in the foreground's original
// colour space with its alpha preserved.
func Contrasty(fg, bg colour.Color, target float64, opts Options) (colour.Color, error) {
	method := opts.Method
	if method == "" {
		method = MethodWCAG21
	}
	if !colour.ContrastRegistered(method) {
		return colour.Color{}, fmt.Errorf("contrast: unknown method %q", method)
	}
	log := opts.Logger
	if log == nil {
		log = hclog.NewNullLogger()
	}

	fgp, err := fg.Convert(colour.SpaceOkLrCh)
	if err != nil {
		return colour.Color{}, err
	}
	bgp, err := bg.Convert(colour.SpaceOkLrCh)
	if err != nil {
		return colour.Color{}, err
	}

	l0 := fgp.Get(0)
	c0 := fgp.Get(1)
	hue := fgp.Get(2)
	alpha := fg.Alpha()
	bgL := bgp.Get(0)

	mag := math.Abs(target)
	if mag < zeroTargetEpsilon {
		// Degenerate target: collapse onto the background lightness.
		return assemble(fg.Space(), bgL, chromaFor(c0, bgL, l0, opts.PreserveChroma), hue, alpha)
	}

	// The natural search direction is darker; a negative target flips it
	// so callers can ask for the lighter variant explicitly.
	darker := target > 0

	start := l0
	if math.Abs(start-bgL) < lightnessEpsilon {
		// Give the search a defined starting side.
		if darker {
			start = math.Max(bgL-lightnessEpsilon, 0)
		} else {
			start = math.Min(bgL+lightnessEpsilon, 1)
		}
	}
	cfg := configFor(method)
	start = cfg.prime(start, bgL, darker)

	log.Debug("contrasty search",
		"method", method,
		"target", mag,
		"darker", darker,
		"start", start,
		"background_lightness", bgL,
	)

	st := runSearch(&colourProber{bg: bg, method: method, hue: hue, alpha: alpha}, searchParams{
		target:    mag,
		startL:    start,
		refL:      l0,
		bgL:       bgL,
		chroma:    c0,
		darker:    darker,
		preserve:  opts.PreserveChroma,
		tolerance: cfg.tolerance,
		log:       log,
	})

	log.Debug("contrasty result",
		"iterations", st.iterations,
		"lightness", st.bestL,
		"residual", st.bestErr,
	)

	return assemble(fg.Space(), st.bestL, chromaFor(c0, st.bestL, l0, opts.PreserveChroma), hue, alpha)
}

// colourProber implements prober on real colours: candidates are built in
// oklrch, fitted into the sRGB gamut when necessary, and measured with the
// registered metric.
type colourProber struct {
	bg     colour.Color
	method string
	hue    float64
	alpha  float64
}

func (p *colourProber) probe(l, chroma float64) (achieved, measured float64) {
	cand, err := colour.New(colour.SpaceOkLrCh, []float64{l, chroma, p.hue}, p.alpha)
	if err != nil {
		// Unreachable: the space is registered and the arity fixed.
		return l, 0
	}
	achieved = l
	if !cand.InGamut(colour.SpaceSRGB, colour.DefaultGamutTolerance) {
		cand = cand.Fit(colour.SpaceSRGB)
		achieved = cand.Get(0)
	}
	measured, _ = cand.Contrast(p.bg, p.method)
	return achieved, measured
}

// assemble is the result-assembly step: build the final colour in oklrch,
// force it into the sRGB gamut, and express it in the caller's original
// colour space with the original alpha.
func assemble(space string, l, chroma, hue, alpha float64) (colour.Color, error) {
	res, err := colour.New(colour.SpaceOkLrCh, []float64{l, chroma, hue}, alpha)
	if err != nil {
		return colour.Color{}, err
	}
	if !res.InGamut(colour.SpaceSRGB, colour.DefaultGamutTolerance) {
		res = res.Fit(colour.SpaceSRGB)
	}
	return res.Convert(space)
}
