package contrast

import (
	"math"
	"testing"

	"github.com/jmylchreest/contrasty/colour"
)

func mustParse(t *testing.T, s string) colour.Color {
	t.Helper()
	c, err := colour.Parse(s)
	if err != nil {
		t.Fatalf("Parse(%q): %v", s, err)
	}
	return c
}

func TestWCAG21(t *testing.T) {
	tests := []struct {
		name string
		fg   string
		bg   string
		want float64
		tol  float64
	}{
		{name: "black on white", fg: "#000000", bg: "#ffffff", want: 21, tol: 1e-9},
		{name: "white on black", fg: "#ffffff", bg: "#000000", want: 21, tol: 1e-9},
		{name: "identical colours", fg: "#336699", bg: "#336699", want: 1, tol: 1e-9},
		// #767676 is the canonical "just passes AA" grey against white.
		{name: "aa threshold grey", fg: "#767676", bg: "#ffffff", want: 4.54, tol: 0.01},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WCAG21(mustParse(t, tt.fg), mustParse(t, tt.bg))
			if math.Abs(got-tt.want) > tt.tol {
				t.Errorf("WCAG21(%s, %s) = %v, want %v", tt.fg, tt.bg, got, tt.want)
			}
		})
	}
}

func TestWCAG21Symmetry(t *testing.T) {
	a := mustParse(t, "#336699")
	b := mustParse(t, "#fafafa")
	if WCAG21(a, b) != WCAG21(b, a) {
		t.Errorf("WCAG21 should be orientation-independent: %v vs %v", WCAG21(a, b), WCAG21(b, a))
	}
}

func TestAPCA(t *testing.T) {
	tests := []struct {
		name string
		fg   string
		bg   string
		want float64
		tol  float64
	}{
		// Published reference values for the extremes.
		{name: "black text on white", fg: "#000000", bg: "#ffffff", want: 106.04, tol: 0.1},
		{name: "white text on black", fg: "#ffffff", bg: "#000000", want: -107.88, tol: 0.1},
		{name: "identical colours gate to zero", fg: "#808080", bg: "#808080", want: 0, tol: 0},
		{name: "near-identical clip to zero", fg: "#808080", bg: "#838383", want: 0, tol: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := APCA(mustParse(t, tt.fg), mustParse(t, tt.bg))
			if math.Abs(got-tt.want) > tt.tol {
				t.Errorf("APCA(%s, %s) = %v, want %v ± %v", tt.fg, tt.bg, got, tt.want, tt.tol)
			}
		})
	}
}

func TestAPCAPolarity(t *testing.T) {
	darkOnLight := APCA(mustParse(t, "#222222"), mustParse(t, "#eeeeee"))
	lightOnDark := APCA(mustParse(t, "#eeeeee"), mustParse(t, "#222222"))
	if darkOnLight <= 0 {
		t.Errorf("dark text on light background should be positive, got %v", darkOnLight)
	}
	if lightOnDark >= 0 {
		t.Errorf("light text on dark background should be negative, got %v", lightOnDark)
	}
}

func TestLstar(t *testing.T) {
	black := mustParse(t, "#000000")
	white := mustParse(t, "#ffffff")

	got := Lstar(black, white)
	if math.Abs(got-100) > 0.1 {
		t.Errorf("Lstar(black, white) = %v, want ~100", got)
	}
	got = Lstar(white, black)
	if math.Abs(got+100) > 0.1 {
		t.Errorf("Lstar(white, black) = %v, want ~-100", got)
	}
	if got := Lstar(white, white); math.Abs(got) > 1e-9 {
		t.Errorf("Lstar(white, white) = %v, want 0", got)
	}
}

func TestDeltaPhiStar(t *testing.T) {
	black := mustParse(t, "#000000")
	white := mustParse(t, "#ffffff")

	// 100^phi rooted back to 100, scaled by sqrt 2, minus 40.
	got := DeltaPhiStar(black, white)
	want := 100*math.Sqrt2 - 40
	if math.Abs(got-want) > 0.1 {
		t.Errorf("DeltaPhiStar(black, white) = %v, want ~%v", got, want)
	}
}

func TestDeltaPhiStarThresholdFloor(t *testing.T) {
	// Pairs whose raw value sits below 7.5 must collapse to exactly 0.
	tests := []struct {
		name string
		fg   string
		bg   string
	}{
		{name: "identical greys", fg: "#808080", bg: "#808080"},
		{name: "close greys", fg: "#808080", bg: "#8a8a8a"},
		{name: "close colours", fg: "#aa6655", bg: "#a06050"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DeltaPhiStar(mustParse(t, tt.fg), mustParse(t, tt.bg))
			if got != 0.0 {
				t.Errorf("DeltaPhiStar(%s, %s) = %v, want exactly 0", tt.fg, tt.bg, got)
			}
		})
	}
}

func TestMethodsRegistered(t *testing.T) {
	fg := mustParse(t, "#333333")
	bg := mustParse(t, "#fafafa")
	for _, method := range Methods() {
		if !colour.ContrastRegistered(method) {
			t.Errorf("method %q not registered with the colour package", method)
			continue
		}
		direct, err := fg.Contrast(bg, method)
		if err != nil {
			t.Errorf("Contrast(%q): %v", method, err)
		}
		if math.IsNaN(direct) {
			t.Errorf("Contrast(%q) = NaN", method)
		}
	}
}

func TestSpow(t *testing.T) {
	if got := spow(-8, 2); got != -64 {
		t.Errorf("spow(-8, 2) = %v, want -64", got)
	}
	if got := spow(8, 2); got != 64 {
		t.Errorf("spow(8, 2) = %v, want 64", got)
	}
	if got := nthRoot(-27, 3); math.Abs(got+3) > 1e-12 {
		t.Errorf("nthRoot(-27, 3) = %v, want -3", got)
	}
}
