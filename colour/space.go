package colour

import (
	"fmt"
	"math"
	"strings"
)

// Space describes a colour space that can be converted to and from the
// linear-sRGB hub. Implementations must be stateless; conversion between any
// two registered spaces is composed from these two directions.
type Space interface {
	// Name is the registration key, lower case by convention.
	Name() string
	// Channels lists the component names in coordinate order.
	Channels() []string
	// FromLinearRGB converts hub coordinates into this space.
	FromLinearRGB(r, g, b float64) []float64
	// ToLinearRGB converts this space's coordinates into the hub.
	ToLinearRGB(coords []float64) (r, g, b float64)
}

// boundedSpace is implemented by spaces whose channels have fixed ranges,
// making gamut membership meaningful.
type boundedSpace interface {
	Bounds() [][2]float64
}

var spaces = map[string]Space{}

// RegisterSpace adds a colour space to the registry under its name,
// replacing any previous registration. Registration is expected to happen
// from init functions, before colours are in use.
func RegisterSpace(s Space) {
	spaces[strings.ToLower(s.Name())] = s
}

func lookupSpace(name string) (Space, error) {
	s, ok := spaces[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("colour: unknown colour space %q", name)
	}
	return s, nil
}

// srgbTransfer applies the sRGB transfer function to a linear-light value.
// The function is mirrored around zero so out-of-gamut (negative) values stay
// finite and monotone instead of collapsing to NaN.
func srgbTransfer(v float64) float64 {
	sign := 1.0
	if v < 0 {
		sign = -1
		v = -v
	}
	if v <= 0.0031308 {
		return sign * v * 12.92
	}
	return sign * (1.055*math.Pow(v, 1/2.4) - 0.055)
}

// srgbTransferInv linearises a gamma-encoded sRGB value, mirrored around
// zero like srgbTransfer.
func srgbTransferInv(v float64) float64 {
	sign := 1.0
	if v < 0 {
		sign = -1
		v = -v
	}
	if v <= 0.04045 {
		return sign * v / 12.92
	}
	return sign * math.Pow((v+0.055)/1.055, 2.4)
}

type srgbSpace struct{}

func (srgbSpace) Name() string       { return SpaceSRGB }
func (srgbSpace) Channels() []string { return []string{"r", "g", "b"} }
func (srgbSpace) Bounds() [][2]float64 {
	return [][2]float64{{0, 1}, {0, 1}, {0, 1}}
}

func (srgbSpace) FromLinearRGB(r, g, b float64) []float64 {
	return []float64{srgbTransfer(r), srgbTransfer(g), srgbTransfer(b)}
}

func (srgbSpace) ToLinearRGB(coords []float64) (float64, float64, float64) {
	return srgbTransferInv(coords[0]), srgbTransferInv(coords[1]), srgbTransferInv(coords[2])
}

type srgbLinearSpace struct{}

func (srgbLinearSpace) Name() string       { return SpaceSRGBLinear }
func (srgbLinearSpace) Channels() []string { return []string{"r", "g", "b"} }
func (srgbLinearSpace) Bounds() [][2]float64 {
	return [][2]float64{{0, 1}, {0, 1}, {0, 1}}
}

func (srgbLinearSpace) FromLinearRGB(r, g, b float64) []float64 {
	return []float64{r, g, b}
}

func (srgbLinearSpace) ToLinearRGB(coords []float64) (float64, float64, float64) {
	return coords[0], coords[1], coords[2]
}

func init() {
	RegisterSpace(srgbSpace{})
	RegisterSpace(srgbLinearSpace{})
}
