package colour

import "github.com/lucasb-eyer/go-colorful"

// labD65Space is CIE Lab with a D65 white point, scaled to the conventional
// ranges: L in [0, 100], a/b roughly [-100, 100]. The XYZ legwork is
// delegated to go-colorful, whose Lab reference white is D65.
type labD65Space struct{}

func (labD65Space) Name() string       { return SpaceLabD65 }
func (labD65Space) Channels() []string { return []string{"l", "a", "b"} }

func (labD65Space) FromLinearRGB(r, g, b float64) []float64 {
	x, y, z := colorful.LinearRgbToXyz(r, g, b)
	l, a, bb := colorful.XyzToLab(x, y, z)
	return []float64{l * 100, a * 100, bb * 100}
}

func (labD65Space) ToLinearRGB(coords []float64) (float64, float64, float64) {
	x, y, z := colorful.LabToXyz(coords[0]/100, coords[1]/100, coords[2]/100)
	return colorful.XyzToLinearRgb(x, y, z)
}

func init() {
	RegisterSpace(labD65Space{})
}
