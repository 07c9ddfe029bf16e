package colour

import (
	"fmt"
	"math"
)

// Scheme identifies a colour-wheel relationship between colours.
type Scheme string

const (
	// SchemeComplementary pairs colours opposite on the colour wheel (180°).
	SchemeComplementary Scheme = "complementary"

	// SchemeAnalogous pairs colours adjacent on the colour wheel (±30°).
	SchemeAnalogous Scheme = "analogous"

	// SchemeTriadic pairs colours evenly spaced on the colour wheel (120°).
	SchemeTriadic Scheme = "triadic"

	// SchemeMonochromatic pairs colours sharing a hue, varying only in
	// saturation and lightness.
	SchemeMonochromatic Scheme = "monochromatic"
)

// DefaultMatchTolerance is the hue tolerance in degrees used by Match when
// the caller has no preference.
const DefaultMatchTolerance = 30.0

// Schemes returns the closed set of valid colour schemes.
func Schemes() []Scheme {
	return []Scheme{
		SchemeComplementary,
		SchemeAnalogous,
		SchemeTriadic,
		SchemeMonochromatic,
	}
}

// ParseScheme validates a scheme name.
func ParseScheme(s string) (Scheme, error) {
	for _, valid := range Schemes() {
		if Scheme(s) == valid {
			return valid, nil
		}
	}
	return "", fmt.Errorf("%w: %q (valid schemes: %v)", ErrUnknownScheme, s, Schemes())
}

// HueDistance returns the angular distance between two hues on the colour
// wheel: 0-180 degrees, taking the shortest path around the wheel.
func HueDistance(h1, h2 float64) float64 {
	diff := math.Abs(h1 - h2)
	if diff > 180 {
		diff = 360 - diff
	}
	return diff
}

// Complementary returns the colour opposite on the colour wheel, keeping
// saturation and lightness.
func Complementary(rgb RGB) RGB {
	h, s, l := rgb.ToHSL()
	return FromHSL(math.Mod(h+180, 360), s, l)
}

// Analogous returns the two colours at ±30° on the colour wheel.
func Analogous(rgb RGB) []RGB {
	h, s, l := rgb.ToHSL()
	return []RGB{
		FromHSL(math.Mod(h-30+360, 360), s, l),
		FromHSL(math.Mod(h+30, 360), s, l),
	}
}

// Triadic returns the two colours at +120° and +240° on the colour wheel.
func Triadic(rgb RGB) []RGB {
	h, s, l := rgb.ToHSL()
	return []RGB{
		FromHSL(math.Mod(h+120, 360), s, l),
		FromHSL(math.Mod(h+240, 360), s, l),
	}
}

// HarmonyScore rates how well a set of colours sits together, 0-100.
//
// Fewer than two colours is trivially harmonious. Otherwise every unordered
// pair adjusts a base of 100 by its hue relationship: near-complementary and
// near-triadic pairs reward, near-analogous pairs reward slightly, and pairs
// in the clashing 60-90° band penalise. The adjustments are additive, so the
// clamp at the end is load-bearing for large colour sets.
func HarmonyScore(colours []RGB) float64 {
	if len(colours) < 2 {
		return 100.0
	}

	hues := make([]float64, len(colours))
	for i, c := range colours {
		hues[i], _, _ = c.ToHSL()
	}

	score := 100.0
	for i := 0; i < len(hues); i++ {
		for j := i + 1; j < len(hues); j++ {
			d := HueDistance(hues[i], hues[j])
			switch {
			case d >= 165 && d <= 195:
				score += 10 // near-complementary
			case d <= 45:
				score += 5 // near-analogous
			case d >= 105 && d <= 135:
				score += 8 // near-triadic
			case d >= 60 && d <= 90:
				score -= 15 // clashing
			}
		}
	}

	return math.Max(0, math.Min(100, score))
}

// Match reports whether two colours satisfy the given scheme within a hue
// tolerance in degrees. The monochromatic scheme uses a fixed 15° band and
// ignores tolerance. Unknown schemes always match; callers validate scheme
// names with ParseScheme before getting here.
func Match(a, b RGB, scheme Scheme, tolerance float64) bool {
	h1, _, _ := a.ToHSL()
	h2, _, _ := b.ToHSL()
	d := HueDistance(h1, h2)

	switch scheme {
	case SchemeComplementary:
		return math.Abs(d-180) <= tolerance
	case SchemeAnalogous:
		return d <= tolerance
	case SchemeTriadic:
		return math.Abs(d-120) <= tolerance || math.Abs(d-240) <= tolerance
	case SchemeMonochromatic:
		return d <= 15
	default:
		return true
	}
}
