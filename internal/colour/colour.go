// Package colour provides colour math, naming, harmony analysis, and
// dominant-colour extraction for garment images.
package colour

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// RGB represents a colour in 8-bit RGB.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// String returns the RGB colour as a string in the format "rgb(r, g, b)".
func (rgb RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", rgb.R, rgb.G, rgb.B)
}

// Hex returns the canonical lowercase hex encoding (e.g. "#1a2b3c").
func (rgb RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", rgb.R, rgb.G, rgb.B)
}

// ParseHex parses a 6-digit hex colour string, with or without a leading '#'.
// Anything else is rejected with ErrInvalidFormat.
func ParseHex(s string) (RGB, error) {
	h := strings.TrimPrefix(s, "#")
	if len(h) != 6 {
		return RGB{}, fmt.Errorf("%w: %q", ErrInvalidFormat, s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return RGB{}, fmt.Errorf("%w: %q", ErrInvalidFormat, s)
	}
	return RGB{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
}

// Colour is one dominant colour extracted from a garment image. Percentage is
// the share of surviving (non-background) pixels assigned to this colour.
type Colour struct {
	Hex        string  `json:"hex"`
	RGB        RGB     `json:"rgb"`
	Name       string  `json:"name"`
	Percentage float64 `json:"percentage"`
}

// Distance returns the perceptually weighted "redmean" Euclidean distance
// between two colours. The green channel carries the highest weight; the red
// and blue weights shift with the mean red value.
// https://en.wikipedia.org/wiki/Color_difference#sRGB
func Distance(a, b RGB) float64 {
	rmean := (float64(a.R) + float64(b.R)) / 2
	dr := float64(a.R) - float64(b.R)
	dg := float64(a.G) - float64(b.G)
	db := float64(a.B) - float64(b.B)
	return math.Sqrt((2+rmean/256)*dr*dr + 4*dg*dg + (2+(255-rmean)/256)*db*db)
}

// ToHSL converts the colour to HSL space.
// Returns hue (0-360 degrees), saturation (0-100%), lightness (0-100%).
func (rgb RGB) ToHSL() (h, s, l float64) {
	r := float64(rgb.R) / 255.0
	g := float64(rgb.G) / 255.0
	b := float64(rgb.B) / 255.0

	maxVal := math.Max(r, math.Max(g, b))
	minVal := math.Min(r, math.Min(g, b))
	delta := maxVal - minVal

	l = (maxVal + minVal) / 2.0

	if delta == 0 {
		// Achromatic: hue and saturation are zero.
		return 0, 0, l * 100
	}

	if l < 0.5 {
		s = delta / (maxVal + minVal)
	} else {
		s = delta / (2.0 - maxVal - minVal)
	}

	switch maxVal {
	case r:
		h = (g - b) / delta
		if g < b {
			h += 6
		}
	case g:
		h = (b-r)/delta + 2
	case b:
		h = (r-g)/delta + 4
	}

	return h * 60, s * 100, l * 100
}

// FromHSL converts HSL values back to RGB. h is hue (0-360 degrees), s is
// saturation (0-100%), l is lightness (0-100%). FromHSL is the inverse of
// ToHSL up to one unit per channel after rounding.
func FromHSL(h, s, l float64) RGB {
	s /= 100
	l /= 100

	if s == 0 {
		// Achromatic (grey).
		v := uint8(math.Round(l * 255))
		return RGB{R: v, G: v, B: v}
	}

	var q float64
	if l < 0.5 {
		q = l * (1 + s)
	} else {
		q = l + s - l*s
	}
	p := 2*l - q

	return RGB{
		R: uint8(math.Round(hueToChannel(p, q, h+120) * 255)),
		G: uint8(math.Round(hueToChannel(p, q, h) * 255)),
		B: uint8(math.Round(hueToChannel(p, q, h-120) * 255)),
	}
}

// hueToChannel is a helper for HSL to RGB conversion.
func hueToChannel(p, q, t float64) float64 {
	for t < 0 {
		t += 360
	}
	for t >= 360 {
		t -= 360
	}

	if t < 60 {
		return p + (q-p)*t/60
	}
	if t < 180 {
		return q
	}
	if t < 240 {
		return p + (q-p)*(240-t)/60
	}
	return p
}

// round2 rounds to two decimal places, the precision used for all scores and
// percentages surfaced to callers.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
