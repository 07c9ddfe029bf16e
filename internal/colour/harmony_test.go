package colour

import (
	"errors"
	"math"
	"testing"
)

func TestHueDistance(t *testing.T) {
	tests := []struct {
		name   string
		h1, h2 float64
		want   float64
	}{
		{name: "identical", h1: 90, h2: 90, want: 0},
		{name: "opposite", h1: 0, h2: 180, want: 180},
		{name: "wraps around zero", h1: 350, h2: 10, want: 20},
		{name: "wraps around zero reversed", h1: 10, h2: 350, want: 20},
		{name: "quarter wheel", h1: 45, h2: 135, want: 90},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HueDistance(tt.h1, tt.h2); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("HueDistance(%v, %v) = %v, want %v", tt.h1, tt.h2, got, tt.want)
			}
		})
	}
}

func TestComplementaryHueShift(t *testing.T) {
	colours := []RGB{
		{R: 255, G: 0, B: 0},
		{R: 51, G: 102, B: 153},
		{R: 200, G: 150, B: 30},
	}
	for _, c := range colours {
		h, _, _ := c.ToHSL()
		ch, _, _ := Complementary(c).ToHSL()
		if d := HueDistance(h, ch); math.Abs(d-180) > 2 {
			t.Errorf("Complementary(%v): hue distance %.2f, want ~180", c, d)
		}
	}
}

func TestAnalogousHueShift(t *testing.T) {
	c := RGB{R: 51, G: 102, B: 153}
	h, _, _ := c.ToHSL()

	neighbours := Analogous(c)
	if len(neighbours) != 2 {
		t.Fatalf("Analogous returned %d colours, want 2", len(neighbours))
	}
	for _, n := range neighbours {
		nh, _, _ := n.ToHSL()
		if d := HueDistance(h, nh); math.Abs(d-30) > 2 {
			t.Errorf("Analogous(%v): hue distance %.2f, want ~30", c, d)
		}
	}
}

func TestTriadicHueShift(t *testing.T) {
	c := RGB{R: 200, G: 40, B: 90}
	h, _, _ := c.ToHSL()

	thirds := Triadic(c)
	if len(thirds) != 2 {
		t.Fatalf("Triadic returned %d colours, want 2", len(thirds))
	}
	for _, n := range thirds {
		nh, _, _ := n.ToHSL()
		if d := HueDistance(h, nh); math.Abs(d-120) > 2 {
			t.Errorf("Triadic(%v): hue distance %.2f, want ~120", c, d)
		}
	}
}

func TestHarmonyScore(t *testing.T) {
	tests := []struct {
		name    string
		colours []RGB
		want    float64
	}{
		{name: "empty set", colours: nil, want: 100},
		{name: "single colour", colours: []RGB{{R: 10, G: 20, B: 30}}, want: 100},
		{
			name:    "complementary pair clamps at 100",
			colours: []RGB{{R: 255, G: 0, B: 0}, {R: 0, G: 255, B: 255}},
			want:    100,
		},
		{
			// Hues 0 and ~75 sit in the clashing 60-90 band.
			name:    "clashing pair",
			colours: []RGB{{R: 255, G: 0, B: 0}, {R: 191, G: 255, B: 0}},
			want:    85,
		},
		{
			// Hues 0, ~75, ~150: two clashing pairs, one neutral pair.
			name:    "two clashes",
			colours: []RGB{{R: 255, G: 0, B: 0}, {R: 191, G: 255, B: 0}, {R: 0, G: 255, B: 128}},
			want:    70,
		},
		{
			name:    "triadic pair clamps at 100",
			colours: []RGB{{R: 255, G: 0, B: 0}, {R: 0, G: 255, B: 0}},
			want:    100,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HarmonyScore(tt.colours); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("HarmonyScore() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMatch(t *testing.T) {
	red := RGB{R: 255, G: 0, B: 0}
	cyan := RGB{R: 0, G: 255, B: 255}
	lime := RGB{R: 0, G: 255, B: 0}
	nearRed := RGB{R: 255, G: 43, B: 0} // hue ~10

	tests := []struct {
		name      string
		a, b      RGB
		scheme    Scheme
		tolerance float64
		want      bool
	}{
		{name: "complementary exact", a: red, b: cyan, scheme: SchemeComplementary, tolerance: 30, want: true},
		{name: "complementary far off", a: red, b: nearRed, scheme: SchemeComplementary, tolerance: 30, want: false},
		{name: "analogous close", a: red, b: nearRed, scheme: SchemeAnalogous, tolerance: 30, want: true},
		{name: "analogous tight tolerance", a: red, b: nearRed, scheme: SchemeAnalogous, tolerance: 5, want: false},
		{name: "triadic exact", a: red, b: lime, scheme: SchemeTriadic, tolerance: 30, want: true},
		{name: "triadic opposite", a: red, b: cyan, scheme: SchemeTriadic, tolerance: 30, want: false},
		{name: "monochromatic ignores tolerance", a: red, b: nearRed, scheme: SchemeMonochromatic, tolerance: 0, want: true},
		{name: "monochromatic outside band", a: red, b: lime, scheme: SchemeMonochromatic, tolerance: 360, want: false},
		{name: "unknown scheme is permissive", a: red, b: lime, scheme: Scheme("nonsense"), tolerance: 30, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Match(tt.a, tt.b, tt.scheme, tt.tolerance); got != tt.want {
				t.Errorf("Match(%v, %v, %q, %v) = %v, want %v", tt.a, tt.b, tt.scheme, tt.tolerance, got, tt.want)
			}
		})
	}
}

func TestParseScheme(t *testing.T) {
	for _, scheme := range Schemes() {
		got, err := ParseScheme(string(scheme))
		if err != nil {
			t.Errorf("ParseScheme(%q) unexpected error: %v", scheme, err)
		}
		if got != scheme {
			t.Errorf("ParseScheme(%q) = %q", scheme, got)
		}
	}

	if _, err := ParseScheme("split"); !errors.Is(err, ErrUnknownScheme) {
		t.Errorf("ParseScheme(\"split\") error = %v, want ErrUnknownScheme", err)
	}
}
