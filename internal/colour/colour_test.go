package colour

import (
	"errors"
	"math"
	"testing"
)

func TestRGBHex(t *testing.T) {
	tests := []struct {
		name string
		rgb  RGB
		want string
	}{
		{name: "red", rgb: RGB{R: 255, G: 0, B: 0}, want: "#ff0000"},
		{name: "black", rgb: RGB{R: 0, G: 0, B: 0}, want: "#000000"},
		{name: "white", rgb: RGB{R: 255, G: 255, B: 255}, want: "#ffffff"},
		{name: "zero padded channels", rgb: RGB{R: 1, G: 2, B: 3}, want: "#010203"},
		{name: "mixed", rgb: RGB{R: 26, G: 43, B: 60}, want: "#1a2b3c"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.rgb.Hex(); got != tt.want {
				t.Errorf("Hex() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseHex(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    RGB
		wantErr bool
	}{
		{name: "with hash", input: "#ff0000", want: RGB{R: 255, G: 0, B: 0}},
		{name: "without hash", input: "336699", want: RGB{R: 51, G: 102, B: 153}},
		{name: "uppercase digits", input: "#AABBCC", want: RGB{R: 170, G: 187, B: 204}},
		{name: "too short", input: "#fff", wantErr: true},
		{name: "too long", input: "#ff00001", wantErr: true},
		{name: "invalid digits", input: "gg0000", wantErr: true},
		{name: "empty", input: "", wantErr: true},
		{name: "hash only", input: "#", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseHex(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseHex(%q) expected error, got %v", tt.input, got)
				}
				if !errors.Is(err, ErrInvalidFormat) {
					t.Errorf("ParseHex(%q) error = %v, want ErrInvalidFormat", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseHex(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseHex(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestDistanceIdentity(t *testing.T) {
	colours := []RGB{
		{R: 0, G: 0, B: 0},
		{R: 255, G: 255, B: 255},
		{R: 255, G: 0, B: 0},
		{R: 12, G: 200, B: 99},
	}
	for _, c := range colours {
		if got := Distance(c, c); got != 0 {
			t.Errorf("Distance(%v, %v) = %f, want 0", c, c, got)
		}
	}
}

func TestDistanceSymmetry(t *testing.T) {
	pairs := [][2]RGB{
		{{R: 255, G: 0, B: 0}, {R: 0, G: 0, B: 255}},
		{{R: 0, G: 0, B: 0}, {R: 255, G: 255, B: 255}},
		{{R: 17, G: 34, B: 51}, {R: 200, G: 100, B: 50}},
	}
	for _, p := range pairs {
		d1 := Distance(p[0], p[1])
		d2 := Distance(p[1], p[0])
		if d1 != d2 {
			t.Errorf("Distance(%v, %v) = %f but reversed = %f", p[0], p[1], d1, d2)
		}
		if d1 <= 0 {
			t.Errorf("Distance(%v, %v) = %f, want > 0 for distinct colours", p[0], p[1], d1)
		}
	}
}

func TestDistancePerceptualOrdering(t *testing.T) {
	red := RGB{R: 255, G: 0, B: 0}
	nearRed := RGB{R: 250, G: 5, B: 5}
	green := RGB{R: 0, G: 255, B: 0}

	if Distance(red, nearRed) >= Distance(red, green) {
		t.Errorf("expected near-red to be closer to red than green is")
	}
}

func TestToHSLKnownValues(t *testing.T) {
	tests := []struct {
		name    string
		rgb     RGB
		h, s, l float64
	}{
		{name: "red", rgb: RGB{R: 255, G: 0, B: 0}, h: 0, s: 100, l: 50},
		{name: "lime", rgb: RGB{R: 0, G: 255, B: 0}, h: 120, s: 100, l: 50},
		{name: "blue", rgb: RGB{R: 0, G: 0, B: 255}, h: 240, s: 100, l: 50},
		{name: "white", rgb: RGB{R: 255, G: 255, B: 255}, h: 0, s: 0, l: 100},
		{name: "black", rgb: RGB{R: 0, G: 0, B: 0}, h: 0, s: 0, l: 0},
		{name: "cyan", rgb: RGB{R: 0, G: 255, B: 255}, h: 180, s: 100, l: 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, s, l := tt.rgb.ToHSL()
			if math.Abs(h-tt.h) > 0.5 || math.Abs(s-tt.s) > 0.5 || math.Abs(l-tt.l) > 0.5 {
				t.Errorf("ToHSL(%v) = (%.2f, %.2f, %.2f), want (%.1f, %.1f, %.1f)",
					tt.rgb, h, s, l, tt.h, tt.s, tt.l)
			}
		})
	}
}

func TestHSLRoundTrip(t *testing.T) {
	// Every channel value congruent to 0 mod 17 plus a few awkward ones.
	values := []uint8{0, 17, 34, 51, 68, 85, 102, 119, 136, 153, 170, 187, 204, 221, 238, 255, 1, 127, 128, 254}

	for _, r := range values {
		for _, g := range values {
			for _, b := range values {
				in := RGB{R: r, G: g, B: b}
				h, s, l := in.ToHSL()
				out := FromHSL(h, s, l)

				if channelDiff(in.R, out.R) > 1 || channelDiff(in.G, out.G) > 1 || channelDiff(in.B, out.B) > 1 {
					t.Fatalf("round trip %v -> (%.3f, %.3f, %.3f) -> %v drifted more than 1 per channel", in, h, s, l, out)
				}
			}
		}
	}
}

func channelDiff(a, b uint8) int {
	d := int(a) - int(b)
	if d < 0 {
		d = -d
	}
	return d
}

func TestHueRange(t *testing.T) {
	values := []uint8{0, 63, 127, 191, 255}
	for _, r := range values {
		for _, g := range values {
			for _, b := range values {
				h, s, l := (RGB{R: r, G: g, B: b}).ToHSL()
				if h < 0 || h >= 360 {
					t.Errorf("hue %f out of [0,360) for rgb(%d,%d,%d)", h, r, g, b)
				}
				if s < 0 || s > 100 || l < 0 || l > 100 {
					t.Errorf("saturation/lightness (%f, %f) out of range for rgb(%d,%d,%d)", s, l, r, g, b)
				}
			}
		}
	}
}
