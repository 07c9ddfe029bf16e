package colour

import "testing"

func TestNameExactCSSMatch(t *testing.T) {
	tests := []struct {
		name string
		rgb  RGB
		want string
	}{
		{name: "red", rgb: RGB{R: 255, G: 0, B: 0}, want: "red"},
		{name: "black", rgb: RGB{R: 0, G: 0, B: 0}, want: "black"},
		{name: "navy", rgb: RGB{R: 0, G: 0, B: 128}, want: "navy"},
		{name: "whitesmoke", rgb: RGB{R: 245, G: 245, B: 245}, want: "whitesmoke"},
		// Exact CSS names take precedence over the curated palette, which
		// holds the same value under "peach".
		{name: "peachpuff", rgb: RGB{R: 255, G: 218, B: 185}, want: "peachpuff"},
	}

	namer := NewNamer()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := namer.Name(tt.rgb); got != tt.want {
				t.Errorf("Name(%v) = %q, want %q", tt.rgb, got, tt.want)
			}
		})
	}
}

func TestNameNearestFallback(t *testing.T) {
	tests := []struct {
		name string
		rgb  RGB
		want string
	}{
		{name: "near red", rgb: RGB{R: 250, G: 5, B: 5}, want: "red"},
		{name: "near black", rgb: RGB{R: 17, G: 17, B: 17}, want: "black"},
		{name: "near dim gray", rgb: RGB{R: 100, G: 100, B: 100}, want: "dim gray"},
		{name: "near navy", rgb: RGB{R: 5, G: 5, B: 120}, want: "navy"},
	}

	namer := NewNamer()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := namer.Name(tt.rgb); got != tt.want {
				t.Errorf("Name(%v) = %q, want %q", tt.rgb, got, tt.want)
			}
		})
	}
}

func TestNameCaching(t *testing.T) {
	namer := NewNamer()
	rgb := RGB{R: 250, G: 5, B: 5}

	first := namer.Name(rgb)
	if len(namer.cache) != 1 {
		t.Fatalf("expected 1 cache entry after first lookup, got %d", len(namer.cache))
	}

	second := namer.Name(rgb)
	if first != second {
		t.Errorf("repeated lookups disagree: %q vs %q", first, second)
	}
	if len(namer.cache) != 1 {
		t.Errorf("expected 1 cache entry after repeated lookup, got %d", len(namer.cache))
	}
}

func TestNameNeverEmpty(t *testing.T) {
	namer := NewNamer()
	for _, rgb := range []RGB{
		{R: 1, G: 2, B: 3},
		{R: 254, G: 254, B: 254},
		{R: 77, G: 131, B: 201},
	} {
		if namer.Name(rgb) == "" {
			t.Errorf("Name(%v) returned empty string", rgb)
		}
	}
}
