package colour

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"slices"

	"github.com/EdlinOrg/prominentcolor"
	"github.com/hashicorp/go-hclog"
)

const (
	// sampleGrid is the fixed sampling resolution for the first filtering
	// pass, bounding the cost of background filtering on large photos.
	sampleGrid = 150

	// minValidPixels is the survivor threshold below which the fallback
	// ladder advances to a less selective pass.
	minValidPixels = 100
)

// Quantizer reduces an image to a palette of representative colours. It
// operates on image geometry rather than raw pixel lists, which is why the
// extractor re-squares surviving pixels into a synthetic image before
// clustering.
type Quantizer interface {
	Quantize(img image.Image, count int) ([]RGB, error)
}

// KMeansQuantizer clusters image pixels with k-means via prominentcolor.
type KMeansQuantizer struct{}

// Quantize returns count cluster centroids for the image.
func (KMeansQuantizer) Quantize(img image.Image, count int) ([]RGB, error) {
	side := img.Bounds().Dx()
	if h := img.Bounds().Dy(); h > side {
		side = h
	}
	// Synthetic squares are already small; only genuinely large images get
	// downscaled before clustering.
	size := uint(side)
	if side > sampleGrid {
		size = prominentcolor.DefaultSize
	}

	items, err := prominentcolor.KmeansWithAll(count, img, prominentcolor.ArgumentNoCropping, size, nil)
	if err != nil {
		return nil, fmt.Errorf("k-means clustering failed: %w", err)
	}

	out := make([]RGB, len(items))
	for i, item := range items {
		out[i] = RGB{R: uint8(item.Color.R), G: uint8(item.Color.G), B: uint8(item.Color.B)}
	}
	return out, nil
}

// Extractor extracts dominant colours from garment images.
type Extractor struct {
	quantizer Quantizer
	namer     *Namer
	log       hclog.Logger
}

// NewExtractor creates an Extractor backed by k-means clustering. A nil
// logger disables logging.
func NewExtractor(namer *Namer, logger hclog.Logger) *Extractor {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Extractor{quantizer: KMeansQuantizer{}, namer: namer, log: logger}
}

// Extract returns up to numColours dominant colours, ordered by descending
// share of the garment's non-background pixels.
//
// Background pixels (transparent, near-white, near-black, light grey) are
// filtered out on a 150×150 sampling grid first. When too few pixels survive,
// the filter reruns without the grid cap, and as a last resort the whole
// unfiltered image is clustered, so even a solid-background photo produces
// output.
func (e *Extractor) Extract(img image.Image, numColours int) ([]Colour, error) {
	if img == nil {
		return nil, fmt.Errorf("image cannot be nil")
	}
	if numColours < 1 {
		return nil, fmt.Errorf("colour count must be at least 1, got %d", numColours)
	}

	valid := collectValidPixels(img, sampleGrid)
	if len(valid) < minValidPixels {
		e.log.Debug("few pixels survived sampled filtering, refiltering full image", "survived", len(valid))
		valid = collectValidPixels(img, 0)
	}

	var palette []RGB
	var err error
	if len(valid) < minValidPixels {
		// Degenerate image: cluster everything, background included.
		e.log.Debug("clustering unfiltered image", "survived", len(valid))
		palette, err = e.quantizer.Quantize(img, numColours)
	} else {
		palette, err = e.quantizer.Quantize(resquare(valid), numColours)
	}
	if err != nil {
		return nil, &ExtractionError{Err: err}
	}

	// Drop palette entries that are themselves background colours, unless
	// that would leave nothing.
	filtered := make([]RGB, 0, len(palette))
	for _, c := range palette {
		if !isBackground(c) {
			filtered = append(filtered, c)
		}
	}
	if len(filtered) == 0 {
		filtered = palette
	}

	counts := make([]int, len(filtered))
	for _, px := range valid {
		best := 0
		bestDist := math.MaxFloat64
		for i, c := range filtered {
			if d := Distance(px, c); d < bestDist {
				bestDist = d
				best = i
			}
		}
		counts[best]++
	}

	// With zero surviving pixels the percentages degrade to raw counts;
	// callers should treat that as "no usable colour data".
	total := len(valid)
	if total == 0 {
		total = 1
	}

	colours := make([]Colour, len(filtered))
	for i, c := range filtered {
		colours[i] = Colour{
			Hex:        c.Hex(),
			RGB:        c,
			Name:       e.namer.Name(c),
			Percentage: round2(100 * float64(counts[i]) / float64(total)),
		}
	}

	slices.SortStableFunc(colours, func(a, b Colour) int {
		switch {
		case a.Percentage > b.Percentage:
			return -1
		case a.Percentage < b.Percentage:
			return 1
		}
		return 0
	})
	if len(colours) > numColours {
		colours = colours[:numColours]
	}
	return colours, nil
}

// collectValidPixels walks the image (downsampled to grid×grid when grid > 0)
// and keeps pixels that are opaque and not background-coloured.
func collectValidPixels(img image.Image, grid int) []RGB {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w == 0 || h == 0 {
		return nil
	}

	var out []RGB
	keep := func(x, y int) {
		r, g, b, a := img.At(x, y).RGBA()
		if a>>8 < 128 {
			return
		}
		rgb := RGB{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8)}
		if isBackground(rgb) {
			return
		}
		out = append(out, rgb)
	}

	if grid <= 0 {
		for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
			for x := bounds.Min.X; x < bounds.Max.X; x++ {
				keep(x, y)
			}
		}
		return out
	}

	for gy := 0; gy < grid; gy++ {
		for gx := 0; gx < grid; gx++ {
			keep(bounds.Min.X+gx*w/grid, bounds.Min.Y+gy*h/grid)
		}
	}
	return out
}

// resquare packs surviving pixels into a synthetic square image so the
// quantizer sees every pixel with equal weight. Short lists are cycle-padded
// and long ones truncated to fill the square exactly.
func resquare(pixels []RGB) image.Image {
	side := int(math.Sqrt(float64(len(pixels))))
	if side < 10 {
		side = 10
	}

	img := image.NewRGBA(image.Rect(0, 0, side, side))
	n := len(pixels)
	for i := 0; i < side*side; i++ {
		px := pixels[i%n]
		img.Set(i%side, i/side, color.RGBA{R: px.R, G: px.G, B: px.B, A: 255})
	}
	return img
}
