// Package outfit enumerates and ranks wearable garment combinations by
// colour harmony and style compatibility.
package outfit

import (
	"fmt"
	"iter"
	"math"
	"slices"

	"github.com/hashicorp/go-hclog"

	"github.com/weftapp/weft/internal/colour"
	"github.com/weftapp/weft/internal/wardrobe"
)

// patterns are the fixed category combinations that constitute a wearable
// outfit. Category order within a pattern drives item order, which the style
// score depends on.
var patterns = [][]wardrobe.Category{
	{wardrobe.CategoryTop, wardrobe.CategoryBottom},
	{wardrobe.CategoryTop, wardrobe.CategoryBottom, wardrobe.CategoryShoes},
	{wardrobe.CategoryTop, wardrobe.CategoryBottom, wardrobe.CategoryOuterwear},
	{wardrobe.CategoryTop, wardrobe.CategoryBottom, wardrobe.CategoryOuterwear, wardrobe.CategoryShoes},
	{wardrobe.CategoryDress},
	{wardrobe.CategoryDress, wardrobe.CategoryShoes},
	{wardrobe.CategoryDress, wardrobe.CategoryOuterwear},
	{wardrobe.CategoryDress, wardrobe.CategoryOuterwear, wardrobe.CategoryShoes},
}

const (
	harmonyWeight = 0.6
	styleWeight   = 0.4

	// DefaultMaxSuggestions is used when a request leaves MaxSuggestions
	// unset.
	DefaultMaxSuggestions = 5

	// MaxSuggestionsLimit bounds how many candidates a request may ask for.
	MaxSuggestionsLimit = 20

	// DefaultMaxPerCategory caps each category's option list before the
	// cartesian product. Generation cost is the product of per-category list
	// sizes per pattern, so an uncapped closet makes it arbitrarily large.
	DefaultMaxPerCategory = 24
)

// Candidate is one scored outfit combination. Candidates are ephemeral:
// produced, ranked, and returned within a single Generate call.
type Candidate struct {
	Items              []wardrobe.Garment  `json:"items"`
	ColourHarmonyScore float64             `json:"color_harmony_score"`
	StyleScore         float64             `json:"style_compatibility_score"`
	TotalScore         float64             `json:"total_score"`
	Pattern            []wardrobe.Category `json:"pattern"`
}

// Request selects and bounds what Generate produces. The zero value asks for
// DefaultMaxSuggestions unconstrained suggestions.
type Request struct {
	// BaseItemID builds every outfit around one specific garment.
	BaseItemID string

	// Style keeps only garments of one style; empty means no filter. A
	// filter matching nothing falls back to the whole closet.
	Style wardrobe.Style

	// Scheme narrows combinations by colour-wheel relationship; empty means
	// no narrowing.
	Scheme colour.Scheme

	// MaxSuggestions caps the ranked result, 1-20. Zero means
	// DefaultMaxSuggestions.
	MaxSuggestions int
}

// Generator produces ranked outfit suggestions from a closet of garments.
type Generator struct {
	// MaxPerCategory caps each category's option list before the cartesian
	// product; 0 disables the cap.
	MaxPerCategory int

	log hclog.Logger
}

// NewGenerator creates a Generator with the default per-category cap. A nil
// logger disables logging.
func NewGenerator(logger hclog.Logger) *Generator {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Generator{MaxPerCategory: DefaultMaxPerCategory, log: logger}
}

// Generate enumerates outfit combinations over the closet, scores each by
// colour harmony (weight 0.6) and style compatibility (weight 0.4), and
// returns the top candidates by total score. Ties keep generation order.
func (g *Generator) Generate(garments []wardrobe.Garment, req Request) ([]Candidate, error) {
	maxSuggestions := req.MaxSuggestions
	if maxSuggestions == 0 {
		maxSuggestions = DefaultMaxSuggestions
	}
	if maxSuggestions < 1 || maxSuggestions > MaxSuggestionsLimit {
		return nil, fmt.Errorf("max suggestions must be between 1 and %d, got %d", MaxSuggestionsLimit, req.MaxSuggestions)
	}

	if len(garments) == 0 {
		return nil, nil
	}

	if req.Style != "" {
		filtered := make([]wardrobe.Garment, 0, len(garments))
		for _, item := range garments {
			if item.Style == req.Style {
				filtered = append(filtered, item)
			}
		}
		// A style filter matching nothing is ignored rather than producing
		// an empty result.
		if len(filtered) > 0 {
			garments = filtered
		}
	}

	byCategory := make(map[wardrobe.Category][]wardrobe.Garment)
	for _, item := range garments {
		byCategory[item.Category] = append(byCategory[item.Category], item)
	}
	if g.MaxPerCategory > 0 {
		for cat, list := range byCategory {
			if len(list) > g.MaxPerCategory {
				g.log.Debug("capping category options", "category", cat, "have", len(list), "cap", g.MaxPerCategory)
				byCategory[cat] = list[:g.MaxPerCategory]
			}
		}
	}

	var candidates []Candidate
	if req.BaseItemID != "" {
		for i := range garments {
			if garments[i].ID == req.BaseItemID {
				candidates = g.fromBase(garments[i], byCategory, req.Scheme)
				break
			}
		}
	} else {
		candidates = g.allCombinations(byCategory, req.Scheme)
	}
	g.log.Debug("generated outfit candidates", "count", len(candidates))

	slices.SortStableFunc(candidates, func(a, b Candidate) int {
		switch {
		case a.TotalScore > b.TotalScore:
			return -1
		case a.TotalScore < b.TotalScore:
			return 1
		}
		return 0
	})
	if len(candidates) > maxSuggestions {
		candidates = candidates[:maxSuggestions]
	}
	return candidates, nil
}

// fromBase builds outfits around one garment: every pattern containing the
// base's category contributes the cartesian product over the other
// categories, with the base prepended.
func (g *Generator) fromBase(base wardrobe.Garment, byCategory map[wardrobe.Category][]wardrobe.Garment, scheme colour.Scheme) []Candidate {
	baseRGB, haveBaseColour := base.DominantRGB()

	var out []Candidate
	for _, pattern := range patterns {
		if !slices.Contains(pattern, base.Category) {
			continue
		}

		other := make([]wardrobe.Category, 0, len(pattern)-1)
		for _, cat := range pattern {
			if cat != base.Category {
				other = append(other, cat)
			}
		}

		options := make([][]wardrobe.Garment, 0, len(other))
		complete := true
		for _, cat := range other {
			list := byCategory[cat]
			if len(list) == 0 {
				complete = false
				break
			}
			if scheme != "" && haveBaseColour {
				narrowed := make([]wardrobe.Garment, 0, len(list))
				for _, item := range list {
					if rgb, ok := item.DominantRGB(); ok && colour.Match(baseRGB, rgb, scheme, colour.DefaultMatchTolerance) {
						narrowed = append(narrowed, item)
					}
				}
				// Narrowing that empties a category falls back to the full
				// list rather than killing the pattern.
				if len(narrowed) > 0 {
					list = narrowed
				}
			}
			options = append(options, list)
		}
		if !complete {
			continue
		}

		for combo := range cartesian(options) {
			items := make([]wardrobe.Garment, 0, len(combo)+1)
			items = append(items, base)
			items = append(items, combo...)
			out = append(out, g.score(items, pattern))
		}
	}
	return out
}

// allCombinations builds outfits for every pattern whose categories are all
// present in the closet; patterns missing a category are skipped silently.
func (g *Generator) allCombinations(byCategory map[wardrobe.Category][]wardrobe.Garment, scheme colour.Scheme) []Candidate {
	var out []Candidate
	for _, pattern := range patterns {
		options := make([][]wardrobe.Garment, 0, len(pattern))
		complete := true
		for _, cat := range pattern {
			list := byCategory[cat]
			if len(list) == 0 {
				complete = false
				break
			}
			options = append(options, list)
		}
		if !complete {
			continue
		}

		for combo := range cartesian(options) {
			if scheme != "" && !passesSchemeGate(combo, scheme) {
				continue
			}
			out = append(out, g.score(slices.Clone(combo), pattern))
		}
	}
	return out
}

// passesSchemeGate checks the first two dominant colours of a tuple against
// the scheme. This is deliberately a cheap one-pair gate, weaker than the
// full pairwise harmony applied at scoring time.
func passesSchemeGate(items []wardrobe.Garment, scheme colour.Scheme) bool {
	colours := make([]colour.RGB, 0, len(items))
	for _, item := range items {
		if rgb, ok := item.DominantRGB(); ok {
			colours = append(colours, rgb)
		}
	}
	if len(colours) < 2 {
		return true
	}
	return colour.Match(colours[0], colours[1], scheme, colour.DefaultMatchTolerance)
}

// score computes the candidate for a finished item tuple. Harmony is scored
// over every item's dominant colour; garments without colours still count
// for style.
func (g *Generator) score(items []wardrobe.Garment, pattern []wardrobe.Category) Candidate {
	colours := make([]colour.RGB, 0, len(items))
	for _, item := range items {
		if rgb, ok := item.DominantRGB(); ok {
			colours = append(colours, rgb)
		}
	}

	harmony := colour.HarmonyScore(colours)
	style := StyleScore(items)

	return Candidate{
		Items:              items,
		ColourHarmonyScore: round2(harmony),
		StyleScore:         round2(style),
		TotalScore:         round2(harmony*harmonyWeight + style*styleWeight),
		Pattern:            slices.Clone(pattern),
	}
}

// cartesian yields every combination taking one garment from each option
// list, in list order. With no option lists it yields a single empty
// combination. The yielded slice is reused between iterations; callers keep
// a copy if they hold on to it.
func cartesian(options [][]wardrobe.Garment) iter.Seq[[]wardrobe.Garment] {
	return func(yield func([]wardrobe.Garment) bool) {
		combo := make([]wardrobe.Garment, len(options))
		var walk func(depth int) bool
		walk = func(depth int) bool {
			if depth == len(options) {
				return yield(combo)
			}
			for _, item := range options[depth] {
				combo[depth] = item
				if !walk(depth + 1) {
					return false
				}
			}
			return true
		}
		walk(0)
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
