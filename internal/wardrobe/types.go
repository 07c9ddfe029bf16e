// Package wardrobe defines the garment records consumed by the outfit engine
// and validates them once at the boundary, so core code never re-checks tags.
package wardrobe

import (
	"encoding/json"
	"fmt"

	"github.com/weftapp/weft/internal/colour"
)

// Category identifies the closet slot a garment occupies.
type Category string

const (
	CategoryTop       Category = "top"
	CategoryBottom    Category = "bottom"
	CategoryDress     Category = "dress"
	CategoryOuterwear Category = "outerwear"
	CategoryShoes     Category = "shoes"
	CategoryAccessory Category = "accessory"
)

// Categories returns the closed set of valid garment categories.
func Categories() []Category {
	return []Category{
		CategoryTop,
		CategoryBottom,
		CategoryDress,
		CategoryOuterwear,
		CategoryShoes,
		CategoryAccessory,
	}
}

// ParseCategory validates a category tag.
func ParseCategory(s string) (Category, error) {
	for _, valid := range Categories() {
		if Category(s) == valid {
			return valid, nil
		}
	}
	return "", fmt.Errorf("unknown category: %q (valid categories: %v)", s, Categories())
}

// Style identifies the dress code a garment belongs to.
type Style string

const (
	StyleCasual     Style = "casual"
	StyleFormal     Style = "formal"
	StyleSporty     Style = "sporty"
	StyleBusiness   Style = "business"
	StyleEvening    Style = "evening"
	StyleBohemian   Style = "bohemian"
	StyleStreetwear Style = "streetwear"
	StyleVintage    Style = "vintage"
)

// Styles returns the closed set of valid garment styles.
func Styles() []Style {
	return []Style{
		StyleCasual,
		StyleFormal,
		StyleSporty,
		StyleBusiness,
		StyleEvening,
		StyleBohemian,
		StyleStreetwear,
		StyleVintage,
	}
}

// ParseStyle validates a style tag.
func ParseStyle(s string) (Style, error) {
	for _, valid := range Styles() {
		if Style(s) == valid {
			return valid, nil
		}
	}
	return "", fmt.Errorf("unknown style: %q (valid styles: %v)", s, Styles())
}

// Garment is a validated closet record. Colours is ordered by descending
// percentage; the engine treats Colours[0] as the garment's dominant colour.
type Garment struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Category  Category        `json:"category"`
	Style     Style           `json:"style"`
	ImagePath string          `json:"image_path,omitempty"`
	Colours   []colour.Colour `json:"dominant_colors"`
	Tags      []string        `json:"tags,omitempty"`
}

// DominantRGB returns the garment's most dominant colour. ok is false when
// the garment has no extracted colours; such garments are excluded from
// colour comparisons but still count for style scoring.
func (g Garment) DominantRGB() (colour.RGB, bool) {
	if len(g.Colours) == 0 {
		return colour.RGB{}, false
	}
	return g.Colours[0].RGB, true
}

// garmentRecord is the loosely-typed external shape. Pointer fields
// distinguish "missing" (gets a default) from "present but invalid"
// (rejected).
type garmentRecord struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Category  *string         `json:"category"`
	Style     *string         `json:"style"`
	ImagePath string          `json:"image_path"`
	Colours   []colour.Colour `json:"dominant_colors"`
	Tags      []string        `json:"tags"`
}

// DecodeGarments parses external garment records into validated Garments.
// Missing category and style fields default to top and casual; unknown tag
// values are rejected. Colour hex strings are re-derived from the RGB values
// so they are always canonical.
func DecodeGarments(data []byte) ([]Garment, error) {
	var records []garmentRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to parse garment records: %w", err)
	}

	garments := make([]Garment, 0, len(records))
	for i, rec := range records {
		g := Garment{
			ID:        rec.ID,
			Name:      rec.Name,
			Category:  CategoryTop,
			Style:     StyleCasual,
			ImagePath: rec.ImagePath,
			Colours:   rec.Colours,
			Tags:      rec.Tags,
		}

		if rec.Category != nil {
			cat, err := ParseCategory(*rec.Category)
			if err != nil {
				return nil, fmt.Errorf("garment %d (%s): %w", i, rec.ID, err)
			}
			g.Category = cat
		}
		if rec.Style != nil {
			style, err := ParseStyle(*rec.Style)
			if err != nil {
				return nil, fmt.Errorf("garment %d (%s): %w", i, rec.ID, err)
			}
			g.Style = style
		}

		for j := range g.Colours {
			g.Colours[j].Hex = g.Colours[j].RGB.Hex()
		}

		garments = append(garments, g)
	}
	return garments, nil
}
