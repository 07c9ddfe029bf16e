package outfit

import (
	"math"

	"github.com/weftapp/weft/internal/wardrobe"
)

// compatibleStyles lists style pairings that work together even though they
// differ. Pairs are symmetric.
var compatibleStyles = [][2]wardrobe.Style{
	{wardrobe.StyleCasual, wardrobe.StyleStreetwear},
	{wardrobe.StyleFormal, wardrobe.StyleBusiness},
	{wardrobe.StyleEvening, wardrobe.StyleFormal},
	{wardrobe.StyleBohemian, wardrobe.StyleCasual},
	{wardrobe.StyleSporty, wardrobe.StyleCasual},
	{wardrobe.StyleVintage, wardrobe.StyleBohemian},
}

func stylesCompatible(a, b wardrobe.Style) bool {
	for _, pair := range compatibleStyles {
		if (pair[0] == a && pair[1] == b) || (pair[0] == b && pair[1] == a) {
			return true
		}
	}
	return false
}

// StyleScore rates how well the items' styles sit together, 0-100.
//
// Items all sharing one style score a perfect 100. Mixed outfits start from a
// base of 50 and walk adjacent pairs in list order: identical styles reward,
// compatible pairs reward slightly, anything else penalises. Only adjacent
// pairs are compared, so the result is order-sensitive; item order comes from
// pattern and category order upstream and is part of the scoring contract.
func StyleScore(items []wardrobe.Garment) float64 {
	if len(items) == 0 {
		return 0
	}

	allSame := true
	for _, item := range items[1:] {
		if item.Style != items[0].Style {
			allSame = false
			break
		}
	}
	if allSame {
		return 100
	}

	score := 50.0
	for i := 0; i < len(items)-1; i++ {
		s1, s2 := items[i].Style, items[i+1].Style
		switch {
		case s1 == s2:
			score += 10
		case stylesCompatible(s1, s2):
			score += 5
		default:
			score -= 10
		}
	}
	return math.Max(0, math.Min(100, score))
}
