// Weft - wardrobe colour analysis and outfit suggestions
//
// Weft extracts the dominant colours of garment photos, analyses colour
// harmony on the colour wheel, and ranks outfit combinations from a closet.
package main

import (
	"github.com/weftapp/weft/internal/cli"
)

func main() {
	cli.Execute()
}
