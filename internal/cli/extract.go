// Package cli provides the command-line interface for weft.
package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/weftapp/weft/internal/colour"
	"github.com/weftapp/weft/internal/image"
)

var (
	// Extract command flags
	extractColours int
	extractFormat  string
	extractOutput  string
)

// extractCmd represents the extract command.
var extractCmd = &cobra.Command{
	Use:   "extract <image>",
	Short: "Extract dominant colours from a garment photo",
	Long: `Extract the dominant colours of a garment from a photo.

Background pixels (transparent, near-white, near-black, light grey) are
filtered out before clustering, so the reported colours and percentages
describe the garment rather than the backdrop.

Supported image formats: JPEG, PNG, GIF, WebP

Examples:
  # Extract 5 colours (default) from a garment photo
  weft extract shirt.jpg

  # Extract 3 colours and output as JSON
  weft extract --colours 3 --format json shirt.png

  # Extract colours and save to a file
  weft extract --output colours.json --format json dress.webp`,
	Args: cobra.ExactArgs(1),
	RunE: runExtract,
}

func init() {
	extractCmd.Flags().IntVarP(&extractColours, "colours", "c", 5, "number of colours to extract")
	extractCmd.Flags().StringVarP(&extractFormat, "format", "f", "table", "output format (table, json, hex)")
	extractCmd.Flags().StringVarP(&extractOutput, "output", "o", "", "output file (default: stdout)")
}

// runExtract executes the extract command.
func runExtract(cmd *cobra.Command, args []string) error {
	verbose, _ := cmd.Flags().GetBool("verbose")
	if verbose {
		fmt.Fprintf(os.Stderr, "Loading image: %s\n", args[0])
	}

	img, err := image.Load(args[0])
	if err != nil {
		return err
	}

	if verbose {
		bounds := img.Bounds()
		fmt.Fprintf(os.Stderr, "Image loaded: %dx%d\n", bounds.Dx(), bounds.Dy())
	}

	extractor := colour.NewExtractor(colour.NewNamer(), newLogger(cmd, "extract"))
	colours, err := extractor.Extract(img, extractColours)
	if err != nil {
		return fmt.Errorf("failed to extract colours: %w", err)
	}

	output, err := formatColours(colours, extractFormat)
	if err != nil {
		return err
	}
	return writeOutput(cmd, output, extractOutput)
}

// formatColours renders an extracted colour list in the requested format.
func formatColours(colours []colour.Colour, format string) (string, error) {
	switch format {
	case "json":
		data, err := json.MarshalIndent(colours, "", "  ")
		if err != nil {
			return "", fmt.Errorf("failed to encode colours: %w", err)
		}
		return string(data), nil
	case "hex":
		hexes := make([]string, len(colours))
		for i, c := range colours {
			hexes[i] = c.Hex
		}
		return strings.Join(hexes, "\n"), nil
	case "table":
		table := NewTable([]string{"HEX", "NAME", "RGB", "PERCENT"})
		for _, c := range colours {
			table.AddRow([]string{
				c.Hex,
				c.Name,
				c.RGB.String(),
				fmt.Sprintf("%.2f%%", c.Percentage),
			})
		}
		return table.Render(), nil
	default:
		return "", fmt.Errorf("unknown format: %s (valid formats: table, json, hex)", format)
	}
}
