// Package cli provides the command-line interface for weft.
package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/weftapp/weft/internal/colour"
	"github.com/weftapp/weft/internal/outfit"
	"github.com/weftapp/weft/internal/wardrobe"
)

var (
	// Suggest command flags
	suggestBase           string
	suggestStyle          string
	suggestScheme         string
	suggestMax            int
	suggestMaxPerCategory int
	suggestFormat         string
	suggestOutput         string
)

// suggestCmd represents the suggest command.
var suggestCmd = &cobra.Command{
	Use:   "suggest <closet.json>",
	Short: "Suggest outfits from a closet of garments",
	Long: `Suggest ranked outfit combinations from a closet file.

The closet file is a JSON array of garment records with id, name, category,
style, and the dominant colours extracted from the garment's photo. Each
candidate outfit is scored by colour harmony (weight 0.6) and style
compatibility (weight 0.4).

Examples:
  # Top 5 outfit suggestions
  weft suggest closet.json

  # Build outfits around one garment, matching complementary colours
  weft suggest closet.json --base shirt-01 --scheme complementary

  # Only formal garments, up to 10 suggestions, as JSON
  weft suggest closet.json --style formal --max 10 --format json`,
	Args: cobra.ExactArgs(1),
	RunE: runSuggest,
}

func init() {
	suggestCmd.Flags().StringVarP(&suggestBase, "base", "b", "", "garment id to build outfits around")
	suggestCmd.Flags().StringVarP(&suggestStyle, "style", "s", "", "only use garments of this style")
	suggestCmd.Flags().StringVar(&suggestScheme, "scheme", "", "narrow combinations by colour scheme")
	suggestCmd.Flags().IntVarP(&suggestMax, "max", "m", outfit.DefaultMaxSuggestions,
		fmt.Sprintf("maximum suggestions to return (1-%d)", outfit.MaxSuggestionsLimit))
	suggestCmd.Flags().IntVar(&suggestMaxPerCategory, "max-per-category", outfit.DefaultMaxPerCategory,
		"cap per-category options before combining (0 = unlimited)")
	suggestCmd.Flags().StringVarP(&suggestFormat, "format", "f", "table", "output format (table, json)")
	suggestCmd.Flags().StringVarP(&suggestOutput, "output", "o", "", "output file (default: stdout)")
}

// runSuggest executes the suggest command.
func runSuggest(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read closet file: %w", err)
	}

	garments, err := wardrobe.DecodeGarments(data)
	if err != nil {
		return err
	}

	verbose, _ := cmd.Flags().GetBool("verbose")
	if verbose {
		fmt.Fprintf(os.Stderr, "Loaded %d garments from %s\n", len(garments), args[0])
	}

	req := outfit.Request{
		BaseItemID:     suggestBase,
		MaxSuggestions: suggestMax,
	}
	if suggestStyle != "" {
		style, err := wardrobe.ParseStyle(suggestStyle)
		if err != nil {
			return err
		}
		req.Style = style
	}
	if suggestScheme != "" {
		scheme, err := colour.ParseScheme(suggestScheme)
		if err != nil {
			return err
		}
		req.Scheme = scheme
	}

	generator := outfit.NewGenerator(newLogger(cmd, "suggest"))
	generator.MaxPerCategory = suggestMaxPerCategory

	candidates, err := generator.Generate(garments, req)
	if err != nil {
		return err
	}

	output, err := formatCandidates(candidates, suggestFormat)
	if err != nil {
		return err
	}
	return writeOutput(cmd, output, suggestOutput)
}

// formatCandidates renders ranked outfit candidates in the requested format.
func formatCandidates(candidates []outfit.Candidate, format string) (string, error) {
	switch format {
	case "json":
		data, err := json.MarshalIndent(candidates, "", "  ")
		if err != nil {
			return "", fmt.Errorf("failed to encode suggestions: %w", err)
		}
		return string(data), nil
	case "table":
		if len(candidates) == 0 {
			return "No outfit suggestions found.", nil
		}

		table := NewTable([]string{"#", "TOTAL", "COLOUR", "STYLE", "PATTERN", "ITEMS"})
		table.SetColumnMaxWidth(5, 60)
		for i, c := range candidates {
			items := make([]string, len(c.Items))
			for j, item := range c.Items {
				label := item.Name
				if label == "" {
					label = item.ID
				}
				items[j] = fmt.Sprintf("%s (%s)", label, item.Category)
			}
			pattern := make([]string, len(c.Pattern))
			for j, cat := range c.Pattern {
				pattern[j] = string(cat)
			}
			table.AddRow([]string{
				fmt.Sprintf("%d", i+1),
				fmt.Sprintf("%.2f", c.TotalScore),
				fmt.Sprintf("%.2f", c.ColourHarmonyScore),
				fmt.Sprintf("%.2f", c.StyleScore),
				strings.Join(pattern, "+"),
				strings.Join(items, ", "),
			})
		}
		return table.Render(), nil
	default:
		return "", fmt.Errorf("unknown format: %s (valid formats: table, json)", format)
	}
}
