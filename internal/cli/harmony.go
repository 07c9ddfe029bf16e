// Package cli provides the command-line interface for weft.
package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/weftapp/weft/internal/colour"
)

var (
	// Harmony match flags
	matchScheme    string
	matchTolerance float64
)

// harmonyCmd groups the colour-harmony subcommands.
var harmonyCmd = &cobra.Command{
	Use:   "harmony",
	Short: "Analyse colour harmony relationships",
	Long: `Analyse how colours relate on the colour wheel.

Colours are given as 6-digit hex strings, with or without a leading '#'.

Examples:
  # Score how well a set of colours sits together (0-100)
  weft harmony score ff0000 00ffff

  # Show the complementary, analogous, and triadic colours of a colour
  weft harmony schemes '#336699'

  # Test whether two colours satisfy a scheme
  weft harmony match ff0000 00ffff --scheme complementary`,
}

// harmonyScoreCmd scores a colour set.
var harmonyScoreCmd = &cobra.Command{
	Use:   "score <hex>...",
	Short: "Score the harmony of a colour set (0-100)",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		colours, err := parseHexArgs(args)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%.2f\n", colour.HarmonyScore(colours))
		return nil
	},
}

// harmonySchemesCmd prints the scheme colours of one colour.
var harmonySchemesCmd = &cobra.Command{
	Use:   "schemes <hex>",
	Short: "Show complementary, analogous, and triadic colours",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rgb, err := colour.ParseHex(args[0])
		if err != nil {
			return err
		}

		namer := colour.NewNamer()
		describe := func(colours ...colour.RGB) string {
			parts := make([]string, len(colours))
			for i, c := range colours {
				parts[i] = fmt.Sprintf("%s (%s)", c.Hex(), namer.Name(c))
			}
			return strings.Join(parts, ", ")
		}

		table := NewTable([]string{"SCHEME", "COLOURS"})
		table.AddRow([]string{"complementary", describe(colour.Complementary(rgb))})
		table.AddRow([]string{"analogous", describe(colour.Analogous(rgb)...)})
		table.AddRow([]string{"triadic", describe(colour.Triadic(rgb)...)})
		fmt.Fprintln(cmd.OutOrStdout(), table.Render())
		return nil
	},
}

// harmonyMatchCmd tests the scheme predicate for two colours.
var harmonyMatchCmd = &cobra.Command{
	Use:   "match <hex> <hex>",
	Short: "Test whether two colours satisfy a colour scheme",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		scheme, err := colour.ParseScheme(matchScheme)
		if err != nil {
			return err
		}
		colours, err := parseHexArgs(args)
		if err != nil {
			return err
		}

		if colour.Match(colours[0], colours[1], scheme, matchTolerance) {
			fmt.Fprintln(cmd.OutOrStdout(), "match")
		} else {
			fmt.Fprintln(cmd.OutOrStdout(), "no match")
		}
		return nil
	},
}

func init() {
	harmonyMatchCmd.Flags().StringVarP(&matchScheme, "scheme", "s", string(colour.SchemeComplementary),
		"colour scheme (complementary, analogous, triadic, monochromatic)")
	harmonyMatchCmd.Flags().Float64VarP(&matchTolerance, "tolerance", "t", colour.DefaultMatchTolerance,
		"hue tolerance in degrees")

	harmonyCmd.AddCommand(harmonyScoreCmd)
	harmonyCmd.AddCommand(harmonySchemesCmd)
	harmonyCmd.AddCommand(harmonyMatchCmd)
}

// parseHexArgs parses a list of hex colour arguments.
func parseHexArgs(args []string) ([]colour.RGB, error) {
	colours := make([]colour.RGB, len(args))
	for i, arg := range args {
		rgb, err := colour.ParseHex(arg)
		if err != nil {
			return nil, err
		}
		colours[i] = rgb
	}
	return colours, nil
}
