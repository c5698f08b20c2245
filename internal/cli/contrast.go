package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/tintbar/internal/colour"
)

// contrastCmd represents the contrast command
var contrastCmd = &cobra.Command{
	Use:   "contrast <colour> <colour>",
	Short: "Calculate the WCAG contrast ratio between two colours",
	Long: `Calculate the WCAG 2.0 contrast ratio between two hex colours.

The ratio ranges from 1:1 (identical) to 21:1 (black on white). WCAG AA
requires 4.5:1 for normal text and 3:1 for large text; AAA requires 7:1.

Examples:
  tintbar contrast '#1a2b3c' '#ffffff'
  tintbar contrast 4169e1 000000`,
	Args: cobra.ExactArgs(2),
	RunE: runContrast,
}

// runContrast executes the contrast command.
func runContrast(cmd *cobra.Command, args []string) error {
	ratio, err := colour.ContrastRatioHex(args[0], args[1])
	if err != nil {
		return err
	}

	fmt.Printf("%.2f:1 (%s)\n", ratio, wcagAssessment(ratio))
	return nil
}

// wcagAssessment names the strictest WCAG text level the ratio satisfies.
func wcagAssessment(ratio float64) string {
	switch {
	case ratio >= 7.0:
		return "AAA normal text"
	case ratio >= 4.5:
		return "AA normal text"
	case ratio >= 3.0:
		return "AA large text"
	default:
		return "below WCAG minimums"
	}
}
