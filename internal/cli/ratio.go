package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/contrasty/colour"
	"github.com/jmylchreest/contrasty/contrast"
)

var (
	// Ratio command flags
	ratioMethod string
)

// ratioCmd represents the ratio command
var ratioCmd = &cobra.Command{
	Use:   "ratio <foreground> <background>",
	Short: "Measure contrast between two colours",
	Long: `Measure the perceptual contrast of a foreground colour against a
background colour.

Available methods:
  wcag21     WCAG 2.1 relative-luminance ratio, 1 to 21
  lstar      CIE L* lightness difference, roughly -100 to 100
  apca       APCA Lc value, signed, magnitude up to ~106
  delta-phi  Delta Phi Star, 0 or 7.5 to ~100

Examples:
  # WCAG 2.1 ratio of dark text on a light background
  contrasty ratio "#333333" "#fafafa"

  # APCA lightness contrast
  contrasty ratio --method apca "#333333" "#fafafa"

  # All methods at once, as a table
  contrasty ratio --method all white navy`,
	Args: cobra.ExactArgs(2),
	RunE: runRatio,
}

func init() {
	ratioCmd.Flags().StringVarP(&ratioMethod, "method", "m", contrast.MethodWCAG21,
		"contrast method (wcag21, lstar, apca, delta-phi, all)")
}

// runRatio executes the ratio command.
func runRatio(cmd *cobra.Command, args []string) error {
	fg, err := colour.Parse(args[0])
	if err != nil {
		return fmt.Errorf("invalid foreground: %w", err)
	}
	bg, err := colour.Parse(args[1])
	if err != nil {
		return fmt.Errorf("invalid background: %w", err)
	}

	out := cmd.OutOrStdout()
	if ratioMethod == "all" {
		table := NewTable([]string{"METHOD", "CONTRAST"})
		for _, method := range contrast.Methods() {
			value, err := fg.Contrast(bg, method)
			if err != nil {
				return err
			}
			table.AddRow([]string{method, fmt.Sprintf("%.2f", value)})
		}
		fmt.Fprint(out, table.Render())
		return nil
	}

	value, err := fg.Contrast(bg, ratioMethod)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "%.2f\n", value)
	return nil
}
