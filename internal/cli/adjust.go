package cli

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/jmylchreest/contrasty/colour"
	"github.com/jmylchreest/contrasty/contrast"
)

var (
	// Adjust command flags
	adjustMethod         string
	adjustPreserveChroma bool
	adjustFormat         string
	adjustPreview        bool
)

// adjustCmd represents the adjust command
var adjustCmd = &cobra.Command{
	Use:   "adjust <foreground> <background> <target>",
	Short: "Adjust a colour's lightness to reach a target contrast",
	Long: `Find a variant of the foreground colour whose contrast against the
background reaches the target value, adjusting only perceptual lightness.

A positive target searches on the darker side of the background lightness; a
negative target searches on the lighter side. When the target is unreachable
within the sRGB gamut the closest displayable colour is returned.

Examples:
  # Darken red until it reads at 4.5:1 against white (WCAG AA)
  contrasty adjust red white 4.5

  # A lighter variant of the same colour, against itself
  contrasty adjust red red -1.5

  # APCA body-text contrast, keeping the chroma/lightness ratio
  contrasty adjust --method apca --preserve-chroma "#336699" "#fafafa" 75`,
	Args: cobra.ExactArgs(3),
	RunE: runAdjust,
}

func init() {
	adjustCmd.Flags().StringVarP(&adjustMethod, "method", "m", contrast.MethodWCAG21,
		"contrast method (wcag21, lstar, apca, delta-phi)")
	adjustCmd.Flags().BoolVar(&adjustPreserveChroma, "preserve-chroma", false,
		"keep the foreground's chroma/lightness ratio while adjusting")
	adjustCmd.Flags().StringVarP(&adjustFormat, "format", "f", "hex",
		"output format (hex, oklrch)")
	adjustCmd.Flags().BoolVar(&adjustPreview, "preview", false,
		"show a colour preview even when stdout is not a terminal")
}

// runAdjust executes the adjust command.
func runAdjust(cmd *cobra.Command, args []string) error {
	fg, err := colour.Parse(args[0])
	if err != nil {
		return fmt.Errorf("invalid foreground: %w", err)
	}
	bg, err := colour.Parse(args[1])
	if err != nil {
		return fmt.Errorf("invalid background: %w", err)
	}
	target, err := strconv.ParseFloat(args[2], 64)
	if err != nil {
		return fmt.Errorf("invalid target contrast %q: %w", args[2], err)
	}

	result, err := contrast.Contrasty(fg, bg, target, contrast.Options{
		Method:         adjustMethod,
		PreserveChroma: adjustPreserveChroma,
		Logger:         newLogger(),
	})
	if err != nil {
		return err
	}

	achieved, err := result.Contrast(bg, adjustMethod)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	switch adjustFormat {
	case "hex":
		fmt.Fprintln(out, result.Hex())
	case "oklrch":
		perceptual, err := result.Convert(colour.SpaceOkLrCh)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, perceptual.String())
	default:
		return fmt.Errorf("unknown output format %q", adjustFormat)
	}
	fmt.Fprintf(out, "achieved contrast: %.2f (%s)\n", achieved, adjustMethod)

	if adjustPreview || term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(out, renderSwatch(result, bg))
	}
	return nil
}
