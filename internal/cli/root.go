// Package cli provides the command-line interface for contrasty.
package cli

import (
	"fmt"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/contrasty/internal/version"
)

var (
	// Global verbose flag, shared by all commands.
	globalVerbose bool

	// rootCmd represents the base command when called without any subcommands
	rootCmd = &cobra.Command{
		Use:   "contrasty",
		Short: "Perceptual colour contrast, forwards and backwards",
		Long: `Contrasty measures perceptual contrast between colours using several
competing metrics (WCAG 2.1, APCA, L*, Delta Phi Star), and solves the
inverse problem: finding a lightness-adjusted variant of a colour that
reaches a target contrast against a background.

Colours are given as hex notation (#RGB, #RRGGBB, #RRGGBBAA) or CSS basic
colour keywords.`,
		Version:      version.Short(),
		SilenceUsage: true,
	}
)

// NewRootCmd returns the fully wired root command.
func NewRootCmd() *cobra.Command {
	return rootCmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&globalVerbose, "verbose", "v", false, "enable verbose output")

	// Set version template
	rootCmd.SetVersionTemplate(version.String() + "\n")

	// Add subcommands
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(ratioCmd)
	rootCmd.AddCommand(adjustCmd)
}

// newLogger builds the CLI logger. Verbose mode lifts the level to debug so
// the search engine's per-iteration traces become visible.
func newLogger() hclog.Logger {
	level := hclog.Warn
	if globalVerbose {
		level = hclog.Debug
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:   "contrasty",
		Level:  level,
		Output: os.Stderr,
	})
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Print detailed version information including build date, commit hash, and Go version.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.String())
	},
}
