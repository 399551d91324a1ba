// Package cli provides the command-line interface for csscolour.
package cli

import (
	"fmt"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/jmylchreest/csscolour/internal/ansi"
	"github.com/jmylchreest/csscolour/internal/version"
	"github.com/spf13/cobra"
)

var (
	// Global flags shared by all commands.
	flagVerbose  bool
	flagNoColour bool

	// logger is swapped for a real logger when --verbose is set.
	logger = hclog.NewNullLogger()
)

// NewRootCmd builds the root command with all subcommands attached.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "csscolour",
		Short: "Convert and inspect CSS colours",
		Long: `csscolour converts CSS colours between notations and derives WCAG
luminance and contrast figures from them.

Colours are accepted in #nnn, #nnnnnn, rgb(), rgba(), hsl() and hsla()
notation. Subcommands convert between these forms, report contrast ratios
for accessibility audits, and produce darkened, lightened or faded variants
for hover and disabled states.`,
		Version:      version.Short(),
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger = newLogger(flagVerbose, cmd.ErrOrStderr())
		},
	}

	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&flagNoColour, "no-colour", false, "disable ANSI colour previews")

	// Set version template
	rootCmd.SetVersionTemplate(version.String() + "\n")

	// Add subcommands
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(newConvertCmd())
	rootCmd.AddCommand(newContrastCmd())
	rootCmd.AddCommand(newLuminanceCmd())
	rootCmd.AddCommand(newAdjustCmd())

	return rootCmd
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Print detailed version information including build date, commit hash, and Go version.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), version.String())
	},
}

// previewEnabled reports whether ANSI previews may be rendered at all.
func previewEnabled() bool {
	return !flagNoColour && ansi.Enabled(os.Stdout)
}

// writeResult prints a colour result, preceded by a swatch of it when
// previews are both requested and possible.
func writeResult(cmd *cobra.Command, colour string, showPreview bool) {
	writeResultFor(cmd, colour, colour, showPreview)
}

// writeResultFor prints text, preceded by a swatch of colour when previews
// are both requested and possible.
func writeResultFor(cmd *cobra.Command, colour, text string, showPreview bool) {
	if showPreview && previewEnabled() {
		if swatch, err := ansi.Swatch(colour, 0); err == nil {
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", swatch, text)
			return
		}
	}
	fmt.Fprintln(cmd.OutOrStdout(), text)
}
