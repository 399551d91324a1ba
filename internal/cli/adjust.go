package cli

import (
	"fmt"
	"strings"

	"github.com/jmylchreest/csscolour"
	"github.com/spf13/cobra"
)

// newAdjustCmd builds the adjust command.
func newAdjustCmd() *cobra.Command {
	var (
		darkenBy    float64
		lightenBy   float64
		alphaTo     float64
		emphasizeBy float64
		showPreview bool
	)

	cmd := &cobra.Command{
		Use:   "adjust <colour>",
		Short: "Darken, lighten or fade a colour",
		Long: `Apply a tonal adjustment to a colour and print the result in functional
notation. Exactly one adjustment must be selected per invocation.

--darken and --lighten shift the colour towards black or white by a
coefficient between 0 (no change) and 1 (fully black or white). --alpha
sets the alpha channel outright, promoting rgb and hsl colours to their
alpha-carrying forms. --emphasize darkens light colours and lightens dark
ones, which keeps the adjustment visible on either side of mid-luminance.`,
		Example: `  csscolour adjust --darken 0.2 "#ff8000"
  csscolour adjust --alpha 0.5 "rgb(1, 2, 3)"
  csscolour adjust --emphasize "#fafafa"
  csscolour adjust --emphasize=0.3 "hsl(0, 100%, 50%)"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var selected []string
			for _, name := range []string{"darken", "lighten", "alpha", "emphasize"} {
				if cmd.Flags().Changed(name) {
					selected = append(selected, "--"+name)
				}
			}
			if len(selected) != 1 {
				return fmt.Errorf("exactly one of --darken, --lighten, --alpha or --emphasize must be given (got %s)",
					describeSelection(selected))
			}

			colour := args[0]
			var result string
			var err error
			switch selected[0] {
			case "--darken":
				result, err = csscolour.Darken(colour, darkenBy)
			case "--lighten":
				result, err = csscolour.Lighten(colour, lightenBy)
			case "--alpha":
				result, err = csscolour.SetAlpha(colour, alphaTo)
			case "--emphasize":
				result, err = csscolour.EmphasizeWith(colour, emphasizeBy)
			}
			if err != nil {
				return err
			}
			logger.Debug("adjusted colour", "input", colour, "adjustment", selected[0], "result", result)
			writeResult(cmd, result, showPreview)
			return nil
		},
	}

	cmd.Flags().Float64Var(&darkenBy, "darken", 0, "darken by a coefficient in [0, 1]")
	cmd.Flags().Float64Var(&lightenBy, "lighten", 0, "lighten by a coefficient in [0, 1]")
	cmd.Flags().Float64Var(&alphaTo, "alpha", 0, "set the alpha channel to a value in [0, 1]")
	cmd.Flags().Float64Var(&emphasizeBy, "emphasize", 0.15, "shift tone away from the nearest extreme")
	// Allow a bare --emphasize to mean the default coefficient.
	cmd.Flags().Lookup("emphasize").NoOptDefVal = "0.15"
	addPreviewFlag(cmd.Flags(), &showPreview)

	return cmd
}

// describeSelection renders the chosen adjustment flags for error messages.
func describeSelection(selected []string) string {
	if len(selected) == 0 {
		return "none"
	}
	return strings.Join(selected, ", ")
}
