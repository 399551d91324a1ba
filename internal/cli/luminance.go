package cli

import (
	"fmt"

	"github.com/jmylchreest/csscolour"
	"github.com/spf13/cobra"
)

// newLuminanceCmd builds the luminance command.
func newLuminanceCmd() *cobra.Command {
	var showPreview bool

	cmd := &cobra.Command{
		Use:   "luminance <colour>",
		Short: "Report the relative luminance of a colour",
		Long: `Report the WCAG 2.0 relative luminance of a colour on a scale from 0
(darkest black) to 1 (lightest white), along with whether the colour counts
as light or dark for overlay purposes.`,
		Example: `  csscolour luminance "#ff0000"
  csscolour luminance "hsl(120, 100%, 25%)"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lum, err := csscolour.RelativeLuminance(args[0])
			if err != nil {
				return err
			}
			light, err := csscolour.IsLight(args[0])
			if err != nil {
				return err
			}
			logger.Debug("calculated luminance", "colour", args[0], "luminance", lum, "light", light)

			tone := "dark"
			if light {
				tone = "light"
			}
			result := fmt.Sprintf("%g (%s)", lum, tone)
			writeResultFor(cmd, args[0], result, showPreview)
			return nil
		},
	}

	addPreviewFlag(cmd.Flags(), &showPreview)

	return cmd
}
