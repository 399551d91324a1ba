package cli

import (
	"fmt"

	"github.com/jmylchreest/csscolour"
	"github.com/spf13/cobra"
)

// newConvertCmd builds the convert command.
func newConvertCmd() *cobra.Command {
	var (
		to          string
		showPreview bool
	)

	cmd := &cobra.Command{
		Use:   "convert <colour>",
		Short: "Convert a colour between notations",
		Long: `Convert a colour between hexadecimal and functional notation.

Accepts #nnn, #nnnnnn, rgb(), rgba(), hsl() and hsla() input. The target
notation is selected with --to: "rgb" expands hex and hsl colours to
rgb()/rgba(), "hex" renders the colour as #rrggbb, or #rrggbbaa when it
carries alpha.`,
		Example: `  csscolour convert "#1a2b3c"
  csscolour convert --to hex "rgb(26, 43, 60)"
  csscolour convert --to rgb "hsl(210, 40%, 60%)"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := convertColour(args[0], to)
			if err != nil {
				return err
			}
			logger.Debug("converted colour", "input", args[0], "to", to, "result", result)
			writeResult(cmd, result, showPreview)
			return nil
		},
	}

	cmd.Flags().StringVarP(&to, "to", "t", "rgb", "target notation (rgb, hex)")
	addPreviewFlag(cmd.Flags(), &showPreview)

	return cmd
}

// convertColour renders input in the requested target notation.
func convertColour(input, to string) (string, error) {
	switch to {
	case "hex":
		return csscolour.ColourToHex(input)
	case "rgb":
		c, err := csscolour.Decompose(input)
		if err != nil {
			return "", err
		}
		if c.Kind == csscolour.KindHSL || c.Kind == csscolour.KindHSLA {
			return csscolour.HSLToRGBString(c)
		}
		return csscolour.Recompose(c), nil
	default:
		return "", fmt.Errorf("unsupported target notation %q (supported: rgb, hex)", to)
	}
}
