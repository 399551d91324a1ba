package cli

import (
	"fmt"

	"github.com/jmylchreest/csscolour"
	"github.com/jmylchreest/csscolour/internal/ansi"
	"github.com/spf13/cobra"
)

// newContrastCmd builds the contrast command.
func newContrastCmd() *cobra.Command {
	var showPreview bool

	cmd := &cobra.Command{
		Use:   "contrast <foreground> <background>",
		Short: "Report the WCAG contrast ratio between two colours",
		Long: `Report the WCAG 2.0 contrast ratio between a foreground and a background
colour, from 1:1 (no contrast) to 21:1 (black on white), together with a
pass/fail verdict against the AA and AAA thresholds for normal and large
text.`,
		Example: `  csscolour contrast "#777777" "#ffffff"
  csscolour contrast "rgb(0, 0, 0)" "hsl(60, 100%, 50%)"`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runContrast(cmd, args[0], args[1], showPreview)
		},
	}

	addPreviewFlag(cmd.Flags(), &showPreview)

	return cmd
}

func runContrast(cmd *cobra.Command, foreground, background string, showPreview bool) error {
	ratio, err := csscolour.ContrastRatio(foreground, background)
	if err != nil {
		return err
	}
	logger.Debug("calculated contrast", "foreground", foreground, "background", background, "ratio", ratio)

	out := cmd.OutOrStdout()
	if showPreview && previewEnabled() {
		fgSwatch, fgErr := ansi.Swatch(foreground, 4)
		bgSwatch, bgErr := ansi.Swatch(background, 4)
		if fgErr == nil && bgErr == nil {
			fmt.Fprintf(out, "%s %s on %s %s\n", fgSwatch, foreground, bgSwatch, background)
		}
	}
	fmt.Fprintf(out, "%.2f:1\n", ratio)

	table := NewTable([]string{"Level", "Text", "Verdict"})
	checks := []struct {
		level string
		size  string
		check func(fg, bg any, largeText bool) (bool, error)
		large bool
	}{
		{level: "AA", size: "normal", check: csscolour.MeetsWCAGAA, large: false},
		{level: "AA", size: "large", check: csscolour.MeetsWCAGAA, large: true},
		{level: "AAA", size: "normal", check: csscolour.MeetsWCAGAAA, large: false},
		{level: "AAA", size: "large", check: csscolour.MeetsWCAGAAA, large: true},
	}
	for _, c := range checks {
		pass, err := c.check(foreground, background, c.large)
		if err != nil {
			return err
		}
		table.AddRow([]string{c.level, c.size, verdict(pass)})
	}
	fmt.Fprint(out, table.Render())
	return nil
}

// verdict renders a pass/fail boolean for the contrast report.
func verdict(pass bool) string {
	if pass {
		return "pass"
	}
	return "fail"
}
