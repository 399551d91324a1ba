package cli

import "github.com/spf13/pflag"

// addPreviewFlag registers the shared preview flag on a command's flag set.
func addPreviewFlag(fs *pflag.FlagSet, showPreview *bool) {
	fs.BoolVarP(showPreview, "preview", "p", false, "show an ANSI swatch next to the result")
}
