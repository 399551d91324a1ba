package cli

import (
	"io"

	"github.com/hashicorp/go-hclog"
)

// newLogger returns a debug-level logger writing to out when verbose is set,
// and a discarding logger otherwise.
func newLogger(verbose bool, out io.Writer) hclog.Logger {
	if verbose {
		return hclog.New(&hclog.LoggerOptions{
			Name:   "csscolour",
			Output: out,
			Level:  hclog.Debug,
		})
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:   "csscolour",
		Output: io.Discard,
		Level:  hclog.Off,
	})
}
