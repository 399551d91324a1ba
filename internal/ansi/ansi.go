// Package ansi renders truecolour terminal previews for CSS colours.
package ansi

import (
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/jmylchreest/csscolour"
	"golang.org/x/term"
)

// ANSI escape codes for terminal colours.
const (
	reset        = "\033[0m"
	fgPrefix     = "\033[38;2;"
	bgPrefix     = "\033[48;2;"
	suffix       = "m"
	defaultWidth = 8
)

// Swatch returns a solid colour block width characters wide for any colour
// notation the csscolour package understands. Zero or negative width selects
// the default.
func Swatch(colour string, width int) (string, error) {
	if width <= 0 {
		width = defaultWidth
	}

	r, g, b, err := channels(colour)
	if err != nil {
		return "", err
	}

	bg := fmt.Sprintf("%s%d;%d;%d%s", bgPrefix, r, g, b, suffix)
	return bg + strings.Repeat(" ", width) + reset, nil
}

// Label returns a swatch with text overlaid and centred. The text colour is
// black over light backgrounds and white over dark ones.
func Label(colour, text string, width int) (string, error) {
	if width <= 0 {
		width = defaultWidth
	}

	r, g, b, err := channels(colour)
	if err != nil {
		return "", err
	}
	light, err := csscolour.IsLight(colour)
	if err != nil {
		return "", err
	}

	fg := fgPrefix + "0;0;0" + suffix
	if !light {
		fg = fgPrefix + "255;255;255" + suffix
	}

	if len(text) > width {
		text = text[:width]
	} else if len(text) < width {
		pad := (width - len(text)) / 2
		text = strings.Repeat(" ", pad) + text + strings.Repeat(" ", width-len(text)-pad)
	}

	bg := fmt.Sprintf("%s%d;%d;%d%s", bgPrefix, r, g, b, suffix)
	return bg + fg + text + reset, nil
}

// channels resolves a colour to integer rgb bytes, converting hsl kinds
// first. Out-of-range components are clamped so the escape sequence stays
// valid.
func channels(colour string) (r, g, b int, err error) {
	c, err := csscolour.Decompose(colour)
	if err != nil {
		return 0, 0, 0, err
	}
	if c.Kind == csscolour.KindHSL || c.Kind == csscolour.KindHSLA {
		rgb, err := csscolour.HSLToRGBString(c)
		if err != nil {
			return 0, 0, 0, err
		}
		if c, err = csscolour.Decompose(rgb); err != nil {
			return 0, 0, 0, err
		}
	}
	if len(c.Values) < 3 {
		return 0, 0, 0, fmt.Errorf("colour %q has %d components, need at least 3", colour, len(c.Values))
	}

	var bytes [3]int
	for i := range bytes {
		v := c.Values[i]
		if math.IsNaN(v) {
			return 0, 0, 0, fmt.Errorf("colour %q has a non-numeric component", colour)
		}
		bytes[i] = int(math.Round(math.Min(math.Max(v, 0), 255)))
	}
	return bytes[0], bytes[1], bytes[2], nil
}

// Enabled reports whether stream is a terminal that can show colour output.
func Enabled(stream *os.File) bool {
	if os.Getenv("TERM") == "dumb" {
		return false
	}
	return term.IsTerminal(int(stream.Fd()))
}
