package csscolour

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// HexToRGBString expands a hexadecimal colour to rgb()/rgba() notation. Both
// shorthand (#rgb, #rgba) and full (#rrggbb, #rrggbbaa) forms are accepted;
// shorthand digits are doubled, and a fourth group becomes an alpha of
// group/255 rounded to 3 decimal places. A body that does not split into 3
// or 4 equal-width groups of hex digits yields the empty string rather than
// an error.
func HexToRGBString(hex string) string {
	if hex == "" {
		return ""
	}
	body := hex[1:]

	var width int
	switch len(body) {
	case 3, 4:
		width = 1
	case 6, 8:
		width = 2
	default:
		return ""
	}

	groups := make([]uint64, 0, 4)
	for i := 0; i < len(body); i += width {
		group := body[i : i+width]
		if width == 1 {
			group += group
		}
		v, err := strconv.ParseUint(group, 16, 64)
		if err != nil {
			return ""
		}
		groups = append(groups, v)
	}

	var b strings.Builder
	if len(groups) == 4 {
		b.WriteString("rgba(")
	} else {
		b.WriteString("rgb(")
	}
	for i, v := range groups {
		if i > 0 {
			b.WriteString(", ")
		}
		if i < 3 {
			b.WriteString(strconv.FormatUint(v, 10))
		} else {
			alpha := math.Round(float64(v)/255*1000) / 1000
			b.WriteString(formatValue(alpha))
		}
	}
	b.WriteString(")")
	return b.String()
}

// ColourToHex renders a colour as a lowercase #rrggbb string. A string that
// already starts with "#" is returned unchanged. An alpha component, when
// present, is rescaled from [0, 1] to a byte and appended (#rrggbbaa).
func ColourToHex(colour any) (string, error) {
	if s, ok := colour.(string); ok && strings.HasPrefix(s, "#") {
		return s, nil
	}
	c, err := Decompose(colour)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteByte('#')
	for i, v := range c.Values {
		if i == 3 {
			v = math.Round(255 * v)
		}
		b.WriteString(intToHex(v))
	}
	return b.String(), nil
}

// intToHex renders a component as a zero-padded 2-digit lowercase hex byte.
func intToHex(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		v = 0
	}
	return fmt.Sprintf("%02x", int(v))
}

// HSLToRGBString converts a colour in hsl()/hsla() notation to rgb()/rgba()
// notation using the standard k-offset derivation
// (https://www.w3.org/TR/css-color-3/#hsl-color). The alpha component is
// carried through unchanged when the source is hsla with a nonzero alpha;
// a zero (or NaN) alpha collapses the result to plain rgb.
func HSLToRGBString(colour any) (string, error) {
	c, err := Decompose(colour)
	if err != nil {
		return "", err
	}

	h := at(c.Values, 0)
	s := at(c.Values, 1) / 100
	l := at(c.Values, 2) / 100
	a := s * math.Min(l, 1-l)

	f := func(n float64) float64 {
		k := math.Mod(n+h/30, 12)
		return l - a*clamp(math.Min(math.Min(k-3, 9-k), 1), -1, 1)
	}

	out := Colour{
		Kind: KindRGB,
		Values: []float64{
			math.Round(f(0) * 255),
			math.Round(f(8) * 255),
			math.Round(f(4) * 255),
		},
	}
	if c.Kind == KindHSLA && len(c.Values) > 3 {
		if alpha := c.Values[3]; alpha != 0 && !math.IsNaN(alpha) {
			out.Kind = KindRGBA
			out.Values = append(out.Values, alpha)
		}
	}
	return Recompose(out), nil
}
