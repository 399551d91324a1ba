package csscolour

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// UnsupportedFormatError is returned when a colour string's notation is not
// one of the recognised formats.
type UnsupportedFormatError struct {
	// Input is the offending colour value as given by the caller.
	Input string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported colour %q: the following formats are supported: #nnn, #nnnnnn, rgb(), rgba(), hsl(), hsla()", e.Input)
}

// Decompose parses a colour into its Colour form. A Colour value passes
// through unchanged, a "#..." string is expanded through HexToRGBString
// first, and anything else must be "<kind>(<comma-separated numbers>)" with a
// recognised kind. An unrecognised notation yields an
// *UnsupportedFormatError.
//
// Numeric entries are parsed leniently: a trailing "%" (or any other
// trailing text) is dropped, and an entry with no leading number at all
// becomes NaN rather than an error. Percentage rgb channels such as
// "rgb(50%, 20%, 10%)" are therefore misread as 50, 20, 10; the notation
// subset this package supports does not include them.
func Decompose(colour any) (Colour, error) {
	switch v := colour.(type) {
	case Colour:
		if !IsColour(v) {
			return Colour{}, &UnsupportedFormatError{Input: string(v.Kind)}
		}
		return v, nil
	case string:
		return decomposeString(v)
	default:
		return Colour{}, &UnsupportedFormatError{Input: fmt.Sprintf("%v", colour)}
	}
}

func decomposeString(s string) (Colour, error) {
	if s != "" && s[0] == '#' {
		c, err := decomposeString(HexToRGBString(s))
		if err != nil {
			return Colour{}, &UnsupportedFormatError{Input: s}
		}
		return c, nil
	}

	marker := strings.Index(s, "(")
	var kind string
	if marker > 0 {
		kind = s[:marker]
	}
	if !IsColourKind(kind) {
		return Colour{}, &UnsupportedFormatError{Input: s}
	}

	// Everything between the marker and the final character, which is
	// assumed (not verified) to be the closing parenthesis.
	end := len(s) - 1
	if end < marker+1 {
		end = marker + 1
	}
	entries := strings.Split(s[marker+1:end], ",")

	values := make([]float64, len(entries))
	for i, entry := range entries {
		values[i] = parseLeadingFloat(entry)
	}
	return Colour{Kind: Kind(kind), Values: values}, nil
}

// Recompose renders a Colour back to CSS syntax. For rgb kinds the first 3
// values are truncated toward zero and a trailing alpha is emitted as is;
// for hsl kinds the saturation and lightness values gain a literal "%".
func Recompose(c Colour) string {
	parts := make([]string, len(c.Values))
	switch c.Kind {
	case KindRGB, KindRGBA:
		for i, v := range c.Values {
			if i < 3 {
				parts[i] = formatChannel(v)
			} else {
				parts[i] = formatValue(v)
			}
		}
	case KindHSL, KindHSLA:
		for i, v := range c.Values {
			if i == 1 || i == 2 {
				parts[i] = formatValue(v) + "%"
			} else {
				parts[i] = formatValue(v)
			}
		}
	default:
		for i, v := range c.Values {
			parts[i] = formatValue(v)
		}
	}
	return string(c.Kind) + "(" + strings.Join(parts, ", ") + ")"
}

// parseLeadingFloat parses the longest leading floating-point prefix of s,
// ignoring surrounding whitespace. There is no error case: an entry without
// a leading number parses to NaN and propagates silently, matching the
// lenient contract described on Decompose.
func parseLeadingFloat(s string) float64 {
	s = strings.TrimSpace(s)
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	digits := func() bool {
		start := i
		for i < len(s) && s[i] >= '0' && s[i] <= '9' {
			i++
		}
		return i > start
	}
	seen := digits()
	if i < len(s) && s[i] == '.' {
		i++
		if digits() {
			seen = true
		}
	}
	if !seen {
		return math.NaN()
	}
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		// The exponent only counts when digits follow it, so "1e" stays 1.
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		k := j
		for k < len(s) && s[k] >= '0' && s[k] <= '9' {
			k++
		}
		if k > j {
			i = k
		}
	}
	v, err := strconv.ParseFloat(s[:i], 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return v
		}
		return math.NaN()
	}
	return v
}

// formatChannel renders an rgb channel as a base-10 integer, truncating
// toward zero. Non-finite values fall back to plain float rendering so NaN
// survives as "NaN" instead of an arbitrary integer.
func formatChannel(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return formatValue(v)
	}
	return strconv.Itoa(int(v))
}

// formatValue renders a component in its shortest decimal form, the way CSS
// expects numbers (never exponent notation for the ranges in play).
func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
