// Package csscolour converts and manipulates CSS colour representations
// (hexadecimal, rgb/rgba, hsl/hsla) and derives the perceptual properties
// used for accessibility checks and UI theming.
//
// Every operation is a pure function over either a raw CSS colour string or
// an already decomposed Colour value. Strings are parsed, transformed and
// rendered back to CSS syntax; nothing is cached and nothing is shared
// between calls, so the package is safe for concurrent use.
package csscolour

import "math"

// Kind identifies a CSS functional colour notation.
type Kind string

const (
	// KindRGB is the rgb(r, g, b) notation with channels in [0, 255].
	KindRGB Kind = "rgb"

	// KindRGBA is the rgba(r, g, b, a) notation with an alpha in [0, 1].
	KindRGBA Kind = "rgba"

	// KindHSL is the hsl(h, s%, l%) notation with hue in degrees and
	// saturation/lightness as percentages.
	KindHSL Kind = "hsl"

	// KindHSLA is the hsla(h, s%, l%, a) notation with an alpha in [0, 1].
	KindHSLA Kind = "hsla"
)

// ValidKinds returns the closed set of recognised colour kinds.
func ValidKinds() []Kind {
	return []Kind{
		KindRGB,
		KindRGBA,
		KindHSL,
		KindHSLA,
	}
}

// Colour is the decomposed form of a CSS colour: a kind plus its ordered
// numeric components. rgb/hsl carry 3 values, rgba/hsla carry 4 (the last
// being alpha). Component ranges are a nominal contract only; apart from
// alpha set through SetAlpha, out-of-range values are passed through
// untouched so that garbage in produces garbage syntax out.
type Colour struct {
	Kind   Kind
	Values []float64
}

// IsColourKind reports whether value is one of the four recognised kind
// strings. Both string and Kind values are accepted; anything else is false.
func IsColourKind(value any) bool {
	var kind Kind
	switch v := value.(type) {
	case Kind:
		kind = v
	case string:
		kind = Kind(v)
	default:
		return false
	}
	for _, valid := range ValidKinds() {
		if kind == valid {
			return true
		}
	}
	return false
}

// IsColour reports whether value is a structurally valid Colour: a Colour
// with a recognised kind and a non-nil component slice. It is the capability
// check the string-or-Colour entry points rely on.
func IsColour(value any) bool {
	c, ok := value.(Colour)
	return ok && c.Values != nil && IsColourKind(c.Kind)
}

// clamp limits value to the inclusive [lo, hi] range.
func clamp(value, lo, hi float64) float64 {
	return math.Min(math.Max(lo, value), hi)
}

// at returns the i-th component, or NaN when the slice is too short. Missing
// components behave like unparseable ones and poison downstream arithmetic
// instead of panicking.
func at(values []float64, i int) float64 {
	if i < len(values) {
		return values[i]
	}
	return math.NaN()
}
