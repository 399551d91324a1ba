package csscolour

import "math"

// WCAG 2.0 minimum contrast ratios (https://www.w3.org/TR/WCAG20/#visual-audio-contrast).
const (
	// MinRatioAANormal is the AA threshold for normal text.
	MinRatioAANormal = 4.5

	// MinRatioAALarge is the AA threshold for large text.
	MinRatioAALarge = 3.0

	// MinRatioAAANormal is the AAA threshold for normal text.
	MinRatioAAANormal = 7.0

	// MinRatioAAALarge is the AAA threshold for large text.
	MinRatioAAALarge = 4.5
)

// RelativeLuminance calculates the relative luminance of a colour according
// to WCAG 2.0, rounded to 3 decimal places. Returns a value between 0
// (darkest) and 1 (lightest). An hsl/hsla colour is converted to rgb first;
// alpha, if any, is ignored.
// https://www.w3.org/TR/WCAG20/#relativeluminancedef.
func RelativeLuminance(colour any) (float64, error) {
	c, err := Decompose(colour)
	if err != nil {
		return 0, err
	}
	if c.Kind == KindHSL || c.Kind == KindHSLA {
		rgb, err := HSLToRGBString(c)
		if err != nil {
			return 0, err
		}
		if c, err = Decompose(rgb); err != nil {
			return 0, err
		}
	}

	r := gammaCorrect(at(c.Values, 0) / 255)
	g := gammaCorrect(at(c.Values, 1) / 255)
	b := gammaCorrect(at(c.Values, 2) / 255)

	lum := 0.2126*r + 0.7152*g + 0.0722*b
	return math.Round(lum*1000) / 1000, nil
}

// gammaCorrect applies the sRGB-to-linear transfer function to a normalised
// channel value.
func gammaCorrect(v float64) float64 {
	if v <= 0.03928 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// ContrastRatio calculates the WCAG 2.0 contrast ratio between two colours.
// Returns a value between 1 and 21, where 21 is maximum contrast (black vs
// white), and is symmetric in its arguments.
// https://www.w3.org/TR/WCAG20/#contrast-ratiodef.
func ContrastRatio(foreground, background any) (float64, error) {
	lumF, err := RelativeLuminance(foreground)
	if err != nil {
		return 0, err
	}
	lumB, err := RelativeLuminance(background)
	if err != nil {
		return 0, err
	}
	if lumF < lumB {
		lumF, lumB = lumB, lumF
	}
	return (lumF + 0.05) / (lumB + 0.05), nil
}

// MeetsWCAGAA reports whether the colour pair satisfies the WCAG AA contrast
// requirement: 4.5:1 for normal text, relaxed to 3:1 for large text.
func MeetsWCAGAA(foreground, background any, largeText bool) (bool, error) {
	ratio, err := ContrastRatio(foreground, background)
	if err != nil {
		return false, err
	}
	min := MinRatioAANormal
	if largeText {
		min = MinRatioAALarge
	}
	return ratio >= min, nil
}

// MeetsWCAGAAA reports whether the colour pair satisfies the stricter WCAG
// AAA contrast requirement: 7:1 for normal text, 4.5:1 for large text.
func MeetsWCAGAAA(foreground, background any, largeText bool) (bool, error) {
	ratio, err := ContrastRatio(foreground, background)
	if err != nil {
		return false, err
	}
	min := MinRatioAAANormal
	if largeText {
		min = MinRatioAAALarge
	}
	return ratio >= min, nil
}

// IsLight reports whether a colour is perceptually light (relative luminance
// above 0.5). Light colours want dark overlays and vice versa; Emphasize
// makes the same split.
func IsLight(colour any) (bool, error) {
	lum, err := RelativeLuminance(colour)
	if err != nil {
		return false, err
	}
	return lum > 0.5, nil
}
