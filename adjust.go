package csscolour

// defaultEmphasisCoefficient is the tonal shift Emphasize applies.
const defaultEmphasisCoefficient = 0.15

// SetAlpha returns the colour with its alpha channel set to value, clamped
// to [0, 1]. An rgb or hsl colour is promoted to rgba/hsla; an existing
// alpha is overwritten. This is an absolute set, not a blend. The result is
// always functional notation, even for hex input.
func SetAlpha(colour any, value float64) (string, error) {
	c, err := Decompose(colour)
	if err != nil {
		return "", err
	}
	value = clamp(value, 0, 1)

	values := cloneValues(c.Values)
	switch c.Kind {
	case KindRGB:
		c.Kind = KindRGBA
	case KindHSL:
		c.Kind = KindHSLA
	}
	if len(values) > 3 {
		values[3] = value
	} else {
		values = append(values, value)
	}
	c.Values = values
	return Recompose(c), nil
}

// Fade sets the alpha channel of a colour.
//
// Deprecated: Fade is the historical name for this operation; use SetAlpha.
func Fade(colour any, value float64) (string, error) {
	return SetAlpha(colour, value)
}

// Darken darkens a colour by the given coefficient, clamped to [0, 1]. An
// hsl colour has its lightness scaled by (1 - coefficient); an rgb colour
// has each channel scaled the same way. Alpha is untouched. Coefficient 0 is
// the identity, 1 yields black.
func Darken(colour any, coefficient float64) (string, error) {
	c, err := Decompose(colour)
	if err != nil {
		return "", err
	}
	coefficient = clamp(coefficient, 0, 1)

	values := cloneValues(c.Values)
	switch c.Kind {
	case KindHSL, KindHSLA:
		if len(values) > 2 {
			values[2] *= 1 - coefficient
		}
	case KindRGB, KindRGBA:
		for i := 0; i < 3 && i < len(values); i++ {
			values[i] *= 1 - coefficient
		}
	}
	c.Values = values
	return Recompose(c), nil
}

// Lighten lightens a colour by the given coefficient, clamped to [0, 1]. An
// hsl colour has (100 - lightness) * coefficient added to its lightness; an
// rgb colour has (255 - channel) * coefficient added to each channel. Alpha
// is untouched. Coefficient 0 is the identity, 1 yields white.
func Lighten(colour any, coefficient float64) (string, error) {
	c, err := Decompose(colour)
	if err != nil {
		return "", err
	}
	coefficient = clamp(coefficient, 0, 1)

	values := cloneValues(c.Values)
	switch c.Kind {
	case KindHSL, KindHSLA:
		if len(values) > 2 {
			values[2] += (100 - values[2]) * coefficient
		}
	case KindRGB, KindRGBA:
		for i := 0; i < 3 && i < len(values); i++ {
			values[i] += (255 - values[i]) * coefficient
		}
	}
	c.Values = values
	return Recompose(c), nil
}

// Emphasize darkens a light colour and lightens a dark one by the default
// coefficient of 0.15, guaranteeing a visible tonal shift against the input
// regardless of which side of mid-luminance it sits on.
func Emphasize(colour any) (string, error) {
	return EmphasizeWith(colour, defaultEmphasisCoefficient)
}

// EmphasizeWith is Emphasize with an explicit coefficient: colours with a
// relative luminance above 0.5 are darkened, all others lightened.
func EmphasizeWith(colour any, coefficient float64) (string, error) {
	lum, err := RelativeLuminance(colour)
	if err != nil {
		return "", err
	}
	if lum > 0.5 {
		return Darken(colour, coefficient)
	}
	return Lighten(colour, coefficient)
}

// cloneValues copies a component slice so transformations never write
// through to a caller-owned Colour.
func cloneValues(values []float64) []float64 {
	out := make([]float64, len(values))
	copy(out, values)
	return out
}
