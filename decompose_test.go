package csscolour

import (
	"errors"
	"math"
	"testing"
)

// equalValues compares component slices treating NaN as equal to NaN.
func equalValues(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if math.IsNaN(a[i]) && math.IsNaN(b[i]) {
			continue
		}
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestDecompose(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Colour
	}{
		{
			name:  "rgb",
			input: "rgb(255, 0, 0)",
			want:  Colour{Kind: KindRGB, Values: []float64{255, 0, 0}},
		},
		{
			name:  "rgba",
			input: "rgba(12, 34, 56, 0.25)",
			want:  Colour{Kind: KindRGBA, Values: []float64{12, 34, 56, 0.25}},
		},
		{
			name:  "hsl with percent signs",
			input: "hsl(180, 50%, 50%)",
			want:  Colour{Kind: KindHSL, Values: []float64{180, 50, 50}},
		},
		{
			name:  "hsla",
			input: "hsla(180, 50%, 50%, 0.5)",
			want:  Colour{Kind: KindHSLA, Values: []float64{180, 50, 50, 0.5}},
		},
		{
			name:  "shorthand hex",
			input: "#fff",
			want:  Colour{Kind: KindRGB, Values: []float64{255, 255, 255}},
		},
		{
			name:  "full hex",
			input: "#1a2b3c",
			want:  Colour{Kind: KindRGB, Values: []float64{26, 43, 60}},
		},
		{
			name:  "hex with alpha",
			input: "#11223344",
			want:  Colour{Kind: KindRGBA, Values: []float64{17, 34, 51, 0.267}},
		},
		{
			name:  "fractional components",
			input: "rgb(1.5, 2.25, 3)",
			want:  Colour{Kind: KindRGB, Values: []float64{1.5, 2.25, 3}},
		},
		{
			name:  "loose whitespace",
			input: "rgb( 255 , 128 , 0 )",
			want:  Colour{Kind: KindRGB, Values: []float64{255, 128, 0}},
		},
		{
			name:  "out of range values pass through",
			input: "hsl(-30, 120%, 50%)",
			want:  Colour{Kind: KindHSL, Values: []float64{-30, 120, 50}},
		},
		{
			name:  "unparseable entry becomes NaN",
			input: "rgb(255, x, 0)",
			want:  Colour{Kind: KindRGB, Values: []float64{255, math.NaN(), 0}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decompose(tt.input)
			if err != nil {
				t.Fatalf("Decompose(%q) error = %v", tt.input, err)
			}
			if got.Kind != tt.want.Kind {
				t.Errorf("Decompose(%q) kind = %q, want %q", tt.input, got.Kind, tt.want.Kind)
			}
			if !equalValues(got.Values, tt.want.Values) {
				t.Errorf("Decompose(%q) values = %v, want %v", tt.input, got.Values, tt.want.Values)
			}
		})
	}
}

func TestDecomposePassThrough(t *testing.T) {
	c := Colour{Kind: KindRGBA, Values: []float64{1, 2, 3, 0.5}}
	got, err := Decompose(c)
	if err != nil {
		t.Fatalf("Decompose(Colour) error = %v", err)
	}
	if got.Kind != c.Kind || !equalValues(got.Values, c.Values) {
		t.Errorf("Decompose(Colour) = %+v, want %+v", got, c)
	}
}

func TestDecomposeUnsupported(t *testing.T) {
	tests := []struct {
		name  string
		input any
	}{
		{name: "unknown function", input: "unsupported(1, 2, 3)"},
		{name: "named colour", input: "red"},
		{name: "missing parenthesis", input: "rgb 1, 2, 3"},
		{name: "empty string", input: ""},
		{name: "malformed hex", input: "#zzz"},
		{name: "hex with bad length", input: "#12345"},
		{name: "unrecognised kind in Colour", input: Colour{Kind: "cmyk", Values: []float64{0, 0, 0, 1}}},
		{name: "not a colour at all", input: 42},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decompose(tt.input)
			if err == nil {
				t.Fatalf("Decompose(%v) expected error, got none", tt.input)
			}
			var formatErr *UnsupportedFormatError
			if !errors.As(err, &formatErr) {
				t.Errorf("Decompose(%v) error = %T, want *UnsupportedFormatError", tt.input, err)
			}
		})
	}
}

func TestDecomposeErrorCarriesInput(t *testing.T) {
	_, err := Decompose("unsupported(1, 2, 3)")
	var formatErr *UnsupportedFormatError
	if !errors.As(err, &formatErr) {
		t.Fatalf("expected *UnsupportedFormatError, got %T", err)
	}
	if formatErr.Input != "unsupported(1, 2, 3)" {
		t.Errorf("Input = %q, want the offending string", formatErr.Input)
	}

	_, err = Decompose("#zzz")
	if !errors.As(err, &formatErr) {
		t.Fatalf("expected *UnsupportedFormatError, got %T", err)
	}
	if formatErr.Input != "#zzz" {
		t.Errorf("Input = %q, want the original hex string", formatErr.Input)
	}
}

func TestRecompose(t *testing.T) {
	tests := []struct {
		name   string
		colour Colour
		want   string
	}{
		{
			name:   "rgb truncates channels",
			colour: Colour{Kind: KindRGB, Values: []float64{255.7, 0.2, 10}},
			want:   "rgb(255, 0, 10)",
		},
		{
			name:   "truncation is toward zero",
			colour: Colour{Kind: KindRGB, Values: []float64{-10.5, 0, 0}},
			want:   "rgb(-10, 0, 0)",
		},
		{
			name:   "rgba keeps alpha untruncated",
			colour: Colour{Kind: KindRGBA, Values: []float64{1, 2, 3, 0.45}},
			want:   "rgba(1, 2, 3, 0.45)",
		},
		{
			name:   "hsl gains percent signs",
			colour: Colour{Kind: KindHSL, Values: []float64{180, 50, 50}},
			want:   "hsl(180, 50%, 50%)",
		},
		{
			name:   "hsla keeps fractional saturation",
			colour: Colour{Kind: KindHSLA, Values: []float64{180, 42.5, 50, 0.2}},
			want:   "hsla(180, 42.5%, 50%, 0.2)",
		},
		{
			name:   "NaN channel survives",
			colour: Colour{Kind: KindRGB, Values: []float64{math.NaN(), 0, 0}},
			want:   "rgb(NaN, 0, 0)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Recompose(tt.colour); got != tt.want {
				t.Errorf("Recompose(%+v) = %q, want %q", tt.colour, got, tt.want)
			}
		})
	}
}

func TestRecomposeDecomposeRoundTrip(t *testing.T) {
	colours := []Colour{
		{Kind: KindRGB, Values: []float64{0, 128, 255}},
		{Kind: KindRGBA, Values: []float64{10, 20, 30, 0.4}},
		{Kind: KindHSL, Values: []float64{210, 33, 66}},
		{Kind: KindHSLA, Values: []float64{359, 42.5, 10, 0.125}},
	}

	for _, c := range colours {
		got, err := Decompose(Recompose(c))
		if err != nil {
			t.Fatalf("Decompose(Recompose(%+v)) error = %v", c, err)
		}
		if got.Kind != c.Kind || !equalValues(got.Values, c.Values) {
			t.Errorf("Decompose(Recompose(%+v)) = %+v", c, got)
		}
	}
}

func TestDecomposeRecomposeRoundTrip(t *testing.T) {
	inputs := []string{
		"rgb(255, 0, 0)",
		"rgba(1, 2, 3, 0.5)",
		"hsl(180, 50%, 50%)",
		"hsla(359, 100%, 10%, 0.25)",
	}

	for _, input := range inputs {
		c, err := Decompose(input)
		if err != nil {
			t.Fatalf("Decompose(%q) error = %v", input, err)
		}
		if got := Recompose(c); got != input {
			t.Errorf("Recompose(Decompose(%q)) = %q", input, got)
		}
	}
}

func TestParseLeadingFloat(t *testing.T) {
	tests := []struct {
		input string
		want  float64
	}{
		{input: "255", want: 255},
		{input: " 128 ", want: 128},
		{input: "0.5", want: 0.5},
		{input: "-30", want: -30},
		{input: "50%", want: 50},
		{input: ".25", want: 0.25},
		{input: "5.", want: 5},
		{input: "1e2", want: 100},
		{input: "1e", want: 1},
		{input: "", want: math.NaN()},
		{input: "x", want: math.NaN()},
		{input: ".", want: math.NaN()},
		{input: "-", want: math.NaN()},
	}

	for _, tt := range tests {
		got := parseLeadingFloat(tt.input)
		if math.IsNaN(tt.want) {
			if !math.IsNaN(got) {
				t.Errorf("parseLeadingFloat(%q) = %v, want NaN", tt.input, got)
			}
			continue
		}
		if got != tt.want {
			t.Errorf("parseLeadingFloat(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}
