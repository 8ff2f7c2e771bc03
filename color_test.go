package traitgen

import (
	"image/color"
	"math"
	"testing"
)

func approx(a, b RGBA) bool {
	const eps = 1e-3
	return math.Abs(a.R-b.R) < eps && math.Abs(a.G-b.G) < eps &&
		math.Abs(a.B-b.B) < eps && math.Abs(a.A-b.A) < eps
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want RGBA
	}{
		{"#000000", Black},
		{"#fff", White},
		{"#FF0000", RGB(1, 0, 0)},
		{"00ff00", RGB(0, 1, 0)},
		{"#0000ff80", RGBA{0, 0, 1, 128.0 / 255}},
		{"#f008", RGBA{1, 0, 0, 136.0 / 255}},
		{"white", White},
		{" Transparent ", Transparent},
		{"hsl(0, 100%, 50%)", RGB(1, 0, 0)},
		{"hsl(120, 100%, 25%)", RGB(0, 0.5, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseColor(tt.in)
			if err != nil {
				t.Fatalf("ParseColor(%q) error: %v", tt.in, err)
			}
			if !approx(got, tt.want) {
				t.Errorf("ParseColor(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseColor_Invalid(t *testing.T) {
	for _, in := range []string{"", "#12", "#gggggg", "hsl(1, 2)", "hsl(x, 10%, 10%)", "rebeccapurple"} {
		if _, err := ParseColor(in); err == nil {
			t.Errorf("ParseColor(%q) should fail", in)
		}
	}
}

func TestParsePercent(t *testing.T) {
	tests := []struct {
		in      string
		want    float64
		wantErr bool
	}{
		{"80%", 0.8, false},
		{" 35 % ", 0.35, false},
		{"100", 1, false},
		{"0%", 0, false},
		{"101%", 0, true},
		{"-1%", 0, true},
		{"abc", 0, true},
	}
	for _, tt := range tests {
		got, err := ParsePercent(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParsePercent(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("ParsePercent(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestHSL(t *testing.T) {
	tests := []struct {
		h, s, l float64
		want    RGBA
	}{
		{0, 1, 0.5, RGB(1, 0, 0)},
		{120, 1, 0.5, RGB(0, 1, 0)},
		{240, 1, 0.5, RGB(0, 0, 1)},
		{360, 1, 0.5, RGB(1, 0, 0)},
		{-120, 1, 0.5, RGB(0, 0, 1)},
		{200, 0, 0.8, RGB(0.8, 0.8, 0.8)},
	}
	for _, tt := range tests {
		if got := HSL(tt.h, tt.s, tt.l); !approx(got, tt.want) {
			t.Errorf("HSL(%v, %v, %v) = %+v, want %+v", tt.h, tt.s, tt.l, got, tt.want)
		}
	}
}

func TestRGBA_Color(t *testing.T) {
	got := RGBA{1, 0.5, 0, 0.5}.Color()
	want := color.NRGBA{255, 128, 0, 128}
	if got != want {
		t.Errorf("Color() = %v, want %v", got, want)
	}
	r, g, b, a := RGBA{1, 0.5, 0, 0.5}.premultiplied()
	if r != 128 || g != 64 || b != 0 || a != 128 {
		t.Errorf("premultiplied() = (%d, %d, %d, %d), want (128, 64, 0, 128)", r, g, b, a)
	}
}
