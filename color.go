package traitgen

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"
)

// RGBA represents a color with red, green, blue, and alpha components.
// Each component is in the range [0, 1] and is not premultiplied.
type RGBA struct {
	R, G, B, A float64
}

// Common colors
var (
	Black       = RGB(0, 0, 0)
	White       = RGB(1, 1, 1)
	Transparent = RGBA{}
)

// RGB creates an opaque color from RGB components.
func RGB(r, g, b float64) RGBA {
	return RGBA{R: r, G: g, B: b, A: 1.0}
}

// Color converts RGBA to the standard color.Color interface.
func (c RGBA) Color() color.Color {
	return color.NRGBA{R: to8(c.R), G: to8(c.G), B: to8(c.B), A: to8(c.A)}
}

// premultiplied returns the color as premultiplied 8-bit channels.
func (c RGBA) premultiplied() (r, g, b, a byte) {
	return to8(c.R * c.A), to8(c.G * c.A), to8(c.B * c.A), to8(c.A)
}

func to8(v float64) byte {
	return byte(math.Round(clamp01(v) * 255))
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// HSL creates a color from HSL values.
// h is hue [0, 360), s is saturation [0, 1], l is lightness [0, 1].
func HSL(h, s, l float64) RGBA {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	h /= 360

	c := (1 - math.Abs(2*l-1)) * s
	x := c * (1 - math.Abs(math.Mod(h*6, 2)-1))
	m := l - c/2

	var r, g, b float64
	switch {
	case h < 1.0/6:
		r, g, b = c, x, 0
	case h < 2.0/6:
		r, g, b = x, c, 0
	case h < 3.0/6:
		r, g, b = 0, c, x
	case h < 4.0/6:
		r, g, b = 0, x, c
	case h < 5.0/6:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}

	return RGB(r+m, g+m, b+m)
}

var namedColors = map[string]RGBA{
	"black":       Black,
	"white":       White,
	"transparent": Transparent,
}

// ParseColor parses the color notations accepted for a static
// background: "#RGB", "#RGBA", "#RRGGBB", "#RRGGBBAA",
// "hsl(h, s%, l%)" and the names black, white and transparent.
func ParseColor(s string) (RGBA, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if c, ok := namedColors[s]; ok {
		return c, nil
	}
	if strings.HasPrefix(s, "hsl(") && strings.HasSuffix(s, ")") {
		return parseHSL(s[4 : len(s)-1])
	}
	return parseHex(s)
}

func parseHex(s string) (RGBA, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) == 3 || len(hex) == 4 {
		var b strings.Builder
		for _, r := range hex {
			b.WriteRune(r)
			b.WriteRune(r)
		}
		hex = b.String()
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	if len(hex) != 8 {
		return RGBA{}, fmt.Errorf("unsupported color %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return RGBA{}, fmt.Errorf("unsupported color %q", s)
	}
	return RGBA{
		R: float64(v>>24&0xff) / 255,
		G: float64(v>>16&0xff) / 255,
		B: float64(v>>8&0xff) / 255,
		A: float64(v&0xff) / 255,
	}, nil
}

func parseHSL(body string) (RGBA, error) {
	parts := strings.Split(body, ",")
	if len(parts) != 3 {
		return RGBA{}, fmt.Errorf("unsupported color hsl(%s)", body)
	}
	h, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return RGBA{}, fmt.Errorf("hsl hue: %w", err)
	}
	sat, err := ParsePercent(parts[1])
	if err != nil {
		return RGBA{}, fmt.Errorf("hsl saturation: %w", err)
	}
	light, err := ParsePercent(parts[2])
	if err != nil {
		return RGBA{}, fmt.Errorf("hsl lightness: %w", err)
	}
	return HSL(h, sat, light), nil
}

// ParsePercent parses "80%" (or a bare "80") into a fraction in [0, 1].
func ParsePercent(s string) (float64, error) {
	s = strings.TrimSuffix(strings.TrimSpace(s), "%")
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("percentage %q: %w", s, err)
	}
	if v < 0 || v > 100 {
		return 0, fmt.Errorf("percentage %q out of range [0, 100]", s)
	}
	return v / 100, nil
}
