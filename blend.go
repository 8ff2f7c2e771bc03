package traitgen

import (
	"fmt"
	"strings"

	"github.com/gogpu/traitgen/internal/blend"
)

// BlendMode selects the compositing function used when a layer is painted
// over the accumulated artwork. The set is closed; the zero value is
// BlendNormal.
type BlendMode uint8

// Blend modes.
const (
	// BlendNormal performs standard alpha blending (source over destination).
	BlendNormal BlendMode = BlendMode(blend.Normal)

	// BlendMultiply multiplies source and destination colors.
	BlendMultiply BlendMode = BlendMode(blend.Multiply)

	// BlendScreen performs inverse multiply for lighter results.
	BlendScreen BlendMode = BlendMode(blend.Screen)

	// BlendOverlay multiplies dark and screens bright destination areas.
	BlendOverlay BlendMode = BlendMode(blend.Overlay)

	BlendDarken     BlendMode = BlendMode(blend.Darken)
	BlendLighten    BlendMode = BlendMode(blend.Lighten)
	BlendColorDodge BlendMode = BlendMode(blend.ColorDodge)
	BlendColorBurn  BlendMode = BlendMode(blend.ColorBurn)
	BlendHardLight  BlendMode = BlendMode(blend.HardLight)
	BlendSoftLight  BlendMode = BlendMode(blend.SoftLight)
	BlendDifference BlendMode = BlendMode(blend.Difference)
	BlendExclusion  BlendMode = BlendMode(blend.Exclusion)
)

var blendNames = [...]string{
	BlendNormal:     "normal",
	BlendMultiply:   "multiply",
	BlendScreen:     "screen",
	BlendOverlay:    "overlay",
	BlendDarken:     "darken",
	BlendLighten:    "lighten",
	BlendColorDodge: "color-dodge",
	BlendColorBurn:  "color-burn",
	BlendHardLight:  "hard-light",
	BlendSoftLight:  "soft-light",
	BlendDifference: "difference",
	BlendExclusion:  "exclusion",
}

// String returns the CSS name of the blend mode.
func (m BlendMode) String() string {
	if !m.Valid() {
		return fmt.Sprintf("BlendMode(%d)", uint8(m))
	}
	return blendNames[m]
}

// Valid reports whether m is one of the defined blend modes.
func (m BlendMode) Valid() bool {
	return int(m) < len(blendNames)
}

// ParseBlendMode parses a CSS blend mode name. The empty string and the
// canvas operator name "source-over" both mean BlendNormal.
func ParseBlendMode(s string) (BlendMode, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "" || name == "source-over" {
		return BlendNormal, nil
	}
	for i, n := range blendNames {
		if n == name {
			return BlendMode(i), nil
		}
	}
	return BlendNormal, fmt.Errorf("unknown blend mode %q", s)
}
