package traitgen

import (
	"fmt"
	"math/rand/v2"
)

// Background is the synthetic background policy.
type Background struct {
	// Generate enables a background fill below the first layer.
	Generate bool

	// Static selects Color; otherwise a random hue is used per edition.
	Static bool

	// Color is the static fill, see ParseColor.
	Color string

	// Brightness is the lightness of random-hue fills, e.g. "80%".
	// Empty means DefaultBrightness.
	Brightness string
}

// DefaultBrightness is the lightness used for random-hue backgrounds.
const DefaultBrightness = "80%"

// fill returns the color for one edition's background.
func (b Background) fill(rng *rand.Rand) (RGBA, error) {
	if b.Static && b.Color != "" {
		return ParseColor(b.Color)
	}
	light, err := b.lightness()
	if err != nil {
		return RGBA{}, err
	}
	hue := float64(rng.IntN(360))
	return HSL(hue, 1, light), nil
}

func (b Background) lightness() (float64, error) {
	if b.Brightness == "" {
		return ParsePercent(DefaultBrightness)
	}
	return ParsePercent(b.Brightness)
}

// Config holds the immutable parameters of a generation run.
type Config struct {
	// NamePrefix names each edition "<NamePrefix> #<edition>".
	NamePrefix string

	// Description is copied into every metadata record.
	Description string

	// EditionSize is the number of artworks to generate.
	EditionSize int

	// Width and Height are the output size in pixels.
	Width  int
	Height int

	Background Background
}

// DefaultConfig returns the settings used when nothing is configured.
func DefaultConfig() Config {
	return Config{
		NamePrefix:  "My NFT Collection",
		Description: "A unique NFT collection",
		EditionSize: 5,
		Width:       512,
		Height:      512,
		Background: Background{
			Generate:   true,
			Brightness: DefaultBrightness,
			Color:      "#000000",
		},
	}
}

// Validate reports the first invalid field as a *ConfigError.
func (c Config) Validate() error {
	switch {
	case c.EditionSize < 1:
		return &ConfigError{Field: "edition size", Reason: fmt.Sprintf("%d is less than 1", c.EditionSize)}
	case c.Width < 1:
		return &ConfigError{Field: "width", Reason: fmt.Sprintf("%d is less than 1", c.Width)}
	case c.Height < 1:
		return &ConfigError{Field: "height", Reason: fmt.Sprintf("%d is less than 1", c.Height)}
	}

	bg := c.Background
	if !bg.Generate {
		return nil
	}
	if bg.Static && bg.Color != "" {
		if _, err := ParseColor(bg.Color); err != nil {
			return &ConfigError{Field: "background color", Reason: "cannot parse", Err: err}
		}
		return nil
	}
	if _, err := bg.lightness(); err != nil {
		return &ConfigError{Field: "background brightness", Reason: "cannot parse", Err: err}
	}
	return nil
}
