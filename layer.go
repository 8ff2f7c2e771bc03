package traitgen

import (
	"fmt"
	"strings"
)

// Layer is an ordered, named group of trait elements plus the parameters
// used to paint it. Layer order defines paint order (later layers paint
// over earlier ones) and DNA field order.
type Layer struct {
	Name        string
	DisplayName string // trait_type in metadata; defaults to Name
	Elements    []*Element
	Blend       BlendMode
	Opacity     float64 // [0, 1]

	// BypassDNA excludes this layer's selection from duplicate detection.
	BypassDNA bool
}

// NewLayer creates a layer with default rendering parameters: normal
// blending, full opacity and uniqueness enforced.
func NewLayer(name string, elements ...*Element) *Layer {
	return &Layer{
		Name:        name,
		DisplayName: name,
		Elements:    elements,
		Blend:       BlendNormal,
		Opacity:     1,
	}
}

// TotalWeight returns the sum of all element weights.
func (l *Layer) TotalWeight() int {
	total := 0
	for _, e := range l.Elements {
		total += e.Weight
	}
	return total
}

// Element returns the element with the given id.
func (l *Layer) Element(id int) (*Element, bool) {
	for _, e := range l.Elements {
		if e.ID == id {
			return e, true
		}
	}
	return nil, false
}

// IsBackground reports whether the layer name follows the reserved
// background convention: any name containing "background", ignoring case.
func (l *Layer) IsBackground() bool {
	return strings.Contains(strings.ToLower(l.Name), "background")
}

// traitType is the attribute name used in metadata.
func (l *Layer) traitType() string {
	if l.DisplayName != "" {
		return l.DisplayName
	}
	return l.Name
}

// HasBackgroundLayer reports whether any layer is a background layer.
// Synthetic background generation is disabled when one is present.
func HasBackgroundLayer(layers []*Layer) bool {
	for _, l := range layers {
		if l.IsBackground() {
			return true
		}
	}
	return false
}

// ValidateLayers checks that a layer set can be used for generation.
func ValidateLayers(layers []*Layer) error {
	if len(layers) == 0 {
		return &ConfigError{Field: "layers", Reason: "at least one layer is required"}
	}
	for i, l := range layers {
		field := fmt.Sprintf("layers[%d] %q", i, l.Name)
		if len(l.Elements) == 0 {
			return &ConfigError{Field: field, Reason: "no elements", Err: ErrEmptyLayer}
		}
		if !l.Blend.Valid() {
			return &ConfigError{Field: field, Reason: fmt.Sprintf("unknown blend mode %v", l.Blend)}
		}
		if l.Opacity < 0 || l.Opacity > 1 {
			return &ConfigError{Field: field, Reason: fmt.Sprintf("opacity %v outside [0, 1]", l.Opacity)}
		}
		seen := make(map[int]bool, len(l.Elements))
		for _, e := range l.Elements {
			if e.Weight < 0 {
				return &ConfigError{Field: field, Reason: fmt.Sprintf("element %q has negative weight %d", e.Filename, e.Weight)}
			}
			if seen[e.ID] {
				return &ConfigError{Field: field, Reason: fmt.Sprintf("duplicate element id %d", e.ID)}
			}
			seen[e.ID] = true
			if e.Source == nil {
				return &ConfigError{Field: field, Reason: fmt.Sprintf("element %q has no image source", e.Filename)}
			}
		}
		if l.TotalWeight() <= 0 {
			return &ConfigError{Field: field, Reason: "weights sum to zero", Err: ErrZeroWeight}
		}
	}
	return nil
}
