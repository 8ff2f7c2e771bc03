package traitgen

import (
	"fmt"
	"math/rand/v2"
)

// Selector draws one element per layer proportionally to weight.
// A Selector is not safe for concurrent use; parallel workers each own one.
type Selector struct {
	rng *rand.Rand
}

// NewSelector creates a selector drawing from rng.
func NewSelector(rng *rand.Rand) *Selector {
	return &Selector{rng: rng}
}

// Pick draws one element of layer. Each element owns a contiguous range
// of [0, TotalWeight) as wide as its weight; the element whose range
// contains the draw is returned.
func (s *Selector) Pick(layer *Layer) (*Element, error) {
	total := layer.TotalWeight()
	if total <= 0 {
		return nil, &ConfigError{
			Field:  fmt.Sprintf("layer %q", layer.Name),
			Reason: "weights sum to zero",
			Err:    ErrZeroWeight,
		}
	}

	r := s.rng.IntN(total)
	for _, e := range layer.Elements {
		r -= e.Weight
		if r < 0 {
			return e, nil
		}
	}
	// Unreachable while weights are non-negative.
	return layer.Elements[len(layer.Elements)-1], nil
}

// Select draws every layer independently and returns the encoded DNA.
func (s *Selector) Select(layers []*Layer) (DNA, error) {
	selections := make([]Selection, len(layers))
	for i, l := range layers {
		e, err := s.Pick(l)
		if err != nil {
			return "", err
		}
		selections[i] = Selection{Layer: l, Element: e}
	}
	return EncodeDNA(selections), nil
}
