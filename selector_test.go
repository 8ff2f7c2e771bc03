package traitgen

import (
	"errors"
	"math"
	"math/rand/v2"
	"testing"
)

func TestSelector_WeightedFrequencies(t *testing.T) {
	layer := NewLayer("Eyes", trait(0, "Common", 6), trait(1, "Uncommon", 3), trait(2, "Rare", 1))
	sel := NewSelector(rand.New(rand.NewPCG(42, 7)))

	const trials = 20000
	counts := make(map[int]int)
	for i := 0; i < trials; i++ {
		e, err := sel.Pick(layer)
		if err != nil {
			t.Fatal(err)
		}
		counts[e.ID]++
	}

	total := float64(layer.TotalWeight())
	for _, e := range layer.Elements {
		want := float64(e.Weight) / total
		got := float64(counts[e.ID]) / trials
		if math.Abs(got-want) > 0.02 {
			t.Errorf("%s frequency = %.3f, want %.3f ± 0.02", e.Name, got, want)
		}
	}
}

func TestSelector_ZeroWeightElementNeverDrawn(t *testing.T) {
	layer := NewLayer("Mouth", trait(0, "Never", 0), trait(1, "Always", 4))
	sel := NewSelector(rand.New(rand.NewPCG(1, 1)))
	for i := 0; i < 1000; i++ {
		e, err := sel.Pick(layer)
		if err != nil {
			t.Fatal(err)
		}
		if e.ID != 1 {
			t.Fatalf("picked zero-weight element %q", e.Name)
		}
	}
}

func TestSelector_ZeroTotalWeight(t *testing.T) {
	layer := NewLayer("Broken", trait(0, "A", 0), trait(1, "B", 0))
	_, err := NewSelector(rand.New(rand.NewPCG(1, 1))).Select([]*Layer{layer})
	if !errors.Is(err, ErrZeroWeight) || !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("Select() error = %v, want ErrZeroWeight and ErrInvalidConfig", err)
	}
}

func TestSelector_OneTokenPerLayer(t *testing.T) {
	layers := grid(5, 2)
	dna, err := NewSelector(rand.New(rand.NewPCG(3, 3))).Select(layers)
	if err != nil {
		t.Fatal(err)
	}
	if n := len(dna.Tokens()); n != len(layers) {
		t.Errorf("Tokens() = %d, want %d", n, len(layers))
	}
}
