package traitgen

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"testing"
)

// solid returns a 2x2 image filled with c.
func solid(c color.Color) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: c}, image.Point{}, draw.Src)
	return img
}

// trait returns an element backed by an opaque gray image.
func trait(id int, name string, weight int) *Element {
	return &Element{
		ID:       id,
		Name:     name,
		Filename: fmt.Sprintf("%s#%d.png", name, weight),
		Weight:   weight,
		Source:   StaticImage(solid(color.Gray{Y: uint8(40 * (id + 1))})),
	}
}

// grid builds layers named L0, L1, ... each holding n equally weighted
// elements.
func grid(layers, n int) []*Layer {
	out := make([]*Layer, layers)
	for i := range out {
		elems := make([]*Element, n)
		for j := range elems {
			elems[j] = trait(j, fmt.Sprintf("T%d_%d", i, j), 1)
		}
		out[i] = NewLayer(fmt.Sprintf("L%d", i), elems...)
	}
	return out
}

func testConfig(editions int) Config {
	cfg := DefaultConfig()
	cfg.NamePrefix = "Test"
	cfg.Description = "test collection"
	cfg.EditionSize = editions
	cfg.Width = 4
	cfg.Height = 4
	cfg.Background.Generate = false
	return cfg
}

// collect runs g to the end and returns every delivered artwork.
func collect(t *testing.T, g *Generator) ([]*Artwork, Summary, error) {
	t.Helper()
	var arts []*Artwork
	sum, err := g.Run(context.Background(), func(a *Artwork) error {
		arts = append(arts, a)
		return nil
	})
	return arts, sum, err
}

func decodePNG(t *testing.T, data []byte) image.Image {
	t.Helper()
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("png.Decode: %v", err)
	}
	return img
}

func encodePNG(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("png.Encode: %v", err)
	}
	return buf.Bytes()
}
