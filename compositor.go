package traitgen

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"math/rand/v2"

	xdraw "golang.org/x/image/draw"

	"github.com/gogpu/traitgen/internal/blend"
)

// Paint is one resolved layer ready to be composited: an image together
// with the blend mode and opacity of its layer.
type Paint struct {
	Image   image.Image
	Blend   BlendMode
	Opacity float64
}

// Compositor paints an edition into a fixed-size buffer. It holds no DNA
// knowledge: callers hand it already resolved images in paint order.
//
// Scaling uses nearest-neighbor sampling only, so pixel art stays sharp
// and output is deterministic. A Compositor reuses its buffer across
// editions and is not safe for concurrent use.
type Compositor struct {
	buf     *Pixmap
	scratch *image.RGBA
	encoder png.Encoder
}

// NewCompositor creates a compositor producing width x height images.
func NewCompositor(width, height int) *Compositor {
	return &Compositor{
		buf:     NewPixmap(width, height),
		scratch: image.NewRGBA(image.Rect(0, 0, width, height)),
		encoder: png.Encoder{CompressionLevel: png.DefaultCompression},
	}
}

// Width returns the output width.
func (c *Compositor) Width() int { return c.buf.Width() }

// Height returns the output height.
func (c *Compositor) Height() int { return c.buf.Height() }

// Clear resets the buffer to fully transparent.
func (c *Compositor) Clear() {
	c.buf.Reset()
}

// Fill replaces the whole buffer with a solid color.
func (c *Compositor) Fill(col RGBA) {
	c.buf.Fill(col)
}

// DrawBackground fills the buffer according to bg. Static backgrounds use
// bg.Color; otherwise the hue is drawn uniformly from [0, 360) with full
// saturation and the configured brightness as lightness. Nothing is
// drawn when bg.Generate is false.
func (c *Compositor) DrawBackground(bg Background, rng *rand.Rand) error {
	if !bg.Generate {
		return nil
	}
	col, err := bg.fill(rng)
	if err != nil {
		return err
	}
	c.Fill(col)
	return nil
}

// Scale returns img resampled to the buffer size with nearest-neighbor
// sampling, as premultiplied RGBA.
func (c *Compositor) Scale(img image.Image) *image.RGBA {
	dst := image.NewRGBA(c.buf.Bounds())
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), img, img.Bounds(), xdraw.Src, nil)
	return dst
}

// DrawLayer composites img, scaled to the buffer size, using mode and a
// global alpha equal to opacity.
func (c *Compositor) DrawLayer(img image.Image, mode BlendMode, opacity float64) {
	src, ok := img.(*image.RGBA)
	if !ok || !src.Bounds().Eq(c.buf.Bounds()) || src.Stride != 4*c.buf.Width() {
		xdraw.NearestNeighbor.Scale(c.scratch, c.scratch.Bounds(), img, img.Bounds(), xdraw.Src, nil)
		src = c.scratch
	}
	blend.Apply(c.buf.Data(), src.Pix, to8(opacity), blend.Mode(mode))
}

// Compose clears the buffer, draws the background described by bg and
// then every paint in order.
func (c *Compositor) Compose(bg Background, rng *rand.Rand, paints []Paint) error {
	c.Clear()
	if err := c.DrawBackground(bg, rng); err != nil {
		return err
	}
	for _, p := range paints {
		c.DrawLayer(p.Image, p.Blend, p.Opacity)
	}
	return nil
}

// Image returns a copy of the current buffer.
func (c *Compositor) Image() *image.RGBA {
	return c.buf.ToImage()
}

// Finalize encodes the buffer as PNG.
func (c *Compositor) Finalize() ([]byte, error) {
	var out bytes.Buffer
	if err := c.encoder.Encode(&out, c.buf.ToImage()); err != nil {
		return nil, fmt.Errorf("traitgen: encoding png: %w", err)
	}
	return out.Bytes(), nil
}
