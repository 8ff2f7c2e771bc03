package traitgen

import (
	"context"
	"fmt"
	"image"
	"io/fs"
	"path"
	"strings"

	// Decoders for trait assets.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// ImageSource provides the image of a trait element. Load may perform
// I/O; it is called once per edition that selects the element unless the
// generator's raster cache already holds it.
type ImageSource interface {
	Load(ctx context.Context) (image.Image, error)
}

// ImageSourceFunc adapts a function to ImageSource.
type ImageSourceFunc func(ctx context.Context) (image.Image, error)

// Load calls f(ctx).
func (f ImageSourceFunc) Load(ctx context.Context) (image.Image, error) {
	return f(ctx)
}

// StaticImage returns an ImageSource for an already decoded image.
func StaticImage(img image.Image) ImageSource {
	return ImageSourceFunc(func(context.Context) (image.Image, error) {
		return img, nil
	})
}

// FileSource loads and decodes an image file from a file system.
type FileSource struct {
	FS   fs.FS
	Path string
}

// Load opens and decodes the file. PNG, JPEG, GIF, WebP, BMP and TIFF
// are supported.
func (s FileSource) Load(ctx context.Context) (image.Image, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f, err := s.FS.Open(s.Path)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = f.Close()
	}()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", s.Path, err)
	}
	return img, nil
}

var imageExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".webp": true,
	".bmp":  true,
	".tif":  true,
	".tiff": true,
}

// IsImageFile reports whether name has an extension of a supported
// image format.
func IsImageFile(name string) bool {
	return imageExtensions[strings.ToLower(path.Ext(name))]
}
