package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/gogpu/traitgen"
)

// sink writes artworks below an output directory.
type sink struct {
	images string
	json   string
	all    []traitgen.Metadata
}

// newSink prepares dir/images and dir/json, removing earlier output.
func newSink(dir string) (*sink, error) {
	s := &sink{
		images: filepath.Join(dir, "images"),
		json:   filepath.Join(dir, "json"),
	}
	for _, d := range []string{s.images, s.json} {
		if err := os.RemoveAll(d); err != nil {
			return nil, fmt.Errorf("cleaning %s: %w", d, err)
		}
		if err := os.MkdirAll(d, 0o755); err != nil {
			return nil, fmt.Errorf("creating %s: %w", d, err)
		}
	}
	return s, nil
}

// Write stores one edition. It has the signature of a Run consumer.
func (s *sink) Write(art *traitgen.Artwork) error {
	name := strconv.Itoa(art.Edition)
	if err := os.WriteFile(filepath.Join(s.images, name+"."+traitgen.ImageExtension), art.Image, 0o644); err != nil {
		return err
	}
	if err := writeJSON(filepath.Join(s.json, name+".json"), art.Metadata); err != nil {
		return err
	}
	s.all = append(s.all, art.Metadata)
	return nil
}

// Close writes the collection-wide metadata of every stored edition.
func (s *sink) Close() error {
	all := s.all
	if all == nil {
		all = []traitgen.Metadata{}
	}
	return writeJSON(filepath.Join(s.json, "_metadata.json"), all)
}

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func writePreview(ctx context.Context, g *traitgen.Generator, dir string) error {
	img, traits, err := g.Preview(ctx)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	path := filepath.Join(dir, "preview."+traitgen.ImageExtension)
	if err := os.WriteFile(path, img, 0o644); err != nil {
		return err
	}
	traitgen.Logger().Info("preview written", "path", path, "attributes", traitgen.Attributes(traits))
	return nil
}
