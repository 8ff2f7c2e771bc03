package project

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func ptr[T any](v T) *T { return &v }

func wantFile() *File {
	return &File{
		Name:        ptr("Space Cats"),
		EditionSize: ptr(20),
		Width:       ptr(256),
		LayersDir:   "layers",
		Seed:        ptr(uint64(7)),
		Workers:     2,
		Background: &BackgroundFile{
			Generate:   ptr(true),
			Brightness: ptr("70%"),
		},
		Layers: []LayerFile{
			{Name: "Background"},
			{Name: "Glow", DisplayName: "Aura", Blend: "screen", Opacity: ptr(0.5), BypassDNA: true},
		},
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		filename string
		data     string
	}{
		{"project.yaml", `
name: Space Cats
edition_size: 20
width: 256
layers_dir: layers
seed: 7
workers: 2
background:
  generate: true
  brightness: 70%
layers:
  - name: Background
  - name: Glow
    display_name: Aura
    blend: screen
    opacity: 0.5
    bypass_dna: true
`},
		{"project.jsonc", `{
  // collection settings
  "name": "Space Cats",
  "edition_size": 20,
  "width": 256,
  "layers_dir": "layers",
  "seed": 7,
  "workers": 2,
  "background": {"generate": true, "brightness": "70%"},
  /* paint order */
  "layers": [
    {"name": "Background"},
    {"name": "Glow", "display_name": "Aura", "blend": "screen", "opacity": 0.5, "bypass_dna": true},
  ],
}`},
		{"project.hcl", `
name         = "Space Cats"
edition_size = 20
width        = 256
layers_dir   = "layers"
seed         = 7
workers      = 2

background {
  generate   = true
  brightness = "70%"
}

layer "Background" {}

layer "Glow" {
  display_name = "Aura"
  blend        = "screen"
  opacity      = 0.5
  bypass_dna   = true
}
`},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			got, err := Parse([]byte(tt.data), tt.filename)
			if err != nil {
				t.Fatalf("Parse: %v", err)
			}
			if diff := cmp.Diff(wantFile(), got); diff != "" {
				t.Errorf("Parse mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParse_Errors(t *testing.T) {
	if _, err := Parse([]byte("name = 1"), "project.toml"); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("Parse(.toml) = %v, want ErrUnknownFormat", err)
	}
	for name, data := range map[string]string{
		"bad.yaml": "name: [unclosed",
		"bad.json": `{"edition_size": "many"}`,
		"bad.hcl":  `layer {`,
	} {
		if _, err := Parse([]byte(data), name); err == nil {
			t.Errorf("Parse(%s) should fail", name)
		}
	}
}

func TestLoad_ResolvesLayersDir(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "traitgen.yml")
	if err := os.WriteFile(path, []byte("layers_dir: art/layers\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	f, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if want := filepath.Join(dir, "art", "layers"); f.LayersDir != want {
		t.Errorf("LayersDir = %q, want %q", f.LayersDir, want)
	}

	if _, err := Load(filepath.Join(dir, "missing.yml")); err == nil {
		t.Error("Load should fail for a missing file")
	}
}
