package project

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

// ErrUnknownFormat is returned for a project file whose extension is not
// one of .yaml, .yml, .json, .jsonc or .hcl.
var ErrUnknownFormat = errors.New("project: unknown file format")

// File is a decoded project file. Unset optional fields leave the
// corresponding setting untouched when the file is applied.
type File struct {
	Name        *string `yaml:"name" json:"name" hcl:"name,optional"`
	Description *string `yaml:"description" json:"description" hcl:"description,optional"`
	EditionSize *int    `yaml:"edition_size" json:"edition_size" hcl:"edition_size,optional"`
	Width       *int    `yaml:"width" json:"width" hcl:"width,optional"`
	Height      *int    `yaml:"height" json:"height" hcl:"height,optional"`

	// LayersDir is resolved relative to the project file by Load.
	LayersDir string  `yaml:"layers_dir" json:"layers_dir" hcl:"layers_dir,optional"`
	Seed      *uint64 `yaml:"seed" json:"seed" hcl:"seed,optional"`
	Workers   int     `yaml:"workers" json:"workers" hcl:"workers,optional"`

	Background *BackgroundFile `yaml:"background" json:"background" hcl:"background,block"`

	// Layers lists the layers to paint, bottom first. When empty the
	// scanned order is used with default options.
	Layers []LayerFile `yaml:"layers" json:"layers" hcl:"layer,block"`
}

// BackgroundFile mirrors traitgen.Background.
type BackgroundFile struct {
	Generate   *bool   `yaml:"generate" json:"generate" hcl:"generate,optional"`
	Static     *bool   `yaml:"static" json:"static" hcl:"static,optional"`
	Color      *string `yaml:"color" json:"color" hcl:"color,optional"`
	Brightness *string `yaml:"brightness" json:"brightness" hcl:"brightness,optional"`
}

// LayerFile holds the options of one layer, matched to a scanned layer
// directory by Name.
type LayerFile struct {
	Name        string   `yaml:"name" json:"name" hcl:"name,label"`
	DisplayName string   `yaml:"display_name" json:"display_name" hcl:"display_name,optional"`
	Blend       string   `yaml:"blend" json:"blend" hcl:"blend,optional"`
	Opacity     *float64 `yaml:"opacity" json:"opacity" hcl:"opacity,optional"`
	BypassDNA   bool     `yaml:"bypass_dna" json:"bypass_dna" hcl:"bypass_dna,optional"`
}

// Load reads and parses the project file at path.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("project: %w", err)
	}
	f, err := Parse(data, path)
	if err != nil {
		return nil, err
	}
	if f.LayersDir != "" && !filepath.IsAbs(f.LayersDir) {
		f.LayersDir = filepath.Join(filepath.Dir(path), f.LayersDir)
	}
	return f, nil
}

// Parse decodes data in the format implied by filename's extension.
func Parse(data []byte, filename string) (*File, error) {
	var f File
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("project: parsing %s: %w", filename, err)
		}
	case ".json", ".jsonc":
		if err := json.Unmarshal(jsonc.ToJSON(data), &f); err != nil {
			return nil, fmt.Errorf("project: parsing %s: %w", filename, err)
		}
	case ".hcl":
		if err := parseHCL(data, filename, &f); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownFormat, ext)
	}
	return &f, nil
}

func parseHCL(data []byte, filename string, f *File) error {
	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCL(data, filename)
	if diags.HasErrors() {
		return fmt.Errorf("project: failed to parse HCL file %s: %w", filename, diags)
	}
	if diags := gohcl.DecodeBody(hclFile.Body, nil, f); diags.HasErrors() {
		return fmt.Errorf("project: failed to decode HCL file %s: %w", filename, diags)
	}
	return nil
}
