package project

import (
	"fmt"

	"github.com/gogpu/traitgen"
)

// Config overlays the file's settings on base.
func (f *File) Config(base traitgen.Config) traitgen.Config {
	cfg := base
	setString(&cfg.NamePrefix, f.Name)
	setString(&cfg.Description, f.Description)
	setInt(&cfg.EditionSize, f.EditionSize)
	setInt(&cfg.Width, f.Width)
	setInt(&cfg.Height, f.Height)

	if bg := f.Background; bg != nil {
		if bg.Generate != nil {
			cfg.Background.Generate = *bg.Generate
		}
		if bg.Static != nil {
			cfg.Background.Static = *bg.Static
		}
		setString(&cfg.Background.Color, bg.Color)
		setString(&cfg.Background.Brightness, bg.Brightness)
	}
	return cfg
}

// Options returns the generator options the file sets.
func (f *File) Options() []traitgen.Option {
	var opts []traitgen.Option
	if f.Seed != nil {
		opts = append(opts, traitgen.WithSeed(*f.Seed))
	}
	if f.Workers > 0 {
		opts = append(opts, traitgen.WithWorkers(f.Workers))
	}
	return opts
}

// ApplyLayers orders and configures scanned layers. Only the layers named in
// the file are returned, in file order; naming a layer that was not
// scanned, or naming one twice, is an error.
func (f *File) ApplyLayers(scanned []*traitgen.Layer) ([]*traitgen.Layer, error) {
	if len(f.Layers) == 0 {
		return scanned, nil
	}

	byName := make(map[string]*traitgen.Layer, len(scanned))
	for _, l := range scanned {
		byName[l.Name] = l
	}

	out := make([]*traitgen.Layer, 0, len(f.Layers))
	used := make(map[string]bool, len(f.Layers))
	for _, lf := range f.Layers {
		l, ok := byName[lf.Name]
		if !ok {
			return nil, fmt.Errorf("project: layer %q not found in layers directory", lf.Name)
		}
		if used[lf.Name] {
			return nil, fmt.Errorf("project: layer %q listed twice", lf.Name)
		}
		used[lf.Name] = true

		configured := *l
		if err := lf.apply(&configured); err != nil {
			return nil, err
		}
		out = append(out, &configured)
	}
	return out, nil
}

func (lf LayerFile) apply(l *traitgen.Layer) error {
	if lf.DisplayName != "" {
		l.DisplayName = lf.DisplayName
	}
	mode, err := traitgen.ParseBlendMode(lf.Blend)
	if err != nil {
		return fmt.Errorf("project: layer %q: %w", lf.Name, err)
	}
	l.Blend = mode
	if lf.Opacity != nil {
		l.Opacity = *lf.Opacity
	}
	l.BypassDNA = lf.BypassDNA
	return nil
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

func setInt(dst *int, v *int) {
	if v != nil {
		*dst = *v
	}
}
