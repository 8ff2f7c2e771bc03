package traitgen

import (
	"errors"
	"testing"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{"default ok", func(*Config) {}, ""},
		{"zero editions", func(c *Config) { c.EditionSize = 0 }, "edition size"},
		{"zero width", func(c *Config) { c.Width = 0 }, "width"},
		{"negative height", func(c *Config) { c.Height = -4 }, "height"},
		{"bad static color", func(c *Config) {
			c.Background = Background{Generate: true, Static: true, Color: "#zz"}
		}, "background color"},
		{"bad brightness", func(c *Config) { c.Background.Brightness = "200%" }, "background brightness"},
		{"bad brightness ignored when disabled", func(c *Config) {
			c.Background = Background{Generate: false, Brightness: "nope"}
		}, ""},
		{"static without color uses random hue", func(c *Config) {
			c.Background = Background{Generate: true, Static: true}
		}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.field == "" {
				if err != nil {
					t.Fatalf("Validate() = %v, want nil", err)
				}
				return
			}
			var ce *ConfigError
			if !errors.As(err, &ce) || ce.Field != tt.field {
				t.Fatalf("Validate() = %v, want ConfigError on %q", err, tt.field)
			}
			if !errors.Is(err, ErrInvalidConfig) {
				t.Error("ConfigError should match ErrInvalidConfig")
			}
		})
	}
}

func TestValidateLayers(t *testing.T) {
	tests := []struct {
		name    string
		layers  func() []*Layer
		wantErr error
	}{
		{"ok", func() []*Layer { return grid(2, 2) }, nil},
		{"no layers", func() []*Layer { return nil }, ErrInvalidConfig},
		{"empty layer", func() []*Layer { return []*Layer{NewLayer("Empty")} }, ErrEmptyLayer},
		{"zero weight", func() []*Layer {
			return []*Layer{NewLayer("Z", trait(0, "a", 0), trait(1, "b", 0))}
		}, ErrZeroWeight},
		{"negative weight", func() []*Layer {
			l := grid(1, 2)
			l[0].Elements[0].Weight = -1
			return l
		}, ErrInvalidConfig},
		{"opacity", func() []*Layer {
			l := grid(1, 1)
			l[0].Opacity = 1.5
			return l
		}, ErrInvalidConfig},
		{"blend", func() []*Layer {
			l := grid(1, 1)
			l[0].Blend = BlendMode(99)
			return l
		}, ErrInvalidConfig},
		{"duplicate id", func() []*Layer {
			return []*Layer{NewLayer("D", trait(1, "a", 1), trait(1, "b", 1))}
		}, ErrInvalidConfig},
		{"missing source", func() []*Layer {
			return []*Layer{NewLayer("S", &Element{ID: 0, Name: "a", Weight: 1})}
		}, ErrInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateLayers(tt.layers())
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("ValidateLayers() = %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateLayers() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestLayer_IsBackground(t *testing.T) {
	for name, want := range map[string]bool{
		"Background":      true,
		"backgrounds":     true,
		"01 Background A": true,
		"Body":            false,
		"BG":              false,
	} {
		if got := NewLayer(name).IsBackground(); got != want {
			t.Errorf("IsBackground(%q) = %v, want %v", name, got, want)
		}
	}
}
