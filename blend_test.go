package traitgen

import "testing"

func TestParseBlendMode(t *testing.T) {
	tests := []struct {
		in   string
		want BlendMode
	}{
		{"", BlendNormal},
		{"normal", BlendNormal},
		{"source-over", BlendNormal},
		{"Multiply", BlendMultiply},
		{" screen ", BlendScreen},
		{"overlay", BlendOverlay},
		{"darken", BlendDarken},
		{"lighten", BlendLighten},
		{"color-dodge", BlendColorDodge},
		{"color-burn", BlendColorBurn},
		{"hard-light", BlendHardLight},
		{"soft-light", BlendSoftLight},
		{"difference", BlendDifference},
		{"exclusion", BlendExclusion},
	}
	for _, tt := range tests {
		got, err := ParseBlendMode(tt.in)
		if err != nil || got != tt.want {
			t.Errorf("ParseBlendMode(%q) = %v, %v; want %v", tt.in, got, err, tt.want)
		}
	}

	if _, err := ParseBlendMode("hue"); err == nil {
		t.Error("ParseBlendMode(hue) should fail: hue is not supported")
	}
}

func TestBlendMode_String(t *testing.T) {
	for m := BlendNormal; m <= BlendExclusion; m++ {
		back, err := ParseBlendMode(m.String())
		if err != nil || back != m {
			t.Errorf("ParseBlendMode(%q) = %v, %v; want %v", m.String(), back, err, m)
		}
	}
	if got := BlendMode(200).String(); got != "BlendMode(200)" {
		t.Errorf("String() = %q", got)
	}
	if BlendMode(12).Valid() {
		t.Error("BlendMode(12) should be invalid")
	}
}
