package blend

import "testing"

type px struct{ r, g, b, a byte }

func run(fn Func, s, d px) px {
	r, g, b, a := fn(s.r, s.g, s.b, s.a, d.r, d.g, d.b, d.a)
	return px{r, g, b, a}
}

func TestMulDiv255(t *testing.T) {
	tests := []struct {
		a, b, want byte
	}{
		{0, 0, 0},
		{255, 255, 255},
		{255, 0, 0},
		{255, 100, 100},
		{128, 128, 64},
		{1, 1, 0},
	}
	for _, tt := range tests {
		if got := mulDiv255(tt.a, tt.b); got != tt.want {
			t.Errorf("mulDiv255(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestUnpremultiply(t *testing.T) {
	if got := unpremultiply(10, 0); got != 0 {
		t.Errorf("unpremultiply(10, 0) = %d, want 0", got)
	}
	if got := unpremultiply(128, 128); got != 255 {
		t.Errorf("unpremultiply(128, 128) = %d, want 255", got)
	}
	if got := unpremultiply(64, 128); got != 128 {
		t.Errorf("unpremultiply(64, 128) = %d, want 128", got)
	}
}

func TestModes(t *testing.T) {
	gray := px{128, 128, 128, 255}
	white := px{255, 255, 255, 255}
	black := px{0, 0, 0, 255}

	tests := []struct {
		name string
		mode Mode
		src  px
		dst  px
		want px
	}{
		{"normal opaque replaces", Normal, px{10, 20, 30, 255}, gray, px{10, 20, 30, 255}},
		{"normal half red over blue", Normal, px{128, 0, 0, 128}, px{0, 0, 255, 255}, px{128, 0, 127, 255}},
		{"multiply white white", Multiply, white, white, white},
		{"multiply black white", Multiply, black, white, black},
		{"multiply gray gray", Multiply, gray, gray, px{64, 64, 64, 255}},
		{"screen black over 100", Screen, black, px{100, 100, 100, 255}, px{100, 100, 100, 255}},
		{"overlay gray gray", Overlay, gray, gray, gray},
		{"darken", Darken, px{50, 200, 100, 255}, px{100, 100, 100, 255}, px{50, 100, 100, 255}},
		{"lighten", Lighten, px{50, 200, 100, 255}, px{100, 100, 100, 255}, px{100, 200, 100, 255}},
		{"color dodge black keeps dst", ColorDodge, black, px{90, 90, 90, 255}, px{90, 90, 90, 255}},
		{"color dodge white saturates", ColorDodge, white, px{90, 0, 90, 255}, px{255, 0, 255, 255}},
		{"color burn white keeps dst", ColorBurn, white, px{90, 90, 90, 255}, px{90, 90, 90, 255}},
		{"hard light black", HardLight, black, gray, black},
		{"hard light white", HardLight, white, gray, white},
		{"soft light keeps black dst", SoftLight, gray, black, black},
		{"soft light keeps white dst", SoftLight, gray, white, white},
		{"difference", Difference, px{200, 50, 0, 255}, px{100, 100, 100, 255}, px{100, 50, 100, 255}},
		{"exclusion white", Exclusion, white, px{100, 100, 100, 255}, px{155, 155, 155, 255}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := run(Lookup(tt.mode), tt.src, tt.dst)
			if got != tt.want {
				t.Errorf("mode %d: got %v, want %v", tt.mode, got, tt.want)
			}
		})
	}
}

func TestModes_TransparentOperands(t *testing.T) {
	src := px{40, 80, 120, 200}
	dst := px{10, 20, 30, 255}
	for m := Mode(0); m < modeCount; m++ {
		fn := Lookup(m)
		if got := run(fn, px{}, dst); got != dst {
			t.Errorf("mode %d with transparent source = %v, want %v", m, got, dst)
		}
		if got := run(fn, src, px{}); got != src {
			t.Errorf("mode %d over transparent destination = %v, want %v", m, got, src)
		}
	}
}

func TestLookup_Unknown(t *testing.T) {
	if modeCount.Valid() {
		t.Fatal("modeCount should not be valid")
	}
	got := run(Lookup(modeCount), px{128, 0, 0, 128}, px{0, 0, 255, 255})
	want := px{128, 0, 127, 255}
	if got != want {
		t.Errorf("unknown mode = %v, want source over %v", got, want)
	}
}

func TestApply(t *testing.T) {
	t.Run("zero opacity", func(t *testing.T) {
		dst := []byte{1, 2, 3, 4}
		Apply(dst, []byte{255, 255, 255, 255}, 0, Normal)
		if dst[0] != 1 || dst[3] != 4 {
			t.Errorf("dst modified: %v", dst)
		}
	})

	t.Run("half opacity over transparent", func(t *testing.T) {
		dst := make([]byte, 8)
		src := []byte{255, 0, 0, 255, 0, 255, 0, 255}
		Apply(dst, src, 128, Normal)
		want := []byte{128, 0, 0, 128, 0, 128, 0, 128}
		for i := range want {
			if dst[i] != want[i] {
				t.Fatalf("dst = %v, want %v", dst, want)
			}
		}
	})

	t.Run("shorter source", func(t *testing.T) {
		dst := []byte{0, 0, 0, 255, 9, 9, 9, 255}
		Apply(dst, []byte{255, 255, 255, 255}, 255, Multiply)
		if dst[0] != 0 || dst[4] != 9 {
			t.Errorf("dst = %v", dst)
		}
	})
}
