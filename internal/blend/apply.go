package blend

// Apply composites src over dst in place. Both slices hold premultiplied
// RGBA pixels, 4 bytes each; only the overlapping prefix is processed.
//
// opacity is a global alpha (0-255) applied to every source pixel before
// blending, the equivalent of a canvas globalAlpha.
func Apply(dst, src []byte, opacity byte, mode Mode) {
	if opacity == 0 {
		return
	}
	fn := Lookup(mode)

	n := len(dst)
	if len(src) < n {
		n = len(src)
	}
	n -= n % 4

	for i := 0; i < n; i += 4 {
		sr, sg, sb, sa := src[i], src[i+1], src[i+2], src[i+3]
		if opacity != 255 {
			sr = mulDiv255(sr, opacity)
			sg = mulDiv255(sg, opacity)
			sb = mulDiv255(sb, opacity)
			sa = mulDiv255(sa, opacity)
		}
		if sa == 0 {
			continue
		}
		dst[i], dst[i+1], dst[i+2], dst[i+3] = fn(sr, sg, sb, sa, dst[i], dst[i+1], dst[i+2], dst[i+3])
	}
}
