package blend

// mulDiv255 multiplies two bytes and divides by 255 with rounding.
//
// Formula: t = a*b + 128; (t + t>>8) >> 8
//
// This is Alvy Ray Smith's exact form. Output must be reproducible
// across runs, so the fast (x+255)>>8 approximation is not used.
func mulDiv255(a, b byte) byte {
	t := uint32(a)*uint32(b) + 128
	return byte((t + (t >> 8)) >> 8)
}

// unpremultiply recovers the straight channel value from a premultiplied
// channel c with alpha a.
func unpremultiply(c, a byte) byte {
	if a == 0 {
		return 0
	}
	if c >= a {
		return 255
	}
	return byte((uint32(c)*255 + uint32(a)/2) / uint32(a))
}

// clampByte restricts v to [0, 255].
func clampByte(v uint32) byte {
	if v > 255 {
		return 255
	}
	return byte(v)
}

func minByte(a, b byte) byte {
	if a < b {
		return a
	}
	return b
}

func maxByte(a, b byte) byte {
	if a > b {
		return a
	}
	return b
}
