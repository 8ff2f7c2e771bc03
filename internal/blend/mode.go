// Package blend implements the per-pixel compositing functions used when
// painting a trait layer over the accumulated artwork.
//
// All functions work on premultiplied alpha values in the range 0-255 and
// follow the W3C Compositing and Blending Level 1 separable formulas:
//
//	co = cs*(1 - ab) + cb*(1 - as) + as*ab*B(Cb, Cs)
//	ao = as + ab*(1 - as)
//
// References:
//   - W3C Compositing and Blending Level 1: https://www.w3.org/TR/compositing-1/
package blend

// Mode identifies a blend function. The numeric values are shared with
// the public traitgen.BlendMode enum.
type Mode uint8

const (
	Normal     Mode = iota // Source over
	Multiply               // S * D
	Screen                 // 1 - (1-S)*(1-D)
	Overlay                // HardLight with swapped layers
	Darken                 // min(S, D)
	Lighten                // max(S, D)
	ColorDodge             // D / (1 - S)
	ColorBurn              // 1 - (1 - D) / S
	HardLight              // Multiply or Screen depending on source
	SoftLight              // Soft version of HardLight
	Difference             // |S - D|
	Exclusion              // S + D - 2*S*D

	modeCount
)

// Func is the signature of a blend function.
// Parameters:
//   - sr, sg, sb, sa: source color (premultiplied)
//   - dr, dg, db, da: destination color (premultiplied)
//
// Returns: resulting premultiplied color.
type Func func(sr, sg, sb, sa, dr, dg, db, da byte) (r, g, b, a byte)

// funcs is indexed by Mode.
var funcs = [modeCount]Func{
	Normal:     sourceOver,
	Multiply:   multiply,
	Screen:     screen,
	Overlay:    overlay,
	Darken:     darken,
	Lighten:    lighten,
	ColorDodge: colorDodge,
	ColorBurn:  colorBurn,
	HardLight:  hardLight,
	SoftLight:  softLight,
	Difference: difference,
	Exclusion:  exclusion,
}

// Valid reports whether m names a known blend function.
func (m Mode) Valid() bool {
	return m < modeCount
}

// Lookup returns the blend function for mode.
// Unknown modes fall back to source over.
func Lookup(mode Mode) Func {
	if !mode.Valid() {
		return sourceOver
	}
	return funcs[mode]
}

// sourceOver is plain alpha compositing: S + D*(1-Sa).
func sourceOver(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	if sa == 255 {
		return sr, sg, sb, sa
	}
	if sa == 0 {
		return dr, dg, db, da
	}
	inv := 255 - sa
	return clampByte(uint32(sr) + uint32(mulDiv255(dr, inv))),
		clampByte(uint32(sg) + uint32(mulDiv255(dg, inv))),
		clampByte(uint32(sb) + uint32(mulDiv255(db, inv))),
		clampByte(uint32(sa) + uint32(mulDiv255(da, inv)))
}
