package blend

import "math"

// separable applies a per-channel blend function B(s, d) that operates on
// unmultiplied values, then recombines with the standard formula:
//
//	(1 - Sa) * D + (1 - Da) * S + Sa * Da * B(Sc, Dc)
func separable(sr, sg, sb, sa, dr, dg, db, da byte, fn func(s, d byte) byte) (byte, byte, byte, byte) {
	if sa == 0 {
		return dr, dg, db, da
	}
	if da == 0 {
		return sr, sg, sb, sa
	}

	invSa := 255 - sa
	invDa := 255 - da
	saDa := mulDiv255(sa, da)

	channel := func(s, d byte) byte {
		b := fn(unpremultiply(s, sa), unpremultiply(d, da))
		return clampByte(uint32(mulDiv255(d, invSa)) +
			uint32(mulDiv255(s, invDa)) +
			uint32(mulDiv255(saDa, b)))
	}

	return channel(sr, dr), channel(sg, dg), channel(sb, db),
		clampByte(uint32(sa) + uint32(mulDiv255(da, invSa)))
}

// multiply: B(Cb, Cs) = Cb * Cs
func multiply(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return separable(sr, sg, sb, sa, dr, dg, db, da, mulDiv255)
}

// screen: B(Cb, Cs) = 1 - (1 - Cb) * (1 - Cs)
func screen(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return separable(sr, sg, sb, sa, dr, dg, db, da, screenChannel)
}

func screenChannel(s, d byte) byte {
	return 255 - mulDiv255(255-s, 255-d)
}

// hardLightChannel: Multiply(Cb, 2*Cs) when Cs <= 0.5, else Screen(Cb, 2*Cs - 1).
func hardLightChannel(s, d byte) byte {
	if s <= 127 {
		return mulDiv255(d, clampByte(2*uint32(s)))
	}
	return screenChannel(clampByte(2*uint32(s)-255), d)
}

// overlay: HardLight(Cs, Cb), the layers swapped.
func overlay(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return separable(sr, sg, sb, sa, dr, dg, db, da, func(s, d byte) byte {
		return hardLightChannel(d, s)
	})
}

func darken(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return separable(sr, sg, sb, sa, dr, dg, db, da, minByte)
}

func lighten(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return separable(sr, sg, sb, sa, dr, dg, db, da, maxByte)
}

// colorDodge: B = 0 if Cb == 0, 1 if Cs == 1, else min(1, Cb / (1 - Cs))
func colorDodge(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return separable(sr, sg, sb, sa, dr, dg, db, da, func(s, d byte) byte {
		if d == 0 {
			return 0
		}
		if s == 255 {
			return 255
		}
		return clampByte(uint32(d) * 255 / uint32(255-s))
	})
}

// colorBurn: B = 1 if Cb == 1, 0 if Cs == 0, else 1 - min(1, (1 - Cb) / Cs)
func colorBurn(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return separable(sr, sg, sb, sa, dr, dg, db, da, func(s, d byte) byte {
		if d == 255 {
			return 255
		}
		if s == 0 {
			return 0
		}
		return 255 - clampByte(uint32(255-d)*255/uint32(s))
	})
}

func hardLight(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return separable(sr, sg, sb, sa, dr, dg, db, da, hardLightChannel)
}

// softLight:
//
//	Cs <= 0.5: Cb - (1 - 2*Cs) * Cb * (1 - Cb)
//	otherwise: Cb + (2*Cs - 1) * (D(Cb) - Cb)
//	D(x) = ((16*x - 12)*x + 4)*x when x <= 0.25, else sqrt(x)
func softLight(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return separable(sr, sg, sb, sa, dr, dg, db, da, func(s, d byte) byte {
		sf := float64(s) / 255
		df := float64(d) / 255

		var result float64
		if sf <= 0.5 {
			result = df - (1-2*sf)*df*(1-df)
		} else {
			dx := math.Sqrt(df)
			if df <= 0.25 {
				dx = ((16*df-12)*df + 4) * df
			}
			result = df + (2*sf-1)*(dx-df)
		}

		switch {
		case result <= 0:
			return 0
		case result >= 1:
			return 255
		}
		return byte(math.Round(result * 255))
	})
}

// difference: B = |Cb - Cs|
func difference(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return separable(sr, sg, sb, sa, dr, dg, db, da, func(s, d byte) byte {
		if s > d {
			return s - d
		}
		return d - s
	})
}

// exclusion: B = Cb + Cs - 2 * Cb * Cs
func exclusion(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return separable(sr, sg, sb, sa, dr, dg, db, da, func(s, d byte) byte {
		v := int(s) + int(d) - 2*int(mulDiv255(s, d))
		if v < 0 {
			return 0
		}
		return clampByte(uint32(v))
	})
}
