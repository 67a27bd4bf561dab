package blend

import "math"

// separableBlend applies a per-channel blend function B(s, d) operating on
// unmultiplied channels and folds the result back into premultiplied space:
//
//	Result = (1 - Sa) * D + (1 - Da) * S + Sa * Da * B(Cs, Cb)
//	Alpha  = Sa + Da * (1 - Sa)
func separableBlend(sr, sg, sb, sa, dr, dg, db, da byte, blendChan func(s, d byte) byte) (byte, byte, byte, byte) {
	if sa == 0 {
		return dr, dg, db, da
	}
	if da == 0 {
		return sr, sg, sb, sa
	}

	br := blendChan(unpremul(sr, sa), unpremul(dr, da))
	bg := blendChan(unpremul(sg, sa), unpremul(dg, da))
	bb := blendChan(unpremul(sb, sa), unpremul(db, da))

	invSa, invDa := 255-sa, 255-da
	saDa := mulDiv255(sa, da)

	return add3Clamp(mulDiv255(dr, invSa), mulDiv255(sr, invDa), mulDiv255(saDa, br)),
		add3Clamp(mulDiv255(dg, invSa), mulDiv255(sg, invDa), mulDiv255(saDa, bg)),
		add3Clamp(mulDiv255(db, invSa), mulDiv255(sb, invDa), mulDiv255(saDa, bb)),
		addClamp(sa, mulDiv255(da, invSa))
}

// B(Cb, Cs) = Cb * Cs
func multiply(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return separableBlend(sr, sg, sb, sa, dr, dg, db, da, mulDiv255)
}

// B(Cb, Cs) = 1 - (1 - Cb) * (1 - Cs)
func screen(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return separableBlend(sr, sg, sb, sa, dr, dg, db, da, screenChan)
}

func screenChan(s, d byte) byte {
	return 255 - mulDiv255(255-s, 255-d)
}

// hardLightChan is Multiply(Cb, 2*Cs) for Cs <= 0.5, Screen(Cb, 2*Cs - 1) otherwise.
func hardLightChan(s, d byte) byte {
	if s <= 127 {
		return mulDiv255(s*2, d)
	}
	return screenChan(byte(2*uint16(s)-255), d)
}

// Overlay is HardLight with the layers swapped.
func overlay(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return separableBlend(sr, sg, sb, sa, dr, dg, db, da, func(s, d byte) byte {
		return hardLightChan(d, s)
	})
}

func hardLight(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return separableBlend(sr, sg, sb, sa, dr, dg, db, da, hardLightChan)
}

func darken(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return separableBlend(sr, sg, sb, sa, dr, dg, db, da, minByte)
}

func lighten(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return separableBlend(sr, sg, sb, sa, dr, dg, db, da, maxByte)
}

// B(Cb, Cs) = Cb == 0 ? 0 : Cs == 1 ? 1 : min(1, Cb / (1 - Cs))
func colorDodge(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return separableBlend(sr, sg, sb, sa, dr, dg, db, da, func(s, d byte) byte {
		if d == 0 {
			return 0
		}
		if s == 255 {
			return 255
		}
		v := uint32(d) * 255 / uint32(255-s)
		if v > 255 {
			return 255
		}
		return byte(v)
	})
}

// B(Cb, Cs) = Cb == 1 ? 1 : Cs == 0 ? 0 : 1 - min(1, (1 - Cb) / Cs)
func colorBurn(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return separableBlend(sr, sg, sb, sa, dr, dg, db, da, func(s, d byte) byte {
		if d == 255 {
			return 255
		}
		if s == 0 {
			return 0
		}
		v := uint32(255-d) * 255 / uint32(s)
		if v > 255 {
			return 0
		}
		return 255 - byte(v)
	})
}

func softLight(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return separableBlend(sr, sg, sb, sa, dr, dg, db, da, func(s, d byte) byte {
		sf := float64(s) / 255
		df := float64(d) / 255

		var v float64
		if sf <= 0.5 {
			v = df - (1-2*sf)*df*(1-df)
		} else {
			var dx float64
			if df <= 0.25 {
				dx = ((16*df-12)*df + 4) * df
			} else {
				dx = math.Sqrt(df)
			}
			v = df + (2*sf-1)*(dx-df)
		}
		return unit(v)
	})
}

// B(Cb, Cs) = |Cb - Cs|
func difference(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return separableBlend(sr, sg, sb, sa, dr, dg, db, da, func(s, d byte) byte {
		if s > d {
			return s - d
		}
		return d - s
	})
}

// B(Cb, Cs) = Cb + Cs - 2 * Cb * Cs
func exclusion(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return separableBlend(sr, sg, sb, sa, dr, dg, db, da, func(s, d byte) byte {
		v := int(s) + int(d) - 2*int(mulDiv255(s, d))
		if v < 0 {
			return 0
		}
		if v > 255 {
			return 255
		}
		return byte(v)
	})
}

// unit converts a [0, 1] float to a byte with rounding and clamping.
func unit(v float64) byte {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return byte(v*255 + 0.5)
}
