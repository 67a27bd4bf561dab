package blend

// mulDiv255 multiplies two bytes and divides by 255 with rounding.
//
// Formula: t = a*b + 128; (t + (t >> 8)) >> 8
//
// This is Alvy Ray Smith's exact formulation. Compositing is replayed for
// history snapshots, so results must not drift between passes.
func mulDiv255(a, b byte) byte {
	t := uint32(a)*uint32(b) + 128
	return byte((t + (t >> 8)) >> 8)
}

// addClamp adds two bytes and clamps to 255.
func addClamp(a, b byte) byte {
	sum := uint16(a) + uint16(b)
	if sum > 255 {
		return 255
	}
	return byte(sum)
}

// add3Clamp adds three bytes and clamps to 255.
func add3Clamp(a, b, c byte) byte {
	sum := uint16(a) + uint16(b) + uint16(c)
	if sum > 255 {
		return 255
	}
	return byte(sum)
}

// unpremul converts a premultiplied channel back to straight color.
func unpremul(c, a byte) byte {
	if a == 0 {
		return 0
	}
	v := (uint32(c)*255 + uint32(a)/2) / uint32(a)
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
