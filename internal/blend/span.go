package blend

// Span blends n premultiplied RGBA pixels from src onto dst in place.
//
// alpha scales the source (global alpha, 255 = opaque) before the operator
// runs, matching how a canvas applies globalAlpha ahead of
// globalCompositeOperation.
func Span(dst, src []byte, n int, alpha byte, mode Mode) {
	if n <= 0 {
		return
	}
	fn := FuncFor(mode)
	for i := 0; i < n*4; i += 4 {
		sr, sg, sb, sa := src[i], src[i+1], src[i+2], src[i+3]
		if alpha != 255 {
			sr = mulDiv255(sr, alpha)
			sg = mulDiv255(sg, alpha)
			sb = mulDiv255(sb, alpha)
			sa = mulDiv255(sa, alpha)
		}
		dst[i], dst[i+1], dst[i+2], dst[i+3] = fn(sr, sg, sb, sa, dst[i], dst[i+1], dst[i+2], dst[i+3])
	}
}

// Pixel blends a single premultiplied source pixel onto a destination pixel.
func Pixel(src, dst [4]byte, mode Mode) [4]byte {
	r, g, b, a := FuncFor(mode)(src[0], src[1], src[2], src[3], dst[0], dst[1], dst[2], dst[3])
	return [4]byte{r, g, b, a}
}
