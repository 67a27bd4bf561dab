// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package raster holds the pixel-buffer primitives the editor builds on.
//
// Every buffer is an *image.RGBA (premultiplied alpha). Rectangles are in the
// destination's pixel space and are clipped before use, so callers may pass
// rectangles that hang off the edge of a buffer.
package raster

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/gogpu/claydraw/internal/blend"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/math/f64"
)

// New allocates a fully transparent w×h buffer.
func New(w, h int) *image.RGBA {
	return image.NewRGBA(image.Rect(0, 0, max(w, 0), max(h, 0)))
}

// Clone returns a deep copy of src rebased to the origin.
func Clone(src *image.RGBA) *image.RGBA {
	return Crop(src, src.Bounds())
}

// Crop copies the pixels of src inside r into a new buffer of r's size.
// Parts of r outside src stay transparent.
func Crop(src *image.RGBA, r image.Rectangle) *image.RGBA {
	dst := New(r.Dx(), r.Dy())
	draw.Draw(dst, dst.Bounds(), src, r.Min, draw.Src)
	return dst
}

// ClearRect makes every pixel of dst inside r fully transparent.
func ClearRect(dst *image.RGBA, r image.Rectangle) {
	r = r.Intersect(dst.Bounds())
	if r.Empty() {
		return
	}
	for y := r.Min.Y; y < r.Max.Y; y++ {
		row := dst.Pix[dst.PixOffset(r.Min.X, y):dst.PixOffset(r.Max.X, y)]
		clear(row)
	}
}

// Fill paints c over r with the given operator.
func Fill(dst *image.RGBA, r image.Rectangle, c color.Color, mode blend.Mode) {
	r = r.Intersect(dst.Bounds())
	if r.Empty() {
		return
	}
	src := image.NewUniform(c)
	tile := New(r.Dx(), 1)
	draw.Draw(tile, tile.Bounds(), src, image.Point{}, draw.Src)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		i := dst.PixOffset(r.Min.X, y)
		blend.Span(dst.Pix[i:], tile.Pix, r.Dx(), 255, mode)
	}
}

// Composite blends src onto dst. r is the destination rectangle and sp the
// matching top-left point in src; the area is clipped to both buffers.
func Composite(dst *image.RGBA, r image.Rectangle, src *image.RGBA, sp image.Point, opacity float64, mode blend.Mode) {
	r, sp = clipTo(dst, r, src, sp)
	if r.Empty() {
		return
	}
	alpha := alphaByte(opacity)
	n := r.Dx()
	for y := 0; y < r.Dy(); y++ {
		di := dst.PixOffset(r.Min.X, r.Min.Y+y)
		si := src.PixOffset(sp.X, sp.Y+y)
		blend.Span(dst.Pix[di:di+n*4], src.Pix[si:si+n*4], n, alpha, mode)
	}
}

// DrawTransformed blends src onto the whole of dst after mapping it through
// the affine m (source to destination). Pixels outside the mapped source
// act as transparent input to the operator, as on a canvas.
func DrawTransformed(dst, src *image.RGBA, m f64.Aff3, interp xdraw.Interpolator, opacity float64, mode blend.Mode) {
	if tx, ty, ok := integerTranslation(m); ok {
		if !affectsOutside(mode) {
			Composite(dst, src.Bounds().Add(image.Pt(tx, ty)), src, src.Bounds().Min, opacity, mode)
			return
		}
	}
	if interp == nil {
		interp = xdraw.NearestNeighbor
	}
	scratch := image.NewRGBA(dst.Bounds())
	interp.Transform(scratch, m, src, src.Bounds(), xdraw.Src, nil)
	Composite(dst, dst.Bounds(), scratch, scratch.Bounds().Min, opacity, mode)
}

// DrawScaled stretches src into r on dst using bilinear sampling, then
// blends it with mode. A src the same size as r is copied without
// resampling so a pure move keeps pixels exact.
func DrawScaled(dst *image.RGBA, r image.Rectangle, src *image.RGBA, mode blend.Mode) {
	if r.Empty() || src.Bounds().Empty() {
		return
	}
	if r.Size() == src.Bounds().Size() {
		Composite(dst, r, src, src.Bounds().Min, 1, mode)
		return
	}
	scaled := New(r.Dx(), r.Dy())
	xdraw.ApproxBiLinear.Scale(scaled, scaled.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	Composite(dst, r, scaled, image.Point{}, 1, mode)
}

// Scale returns src resampled to w×h with Catmull-Rom filtering.
func Scale(src *image.RGBA, w, h int) *image.RGBA {
	dst := New(w, h)
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	return dst
}

// Rotate90 returns src rotated a quarter turn clockwise. The result is
// src.Dy() wide and src.Dx() high.
func Rotate90(src *image.RGBA) *image.RGBA {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	dst := New(h, w)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			si := src.PixOffset(b.Min.X+x, b.Min.Y+y)
			di := dst.PixOffset(h-1-y, x)
			copy(dst.Pix[di:di+4], src.Pix[si:si+4])
		}
	}
	return dst
}

// IsTransparent reports whether every pixel of img inside r has zero alpha.
func IsTransparent(img *image.RGBA, r image.Rectangle) bool {
	r = r.Intersect(img.Bounds())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			if img.Pix[img.PixOffset(x, y)+3] != 0 {
				return false
			}
		}
	}
	return true
}

func clipTo(dst *image.RGBA, r image.Rectangle, src *image.RGBA, sp image.Point) (image.Rectangle, image.Point) {
	orig := r.Min
	r = r.Intersect(dst.Bounds())
	sp = sp.Add(r.Min.Sub(orig))

	sr := image.Rectangle{Min: sp, Max: sp.Add(r.Size())}.Intersect(src.Bounds())
	r = image.Rectangle{Min: r.Min.Add(sr.Min.Sub(sp)), Max: r.Min.Add(sr.Max.Sub(sp))}
	return r, sr.Min
}

func alphaByte(opacity float64) byte {
	switch {
	case opacity <= 0:
		return 0
	case opacity >= 1:
		return 255
	}
	return byte(opacity*255 + 0.5)
}

func integerTranslation(m f64.Aff3) (int, int, bool) {
	if m[0] != 1 || m[1] != 0 || m[3] != 0 || m[4] != 1 {
		return 0, 0, false
	}
	tx, ty := int(m[2]), int(m[5])
	if float64(tx) != m[2] || float64(ty) != m[5] {
		return 0, 0, false
	}
	return tx, ty, true
}

// affectsOutside reports whether a transparent source pixel changes the
// destination under mode. Those operators must see the whole destination.
func affectsOutside(mode blend.Mode) bool {
	switch mode {
	case blend.SourceIn, blend.SourceOut, blend.DestinationIn, blend.DestinationAtop, blend.Copy:
		return true
	}
	return false
}
