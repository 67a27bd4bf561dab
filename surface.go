// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package claydraw

import (
	"image"

	"github.com/gogpu/claydraw/internal/raster"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/math/f64"
)

// Surface is a drawable target the renderer paints into.
//
// A Surface is an abstraction over the display: a window backbuffer, a GPU
// texture, or (PixmapSurface) a plain CPU buffer for headless use and
// tests. The renderer needs only these four operations.
type Surface interface {
	// Bounds returns the surface extent in device pixels.
	Bounds() image.Rectangle

	// Clear makes every pixel fully transparent.
	Clear()

	// DrawImage blends src through the source-to-surface affine m with the
	// given global alpha and operator.
	DrawImage(src *image.RGBA, m f64.Aff3, opacity float64, mode BlendMode)

	// ReadRegion copies the pixels inside r into a new buffer.
	ReadRegion(r image.Rectangle) *image.RGBA
}

// PixmapSurface is a CPU-backed Surface using *image.RGBA.
//
// Example:
//
//	display := claydraw.NewPixmapSurface(800, 600)
//	ed := claydraw.NewEditor(claydraw.WithDisplay(display))
//	ed.RequestRender()
//	img := display.Image()
type PixmapSurface struct {
	img *image.RGBA

	// Interpolator samples layers when the zoom is not 1.
	// Nil means nearest-neighbour, which keeps pixels crisp when zoomed in.
	Interpolator xdraw.Interpolator
}

// NewPixmapSurface creates a transparent surface of the given size.
func NewPixmapSurface(width, height int) *PixmapSurface {
	return &PixmapSurface{img: raster.New(width, height)}
}

// NewPixmapSurfaceFromImage wraps an existing *image.RGBA without copying.
func NewPixmapSurfaceFromImage(img *image.RGBA) *PixmapSurface {
	return &PixmapSurface{img: img}
}

// Bounds returns the surface extent.
func (s *PixmapSurface) Bounds() image.Rectangle {
	return s.img.Bounds()
}

// Clear makes every pixel fully transparent.
func (s *PixmapSurface) Clear() {
	clear(s.img.Pix)
}

// DrawImage blends src onto the surface through m.
func (s *PixmapSurface) DrawImage(src *image.RGBA, m f64.Aff3, opacity float64, mode BlendMode) {
	raster.DrawTransformed(s.img, src, m, s.Interpolator, opacity, mode)
}

// ReadRegion copies the pixels inside r into a new buffer.
func (s *PixmapSurface) ReadRegion(r image.Rectangle) *image.RGBA {
	return raster.Crop(s.img, r)
}

// Resize reallocates the surface. Existing content is discarded.
func (s *PixmapSurface) Resize(width, height int) {
	if s.img.Bounds().Dx() == width && s.img.Bounds().Dy() == height {
		return
	}
	s.img = raster.New(width, height)
}

// Image returns the underlying buffer. It is valid until the next Resize.
func (s *PixmapSurface) Image() *image.RGBA {
	return s.img
}

// resizer is implemented by surfaces that can follow the container size.
type resizer interface {
	Resize(width, height int)
}

var (
	_ Surface = (*PixmapSurface)(nil)
	_ resizer = (*PixmapSurface)(nil)
)
