// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package claydraw

import (
	"image"
	"math"

	"github.com/gogpu/claydraw/viewport"
	"github.com/gogpu/gg"
	"golang.org/x/image/math/f64"
)

// Overlay is the drawing API handed to OverlayDrawers. All coordinates are
// in viewport space; use Transform to map world geometry.
//
// Vector chrome is rasterised with gg and flushed onto the overlay surface
// before any image is drawn, so calls appear in the order they were made.
type Overlay struct {
	surface Surface
	view    viewport.Transform
	dc      *gg.Context
}

func newOverlay(s Surface, view viewport.Transform) *Overlay {
	return &Overlay{surface: s, view: view}
}

// Transform returns the viewport transform of the current frame.
func (o *Overlay) Transform() viewport.Transform {
	return o.view
}

// Bounds returns the overlay extent in device pixels.
func (o *Overlay) Bounds() image.Rectangle {
	return o.surface.Bounds()
}

// DrawImage stretches src into the viewport rectangle r. Rectangles with a
// zero or negative extent after normalization are skipped.
func (o *Overlay) DrawImage(src *image.RGBA, r viewport.Rect) {
	r = r.Normalize()
	sb := src.Bounds()
	if r.W <= 0 || r.H <= 0 || sb.Empty() {
		return
	}
	sx := r.W / float64(sb.Dx())
	sy := r.H / float64(sb.Dy())
	if math.IsInf(sx, 0) || math.IsInf(sy, 0) || math.IsNaN(sx) || math.IsNaN(sy) {
		return
	}
	o.flush()
	m := f64.Aff3{
		sx, 0, r.X - float64(sb.Min.X)*sx,
		0, sy, r.Y - float64(sb.Min.Y)*sy,
	}
	o.surface.DrawImage(src, m, 1, BlendNormal)
}

// StrokeRect outlines r.
func (o *Overlay) StrokeRect(r viewport.Rect, style OverlayStyle) {
	r = r.Normalize()
	dc := o.context()
	o.apply(style)
	if style.Fill != nil {
		dc.SetColor(style.Fill)
		dc.DrawRectangle(r.X, r.Y, r.W, r.H)
		if err := dc.Fill(); err != nil {
			Logger().Warn("claydraw: overlay fill failed", "err", err)
		}
	}
	dc.SetColor(style.Stroke)
	dc.DrawRectangle(r.X, r.Y, r.W, r.H)
	o.stroke(dc)
}

// StrokeEllipse outlines the ellipse inscribed in r.
func (o *Overlay) StrokeEllipse(r viewport.Rect, style OverlayStyle) {
	r = r.Normalize()
	if r.W <= 0 || r.H <= 0 {
		return
	}
	dc := o.context()
	o.apply(style)
	dc.SetColor(style.Stroke)
	dc.DrawEllipse(r.X+r.W/2, r.Y+r.H/2, r.W/2, r.H/2)
	o.stroke(dc)
}

func (o *Overlay) stroke(dc *gg.Context) {
	if err := dc.Stroke(); err != nil {
		Logger().Warn("claydraw: overlay stroke failed", "err", err)
	}
}

func (o *Overlay) apply(style OverlayStyle) {
	o.dc.SetLineWidth(1)
	if style.Dashed {
		o.dc.SetDash(6, 4)
	} else {
		o.dc.ClearDash()
	}
}

func (o *Overlay) context() *gg.Context {
	if o.dc == nil {
		b := o.surface.Bounds()
		o.dc = gg.NewContext(b.Dx(), b.Dy())
		o.dc.Translate(float64(-b.Min.X), float64(-b.Min.Y))
	}
	return o.dc
}

// flush composites pending vector chrome onto the surface.
func (o *Overlay) flush() {
	if o.dc == nil {
		return
	}
	s := &scratch{dc: o.dc, origin: o.surface.Bounds().Min}
	img := s.image()
	b := o.surface.Bounds()
	o.surface.DrawImage(img, f64.Aff3{1, 0, float64(b.Min.X), 0, 1, float64(b.Min.Y)}, 1, BlendNormal)
	if err := o.dc.Close(); err != nil {
		Logger().Warn("claydraw: overlay context close failed", "err", err)
	}
	o.dc = nil
}
