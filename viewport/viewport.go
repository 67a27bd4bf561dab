// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package viewport maps between world space (document pixels) and viewport
// space (device pixels of the display surface).
//
// The document is centred on the surface, scaled by the zoom factor and
// shifted by the pan offset:
//
//	offsetX = (Sw - W*zoom)/2 + panX
//	offsetY = (Sh - H*zoom)/2 + panY
//
// ToViewport and FromViewport are exact inverses for a fixed Transform.
package viewport

import (
	"fmt"
	"math"

	"golang.org/x/image/math/f64"
)

// Zoom bounds. SetZoom clamps into [MinZoom, MaxZoom].
const (
	MinZoom = 0.1
	MaxZoom = 8.0
)

// Point is a 2D point in either world or viewport space.
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Sub returns p - q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Add returns p + q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Size is a width/height pair.
type Size struct {
	W, H float64
}

// Transform is the viewport state: world size, surface size, zoom and pan.
// The zero value is not useful; use New.
type Transform struct {
	World   Size
	Surface Size
	zoom    float64
	Pan     Point
}

// New returns a transform at zoom 1 with no pan.
func New(world, surface Size) Transform {
	return Transform{World: world, Surface: surface, zoom: 1}
}

// Zoom returns the current zoom factor.
func (t Transform) Zoom() float64 {
	return t.zoom
}

// SetZoom stores z clamped to [MinZoom, MaxZoom]. NaN is ignored.
func (t *Transform) SetZoom(z float64) {
	if math.IsNaN(z) {
		return
	}
	t.zoom = Clamp(z)
}

// ZoomBy multiplies the zoom by f, clamped.
func (t *Transform) ZoomBy(f float64) {
	t.SetZoom(t.zoom * f)
}

// PanBy shifts the pan offset by (dx, dy) viewport pixels. Pan is unbounded.
func (t *Transform) PanBy(dx, dy float64) {
	t.Pan.X += dx
	t.Pan.Y += dy
}

// Reset restores zoom 1 and zero pan.
func (t *Transform) Reset() {
	t.zoom = 1
	t.Pan = Point{}
}

// Resize records a new surface size. Zoom and pan are kept, so the world
// stays centred in the resized surface.
func (t *Transform) Resize(w, h float64) {
	t.Surface = Size{W: w, H: h}
}

// Clamp limits z to the supported zoom range.
func Clamp(z float64) float64 {
	return math.Min(MaxZoom, math.Max(MinZoom, z))
}

// Offset returns the viewport position of the world origin.
func (t Transform) Offset() Point {
	return Point{
		X: (t.Surface.W-t.World.W*t.zoom)/2 + t.Pan.X,
		Y: (t.Surface.H-t.World.H*t.zoom)/2 + t.Pan.Y,
	}
}

// ToViewport maps a world point to viewport space.
func (t Transform) ToViewport(p Point) Point {
	o := t.Offset()
	return Point{X: p.X*t.zoom + o.X, Y: p.Y*t.zoom + o.Y}
}

// FromViewport maps a viewport point to world space.
func (t Transform) FromViewport(p Point) Point {
	o := t.Offset()
	return Point{X: (p.X - o.X) / t.zoom, Y: (p.Y - o.Y) / t.zoom}
}

// Matrix returns the world-to-viewport affine transform.
func (t Transform) Matrix() f64.Aff3 {
	o := t.Offset()
	return f64.Aff3{
		t.zoom, 0, o.X,
		0, t.zoom, o.Y,
	}
}

// Label returns the zoom readout, e.g. "150%".
func (t Transform) Label() string {
	return fmt.Sprintf("%d%%", int(math.Round(t.zoom*100)))
}

// String implements fmt.Stringer.
func (t Transform) String() string {
	return fmt.Sprintf("viewport{zoom=%g pan=(%g,%g) world=%gx%g surface=%gx%g}",
		t.zoom, t.Pan.X, t.Pan.Y, t.World.W, t.World.H, t.Surface.W, t.Surface.H)
}
