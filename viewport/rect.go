// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package viewport

import (
	"image"
	"math"
)

// Rect is an axis-aligned rectangle given by origin and extent. W and H may
// be negative while a drag is in progress; call Normalize before using it
// for pixel work.
type Rect struct {
	X, Y, W, H float64
}

// Normalize flips negative extents into positive ones, moving the origin so
// the covered area is unchanged.
func (r Rect) Normalize() Rect {
	return Rect{
		X: math.Min(r.X, r.X+r.W),
		Y: math.Min(r.Y, r.Y+r.H),
		W: math.Abs(r.W),
		H: math.Abs(r.H),
	}
}

// Min returns the origin corner.
func (r Rect) Min() Point {
	return Point{X: r.X, Y: r.Y}
}

// Max returns the corner opposite the origin.
func (r Rect) Max() Point {
	return Point{X: r.X + r.W, Y: r.Y + r.H}
}

// Translate returns r moved by d.
func (r Rect) Translate(d Point) Rect {
	r.X += d.X
	r.Y += d.Y
	return r
}

// Contains reports whether p lies inside the normalized rectangle, edges
// included.
func (r Rect) Contains(p Point) bool {
	n := r.Normalize()
	return p.X >= n.X && p.X <= n.X+n.W && p.Y >= n.Y && p.Y <= n.Y+n.H
}

// Empty reports whether the normalized rectangle is narrower or shorter
// than one unit.
func (r Rect) Empty() bool {
	n := r.Normalize()
	return n.W < 1 || n.H < 1
}

// Pixels returns the integer pixel rectangle covering the normalized r:
// origin floored, far edge ceiled.
func (r Rect) Pixels() image.Rectangle {
	n := r.Normalize()
	return image.Rect(
		int(math.Floor(n.X)), int(math.Floor(n.Y)),
		int(math.Ceil(n.X+n.W)), int(math.Ceil(n.Y+n.H)),
	)
}

// Round returns the pixel rectangle of the normalized r with every edge
// rounded to the nearest integer.
func (r Rect) Round() image.Rectangle {
	n := r.Normalize()
	return image.Rect(
		int(math.Round(n.X)), int(math.Round(n.Y)),
		int(math.Round(n.X+n.W)), int(math.Round(n.Y+n.H)),
	)
}

// RectOf returns the pixel rectangle r as a Rect.
func RectOf(r image.Rectangle) Rect {
	return Rect{X: float64(r.Min.X), Y: float64(r.Min.Y), W: float64(r.Dx()), H: float64(r.Dy())}
}

// RectFrom returns the rectangle spanned by two corner points, unnormalized.
func RectFrom(a, b Point) Rect {
	return Rect{X: a.X, Y: a.Y, W: b.X - a.X, H: b.Y - a.Y}
}

// ToViewportRect maps a world rectangle to a normalized viewport rectangle.
func (t Transform) ToViewportRect(r Rect) Rect {
	tl := t.ToViewport(r.Min())
	br := t.ToViewport(r.Max())
	return RectFrom(tl, br).Normalize()
}

// FromViewportRect maps a viewport rectangle to a normalized world rectangle.
func (t Transform) FromViewportRect(r Rect) Rect {
	tl := t.FromViewport(r.Min())
	br := t.FromViewport(r.Max())
	return RectFrom(tl, br).Normalize()
}
