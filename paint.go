// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package claydraw

import (
	"image"
	"image/color"
	"math"
	"sync"

	"github.com/gogpu/claydraw/internal/raster"
	"github.com/gogpu/claydraw/viewport"
	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/draw"
	"golang.org/x/image/font/gofont/goregular"
)

// Brush holds the colour and size tools paint with.
type Brush struct {
	// Color is a CSS hex colour: "#rgb", "#rrggbb" or "#rrggbbaa".
	Color string `yaml:"color"`

	// Size is the stroke width in world pixels.
	Size int `yaml:"size"`
}

// DefaultBrush is a 4 px black brush.
var DefaultBrush = Brush{Color: "#000000", Size: 4}

func (b Brush) rgba() gg.RGBA {
	return gg.Hex(b.Color)
}

// fillColor is the brush colour with alpha 0x44, used to fill shapes.
func (b Brush) fillColor() gg.RGBA {
	c := b.rgba()
	c.A = float64(0x44) / 255
	return c
}

func (b Brush) width() float64 {
	return float64(max(b.Size, 1))
}

// textSize is the font size of the text tool for this brush.
func (b Brush) textSize() float64 {
	return math.Max(12, float64(b.Size)*6)
}

// shapeKind selects the outline drawn by the shape tools.
type shapeKind int

const (
	shapeRect shapeKind = iota
	shapeEllipse
)

// scratch is a gg drawing context covering a padded world-space box. Paths
// are given in world coordinates; the context is translated so its pixels
// line up with the box.
type scratch struct {
	dc     *gg.Context
	origin image.Point
}

func newScratch(box image.Rectangle) *scratch {
	dc := gg.NewContext(box.Dx(), box.Dy())
	dc.Translate(float64(-box.Min.X), float64(-box.Min.Y))
	return &scratch{dc: dc, origin: box.Min}
}

// image returns the rasterised pixels as premultiplied RGBA.
func (s *scratch) image() *image.RGBA {
	img := s.dc.Image()
	if rgba, ok := img.(*image.RGBA); ok {
		return rgba
	}
	out := image.NewRGBA(img.Bounds())
	draw.Draw(out, out.Bounds(), img, img.Bounds().Min, draw.Src)
	return out
}

// stampInto blends the scratch pixels onto dst at the scratch origin.
func (s *scratch) stampInto(dst *image.RGBA, mode BlendMode) {
	img := s.image()
	r := img.Bounds().Sub(img.Bounds().Min).Add(s.origin)
	raster.Composite(dst, r, img, img.Bounds().Min, 1, mode)
}

// paddedBox returns the integer box around the given world points grown by
// pad on each side, clipped to bounds.
func paddedBox(bounds image.Rectangle, pad float64, pts ...viewport.Point) image.Rectangle {
	if len(pts) == 0 {
		return image.Rectangle{}
	}
	minX, minY := pts[0].X, pts[0].Y
	maxX, maxY := minX, minY
	for _, p := range pts[1:] {
		minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
		minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
	}
	r := image.Rect(
		int(math.Floor(minX-pad)), int(math.Floor(minY-pad)),
		int(math.Ceil(maxX+pad))+1, int(math.Ceil(maxY+pad))+1,
	)
	return r.Intersect(bounds)
}

// strokeSegment paints a round-capped line from a to b onto dst. With
// BlendDestinationOut the line erases instead of painting.
func strokeSegment(dst *image.RGBA, a, b viewport.Point, brush Brush, mode BlendMode) {
	box := paddedBox(dst.Bounds(), brush.width(), a, b)
	if box.Empty() {
		return
	}
	s := newScratch(box)
	s.dc.SetColor(brush.rgba().Color())
	s.dc.SetLineWidth(brush.width())
	s.dc.SetLineCap(gg.LineCapRound)
	s.dc.SetLineJoin(gg.LineJoinRound)
	s.dc.MoveTo(a.X, a.Y)
	s.dc.LineTo(b.X, b.Y)
	if err := s.dc.Stroke(); err != nil {
		Logger().Warn("claydraw: stroke failed", "err", err)
		return
	}
	s.stampInto(dst, mode)
}

// paintShape fills r with the translucent brush colour and then strokes its
// outline at the brush width.
func paintShape(dst *image.RGBA, r viewport.Rect, kind shapeKind, brush Brush) {
	r = r.Normalize()
	if kind == shapeEllipse && (r.W <= 0 || r.H <= 0) {
		return
	}
	box := paddedBox(dst.Bounds(), brush.width(), r.Min(), r.Max())
	if box.Empty() {
		return
	}
	s := newScratch(box)
	trace := func() {
		switch kind {
		case shapeEllipse:
			s.dc.DrawEllipse(r.X+r.W/2, r.Y+r.H/2, r.W/2, r.H/2)
		default:
			s.dc.DrawRectangle(r.X, r.Y, r.W, r.H)
		}
	}

	s.dc.SetColor(brush.fillColor().Color())
	trace()
	if err := s.dc.Fill(); err != nil {
		Logger().Warn("claydraw: shape fill failed", "err", err)
	}

	s.dc.SetColor(brush.rgba().Color())
	s.dc.SetLineWidth(brush.width())
	trace()
	if err := s.dc.Stroke(); err != nil {
		Logger().Warn("claydraw: shape stroke failed", "err", err)
	}
	s.stampInto(dst, BlendNormal)
}

// paintText draws s with its top-left corner at p.
func paintText(dst *image.RGBA, p viewport.Point, s string, brush Brush, src *text.FontSource) {
	if src == nil {
		return
	}
	face := src.Face(brush.textSize())
	text.Draw(dst, s, face, p.X, p.Y+face.Metrics().Ascent, brush.rgba().Color())
}

// defaultFontSource returns the Go Regular face used when no font was
// configured. It is parsed once.
var defaultFontSource = sync.OnceValues(func() (*text.FontSource, error) {
	return text.NewFontSource(goregular.TTF)
})

// OverlayStyle is the look of overlay chrome drawn with Overlay.StrokeRect
// and Overlay.StrokeEllipse. A nil Fill leaves the interior empty.
type OverlayStyle struct {
	Stroke color.Color
	Fill   color.Color
	Dashed bool
}

// Overlay styles used by the built-in tools.
var (
	MarqueeStyle = OverlayStyle{Stroke: gg.Hex("#3b82f6aa").Color(), Dashed: true}
	HandleStyle  = OverlayStyle{Stroke: gg.Hex("#3b82f6").Color(), Fill: color.White}
	PreviewStyle = OverlayStyle{Stroke: gg.Hex("#00000055").Color(), Dashed: true}
)
