// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package claydraw

import (
	"fmt"
	"image"
	"math"

	"github.com/gogpu/claydraw/internal/raster"
	"golang.org/x/image/math/f64"
)

// Layer is one raster buffer of the document stack.
//
// The buffer always matches the document size. Opacity is kept in [0, 1].
type Layer struct {
	Name    string
	Visible bool
	Opacity float64
	Blend   BlendMode
	Locked  bool

	img *image.RGBA
}

func newLayer(name string, width, height int) *Layer {
	return &Layer{
		Name:    name,
		Visible: true,
		Opacity: 1,
		Blend:   BlendNormal,
		img:     raster.New(width, height),
	}
}

// Image returns the layer's pixels. Edits made through it are invisible on
// screen until the next render.
func (l *Layer) Image() *image.RGBA {
	return l.img
}

// Document is an ordered stack of equally sized layers.
//
// Layers are stored bottom to top. A Document always holds at least one
// layer and its active index is always valid.
type Document struct {
	width  int
	height int
	layers []*Layer
	active int
	serial int
}

// NewDocument creates a document with a single transparent layer.
func NewDocument(width, height int) *Document {
	d := &Document{width: max(width, 1), height: max(height, 1)}
	d.Reset()
	return d
}

// Width returns the document width in pixels.
func (d *Document) Width() int {
	return d.width
}

// Height returns the document height in pixels.
func (d *Document) Height() int {
	return d.height
}

// Bounds returns the document rectangle in world space.
func (d *Document) Bounds() image.Rectangle {
	return image.Rect(0, 0, d.width, d.height)
}

// Len returns the number of layers.
func (d *Document) Len() int {
	return len(d.layers)
}

// Layers returns the layers bottom to top. The slice is a copy; the
// layers are shared.
func (d *Document) Layers() []*Layer {
	out := make([]*Layer, len(d.layers))
	copy(out, d.layers)
	return out
}

// Layer returns the layer at index i.
func (d *Document) Layer(i int) (*Layer, error) {
	if i < 0 || i >= len(d.layers) {
		return nil, fmt.Errorf("%w: %d of %d", ErrLayerIndex, i, len(d.layers))
	}
	return d.layers[i], nil
}

// Active returns the current layer.
func (d *Document) Active() *Layer {
	return d.layers[d.active]
}

// ActiveIndex returns the index of the current layer.
func (d *Document) ActiveIndex() int {
	return d.active
}

// AddLayer appends a transparent layer on top and makes it current.
func (d *Document) AddLayer() *Layer {
	d.serial++
	l := newLayer(fmt.Sprintf("Layer %d", d.serial), d.width, d.height)
	d.layers = append(d.layers, l)
	d.active = len(d.layers) - 1
	return l
}

// RemoveLayer deletes the layer at index i. The active index moves down
// when the removed layer was at or below it.
func (d *Document) RemoveLayer(i int) error {
	if _, err := d.Layer(i); err != nil {
		return err
	}
	if len(d.layers) == 1 {
		return ErrLastLayer
	}
	d.layers = append(d.layers[:i], d.layers[i+1:]...)
	if d.active >= i && d.active > 0 {
		d.active--
	}
	return nil
}

// MoveLayer moves the layer at index from to index to, shifting the layers
// in between. The active layer stays the same layer.
func (d *Document) MoveLayer(from, to int) error {
	if _, err := d.Layer(from); err != nil {
		return err
	}
	if _, err := d.Layer(to); err != nil {
		return err
	}
	if from == to {
		return nil
	}
	current := d.layers[d.active]
	l := d.layers[from]
	d.layers = append(d.layers[:from], d.layers[from+1:]...)
	d.layers = append(d.layers[:to], append([]*Layer{l}, d.layers[to:]...)...)
	for i, x := range d.layers {
		if x == current {
			d.active = i
		}
	}
	return nil
}

// SetActive makes layer i current.
func (d *Document) SetActive(i int) error {
	if _, err := d.Layer(i); err != nil {
		return err
	}
	d.active = i
	return nil
}

// SetVisible shows or hides layer i.
func (d *Document) SetVisible(i int, visible bool) error {
	l, err := d.Layer(i)
	if err != nil {
		return err
	}
	l.Visible = visible
	return nil
}

// SetOpacity sets layer i's opacity, clamped to [0, 1].
func (d *Document) SetOpacity(i int, opacity float64) error {
	l, err := d.Layer(i)
	if err != nil {
		return err
	}
	if math.IsNaN(opacity) {
		opacity = 1
	}
	l.Opacity = math.Min(1, math.Max(0, opacity))
	return nil
}

// SetBlend sets layer i's blend mode.
func (d *Document) SetBlend(i int, mode BlendMode) error {
	l, err := d.Layer(i)
	if err != nil {
		return err
	}
	if !mode.Valid() {
		return fmt.Errorf("claydraw: invalid blend mode %d", mode)
	}
	l.Blend = mode
	return nil
}

// Rename sets layer i's display name.
func (d *Document) Rename(i int, name string) error {
	l, err := d.Layer(i)
	if err != nil {
		return err
	}
	l.Name = name
	return nil
}

// SetLocked locks or unlocks layer i. Tools leave locked layers untouched.
func (d *Document) SetLocked(i int, locked bool) error {
	l, err := d.Layer(i)
	if err != nil {
		return err
	}
	l.Locked = locked
	return nil
}

// Resize rescales every layer to width×height, preserving content
// proportionally. Layer order and the active index are unchanged.
func (d *Document) Resize(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	for _, l := range d.layers {
		l.img = raster.Scale(l.img, width, height)
	}
	d.width, d.height = width, height
	return nil
}

// Rotate turns every layer a quarter turn clockwise and swaps the document
// width and height. Layer order and the active index are unchanged.
func (d *Document) Rotate() {
	for _, l := range d.layers {
		l.img = raster.Rotate90(l.img)
	}
	d.width, d.height = d.height, d.width
}

// Reset discards all layers and starts over with one transparent layer.
func (d *Document) Reset() {
	d.layers = nil
	d.serial = 0
	d.AddLayer()
}

// ReplaceWith collapses the document to a single layer holding img.
// The document takes the size of img.
func (d *Document) ReplaceWith(img *image.RGBA) {
	b := img.Bounds()
	d.width, d.height = b.Dx(), b.Dy()
	d.Reset()
	raster.Composite(d.layers[0].img, d.Bounds(), img, b.Min, 1, BlendNormal)
}

// CompositeTo draws every visible layer onto s, bottom to top, through the
// world-to-surface affine m with each layer's opacity and blend mode.
// Blend modes do not commute, so stack order is preserved exactly.
func (d *Document) CompositeTo(s Surface, m f64.Aff3) {
	for _, l := range d.layers {
		if !l.Visible {
			continue
		}
		s.DrawImage(l.img, m, l.Opacity, l.Blend)
	}
}

// Flatten composites the visible layers at document resolution into a new
// buffer.
func (d *Document) Flatten() *image.RGBA {
	out := NewPixmapSurface(d.width, d.height)
	d.CompositeTo(out, identity)
	return out.Image()
}

var identity = f64.Aff3{1, 0, 0, 0, 1, 0}
