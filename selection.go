// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package claydraw

import (
	"fmt"
	"image"
	"math"
	"strings"

	"github.com/gogpu/claydraw/internal/raster"
	"github.com/gogpu/claydraw/viewport"
)

// SelectMode is the state of the selection state machine.
type SelectMode uint8

// Selection states.
const (
	SelectNone SelectMode = iota
	SelectCreating
	SelectMoving
	SelectResizing
)

func (m SelectMode) String() string {
	switch m {
	case SelectNone:
		return "none"
	case SelectCreating:
		return "creating"
	case SelectMoving:
		return "moving"
	case SelectResizing:
		return "resizing"
	}
	return fmt.Sprintf("SelectMode(%d)", uint8(m))
}

// Handle is one of the eight resize handles of a selection.
type Handle uint8

// Handles in hit-test order: corners and edge midpoints, clockwise from
// the top-left corner.
const (
	HandleNW Handle = iota
	HandleN
	HandleNE
	HandleE
	HandleSE
	HandleS
	HandleSW
	HandleW

	handleCount
)

var handleNames = [handleCount]string{"nw", "n", "ne", "e", "se", "s", "sw", "w"}

// String returns the compass name of h, e.g. "se".
func (h Handle) String() string {
	if h < handleCount {
		return handleNames[h]
	}
	return fmt.Sprintf("Handle(%d)", uint8(h))
}

func (h Handle) left() bool   { return strings.Contains(h.String(), "w") }
func (h Handle) right() bool  { return strings.Contains(h.String(), "e") }
func (h Handle) top() bool    { return strings.Contains(h.String(), "n") }
func (h Handle) bottom() bool { return strings.Contains(h.String(), "s") }

// Selection is the marquee selection controller driven by the select tool.
//
// A drag on empty space creates a rectangle; on release the pixels under
// it are captured from the active layer. Dragging the body moves the
// rectangle and dragging a handle resizes it. Releasing a move or resize
// clears the original area and stamps the captured pixels into the new
// rectangle, so the result is a cut and paste done once at commit time.
type Selection struct {
	active     bool
	rect       viewport.Rect // world space, possibly unnormalized
	original   viewport.Rect
	snapshot   *image.RGBA
	mode       SelectMode
	handle     Handle
	last       viewport.Point // viewport space
	handleSize float64
}

func newSelection(handleSize float64) *Selection {
	return &Selection{handleSize: handleSize}
}

// Active reports whether a selection exists.
func (s *Selection) Active() bool {
	return s.active
}

// Rect returns the current rectangle in world space. It may have a
// negative width or height while a resize is in progress.
func (s *Selection) Rect() viewport.Rect {
	return s.rect
}

// Original returns the rectangle the pixels were captured from.
func (s *Selection) Original() viewport.Rect {
	return s.original
}

// Snapshot returns the captured pixels, or nil before capture.
func (s *Selection) Snapshot() *image.RGBA {
	return s.snapshot
}

// Mode returns the current state.
func (s *Selection) Mode() SelectMode {
	return s.mode
}

// Handle returns the handle being dragged while resizing.
func (s *Selection) Handle() Handle {
	return s.handle
}

// Cancel drops the selection without touching any layer.
func (s *Selection) Cancel() {
	*s = Selection{handleSize: s.handleSize}
}

// abandon ends a drag in progress without committing. A selection still
// being created has no pixels yet and is dropped.
func (s *Selection) abandon() {
	switch s.mode {
	case SelectCreating:
		s.Cancel()
	case SelectMoving, SelectResizing:
		Logger().Debug("claydraw: selection drag abandoned", "mode", s.mode)
		s.mode = SelectNone
	}
}

// HandleRects returns the eight handle hitboxes in viewport space, in
// Handle order, for the current rectangle under view.
func (s *Selection) HandleRects(view viewport.Transform) [8]viewport.Rect {
	vp := view.ToViewportRect(s.rect)
	hs := s.handleSize
	midX, midY := vp.X+vp.W/2, vp.Y+vp.H/2
	box := func(cx, cy float64) viewport.Rect {
		return viewport.Rect{X: cx - hs/2, Y: cy - hs/2, W: hs, H: hs}
	}
	return [8]viewport.Rect{
		HandleNW: box(vp.X, vp.Y),
		HandleN:  box(midX, vp.Y),
		HandleNE: box(vp.X+vp.W, vp.Y),
		HandleE:  box(vp.X+vp.W, midY),
		HandleSE: box(vp.X+vp.W, vp.Y+vp.H),
		HandleS:  box(midX, vp.Y+vp.H),
		HandleSW: box(vp.X, vp.Y+vp.H),
		HandleW:  box(vp.X, midY),
	}
}

// HitHandle returns the first handle whose hitbox contains the viewport
// point p.
func (s *Selection) HitHandle(view viewport.Transform, p viewport.Point) (Handle, bool) {
	if !s.active {
		return 0, false
	}
	for i, r := range s.HandleRects(view) {
		if r.Contains(p) {
			return Handle(i), true
		}
	}
	return 0, false
}

// HitBody reports whether the viewport point p lies inside the selection.
func (s *Selection) HitBody(view viewport.Transform, p viewport.Point) bool {
	return s.active && view.ToViewportRect(s.rect).Contains(p)
}

func (s *Selection) down(ed *Editor, p viewport.Point) {
	if ed.activeLocked() {
		return
	}
	s.last = p
	if s.active && s.snapshot != nil {
		if h, ok := s.HitHandle(ed.view, p); ok {
			s.mode, s.handle = SelectResizing, h
			return
		}
		if s.HitBody(ed.view, p) {
			s.mode = SelectMoving
			return
		}
	}
	w := ed.view.FromViewport(p)
	*s = Selection{
		active:     true,
		rect:       viewport.Rect{X: w.X, Y: w.Y},
		mode:       SelectCreating,
		last:       p,
		handleSize: s.handleSize,
	}
	ed.RequestRender()
}

func (s *Selection) move(ed *Editor, p viewport.Point) {
	if !s.active || s.mode == SelectNone {
		return
	}
	switch s.mode {
	case SelectCreating:
		w := ed.view.FromViewport(p)
		s.rect.W = w.X - s.rect.X
		s.rect.H = w.Y - s.rect.Y
	case SelectMoving:
		d := ed.view.FromViewport(p).Sub(ed.view.FromViewport(s.last))
		s.rect = s.rect.Translate(d)
	case SelectResizing:
		s.resizeTo(ed.view.FromViewport(p))
	}
	s.last = p
	ed.RequestRender()
}

// resizeTo moves the edges named by the active handle to the world point
// w. The opposite edges stay where they are; the rectangle is left
// unnormalized so the anchor is stable across moves.
func (s *Selection) resizeTo(w viewport.Point) {
	r := &s.rect
	if s.handle.left() {
		x2 := r.X + r.W
		r.X = w.X
		r.W = x2 - r.X
	}
	if s.handle.right() {
		r.W = w.X - r.X
	}
	if s.handle.top() {
		y2 := r.Y + r.H
		r.Y = w.Y
		r.H = y2 - r.Y
	}
	if s.handle.bottom() {
		r.H = w.Y - r.Y
	}
}

func (s *Selection) up(ed *Editor, _ viewport.Point) {
	if !s.active {
		return
	}
	switch s.mode {
	case SelectCreating:
		s.finishCreate(ed)
	case SelectMoving, SelectResizing:
		s.commit(ed)
	}
}

func (s *Selection) finishCreate(ed *Editor) {
	s.rect = s.rect.Normalize()
	if s.rect.Empty() {
		Logger().Debug("claydraw: degenerate selection discarded", "rect", s.rect)
		s.Cancel()
		ed.RequestRender()
		return
	}
	// Snap to the covering pixels so the rectangle, the captured buffer
	// and the area cleared on commit are the same pixels.
	px := s.rect.Pixels()
	s.snapshot = raster.Crop(ed.doc.Active().img, px)
	s.rect = viewport.RectOf(px)
	s.original = s.rect
	s.mode = SelectNone
	ed.RequestRender()
}

// target returns the pixel rectangle the captured pixels land in. A
// selection that was only moved keeps the captured size with its origin
// rounded to the nearest pixel, so the paste is an exact copy; a resized
// one is stretched into its rounded edges.
func (s *Selection) target() image.Rectangle {
	n := s.rect.Normalize()
	if n.W != s.original.W || n.H != s.original.H {
		return n.Round()
	}
	at := image.Pt(int(math.Round(n.X)), int(math.Round(n.Y)))
	return image.Rectangle{Min: at, Max: at.Add(s.snapshot.Bounds().Size())}
}

// commit cuts the original area and pastes the captured pixels into the
// target rectangle, then drops the selection.
func (s *Selection) commit(ed *Editor) {
	if ed.activeLocked() {
		s.Cancel()
		ed.RequestRender()
		return
	}
	layer := ed.doc.Active().img
	raster.ClearRect(layer, s.original.Pixels())
	raster.DrawScaled(layer, s.target(), s.snapshot, BlendNormal)
	s.Cancel()
	ed.RequestRender()
	ed.Commit()
}

// DrawOverlay previews the captured pixels where commit would put them,
// with a dashed outline of the current rectangle and the handles.
func (s *Selection) DrawOverlay(o *Overlay) error {
	if !s.active {
		return nil
	}
	view := o.Transform()
	vp := view.ToViewportRect(s.rect)
	if s.snapshot != nil {
		o.DrawImage(s.snapshot, view.ToViewportRect(viewport.RectOf(s.target())))
	}
	o.StrokeRect(vp, MarqueeStyle)
	for _, h := range s.HandleRects(view) {
		o.StrokeRect(h, HandleStyle)
	}
	return nil
}
