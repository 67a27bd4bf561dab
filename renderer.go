// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package claydraw

import (
	"fmt"

	"github.com/gogpu/claydraw/viewport"
)

// Renderer is the on-demand redraw driver.
//
// Nothing is drawn continuously: every mutation that should become visible
// ends with a Render call. Render is synchronous and idempotent, so calling
// it again with unchanged state reproduces the same pixels.
type Renderer struct {
	display Surface
	overlay Surface
	drawers observers[OverlayDrawer]
	label   func(string)
	zoom    string
	frames  uint64
}

// NewRenderer creates a renderer painting the document into display and
// overlay chrome into overlay.
func NewRenderer(display, overlay Surface) *Renderer {
	return &Renderer{display: display, overlay: overlay}
}

// Display returns the surface layers are composited into.
func (r *Renderer) Display() Surface {
	return r.display
}

// OverlaySurface returns the surface overlay drawers paint into.
func (r *Renderer) OverlaySurface() Surface {
	return r.overlay
}

// ZoomLabel returns the zoom readout of the last frame, e.g. "100%".
func (r *Renderer) ZoomLabel() string {
	return r.zoom
}

// Frames returns how many frames have been rendered.
func (r *Renderer) Frames() uint64 {
	return r.frames
}

// Subscribe registers an overlay drawer. Drawers run after every frame in
// subscription order.
func (r *Renderer) Subscribe(d OverlayDrawer) *Subscription {
	return r.drawers.add(d)
}

// Render clears both surfaces, composites the visible layers of doc
// through view, updates the zoom readout and runs the overlay drawers.
func (r *Renderer) Render(doc *Document, view viewport.Transform) {
	r.display.Clear()
	r.overlay.Clear()

	doc.CompositeTo(r.display, view.Matrix())

	r.zoom = view.Label()
	if r.label != nil {
		r.label(r.zoom)
	}

	o := newOverlay(r.overlay, view)
	for i, d := range r.drawers.snapshot() {
		if err := runDrawer(d, o); err != nil {
			Logger().Warn("claydraw: overlay drawer failed", "index", i, "err", err)
		}
		o.flush()
	}
	r.frames++
}

// runDrawer invokes d, turning a panic into an error so one faulty drawer
// cannot abort the frame for the rest.
func runDrawer(d OverlayDrawer, o *Overlay) (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("claydraw: overlay drawer panic: %v", p)
		}
	}()
	return d.DrawOverlay(o)
}
