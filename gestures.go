// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package claydraw

import (
	"github.com/gogpu/claydraw/viewport"
)

// freehandGesture paints round-capped segments into the active layer as
// the pointer moves. The eraser variant removes coverage instead.
type freehandGesture struct {
	erase   bool
	drawing bool
	last    viewport.Point // world space
}

func (g *freehandGesture) down(ed *Editor, p viewport.Point) {
	if ed.activeLocked() {
		return
	}
	g.drawing = true
	g.last = ed.view.FromViewport(p)
}

func (g *freehandGesture) move(ed *Editor, p viewport.Point) {
	if !g.drawing {
		return
	}
	w := ed.view.FromViewport(p)
	mode := BlendNormal
	if g.erase {
		mode = BlendDestinationOut
	}
	strokeSegment(ed.doc.Active().img, g.last, w, ed.tools.brush, mode)
	g.last = w
	ed.RequestRender()
}

func (g *freehandGesture) up(ed *Editor, _ viewport.Point) {
	if !g.drawing {
		return
	}
	g.drawing = false
	ed.Commit()
}

// shapeGesture drags out a rectangle or ellipse. The outline is previewed
// on the overlay in viewport space and painted once on release.
type shapeGesture struct {
	ellipse  bool
	dragging bool
	start    viewport.Point // viewport space
	last     viewport.Point
}

func (g *shapeGesture) down(ed *Editor, p viewport.Point) {
	if ed.activeLocked() {
		return
	}
	g.dragging = true
	g.start, g.last = p, p
}

func (g *shapeGesture) move(ed *Editor, p viewport.Point) {
	if !g.dragging {
		return
	}
	g.last = p
	ed.RequestRender()
}

func (g *shapeGesture) up(ed *Editor, p viewport.Point) {
	if !g.dragging {
		return
	}
	g.dragging = false
	a := ed.view.FromViewport(g.start)
	b := ed.view.FromViewport(p)
	kind := shapeRect
	if g.ellipse {
		kind = shapeEllipse
	}
	paintShape(ed.doc.Active().img, viewport.RectFrom(a, b).Normalize(), kind, ed.tools.brush)
	ed.RequestRender()
	ed.Commit()
}

// textGesture asks for a string on press and paints it with its top-left
// corner at the pressed point. There is no drag phase.
type textGesture struct{}

func (textGesture) down(ed *Editor, p viewport.Point) {
	if ed.activeLocked() {
		return
	}
	at := ed.view.FromViewport(p)
	s, ok := ed.prompter.Prompt("Enter text:", "")
	if !ok || s == "" {
		Logger().Debug("claydraw: text prompt dismissed")
		return
	}
	paintText(ed.doc.Active().img, at, s, ed.tools.brush, ed.font)
	ed.RequestRender()
	ed.Commit()
}

func (textGesture) move(*Editor, viewport.Point) {}
func (textGesture) up(*Editor, viewport.Point)   {}

// panGesture translates the viewport by the device-space drag delta.
type panGesture struct {
	panning bool
	last    viewport.Point
}

func (g *panGesture) down(_ *Editor, p viewport.Point) {
	g.panning = true
	g.last = p
}

func (g *panGesture) move(ed *Editor, p viewport.Point) {
	if !g.panning {
		return
	}
	d := p.Sub(g.last)
	g.last = p
	ed.PanBy(d.X, d.Y)
}

func (g *panGesture) up(*Editor, viewport.Point) {
	g.panning = false
}
