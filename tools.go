// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package claydraw

import (
	"fmt"
	"strings"

	"github.com/gogpu/claydraw/viewport"
)

// ToolMode is the interaction mode pointer input is interpreted in.
type ToolMode uint8

// Tool modes.
const (
	ToolPencil ToolMode = iota
	ToolBrush
	ToolEraser
	ToolRect
	ToolCircle
	ToolText
	ToolSelect
	ToolPan

	toolCount
)

var toolNames = [toolCount]string{
	ToolPencil: "pencil",
	ToolBrush:  "brush",
	ToolEraser: "eraser",
	ToolRect:   "rect",
	ToolCircle: "circle",
	ToolText:   "text",
	ToolSelect: "select",
	ToolPan:    "pan",
}

// String returns the tool name, e.g. "pencil".
func (m ToolMode) String() string {
	if m < toolCount {
		return toolNames[m]
	}
	return fmt.Sprintf("ToolMode(%d)", uint8(m))
}

// ParseToolMode returns the tool with the given name.
func ParseToolMode(name string) (ToolMode, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range toolNames {
		if n == name {
			return ToolMode(i), nil
		}
	}
	return 0, fmt.Errorf("claydraw: unknown tool %q", name)
}

// Button identifies the pointer button of a press.
type Button uint8

// Pointer buttons.
const (
	ButtonPrimary Button = iota
	ButtonMiddle
	ButtonSecondary
)

// Modifiers is a set of held modifier keys.
type Modifiers uint8

// Modifier keys.
const (
	ModCtrl Modifiers = 1 << iota
	ModShift
	ModAlt
	ModMeta
)

// KeySpace is the key that temporarily switches to the pan tool while held.
const KeySpace = " "

// KeyEscape drops the current selection.
const KeyEscape = "Escape"

// toolKeys maps single-key shortcuts to tools.
var toolKeys = map[string]ToolMode{
	"v": ToolSelect,
	"p": ToolPencil,
	"b": ToolBrush,
	"e": ToolEraser,
	"r": ToolRect,
	"c": ToolCircle,
	"t": ToolText,
}

// gesture is the drag lifecycle owned by one tool. Points are in viewport
// space (device pixels).
type gesture interface {
	down(ed *Editor, p viewport.Point)
	move(ed *Editor, p viewport.Point)
	up(ed *Editor, p viewport.Point)
}

// Tools is the tool state machine: the current mode, the brush and the
// gesture holding the pointer. Only one gesture is tracked at a time.
type Tools struct {
	ed       *Editor
	mode     ToolMode
	prev     ToolMode
	holding  bool
	brush    Brush
	gestures map[ToolMode]gesture
	panner   *panGesture
	shape    *shapeGesture
	active   gesture
}

func newTools(ed *Editor, brush Brush, sel *Selection) *Tools {
	shape := &shapeGesture{}
	pan := &panGesture{}
	return &Tools{
		ed:    ed,
		mode:  ToolPencil,
		brush: brush,
		gestures: map[ToolMode]gesture{
			ToolPencil: &freehandGesture{},
			ToolBrush:  &freehandGesture{},
			ToolEraser: &freehandGesture{erase: true},
			ToolRect:   shape,
			ToolCircle: shape,
			ToolText:   textGesture{},
			ToolSelect: sel,
			ToolPan:    pan,
		},
		panner: pan,
		shape:  shape,
	}
}

// Mode returns the current tool.
func (t *Tools) Mode() ToolMode {
	return t.mode
}

// Brush returns the current brush.
func (t *Tools) Brush() Brush {
	return t.brush
}

// SetBrush replaces the current brush.
func (t *Tools) SetBrush(b Brush) {
	t.brush = b
}

// SetTool switches the current tool. A pending selection is kept so the
// select tool can pick it up again; a selection drag in progress is
// abandoned without committing.
func (t *Tools) SetTool(m ToolMode) {
	if m >= toolCount || m == t.mode {
		return
	}
	if m != ToolSelect {
		t.ed.sel.abandon()
	}
	Logger().Debug("claydraw: tool", "from", t.mode, "to", m)
	t.mode = m
}

// PointerDown starts a gesture at the device point p. The middle button
// pans regardless of the current tool.
func (t *Tools) PointerDown(p viewport.Point, b Button) {
	if t.active != nil {
		return
	}
	switch {
	case b == ButtonMiddle:
		t.active = t.panner
	case b == ButtonPrimary:
		t.active = t.gestures[t.mode]
	default:
		return
	}
	if t.shape == t.active {
		t.shape.ellipse = t.mode == ToolCircle
	}
	t.active.down(t.ed, p)
}

// PointerMove feeds a pointer position to the gesture in progress.
func (t *Tools) PointerMove(p viewport.Point) {
	if t.active != nil {
		t.active.move(t.ed, p)
	}
}

// PointerUp finishes the gesture in progress.
func (t *Tools) PointerUp(p viewport.Point) {
	g := t.active
	if g == nil {
		return
	}
	t.active = nil
	g.up(t.ed, p)
}

// KeyDown handles a key press and reports whether it was consumed.
func (t *Tools) KeyDown(key string, mods Modifiers) bool {
	if mods&(ModCtrl|ModMeta) != 0 {
		switch strings.ToLower(key) {
		case "z":
			_ = t.ed.Undo()
			return true
		case "y":
			_ = t.ed.Redo()
			return true
		}
		return false
	}
	switch key {
	case KeySpace:
		if t.mode != ToolPan && !t.holding {
			t.prev = t.mode
			t.holding = true
			t.SetTool(ToolPan)
		}
		return true
	case KeyEscape:
		t.ed.sel.Cancel()
		t.ed.RequestRender()
		return true
	}
	if m, ok := toolKeys[strings.ToLower(key)]; ok {
		t.SetTool(m)
		return true
	}
	return false
}

// KeyUp handles a key release. Releasing the pan key restores the tool
// that was current when it was pressed.
func (t *Tools) KeyUp(key string) bool {
	if key != KeySpace || !t.holding {
		return false
	}
	t.holding = false
	t.SetTool(t.prev)
	return true
}

// drawPreview paints the dashed outline of a shape drag in progress.
func (t *Tools) drawPreview(o *Overlay) error {
	s := t.shape
	if t.active != s || !s.dragging {
		return nil
	}
	r := viewport.RectFrom(s.start, s.last).Normalize()
	if s.ellipse {
		o.StrokeEllipse(r, PreviewStyle)
	} else {
		o.StrokeRect(r, PreviewStyle)
	}
	return nil
}
