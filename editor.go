// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package claydraw

import (
	"fmt"

	"github.com/gogpu/claydraw/viewport"
	"github.com/gogpu/gg/text"
)

// Editor ties the document, viewport, renderer, tools, selection and
// history together. Every mutation that should become visible ends with a
// render, and every finalized drawing operation ends with a commit.
//
// An Editor is not safe for concurrent use. Input must be delivered from a
// single goroutine, one event at a time.
type Editor struct {
	doc      *Document
	view     viewport.Transform
	renderer *Renderer
	commits  observers[CommitObserver]
	tools    *Tools
	sel      *Selection
	history  *History
	prompter Prompter
	font     *text.FontSource
}

// NewEditor creates an editor with a single transparent layer and renders
// the first frame.
func NewEditor(opts ...EditorOption) *Editor {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if o.display == nil {
		o.display = NewPixmapSurface(o.surfaceW, o.surfaceH)
	}
	if o.overlay == nil {
		b := o.display.Bounds()
		o.overlay = NewPixmapSurface(b.Dx(), b.Dy())
	}
	font := o.font
	if font == nil {
		var err error
		if font, err = defaultFontSource(); err != nil {
			Logger().Warn("claydraw: default font unavailable", "err", err)
		}
	}

	ed := &Editor{
		doc:      NewDocument(o.width, o.height),
		renderer: NewRenderer(o.display, o.overlay),
		sel:      newSelection(o.handleSize),
		prompter: o.prompter,
		font:     font,
	}
	ed.renderer.label = o.zoomLabel
	b := o.display.Bounds()
	ed.view = viewport.New(
		viewport.Size{W: float64(ed.doc.Width()), H: float64(ed.doc.Height())},
		viewport.Size{W: float64(b.Dx()), H: float64(b.Dy())},
	)
	ed.tools = newTools(ed, o.brush, ed.sel)

	ed.OnOverlay(ed.sel)
	ed.OnOverlay(OverlayFunc(ed.tools.drawPreview))
	if !o.disableHistory {
		ed.history = NewHistory(o.historyCapacity)
		ed.OnCommit(ed.history)
	}

	ed.RequestRender()
	return ed
}

// Document returns the layer stack.
func (e *Editor) Document() *Document {
	return e.doc
}

// View returns the current viewport transform.
func (e *Editor) View() viewport.Transform {
	return e.view
}

// Renderer returns the render loop.
func (e *Editor) Renderer() *Renderer {
	return e.renderer
}

// Tools returns the tool state machine.
func (e *Editor) Tools() *Tools {
	return e.tools
}

// Selection returns the selection controller.
func (e *Editor) Selection() *Selection {
	return e.sel
}

// History returns the undo log, or nil when history is disabled.
func (e *Editor) History() *History {
	return e.history
}

// SetPrompter replaces the input source of the text tool and
// ResizeFromPrompt.
func (e *Editor) SetPrompter(p Prompter) {
	if p == nil {
		p = NoPrompter{}
	}
	e.prompter = p
}

// RequestRender redraws the display and overlay surfaces from the current
// state.
func (e *Editor) RequestRender() {
	e.renderer.Render(e.doc, e.view)
}

// Commit marks a drawing operation as finalized and notifies the commit
// observers in subscription order.
func (e *Editor) Commit() {
	for _, o := range e.commits.snapshot() {
		o.Committed(e)
	}
}

// OnCommit registers a commit observer.
func (e *Editor) OnCommit(o CommitObserver) *Subscription {
	return e.commits.add(o)
}

// OnOverlay registers an overlay drawer. It runs after every render pass.
func (e *Editor) OnOverlay(d OverlayDrawer) *Subscription {
	return e.renderer.Subscribe(d)
}

// SetZoom sets the zoom factor, clamped to [viewport.MinZoom,
// viewport.MaxZoom], and renders.
func (e *Editor) SetZoom(z float64) {
	e.view.SetZoom(z)
	e.RequestRender()
}

// ZoomBy multiplies the zoom factor by f and renders.
func (e *Editor) ZoomBy(f float64) {
	e.view.ZoomBy(f)
	e.RequestRender()
}

// Wheel zooms out for a positive scroll delta and in for a negative one,
// ten percent per notch.
func (e *Editor) Wheel(deltaY float64) {
	switch {
	case deltaY > 0:
		e.ZoomBy(0.9)
	case deltaY < 0:
		e.ZoomBy(1.1)
	}
}

// PanBy shifts the view by (dx, dy) device pixels and renders.
func (e *Editor) PanBy(dx, dy float64) {
	e.view.PanBy(dx, dy)
	e.RequestRender()
}

// ResetView restores zoom 1 and no pan.
func (e *Editor) ResetView() {
	e.view.Reset()
	e.RequestRender()
}

// SetSurfaceSize follows a change of the display container size. Surfaces
// that support resizing are reallocated.
func (e *Editor) SetSurfaceSize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	for _, s := range []Surface{e.renderer.display, e.renderer.overlay} {
		if r, ok := s.(resizer); ok {
			r.Resize(width, height)
		}
	}
	e.view.Resize(float64(width), float64(height))
	e.RequestRender()
}

// syncWorld updates the viewport after the document size changed.
func (e *Editor) syncWorld() {
	e.view.World = viewport.Size{W: float64(e.doc.Width()), H: float64(e.doc.Height())}
}

func (e *Editor) activeLocked() bool {
	if e.doc.Active().Locked {
		Logger().Debug("claydraw: active layer is locked", "layer", e.doc.Active().Name)
		return true
	}
	return false
}

// SetTool switches the current tool.
func (e *Editor) SetTool(m ToolMode) {
	e.tools.SetTool(m)
}

// SetBrush replaces the current brush.
func (e *Editor) SetBrush(b Brush) {
	e.tools.SetBrush(b)
}

// PointerDown delivers a press at the device point (x, y).
func (e *Editor) PointerDown(x, y float64, b Button) {
	e.tools.PointerDown(viewport.Pt(x, y), b)
}

// PointerMove delivers a pointer position.
func (e *Editor) PointerMove(x, y float64) {
	e.tools.PointerMove(viewport.Pt(x, y))
}

// PointerUp delivers a release at the device point (x, y).
func (e *Editor) PointerUp(x, y float64) {
	e.tools.PointerUp(viewport.Pt(x, y))
}

// KeyDown delivers a key press and reports whether it was consumed.
func (e *Editor) KeyDown(key string, mods Modifiers) bool {
	return e.tools.KeyDown(key, mods)
}

// KeyUp delivers a key release.
func (e *Editor) KeyUp(key string) bool {
	return e.tools.KeyUp(key)
}

// AddLayer appends a transparent layer, makes it current and renders.
func (e *Editor) AddLayer() *Layer {
	l := e.doc.AddLayer()
	e.RequestRender()
	return l
}

// RemoveLayer deletes layer i and renders.
func (e *Editor) RemoveLayer(i int) error {
	if err := e.doc.RemoveLayer(i); err != nil {
		return err
	}
	e.RequestRender()
	return nil
}

// MoveLayer reorders the stack and renders.
func (e *Editor) MoveLayer(from, to int) error {
	if err := e.doc.MoveLayer(from, to); err != nil {
		return err
	}
	e.RequestRender()
	return nil
}

// SetActiveLayer makes layer i current and renders.
func (e *Editor) SetActiveLayer(i int) error {
	if err := e.doc.SetActive(i); err != nil {
		return err
	}
	e.RequestRender()
	return nil
}

// SetLayerVisible shows or hides layer i and renders.
func (e *Editor) SetLayerVisible(i int, visible bool) error {
	if err := e.doc.SetVisible(i, visible); err != nil {
		return err
	}
	e.RequestRender()
	return nil
}

// SetLayerOpacity sets the opacity of layer i and renders.
func (e *Editor) SetLayerOpacity(i int, opacity float64) error {
	if err := e.doc.SetOpacity(i, opacity); err != nil {
		return err
	}
	e.RequestRender()
	return nil
}

// SetLayerBlend sets the blend mode of layer i and renders.
func (e *Editor) SetLayerBlend(i int, mode BlendMode) error {
	if err := e.doc.SetBlend(i, mode); err != nil {
		return err
	}
	e.RequestRender()
	return nil
}

// Resize rescales the document, renders and commits.
func (e *Editor) Resize(width, height int) error {
	if err := e.doc.Resize(width, height); err != nil {
		return err
	}
	e.sel.Cancel()
	e.syncWorld()
	Logger().Info("claydraw: document resized", "width", width, "height", height)
	e.RequestRender()
	e.Commit()
	return nil
}

// ResizeFromPrompt asks for a width and a height and resizes the document.
// A dismissed prompt, non-numeric or zero input leaves everything as it
// was and returns ErrPromptCancelled.
func (e *Editor) ResizeFromPrompt() error {
	w, ok := promptInt(e.prompter, "Canvas width (px):", e.doc.Width())
	if !ok {
		return ErrPromptCancelled
	}
	h, ok := promptInt(e.prompter, "Canvas height (px):", e.doc.Height())
	if !ok {
		return ErrPromptCancelled
	}
	return e.Resize(w, h)
}

// Rotate turns the document a quarter turn clockwise, renders and commits.
func (e *Editor) Rotate() {
	e.doc.Rotate()
	e.sel.Cancel()
	e.syncWorld()
	Logger().Info("claydraw: document rotated", "width", e.doc.Width(), "height", e.doc.Height())
	e.RequestRender()
	e.Commit()
}

// Clear drops every layer and starts over with one transparent layer.
func (e *Editor) Clear() {
	e.doc.Reset()
	e.sel.Cancel()
	e.RequestRender()
}

// Undo restores the previous history entry. It returns ErrNothingToUndo
// when there is nothing to undo.
func (e *Editor) Undo() error {
	if e.history == nil || !e.history.CanUndo() {
		return ErrNothingToUndo
	}
	e.sel.Cancel()
	if err := e.history.Undo(e); err != nil {
		Logger().Warn("claydraw: undo failed", "err", err)
		return err
	}
	return nil
}

// Redo re-applies the last undone entry. It returns ErrNothingToRedo when
// there is nothing to redo.
func (e *Editor) Redo() error {
	if e.history == nil || !e.history.CanRedo() {
		return ErrNothingToRedo
	}
	e.sel.Cancel()
	if err := e.history.Redo(e); err != nil {
		Logger().Warn("claydraw: redo failed", "err", err)
		return err
	}
	return nil
}

func (e *Editor) String() string {
	return fmt.Sprintf("Editor{%dx%d, %d layers, tool %v, %v}",
		e.doc.Width(), e.doc.Height(), e.doc.Len(), e.tools.mode, e.view)
}
