// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package claydraw

import (
	"image"

	"golang.org/x/image/draw"
)

// History is a bounded linear undo/redo log of flattened document
// snapshots.
//
// Every commit pushes the composite as it is after the commit and clears
// the redo stack. Undo and Redo restore a snapshot by collapsing the
// document to a single layer holding it; per-layer structure is not kept.
// Snapshots are the premultiplied composite buffers themselves, so a
// restore reproduces every pixel exactly, semi-transparent ones included.
type History struct {
	capacity int
	undo     []*image.RGBA
	redo     []*image.RGBA
}

// NewHistory creates a history keeping at most capacity undo entries.
func NewHistory(capacity int) *History {
	return &History{capacity: max(capacity, 1)}
}

// Capacity returns the maximum number of undo entries.
func (h *History) Capacity() int {
	return h.capacity
}

// Len returns the number of undo entries.
func (h *History) Len() int {
	return len(h.undo)
}

// RedoLen returns the number of redo entries.
func (h *History) RedoLen() int {
	return len(h.redo)
}

// CanUndo reports whether Undo would do anything.
func (h *History) CanUndo() bool {
	return len(h.undo) > 0
}

// CanRedo reports whether Redo would do anything.
func (h *History) CanRedo() bool {
	return len(h.redo) > 0
}

// Clear drops every entry.
func (h *History) Clear() {
	h.undo = nil
	h.redo = nil
}

// Committed records the current composite of ed. The redo stack is
// released, not truncated, so its buffers can be collected.
func (h *History) Committed(ed *Editor) {
	h.undo = pushBounded(h.undo, ed.doc.Flatten(), h.capacity)
	h.redo = nil
}

// Undo pushes the current composite onto the redo stack and restores the
// most recent undo entry. It returns ErrNothingToUndo when the undo stack
// is empty.
func (h *History) Undo(ed *Editor) error {
	if len(h.undo) == 0 {
		return ErrNothingToUndo
	}
	h.step(ed, &h.undo, &h.redo)
	return nil
}

// Redo is the mirror of Undo. It returns ErrNothingToRedo when the redo
// stack is empty.
func (h *History) Redo(ed *Editor) error {
	if len(h.redo) == 0 {
		return ErrNothingToRedo
	}
	h.step(ed, &h.redo, &h.undo)
	return nil
}

// step moves one entry from src to the document, saving the current state
// on dst. The document receives a copy, so later edits never reach the
// stored entry.
func (h *History) step(ed *Editor, src, dst *[]*image.RGBA) {
	last := (*src)[len(*src)-1]
	(*src)[len(*src)-1] = nil
	*src = (*src)[:len(*src)-1]
	*dst = pushBounded(*dst, ed.doc.Flatten(), h.capacity)

	ed.doc.ReplaceWith(last)
	ed.syncWorld()
	ed.RequestRender()
}

// pushBounded appends v, evicting the oldest entries beyond capacity.
func pushBounded[T any](stack []T, v T, capacity int) []T {
	stack = append(stack, v)
	if n := len(stack) - capacity; n > 0 {
		copy(stack, stack[n:])
		clear(stack[len(stack)-n:])
		stack = stack[:len(stack)-n]
	}
	return stack
}

// toRGBA converts img to a premultiplied *image.RGBA anchored at (0, 0).
func toRGBA(img image.Image) *image.RGBA {
	b := img.Bounds()
	if rgba, ok := img.(*image.RGBA); ok && b.Min == (image.Point{}) {
		return rgba
	}
	out := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(out, out.Bounds(), img, b.Min, draw.Src)
	return out
}
