package claydraw

import "slices"

// CommitObserver is notified after every finalized drawing operation.
// History is the canonical observer.
type CommitObserver interface {
	Committed(ed *Editor)
}

// OverlayDrawer paints transient chrome (marquee, handles, previews) after
// each render pass. Drawers run in subscription order; an error or panic
// in one drawer is contained and does not affect the others.
type OverlayDrawer interface {
	DrawOverlay(o *Overlay) error
}

// CommitFunc adapts a function to CommitObserver.
type CommitFunc func(ed *Editor)

// Committed calls f(ed).
func (f CommitFunc) Committed(ed *Editor) { f(ed) }

// OverlayFunc adapts a function to OverlayDrawer.
type OverlayFunc func(o *Overlay) error

// DrawOverlay calls f(o).
func (f OverlayFunc) DrawOverlay(o *Overlay) error { return f(o) }

// Subscription is a handle returned by OnCommit and OnOverlay.
type Subscription struct {
	cancel func()
}

// Unsubscribe removes the observer. It is safe to call more than once.
func (s *Subscription) Unsubscribe() {
	if s == nil || s.cancel == nil {
		return
	}
	s.cancel()
	s.cancel = nil
}

// observers is an ordered registry keyed by a monotonically increasing id.
type observers[T any] struct {
	next  uint64
	items []observer[T]
}

type observer[T any] struct {
	id uint64
	fn T
}

func (o *observers[T]) add(fn T) *Subscription {
	o.next++
	id := o.next
	o.items = append(o.items, observer[T]{id: id, fn: fn})
	return &Subscription{cancel: func() {
		o.items = slices.DeleteFunc(o.items, func(x observer[T]) bool { return x.id == id })
	}}
}

// snapshot returns the observers in registration order. Observers added or
// removed during dispatch take effect on the next dispatch.
func (o *observers[T]) snapshot() []T {
	out := make([]T, len(o.items))
	for i, x := range o.items {
		out[i] = x.fn
	}
	return out
}
