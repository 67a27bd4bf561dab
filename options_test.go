package claydraw

import (
	"testing"
)

func TestDefaultOptions(t *testing.T) {
	o := defaultOptions()
	if o.width != DefaultWidth || o.height != DefaultHeight {
		t.Errorf("size = %dx%d, want %dx%d", o.width, o.height, DefaultWidth, DefaultHeight)
	}
	if o.historyCapacity != DefaultHistoryCapacity || o.disableHistory {
		t.Errorf("history = %d (disabled %v), want %d", o.historyCapacity, o.disableHistory, DefaultHistoryCapacity)
	}
	if o.brush != DefaultBrush {
		t.Errorf("brush = %+v, want %+v", o.brush, DefaultBrush)
	}
	if _, ok := o.prompter.(NoPrompter); !ok {
		t.Errorf("prompter = %T, want NoPrompter", o.prompter)
	}
}

func TestOptionsIgnoreInvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		opt   EditorOption
		check func(editorOptions) bool
	}{
		{"zero size", WithSize(0, 10), func(o editorOptions) bool { return o.width == DefaultWidth }},
		{"negative surface", WithSurfaceSize(-1, 10), func(o editorOptions) bool { return o.surfaceW == DefaultSurfaceWidth }},
		{"zero handle", WithHandleSize(0), func(o editorOptions) bool { return o.handleSize == DefaultHandleSize }},
		{"nil prompter", WithPrompter(nil), func(o editorOptions) bool { return o.prompter != nil }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := defaultOptions()
			tt.opt(&o)
			if !tt.check(o) {
				t.Errorf("%s was not ignored: %+v", tt.name, o)
			}
		})
	}
}

func TestWithHistoryCapacity(t *testing.T) {
	o := defaultOptions()
	WithHistoryCapacity(0)(&o)
	if !o.disableHistory {
		t.Error("WithHistoryCapacity(0) did not disable history")
	}
	WithHistoryCapacity(7)(&o)
	if o.disableHistory || o.historyCapacity != 7 {
		t.Errorf("history = %d (disabled %v), want 7", o.historyCapacity, o.disableHistory)
	}
}

func TestWithDisplayAndOverlay(t *testing.T) {
	display := NewPixmapSurface(30, 20)
	overlay := NewPixmapSurface(30, 20)
	ed := NewEditor(WithSize(10, 10), WithDisplay(display), WithOverlay(overlay))
	if ed.Renderer().Display() != Surface(display) {
		t.Error("Display() is not the injected surface")
	}
	if ed.Renderer().OverlaySurface() != Surface(overlay) {
		t.Error("OverlaySurface() is not the injected surface")
	}
	if got := ed.View().Surface; got.W != 30 || got.H != 20 {
		t.Errorf("View().Surface = %v, want 30x20", got)
	}
}
