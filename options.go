package claydraw

import (
	"github.com/gogpu/gg/text"
)

// Editor defaults.
const (
	DefaultWidth           = 1600
	DefaultHeight          = 1000
	DefaultSurfaceWidth    = 1280
	DefaultSurfaceHeight   = 800
	DefaultHistoryCapacity = 50
	DefaultHandleSize      = 8
)

// EditorOption configures an Editor during creation.
//
// Example:
//
//	// Headless editor with the default CPU surfaces
//	ed := claydraw.NewEditor()
//
//	// Custom document and display surface (dependency injection)
//	ed := claydraw.NewEditor(
//		claydraw.WithSize(640, 480),
//		claydraw.WithDisplay(mySurface),
//	)
type EditorOption func(*editorOptions)

// editorOptions holds optional configuration for Editor creation.
type editorOptions struct {
	width, height   int
	surfaceW        int
	surfaceH        int
	historyCapacity int
	disableHistory  bool
	handleSize      float64
	brush           Brush
	font            *text.FontSource
	display         Surface // Created from the surface size if nil
	overlay         Surface // Created from the surface size if nil
	prompter        Prompter
	zoomLabel       func(string)
}

// defaultOptions returns the default editor options.
func defaultOptions() editorOptions {
	return editorOptions{
		width:           DefaultWidth,
		height:          DefaultHeight,
		surfaceW:        DefaultSurfaceWidth,
		surfaceH:        DefaultSurfaceHeight,
		historyCapacity: DefaultHistoryCapacity,
		handleSize:      DefaultHandleSize,
		brush:           DefaultBrush,
		prompter:        NoPrompter{},
	}
}

// WithSize sets the initial document size in world pixels.
func WithSize(width, height int) EditorOption {
	return func(o *editorOptions) {
		if width > 0 && height > 0 {
			o.width, o.height = width, height
		}
	}
}

// WithSurfaceSize sets the size of the default display and overlay
// surfaces. It has no effect on surfaces passed with WithDisplay or
// WithOverlay.
func WithSurfaceSize(width, height int) EditorOption {
	return func(o *editorOptions) {
		if width > 0 && height > 0 {
			o.surfaceW, o.surfaceH = width, height
		}
	}
}

// WithHistoryCapacity sets how many undo snapshots are kept.
// A capacity of zero disables history.
func WithHistoryCapacity(n int) EditorOption {
	return func(o *editorOptions) {
		if n <= 0 {
			o.disableHistory = true
			return
		}
		o.historyCapacity = n
		o.disableHistory = false
	}
}

// WithHandleSize sets the side of the selection handle hitboxes in device
// pixels.
func WithHandleSize(px float64) EditorOption {
	return func(o *editorOptions) {
		if px > 0 {
			o.handleSize = px
		}
	}
}

// WithBrush sets the initial brush.
func WithBrush(b Brush) EditorOption {
	return func(o *editorOptions) {
		o.brush = b
	}
}

// WithFont sets the font used by the text tool. The default is Go Regular.
func WithFont(src *text.FontSource) EditorOption {
	return func(o *editorOptions) {
		o.font = src
	}
}

// WithDisplay sets the surface the document is composited into.
func WithDisplay(s Surface) EditorOption {
	return func(o *editorOptions) {
		o.display = s
	}
}

// WithOverlay sets the surface overlay chrome is drawn into.
func WithOverlay(s Surface) EditorOption {
	return func(o *editorOptions) {
		o.overlay = s
	}
}

// WithPrompter sets the source of text and numeric input for the text
// tool and ResizeFromPrompt.
func WithPrompter(p Prompter) EditorOption {
	return func(o *editorOptions) {
		if p != nil {
			o.prompter = p
		}
	}
}

// WithZoomLabel registers a function receiving the zoom readout ("100%")
// after every render.
func WithZoomLabel(fn func(string)) EditorOption {
	return func(o *editorOptions) {
		o.zoomLabel = fn
	}
}
