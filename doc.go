// Package claydraw is a headless raster drawing engine.
//
// # Overview
//
// claydraw keeps a stack of equally sized raster layers, shows them through
// a zoomable, pannable viewport and edits them with pointer-driven tools:
// pencil, brush, eraser, rectangle, ellipse, text and a movable, resizable
// marquee selection. Every finalized edit is recorded in a bounded
// snapshot history with undo and redo.
//
// # Quick Start
//
//	import "github.com/gogpu/claydraw"
//
//	ed := claydraw.NewEditor(claydraw.WithSize(800, 600))
//
//	// Draw a stroke with the pencil (device coordinates)
//	ed.SetTool(claydraw.ToolPencil)
//	ed.PointerDown(100, 100, claydraw.ButtonPrimary)
//	ed.PointerMove(200, 150)
//	ed.PointerUp(200, 150)
//
//	// Save the flattened document; the extension picks the format
//	if err := ed.Save("out.png"); err != nil {
//		log.Fatal(err)
//	}
//
// # Coordinate Spaces
//
// World space is the fixed pixel grid of the document. Viewport space is
// the device pixel grid of the display surface. Pointer input is given in
// viewport space and mapped through the viewport transform (package
// viewport); layers are always edited in world space.
//
// # Rendering
//
// Rendering is on demand. Editor.RequestRender clears the display and
// overlay surfaces, composites the visible layers bottom to top with their
// opacity and blend mode, and then runs the overlay drawers. Any Surface
// implementation can be plugged in; PixmapSurface is the CPU one.
//
// # Architecture
//
// The library is organized into:
//   - Public API: Editor, Document, Layer, Tools, Selection, History
//   - viewport: world/viewport mapping and rectangles
//   - Internal: blend (composite operators), raster (buffer primitives)
//   - script: YAML gesture scripts replayed against an Editor
//
// Strokes, shapes, overlay chrome and text are rasterised with
// github.com/gogpu/gg.
package claydraw

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
