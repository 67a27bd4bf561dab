package claydraw

import (
	"image"
	"image/color"
	"testing"

	"github.com/gogpu/claydraw/internal/raster"
)

var (
	red   = color.RGBA{255, 0, 0, 255}
	blue  = color.RGBA{0, 0, 255, 255}
	green = color.RGBA{0, 255, 0, 255}
)

// newTestEditor returns a 100×100 editor whose surface matches the
// document, so device and world coordinates coincide at zoom 1.
func newTestEditor(t *testing.T, opts ...EditorOption) *Editor {
	t.Helper()
	base := []EditorOption{WithSize(100, 100), WithSurfaceSize(100, 100)}
	return NewEditor(append(base, opts...)...)
}

func fillActive(ed *Editor, r image.Rectangle, c color.Color) {
	raster.Fill(ed.Document().Active().Image(), r, c, BlendCopy)
}

func pixel(img *image.RGBA, x, y int) color.RGBA {
	return img.RGBAAt(x, y)
}

func drag(ed *Editor, x0, y0, x1, y1 float64) {
	ed.PointerDown(x0, y0, ButtonPrimary)
	ed.PointerMove(x1, y1)
	ed.PointerUp(x1, y1)
}

func TestNewEditorDefaults(t *testing.T) {
	ed := NewEditor()
	if ed.Document().Width() != DefaultWidth || ed.Document().Height() != DefaultHeight {
		t.Errorf("document = %dx%d, want %dx%d",
			ed.Document().Width(), ed.Document().Height(), DefaultWidth, DefaultHeight)
	}
	if ed.Document().Len() != 1 {
		t.Errorf("Len() = %d, want 1", ed.Document().Len())
	}
	if ed.Tools().Mode() != ToolPencil {
		t.Errorf("Mode() = %v, want pencil", ed.Tools().Mode())
	}
	if ed.History() == nil || ed.History().Capacity() != DefaultHistoryCapacity {
		t.Errorf("History() = %v, want capacity %d", ed.History(), DefaultHistoryCapacity)
	}
	if got := ed.Renderer().ZoomLabel(); got != "100%" {
		t.Errorf("ZoomLabel() = %q, want %q", got, "100%")
	}
}

func TestWithHistoryCapacityZeroDisables(t *testing.T) {
	ed := newTestEditor(t, WithHistoryCapacity(0))
	if ed.History() != nil {
		t.Fatal("History() != nil with capacity 0")
	}
	ed.Commit()
	if err := ed.Undo(); err != ErrNothingToUndo {
		t.Errorf("Undo() = %v, want ErrNothingToUndo", err)
	}
}

func TestCommitObserversInOrder(t *testing.T) {
	ed := newTestEditor(t)
	var got []int
	ed.OnCommit(CommitFunc(func(*Editor) { got = append(got, 1) }))
	sub := ed.OnCommit(CommitFunc(func(*Editor) { got = append(got, 2) }))
	ed.OnCommit(CommitFunc(func(*Editor) { got = append(got, 3) }))

	ed.Commit()
	sub.Unsubscribe()
	sub.Unsubscribe()
	ed.Commit()

	want := []int{1, 2, 3, 1, 3}
	if len(got) != len(want) {
		t.Fatalf("calls = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("calls = %v, want %v", got, want)
			break
		}
	}
}

func TestSetSurfaceSize(t *testing.T) {
	ed := newTestEditor(t)
	ed.SetSurfaceSize(300, 200)

	display := ed.Renderer().Display().Bounds()
	overlay := ed.Renderer().OverlaySurface().Bounds()
	if display.Dx() != 300 || display.Dy() != 200 {
		t.Errorf("display = %v, want 300x200", display)
	}
	if overlay != display {
		t.Errorf("overlay = %v, want %v", overlay, display)
	}
	if off := ed.View().Offset(); off.X != 100 || off.Y != 50 {
		t.Errorf("Offset() = %v, want (100, 50)", off)
	}
}

func TestWheelZooms(t *testing.T) {
	ed := newTestEditor(t)
	ed.Wheel(-1)
	if got := ed.Renderer().ZoomLabel(); got != "110%" {
		t.Errorf("after wheel in, ZoomLabel() = %q, want 110%%", got)
	}
	ed.ResetView()
	ed.Wheel(3)
	if got := ed.Renderer().ZoomLabel(); got != "90%" {
		t.Errorf("after wheel out, ZoomLabel() = %q, want 90%%", got)
	}
}
