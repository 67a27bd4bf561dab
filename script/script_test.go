package script

import (
	"errors"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/gogpu/claydraw"
)

func run(t *testing.T, src, dir string) (*claydraw.Editor, error) {
	t.Helper()
	s, err := Parse([]byte(src))
	if err != nil {
		t.Fatalf("Parse() = %v", err)
	}
	ed := claydraw.NewEditor(s.Options()...)
	return ed, s.Run(ed, dir)
}

func TestRunDrawsAndExports(t *testing.T) {
	dir := t.TempDir()
	ed, err := run(t, `
size: [100, 100]
surface: [100, 100]
brush: {color: "#ff0000", size: 4}
steps:
  - tool: pencil
  - drag: {from: [10, 50], to: [90, 50], steps: 4}
  - export: out.png
`, dir)
	if err != nil {
		t.Fatalf("Run() = %v", err)
	}
	if got := ed.History().Len(); got != 1 {
		t.Errorf("History().Len() = %d, want 1", got)
	}

	f, err := os.Open(filepath.Join(dir, "out.png"))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("png.Decode() = %v", err)
	}
	if r, _, _, a := img.At(50, 50).RGBA(); a>>8 < 200 || r>>8 < 200 {
		t.Errorf("pixel(50, 50) = %v, want red", img.At(50, 50))
	}
}

func TestRunLayersAndKeys(t *testing.T) {
	ed, err := run(t, `
size: [40, 40]
surface: [40, 40]
steps:
  - layer: add
  - blend: multiply
  - opacity: 0.5
  - layer: add
  - visible: false
  - layer: "0"
  - key: r
  - key: space
  - keyup: space
`, "")
	if err != nil {
		t.Fatalf("Run() = %v", err)
	}
	d := ed.Document()
	if d.Len() != 3 || d.ActiveIndex() != 0 {
		t.Fatalf("Len, ActiveIndex = %d, %d, want 3, 0", d.Len(), d.ActiveIndex())
	}
	l1, _ := d.Layer(1)
	if l1.Blend != claydraw.BlendMultiply || l1.Opacity != 0.5 {
		t.Errorf("layer 1 = %v at %g, want multiply at 0.5", l1.Blend, l1.Opacity)
	}
	if l2, _ := d.Layer(2); l2.Visible {
		t.Error("layer 2 visible, want hidden")
	}
	if ed.Tools().Mode() != claydraw.ToolRect {
		t.Errorf("Mode() = %v, want rect", ed.Tools().Mode())
	}
}

func TestRunTextAndUndo(t *testing.T) {
	ed, err := run(t, `
size: [100, 60]
surface: [100, 60]
steps:
  - text: Hi
  - tool: text
  - down: [5, 5]
  - up: [5, 5]
  - key: ctrl+z
  - key: ctrl+y
  - undo: true
`, "")
	if err != nil {
		t.Fatalf("Run() = %v", err)
	}
	h := ed.History()
	if h.Len() != 0 || h.RedoLen() != 1 {
		t.Errorf("Len, RedoLen = %d, %d, want 0, 1", h.Len(), h.RedoLen())
	}
}

func TestRunViewSteps(t *testing.T) {
	ed, err := run(t, `
size: [100, 100]
surface: [100, 100]
steps:
  - zoom: 2
  - pan: [5, -5]
  - tool: pan
  - drag: {from: [0, 0], to: [10, 10]}
  - drag: {from: [0, 0], to: [1, 1], steps: 1}
    button: middle
`, "")
	if err != nil {
		t.Fatalf("Run() = %v", err)
	}
	v := ed.View()
	if v.Zoom() != 2 {
		t.Errorf("Zoom() = %g, want 2", v.Zoom())
	}
	if v.Pan.X != 16 || v.Pan.Y != 6 {
		t.Errorf("Pan = %v, want (16, 6)", v.Pan)
	}
}

func TestRunResizeRotate(t *testing.T) {
	ed, err := run(t, `
size: [30, 20]
steps:
  - resize: [60, 40]
  - rotate: true
`, "")
	if err != nil {
		t.Fatalf("Run() = %v", err)
	}
	if w, h := ed.Document().Width(), ed.Document().Height(); w != 40 || h != 60 {
		t.Errorf("size = %dx%d, want 40x60", w, h)
	}
}

func TestRunStopsAtFirstError(t *testing.T) {
	tests := []struct {
		name    string
		steps   string
		index   int
		wantBad bool
	}{
		{"unknown tool", "  - tool: pencil\n  - tool: lasso\n", 1, false},
		{"two actions", "  - {tool: pencil, undo: true}\n", 0, true},
		{"empty step", "  - {}\n", 0, true},
		{"bad point", "  - down: [1]\n", 0, true},
		{"bad layer", "  - layer: top\n", 0, true},
		{"layer index", "  - layer: \"4\"\n", 0, false},
		{"nothing to undo", "  - rotate: true\n  - undo: true\n  - undo: true\n  - undo: true\n", 2, false},
		{"missing import", "  - import: nope.png\n", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, "size: [10, 10]\nsteps:\n"+tt.steps, t.TempDir())
			var se *StepError
			if !errors.As(err, &se) {
				t.Fatalf("Run() = %v, want *StepError", err)
			}
			if se.Index != tt.index {
				t.Errorf("Index = %d, want %d (%v)", se.Index, tt.index, err)
			}
			if got := errors.Is(err, ErrBadStep); got != tt.wantBad {
				t.Errorf("errors.Is(ErrBadStep) = %v, want %v (%v)", got, tt.wantBad, err)
			}
		})
	}
}

func TestParseRejectsBadHeader(t *testing.T) {
	for _, src := range []string{"size: [1, 2, 3]", "surface: [4]", "steps: {"} {
		if _, err := Parse([]byte(src)); err == nil {
			t.Errorf("Parse(%q) = nil error", src)
		}
	}
}

func TestParseKey(t *testing.T) {
	tests := []struct {
		in   string
		key  string
		mods claydraw.Modifiers
	}{
		{"z", "z", 0},
		{"ctrl+z", "z", claydraw.ModCtrl},
		{"Meta+Shift+y", "y", claydraw.ModMeta | claydraw.ModShift},
		{"space", claydraw.KeySpace, 0},
		{"Escape", claydraw.KeyEscape, 0},
	}
	for _, tt := range tests {
		key, mods := parseKey(tt.in)
		if key != tt.key || mods != tt.mods {
			t.Errorf("parseKey(%q) = %q, %v, want %q, %v", tt.in, key, mods, tt.key, tt.mods)
		}
	}
}
