package claydraw

import (
	"image"
	"testing"

	"github.com/gogpu/claydraw/internal/raster"
)

func TestPixmapSurfaceReadRegion(t *testing.T) {
	s := NewPixmapSurface(20, 20)
	raster.Fill(s.Image(), image.Rect(5, 5, 10, 10), red, BlendCopy)

	got := s.ReadRegion(image.Rect(5, 5, 15, 15))
	if b := got.Bounds(); b.Dx() != 10 || b.Dy() != 10 {
		t.Fatalf("ReadRegion() bounds = %v, want 10x10", b)
	}
	if c := pixel(got, 0, 0); c != red {
		t.Errorf("ReadRegion() pixel(0, 0) = %v, want %v", c, red)
	}
	if c := pixel(got, 9, 9); c.A != 0 {
		t.Errorf("ReadRegion() pixel(9, 9) = %v, want transparent", c)
	}

	s.Clear()
	if !raster.IsTransparent(s.Image(), s.Bounds()) {
		t.Error("Clear() left pixels")
	}
}

func TestPixmapSurfaceResize(t *testing.T) {
	s := NewPixmapSurface(10, 10)
	before := s.Image()
	s.Resize(10, 10)
	if s.Image() != before {
		t.Error("Resize() to the same size reallocated")
	}
	s.Resize(30, 40)
	if b := s.Bounds(); b.Dx() != 30 || b.Dy() != 40 {
		t.Errorf("Bounds() = %v, want 30x40", b)
	}
}
