package claydraw

import (
	"image"
	"testing"

	"github.com/gogpu/claydraw/internal/raster"
	"github.com/gogpu/claydraw/viewport"
)

func TestBrushSizes(t *testing.T) {
	tests := []struct {
		size     int
		width    float64
		textSize float64
	}{
		{0, 1, 12},
		{1, 1, 12},
		{2, 2, 12},
		{4, 4, 24},
		{10, 10, 60},
	}
	for _, tt := range tests {
		b := Brush{Color: "#000", Size: tt.size}
		if got := b.width(); got != tt.width {
			t.Errorf("Brush{Size: %d}.width() = %g, want %g", tt.size, got, tt.width)
		}
		if got := b.textSize(); got != tt.textSize {
			t.Errorf("Brush{Size: %d}.textSize() = %g, want %g", tt.size, got, tt.textSize)
		}
	}
}

func TestBrushFillColor(t *testing.T) {
	c := Brush{Color: "#ff0000", Size: 1}.fillColor()
	if c.R != 1 || c.G != 0 || c.A != float64(0x44)/255 {
		t.Errorf("fillColor() = %+v, want red at alpha 0x44", c)
	}
}

func TestPaddedBox(t *testing.T) {
	bounds := image.Rect(0, 0, 100, 100)
	tests := []struct {
		name string
		pad  float64
		pts  []viewport.Point
		want image.Rectangle
	}{
		{"none", 2, nil, image.Rectangle{}},
		{"single", 2, []viewport.Point{{X: 10, Y: 10}}, image.Rect(8, 8, 13, 13)},
		{"reversed", 0, []viewport.Point{{X: 20, Y: 30}, {X: 10.5, Y: 5.5}}, image.Rect(10, 5, 21, 31)},
		{"clipped", 4, []viewport.Point{{X: -10, Y: 50}, {X: 200, Y: 50}}, image.Rect(0, 46, 100, 55)},
		{"outside", 1, []viewport.Point{{X: -50, Y: -50}}, image.Rectangle{}},
	}
	for _, tt := range tests {
		if got := paddedBox(bounds, tt.pad, tt.pts...); !got.Eq(tt.want) {
			t.Errorf("%s: paddedBox() = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestStrokeSegmentOutsideIsNoop(t *testing.T) {
	dst := raster.New(20, 20)
	strokeSegment(dst, viewport.Pt(-50, -50), viewport.Pt(-40, -40), Brush{Color: "#000", Size: 2}, BlendNormal)
	if !raster.IsTransparent(dst, dst.Bounds()) {
		t.Error("stroke outside the buffer painted pixels")
	}
}

func TestPaintShapeDegenerateEllipse(t *testing.T) {
	dst := raster.New(20, 20)
	paintShape(dst, viewport.Rect{X: 5, Y: 5, W: 10, H: 0}, shapeEllipse, Brush{Color: "#000", Size: 2})
	if !raster.IsTransparent(dst, dst.Bounds()) {
		t.Error("zero-height ellipse painted pixels")
	}
}

func TestDefaultFontSource(t *testing.T) {
	a, err := defaultFontSource()
	if err != nil {
		t.Fatalf("defaultFontSource() = %v", err)
	}
	b, _ := defaultFontSource()
	if a != b {
		t.Error("defaultFontSource() parsed the font twice")
	}
}
