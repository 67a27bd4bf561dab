package blend

import "testing"

func TestMulDiv255(t *testing.T) {
	tests := []struct {
		name string
		a, b byte
		want byte
	}{
		{"zero * zero", 0, 0, 0},
		{"zero * max", 0, 255, 0},
		{"max * max", 255, 255, 255},
		{"half * half", 128, 128, 64},
		{"255 * 128", 255, 128, 128},
		{"1 * 1", 1, 1, 0},
		{"100 * 100", 100, 100, 39},
		{"200 * 200", 200, 200, 157},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := mulDiv255(tt.a, tt.b); got != tt.want {
				t.Errorf("mulDiv255(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		in      string
		want    Mode
		wantErr bool
	}{
		{"normal", SourceOver, false},
		{"source-over", SourceOver, false},
		{"MULTIPLY", Multiply, false},
		{" destination-out ", DestinationOut, false},
		{"color-dodge", ColorDodge, false},
		{"luminosity", Luminosity, false},
		{"bogus", SourceOver, true},
	}
	for _, tt := range tests {
		got, err := Parse(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("Parse(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("Parse(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestModeNamesRoundTrip(t *testing.T) {
	for _, m := range Modes() {
		got, err := Parse(m.String())
		if err != nil {
			t.Fatalf("Parse(%q) error = %v", m.String(), err)
		}
		if got != m {
			t.Errorf("Parse(%q) = %v, want %v", m.String(), got, m)
		}
	}
	if Mode(200).Valid() {
		t.Error("Mode(200).Valid() = true, want false")
	}
}

func TestPixel(t *testing.T) {
	red := [4]byte{255, 0, 0, 255}
	halfBlue := [4]byte{0, 0, 128, 128}
	gray := [4]byte{128, 128, 128, 255}
	clear := [4]byte{}

	tests := []struct {
		name     string
		src, dst [4]byte
		mode     Mode
		want     [4]byte
	}{
		{"source-over", halfBlue, red, SourceOver, [4]byte{127, 0, 128, 255}},
		{"source-over onto empty", halfBlue, clear, SourceOver, halfBlue},
		{"multiply", halfBlue, red, Multiply, [4]byte{127, 0, 0, 255}},
		{"multiply onto empty", halfBlue, clear, Multiply, halfBlue},
		{"screen", gray, gray, Screen, [4]byte{192, 192, 192, 255}},
		{"destination-out opaque", red, gray, DestinationOut, clear},
		{"destination-out transparent", clear, gray, DestinationOut, gray},
		{"copy", halfBlue, red, Copy, halfBlue},
		{"destination-in transparent", clear, red, DestinationIn, clear},
		{"lighter clamps", red, red, Lighter, red},
		{"difference same", gray, gray, Difference, [4]byte{0, 0, 0, 255}},
		{"darken", gray, red, Darken, [4]byte{128, 0, 0, 255}},
		{"lighten", gray, red, Lighten, [4]byte{255, 128, 128, 255}},
		{"hue of gray keeps backdrop luminance", [4]byte{100, 100, 100, 255}, [4]byte{200, 200, 200, 255}, Hue, [4]byte{200, 200, 200, 255}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Pixel(tt.src, tt.dst, tt.mode); got != tt.want {
				t.Errorf("Pixel(%v, %v, %v) = %v, want %v", tt.src, tt.dst, tt.mode, got, tt.want)
			}
		})
	}
}

func TestSpanGlobalAlpha(t *testing.T) {
	dst := make([]byte, 8)
	src := []byte{255, 0, 0, 255, 0, 255, 0, 255}
	Span(dst, src, 2, 128, SourceOver)

	want := []byte{128, 0, 0, 128, 0, 128, 0, 128}
	for i := range want {
		if dst[i] != want[i] {
			t.Fatalf("Span() = %v, want %v", dst, want)
		}
	}
}

func TestSpanOrderMatters(t *testing.T) {
	red := []byte{255, 0, 0, 255}
	halfBlue := []byte{0, 0, 128, 128}

	ab := make([]byte, 4)
	Span(ab, red, 1, 255, SourceOver)
	Span(ab, halfBlue, 1, 255, Multiply)

	ba := make([]byte, 4)
	Span(ba, halfBlue, 1, 255, Multiply)
	Span(ba, red, 1, 255, SourceOver)

	if string(ab) == string(ba) {
		t.Errorf("composite order had no effect: %v", ab)
	}
}
