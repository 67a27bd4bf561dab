// Package blend implements the canvas composite operators and blend modes
// used to stack layers.
//
// All operations work on premultiplied RGBA bytes, the layout of
// image.RGBA, so layer buffers can be blended in place without conversion.
//
// References:
//   - Porter-Duff: "Compositing Digital Images" (1984)
//   - W3C Compositing and Blending Level 1: https://www.w3.org/TR/compositing-1/
package blend

import (
	"fmt"
	"strings"
)

// Mode identifies a composite operator. Names follow the CSS / canvas
// globalCompositeOperation vocabulary.
type Mode uint8

const (
	// Porter-Duff operators
	SourceOver      Mode = iota // S + D*(1-Sa) [default]
	SourceIn                    // S*Da
	SourceOut                   // S*(1-Da)
	SourceAtop                  // S*Da + D*(1-Sa)
	DestinationOver             // S*(1-Da) + D
	DestinationIn               // D*Sa
	DestinationOut              // D*(1-Sa), used by the eraser
	DestinationAtop             // S*(1-Da) + D*Sa
	Lighter                     // S + D (clamped)
	Copy                        // S
	Xor                         // S*(1-Da) + D*(1-Sa)

	// Separable blend modes
	Multiply
	Screen
	Overlay
	Darken
	Lighten
	ColorDodge
	ColorBurn
	HardLight
	SoftLight
	Difference
	Exclusion

	// Non-separable blend modes
	Hue
	Saturation
	Color
	Luminosity

	modeCount
)

// Normal is the user-facing name of SourceOver.
const Normal = SourceOver

var modeNames = [modeCount]string{
	SourceOver:      "source-over",
	SourceIn:        "source-in",
	SourceOut:       "source-out",
	SourceAtop:      "source-atop",
	DestinationOver: "destination-over",
	DestinationIn:   "destination-in",
	DestinationOut:  "destination-out",
	DestinationAtop: "destination-atop",
	Lighter:         "lighter",
	Copy:            "copy",
	Xor:             "xor",
	Multiply:        "multiply",
	Screen:          "screen",
	Overlay:         "overlay",
	Darken:          "darken",
	Lighten:         "lighten",
	ColorDodge:      "color-dodge",
	ColorBurn:       "color-burn",
	HardLight:       "hard-light",
	SoftLight:       "soft-light",
	Difference:      "difference",
	Exclusion:       "exclusion",
	Hue:             "hue",
	Saturation:      "saturation",
	Color:           "color",
	Luminosity:      "luminosity",
}

// String returns the canvas name of the mode.
func (m Mode) String() string {
	if m < modeCount {
		return modeNames[m]
	}
	return fmt.Sprintf("Mode(%d)", m)
}

// Valid reports whether m is a known mode.
func (m Mode) Valid() bool {
	return m < modeCount
}

// Modes returns every supported mode in declaration order.
func Modes() []Mode {
	out := make([]Mode, 0, modeCount)
	for m := Mode(0); m < modeCount; m++ {
		out = append(out, m)
	}
	return out
}

// Parse maps a canvas operator name to its Mode. "normal" is accepted as an
// alias of "source-over". Matching is case-insensitive.
func Parse(name string) (Mode, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "normal" {
		return SourceOver, nil
	}
	for m, n := range modeNames {
		if n == name {
			return Mode(m), nil
		}
	}
	return SourceOver, fmt.Errorf("blend: unknown mode %q", name)
}

// MarshalText implements encoding.TextMarshaler.
func (m Mode) MarshalText() ([]byte, error) {
	if !m.Valid() {
		return nil, fmt.Errorf("blend: invalid mode %d", m)
	}
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Mode) UnmarshalText(text []byte) error {
	v, err := Parse(string(text))
	if err != nil {
		return err
	}
	*m = v
	return nil
}

// Func is the signature of a per-pixel blend operation.
// All values are premultiplied alpha, 0-255.
type Func func(sr, sg, sb, sa, dr, dg, db, da byte) (r, g, b, a byte)

var funcs = [modeCount]Func{
	SourceOver:      sourceOver,
	SourceIn:        sourceIn,
	SourceOut:       sourceOut,
	SourceAtop:      sourceAtop,
	DestinationOver: destinationOver,
	DestinationIn:   destinationIn,
	DestinationOut:  destinationOut,
	DestinationAtop: destinationAtop,
	Lighter:         lighter,
	Copy:            copySource,
	Xor:             xor,
	Multiply:        multiply,
	Screen:          screen,
	Overlay:         overlay,
	Darken:          darken,
	Lighten:         lighten,
	ColorDodge:      colorDodge,
	ColorBurn:       colorBurn,
	HardLight:       hardLight,
	SoftLight:       softLight,
	Difference:      difference,
	Exclusion:       exclusion,
	Hue:             hue,
	Saturation:      saturation,
	Color:           colorMode,
	Luminosity:      luminosity,
}

// FuncFor returns the blend function for the given mode.
// Unknown modes fall back to source-over.
func FuncFor(m Mode) Func {
	if m < modeCount {
		return funcs[m]
	}
	return sourceOver
}
