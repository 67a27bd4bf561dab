package claydraw

import "github.com/gogpu/claydraw/internal/blend"

// BlendMode selects how a layer is composited onto the layers below it.
// Names follow the canvas globalCompositeOperation vocabulary.
type BlendMode = blend.Mode

// Blend modes.
const (
	// BlendNormal draws the layer over the backdrop (source-over).
	BlendNormal = blend.SourceOver

	// Porter-Duff operators.
	BlendSourceIn        = blend.SourceIn
	BlendSourceOut       = blend.SourceOut
	BlendSourceAtop      = blend.SourceAtop
	BlendDestinationOver = blend.DestinationOver
	BlendDestinationIn   = blend.DestinationIn
	BlendDestinationOut  = blend.DestinationOut
	BlendDestinationAtop = blend.DestinationAtop
	BlendLighter         = blend.Lighter
	BlendCopy            = blend.Copy
	BlendXor             = blend.Xor

	// Separable blend modes. Formula given as B(backdrop, source).
	BlendMultiply   = blend.Multiply   // Cb * Cs
	BlendScreen     = blend.Screen     // 1 - (1-Cb)*(1-Cs)
	BlendOverlay    = blend.Overlay    // HardLight with layers swapped
	BlendDarken     = blend.Darken     // min(Cb, Cs)
	BlendLighten    = blend.Lighten    // max(Cb, Cs)
	BlendColorDodge = blend.ColorDodge // Cb / (1 - Cs)
	BlendColorBurn  = blend.ColorBurn  // 1 - (1 - Cb) / Cs
	BlendHardLight  = blend.HardLight
	BlendSoftLight  = blend.SoftLight
	BlendDifference = blend.Difference // |Cb - Cs|
	BlendExclusion  = blend.Exclusion  // Cb + Cs - 2*Cb*Cs

	// Non-separable blend modes.
	BlendHue        = blend.Hue
	BlendSaturation = blend.Saturation
	BlendColor      = blend.Color
	BlendLuminosity = blend.Luminosity
)

// ParseBlendMode parses a canvas operator name such as "multiply" or
// "source-over". "normal" is an alias of "source-over".
func ParseBlendMode(name string) (BlendMode, error) {
	return blend.Parse(name)
}

// BlendModes lists every supported mode.
func BlendModes() []BlendMode {
	return blend.Modes()
}
