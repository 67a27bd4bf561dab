package claydraw

import "errors"

var (
	// ErrLayerIndex is returned when a layer index is out of range.
	ErrLayerIndex = errors.New("claydraw: layer index out of range")

	// ErrLastLayer is returned when removing the only remaining layer.
	ErrLastLayer = errors.New("claydraw: cannot remove the last layer")

	// ErrLayerLocked is returned when a tool or import targets a locked layer.
	ErrLayerLocked = errors.New("claydraw: active layer is locked")

	// ErrInvalidSize is returned for non-positive document dimensions.
	ErrInvalidSize = errors.New("claydraw: invalid document size")

	// ErrUnsupportedImage is returned when imported data is not a known
	// image format.
	ErrUnsupportedImage = errors.New("claydraw: unsupported image data")

	// ErrNothingToUndo is returned by History.Undo with an empty undo stack.
	ErrNothingToUndo = errors.New("claydraw: nothing to undo")

	// ErrNothingToRedo is returned by History.Redo with an empty redo stack.
	ErrNothingToRedo = errors.New("claydraw: nothing to redo")

	// ErrPromptCancelled is returned when a prompt was dismissed or answered
	// with unusable input.
	ErrPromptCancelled = errors.New("claydraw: prompt cancelled")
)
