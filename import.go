// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package claydraw

import (
	"bytes"
	"fmt"
	"image"
	"io"
	"os"

	// Registered decoders for Import.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/gogpu/claydraw/internal/raster"
	"github.com/h2non/filetype"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

// sniffLen is how many leading bytes are inspected to find the format.
const sniffLen = 512

// Decode decodes raster image data (PNG, JPEG, GIF, BMP, TIFF, WebP) or an
// SVG document into a premultiplied buffer. SVG documents are rasterised
// at their viewBox size, or at fallback when they have none.
func Decode(data []byte, fallback image.Point) (*image.RGBA, string, error) {
	head := data[:min(len(data), sniffLen)]
	if isSVG(head) {
		img, err := rasterizeSVG(data, fallback)
		return img, "svg", err
	}
	if !filetype.IsImage(head) {
		return nil, "", ErrUnsupportedImage
	}
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		kind, _ := filetype.Match(head)
		return nil, kind.Extension, fmt.Errorf("%w: %s: %v", ErrUnsupportedImage, kind.MIME.Value, err)
	}
	return toRGBA(img), format, nil
}

// Import reads an image and draws it at its natural size onto the active
// layer's top-left corner, then renders and commits. The data is fully
// decoded before anything is drawn, so a failure leaves the document
// untouched.
func (e *Editor) Import(r io.Reader) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("claydraw: import: %w", err)
	}
	if e.doc.Active().Locked {
		return ErrLayerLocked
	}
	img, format, err := Decode(data, image.Pt(e.doc.Width(), e.doc.Height()))
	if err != nil {
		return err
	}
	Logger().Info("claydraw: imported", "format", format, "size", img.Bounds().Size())
	return e.ImportImage(img)
}

// ImportImage draws an already decoded image at its natural size onto the
// active layer's top-left corner, then renders and commits.
func (e *Editor) ImportImage(img *image.RGBA) error {
	if e.doc.Active().Locked {
		return ErrLayerLocked
	}
	raster.Composite(e.doc.Active().img, e.doc.Bounds(), img, img.Bounds().Min, 1, BlendNormal)
	e.RequestRender()
	e.Commit()
	return nil
}

// Open imports the image file at path. See Import.
func (e *Editor) Open(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("claydraw: open: %w", err)
	}
	defer f.Close()
	return e.Import(f)
}

// isSVG reports whether head looks like the start of an SVG document.
func isSVG(head []byte) bool {
	head = bytes.TrimLeft(head, "\xef\xbb\xbf \t\r\n")
	if !bytes.HasPrefix(head, []byte("<")) {
		return false
	}
	return bytes.Contains(head, []byte("<svg"))
}

func rasterizeSVG(data []byte, fallback image.Point) (*image.RGBA, error) {
	icon, err := oksvg.ReadIconStream(bytes.NewReader(data), oksvg.WarnErrorMode)
	if err != nil {
		return nil, fmt.Errorf("%w: svg: %v", ErrUnsupportedImage, err)
	}
	w, h := int(icon.ViewBox.W), int(icon.ViewBox.H)
	if w <= 0 || h <= 0 {
		w, h = fallback.X, fallback.Y
	}
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: svg without size", ErrUnsupportedImage)
	}
	icon.SetTarget(0, 0, float64(w), float64(h))
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	scanner := rasterx.NewScannerGV(w, h, img, img.Bounds())
	icon.Draw(rasterx.NewDasher(w, h, scanner), 1)
	return img, nil
}
