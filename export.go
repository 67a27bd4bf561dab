// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package claydraw

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/ajstarks/svgo"
	"github.com/gogpu/claydraw/internal/raster"
	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/css"
	minsvg "github.com/tdewolff/minify/v2/svg"
)

// DefaultJPEGQuality is the JPEG quality used when none is given.
const DefaultJPEGQuality = 92

// Export file names used by the CLI when no output path is given.
const (
	ExportNamePNG = "clay-draw.png"
	ExportNameJPG = "clay-draw.jpg"
	ExportNameSVG = "clay-draw.svg"
)

// Snapshot flattens the visible layers and returns them PNG-encoded with
// fast compression. It decodes to the same image ExportPNG writes.
func (e *Editor) Snapshot() ([]byte, error) {
	var buf bytes.Buffer
	if err := snapshotEncoder.Encode(&buf, e.doc.Flatten()); err != nil {
		return nil, fmt.Errorf("claydraw: snapshot: %w", err)
	}
	return buf.Bytes(), nil
}

var snapshotEncoder = png.Encoder{CompressionLevel: png.BestSpeed}

// ExportPNG writes the flattened document as PNG.
func (e *Editor) ExportPNG(w io.Writer) error {
	if err := png.Encode(w, e.doc.Flatten()); err != nil {
		return fmt.Errorf("claydraw: export png: %w", err)
	}
	Logger().Info("claydraw: exported", "format", "png")
	return nil
}

// ExportJPEG writes the flattened document as JPEG over a white
// background. A quality outside [1, 100] selects DefaultJPEGQuality.
func (e *Editor) ExportJPEG(w io.Writer, quality int) error {
	if quality < 1 || quality > 100 {
		quality = DefaultJPEGQuality
	}
	out := NewPixmapSurface(e.doc.Width(), e.doc.Height())
	raster.Fill(out.Image(), out.Bounds(), color.White, BlendCopy)
	e.doc.CompositeTo(out, identity)
	if err := jpeg.Encode(w, out.Image(), &jpeg.Options{Quality: quality}); err != nil {
		return fmt.Errorf("claydraw: export jpeg: %w", err)
	}
	Logger().Info("claydraw: exported", "format", "jpeg", "quality", quality)
	return nil
}

// SVGOptions controls ExportSVG.
type SVGOptions struct {
	// Minify runs the document through an SVG minifier.
	Minify bool
}

// ExportSVG writes an SVG wrapping every visible layer as an embedded PNG
// image, bottom to top, with the layer opacity and its blend mode as CSS
// mix-blend-mode. The result is raster content in an SVG container, not
// vector data.
func (e *Editor) ExportSVG(w io.Writer, opts SVGOptions) error {
	var buf bytes.Buffer
	canvas := svg.New(&buf)
	canvas.Start(e.doc.Width(), e.doc.Height())
	for _, l := range e.doc.layers {
		if !l.Visible {
			continue
		}
		uri, err := dataURI(l.img)
		if err != nil {
			return fmt.Errorf("claydraw: export svg: layer %q: %w", l.Name, err)
		}
		canvas.Image(0, 0, e.doc.Width(), e.doc.Height(), uri,
			`opacity="`+formatNumber(l.Opacity)+`"`,
			"mix-blend-mode:"+cssBlendMode(l.Blend),
		)
	}
	canvas.End()

	if opts.Minify {
		m := minify.New()
		m.AddFunc("text/css", css.Minify)
		m.AddFunc("image/svg+xml", minsvg.Minify)
		if err := m.Minify("image/svg+xml", w, &buf); err != nil {
			return fmt.Errorf("claydraw: minify svg: %w", err)
		}
	} else if _, err := buf.WriteTo(w); err != nil {
		return fmt.Errorf("claydraw: export svg: %w", err)
	}
	Logger().Info("claydraw: exported", "format", "svg", "minified", opts.Minify)
	return nil
}

func dataURI(img image.Image) (string, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", err
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

func formatNumber(f float64) string {
	return string(minify.Number([]byte(strconv.FormatFloat(f, 'f', -1, 64)), 3))
}

// cssBlendMode maps a blend mode to a CSS mix-blend-mode value. Porter-Duff
// operators have no CSS equivalent and fall back to normal.
func cssBlendMode(m BlendMode) string {
	if m >= BlendMultiply && m.Valid() {
		return m.String()
	}
	return "normal"
}

// Save exports the document to path, choosing the format from the file
// extension: .png, .jpg/.jpeg or .svg. A ".min.svg" suffix minifies.
func (e *Editor) Save(path string) (err error) {
	lower := strings.ToLower(path)
	var write func(io.Writer) error
	switch filepath.Ext(lower) {
	case ".png":
		write = e.ExportPNG
	case ".jpg", ".jpeg":
		write = func(w io.Writer) error { return e.ExportJPEG(w, DefaultJPEGQuality) }
	case ".svg":
		opts := SVGOptions{Minify: strings.HasSuffix(lower, ".min.svg")}
		write = func(w io.Writer) error { return e.ExportSVG(w, opts) }
	default:
		return fmt.Errorf("claydraw: save %s: unknown extension", path)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("claydraw: save: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("claydraw: save: %w", cerr)
		}
	}()
	return write(f)
}
