// Command claydraw replays gesture scripts against a headless drawing
// editor and converts images between the formats it imports and exports.
package main

import (
	"fmt"
	"image"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gogpu/claydraw"
	"github.com/gogpu/claydraw/script"
	"github.com/tdewolff/argp"
)

type Root struct{}

type Replay struct {
	Config  string `short:"c" default:"claydraw.yaml" desc:"Editor configuration file"`
	Output  string `short:"o" desc:"Export the result to this file after the script"`
	Verbose bool   `short:"v" desc:"Log editor activity to stderr"`
	Script  string `index:"0" desc:"Gesture script (YAML)"`
}

type Convert struct {
	Width   int    `short:"W" desc:"Resize to this width"`
	Height  int    `short:"H" desc:"Resize to this height"`
	Rotate  int    `short:"r" desc:"Clockwise quarter turns"`
	Verbose bool   `short:"v" desc:"Log editor activity to stderr"`
	Input   string `index:"0" desc:"Input image (png, jpg, gif, bmp, tiff, webp, svg)"`
	Output  string `index:"1" desc:"Output image (png, jpg, svg, min.svg)"`
}

func main() {
	root := argp.NewCmd(&Root{}, "Headless layered drawing engine")
	root.AddCmd(&Replay{}, "run", "Replay a gesture script")
	root.AddCmd(&Convert{}, "convert", "Convert, resize or rotate an image")
	root.Parse()
	root.PrintHelp()
}

func (cmd *Root) Run() error {
	return argp.ShowUsage
}

func verbose(on bool) {
	if on {
		claydraw.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}
}

func (cmd *Replay) Run() error {
	if cmd.Script == "" {
		return argp.ShowUsage
	}
	verbose(cmd.Verbose)

	cfg, err := claydraw.LoadConfig(cmd.Config)
	if err != nil {
		return err
	}
	opts, err := cfg.Options()
	if err != nil {
		return err
	}
	s, err := script.Load(cmd.Script)
	if err != nil {
		return err
	}

	ed := claydraw.NewEditor(append(opts, s.Options()...)...)
	if err := s.Run(ed, filepath.Dir(cmd.Script)); err != nil {
		return err
	}
	if cmd.Output != "" {
		return ed.Save(cmd.Output)
	}
	return nil
}

func (cmd *Convert) Run() error {
	if cmd.Input == "" {
		return argp.ShowUsage
	}
	verbose(cmd.Verbose)

	data, err := os.ReadFile(cmd.Input)
	if err != nil {
		return err
	}
	img, _, err := claydraw.Decode(data, image.Pt(claydraw.DefaultWidth, claydraw.DefaultHeight))
	if err != nil {
		return fmt.Errorf("%s: %w", cmd.Input, err)
	}

	size := img.Bounds().Size()
	ed := claydraw.NewEditor(
		claydraw.WithSize(size.X, size.Y),
		claydraw.WithSurfaceSize(size.X, size.Y),
		claydraw.WithHistoryCapacity(0),
	)
	if err := ed.ImportImage(img); err != nil {
		return err
	}
	if cmd.Width > 0 || cmd.Height > 0 {
		w, h := cmd.Width, cmd.Height
		if w <= 0 {
			w = size.X * h / size.Y
		}
		if h <= 0 {
			h = size.Y * w / size.X
		}
		if err := ed.Resize(max(w, 1), max(h, 1)); err != nil {
			return err
		}
	}
	for range ((cmd.Rotate % 4) + 4) % 4 {
		ed.Rotate()
	}

	out := cmd.Output
	if out == "" {
		out = claydraw.ExportNamePNG
	}
	return ed.Save(out)
}
