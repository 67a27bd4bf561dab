package claydraw

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/gogpu/gg/text"
	"gopkg.in/yaml.v3"
)

// Config is the on-disk editor configuration.
//
// Example file:
//
//	width: 1600
//	height: 1000
//	surface: {width: 1280, height: 800}
//	history: 50
//	handle_size: 8
//	brush: {color: "#1d4ed8", size: 6}
//	font: /usr/share/fonts/truetype/inter/Inter-Regular.ttf
type Config struct {
	Width   int           `yaml:"width"`
	Height  int           `yaml:"height"`
	Surface SurfaceConfig `yaml:"surface"`

	// History is the undo capacity. Zero keeps the default; a negative
	// value disables history.
	History    int     `yaml:"history"`
	HandleSize float64 `yaml:"handle_size"`
	Brush      Brush   `yaml:"brush"`

	// Font is the path of a TrueType/OpenType font for the text tool.
	Font string `yaml:"font"`
}

// SurfaceConfig is the display surface size.
type SurfaceConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// DefaultConfig returns the configuration matching NewEditor's defaults.
func DefaultConfig() Config {
	return Config{
		Width:      DefaultWidth,
		Height:     DefaultHeight,
		Surface:    SurfaceConfig{Width: DefaultSurfaceWidth, Height: DefaultSurfaceHeight},
		History:    DefaultHistoryCapacity,
		HandleSize: DefaultHandleSize,
		Brush:      DefaultBrush,
	}
}

// LoadConfig reads a YAML configuration file. Fields missing from the file
// keep their defaults; a missing file yields DefaultConfig.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("claydraw: read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("claydraw: parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Options converts the configuration to editor options. The font file, if
// any, is read and parsed here.
func (c Config) Options() ([]EditorOption, error) {
	opts := []EditorOption{
		WithSize(c.Width, c.Height),
		WithSurfaceSize(c.Surface.Width, c.Surface.Height),
		WithHandleSize(c.HandleSize),
		WithBrush(c.Brush),
	}
	switch {
	case c.History < 0:
		opts = append(opts, WithHistoryCapacity(0))
	case c.History > 0:
		opts = append(opts, WithHistoryCapacity(c.History))
	}
	if c.Font != "" {
		data, err := os.ReadFile(c.Font)
		if err != nil {
			return nil, fmt.Errorf("claydraw: read font: %w", err)
		}
		src, err := text.NewFontSource(data)
		if err != nil {
			return nil, fmt.Errorf("claydraw: parse font %s: %w", c.Font, err)
		}
		opts = append(opts, WithFont(src))
	}
	return opts, nil
}
