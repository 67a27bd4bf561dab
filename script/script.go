// Package script replays YAML gesture scripts against a claydraw.Editor.
//
// A script sets up the document and then lists steps, each naming exactly
// one action:
//
//	size: [400, 300]
//	surface: [400, 300]
//	brush: {color: "#1d4ed8", size: 6}
//	steps:
//	  - tool: rect
//	  - drag: {from: [20, 20], to: [180, 120], steps: 4}
//	  - key: ctrl+z
//	  - layer: add
//	  - blend: multiply
//	  - text: Hello
//	  - tool: text
//	  - down: [40, 40]
//	  - up: [40, 40]
//	  - export: out.png
//
// Points are device (surface) coordinates, the same space pointer events
// arrive in. Relative import and export paths resolve against the
// directory passed to Run.
package script

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/gogpu/claydraw"
	"gopkg.in/yaml.v3"
)

// ErrBadStep is wrapped by errors for steps that do not name exactly one
// well-formed action.
var ErrBadStep = errors.New("script: malformed step")

// Script is a parsed gesture script.
type Script struct {
	Size    []int           `yaml:"size"`
	Surface []int           `yaml:"surface"`
	Brush   *claydraw.Brush `yaml:"brush"`
	Steps   []Step          `yaml:"steps"`
}

// Step is one scripted action. Exactly one field other than Button may be
// set.
type Step struct {
	Tool  string    `yaml:"tool"`
	Down  []float64 `yaml:"down"`
	Move  []float64 `yaml:"move"`
	Up    []float64 `yaml:"up"`
	Drag  *Drag     `yaml:"drag"`
	Key   string    `yaml:"key"`
	KeyUp string    `yaml:"keyup"`

	Zoom *float64  `yaml:"zoom"`
	Pan  []float64 `yaml:"pan"`

	Layer   string   `yaml:"layer"`
	Opacity *float64 `yaml:"opacity"`
	Blend   string   `yaml:"blend"`
	Visible *bool    `yaml:"visible"`

	Resize   []int           `yaml:"resize"`
	Rotate   bool            `yaml:"rotate"`
	Clear    bool            `yaml:"clear"`
	Undo     bool            `yaml:"undo"`
	Redo     bool            `yaml:"redo"`
	SetBrush *claydraw.Brush `yaml:"set_brush"`

	// Text queues an answer for the next prompt.
	Text *string `yaml:"text"`

	Import string `yaml:"import"`
	Export string `yaml:"export"`

	// Button applies to down and drag; "middle" or "secondary".
	Button string `yaml:"button"`
}

// Drag is a press, a number of evenly spaced moves and a release.
type Drag struct {
	From  []float64 `yaml:"from"`
	To    []float64 `yaml:"to"`
	Steps int       `yaml:"steps"`
}

// StepError reports the step a script stopped at.
type StepError struct {
	Index  int
	Action string
	Err    error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("script: step %d (%s): %v", e.Index, e.Action, e.Err)
}

func (e *StepError) Unwrap() error { return e.Err }

// Parse decodes a script.
func Parse(data []byte) (*Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("script: parse: %w", err)
	}
	if s.Size != nil && len(s.Size) != 2 {
		return nil, fmt.Errorf("script: size wants [w, h], got %v", s.Size)
	}
	if s.Surface != nil && len(s.Surface) != 2 {
		return nil, fmt.Errorf("script: surface wants [w, h], got %v", s.Surface)
	}
	return &s, nil
}

// Load reads and parses the script at path.
func Load(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("script: %w", err)
	}
	return Parse(data)
}

// Options returns the editor options the script header asks for.
func (s *Script) Options() []claydraw.EditorOption {
	var opts []claydraw.EditorOption
	if len(s.Size) == 2 {
		opts = append(opts, claydraw.WithSize(s.Size[0], s.Size[1]))
	}
	if len(s.Surface) == 2 {
		opts = append(opts, claydraw.WithSurfaceSize(s.Surface[0], s.Surface[1]))
	}
	if s.Brush != nil {
		opts = append(opts, claydraw.WithBrush(*s.Brush))
	}
	return opts
}

// Run replays the steps against ed and returns the first failing step as
// a *StepError. Text steps feed a prompter installed on ed for the run.
func (s *Script) Run(ed *claydraw.Editor, dir string) error {
	r := &runner{ed: ed, dir: dir, answers: claydraw.NewQueuePrompter()}
	ed.SetPrompter(r.answers)
	for i, st := range s.Steps {
		action, err := st.action()
		if err == nil {
			err = r.step(action, st)
		}
		if err != nil {
			return &StepError{Index: i, Action: action, Err: err}
		}
		claydraw.Logger().Debug("script: step", "index", i, "action", action)
	}
	return nil
}

// action names the single action a step carries.
func (st Step) action() (string, error) {
	set := map[string]bool{
		"tool":      st.Tool != "",
		"down":      st.Down != nil,
		"move":      st.Move != nil,
		"up":        st.Up != nil,
		"drag":      st.Drag != nil,
		"key":       st.Key != "",
		"keyup":     st.KeyUp != "",
		"zoom":      st.Zoom != nil,
		"pan":       st.Pan != nil,
		"layer":     st.Layer != "",
		"opacity":   st.Opacity != nil,
		"blend":     st.Blend != "",
		"visible":   st.Visible != nil,
		"resize":    st.Resize != nil,
		"rotate":    st.Rotate,
		"clear":     st.Clear,
		"undo":      st.Undo,
		"redo":      st.Redo,
		"set_brush": st.SetBrush != nil,
		"text":      st.Text != nil,
		"import":    st.Import != "",
		"export":    st.Export != "",
	}
	var names []string
	for name, ok := range set {
		if ok {
			names = append(names, name)
		}
	}
	slices.Sort(names)
	switch len(names) {
	case 1:
		return names[0], nil
	case 0:
		return "", fmt.Errorf("%w: no action", ErrBadStep)
	default:
		return "", fmt.Errorf("%w: several actions %v", ErrBadStep, names)
	}
}

type runner struct {
	ed      *claydraw.Editor
	dir     string
	answers *claydraw.QueuePrompter
}

func (r *runner) step(action string, st Step) error {
	ed := r.ed
	switch action {
	case "tool":
		m, err := claydraw.ParseToolMode(st.Tool)
		if err != nil {
			return err
		}
		ed.SetTool(m)
	case "down":
		b, err := parseButton(st.Button)
		if err != nil {
			return err
		}
		x, y, err := point(st.Down)
		if err != nil {
			return err
		}
		ed.PointerDown(x, y, b)
	case "move":
		x, y, err := point(st.Move)
		if err != nil {
			return err
		}
		ed.PointerMove(x, y)
	case "up":
		x, y, err := point(st.Up)
		if err != nil {
			return err
		}
		ed.PointerUp(x, y)
	case "drag":
		return r.drag(st.Drag, st.Button)
	case "key":
		key, mods := parseKey(st.Key)
		ed.KeyDown(key, mods)
	case "keyup":
		key, _ := parseKey(st.KeyUp)
		ed.KeyUp(key)
	case "zoom":
		ed.SetZoom(*st.Zoom)
	case "pan":
		dx, dy, err := point(st.Pan)
		if err != nil {
			return err
		}
		ed.PanBy(dx, dy)
	case "layer":
		return r.layer(st.Layer)
	case "opacity":
		return ed.SetLayerOpacity(ed.Document().ActiveIndex(), *st.Opacity)
	case "blend":
		m, err := claydraw.ParseBlendMode(st.Blend)
		if err != nil {
			return err
		}
		return ed.SetLayerBlend(ed.Document().ActiveIndex(), m)
	case "visible":
		return ed.SetLayerVisible(ed.Document().ActiveIndex(), *st.Visible)
	case "resize":
		if len(st.Resize) != 2 {
			return fmt.Errorf("%w: resize wants [w, h]", ErrBadStep)
		}
		return ed.Resize(st.Resize[0], st.Resize[1])
	case "rotate":
		ed.Rotate()
	case "clear":
		ed.Clear()
	case "undo":
		return ed.Undo()
	case "redo":
		return ed.Redo()
	case "set_brush":
		ed.SetBrush(*st.SetBrush)
	case "text":
		r.answers.Push(*st.Text)
	case "import":
		return ed.Open(r.path(st.Import))
	case "export":
		return ed.Save(r.path(st.Export))
	}
	return nil
}

func (r *runner) drag(d *Drag, button string) error {
	b, err := parseButton(button)
	if err != nil {
		return err
	}
	x0, y0, err := point(d.From)
	if err != nil {
		return err
	}
	x1, y1, err := point(d.To)
	if err != nil {
		return err
	}
	n := max(d.Steps, 1)
	r.ed.PointerDown(x0, y0, b)
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		r.ed.PointerMove(x0+(x1-x0)*t, y0+(y1-y0)*t)
	}
	r.ed.PointerUp(x1, y1)
	return nil
}

func (r *runner) layer(arg string) error {
	ed := r.ed
	switch arg {
	case "add":
		ed.AddLayer()
		return nil
	case "remove":
		return ed.RemoveLayer(ed.Document().ActiveIndex())
	}
	i, err := strconv.Atoi(arg)
	if err != nil {
		return fmt.Errorf("%w: layer %q", ErrBadStep, arg)
	}
	return ed.SetActiveLayer(i)
}

func (r *runner) path(p string) string {
	if filepath.IsAbs(p) || r.dir == "" {
		return p
	}
	return filepath.Join(r.dir, p)
}

func point(v []float64) (x, y float64, err error) {
	if len(v) != 2 {
		return 0, 0, fmt.Errorf("%w: want [x, y], got %v", ErrBadStep, v)
	}
	return v[0], v[1], nil
}

func parseButton(s string) (claydraw.Button, error) {
	switch strings.ToLower(s) {
	case "", "primary", "left":
		return claydraw.ButtonPrimary, nil
	case "middle":
		return claydraw.ButtonMiddle, nil
	case "secondary", "right":
		return claydraw.ButtonSecondary, nil
	}
	return 0, fmt.Errorf("%w: button %q", ErrBadStep, s)
}

// parseKey splits "ctrl+shift+z" into the key and its modifiers. A lone
// "space" names the space bar.
func parseKey(s string) (string, claydraw.Modifiers) {
	var mods claydraw.Modifiers
	parts := strings.Split(s, "+")
	for _, p := range parts[:len(parts)-1] {
		switch strings.ToLower(p) {
		case "ctrl":
			mods |= claydraw.ModCtrl
		case "shift":
			mods |= claydraw.ModShift
		case "alt":
			mods |= claydraw.ModAlt
		case "meta", "cmd":
			mods |= claydraw.ModMeta
		}
	}
	key := parts[len(parts)-1]
	if strings.EqualFold(key, "space") {
		key = claydraw.KeySpace
	}
	return key, mods
}
