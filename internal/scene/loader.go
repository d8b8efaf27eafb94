package scene

import (
	"fmt"
	"math"
	"os"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"

	"led-drops/internal/game"
	"led-drops/internal/render"
)

// Drop is one resolved initial drop.
type Drop struct {
	X, Y   int
	Color  render.Color
	Params game.DropParams
}

// Rain describes the optional drop spawner.
type Rain struct {
	Every      int // ticks between drops
	Seed       int64
	Hue        float64
	HueStep    float64
	Saturation float64
	Value      float64
	Params     game.DropParams
}

// Scene is a fully resolved, validated display setup.
type Scene struct {
	Name   string
	Width  int
	Height int
	Tick   time.Duration
	Drops  []Drop
	Rain   *Rain
}

// yamlParams are per-drop tuning overrides; nil fields inherit.
type yamlParams struct {
	Growth            *float64 `yaml:"growth"`
	DecayThreshold    *float64 `yaml:"decay_threshold"`
	DecayFactor       *float64 `yaml:"decay_factor"`
	TerminalThreshold *float64 `yaml:"terminal_threshold"`
}

// yamlScene is the on-disk YAML format.
type yamlScene struct {
	Name     string        `yaml:"name"`
	Width    int           `yaml:"width"`
	Height   int           `yaml:"height"`
	Tick     time.Duration `yaml:"tick"`
	Defaults yamlParams    `yaml:"defaults"`
	Drops    []yamlDrop    `yaml:"drops"`
	Rain     *yamlRain     `yaml:"rain,omitempty"`
}

type yamlDrop struct {
	X          int       `yaml:"x"`
	Y          int       `yaml:"y"`
	HSV        []float64 `yaml:"hsv,omitempty"`
	RGB        []int     `yaml:"rgb,omitempty"`
	Hex        string    `yaml:"hex,omitempty"`
	yamlParams `yaml:",inline"`
}

type yamlRain struct {
	Every      int           `yaml:"every"`
	Interval   time.Duration `yaml:"interval"`
	Seed       int64         `yaml:"seed"`
	Hue        float64       `yaml:"hue"`
	HueStep    float64       `yaml:"hue_step"`
	Saturation *float64      `yaml:"saturation"`
	Value      *float64      `yaml:"value"`
	yamlParams `yaml:",inline"`
}

// LoadScene reads a YAML scene file from disk.
func LoadScene(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read scene file")
	}
	s, err := ParseScene(data)
	if err != nil {
		return nil, errors.Wrapf(err, "load %s", path)
	}
	return s, nil
}

// ParseScene decodes and validates a YAML scene. Missing width, height and
// tick fall back to the reference display.
func ParseScene(data []byte) (*Scene, error) {
	var ys yamlScene
	if err := yaml.UnmarshalStrict(data, &ys); err != nil {
		return nil, errors.Wrap(err, "parse scene YAML")
	}

	if ys.Width == 0 {
		ys.Width = render.DefaultWidth
	}
	if ys.Height == 0 {
		ys.Height = render.DefaultHeight
	}
	if ys.Tick == 0 {
		ys.Tick = game.DefaultPeriod
	}
	if ys.Width < 0 || ys.Height < 0 {
		return nil, errors.Errorf("grid %dx%d must be positive", ys.Width, ys.Height)
	}
	if ys.Tick < 0 {
		return nil, errors.Errorf("tick %v must be positive", ys.Tick)
	}

	defaults := ys.Defaults.apply(game.DefaultDropParams())
	if err := validateParams(defaults); err != nil {
		return nil, errors.Wrap(err, "defaults")
	}

	s := &Scene{
		Name:   ys.Name,
		Width:  ys.Width,
		Height: ys.Height,
		Tick:   ys.Tick,
		Drops:  make([]Drop, 0, len(ys.Drops)),
	}

	for i, yd := range ys.Drops {
		d, err := yd.resolve(defaults)
		if err != nil {
			return nil, errors.Wrapf(err, "drop %d", i)
		}
		s.Drops = append(s.Drops, d)
	}

	if ys.Rain != nil {
		r, err := ys.Rain.resolve(defaults, ys.Tick)
		if err != nil {
			return nil, errors.Wrap(err, "rain")
		}
		s.Rain = r
	}

	return s, nil
}

func (p yamlParams) apply(base game.DropParams) game.DropParams {
	if p.Growth != nil {
		base.Growth = *p.Growth
	}
	if p.DecayThreshold != nil {
		base.DecayThreshold = *p.DecayThreshold
	}
	if p.DecayFactor != nil {
		base.DecayFactor = *p.DecayFactor
	}
	if p.TerminalThreshold != nil {
		base.TerminalThreshold = *p.TerminalThreshold
	}
	return base
}

// finite rejects NaN and infinite values for the named field.
func finite(field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return errors.Errorf("%s %v must be a finite number", field, v)
	}
	return nil
}

func validateParams(p game.DropParams) error {
	for _, f := range []struct {
		name string
		v    float64
	}{
		{"growth", p.Growth},
		{"decay_threshold", p.DecayThreshold},
		{"decay_factor", p.DecayFactor},
		{"terminal_threshold", p.TerminalThreshold},
	} {
		if err := finite(f.name, f.v); err != nil {
			return err
		}
	}
	if p.Growth <= 0 {
		return errors.Errorf("growth %v must be positive", p.Growth)
	}
	if p.DecayFactor < 0 || p.DecayFactor > 1 {
		return errors.Errorf("decay_factor %v must be within [0,1]", p.DecayFactor)
	}
	if p.TerminalThreshold <= 0 {
		return errors.Errorf("terminal_threshold %v must be positive", p.TerminalThreshold)
	}
	return nil
}

func (yd yamlDrop) resolve(defaults game.DropParams) (Drop, error) {
	d := Drop{X: yd.X, Y: yd.Y, Params: yd.yamlParams.apply(defaults)}
	if err := validateParams(d.Params); err != nil {
		return Drop{}, err
	}

	set := 0
	if yd.HSV != nil {
		set++
	}
	if yd.RGB != nil {
		set++
	}
	if yd.Hex != "" {
		set++
	}
	if set != 1 {
		return Drop{}, errors.New("exactly one of hsv, rgb or hex is required")
	}

	switch {
	case yd.HSV != nil:
		if len(yd.HSV) != 3 {
			return Drop{}, errors.Errorf("hsv needs 3 values, got %d", len(yd.HSV))
		}
		for i, name := range []string{"hsv hue", "hsv saturation", "hsv value"} {
			if err := finite(name, yd.HSV[i]); err != nil {
				return Drop{}, err
			}
		}
		d.Color = render.NewHSV(yd.HSV[0], yd.HSV[1], yd.HSV[2]).RGB()
	case yd.RGB != nil:
		if len(yd.RGB) != 3 {
			return Drop{}, errors.Errorf("rgb needs 3 values, got %d", len(yd.RGB))
		}
		for _, v := range yd.RGB {
			if v < 0 || v > 255 {
				return Drop{}, errors.Errorf("rgb value %d outside [0,255]", v)
			}
		}
		d.Color = render.RGB(uint8(yd.RGB[0]), uint8(yd.RGB[1]), uint8(yd.RGB[2]))
	default:
		c, err := render.ParseHex(yd.Hex)
		if err != nil {
			return Drop{}, errors.Wrapf(err, "hex %q", yd.Hex)
		}
		d.Color = c
	}
	return d, nil
}

func (yr *yamlRain) resolve(defaults game.DropParams, tick time.Duration) (*Rain, error) {
	every := yr.Every
	if yr.Interval > 0 {
		if every != 0 {
			return nil, errors.New("set either every or interval, not both")
		}
		every = game.DurationToTicks(yr.Interval, tick)
	}
	if every <= 0 {
		return nil, errors.Errorf("every %d must be positive", every)
	}

	r := &Rain{
		Every:      every,
		Seed:       yr.Seed,
		Hue:        yr.Hue,
		HueStep:    yr.HueStep,
		Saturation: 1,
		Value:      0.8,
		Params:     yr.yamlParams.apply(defaults),
	}
	if yr.Saturation != nil {
		r.Saturation = *yr.Saturation
	}
	if yr.Value != nil {
		r.Value = *yr.Value
	}
	for _, f := range []struct {
		name string
		v    float64
	}{
		{"hue", r.Hue},
		{"hue_step", r.HueStep},
		{"saturation", r.Saturation},
		{"value", r.Value},
	} {
		if err := finite(f.name, f.v); err != nil {
			return nil, err
		}
	}
	if err := validateParams(r.Params); err != nil {
		return nil, err
	}
	return r, nil
}

// Sprites builds the initial drops of the scene.
func (s *Scene) Sprites() []game.Sprite {
	sprites := make([]game.Sprite, len(s.Drops))
	for i, d := range s.Drops {
		sprites[i] = game.NewDrop(d.X, d.Y, d.Color, d.Params)
	}
	return sprites
}

// Spawner returns the scene's rain spawner, or nil when it has none.
func (s *Scene) Spawner() game.Spawner {
	if s.Rain == nil {
		return nil
	}
	return game.NewRain(game.RainConfig{
		Width:      s.Width,
		Height:     s.Height,
		Every:      s.Rain.Every,
		Seed:       s.Rain.Seed,
		Hue:        s.Rain.Hue,
		HueStep:    s.Rain.HueStep,
		Saturation: s.Rain.Saturation,
		Value:      s.Rain.Value,
		Params:     s.Rain.Params,
	})
}

// Build creates a frame loop for the scene with its initial drops added.
func (s *Scene) Build(out game.FrameWriter, cfg game.LoopConfig) *game.FrameLoop {
	cfg.Period = s.Tick
	cfg.Spawner = s.Spawner()
	fl := game.NewFrameLoop(render.NewCanvas(s.Width, s.Height), out, cfg)
	fl.Add(s.Sprites()...)
	return fl
}

// String summarizes the scene for logs.
func (s *Scene) String() string {
	name := s.Name
	if name == "" {
		name = "unnamed"
	}
	return fmt.Sprintf("%s (%dx%d, %v tick, %d drops, rain=%t)", name, s.Width, s.Height, s.Tick, len(s.Drops), s.Rain != nil)
}

// DefaultScene returns the reference display: three drops on a 12x9 grid at
// 25 frames per second.
func DefaultScene() *Scene {
	p := game.DefaultDropParams()
	drop := func(x, y int, hue float64) Drop {
		return Drop{X: x, Y: y, Color: render.NewHSV(hue, 1, 0.8).RGB(), Params: p}
	}
	return &Scene{
		Name:   "Default",
		Width:  render.DefaultWidth,
		Height: render.DefaultHeight,
		Tick:   game.DefaultPeriod,
		Drops: []Drop{
			drop(3, 4, 100),
			drop(5, 0, 200),
			drop(8, 8, 300),
		},
	}
}
