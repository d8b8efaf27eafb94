package game

import (
	"math/rand"

	"led-drops/internal/render"
)

// Spawner is consulted once per tick, before rendering, and returns the
// sprites to add to the loop (possibly none).
type Spawner interface {
	Spawn(tick uint64) []Sprite
}

// RainConfig configures a Rain spawner.
type RainConfig struct {
	Width, Height int     // area in which drops land
	Every         int     // ticks between drops
	Seed          int64   // position source seed
	Hue           float64 // hue of the first drop
	HueStep       float64 // hue advance per drop
	Saturation    float64
	Value         float64
	Params        DropParams
}

// Rain spawns a drop every few ticks at a pseudo-random cell, cycling the
// hue by a fixed step so neighbouring drops differ in color.
type Rain struct {
	cfg RainConfig
	rng *rand.Rand
	hue float64
}

// NewRain creates a Rain spawner. The same seed always produces the same
// sequence of drops.
func NewRain(cfg RainConfig) *Rain {
	return &Rain{
		cfg: cfg,
		rng: rand.New(rand.NewSource(cfg.Seed)),
		hue: cfg.Hue,
	}
}

// Spawn returns a new drop on every cfg.Every-th tick, starting at tick 0.
func (r *Rain) Spawn(tick uint64) []Sprite {
	if r.cfg.Every <= 0 || r.cfg.Width <= 0 || r.cfg.Height <= 0 {
		return nil
	}
	if tick%uint64(r.cfg.Every) != 0 {
		return nil
	}

	x := r.rng.Intn(r.cfg.Width)
	y := r.rng.Intn(r.cfg.Height)
	color := render.NewHSV(r.hue, r.cfg.Saturation, r.cfg.Value)
	r.hue = render.NewHSV(r.hue+r.cfg.HueStep, 0, 0).H

	return []Sprite{NewHSVDrop(x, y, color, r.cfg.Params)}
}
