package game

import (
	"math"

	"led-drops/internal/render"
)

// DropParams tunes the growth and fade of a Drop. Radii are in grid units.
type DropParams struct {
	Growth            float64 // radius added per update
	DecayThreshold    float64 // radius past which the color starts fading
	DecayFactor       float64 // color multiplier applied per update while fading
	TerminalThreshold float64 // radius at which the drop expires
}

// DefaultDropParams returns the reference animation tuning.
func DefaultDropParams() DropParams {
	return DropParams{
		Growth:            0.08,
		DecayThreshold:    3,
		DecayFactor:       0.9,
		TerminalThreshold: 6,
	}
}

// Drop is an expanding square ring centred on a fixed cell. It keeps a
// constant color until its radius passes DecayThreshold, then fades by
// DecayFactor every update until the radius reaches TerminalThreshold.
type Drop struct {
	x, y   int
	steps  int
	life   int // updates until expiry, -1 for never
	radius float64
	color  render.Color
	params DropParams
}

// NewDrop creates a drop with an RGB color.
func NewDrop(x, y int, c render.Color, p DropParams) *Drop {
	return &Drop{x: x, y: y, color: c, params: p, life: p.Lifetime()}
}

// NewHSVDrop creates a drop whose color is converted from HSV once.
func NewHSVDrop(x, y int, c render.HSV, p DropParams) *Drop {
	return NewDrop(x, y, c.RGB(), p)
}

// Pos returns the drop's centre cell.
func (d *Drop) Pos() (int, int) { return d.x, d.y }

// Radius returns the current radius.
func (d *Drop) Radius() float64 { return d.radius }

// Color returns the current (possibly faded) color.
func (d *Drop) Color() render.Color { return d.color }

// Params returns the drop's tuning.
func (d *Drop) Params() DropParams { return d.params }

// Render draws two concentric squares. The outer square, of half-width
// floor(radius)+1, gets the color weighted by the fractional part of the
// radius; the inner square, of half-width floor(radius), gets the remaining
// weight. Inner cells receive both contributions, so the ring edge fades in
// smoothly as the radius grows.
func (d *Drop) Render(c *render.Canvas) {
	inside := int(math.Floor(d.radius))
	interp := d.radius - float64(inside)

	border := d.color.Scale(interp)
	for xp := -inside - 1; xp <= inside+1; xp++ {
		for yp := -inside - 1; yp <= inside+1; yp++ {
			c.Put(d.x+xp, d.y+yp, border)
		}
	}

	fill := d.color.Scale(1 - interp)
	for xp := -inside; xp <= inside; xp++ {
		for yp := -inside; yp <= inside; yp++ {
			c.Put(d.x+xp, d.y+yp, fill)
		}
	}
}

// Update grows the radius by one step and fades the color once past the
// decay threshold. It returns false once the radius reaches the terminal
// threshold, which is after exactly Lifetime updates.
func (d *Drop) Update() bool {
	d.steps++
	d.radius = float64(d.steps) * d.params.Growth
	if d.radius > d.params.DecayThreshold {
		d.color = d.color.Scale(d.params.DecayFactor)
	}
	return d.life < 0 || d.steps < d.life
}

// Lifetime returns how many updates a drop with p survives, counting the
// final update that reports it expired. Zero growth never expires and
// returns -1.
func (p DropParams) Lifetime() int {
	if p.Growth <= 0 {
		return -1
	}
	n := int(math.Ceil(p.TerminalThreshold / p.Growth))
	if n < 1 {
		n = 1
	}
	return n
}
