package game

import "led-drops/internal/render"

// Sprite is an animated entity owned by the frame loop. Render must not
// change the sprite's state; Update advances it by one tick and reports
// whether the sprite is still alive.
type Sprite interface {
	Render(c *render.Canvas)
	Update() bool
}
