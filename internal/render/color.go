package render

import (
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is a single pixel with 8-bit RGB channels.
type Color struct {
	R, G, B uint8
}

// Black is the cleared pixel value.
var Black = Color{}

// RGB is a shorthand to create a Color.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// Add composites o onto c, saturating each channel at 255.
func (c Color) Add(o Color) Color {
	return Color{
		R: uint8(min(int(c.R)+int(o.R), 255)),
		G: uint8(min(int(c.G)+int(o.G), 255)),
		B: uint8(min(int(c.B)+int(o.B), 255)),
	}
}

// Scale multiplies every channel by f and truncates toward zero.
//
// Callers are expected to keep f in [0,1]. Results outside [0,255] are
// clamped so a factor slightly above 1 saturates instead of wrapping.
func (c Color) Scale(f float64) Color {
	return Color{
		R: channel(float64(c.R) * f),
		G: channel(float64(c.G) * f),
		B: channel(float64(c.B) * f),
	}
}

// Hex returns the color as "#rrggbb".
func (c Color) Hex() string {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}.Hex()
}

func (c Color) String() string {
	return fmt.Sprintf("(%d,%d,%d)", c.R, c.G, c.B)
}

// ParseHex parses "#rrggbb" or "#rgb" into a Color.
func ParseHex(s string) (Color, error) {
	cf, err := colorful.Hex(s)
	if err != nil {
		return Color{}, err
	}
	r, g, b := cf.RGB255()
	return Color{R: r, G: g, B: b}, nil
}

// channel truncates v into an 8-bit channel, clamping to [0,255].
func channel(v float64) uint8 {
	if v >= 255 {
		return 255
	}
	if v <= 0 {
		return 0
	}
	return uint8(v)
}

// HSV is a hue/saturation/value color. Hue is kept in [0,360); saturation
// and value are stored as given.
type HSV struct {
	H, S, V float64
}

// NewHSV wraps h into [0,360) and returns the color. Any hue is accepted;
// NaN and infinite hues become 0.
func NewHSV(h, s, v float64) HSV {
	if math.IsNaN(h) || math.IsInf(h, 0) {
		h = 0
	}
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	// tiny negative hues round up to 360
	if h >= 360 {
		h = 0
	}
	return HSV{H: h, S: s, V: v}
}

// RGB converts the color using the six-sector hexagon formula. Each channel
// is floor(component*255), computed in single precision so that values such
// as 0.8*(1-2/3) land on 68 rather than 67.
//
// RGB panics if the hue falls outside every sector, which only happens when
// the value was built without NewHSV.
func (c HSV) RGB() Color {
	h, s, v := float32(c.H), float32(c.S), float32(c.V)
	// every step rounds to float32
	hi := int(float32(h / 60))
	f := float32(float32(h/60) - float32(hi))
	p := float32(v * float32(1-s))
	q := float32(v * float32(1-float32(s*f)))
	t := float32(v * float32(1-float32(s*float32(1-f))))

	var r, g, b float32
	switch hi {
	case 0, 6: // h just below 360 rounds up in single precision
		r, g, b = v, t, p
	case 1:
		r, g, b = q, v, p
	case 2:
		r, g, b = p, v, t
	case 3:
		r, g, b = p, q, v
	case 4:
		r, g, b = t, p, v
	case 5:
		r, g, b = v, p, q
	default:
		panic(fmt.Sprintf("render: hue %v out of range (sector %d)", c.H, hi))
	}

	return Color{
		R: channel(float64(float32(r * 255))),
		G: channel(float64(float32(g * 255))),
		B: channel(float64(float32(b * 255))),
	}
}
