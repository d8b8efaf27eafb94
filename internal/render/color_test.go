package render

import (
	"math"
	"strings"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
)

func TestColorAddSaturates(t *testing.T) {
	tests := []struct {
		name string
		a, b Color
		want Color
	}{
		{"black plus black", Black, Black, Black},
		{"no overflow", RGB(10, 20, 30), RGB(1, 2, 3), RGB(11, 22, 33)},
		{"exact 255", RGB(200, 0, 0), RGB(55, 0, 0), RGB(255, 0, 0)},
		{"overflow clamps", RGB(200, 128, 255), RGB(100, 128, 1), RGB(255, 255, 255)},
		{"per channel", RGB(250, 10, 0), RGB(10, 10, 0), RGB(255, 20, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.a.Add(tt.b)
			if got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestColorAddBounds(t *testing.T) {
	for a := 0; a <= 255; a += 15 {
		for b := 0; b <= 255; b += 17 {
			got := RGB(uint8(a), 0, 0).Add(RGB(uint8(b), 0, 0)).R
			if int(got) < max(a, b) {
				t.Fatalf("%d+%d: got %d, below max operand", a, b, got)
			}
			if a+b > 255 && got != 255 {
				t.Fatalf("%d+%d: expected saturation at 255, got %d", a, b, got)
			}
			if a+b <= 255 && int(got) != a+b {
				t.Fatalf("%d+%d: expected %d, got %d", a, b, a+b, got)
			}
		}
	}
}

func TestColorScale(t *testing.T) {
	tests := []struct {
		name   string
		c      Color
		factor float64
		want   Color
	}{
		{"zero", RGB(255, 128, 7), 0, Black},
		{"one", RGB(255, 128, 7), 1, RGB(255, 128, 7)},
		{"half truncates", RGB(255, 3, 1), 0.5, RGB(127, 1, 0)},
		{"decay", RGB(100, 200, 50), 0.9, RGB(90, 180, 45)},
		{"slightly above one saturates", RGB(255, 200, 0), 1.01, RGB(255, 202, 0)},
		{"negative is black", RGB(255, 200, 1), -0.5, Black},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.c.Scale(tt.factor)
			if got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestHSVPrimaries(t *testing.T) {
	tests := []struct {
		name    string
		h, s, v float64
		want    Color
	}{
		{"red", 0, 1, 1, RGB(255, 0, 0)},
		{"yellow", 60, 1, 1, RGB(255, 255, 0)},
		{"green", 120, 1, 1, RGB(0, 255, 0)},
		{"cyan", 180, 1, 1, RGB(0, 255, 255)},
		{"blue", 240, 1, 1, RGB(0, 0, 255)},
		{"magenta", 300, 1, 1, RGB(255, 0, 255)},
		{"white", 77, 0, 1, RGB(255, 255, 255)},
		{"black", 200, 1, 0, Black},
		{"360 wraps to red", 360, 1, 1, RGB(255, 0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewHSV(tt.h, tt.s, tt.v).RGB()
			if got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
			// go-colorful rounds rather than truncates, which agrees at the
			// hexagon corners.
			r, g, b := colorful.Hsv(NewHSV(tt.h, tt.s, tt.v).H, tt.s, tt.v).RGB255()
			if got != RGB(r, g, b) {
				t.Errorf("colorful disagrees: %v vs %v", RGB(r, g, b), got)
			}
		})
	}
}

func TestHSVTruncates(t *testing.T) {
	// sector 0, f=0.5: t = 0.5 -> 127.5 truncates to 127
	if got, want := NewHSV(30, 1, 1).RGB(), RGB(255, 127, 0); got != want {
		t.Errorf("expected %v, got %v", want, got)
	}
	// sector 1, f=0.5: q = 0.4 -> 102, v = 0.8 -> 204
	if got, want := NewHSV(90, 1, 0.8).RGB(), RGB(102, 204, 0); got != want {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestHSVReferenceDrops(t *testing.T) {
	tests := []struct {
		hue  float64
		want Color
	}{
		{100, RGB(68, 204, 0)},
		{200, RGB(0, 136, 204)},
		{300, RGB(204, 0, 204)},
	}

	for _, tt := range tests {
		if got := NewHSV(tt.hue, 1, 0.8).RGB(); got != tt.want {
			t.Errorf("hue %v: expected %v, got %v", tt.hue, tt.want, got)
		}
	}
}

func TestHSVHueWraparound(t *testing.T) {
	for _, s := range []float64{0, 0.25, 0.5, 1} {
		for _, v := range []float64{0, 0.3, 0.8, 1} {
			for _, h := range []float64{0, 30, 59.5, 181, 359} {
				want := NewHSV(h, s, v).RGB()
				if got := NewHSV(h+360, s, v).RGB(); got != want {
					t.Errorf("h=%v+360 s=%v v=%v: expected %v, got %v", h, s, v, want, got)
				}
				if got := NewHSV(h+3*360, s, v).RGB(); got != want {
					t.Errorf("h=%v+1080 s=%v v=%v: expected %v, got %v", h, s, v, want, got)
				}
				if got := NewHSV(h-360, s, v).RGB(); got != want {
					t.Errorf("h=%v-360 s=%v v=%v: expected %v, got %v", h, s, v, want, got)
				}
			}
		}
	}
}

func TestHSVNormalizesHue(t *testing.T) {
	if h := NewHSV(390, 1, 1).H; h != 30 {
		t.Errorf("expected hue 30, got %v", h)
	}
	if h := NewHSV(-90, 1, 1).H; h != 270 {
		t.Errorf("expected hue 270, got %v", h)
	}
}

func TestHSVExtremeHues(t *testing.T) {
	tests := []struct {
		name string
		h    float64
	}{
		{"huge", 1e300},
		{"huge negative", -1e300},
		{"infinite", math.Inf(1)},
		{"negative infinite", math.Inf(-1)},
		{"nan", math.NaN()},
		{"tiny negative", -1e-20},
		{"just below 360", math.Nextafter(360, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewHSV(tt.h, 1, 1)
			if !(c.H >= 0 && c.H < 360) {
				t.Fatalf("hue %v not normalized", c.H)
			}
			c.RGB()
		})
	}

	if got := NewHSV(math.NaN(), 1, 1).RGB(); got != RGB(255, 0, 0) {
		t.Errorf("nan hue: expected red, got %v", got)
	}
}

func TestHSVBadSectorPanics(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic for un-normalized hue")
		}
		if msg, ok := r.(string); !ok || !strings.Contains(msg, "out of range") {
			t.Errorf("unexpected panic value %v", r)
		}
	}()
	HSV{H: 480, S: 1, V: 1}.RGB()
}

func TestHexRoundTrip(t *testing.T) {
	c, err := ParseHex("#ff8000")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if c != RGB(255, 128, 0) {
		t.Errorf("expected (255,128,0), got %v", c)
	}
	if got := c.Hex(); got != "#ff8000" {
		t.Errorf("expected #ff8000, got %s", got)
	}
	if _, err := ParseHex("orange"); err == nil {
		t.Error("expected error for non-hex color")
	}
}
