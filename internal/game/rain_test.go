package game

import (
	"testing"

	"led-drops/internal/render"
)

func testRain(seed int64) *Rain {
	return NewRain(RainConfig{
		Width: 12, Height: 9,
		Every:      4,
		Seed:       seed,
		Hue:        350,
		HueStep:    20,
		Saturation: 1,
		Value:      1,
		Params:     DefaultDropParams(),
	})
}

func TestRainCadence(t *testing.T) {
	r := testRain(1)
	var spawned []uint64
	for tick := uint64(0); tick < 12; tick++ {
		if got := r.Spawn(tick); len(got) > 0 {
			spawned = append(spawned, tick)
		}
	}
	want := []uint64{0, 4, 8}
	if len(spawned) != len(want) {
		t.Fatalf("expected spawns at %v, got %v", want, spawned)
	}
	for i := range want {
		if spawned[i] != want[i] {
			t.Errorf("expected spawns at %v, got %v", want, spawned)
		}
	}
}

func TestRainDeterministicAndInBounds(t *testing.T) {
	a, b := testRain(42), testRain(42)
	for tick := uint64(0); tick < 400; tick += 4 {
		da := a.Spawn(tick)[0].(*Drop)
		db := b.Spawn(tick)[0].(*Drop)
		ax, ay := da.Pos()
		bx, by := db.Pos()
		if ax != bx || ay != by || da.Color() != db.Color() {
			t.Fatalf("tick %d: same seed diverged", tick)
		}
		if ax < 0 || ax >= 12 || ay < 0 || ay >= 9 {
			t.Fatalf("tick %d: drop outside grid at (%d,%d)", tick, ax, ay)
		}
	}
}

func TestRainHueWraps(t *testing.T) {
	r := testRain(3)
	first := r.Spawn(0)[0].(*Drop)
	second := r.Spawn(4)[0].(*Drop)

	if want := render.NewHSV(350, 1, 1).RGB(); first.Color() != want {
		t.Errorf("expected %v, got %v", want, first.Color())
	}
	// 350 + 20 wraps to 10
	if want := render.NewHSV(10, 1, 1).RGB(); second.Color() != want {
		t.Errorf("expected %v, got %v", want, second.Color())
	}
}

func TestRainDisabled(t *testing.T) {
	r := NewRain(RainConfig{Width: 4, Height: 4})
	for tick := uint64(0); tick < 10; tick++ {
		if got := r.Spawn(tick); got != nil {
			t.Fatalf("disabled rain spawned at tick %d", tick)
		}
	}
}
