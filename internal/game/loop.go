package game

import (
	"context"
	"io"
	"sync"
	"time"

	logxi "github.com/mgutz/logxi/v1"
	"github.com/pkg/errors"

	"led-drops/internal/render"
)

// FrameWriter receives every finished frame. The canvas is only valid for
// the duration of the call.
type FrameWriter interface {
	WriteFrame(c *render.Canvas) error
}

// LoopConfig holds the optional parts of a FrameLoop.
type LoopConfig struct {
	Period   time.Duration // tick period, DefaultPeriod when zero
	MaxTicks uint64        // Run returns after this many ticks; 0 runs until cancelled
	Spawner  Spawner       // may be nil
	Logger   logxi.Logger  // diagnostics; discarded when nil
}

// FrameLoop owns the canvas and the live sprites and drives them at a fixed
// cadence: spawn, render all, update all (dropping expired sprites), emit,
// clear, wait.
type FrameLoop struct {
	canvas  *render.Canvas
	out     FrameWriter
	period  time.Duration
	max     uint64
	spawner Spawner
	logger  logxi.Logger

	sprites   []Sprite
	tickCount uint64
	pending   bool // canvas holds a frame the writer rejected

	stopCh   chan struct{}
	stopOnce sync.Once
}

// NewFrameLoop creates a loop drawing onto canvas and emitting to out.
func NewFrameLoop(canvas *render.Canvas, out FrameWriter, cfg LoopConfig) *FrameLoop {
	if cfg.Period <= 0 {
		cfg.Period = DefaultPeriod
	}
	if cfg.Logger == nil {
		cfg.Logger = logxi.NewLogger(io.Discard, "frameloop")
	}
	return &FrameLoop{
		canvas:  canvas,
		out:     out,
		period:  cfg.Period,
		max:     cfg.MaxTicks,
		spawner: cfg.Spawner,
		logger:  cfg.Logger,
		stopCh:  make(chan struct{}),
	}
}

// Add appends sprites to the live set. Order of insertion is the render and
// update order.
func (fl *FrameLoop) Add(sprites ...Sprite) {
	fl.sprites = append(fl.sprites, sprites...)
}

// Len returns the number of live sprites.
func (fl *FrameLoop) Len() int {
	return len(fl.sprites)
}

// Ticks returns the number of completed ticks.
func (fl *FrameLoop) Ticks() uint64 {
	return fl.tickCount
}

// Canvas returns the loop's canvas.
func (fl *FrameLoop) Canvas() *render.Canvas {
	return fl.canvas
}

// Period returns the tick period.
func (fl *FrameLoop) Period() time.Duration {
	return fl.period
}

// Run ticks until ctx is cancelled, Stop is called, MaxTicks is reached or
// the frame writer fails. Cancellation is checked at every tick boundary and
// interrupts the end-of-tick wait. A tick that overruns its period is
// followed immediately by the next one, without catching up.
func (fl *FrameLoop) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-fl.stopCh:
			return nil
		default:
		}
		if fl.max != 0 && fl.tickCount >= fl.max {
			return nil
		}

		start := time.Now()
		if err := fl.Tick(); err != nil {
			return err
		}

		wait := time.Until(start.Add(fl.period))
		if wait <= 0 {
			continue
		}
		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil
		case <-fl.stopCh:
			timer.Stop()
			return nil
		case <-timer.C:
		}
	}
}

// Stop ends Run at the next tick boundary. It is safe to call more than once.
func (fl *FrameLoop) Stop() {
	fl.stopOnce.Do(func() { close(fl.stopCh) })
}

// Tick runs one frame without waiting. When the frame writer fails the
// canvas is left holding the unsent frame and the error is returned; the
// next Tick re-emits that frame instead of advancing the sprites.
func (fl *FrameLoop) Tick() error {
	start := time.Now()

	if fl.pending {
		return fl.emit(start)
	}

	if fl.spawner != nil {
		if spawned := fl.spawner.Spawn(fl.tickCount); len(spawned) > 0 {
			fl.Add(spawned...)
			if fl.logger.IsDebug() {
				fl.logger.Debug("spawned", "tick", fl.tickCount, "count", len(spawned))
			}
		}
	}

	for _, s := range fl.sprites {
		s.Render(fl.canvas)
	}

	fl.update()

	return fl.emit(start)
}

// emit hands the canvas to the writer and, on success, clears it and
// completes the tick.
func (fl *FrameLoop) emit(start time.Time) error {
	if err := fl.out.WriteFrame(fl.canvas); err != nil {
		fl.pending = true
		return errors.Wrapf(err, "emit frame %d", fl.tickCount)
	}
	fl.pending = false
	fl.canvas.Clear()
	fl.tickCount++

	fl.logger.Info("frame",
		"tick", fl.tickCount,
		"sprites", len(fl.sprites),
		"took_ms", time.Since(start).Milliseconds())
	return nil
}

// update advances every sprite and compacts the survivors in place, keeping
// their order.
func (fl *FrameLoop) update() {
	live := fl.sprites[:0]
	for _, s := range fl.sprites {
		if s.Update() {
			live = append(live, s)
		}
	}
	for i := len(live); i < len(fl.sprites); i++ {
		fl.sprites[i] = nil
	}
	fl.sprites = live
}
