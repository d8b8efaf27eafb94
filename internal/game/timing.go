package game

import "time"

// DefaultPeriod is the reference frame period (25 frames per second).
const DefaultPeriod = 40 * time.Millisecond

// DurationToTicks converts a duration to whole ticks of the given period.
// Any positive duration is at least one tick.
func DurationToTicks(d, period time.Duration) int {
	if period <= 0 || d <= 0 {
		return 0
	}
	t := int(d / period)
	if t < 1 {
		t = 1
	}
	return t
}
