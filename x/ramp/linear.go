package ramp

import (
	"time"

	"breathe-go/x/mathx"
)

// Step sets the new level.
type Step func(level uint32)

// Tick waits for d and reports whether to continue (false => cancelled).
type Tick func(d time.Duration) bool

// StartLinear runs a synchronous (caller-driven) integer ramp from cur to to,
// keeping every level inside [lo, hi]. Each of the steps waits one tick and
// then sets the next level; the last step lands exactly on to (clamped).
// steps==0 or duration<=0 snaps to 'to'.
func StartLinear(cur, to, lo, hi uint32, duration time.Duration, steps uint16, tick Tick, set Step) {
	to = mathx.Clamp(to, lo, hi)
	if steps == 0 || duration <= 0 {
		set(to)
		return
	}
	stepDur := duration / time.Duration(steps)
	if stepDur <= 0 {
		stepDur = time.Millisecond
	}

	from := int64(mathx.Clamp(cur, lo, hi))
	d := int64(to) - from
	for i := int64(1); i <= int64(steps); i++ {
		if !tick(stepDur) {
			return
		}
		set(uint32(from + d*i/int64(steps)))
	}
}
