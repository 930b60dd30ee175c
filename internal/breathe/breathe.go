// Package breathe cycles a PWM output through a fixed list of duty levels.
package breathe

import (
	"time"

	"breathe-go/x/ramp"
)

// Phase is one step of the pattern: move to Duty (optionally ramping over
// Ramp in RampSteps steps), then hold it for Hold.
type Phase struct {
	Duty      uint32
	Hold      time.Duration
	Ramp      time.Duration
	RampSteps uint16
}

// Default is the two-level breathing cycle: 50 % for 2 s, then 10 % for 1 s.
var Default = []Phase{
	{Duty: 500, Hold: 2000 * time.Millisecond},
	{Duty: 100, Hold: 1000 * time.Millisecond},
}

// Output is a PWM channel taking duty commands in [lo, hi].
type Output interface {
	SetDuty(d uint32)
	Duty() uint32
}

// Delayer blocks for a duration.
type Delayer interface {
	Delay(d time.Duration)
}

// Limits bound ramp levels; they match the PWM duty range.
type Limits struct{ Lo, Hi uint32 }

// Run plays pattern on out, in order, cycles times. cycles == 0 runs forever.
func Run(pattern []Phase, lim Limits, out Output, dl Delayer, cycles int) {
	if len(pattern) == 0 {
		return
	}
	tick := func(d time.Duration) bool {
		dl.Delay(d)
		return true
	}
	for n := 0; cycles == 0 || n < cycles; n++ {
		for _, ph := range pattern {
			if ph.Ramp > 0 && ph.RampSteps > 0 {
				ramp.StartLinear(out.Duty(), ph.Duty, lim.Lo, lim.Hi, ph.Ramp, ph.RampSteps, tick, out.SetDuty)
			} else {
				out.SetDuty(ph.Duty)
			}
			dl.Delay(ph.Hold)
		}
	}
}
