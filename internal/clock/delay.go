package clock

import (
	"time"

	"breathe-go/hw/reg"
	"breathe-go/hw/stm32f401"
	"breathe-go/x/mathx"
	"breathe-go/x/timex"
)

// Delay busy-waits on SysTick clocked from HCLK.
type Delay struct {
	syst *stm32f401.SysTick
	hz   uint32
}

// NewDelay takes over SysTick. hz must be the current HCLK; 0 means the
// clock could not be decoded and the 16 MHz reset clock is assumed.
func NewDelay(syst *stm32f401.SysTick, hz uint32) *Delay {
	if hz == 0 {
		hz = stm32f401.HSIHz
	}
	return &Delay{syst: syst, hz: hz}
}

// Ms blocks for ms milliseconds.
func (d *Delay) Ms(ms uint32) { d.Delay(time.Duration(ms) * time.Millisecond) }

// Delay blocks for dur. The wait is split into reloads of at most 2^24
// cycles, the width of the SysTick counter.
func (d *Delay) Delay(dur time.Duration) {
	total := timex.Cycles(dur, d.hz)
	for total > 0 {
		n := mathx.Min(total, stm32f401.SYST_RVR_Max+1)
		if n < 2 {
			// A reload of 0 never wraps.
			return
		}
		d.syst.RVR.Set(uint32(n - 1))
		d.syst.CVR.Set(0)
		d.syst.CSR.Set(stm32f401.SYST_CSR_ENABLE | stm32f401.SYST_CSR_CLKSOURCE)
		for !reg.HasBits(d.syst.CSR, stm32f401.SYST_CSR_COUNTFLAG) {
		}
		d.syst.CSR.Set(0)
		total -= n
	}
}
