//go:build !stm32f401

package clock

import (
	"testing"
	"time"

	"breathe-go/hw/reg"
	"breathe-go/hw/stm32f401"
)

func TestDelayConsumesExactCycles(t *testing.T) {
	for _, c := range []struct {
		name string
		run  func(d *Delay)
		want uint64
	}{
		{"2000ms", func(d *Delay) { d.Ms(2000) }, 168_000_000},
		{"1000ms", func(d *Delay) { d.Ms(1000) }, 84_000_000},
		{"1ms", func(d *Delay) { d.Delay(time.Millisecond) }, 84_000},
		{"zero", func(d *Delay) { d.Ms(0) }, 0},
	} {
		chip := stm32f401.NewChip()
		Init(chip.P.RCC, chip.P.FLASH, Default)
		d := NewDelay(chip.P.SYST, stm32f401.HCLKHz(chip.P.RCC))
		c.run(d)
		if got := chip.Cycles(); got != c.want {
			t.Fatalf("%s: cycles = %d, want %d", c.name, got, c.want)
		}
	}
}

func TestDelayLeavesSysTickStopped(t *testing.T) {
	chip := stm32f401.NewChip()
	d := NewDelay(chip.P.SYST, stm32f401.HSIHz)
	d.Ms(1500) // 24e6 cycles: one full 2^24 reload plus a remainder

	if got := chip.Cycles(); got != 24_000_000 {
		t.Fatalf("cycles = %d, want 24000000", got)
	}
	if reg.HasBits(chip.P.SYST.CSR, stm32f401.SYST_CSR_ENABLE) {
		t.Fatal("SysTick left running")
	}
	if got := chip.P.SYST.RVR.Get(); got != 24_000_000-(1<<24)-1 {
		t.Fatalf("last reload = %d", got)
	}
}

func TestDelayWithUnknownClockAssumesHSI(t *testing.T) {
	chip := stm32f401.NewChip()
	d := NewDelay(chip.P.SYST, 0)
	d.Ms(1000)
	if got := chip.Cycles(); got != stm32f401.HSIHz {
		t.Fatalf("cycles = %d, want %d", got, stm32f401.HSIHz)
	}
}
