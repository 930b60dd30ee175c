//go:build !stm32f401

package pwm

import (
	"testing"

	"breathe-go/hw/reg"
	"breathe-go/hw/stm32f401"
	"breathe-go/internal/clock"
)

func newStarted(t *testing.T) (*stm32f401.Chip, *Channel) {
	t.Helper()
	c := stm32f401.NewChip()
	clock.Init(c.P.RCC, c.P.FLASH, clock.Default)
	ch := InitTimer(c.P.RCC, c.P.TIM2, DefaultTimer)
	InitPin(c.P.RCC, c.P.GPIOA, DefaultPin)
	ch.Start()
	return c, ch
}

func TestSetDutyWritesClampMinusOne(t *testing.T) {
	c, ch := newStarted(t)
	for _, d := range []uint32{0, 1, 100, 500, 1000, 1001} {
		ch.SetDuty(d)
		want := ClampDuty(d) - 1
		if got := c.P.TIM2.CCR1.Get(); got != want {
			t.Fatalf("SetDuty(%d): CCR1 = %d, want %d", d, got, want)
		}
		if got := ch.Duty(); got != ClampDuty(d) {
			t.Fatalf("SetDuty(%d): Duty() = %d", d, got)
		}
	}
}

func TestInitTimerProgramsPeriodAndMode(t *testing.T) {
	c, _ := newStarted(t)
	tim := c.P.TIM2

	if !reg.HasBits(c.P.RCC.APB1ENR, stm32f401.RCC_APB1ENR_TIM2EN) {
		t.Fatal("TIM2 clock gate off")
	}
	if tim.PSC.Get() != 83 || tim.ARR.Get() != 999 {
		t.Fatalf("PSC/ARR = %d/%d, want 83/999", tim.PSC.Get(), tim.ARR.Get())
	}
	if got := stm32f401.TIM_CCMR1_OC1M.Read(tim.CCMR1); got != stm32f401.TIM_OCM_PWM1 {
		t.Fatalf("OC1M = %03b, want 110", got)
	}
	if tim.CCR1.Get() != 499 {
		t.Fatalf("initial CCR1 = %d, want 499", tim.CCR1.Get())
	}
	if !reg.HasBits(tim.CR1, stm32f401.TIM_CR1_CEN) || !reg.HasBits(tim.CCER, stm32f401.TIM_CCER_CC1E) {
		t.Fatalf("CR1=%#x CCER=%#x, want CEN and CC1E", tim.CR1.Get(), tim.CCER.Get())
	}
}

func TestInitTimerBeforeStartLeavesCounterOff(t *testing.T) {
	c := stm32f401.NewChip()
	InitTimer(c.P.RCC, c.P.TIM2, DefaultTimer)
	if reg.HasBits(c.P.TIM2.CR1, stm32f401.TIM_CR1_CEN) || reg.HasBits(c.P.TIM2.CCER, stm32f401.TIM_CCER_CC1E) {
		t.Fatal("counter or output enabled before Start")
	}
}

func TestInitPinSelectsAF1OnPA5(t *testing.T) {
	c, _ := newStarted(t)
	g := c.P.GPIOA

	if !reg.HasBits(c.P.RCC.AHB1ENR, stm32f401.RCC_AHB1ENR_GPIOAEN) {
		t.Fatal("GPIOA clock gate off")
	}
	if got := stm32f401.ModeField(5).Read(g.MODER); got != stm32f401.GPIO_MODE_Alternate {
		t.Fatalf("MODER5 = %02b, want 10", got)
	}
	if got := g.AFRL.Get(); got != 1<<20 {
		t.Fatalf("AFRL = %#x, want AF1 on pin 5 only", got)
	}
	// The SWD pins keep their reset mode.
	if got := g.MODER.Get() & 0xFC000000; got != 0xA8000000 {
		t.Fatalf("MODER[15:13] = %#x, disturbed", got)
	}
}

func TestPeriodIndependentOfDuty(t *testing.T) {
	c, ch := newStarted(t)
	timerHz := stm32f401.APB1TimerHz(c.P.RCC)

	want := ch.Frequency(timerHz)
	if want != 1000 {
		t.Fatalf("PWM frequency = %d Hz, want 1000", want)
	}
	for _, d := range []uint32{0, 1, 100, 500, 1000, 5000} {
		ch.SetDuty(d)
		if got := ch.Frequency(timerHz); got != want {
			t.Fatalf("duty %d changed frequency to %d", d, got)
		}
		if c.P.TIM2.PSC.Get() != 83 || c.P.TIM2.ARR.Get() != 999 {
			t.Fatalf("duty %d touched PSC/ARR", d)
		}
	}
}
