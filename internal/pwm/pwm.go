// Package pwm drives PWM on TIM2 channel 1 and routes it to a GPIOA pin.
package pwm

import (
	"breathe-go/hw/reg"
	"breathe-go/hw/stm32f401"
	"breathe-go/x/mathx"
)

// Duty commands are in permille of the period.
const (
	DutyMin = 1
	DutyMax = 1000
)

// TimerConfig fixes the PWM period and the starting duty.
// f_pwm = f_timer / ((Prescaler+1) * (AutoReload+1)).
type TimerConfig struct {
	Prescaler   uint32
	AutoReload  uint32
	InitialDuty uint32
}

// PinConfig routes the channel to a GPIOA pin.
type PinConfig struct {
	Pin uint8  // 0..15
	AF  uint32 // alternate function number
}

// Default gives 1 kHz from an 84 MHz timer clock with one tick per duty step.
var (
	DefaultTimer = TimerConfig{Prescaler: 84 - 1, AutoReload: DutyMax - 1, InitialDuty: 500}
	DefaultPin   = PinConfig{Pin: 5, AF: 1} // PA5 = TIM2_CH1 (Nucleo LD2)
)

// ClampDuty limits d to [DutyMin, DutyMax]; 0 maps to DutyMin.
func ClampDuty(d uint32) uint32 { return mathx.Clamp(d, DutyMin, DutyMax) }

// Channel is TIM2 channel 1 in PWM mode 1.
type Channel struct {
	tim *stm32f401.TIM
}

// InitTimer enables the TIM2 clock and programs the period, PWM mode 1 on
// channel 1 and the initial duty. The counter is left stopped.
func InitTimer(rcc *stm32f401.RCC, tim *stm32f401.TIM, c TimerConfig) *Channel {
	reg.SetBits(rcc.APB1ENR, stm32f401.RCC_APB1ENR_TIM2EN)

	tim.PSC.Set(c.Prescaler)
	tim.ARR.Set(c.AutoReload)
	stm32f401.TIM_CCMR1_OC1M.Write(tim.CCMR1, stm32f401.TIM_OCM_PWM1)

	ch := &Channel{tim: tim}
	ch.SetDuty(c.InitialDuty)
	return ch
}

// InitPin enables the GPIOA clock and puts the pin in alternate function
// mode with the given mapping.
func InitPin(rcc *stm32f401.RCC, gpio *stm32f401.GPIO, c PinConfig) {
	reg.SetBits(rcc.AHB1ENR, stm32f401.RCC_AHB1ENR_GPIOAEN)

	stm32f401.ModeField(c.Pin).Write(gpio.MODER, stm32f401.GPIO_MODE_Alternate)
	r, f := gpio.AFField(c.Pin)
	f.Write(r, c.AF)
}

// Start enables the counter and the channel output.
func (ch *Channel) Start() {
	reg.SetBits(ch.tim.CR1, stm32f401.TIM_CR1_CEN)
	reg.SetBits(ch.tim.CCER, stm32f401.TIM_CCER_CC1E)
}

// SetDuty writes clamp(d)-1 to the compare register. Out of range values
// are clamped, never rejected.
func (ch *Channel) SetDuty(d uint32) {
	ch.tim.CCR1.Set(ClampDuty(d) - 1)
}

// Duty returns the duty command currently loaded.
func (ch *Channel) Duty() uint32 { return ch.tim.CCR1.Get() + 1 }

// Frequency returns the PWM frequency for a timer kernel clock of timerHz.
func (ch *Channel) Frequency(timerHz uint32) uint32 {
	return Frequency(timerHz, ch.tim.PSC.Get(), ch.tim.ARR.Get())
}

// Frequency returns timerHz / ((psc+1) * (arr+1)), rounded.
func Frequency(timerHz, psc, arr uint32) uint32 {
	return uint32(mathx.RoundDiv(uint64(timerHz), (uint64(psc)+1)*(uint64(arr)+1)))
}
