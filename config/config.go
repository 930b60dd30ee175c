// Package config holds the compile-time board profiles.
package config

import (
	"breathe-go/errcode"
	"breathe-go/hw/stm32f401"
	"breathe-go/internal/breathe"
	"breathe-go/internal/clock"
	"breathe-go/internal/pwm"
	"breathe-go/x/mathx"
)

// DefaultBoard is the profile the firmware boots with.
const DefaultBoard = "nucleo-f401re"

// Board is everything the firmware needs to know about one target.
type Board struct {
	Name    string
	Clock   clock.Config
	Timer   pwm.TimerConfig
	Pin     pwm.PinConfig
	Pattern []breathe.Phase
}

var boards = map[string]Board{
	"nucleo-f401re": {
		Name:    "nucleo-f401re",
		Clock:   clock.Default,
		Timer:   pwm.DefaultTimer,
		Pin:     pwm.DefaultPin,
		Pattern: breathe.Default,
	},
}

// BoardLookup allows overriding how profiles are resolved.
var BoardLookup = func(name string) (Board, bool) {
	b, ok := boards[name]
	return b, ok
}

// Load resolves and validates the profile for name.
func Load(name string) (Board, error) {
	b, ok := BoardLookup(name)
	if !ok {
		return Board{}, &errcode.E{C: errcode.UnknownBoard, Op: "config.Load", Msg: name}
	}
	if err := b.Validate(); err != nil {
		return Board{}, err
	}
	return b, nil
}

func invalid(msg string) error {
	return &errcode.E{C: errcode.InvalidParams, Op: "config.Validate", Msg: msg}
}

// Validate checks the profile against the STM32F401 limits (RM0368 6.3.2,
// datasheet table 15) and the PWM duty scale.
func (b Board) Validate() error {
	c := b.Clock
	switch {
	case !mathx.Between(c.PLLM, 2, 63):
		return invalid("pll_m out of range")
	case !mathx.Between(c.PLLN, 192, 432):
		return invalid("pll_n out of range")
	case c.PLLP != 2 && c.PLLP != 4 && c.PLLP != 6 && c.PLLP != 8:
		return invalid("pll_p must be 2, 4, 6 or 8")
	case stm32f401.PPREBits(c.APB1Div) == 0 && c.APB1Div != 1:
		return invalid("apb1_div must be 1, 2, 4, 8 or 16")
	}

	vcoIn := uint32(stm32f401.HSIHz) / c.PLLM
	if !mathx.Between(vcoIn, 1_000_000, 2_000_000) {
		return invalid("vco input out of range")
	}
	if !mathx.Between(c.VCOHz(), 192_000_000, 432_000_000) {
		return invalid("vco output out of range")
	}
	sys := c.SysclkHz()
	if sys > stm32f401.MaxSysclkHz {
		return invalid("sysclk above 84 MHz")
	}
	if sys/c.APB1Div > stm32f401.MaxAPB1Hz {
		return invalid("apb1 above 42 MHz")
	}
	if c.FlashLatency > 15 {
		return invalid("flash latency exceeds 15 wait states")
	}
	if c.FlashLatency < clock.MinFlashLatency(sys) {
		return invalid("flash latency too low for sysclk")
	}

	t := b.Timer
	if t.Prescaler > 0xFFFF {
		return invalid("prescaler exceeds 16 bits")
	}
	if t.AutoReload != pwm.DutyMax-1 {
		return invalid("auto_reload must give one tick per duty step")
	}
	if b.Pin.Pin > 15 || b.Pin.AF > 15 {
		return invalid("pin or alternate function out of range")
	}
	if len(b.Pattern) == 0 {
		return invalid("empty pattern")
	}
	return nil
}
