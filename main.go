package main

import (
	"breathe-go/config"
	"breathe-go/hw/reg"
	"breathe-go/hw/stm32f401"
	"breathe-go/internal/breathe"
	"breathe-go/internal/clock"
	"breathe-go/internal/pwm"
	"breathe-go/x/conv"
	"breathe-go/x/timex"
)

// logged prints each duty change to the console.
type logged struct{ *pwm.Channel }

func (l logged) SetDuty(d uint32) {
	l.Channel.SetDuty(d)
	println("Info: duty", l.Duty(), "/", pwm.DutyMax)
}

// dumpRegs prints the registers the bring-up sequence programmed.
func dumpRegs(p *stm32f401.Peripherals) {
	for _, r := range []struct {
		name string
		r    reg.Register
	}{
		{"RCC_CR", p.RCC.CR},
		{"RCC_PLLCFGR", p.RCC.PLLCFGR},
		{"RCC_CFGR", p.RCC.CFGR},
		{"FLASH_ACR", p.FLASH.ACR},
		{"GPIOA_MODER", p.GPIOA.MODER},
		{"GPIOA_AFRL", p.GPIOA.AFRL},
		{"TIM2_CR1", p.TIM2.CR1},
		{"TIM2_CCMR1", p.TIM2.CCMR1},
		{"TIM2_CCER", p.TIM2.CCER},
		{"TIM2_PSC", p.TIM2.PSC},
		{"TIM2_ARR", p.TIM2.ARR},
		{"TIM2_CCR1", p.TIM2.CCR1},
	} {
		println("Info:", r.name, conv.Hex32(r.r.Get()))
	}
}

func main() {
	board, err := config.Load(config.DefaultBoard)
	if err != nil {
		println("Error:", err.Error())
		panic(err)
	}

	p, err := stm32f401.Take()
	if err != nil {
		println("Error:", err.Error())
		panic(err)
	}

	clock.Init(p.RCC, p.FLASH, board.Clock)
	ch := pwm.InitTimer(p.RCC, p.TIM2, board.Timer)
	pwm.InitPin(p.RCC, p.GPIOA, board.Pin)
	ch.Start()

	hclk := stm32f401.HCLKHz(p.RCC)
	freq := ch.Frequency(stm32f401.APB1TimerHz(p.RCC))
	println("Info: boot", board.Name, "sysclk", stm32f401.SysclkHz(p.RCC), "Hz")
	println("Info: pwm", freq, "Hz, period", timex.PeriodFromHz(freq).String())

	dumpRegs(p)

	delay := clock.NewDelay(p.SYST, hclk)
	breathe.Run(board.Pattern, breathe.Limits{Lo: pwm.DutyMin, Hi: pwm.DutyMax}, logged{ch}, delay, 0)
}
