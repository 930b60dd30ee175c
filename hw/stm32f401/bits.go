package stm32f401

import "breathe-go/hw/reg"

// RCC_CR
const (
	RCC_CR_HSION  = 1 << 0
	RCC_CR_HSIRDY = 1 << 1
	RCC_CR_HSEON  = 1 << 16
	RCC_CR_HSERDY = 1 << 17
	RCC_CR_PLLON  = 1 << 24
	RCC_CR_PLLRDY = 1 << 25
)

// RCC_PLLCFGR
var (
	RCC_PLLCFGR_PLLM = reg.Field{Pos: 0, Width: 6}
	RCC_PLLCFGR_PLLN = reg.Field{Pos: 6, Width: 9}
	RCC_PLLCFGR_PLLP = reg.Field{Pos: 16, Width: 2}
	RCC_PLLCFGR_SRC  = reg.Field{Pos: 22, Width: 1}
)

const (
	RCC_PLLCFGR_Reset = 0x24003010

	RCC_PLLCFGR_SRC_HSI = 0
	RCC_PLLCFGR_SRC_HSE = 1
)

// RCC_CFGR
var (
	RCC_CFGR_SW    = reg.Field{Pos: 0, Width: 2}
	RCC_CFGR_SWS   = reg.Field{Pos: 2, Width: 2}
	RCC_CFGR_HPRE  = reg.Field{Pos: 4, Width: 4}
	RCC_CFGR_PPRE1 = reg.Field{Pos: 10, Width: 3}
)

// System clock sources, shared by SW and SWS.
const (
	RCC_CFGR_SW_HSI = 0
	RCC_CFGR_SW_HSE = 1
	RCC_CFGR_SW_PLL = 2
)

// RCC_AHB1ENR / RCC_APB1ENR
const (
	RCC_AHB1ENR_GPIOAEN = 1 << 0
	RCC_APB1ENR_TIM2EN  = 1 << 0
)

// FLASH_ACR
var FLASH_ACR_LATENCY = reg.Field{Pos: 0, Width: 4}

// GPIO MODER value for an alternate function pin.
const GPIO_MODE_Alternate = 2

// ModeField returns the MODER field of pin (0..15).
func ModeField(pin uint8) reg.Field { return reg.Field{Pos: pin * 2, Width: 2} }

// AFField returns the alternate function register and field of pin (0..15).
func (g *GPIO) AFField(pin uint8) (reg.Register, reg.Field) {
	if pin < 8 {
		return g.AFRL, reg.Field{Pos: pin * 4, Width: 4}
	}
	return g.AFRH, reg.Field{Pos: (pin - 8) * 4, Width: 4}
}

// TIMx
const (
	TIM_CR1_CEN   = 1 << 0
	TIM_CCER_CC1E = 1 << 0
)

var TIM_CCMR1_OC1M = reg.Field{Pos: 4, Width: 3}

// PWM mode 1: output active while CNT < CCR1.
const TIM_OCM_PWM1 = 6

// SysTick
const (
	SYST_CSR_ENABLE    = 1 << 0
	SYST_CSR_CLKSOURCE = 1 << 2
	SYST_CSR_COUNTFLAG = 1 << 16

	SYST_RVR_Max = 0x00FFFFFF
)
