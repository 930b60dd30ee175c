// Package clock brings the STM32F401 up from the 16 MHz HSI to the PLL and
// provides a SysTick millisecond delay.
package clock

import (
	"breathe-go/hw/reg"
	"breathe-go/hw/stm32f401"
)

// Config selects the PLL and bus dividers.
// SYSCLK = HSI / PLLM * PLLN / PLLP.
type Config struct {
	PLLM         uint32 // VCO input divider, 2..63
	PLLN         uint32 // VCO multiplier, 192..432 on the F401
	PLLP         uint32 // system clock divider, 2, 4, 6 or 8
	APB1Div      uint32 // 1, 2, 4, 8 or 16
	FlashLatency uint32 // wait states for the resulting HCLK
}

// Default runs the core at 84 MHz with APB1 at 42 MHz.
var Default = Config{
	PLLM:         16,
	PLLN:         336,
	PLLP:         4,
	APB1Div:      2,
	FlashLatency: 2,
}

// Init switches the system clock to the HSI-fed PLL.
//
// It blocks until the PLL reports lock and the clock switch is confirmed;
// there is no timeout. A PLL that already runs with c is left alone and kept
// selected. A PLL running with anything else (the boot runtime may have
// started it from HSE) is stopped first: SYSCLK falls back to HSI, PLLON is
// cleared and the new configuration is written once PLLRDY drops.
func Init(rcc *stm32f401.RCC, flash *stm32f401.FLASH, c Config) {
	if reg.HasBits(rcc.CR, stm32f401.RCC_CR_PLLON) && !pllMatches(rcc, c) {
		stopPLL(rcc)
	}

	// PLLCFGR is only writable while the PLL is off.
	if !reg.HasBits(rcc.CR, stm32f401.RCC_CR_PLLON) {
		stm32f401.RCC_PLLCFGR_SRC.Write(rcc.PLLCFGR, stm32f401.RCC_PLLCFGR_SRC_HSI)
		stm32f401.RCC_PLLCFGR_PLLP.Write(rcc.PLLCFGR, stm32f401.PLLPBits(c.PLLP))
		stm32f401.RCC_PLLCFGR_PLLN.Write(rcc.PLLCFGR, c.PLLN)
		stm32f401.RCC_PLLCFGR_PLLM.Write(rcc.PLLCFGR, c.PLLM)
	}

	stm32f401.RCC_CFGR_PPRE1.Write(rcc.CFGR, stm32f401.PPREBits(c.APB1Div))

	reg.SetBits(rcc.CR, stm32f401.RCC_CR_PLLON)
	for !reg.HasBits(rcc.CR, stm32f401.RCC_CR_PLLRDY) {
	}

	// Wait states must cover the new frequency before the switch.
	stm32f401.FLASH_ACR_LATENCY.Write(flash.ACR, c.FlashLatency)

	stm32f401.RCC_CFGR_SW.Write(rcc.CFGR, stm32f401.RCC_CFGR_SW_PLL)
	for !stm32f401.RCC_CFGR_SWS.Is(rcc.CFGR, stm32f401.RCC_CFGR_SW_PLL) {
	}
}

func pllMatches(rcc *stm32f401.RCC, c Config) bool {
	return stm32f401.RCC_PLLCFGR_SRC.Is(rcc.PLLCFGR, stm32f401.RCC_PLLCFGR_SRC_HSI) &&
		stm32f401.RCC_PLLCFGR_PLLP.Is(rcc.PLLCFGR, stm32f401.PLLPBits(c.PLLP)) &&
		stm32f401.RCC_PLLCFGR_PLLN.Is(rcc.PLLCFGR, c.PLLN) &&
		stm32f401.RCC_PLLCFGR_PLLM.Is(rcc.PLLCFGR, c.PLLM)
}

// stopPLL moves SYSCLK to HSI and turns the PLL off.
func stopPLL(rcc *stm32f401.RCC) {
	reg.SetBits(rcc.CR, stm32f401.RCC_CR_HSION)
	for !reg.HasBits(rcc.CR, stm32f401.RCC_CR_HSIRDY) {
	}
	stm32f401.RCC_CFGR_SW.Write(rcc.CFGR, stm32f401.RCC_CFGR_SW_HSI)
	for !stm32f401.RCC_CFGR_SWS.Is(rcc.CFGR, stm32f401.RCC_CFGR_SW_HSI) {
	}
	reg.ClearBits(rcc.CR, stm32f401.RCC_CR_PLLON)
	for reg.HasBits(rcc.CR, stm32f401.RCC_CR_PLLRDY) {
	}
}

// SysclkHz is the frequency Init produces for c.
func (c Config) SysclkHz() uint32 {
	if c.PLLM == 0 || c.PLLP == 0 {
		return 0
	}
	return uint32(uint64(stm32f401.HSIHz) / uint64(c.PLLM) * uint64(c.PLLN) / uint64(c.PLLP))
}

// VCOHz is the PLL VCO output for c.
func (c Config) VCOHz() uint32 {
	if c.PLLM == 0 {
		return 0
	}
	return uint32(uint64(stm32f401.HSIHz) / uint64(c.PLLM) * uint64(c.PLLN))
}

// MinFlashLatency returns the wait states HCLK needs at 2.7-3.6 V
// (RM0368 table 6): one more per started 30 MHz.
func MinFlashLatency(hclkHz uint32) uint32 {
	if hclkHz == 0 {
		return 0
	}
	return (hclkHz - 1) / 30_000_000
}
