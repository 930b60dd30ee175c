package stm32f401

// PLLPDiv converts the PLLP field encoding to the divider (2, 4, 6, 8).
func PLLPDiv(bits uint32) uint32 { return (bits&0x3 + 1) * 2 }

// PLLPBits converts a divider (2, 4, 6, 8) to its PLLP encoding.
func PLLPBits(div uint32) uint32 { return (div/2 - 1) & 0x3 }

// PPREDiv converts a PPRE1/PPRE2 encoding to the APB divider.
func PPREDiv(bits uint32) uint32 {
	if bits&0x4 == 0 {
		return 1
	}
	return 2 << (bits & 0x3)
}

// PPREBits converts an APB divider (1, 2, 4, 8, 16) to its encoding.
func PPREBits(div uint32) uint32 {
	switch div {
	case 2:
		return 0b100
	case 4:
		return 0b101
	case 8:
		return 0b110
	case 16:
		return 0b111
	}
	return 0
}

func hpreDiv(bits uint32) uint32 {
	if bits&0x8 == 0 {
		return 1
	}
	// 1000..1011 => 2..16, 1100..1111 => 64..512 (32 is skipped)
	n := bits & 0x7
	if n >= 4 {
		n++
	}
	return 2 << n
}

// PLLHz returns the main PLL output for the current PLLCFGR.
func PLLHz(rcc *RCC) uint32 {
	m := RCC_PLLCFGR_PLLM.Read(rcc.PLLCFGR)
	if m == 0 {
		return 0
	}
	in := uint64(HSIHz)
	if RCC_PLLCFGR_SRC.Read(rcc.PLLCFGR) == RCC_PLLCFGR_SRC_HSE {
		in = HSEHz
	}
	n := RCC_PLLCFGR_PLLN.Read(rcc.PLLCFGR)
	p := PLLPDiv(RCC_PLLCFGR_PLLP.Read(rcc.PLLCFGR))
	return uint32(in / uint64(m) * uint64(n) / uint64(p))
}

// SysclkHz decodes the running system clock from SWS.
func SysclkHz(rcc *RCC) uint32 {
	switch RCC_CFGR_SWS.Read(rcc.CFGR) {
	case RCC_CFGR_SW_HSI:
		return HSIHz
	case RCC_CFGR_SW_HSE:
		return HSEHz
	case RCC_CFGR_SW_PLL:
		return PLLHz(rcc)
	}
	return 0
}

// HCLKHz is SYSCLK after the AHB prescaler.
func HCLKHz(rcc *RCC) uint32 {
	return SysclkHz(rcc) / hpreDiv(RCC_CFGR_HPRE.Read(rcc.CFGR))
}

// APB1Hz is the APB1 peripheral clock.
func APB1Hz(rcc *RCC) uint32 {
	return HCLKHz(rcc) / PPREDiv(RCC_CFGR_PPRE1.Read(rcc.CFGR))
}

// APB1TimerHz is the kernel clock of TIM2..TIM5: APB1, doubled whenever the
// APB1 prescaler is not 1.
func APB1TimerHz(rcc *RCC) uint32 {
	if PPREDiv(RCC_CFGR_PPRE1.Read(rcc.CFGR)) == 1 {
		return APB1Hz(rcc)
	}
	return APB1Hz(rcc) * 2
}
