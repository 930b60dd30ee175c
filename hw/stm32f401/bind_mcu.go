//go:build stm32f401

package stm32f401

import (
	"device/arm"
	"device/stm32"
)

func bind() *Peripherals {
	return &Peripherals{
		RCC: &RCC{
			CR:      &stm32.RCC.CR,
			PLLCFGR: &stm32.RCC.PLLCFGR,
			CFGR:    &stm32.RCC.CFGR,
			AHB1ENR: &stm32.RCC.AHB1ENR,
			APB1ENR: &stm32.RCC.APB1ENR,
		},
		FLASH: &FLASH{
			ACR: &stm32.FLASH.ACR,
		},
		GPIOA: &GPIO{
			MODER: &stm32.GPIOA.MODER,
			AFRL:  &stm32.GPIOA.AFRL,
			AFRH:  &stm32.GPIOA.AFRH,
		},
		TIM2: &TIM{
			CR1:   &stm32.TIM2.CR1,
			CCMR1: &stm32.TIM2.CCMR1_Output,
			CCER:  &stm32.TIM2.CCER,
			PSC:   &stm32.TIM2.PSC,
			ARR:   &stm32.TIM2.ARR,
			CCR1:  &stm32.TIM2.CCR1,
		},
		SYST: &SysTick{
			CSR: &arm.SYST.SYST_CSR,
			RVR: &arm.SYST.SYST_RVR,
			CVR: &arm.SYST.SYST_CVR,
		},
	}
}
