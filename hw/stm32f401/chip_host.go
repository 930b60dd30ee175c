//go:build !stm32f401

package stm32f401

import (
	"time"

	"breathe-go/hw/reg"
)

// Chip simulates the parts of an STM32F401 the firmware relies on, so the
// same drivers run on a host. It models:
//   - read-only ready/status bits (HSIRDY, HSERDY, PLLRDY, SWS),
//   - PLLRDY rising LockPolls reads of CR after PLLON,
//   - PLLON staying set while the PLL is the system clock,
//   - PLLCFGR writes being ignored while the PLL runs,
//   - SW=HSE or SW=PLL being refused while that source is not ready,
//   - GPIOA and TIM2 writes being dropped while their clock gate is off,
//   - SysTick counting RVR+1 core cycles per COUNTFLAG poll.
type Chip struct {
	P Peripherals

	// LockPolls is the number of CR reads between PLLON and PLLRDY.
	LockPolls int
	// Realtime paces SysTick wraps against the wall clock.
	Realtime bool

	cr, pllcfgr, cfgr, ahb1enr, apb1enr *reg.Sim
	acr                                 *reg.Sim
	moder, afrl, afrh                   *reg.Sim
	cr1, ccmr1, ccer, psc, arr, ccr1    *reg.Sim
	csr, rvr, cvr                       *reg.Sim

	lockCount int
	cycles    uint64
}

// NewChip returns a chip in its reset state.
func NewChip() *Chip {
	c := &Chip{LockPolls: 3}

	c.cr = reg.NewSim(RCC_CR_HSION | RCC_CR_HSIRDY)
	c.pllcfgr = reg.NewSim(RCC_PLLCFGR_Reset)
	c.cfgr = reg.NewSim(0)
	c.ahb1enr = reg.NewSim(0)
	c.apb1enr = reg.NewSim(0)
	c.acr = reg.NewSim(0)
	c.moder = reg.NewSim(0xA8000000) // PA13..15 are SWD after reset
	c.afrl = reg.NewSim(0)
	c.afrh = reg.NewSim(0)
	c.cr1 = reg.NewSim(0)
	c.ccmr1 = reg.NewSim(0)
	c.ccer = reg.NewSim(0)
	c.psc = reg.NewSim(0)
	c.arr = reg.NewSim(0xFFFFFFFF) // TIM2 is 32-bit
	c.ccr1 = reg.NewSim(0)
	c.csr = reg.NewSim(0)
	c.rvr = reg.NewSim(0)
	c.cvr = reg.NewSim(0)

	sws := RCC_CFGR_SWS.Mask()
	const roCR = RCC_CR_HSIRDY | RCC_CR_HSERDY | RCC_CR_PLLRDY
	c.cr.OnWrite = func(old, v uint32) uint32 {
		v = v&^roCR | old&roCR
		if c.cfgr.Raw()&sws == RCC_CFGR_SWS.Bits(RCC_CFGR_SW_PLL) {
			v |= RCC_CR_PLLON
		}
		if v&RCC_CR_PLLON == 0 {
			v &^= RCC_CR_PLLRDY
			c.lockCount = 0
		}
		// The board oscillator is always present.
		if v&RCC_CR_HSEON != 0 {
			v |= RCC_CR_HSERDY
		} else {
			v &^= RCC_CR_HSERDY
		}
		return v
	}
	c.cr.OnRead = func(s *reg.Sim) uint32 {
		v := s.Raw()
		if v&RCC_CR_PLLON != 0 && v&RCC_CR_PLLRDY == 0 {
			c.lockCount++
			if c.lockCount >= c.LockPolls {
				v |= RCC_CR_PLLRDY
				s.Poke(v)
			}
		}
		return v
	}

	c.pllcfgr.OnWrite = func(old, v uint32) uint32 {
		if c.cr.Raw()&RCC_CR_PLLON != 0 {
			return old
		}
		return v
	}

	c.cfgr.OnWrite = func(old, v uint32) uint32 { return v&^sws | old&sws }
	c.cfgr.OnRead = func(s *reg.Sim) uint32 {
		v := s.Raw()
		sw := (v & RCC_CFGR_SW.Mask()) >> RCC_CFGR_SW.Pos
		var ready uint32 = RCC_CR_HSIRDY
		switch sw {
		case RCC_CFGR_SW_HSE:
			ready = RCC_CR_HSERDY
		case RCC_CFGR_SW_PLL:
			ready = RCC_CR_PLLRDY
		}
		if c.cr.Raw()&ready != 0 {
			v = v&^sws | RCC_CFGR_SWS.Bits(sw)
			s.Poke(v)
		}
		return v
	}

	gated := func(en *reg.Sim, bit uint32) func(old, v uint32) uint32 {
		return func(old, v uint32) uint32 {
			if en.Raw()&bit == 0 {
				return old
			}
			return v
		}
	}
	for _, r := range []*reg.Sim{c.moder, c.afrl, c.afrh} {
		r.OnWrite = gated(c.ahb1enr, RCC_AHB1ENR_GPIOAEN)
	}
	for _, r := range []*reg.Sim{c.cr1, c.ccmr1, c.ccer, c.psc, c.arr, c.ccr1} {
		r.OnWrite = gated(c.apb1enr, RCC_APB1ENR_TIM2EN)
	}

	c.rvr.OnWrite = func(_, v uint32) uint32 { return v & SYST_RVR_Max }
	c.cvr.OnWrite = func(_, _ uint32) uint32 {
		c.csr.Poke(c.csr.Raw() &^ SYST_CSR_COUNTFLAG)
		return 0
	}
	c.csr.OnWrite = func(_, v uint32) uint32 { return v &^ SYST_CSR_COUNTFLAG }
	c.csr.OnRead = func(s *reg.Sim) uint32 {
		v := s.Raw()
		if v&SYST_CSR_ENABLE == 0 {
			return v
		}
		// Run the counter down to its next wrap; the flag clears on read.
		n := uint64(c.rvr.Raw()) + 1
		c.cycles += n
		if c.Realtime {
			if hz := SysclkHz(c.P.RCC); hz != 0 {
				time.Sleep(time.Duration(n * uint64(time.Second) / uint64(hz)))
			}
		}
		return v | SYST_CSR_COUNTFLAG
	}

	c.P = Peripherals{
		RCC:   &RCC{CR: c.cr, PLLCFGR: c.pllcfgr, CFGR: c.cfgr, AHB1ENR: c.ahb1enr, APB1ENR: c.apb1enr},
		FLASH: &FLASH{ACR: c.acr},
		GPIOA: &GPIO{MODER: c.moder, AFRL: c.afrl, AFRH: c.afrh},
		TIM2:  &TIM{CR1: c.cr1, CCMR1: c.ccmr1, CCER: c.ccer, PSC: c.psc, ARR: c.arr, CCR1: c.ccr1},
		SYST:  &SysTick{CSR: c.csr, RVR: c.rvr, CVR: c.cvr},
	}
	return c
}

// Cycles returns the core cycles consumed by SysTick waits so far.
func (c *Chip) Cycles() uint64 { return c.cycles }

// PLLCFGRWrites returns how many times software wrote PLLCFGR.
func (c *Chip) PLLCFGRWrites() int { return c.pllcfgr.Writes() }

// CCR1Writes returns how many times software wrote TIM2 CCR1.
func (c *Chip) CCR1Writes() int { return c.ccr1.Writes() }

func bind() *Peripherals {
	c := NewChip()
	c.Realtime = true
	return &c.P
}
