// Package stm32f401 describes the STM32F401 register blocks used by the
// firmware and hands out exclusive ownership of them.
//
// Register and bit-field names follow RM0368. Only the registers the
// firmware touches are modelled.
package stm32f401

import (
	"sync/atomic"

	"breathe-go/errcode"
	"breathe-go/hw/reg"
)

// RCC is the reset and clock control block.
type RCC struct {
	CR      reg.Register
	PLLCFGR reg.Register
	CFGR    reg.Register
	AHB1ENR reg.Register
	APB1ENR reg.Register
}

// FLASH is the embedded flash interface.
type FLASH struct {
	ACR reg.Register
}

// GPIO is one general purpose I/O port.
type GPIO struct {
	MODER reg.Register
	AFRL  reg.Register
	AFRH  reg.Register
}

// TIM is a general purpose timer (TIM2..TIM5 layout).
type TIM struct {
	CR1   reg.Register
	CCMR1 reg.Register
	CCER  reg.Register
	PSC   reg.Register
	ARR   reg.Register
	CCR1  reg.Register
}

// SysTick is the Cortex-M4 system timer.
type SysTick struct {
	CSR reg.Register
	RVR reg.Register
	CVR reg.Register
}

// Peripherals is the set of blocks owned by the firmware.
type Peripherals struct {
	RCC   *RCC
	FLASH *FLASH
	GPIOA *GPIO
	TIM2  *TIM
	SYST  *SysTick
}

var taken atomic.Bool

// Take returns the peripheral set. Only the first call succeeds; later calls
// return errcode.PeripheralsTaken.
func Take() (*Peripherals, error) {
	if !taken.CompareAndSwap(false, true) {
		return nil, errcode.PeripheralsTaken
	}
	return bind(), nil
}
