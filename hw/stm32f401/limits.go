package stm32f401

// Clock constants of the part and board.
const (
	HSIHz = 16_000_000
	// HSEHz is the 8 MHz MCO the Nucleo ST-LINK feeds into OSC_IN.
	HSEHz = 8_000_000

	MaxSysclkHz = 84_000_000
	MaxAPB1Hz   = 42_000_000
)
