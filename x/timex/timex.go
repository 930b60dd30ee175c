package timex

import "time"

// PeriodFromHz returns the period of a frequency.
// freqHz==0 is coerced to 1 to avoid division by zero.
func PeriodFromHz(freqHz uint32) time.Duration {
	if freqHz == 0 {
		freqHz = 1
	}
	return time.Duration(uint64(time.Second) / uint64(freqHz))
}

// Cycles returns how many periods of a clock at hz fit in d, rounded down.
// Negative durations yield 0.
func Cycles(d time.Duration, hz uint32) uint64 {
	if d <= 0 {
		return 0
	}
	us := uint64(d / time.Microsecond)
	rem := uint64(d % time.Microsecond)
	return us*uint64(hz)/1_000_000 + rem*uint64(hz)/uint64(time.Second)
}
