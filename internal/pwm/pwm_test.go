package pwm

import "testing"

func TestClampDuty(t *testing.T) {
	for in, want := range map[uint32]uint32{
		0:          1,
		1:          1,
		100:        100,
		500:        500,
		999:        999,
		1000:       1000,
		1001:       1000,
		0xFFFFFFFF: 1000,
	} {
		if got := ClampDuty(in); got != want {
			t.Fatalf("ClampDuty(%d) = %d, want %d", in, got, want)
		}
	}
}

func TestFrequency(t *testing.T) {
	for _, c := range []struct{ hz, psc, arr, want uint32 }{
		{84_000_000, 83, 999, 1000},
		{16_000_000, 15, 999, 1000},
		{84_000_000, 0, 0xFFFFFFFF, 0},
		{84_000_000, 0, 0, 84_000_000},
	} {
		if got := Frequency(c.hz, c.psc, c.arr); got != c.want {
			t.Fatalf("Frequency(%d, %d, %d) = %d, want %d", c.hz, c.psc, c.arr, got, c.want)
		}
	}
}
