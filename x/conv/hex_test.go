package conv

import "testing"

func TestU32Hex(t *testing.T) {
	var buf [12]byte
	if got := string(U32Hex(buf[:], 0x24003010)); got != "24003010" {
		t.Fatalf("U32Hex = %q", got)
	}
	if got := U32Hex(buf[:7], 1); len(got) != 0 {
		t.Fatalf("short buffer gave %q", got)
	}
}

func TestHex32(t *testing.T) {
	for n, want := range map[uint32]string{
		0:          "0x00000000",
		0x3E7:      "0x000003E7",
		0xA8000000: "0xA8000000",
		0xFFFFFFFF: "0xFFFFFFFF",
	} {
		if got := Hex32(n); got != want {
			t.Fatalf("Hex32(%#x) = %q, want %q", n, got, want)
		}
	}
}
