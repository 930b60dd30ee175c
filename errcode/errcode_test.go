package errcode

import (
	"errors"
	"testing"
)

func TestCodesAreStableStrings(t *testing.T) {
	cases := map[string]Code{
		"ok":                OK,
		"invalid_params":    InvalidParams,
		"unknown_board":     UnknownBoard,
		"peripherals_taken": PeripheralsTaken,
		"error":             Error,
	}
	for want, c := range cases {
		if c.Error() != want {
			t.Fatalf("code %q mismatch: got %q", want, c.Error())
		}
	}
}

func TestOf(t *testing.T) {
	cause := errors.New("boom")
	for _, c := range []struct {
		name string
		err  error
		want Code
	}{
		{"nil", nil, OK},
		{"bare code", PeripheralsTaken, PeripheralsTaken},
		{"wrapper", &E{C: InvalidParams, Op: "config", Err: cause}, InvalidParams},
		{"foreign", cause, Error},
	} {
		if got := Of(c.err); got != c.want {
			t.Fatalf("%s: Of = %q, want %q", c.name, got, c.want)
		}
	}
}

func TestEFormattingAndMatching(t *testing.T) {
	cause := errors.New("pll_n out of range")
	e := &E{C: InvalidParams, Op: "config.Validate", Msg: "nucleo-f401re", Err: cause}

	if got, want := e.Error(), "config.Validate: invalid_params: nucleo-f401re"; got != want {
		t.Fatalf("Error() = %q, want %q", got, want)
	}
	if !errors.Is(e, InvalidParams) {
		t.Fatal("errors.Is should match the wrapped code")
	}
	if errors.Is(e, UnknownBoard) {
		t.Fatal("errors.Is matched the wrong code")
	}
	if !errors.Is(e, cause) {
		t.Fatal("errors.Is should reach the cause through Unwrap")
	}
}
