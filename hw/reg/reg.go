// Package reg provides typed access to 32-bit memory-mapped registers.
//
// On the MCU a Register is a *volatile.Register32 bound to a fixed address;
// on a host it is a Sim cell. Drivers only see the interface.
package reg

// Register is a single 32-bit hardware register.
type Register interface {
	Get() uint32
	Set(value uint32)
}

// SetBits ORs mask into r.
func SetBits(r Register, mask uint32) { r.Set(r.Get() | mask) }

// ClearBits clears mask in r.
func ClearBits(r Register, mask uint32) { r.Set(r.Get() &^ mask) }

// HasBits reports whether every bit of mask is set in r.
func HasBits(r Register, mask uint32) bool { return r.Get()&mask == mask }

// Field is a contiguous bit-field inside a register.
type Field struct {
	Pos   uint8
	Width uint8
}

// Mask returns the in-place mask of the field.
func (f Field) Mask() uint32 {
	if f.Width >= 32 {
		return ^uint32(0)
	}
	return ((1 << f.Width) - 1) << f.Pos
}

// Bits returns v shifted into place and truncated to the field width.
func (f Field) Bits(v uint32) uint32 { return (v << f.Pos) & f.Mask() }

// Read returns the field value of r.
func (f Field) Read(r Register) uint32 { return (r.Get() & f.Mask()) >> f.Pos }

// Write replaces the field in r with v using read-modify-write.
// Bits of v above the field width are dropped.
func (f Field) Write(r Register, v uint32) {
	r.Set(r.Get()&^f.Mask() | f.Bits(v))
}

// Is reports whether the field currently holds v.
func (f Field) Is(r Register, v uint32) bool { return f.Read(r) == v&(f.Mask()>>f.Pos) }
