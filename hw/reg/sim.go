package reg

// Sim is an in-memory register used by host builds and tests.
// OnWrite, if set, sees the old and requested value and returns the value
// actually stored. OnRead, if set, may rewrite the stored value on each read
// and returns what the reader observes.
type Sim struct {
	v       uint32
	writes  int
	OnWrite func(old, v uint32) uint32
	OnRead  func(s *Sim) uint32
}

// NewSim returns a register holding reset.
func NewSim(reset uint32) *Sim { return &Sim{v: reset} }

func (s *Sim) Get() uint32 {
	if s.OnRead != nil {
		return s.OnRead(s)
	}
	return s.v
}

func (s *Sim) Set(v uint32) {
	s.writes++
	if s.OnWrite != nil {
		v = s.OnWrite(s.v, v)
	}
	s.v = v
}

// Raw returns the stored value without running hooks.
func (s *Sim) Raw() uint32 { return s.v }

// Poke stores v without running hooks or counting a write.
// It is how simulated hardware updates status bits.
func (s *Sim) Poke(v uint32) { s.v = v }

// Writes returns how many times software wrote the register.
func (s *Sim) Writes() int { return s.writes }
