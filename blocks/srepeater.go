package blocks

// SRepeater is the pruned fast path for a delay-1 repeater with no side
// inputs: single-tick propagation with no lock gate and no delay line.
// Pruning rewrites qualifying repeaters to this kind; it is never produced
// by construction.
type SRepeater struct {
	powered bool
	next    bool
}

// NewSRepeater returns a simple repeater in the given committed state.
func NewSRepeater(powered bool) *SRepeater {
	return &SRepeater{powered: powered, next: powered}
}

func (s *SRepeater) OutputPower() uint8 {
	if s.powered {
		return MaxPower
	}

	return 0
}

func (s *SRepeater) Update(in Inputs) bool {
	s.next = in.Rear > 0

	return s.powered != s.next
}

func (s *SRepeater) LateUpdate(uint64) Commit {
	s.powered = s.next

	return Commit{Changed: true}
}
