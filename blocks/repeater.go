package blocks

import "github.com/JonathanBrouwer/redstone-simulator/facing"

// Repeater restores a boolean rear input to full strength after a
// configurable delay of 1 to 4 ticks, and freezes while its side channel is
// powered (locked). count tracks the ticks elapsed since the last observed
// edge; it never exceeds delay and equals delay only transiently inside
// LateUpdate.
type Repeater struct {
	powered     bool
	nextPowered bool
	locked      bool
	delay       uint8
	count       uint8
}

// NewRepeater returns a repeater in the given committed state.
func NewRepeater(powered bool, delay uint8) *Repeater {
	return &Repeater{powered: powered, nextPowered: powered, delay: delay}
}

func (r *Repeater) OutputPower() uint8 {
	if r.powered {
		return MaxPower
	}

	return 0
}

// Delay returns the configured delay in ticks.
func (r *Repeater) Delay() uint8 {
	return r.delay
}

// Count returns the current delay-line progress.
func (r *Repeater) Count() uint8 {
	return r.count
}

// Update stages the repeater's reaction to its inputs.
//
// A powered side channel locks the repeater: input is ignored and the delay
// line freezes until a side predecessor changes and re-schedules the node.
// A rising rear edge restarts the delay line; a falling edge is honored only
// when no transition is in progress, which stretches input pulses shorter
// than the delay.
func (r *Repeater) Update(in Inputs) bool {
	r.locked = in.Side > 0
	if r.locked {
		return false
	}

	if on := in.Rear > 0; on != r.nextPowered {
		if on {
			r.nextPowered = true
			r.count = 0
		} else if r.count == 0 {
			r.nextPowered = false
		}
		// Falling edge mid-count: defer until the pending commit lands.
	}

	return r.powered != r.nextPowered
}

// LateUpdate advances the delay line one tick and commits once it expires.
// A commit both re-schedules the repeater (Hold) to resolve any deferred
// falling edge and flags its successors (Changed).
func (r *Repeater) LateUpdate(uint64) Commit {
	r.count++
	if r.count < r.delay {
		return Commit{Hold: true}
	}
	r.powered = r.nextPowered
	r.count = 0

	return Commit{Changed: true, Hold: true}
}

// CRepeater is the construction form of a repeater. Facing points from the
// component toward its rear input block, so power flows in direction
// Facing.Reverse().
type CRepeater struct {
	Facing  facing.Facing
	Delay   uint8
	Powered bool
	Locked  bool
}

func (c *CRepeater) Build() Block {
	return NewRepeater(c.Powered, c.Delay)
}

// CanOutput: a repeater sources power only out of its front face.
func (c *CRepeater) CanOutput(f facing.Facing) bool {
	return f == c.Facing.Reverse()
}

// CanInput: rear input from the block behind, side input from the two
// horizontal perpendiculars (repeater locking).
func (c *CRepeater) CanInput(f facing.Facing) (Kind, bool) {
	if f == c.Facing.Reverse() {
		return Rear, true
	}
	if f.Horizontal() && (c.Facing == f.RotateLeft() || c.Facing == f.RotateRight()) {
		return Side, true
	}

	return Rear, false
}
