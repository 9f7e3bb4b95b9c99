package blocks

import "github.com/JonathanBrouwer/redstone-simulator/facing"

// Redstone is the runtime wire: a plain signal level with no delayed state.
// Wires are single-phase — the scheduler drives them inline during
// propagation instead of through the Updater contract. Solid faces, probes
// and triggers also lower to Redstone nodes; after pruning only probe and
// trigger wires remain in the graph.
type Redstone struct {
	signal uint8
}

// NewRedstone returns a wire holding the given signal level.
func NewRedstone(signal uint8) *Redstone {
	return &Redstone{signal: signal}
}

func (r *Redstone) OutputPower() uint8 {
	return r.signal
}

// Drive sets the wire's signal and reports whether it changed. The scheduler
// calls this with the node's rear maximum during propagation; the trigger
// pulse helper calls it directly to force 15 and back to 0.
func (r *Redstone) Drive(signal uint8) bool {
	if r.signal == signal {
		return false
	}
	r.signal = signal

	return true
}

// CRedstone is the construction form of a wire voxel. Connects holds the
// visual connection mask for the four horizontal directions, parsed from the
// north/east/south/west blockstate values ("side" and "up" connect, "none"
// does not).
type CRedstone struct {
	Signal   uint8
	Connects [4]bool // indexed by facing.North..facing.West
}

func (c *CRedstone) Build() Block {
	return NewRedstone(c.Signal)
}

// CanOutput: wire sources power along its connected horizontals and weakly
// into its supporting block below.
func (c *CRedstone) CanOutput(f facing.Facing) bool {
	if f == facing.Down {
		return true
	}

	return f.Horizontal() && c.Connects[f]
}

// CanInput: wire accepts power along its connected horizontals and from a
// source directly beneath it (signal traveling Up). Signal traveling f
// arrives through the wire's face at f.Reverse().
func (c *CRedstone) CanInput(f facing.Facing) (Kind, bool) {
	if f == facing.Up {
		return Rear, true
	}

	return Rear, f.Horizontal() && c.Connects[f.Reverse()]
}
