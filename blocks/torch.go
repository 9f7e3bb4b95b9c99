package blocks

import (
	"math"

	"github.com/JonathanBrouwer/redstone-simulator/facing"
)

// Torch inverts the signal of the block it is attached to, one tick late.
// lastUpdate guards the commit against re-entry within a single tick.
type Torch struct {
	lit        bool
	nextLit    bool
	lastUpdate uint64
}

// NewTorch returns a torch in the given committed state.
func NewTorch(lit bool) *Torch {
	return &Torch{lit: lit, nextLit: lit, lastUpdate: math.MaxUint64}
}

func (t *Torch) OutputPower() uint8 {
	if t.lit {
		return MaxPower
	}

	return 0
}

// Update stages the inversion: the torch goes out while its input is powered.
func (t *Torch) Update(in Inputs) bool {
	t.nextLit = in.Rear == 0

	return t.lit != t.nextLit
}

// LateUpdate commits the staged state at most once per tick.
func (t *Torch) LateUpdate(tick uint64) Commit {
	if t.lastUpdate == tick {
		return Commit{}
	}
	t.lastUpdate = tick
	t.lit = t.nextLit

	return Commit{Changed: true}
}

// CTorch is the construction form of a torch. Facing is the direction the
// torch points: Up for floor torches, the wall direction for wall torches.
// The attached block sits at Facing.Reverse().
type CTorch struct {
	Facing facing.Facing
	Lit    bool
}

func (c *CTorch) Build() Block {
	return NewTorch(c.Lit)
}

// CanOutput: a torch powers every direction except back into its attachment.
func (c *CTorch) CanOutput(f facing.Facing) bool {
	return f != c.Facing.Reverse()
}

// CanInput: only the attached block feeds the torch.
func (c *CTorch) CanInput(f facing.Facing) (Kind, bool) {
	return Rear, f == c.Facing
}
