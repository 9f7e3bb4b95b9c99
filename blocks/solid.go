package blocks

import "github.com/JonathanBrouwer/redstone-simulator/facing"

// An opaque voxel splits into two construction blocks at the same position:
// a weak face that receives ordinary powering (wire resting on or against
// the block) and a strong face that receives strong powering (repeater or
// comparator output, a torch underneath). Only the strong face re-emits into
// wire; both faces feed repeaters, torches and comparators. At runtime both
// lower to zero-loss wire nodes, so redstone contraction walks straight
// through them and removes them.

// CSolidWeak is the weakly-powered face of an opaque voxel.
type CSolidWeak struct{}

func (CSolidWeak) Build() Block {
	return NewRedstone(0)
}

func (CSolidWeak) CanOutput(facing.Facing) bool {
	return true
}

func (CSolidWeak) CanInput(facing.Facing) (Kind, bool) {
	return Rear, true
}

// CSolidStrong is the strongly-powered face of an opaque voxel.
type CSolidStrong struct{}

func (CSolidStrong) Build() Block {
	return NewRedstone(0)
}

func (CSolidStrong) CanOutput(facing.Facing) bool {
	return true
}

func (CSolidStrong) CanInput(facing.Facing) (Kind, bool) {
	return Rear, true
}
