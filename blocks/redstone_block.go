package blocks

import "github.com/JonathanBrouwer/redstone-simulator/facing"

// RedstoneBlock is a constant source: always 15, never updated. It survives
// dead-node pruning so downstream components keep their base power.
type RedstoneBlock struct{}

func (RedstoneBlock) OutputPower() uint8 {
	return MaxPower
}

// CRedstoneBlock is the construction form of the constant source.
type CRedstoneBlock struct{}

func (CRedstoneBlock) Build() Block {
	return RedstoneBlock{}
}

// CanOutput: a constant source powers every direction.
func (CRedstoneBlock) CanOutput(facing.Facing) bool {
	return true
}

// CanInput: constant sources accept nothing.
func (CRedstoneBlock) CanInput(facing.Facing) (Kind, bool) {
	return Rear, false
}
