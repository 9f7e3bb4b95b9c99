package blocks

import "github.com/JonathanBrouwer/redstone-simulator/facing"

// CTrigger is a named input point (gold block or lightning rod in the
// palette). It sources power in every direction while pulsed and accepts
// none. Trigger nodes are wire at runtime, forced to 15 and back by the
// world's pulse helper.
type CTrigger struct{}

func (CTrigger) Build() Block {
	return NewRedstone(0)
}

func (CTrigger) CanOutput(facing.Facing) bool {
	return true
}

func (CTrigger) CanInput(facing.Facing) (Kind, bool) {
	return Rear, false
}
