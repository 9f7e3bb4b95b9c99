package blocks

import "github.com/JonathanBrouwer/redstone-simulator/facing"

// CProbe is a named observation point (a diamond block in the palette). It
// accepts power from every direction and sources none; the world reports a
// probe as active when any incoming source delivers nonzero power.
type CProbe struct{}

func (CProbe) Build() Block {
	return NewRedstone(0)
}

func (CProbe) CanOutput(facing.Facing) bool {
	return false
}

func (CProbe) CanInput(facing.Facing) (Kind, bool) {
	return Rear, true
}
