package blocks

import (
	"fmt"
	"math"

	"github.com/JonathanBrouwer/redstone-simulator/facing"
)

// Mode selects the comparator's arithmetic.
type Mode uint8

const (
	// Compare passes the rear signal through unless the side signal exceeds it.
	Compare Mode = iota
	// Subtract emits rear minus side, saturating at zero.
	Subtract
)

// ParseMode converts the blockstate "mode" value.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "compare":
		return Compare, nil
	case "subtract":
		return Subtract, nil
	default:
		return Compare, fmt.Errorf("%w: mode=%q", ErrBadMetadata, s)
	}
}

// Comparator combines its rear and side channels under Compare or Subtract
// arithmetic. entityPower is the constant contribution of a measurable tile
// entity behind the comparator (a furnace reads as 1); it is folded into
// the rear maximum on every update. lastUpdate guards the commit against
// re-entry within a single tick.
type Comparator struct {
	signal      uint8
	nextSignal  uint8
	mode        Mode
	entityPower uint8
	lastUpdate  uint64
}

// NewComparator returns a comparator holding the given committed signal.
func NewComparator(signal uint8, mode Mode, entityPower uint8) *Comparator {
	return &Comparator{
		signal:      signal,
		nextSignal:  signal,
		mode:        mode,
		entityPower: entityPower,
		lastUpdate:  math.MaxUint64,
	}
}

func (c *Comparator) OutputPower() uint8 {
	return c.signal
}

// Update stages the comparator arithmetic for the current inputs.
func (c *Comparator) Update(in Inputs) bool {
	rear := in.Rear
	if c.entityPower > rear {
		rear = c.entityPower
	}

	switch {
	case c.mode == Subtract:
		if in.Side >= rear {
			c.nextSignal = 0
		} else {
			c.nextSignal = rear - in.Side
		}
	case in.Side <= rear:
		c.nextSignal = rear
	default:
		c.nextSignal = 0
	}

	return c.signal != c.nextSignal
}

// LateUpdate commits the staged signal at most once per tick.
func (c *Comparator) LateUpdate(tick uint64) Commit {
	if c.lastUpdate == tick {
		return Commit{}
	}
	c.lastUpdate = tick
	c.signal = c.nextSignal

	return Commit{Changed: true}
}

// CComparator is the construction form of a comparator. Facing points from
// the component toward its rear input block; the builder fills Signal from
// the OutputSignal tile-entity byte and EntityPower from the block behind.
type CComparator struct {
	Facing      facing.Facing
	Mode        Mode
	Signal      uint8
	EntityPower uint8
}

func (c *CComparator) Build() Block {
	return NewComparator(c.Signal, c.Mode, c.EntityPower)
}

// CanOutput: a comparator sources power only out of its front face.
func (c *CComparator) CanOutput(f facing.Facing) bool {
	return f == c.Facing.Reverse()
}

// CanInput: rear input from behind, side input from both horizontal
// perpendiculars.
func (c *CComparator) CanInput(f facing.Facing) (Kind, bool) {
	if f == c.Facing.Reverse() {
		return Rear, true
	}
	if f.Horizontal() && (c.Facing == f.RotateLeft() || c.Facing == f.RotateRight()) {
		return Side, true
	}

	return Rear, false
}
