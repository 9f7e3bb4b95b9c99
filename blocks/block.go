package blocks

// Inputs carries the per-channel maxima a node observes at the start of a
// tick: the strongest rear-channel and side-channel signals delivered by its
// incoming edges, each already reduced by the edge's loss. The scheduler
// computes Inputs from committed predecessor state only.
type Inputs struct {
	Rear uint8
	Side uint8
}

// Commit reports the outcome of an end-of-tick commit.
type Commit struct {
	// Changed indicates the node's output power may have changed, so its
	// successors must be scheduled for the next tick.
	Changed bool
	// Hold indicates the node itself must be scheduled again next tick
	// (a repeater still counting toward its delay, or one that just
	// committed and may have a deferred input edge to resolve).
	Hold bool
}

// Block is a runtime component stored at a graph node. OutputPower is a pure
// function of the block's own stored state, never of its incoming edges.
type Block interface {
	OutputPower() uint8
}

// Updater is implemented by the runtime kinds with observable tick delay
// (repeaters, torches, comparators). Update reads the current inputs and
// stages the next state, reporting whether an end-of-tick commit is needed;
// LateUpdate commits the staged state. Torch and Comparator commits are
// idempotent within a tick through a guard on the tick number; an SRepeater
// commit is a plain assignment. A Repeater commit advances its delay counter
// on every call, so it is not idempotent; the scheduler commits each pending
// node once per tick.
type Updater interface {
	Block
	Update(in Inputs) bool
	LateUpdate(tick uint64) Commit
}
