package world

import (
	"github.com/JonathanBrouwer/redstone-simulator/blocks"
	"github.com/JonathanBrouwer/redstone-simulator/graph"
)

// inputs gathers the per-channel maxima a node observes right now: for each
// incoming edge, the source's committed output power reduced by the edge
// loss, folded into the rear or side maximum.
func (w *World) inputs(idx graph.NodeID) blocks.Inputs {
	var in blocks.Inputs
	for _, eid := range w.g.In(idx) {
		e := w.g.Edge(eid)
		p := w.g.Block(e.From).OutputPower()
		if p <= e.Weight.Loss {
			continue
		}
		p -= e.Weight.Loss
		if e.Weight.IsSide() {
			if p > in.Side {
				in.Side = p
			}
		} else if p > in.Rear {
			in.Rear = p
		}
	}

	return in
}

// Step advances the world one tick with the two-phase loop.
//
// Propagation drains a work list seeded by the previous tick: wires commit
// immediately and cascade their successors onto the same list, so a wire
// chain settles within the tick; delayed kinds stage their next state and
// join the pending set. The commit phase then applies every staged state
// once, scheduling successors (and held nodes) for the next tick.
func (w *World) Step() {
	tickList := w.updatable
	w.updatable = nil

	var pending []graph.NodeID
	inPending := make(map[graph.NodeID]struct{})

	for len(tickList) > 0 {
		idx := tickList[len(tickList)-1]
		tickList = tickList[:len(tickList)-1]

		// Trigger wires are forced from outside the graph; recomputing
		// them from their (absent) inputs would cancel a pulse mid-tick.
		if w.isTrigger(idx) {
			continue
		}

		switch b := w.g.Block(idx).(type) {
		case *blocks.Redstone:
			if b.Drive(w.inputs(idx).Rear) {
				tickList = append(tickList, w.g.Successors(idx)...)
			}
		case blocks.Updater:
			if b.Update(w.inputs(idx)) {
				if _, ok := inPending[idx]; !ok {
					inPending[idx] = struct{}{}
					pending = append(pending, idx)
				}
			}
		default:
			// Constant sources have no state to advance.
		}
	}

	w.tick++
	for _, idx := range pending {
		c := w.g.Block(idx).(blocks.Updater).LateUpdate(w.tick)
		if c.Changed {
			w.updatable = append(w.updatable, w.g.Successors(idx)...)
		}
		if c.Hold {
			w.updatable = append(w.updatable, idx)
		}
	}

	w.log.Debug().
		Uint64("tick", w.tick).
		Int("committed", len(pending)).
		Int("queued", len(w.updatable)).
		Msg("step")
}

// StepWithTrigger pulses every trigger for exactly one tick: force the
// trigger wires to full power, run a step, then release them. The falling
// edge is queued and propagates on the following Step.
func (w *World) StepWithTrigger() {
	w.driveTriggers(blocks.MaxPower)
	w.Step()
	w.driveTriggers(0)
}

func (w *World) driveTriggers(power uint8) {
	for _, idx := range w.triggerIndices() {
		w.g.Block(idx).(*blocks.Redstone).Drive(power)
		w.updatable = append(w.updatable, w.g.Successors(idx)...)
	}
}
