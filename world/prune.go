package world

import (
	"github.com/JonathanBrouwer/redstone-simulator/blocks"
	"github.com/JonathanBrouwer/redstone-simulator/graph"
)

// prune runs the fixed optimization pipeline over the freshly built graph:
// contract wire chains into direct weighted edges, keep the best edge per
// channel, drop edges too lossy to ever carry signal, merge behaviorally
// identical siblings, lower qualifying repeaters to their compact form, and
// finally delete unreachable nodes.
func (w *World) prune() {
	w.pruneRedstone()
	w.pruneDuplicateEdges()
	w.pruneTooLongEdges()
	w.pruneGroups()
	w.pruneDuplicateEdges()
	w.lowerSRepeaters()
	w.pruneDeadNodes()
}

// isWire reports whether a node holds plain wire (solids, probes and
// triggers included — they all lower to Redstone).
func isWire(b blocks.Block) bool {
	_, ok := b.(*blocks.Redstone)

	return ok
}

// visitKey tracks the frontier's visited set per channel, so a rear-reaching
// and a side-reaching walk through the same wire stay independent.
type visitKey struct {
	id   graph.NodeID
	side bool
}

type walkEnd struct {
	id graph.NodeID
	w  blocks.Weight
}

// pruneRedstone contracts every wire chain: from each non-wire (or trigger
// wire) node, walk breadth-first through wire successors accumulating edge
// weights, record each exit from the wire region, then connect the origin
// directly to every exit. Probe wires record an exit and keep propagating.
// Afterwards every wire node that is neither probe nor trigger is deleted.
func (w *World) pruneRedstone() {
	for _, origin := range w.g.Nodes() {
		if isWire(w.g.Block(origin)) && !w.isTrigger(origin) {
			continue
		}

		frontier := []walkEnd{{id: origin, w: blocks.Weight{Kind: blocks.Rear}}}
		visited := make(map[visitKey]struct{})
		var ends []walkEnd

		for len(frontier) > 0 {
			var next []walkEnd
			for _, cur := range frontier {
				for _, eid := range w.g.Out(cur.id) {
					e := w.g.Edge(eid)
					key := visitKey{id: e.To, side: e.Weight.IsSide()}
					if _, seen := visited[key]; seen {
						continue
					}
					visited[key] = struct{}{}

					acc := cur.w.Add(e.Weight)
					if w.isProbe(e.To) {
						ends = append(ends, walkEnd{id: e.To, w: acc})
					}
					if !isWire(w.g.Block(e.To)) {
						ends = append(ends, walkEnd{id: e.To, w: acc})

						continue
					}
					next = append(next, walkEnd{id: e.To, w: acc})
				}
			}
			frontier = next
		}

		for _, end := range ends {
			w.g.AddEdge(origin, end.id, end.w)
		}
	}

	w.g.FilterNodes(func(id graph.NodeID, b blocks.Block) bool {
		return !isWire(b) || w.isProbe(id) || w.isTrigger(id)
	})
}

// pruneDuplicateEdges keeps exactly one edge per (src, dst, channel) triple:
// the one with the least loss, ties resolved in favor of the earliest
// insertion.
func (w *World) pruneDuplicateEdges() {
	type key struct {
		from, to graph.NodeID
		side     bool
	}

	best := make(map[key]graph.EdgeID)
	var remove []graph.EdgeID
	for _, eid := range w.g.Edges() {
		e := w.g.Edge(eid)
		k := key{from: e.From, to: e.To, side: e.Weight.IsSide()}
		held, ok := best[k]
		if !ok {
			best[k] = eid

			continue
		}
		if e.Weight.Less(w.g.Edge(held).Weight) {
			remove = append(remove, held)
			best[k] = eid
		} else {
			remove = append(remove, eid)
		}
	}

	for _, eid := range remove {
		w.g.RemoveEdge(eid)
	}
}

// pruneTooLongEdges drops every edge whose loss reaches the maximum signal:
// wire attenuates at most 15 levels, so such an edge can never carry power.
func (w *World) pruneTooLongEdges() {
	w.g.FilterEdges(func(_ graph.EdgeID, e graph.Edge) bool {
		return e.Weight.Loss < blocks.MaxPower
	})
}

// pruneGroups merges behaviorally identical siblings. Among each repeater or
// torch's successors, the ones that are themselves repeaters (keyed by
// delay) or torches and have no other parent collapse into a single node
// carrying the union of their outgoing edges. Merged nodes re-enter the work
// list so chains of identical stages collapse transitively.
func (w *World) pruneGroups() {
	var todo []graph.NodeID
	for _, idx := range w.g.Nodes() {
		switch w.g.Block(idx).(type) {
		case *blocks.Repeater, *blocks.Torch:
			todo = append(todo, idx)
		}
	}

	for len(todo) > 0 {
		idx := todo[len(todo)-1]
		todo = todo[:len(todo)-1]
		if !w.g.Has(idx) {
			continue
		}

		repeaters := make(map[uint8][]graph.NodeID)
		var torches []graph.NodeID
		for _, n := range w.g.Successors(idx) {
			// Only single-parent successors group: a second incoming edge
			// means another component observes this node's timing.
			if w.g.InDegree(n) > 1 {
				continue
			}
			switch b := w.g.Block(n).(type) {
			case *blocks.Repeater:
				repeaters[b.Delay()] = append(repeaters[b.Delay()], n)
			case *blocks.Torch:
				torches = append(torches, n)
			}
		}

		if len(torches) > 1 {
			todo = append(todo, w.mergeNodes(torches))
		}
		for delay := uint8(1); delay <= 4; delay++ {
			if group := repeaters[delay]; len(group) > 1 {
				todo = append(todo, w.mergeNodes(group))
			}
		}
	}
}

// mergeNodes folds every node after the first into the first: outgoing edges
// are copied over, then the merged node (and its incoming edge) is removed.
func (w *World) mergeNodes(nodes []graph.NodeID) graph.NodeID {
	first := nodes[0]
	for _, other := range nodes[1:] {
		for _, eid := range w.g.Out(other) {
			e := w.g.Edge(eid)
			w.g.AddEdge(first, e.To, e.Weight)
		}
		w.g.RemoveNode(other)
	}

	return first
}

// lowerSRepeaters rewrites every delay-1 repeater with no side input to the
// compact single-tick form.
func (w *World) lowerSRepeaters() {
	for _, idx := range w.g.Nodes() {
		r, ok := w.g.Block(idx).(*blocks.Repeater)
		if !ok || r.Delay() != 1 {
			continue
		}
		if w.hasSideInput(idx) {
			continue
		}
		w.g.SetBlock(idx, blocks.NewSRepeater(r.OutputPower() > 0))
	}
}

func (w *World) hasSideInput(idx graph.NodeID) bool {
	for _, eid := range w.g.In(idx) {
		if w.g.Edge(eid).Weight.IsSide() {
			return true
		}
	}

	return false
}

// pruneDeadNodes repeatedly deletes nodes with no incoming or no outgoing
// edges, unless they are probes, triggers, or self-powered kinds (constant
// sources, torches, comparators), until a pass removes nothing.
func (w *World) pruneDeadNodes() {
	for {
		removed := false
		for _, idx := range w.g.Nodes() {
			if w.g.InDegree(idx) > 0 && w.g.OutDegree(idx) > 0 {
				continue
			}
			if w.isProbe(idx) || w.isTrigger(idx) {
				continue
			}
			switch w.g.Block(idx).(type) {
			case blocks.RedstoneBlock, *blocks.Torch, *blocks.Comparator:
				continue
			}
			w.g.RemoveNode(idx)
			removed = true
		}
		if !removed {
			break
		}
	}
}
