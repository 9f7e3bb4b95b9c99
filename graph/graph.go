// Package graph provides the directed multigraph the simulator compiles
// circuits into: runtime blocks at the nodes, typed rear/side weights on the
// edges.
//
// Storage is a pair of slot vectors with tombstones, so node and edge
// indices stay stable across the deletions and merges performed by pruning —
// probe and trigger tables keep their NodeID references for the world's
// whole lifetime. Iteration orders (Nodes, Edges, adjacency) are ascending
// by index, which equals insertion order; all mutation is deterministic.
//
// The graph is owned by a single-threaded world. Passing an index that was
// never issued, or one whose slot has been removed, is a programmer error
// and panics.
package graph

import (
	"fmt"

	"github.com/JonathanBrouwer/redstone-simulator/blocks"
)

// NodeID indexes a node slot. IDs are never reused.
type NodeID uint32

// EdgeID indexes an edge slot. IDs are never reused; ascending EdgeID order
// is insertion order, which duplicate-edge pruning relies on for its
// keep-first tie break.
type EdgeID uint32

// Edge is the read-only view of one edge.
type Edge struct {
	From, To NodeID
	Weight   blocks.Weight
}

type nodeSlot struct {
	block blocks.Block
	in    []EdgeID
	out   []EdgeID
	alive bool
}

type edgeSlot struct {
	Edge
	alive bool
}

// Graph is a mutable directed multigraph with stable indices.
type Graph struct {
	nodes     []nodeSlot
	edges     []edgeSlot
	liveNodes int
	liveEdges int
}

// New returns an empty graph.
func New() *Graph {
	return &Graph{}
}

func (g *Graph) node(id NodeID) *nodeSlot {
	if int(id) >= len(g.nodes) || !g.nodes[id].alive {
		panic(fmt.Sprintf("graph: node %d not in graph", id))
	}

	return &g.nodes[id]
}

func (g *Graph) edge(id EdgeID) *edgeSlot {
	if int(id) >= len(g.edges) || !g.edges[id].alive {
		panic(fmt.Sprintf("graph: edge %d not in graph", id))
	}

	return &g.edges[id]
}

// AddNode inserts a runtime block and returns its stable index.
func (g *Graph) AddNode(b blocks.Block) NodeID {
	id := NodeID(len(g.nodes))
	g.nodes = append(g.nodes, nodeSlot{block: b, alive: true})
	g.liveNodes++

	return id
}

// Has reports whether id refers to a live node.
func (g *Graph) Has(id NodeID) bool {
	return int(id) < len(g.nodes) && g.nodes[id].alive
}

// Block returns the runtime block stored at id.
func (g *Graph) Block(id NodeID) blocks.Block {
	return g.node(id).block
}

// SetBlock replaces the runtime block stored at id, keeping all edges.
// Pruning uses this to lower delay-1 repeaters to their compact form.
func (g *Graph) SetBlock(id NodeID, b blocks.Block) {
	g.node(id).block = b
}

// AddEdge inserts a directed edge and returns its stable index.
// Parallel edges and self-loops are permitted.
func (g *Graph) AddEdge(from, to NodeID, w blocks.Weight) EdgeID {
	f, t := g.node(from), g.node(to)
	id := EdgeID(len(g.edges))
	g.edges = append(g.edges, edgeSlot{Edge: Edge{From: from, To: to, Weight: w}, alive: true})
	f.out = append(f.out, id)
	t.in = append(t.in, id)
	g.liveEdges++

	return id
}

// Edge returns the read-only view of a live edge.
func (g *Graph) Edge(id EdgeID) Edge {
	return g.edge(id).Edge
}

// RemoveEdge deletes one edge.
func (g *Graph) RemoveEdge(id EdgeID) {
	e := g.edge(id)
	e.alive = false
	g.liveEdges--
	dropEdgeRef(&g.nodes[e.From].out, id)
	dropEdgeRef(&g.nodes[e.To].in, id)
}

// RemoveNode deletes a node together with every incident edge.
func (g *Graph) RemoveNode(id NodeID) {
	n := g.node(id)
	for _, eid := range append([]EdgeID(nil), n.out...) {
		g.RemoveEdge(eid)
	}
	for _, eid := range append([]EdgeID(nil), n.in...) {
		g.RemoveEdge(eid)
	}
	n.alive = false
	n.block = nil
	g.liveNodes--
}

func dropEdgeRef(refs *[]EdgeID, id EdgeID) {
	for i, e := range *refs {
		if e == id {
			*refs = append((*refs)[:i], (*refs)[i+1:]...)

			return
		}
	}
}

// NodeCount returns the number of live nodes.
func (g *Graph) NodeCount() int {
	return g.liveNodes
}

// EdgeCount returns the number of live edges.
func (g *Graph) EdgeCount() int {
	return g.liveEdges
}

// Nodes returns all live node indices in ascending order.
func (g *Graph) Nodes() []NodeID {
	out := make([]NodeID, 0, g.liveNodes)
	for i := range g.nodes {
		if g.nodes[i].alive {
			out = append(out, NodeID(i))
		}
	}

	return out
}

// Edges returns all live edge indices in ascending (insertion) order.
func (g *Graph) Edges() []EdgeID {
	out := make([]EdgeID, 0, g.liveEdges)
	for i := range g.edges {
		if g.edges[i].alive {
			out = append(out, EdgeID(i))
		}
	}

	return out
}

// Out returns the outgoing edge indices of id in insertion order.
// The slice is a copy; callers may mutate the graph while ranging it.
func (g *Graph) Out(id NodeID) []EdgeID {
	return append([]EdgeID(nil), g.node(id).out...)
}

// In returns the incoming edge indices of id in insertion order.
// The slice is a copy; callers may mutate the graph while ranging it.
func (g *Graph) In(id NodeID) []EdgeID {
	return append([]EdgeID(nil), g.node(id).in...)
}

// OutDegree returns the number of outgoing edges of id.
func (g *Graph) OutDegree(id NodeID) int {
	return len(g.node(id).out)
}

// InDegree returns the number of incoming edges of id.
func (g *Graph) InDegree(id NodeID) int {
	return len(g.node(id).in)
}

// Successors returns the distinct targets of id's outgoing edges, in first-
// encounter order.
func (g *Graph) Successors(id NodeID) []NodeID {
	n := g.node(id)
	out := make([]NodeID, 0, len(n.out))
	seen := make(map[NodeID]struct{}, len(n.out))
	for _, eid := range n.out {
		to := g.edges[eid].To
		if _, ok := seen[to]; ok {
			continue
		}
		seen[to] = struct{}{}
		out = append(out, to)
	}

	return out
}

// FilterEdges removes every edge failing keep. keep must not mutate the graph.
func (g *Graph) FilterEdges(keep func(EdgeID, Edge) bool) {
	for i := range g.edges {
		if g.edges[i].alive && !keep(EdgeID(i), g.edges[i].Edge) {
			g.RemoveEdge(EdgeID(i))
		}
	}
}

// FilterNodes removes every node failing keep, along with its incident
// edges. keep must not mutate the graph.
func (g *Graph) FilterNodes(keep func(NodeID, blocks.Block) bool) {
	for i := range g.nodes {
		if g.nodes[i].alive && !keep(NodeID(i), g.nodes[i].block) {
			g.RemoveNode(NodeID(i))
		}
	}
}
