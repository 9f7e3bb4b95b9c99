package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JonathanBrouwer/redstone-simulator/blocks"
)

func rear(loss uint8) blocks.Weight {
	return blocks.Weight{Kind: blocks.Rear, Loss: loss}
}

func TestAddAndQuery(t *testing.T) {
	g := New()
	a := g.AddNode(blocks.NewRedstone(15))
	b := g.AddNode(blocks.NewRedstone(0))
	c := g.AddNode(blocks.NewTorch(true))

	e1 := g.AddEdge(a, b, rear(1))
	e2 := g.AddEdge(b, c, rear(0))

	assert.Equal(t, 3, g.NodeCount())
	assert.Equal(t, 2, g.EdgeCount())
	assert.Equal(t, []NodeID{a, b, c}, g.Nodes())
	assert.Equal(t, []EdgeID{e1, e2}, g.Edges())

	assert.Equal(t, Edge{From: a, To: b, Weight: rear(1)}, g.Edge(e1))
	assert.Equal(t, []EdgeID{e1}, g.Out(a))
	assert.Equal(t, []EdgeID{e1}, g.In(b))
	assert.Equal(t, 1, g.OutDegree(b))
	assert.Equal(t, 1, g.InDegree(c))
	assert.EqualValues(t, 15, g.Block(a).OutputPower())
}

func TestParallelEdgesAndSuccessors(t *testing.T) {
	g := New()
	a := g.AddNode(blocks.NewRedstone(0))
	b := g.AddNode(blocks.NewRepeater(false, 1))

	g.AddEdge(a, b, rear(0))
	g.AddEdge(a, b, rear(3))
	g.AddEdge(a, b, blocks.Weight{Kind: blocks.Side})

	assert.Equal(t, 3, g.OutDegree(a))
	// Successors deduplicates parallel edges.
	assert.Equal(t, []NodeID{b}, g.Successors(a))
}

func TestRemoveNodeDropsIncidentEdges(t *testing.T) {
	g := New()
	a := g.AddNode(blocks.NewRedstone(0))
	b := g.AddNode(blocks.NewRedstone(0))
	c := g.AddNode(blocks.NewRedstone(0))
	g.AddEdge(a, b, rear(1))
	g.AddEdge(b, c, rear(1))
	keep := g.AddEdge(a, c, rear(2))

	g.RemoveNode(b)

	assert.False(t, g.Has(b))
	assert.Equal(t, 2, g.NodeCount())
	assert.Equal(t, []EdgeID{keep}, g.Edges())
	assert.Equal(t, []EdgeID{keep}, g.Out(a))
	assert.Equal(t, []EdgeID{keep}, g.In(c))
}

func TestIndicesStableAcrossRemoval(t *testing.T) {
	g := New()
	a := g.AddNode(blocks.NewRedstone(0))
	b := g.AddNode(blocks.NewRedstone(0))
	c := g.AddNode(blocks.NewTorch(false))
	g.RemoveNode(b)

	// Surviving indices keep addressing the same slots...
	require.True(t, g.Has(a))
	require.True(t, g.Has(c))
	assert.IsType(t, &blocks.Torch{}, g.Block(c))
	assert.Equal(t, []NodeID{a, c}, g.Nodes())

	// ...and new slots never reuse a removed index.
	d := g.AddNode(blocks.NewRedstone(0))
	assert.NotEqual(t, b, d)
	assert.Equal(t, []NodeID{a, c, d}, g.Nodes())
}

func TestSetBlock(t *testing.T) {
	g := New()
	a := g.AddNode(blocks.NewRepeater(true, 1))
	b := g.AddNode(blocks.NewRedstone(0))
	e := g.AddEdge(a, b, rear(0))

	g.SetBlock(a, blocks.NewSRepeater(true))

	assert.IsType(t, &blocks.SRepeater{}, g.Block(a))
	assert.Equal(t, []EdgeID{e}, g.Out(a))
}

func TestFilters(t *testing.T) {
	g := New()
	a := g.AddNode(blocks.NewRedstone(0))
	b := g.AddNode(blocks.NewRedstone(0))
	g.AddEdge(a, b, rear(2))
	long := g.AddEdge(a, b, rear(15))

	g.FilterEdges(func(_ EdgeID, e Edge) bool { return e.Weight.Loss < 15 })
	assert.Equal(t, 1, g.EdgeCount())
	assert.False(t, contains(g.Edges(), long))

	g.FilterNodes(func(id NodeID, _ blocks.Block) bool { return id == a })
	assert.Equal(t, []NodeID{a}, g.Nodes())
	assert.Equal(t, 0, g.EdgeCount())
}

func TestDeadAccessPanics(t *testing.T) {
	g := New()
	a := g.AddNode(blocks.NewRedstone(0))
	g.RemoveNode(a)

	assert.Panics(t, func() { g.Block(a) })
	assert.Panics(t, func() { g.AddEdge(a, a, rear(0)) })
	assert.Panics(t, func() { g.Edge(EdgeID(99)) })
}

func contains(ids []EdgeID, id EdgeID) bool {
	for _, e := range ids {
		if e == id {
			return true
		}
	}

	return false
}
