package world

import (
	"fmt"

	"github.com/JonathanBrouwer/redstone-simulator/blocks"
	"github.com/JonathanBrouwer/redstone-simulator/facing"
	"github.com/JonathanBrouwer/redstone-simulator/graph"
	"github.com/JonathanBrouwer/redstone-simulator/schematic"
)

// voxel pairs a record with the construction blocks and node indices it
// produced. Opaque voxels hold two entries (weak face, then strong face);
// transparent voxels never enter the index.
type voxel struct {
	rec schematic.Record
	cbs []blocks.CBlock
	ids []graph.NodeID
}

// build lowers the record stream into the typed graph: one pass classifying
// every voxel, one pass consulting tile entities, one pass registering nodes
// and probe/trigger names, and one pass attempting an edge for every ordered
// (construction block, direction) pair against the neighbor in front.
func (w *World) build(records []schematic.Record) error {
	tiles := make(map[facing.Pos]*voxel, len(records))
	order := make([]facing.Pos, 0, len(records))

	for _, rec := range records {
		cbs, err := blocks.FromID(rec.ID, rec.Meta)
		if err != nil {
			return fmt.Errorf("block at (%d,%d,%d): %w", rec.X, rec.Y, rec.Z, err)
		}
		if len(cbs) == 0 {
			continue
		}
		p := facing.Pos{X: rec.X, Y: rec.Y, Z: rec.Z}
		tiles[p] = &voxel{rec: rec, cbs: cbs}
		order = append(order, p)
	}

	// Tile-entity pass: comparators read their saved signal and the
	// measurable block behind them before nodes are created.
	for _, p := range order {
		if err := w.applyTileEntities(p, tiles); err != nil {
			return err
		}
	}

	// Node pass, in record order so indices are deterministic.
	for _, p := range order {
		v := tiles[p]
		for _, cb := range v.cbs {
			idx := w.g.AddNode(cb.Build())
			v.ids = append(v.ids, idx)
			if err := w.register(cb, idx, v.rec); err != nil {
				return err
			}
		}
	}

	// Edge pass.
	for _, p := range order {
		v := tiles[p]
		for _, f := range facing.Directions {
			n, ok := tiles[f.Front(p)]
			if !ok {
				continue
			}
			for si, src := range v.cbs {
				for di, dst := range n.cbs {
					if wt, ok := blocks.ConnectionWeight(src, dst, f); ok {
						w.g.AddEdge(v.ids[si], n.ids[di], wt)
					}
				}
			}
		}
	}

	return nil
}

// applyTileEntities fills a comparator's saved signal from its OutputSignal
// property and its entity power from the block behind it (furnace reads 1).
func (w *World) applyTileEntities(p facing.Pos, tiles map[facing.Pos]*voxel) error {
	v := tiles[p]
	for _, cb := range v.cbs {
		cmp, ok := cb.(*blocks.CComparator)
		if !ok {
			continue
		}
		signal, ok := v.rec.Props["OutputSignal"]
		if !ok {
			return fmt.Errorf("%w: comparator at (%d,%d,%d) has no OutputSignal",
				ErrMissingProperty, p.X, p.Y, p.Z)
		}
		if signal < 0 || int(blocks.MaxPower) < signal {
			return fmt.Errorf("%w: OutputSignal=%d at (%d,%d,%d)",
				blocks.ErrBadMetadata, signal, p.X, p.Y, p.Z)
		}
		cmp.Signal = uint8(signal)

		if rear, ok := tiles[cmp.Facing.Front(p)]; ok && rear.rec.ID == "minecraft:furnace" {
			cmp.EntityPower = 1
		}
	}

	return nil
}

// register records probe and trigger names. Unnamed probes and triggers fall
// back to their position so every observation point stays addressable.
func (w *World) register(cb blocks.CBlock, idx graph.NodeID, rec schematic.Record) error {
	name := rec.Name
	if name == "" {
		name = fmt.Sprintf("%d,%d,%d", rec.X, rec.Y, rec.Z)
	}

	switch cb.(type) {
	case blocks.CProbe:
		if _, dup := w.probes[name]; dup {
			return fmt.Errorf("%w: probe %q", ErrDuplicateName, name)
		}
		w.probes[name] = idx
		w.probeNames[idx] = name
	case blocks.CTrigger:
		if _, dup := w.triggers[name]; dup {
			return fmt.Errorf("%w: trigger %q", ErrDuplicateName, name)
		}
		w.triggers[name] = idx
		w.triggerNames[idx] = name
	}

	return nil
}
