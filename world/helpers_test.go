package world

import (
	"github.com/JonathanBrouwer/redstone-simulator/schematic"
)

// rec builds one voxel record; kv lists metadata as alternating key, value.
func rec(x, y, z int, id string, kv ...string) schematic.Record {
	r := schematic.Record{X: x, Y: y, Z: z, ID: id}
	if len(kv) > 0 {
		r.Meta = make(map[string]string, len(kv)/2)
		for i := 0; i+1 < len(kv); i += 2 {
			r.Meta[kv[i]] = kv[i+1]
		}
	}

	return r
}

func named(r schematic.Record, name string) schematic.Record {
	r.Name = name

	return r
}

func withProp(r schematic.Record, key string, v int) schematic.Record {
	if r.Props == nil {
		r.Props = make(map[string]int, 1)
	}
	r.Props[key] = v

	return r
}

// wireAt builds a fully connected wire voxel holding the given saved power.
func wireAt(x, y, z int, power string) schematic.Record {
	return rec(x, y, z, "minecraft:redstone_wire",
		"power", power, "north", "side", "east", "side", "south", "side", "west", "side")
}

// probeAt builds a named probe voxel.
func probeAt(x, y, z int, name string) schematic.Record {
	return named(rec(x, y, z, "minecraft:diamond_block"), name)
}

// triggerAt builds a named trigger voxel.
func triggerAt(x, y, z int, name string) schematic.Record {
	return named(rec(x, y, z, "minecraft:gold_block"), name)
}

// mustProbe reads a probe in tests where the name is known to exist.
func mustProbe(w *World, name string) bool {
	v, err := w.GetProbe(name)
	if err != nil {
		panic(err)
	}

	return v
}

// reversed copies a record stream in reverse order.
func reversed(recs []schematic.Record) []schematic.Record {
	out := make([]schematic.Record, len(recs))
	for i, r := range recs {
		out[len(recs)-1-i] = r
	}

	return out
}
