// Package schematic defines the decoded-voxel contract between a schematic
// decoder and the simulator core. A decoder — the binary NBT reader, a test
// fixture, or the YAML reader below — yields one Record per occupied voxel;
// the world builder consumes the records and never touches files itself.
package schematic

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrDecode is returned when a record stream cannot be parsed.
var ErrDecode = errors.New("schematic: cannot decode records")

// Record is one occupied voxel: its position, namespaced block ID,
// blockstate metadata, tile-entity properties, and the optional name
// decoration (from an attached sign) that registers probes and triggers.
type Record struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
	Z int `yaml:"z"`

	// ID is the namespaced block ID, e.g. "minecraft:redstone_wire".
	ID string `yaml:"id"`

	// Meta holds blockstate key=value pairs, e.g. facing: north, delay: "2".
	Meta map[string]string `yaml:"meta,omitempty"`

	// Props holds tile-entity properties; comparators require OutputSignal.
	Props map[string]int `yaml:"props,omitempty"`

	// Name labels a probe or trigger block.
	Name string `yaml:"name,omitempty"`
}

// Load reads a YAML list of records.
func Load(r io.Reader) ([]Record, error) {
	var recs []Record
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&recs); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	return recs, nil
}

// LoadFile reads a YAML record file from disk.
func LoadFile(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	defer f.Close()

	return Load(f)
}
