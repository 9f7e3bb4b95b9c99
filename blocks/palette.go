package blocks

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed palette.yaml
var rawPalette []byte

// palette is the embedded solid/transparent classification. It is parsed
// once at package load; a malformed palette is a build defect, not a
// runtime condition, so loading panics.
var palette = mustLoadPalette()

type blockPalette struct {
	Solid       []string `yaml:"solid"`
	Transparent []string `yaml:"transparent"`

	solid       map[string]struct{}
	transparent map[string]struct{}
}

func mustLoadPalette() *blockPalette {
	p := &blockPalette{}
	if err := yaml.Unmarshal(rawPalette, p); err != nil {
		panic(fmt.Sprintf("blocks: embedded palette: %v", err))
	}
	p.solid = make(map[string]struct{}, len(p.Solid))
	for _, id := range p.Solid {
		p.solid[id] = struct{}{}
	}
	p.transparent = make(map[string]struct{}, len(p.Transparent))
	for _, id := range p.Transparent {
		p.transparent[id] = struct{}{}
	}

	return p
}

// Solid reports whether id names an opaque building block.
func Solid(id string) bool {
	_, ok := palette.solid[id]

	return ok
}

// Transparent reports whether id names a block invisible to redstone.
func Transparent(id string) bool {
	_, ok := palette.transparent[id]

	return ok
}
