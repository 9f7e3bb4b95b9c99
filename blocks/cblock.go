package blocks

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/JonathanBrouwer/redstone-simulator/facing"
)

// Construction errors. All are fatal: graph construction aborts and no
// partial world is returned.
var (
	// ErrUnknownBlock indicates a block ID outside the palette.
	ErrUnknownBlock = errors.New("blocks: unknown block id")
	// ErrBadMetadata indicates a malformed or out-of-range blockstate value.
	ErrBadMetadata = errors.New("blocks: bad metadata")
)

// CBlock is a construction block: the connection-rule view of a voxel used
// only while building the graph. CanOutput asks whether the block sources
// power in the given outgoing direction; CanInput asks whether it accepts
// power arriving along the given direction of travel, and through which
// channel. Build lowers the block to its runtime form.
type CBlock interface {
	Build() Block
	CanOutput(f facing.Facing) bool
	CanInput(f facing.Facing) (Kind, bool)
}

// CanConnect is the global compatibility table filtering candidate edges
// after the per-block queries pass. f is the direction of travel from source
// to target.
func CanConnect(src, dst CBlock, f facing.Facing) bool {
	switch src.(type) {
	case *CRedstone:
		switch d := dst.(type) {
		case *CRedstone, CSolidWeak, CProbe, *CComparator:
			return true
		case *CRepeater:
			return f == d.Facing.Reverse()
		}
	case CTrigger:
		switch d := dst.(type) {
		case *CRedstone, *CTorch:
			return true
		case *CRepeater:
			return f == d.Facing.Reverse()
		case *CComparator:
			return f == d.Facing.Reverse()
		}
	case CSolidStrong:
		switch d := dst.(type) {
		case *CRedstone, *CTorch:
			return true
		case *CRepeater:
			return f == d.Facing.Reverse()
		case *CComparator:
			return f == d.Facing.Reverse()
		}
	case CSolidWeak:
		switch d := dst.(type) {
		case *CTorch:
			return true
		case *CRepeater:
			return f == d.Facing.Reverse()
		case *CComparator:
			return f == d.Facing.Reverse()
		}
	case *CRepeater:
		switch dst.(type) {
		case *CRedstone, CSolidStrong, CProbe, *CRepeater, *CComparator:
			return true
		}
	case CRedstoneBlock:
		switch d := dst.(type) {
		case *CRedstone, *CTorch, *CComparator:
			return true
		case *CRepeater:
			return f == d.Facing.Reverse()
		}
	case *CTorch:
		switch d := dst.(type) {
		case *CRedstone:
			return true
		case CSolidStrong, CProbe:
			return f == facing.Up
		case *CRepeater:
			return f == d.Facing.Reverse()
		case *CComparator:
			return f == d.Facing.Reverse()
		}
	case *CComparator:
		switch dst.(type) {
		case *CRedstone, CSolidStrong, CProbe, *CRepeater, *CComparator:
			return true
		}
	}

	return false
}

// ConnectionWeight runs the full guard chain for an edge from src to dst
// along direction of travel f and, when the connection is legal, returns its
// weight: Side(0) for side-channel input, Rear(1) for wire-to-wire decay,
// Rear(0) otherwise.
func ConnectionWeight(src, dst CBlock, f facing.Facing) (Weight, bool) {
	if !src.CanOutput(f) {
		return Weight{}, false
	}
	kind, ok := dst.CanInput(f)
	if !ok {
		return Weight{}, false
	}
	if !CanConnect(src, dst, f) {
		return Weight{}, false
	}

	if kind == Side {
		return Weight{Kind: Side}, true
	}
	if _, srcWire := src.(*CRedstone); srcWire {
		if _, dstWire := dst.(*CRedstone); dstWire {
			return Weight{Kind: Rear, Loss: 1}, true
		}
	}

	return Weight{Kind: Rear}, true
}

// FromID lowers one palette entry into its construction blocks: none for
// transparent voxels, two (weak + strong face) for opaque voxels, one for
// every component kind. Unknown IDs are a fatal construction error.
func FromID(id string, meta map[string]string) ([]CBlock, error) {
	switch id {
	case "minecraft:redstone_wire":
		return fromWire(meta)
	case "minecraft:gold_block", "minecraft:lightning_rod":
		return []CBlock{CTrigger{}}, nil
	case "minecraft:diamond_block":
		return []CBlock{CProbe{}}, nil
	case "minecraft:redstone_block":
		return []CBlock{CRedstoneBlock{}}, nil
	case "minecraft:redstone_torch":
		lit, err := metaBool(meta, "lit", true)
		if err != nil {
			return nil, err
		}

		return []CBlock{&CTorch{Facing: facing.Up, Lit: lit}}, nil
	case "minecraft:redstone_wall_torch":
		return fromWallTorch(meta)
	case "minecraft:repeater":
		return fromRepeater(meta)
	case "minecraft:comparator":
		return fromComparator(meta)
	}

	if Solid(id) {
		return []CBlock{CSolidWeak{}, CSolidStrong{}}, nil
	}
	if Transparent(id) {
		return nil, nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownBlock, id)
}

func fromWire(meta map[string]string) ([]CBlock, error) {
	c := &CRedstone{}
	if raw, ok := meta["power"]; ok {
		p, err := strconv.Atoi(raw)
		if err != nil || p < 0 || int(MaxPower) < p {
			return nil, fmt.Errorf("%w: power=%q", ErrBadMetadata, raw)
		}
		c.Signal = uint8(p)
	}
	for _, h := range facing.Horizontals {
		switch v := meta[h.String()]; v {
		case "", "none":
		case "side", "up":
			c.Connects[h] = true
		default:
			return nil, fmt.Errorf("%w: %s=%q", ErrBadMetadata, h, v)
		}
	}

	return []CBlock{c}, nil
}

func fromWallTorch(meta map[string]string) ([]CBlock, error) {
	f, err := horizontalFacing(meta)
	if err != nil {
		return nil, err
	}
	lit, err := metaBool(meta, "lit", true)
	if err != nil {
		return nil, err
	}

	return []CBlock{&CTorch{Facing: f, Lit: lit}}, nil
}

func fromRepeater(meta map[string]string) ([]CBlock, error) {
	f, err := horizontalFacing(meta)
	if err != nil {
		return nil, err
	}
	c := &CRepeater{Facing: f, Delay: 1}
	if raw, ok := meta["delay"]; ok {
		d, err := strconv.Atoi(raw)
		if err != nil || d < 1 || 4 < d {
			return nil, fmt.Errorf("%w: delay=%q", ErrBadMetadata, raw)
		}
		c.Delay = uint8(d)
	}
	if c.Powered, err = metaBool(meta, "powered", false); err != nil {
		return nil, err
	}
	if c.Locked, err = metaBool(meta, "locked", false); err != nil {
		return nil, err
	}

	return []CBlock{c}, nil
}

func fromComparator(meta map[string]string) ([]CBlock, error) {
	f, err := horizontalFacing(meta)
	if err != nil {
		return nil, err
	}
	mode := Compare
	if raw, ok := meta["mode"]; ok {
		if mode, err = ParseMode(raw); err != nil {
			return nil, err
		}
	}

	// Signal and EntityPower are filled by the builder from tile entities.
	return []CBlock{&CComparator{Facing: f, Mode: mode}}, nil
}

// horizontalFacing parses the required "facing" value of a directional
// component, rejecting Up and Down.
func horizontalFacing(meta map[string]string) (facing.Facing, error) {
	raw, ok := meta["facing"]
	if !ok {
		return facing.North, fmt.Errorf("%w: missing facing", ErrBadMetadata)
	}
	f, err := facing.Parse(raw)
	if err != nil {
		return facing.North, fmt.Errorf("%w: facing=%q", ErrBadMetadata, raw)
	}
	if !f.Horizontal() {
		return facing.North, fmt.Errorf("%w: facing=%q is not horizontal", ErrBadMetadata, raw)
	}

	return f, nil
}

func metaBool(meta map[string]string, key string, def bool) (bool, error) {
	switch v := meta[key]; v {
	case "":
		return def, nil
	case "true":
		return true, nil
	case "false":
		return false, nil
	default:
		return def, fmt.Errorf("%w: %s=%q", ErrBadMetadata, key, v)
	}
}
