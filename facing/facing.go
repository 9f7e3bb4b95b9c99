// Package facing models the six axis directions of a voxel grid: the four
// horizontals North, East, South, West plus Up and Down.
//
// It provides reversal, quarter-turn rotation of the horizontals, and the
// unit-offset moves Front and Back used to address neighboring voxels.
// Rotating Up or Down is a programmer error and panics.
package facing

import (
	"errors"
	"fmt"
)

// ErrBadFacing is returned when a metadata string does not name a facing.
var ErrBadFacing = errors.New("facing: not a facing")

// Facing is one of the six axis directions.
type Facing uint8

const (
	North Facing = iota
	East
	South
	West
	Up
	Down
)

// Directions lists all six facings in declaration order.
// Iterate this instead of hand-rolled loops so neighbor scans stay deterministic.
var Directions = [6]Facing{North, East, South, West, Up, Down}

// Horizontals lists the four rotatable facings in clockwise order.
var Horizontals = [4]Facing{North, East, South, West}

// Parse converts a blockstate metadata value ("north", "east", "south",
// "west", "up", "down") into a Facing. Returns ErrBadFacing otherwise.
func Parse(s string) (Facing, error) {
	switch s {
	case "north":
		return North, nil
	case "east":
		return East, nil
	case "south":
		return South, nil
	case "west":
		return West, nil
	case "up":
		return Up, nil
	case "down":
		return Down, nil
	default:
		return North, fmt.Errorf("%w: %q", ErrBadFacing, s)
	}
}

// String returns the metadata spelling of f.
func (f Facing) String() string {
	switch f {
	case North:
		return "north"
	case East:
		return "east"
	case South:
		return "south"
	case West:
		return "west"
	case Up:
		return "up"
	case Down:
		return "down"
	default:
		return fmt.Sprintf("facing(%d)", uint8(f))
	}
}

// Horizontal reports whether f is one of the four rotatable directions.
func (f Facing) Horizontal() bool {
	return f <= West
}

// Reverse returns the opposite direction.
func (f Facing) Reverse() Facing {
	switch f {
	case North:
		return South
	case East:
		return West
	case South:
		return North
	case West:
		return East
	case Up:
		return Down
	default:
		return Up
	}
}

// RotateRight returns the next horizontal direction clockwise (N→E→S→W→N).
// Panics on Up or Down.
func (f Facing) RotateRight() Facing {
	if !f.Horizontal() {
		panic("facing: cannot rotate " + f.String())
	}

	return Horizontals[(int(f)+1)%4]
}

// RotateLeft returns the next horizontal direction counter-clockwise.
// Panics on Up or Down.
func (f Facing) RotateLeft() Facing {
	if !f.Horizontal() {
		panic("facing: cannot rotate " + f.String())
	}

	return Horizontals[(int(f)+3)%4]
}

// Pos addresses a voxel. Y grows upward, Z grows southward.
type Pos struct {
	X, Y, Z int
}

// offsets maps each Facing to its unit move, indexed by the Facing constants.
var offsets = [6][3]int{
	{0, 0, -1}, // North
	{1, 0, 0},  // East
	{0, 0, 1},  // South
	{-1, 0, 0}, // West
	{0, 1, 0},  // Up
	{0, -1, 0}, // Down
}

// Front returns the neighbor one unit in direction f from p.
// Out-of-world results are simply absent from the caller's voxel index;
// no bounds are enforced here.
func (f Facing) Front(p Pos) Pos {
	d := offsets[f]

	return Pos{X: p.X + d[0], Y: p.Y + d[1], Z: p.Z + d[2]}
}

// Back returns the neighbor one unit opposite to f from p.
func (f Facing) Back(p Pos) Pos {
	return f.Reverse().Front(p)
}
