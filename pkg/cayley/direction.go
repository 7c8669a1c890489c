package cayley

import (
	"fmt"

	"github.com/matzehuels/grigorchuk/pkg/algebra"
)

// Degree is the number of neighbors of every node.
const Degree = 3

// Direction selects one of the three generators of the subgroup.
type Direction int

const (
	DirAC Direction = iota // right-multiply by a·c
	DirCA                  // right-multiply by c·a
	DirB                   // right-multiply by b
)

// Directions lists the directions in slot order.
var Directions = [Degree]Direction{DirAC, DirCA, DirB}

// Valid reports whether d is one of the three directions.
func (d Direction) Valid() bool { return d >= DirAC && d <= DirB }

// Back returns the direction leading back from the neighbor in direction d.
func (d Direction) Back() Direction {
	if d == DirB {
		return DirB
	}
	return 1 - d
}

// Label returns the trail label recorded for elements reached via d.
func (d Direction) Label() algebra.Label {
	switch d {
	case DirAC:
		return algebra.LabelAC
	case DirCA:
		return algebra.LabelCA
	case DirB:
		return algebra.LabelB
	}
	return algebra.LabelNone
}

// Generator returns the handle of d's generator in e.
func (d Direction) Generator(e *algebra.Engine) algebra.Elem {
	switch d {
	case DirAC:
		return e.AC()
	case DirCA:
		return e.CA()
	}
	return algebra.B
}

func (d Direction) String() string {
	if !d.Valid() {
		return fmt.Sprintf("Direction(%d)", int(d))
	}
	return d.Label().String()
}
