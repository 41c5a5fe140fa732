// Package generator grows a Nether fortress's piece graph from a chosen
// start chunk: a weight-biased, collision-tested, breadth-randomized state
// machine over the bridge and castle piece catalogues.
package generator

import (
	"github.com/mwinters-dev/netherquad/pkg/geom"
	"github.com/mwinters-dev/netherquad/pkg/piece"
)

// Placed is one structure piece in a generator run's output, in creation
// order.
type Placed struct {
	Kind  piece.Kind
	Box   geom.Box
	Dir   geom.Direction
	Depth int32

	// Index is this piece's position in the run's output slice.
	// ParentIndex is the Index of the piece whose spawn call produced it,
	// or -1 for the start piece. Together they record the spawn tree a
	// quad or connectivity analysis can walk without re-deriving adjacency
	// from geometry alone.
	Index       int32
	ParentIndex int32
}

// Center returns the piece's bounding-box midpoint, floored per axis.
func (p *Placed) Center() (x, y, z int32) {
	return p.Box.Center()
}
