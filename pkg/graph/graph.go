package graph

import (
	"fmt"
	"math"
	"sort"

	"github.com/mwinters-dev/netherquad/pkg/generator"
)

// Graph is one generator run's output indexed for traversal by piece
// Index, with ParentIndex as the only edge the generator ever records.
type Graph struct {
	Seed   int64
	Pieces map[int32]*generator.Placed
	root   int32 // Index of the piece with ParentIndex < 0
}

// BuildFromPieces indexes a generator run's output by piece Index and
// validates the spawn-tree invariants pkg/generator guarantees: exactly
// one root, and every other piece's parent placed (and indexed) strictly
// before it. A violation here means pieces came from somewhere other than
// a single generator.Generate call.
func BuildFromPieces(seed int64, pieces []*generator.Placed) (*Graph, error) {
	g := &Graph{Seed: seed, Pieces: make(map[int32]*generator.Placed, len(pieces)), root: -1}

	for _, p := range pieces {
		if _, exists := g.Pieces[p.Index]; exists {
			return nil, fmt.Errorf("graph: duplicate piece index %d", p.Index)
		}
		g.Pieces[p.Index] = p
	}

	for _, p := range pieces {
		if p.ParentIndex < 0 {
			if g.root >= 0 {
				return nil, fmt.Errorf("graph: piece %d is a second root (first root %d)", p.Index, g.root)
			}
			g.root = p.Index
			continue
		}
		if p.ParentIndex >= p.Index {
			return nil, fmt.Errorf("graph: piece %d's parent %d was not placed before it", p.Index, p.ParentIndex)
		}
		if _, ok := g.Pieces[p.ParentIndex]; !ok {
			return nil, fmt.Errorf("graph: piece %d references missing parent %d", p.Index, p.ParentIndex)
		}
	}

	if len(pieces) > 0 && g.root < 0 {
		return nil, fmt.Errorf("graph: no root piece (every piece has a ParentIndex >= 0)")
	}
	return g, nil
}

// Children returns every piece whose ParentIndex is index, in ascending
// Index order (i.e. the order the generator actually spawned them).
func (g *Graph) Children(index int32) []*generator.Placed {
	var out []*generator.Placed
	for _, p := range g.Pieces {
		if p.ParentIndex == index {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Index < out[j].Index })
	return out
}

// Ancestors returns index's parent, grandparent, and so on up to the root,
// nearest first. Returns nil if index is the root or isn't in the graph.
func (g *Graph) Ancestors(index int32) []*generator.Placed {
	p, ok := g.Pieces[index]
	if !ok {
		return nil
	}
	var out []*generator.Placed
	for p.ParentIndex >= 0 {
		parent, ok := g.Pieces[p.ParentIndex]
		if !ok {
			break
		}
		out = append(out, parent)
		p = parent
	}
	return out
}

// Path returns the sequence of piece indices connecting from to to,
// walking up from each to their lowest common ancestor (the root, in the
// worst case) and back down.
func (g *Graph) Path(from, to int32) ([]int32, error) {
	if _, ok := g.Pieces[from]; !ok {
		return nil, fmt.Errorf("graph: no piece with index %d", from)
	}
	if _, ok := g.Pieces[to]; !ok {
		return nil, fmt.Errorf("graph: no piece with index %d", to)
	}
	if from == to {
		return []int32{from}, nil
	}

	fromChain := chainToRoot(g, from)
	toChain := chainToRoot(g, to)

	toPos := make(map[int32]int, len(toChain))
	for i, idx := range toChain {
		toPos[idx] = i
	}

	for i, idx := range fromChain {
		j, ok := toPos[idx]
		if !ok {
			continue
		}
		path := append([]int32{}, fromChain[:i+1]...)
		for k := j - 1; k >= 0; k-- {
			path = append(path, toChain[k])
		}
		return path, nil
	}
	return nil, fmt.Errorf("graph: no path from %d to %d", from, to)
}

// chainToRoot returns [index, parent(index), grandparent(index), ..., root].
func chainToRoot(g *Graph, index int32) []int32 {
	chain := []int32{index}
	p := g.Pieces[index]
	for p.ParentIndex >= 0 {
		chain = append(chain, p.ParentIndex)
		p = g.Pieces[p.ParentIndex]
	}
	return chain
}

// Reachable returns every piece index reachable from index by following
// Children, index included.
func (g *Graph) Reachable(index int32) map[int32]bool {
	reachable := make(map[int32]bool)
	if _, ok := g.Pieces[index]; !ok {
		return reachable
	}
	var visit func(int32)
	visit = func(idx int32) {
		if reachable[idx] {
			return
		}
		reachable[idx] = true
		for _, c := range g.Children(idx) {
			visit(c.Index)
		}
	}
	visit(index)
	return reachable
}

// IsConnected reports whether every piece is reachable from the root by
// following spawn (parent-to-child) edges, i.e. the graph is the single
// tree a generator run is supposed to produce.
func (g *Graph) IsConnected() bool {
	if len(g.Pieces) == 0 {
		return true
	}
	return len(g.Reachable(g.root)) == len(g.Pieces)
}

// Distance returns the straight-line distance between two pieces' box
// centers.
func Distance(a, b *generator.Placed) float64 {
	ax, ay, az := a.Center()
	bx, by, bz := b.Center()
	dx := float64(bx - ax)
	dy := float64(by - ay)
	dz := float64(bz - az)
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}
