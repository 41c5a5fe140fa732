package generator

import (
	"github.com/mwinters-dev/netherquad/pkg/geom"
	"github.com/mwinters-dev/netherquad/pkg/piece"
	"github.com/mwinters-dev/netherquad/pkg/rng"
)

// Fixed numeric constants governing depth, floor clearance, and spread.
const (
	maxDepth         = 30
	lowestY          = 10
	startY           = 64
	anchorRadius     = 112
	attemptsPerSpawn = 5
)

// Generator grows one fortress's piece graph from a single chunk. A
// Generator owns its own RNG stream, piece list, pending work queue, and
// weight tables; none of that state is shared across runs or across
// goroutines.
type Generator struct {
	worldSeed int64
	random    *rng.Source

	pieces  []*Placed
	pending []*Placed

	bridgeWeights []piece.Weight
	castleWeights []piece.Weight

	hasLastPlaced  bool
	lastPlacedKind piece.Kind

	anchor *geom.Box
}

// Generate runs the full algorithm for chunk (chunkX, chunkZ) and returns
// every placed piece in creation order. Each call builds a fresh Generator,
// so no state carries over from one call to the next.
func Generate(worldSeed int64, chunkX, chunkZ int32) []*Placed {
	g := &Generator{
		worldSeed:     worldSeed,
		random:        rng.New(),
		bridgeWeights: piece.BridgeWeights(),
		castleWeights: piece.CastleWeights(),
	}
	return g.run(chunkX, chunkZ)
}

func (g *Generator) run(chunkX, chunkZ int32) []*Placed {
	g.random.SetLargeFeatureSeed(g.worldSeed, chunkX, chunkZ)

	startX := chunkX*16 + 2
	startZ := chunkZ*16 + 2
	startDir := geom.Direction(g.random.NextIntBound(4))

	startBox := geom.MakeStart(startX, startY, startZ, startDir, 19, 10, 19)
	start := &Placed{Kind: piece.StartPiece, Box: startBox, Dir: startDir, Depth: 0, Index: 0, ParentIndex: -1}

	g.pieces = append(g.pieces, start)
	anchor := startBox
	g.anchor = &anchor

	g.spawnCrossingChildren(start)

	for len(g.pending) > 0 {
		idx := int(g.random.NextIntBound(int32(len(g.pending))))
		next := g.pending[idx]
		// Order-preserving removal: the host's work queue is an
		// ArrayList whose remove(index) shifts later elements down,
		// and the next draw's meaning depends on that exact ordering.
		g.pending = append(g.pending[:idx], g.pending[idx+1:]...)
		g.spawnChildren(next)
	}

	return g.pieces
}

// spawnChildren dispatches each piece kind to the child pieces it requests.
func (g *Generator) spawnChildren(p *Placed) {
	switch p.Kind {
	case piece.StartPiece, piece.BridgeCrossing:
		g.spawnCrossingChildren(p)
	case piece.BridgeStraight:
		g.forward(p, 1, 3, false)
	case piece.RoomCrossing:
		g.forward(p, 2, 0, false)
		g.left(p, 0, 2, false)
		g.right(p, 0, 2, false)
	case piece.StairsRoom:
		g.right(p, 6, 2, false)
	case piece.CastleEntrance:
		g.forward(p, 5, 3, true)
	case piece.CastleSmallCorridor:
		g.forward(p, 1, 0, true)
	case piece.CastleSmallCorridorCrossing:
		g.forward(p, 1, 0, true)
		g.left(p, 0, 1, true)
		g.right(p, 0, 1, true)
	case piece.CastleSmallCorridorRightTurn:
		g.right(p, 0, 1, true)
	case piece.CastleSmallCorridorLeftTurn:
		g.left(p, 0, 1, true)
	case piece.CastleCorridorStairs:
		g.forward(p, 1, 0, true)
	case piece.CastleCorridorTBalcony:
		i := int32(1)
		if p.Dir == geom.West || p.Dir == geom.North {
			i = 5
		}
		// Each draw happens inline as the call's argument, exactly as the
		// host evaluates it: the right-hand draw comes after the left
		// call's own weighted-placement draws, not before either call.
		g.left(p, 0, i, g.random.NextIntBound(8) > 0)
		g.right(p, 0, i, g.random.NextIntBound(8) > 0)
	case piece.CastleStalkRoom:
		g.forward(p, 5, 3, true)
		g.forward(p, 5, 11, true)
	case piece.MonsterThrone, piece.BridgeEndFiller:
		// No children.
	}
}

func (g *Generator) spawnCrossingChildren(p *Placed) {
	g.forward(p, 8, 3, false)
	g.left(p, 3, 8, false)
	g.right(p, 3, 8, false)
}

// forward, left, right compute a child piece's origin and facing relative
// to its parent's box and direction.
func (g *Generator) forward(p *Placed, i, j int32, isCastle bool) {
	b := p.Box
	var x, y, z int32
	dir := p.Dir
	switch dir {
	case geom.North:
		x, y, z = b.MinX+i, b.MinY+j, b.MinZ-1
	case geom.South:
		x, y, z = b.MinX+i, b.MinY+j, b.MaxZ+1
	case geom.West:
		x, y, z = b.MinX-1, b.MinY+j, b.MinZ+i
	default: // East
		x, y, z = b.MaxX+1, b.MinY+j, b.MinZ+i
	}
	g.spawnAndAdd(x, y, z, dir, p, isCastle)
}

func (g *Generator) left(p *Placed, i, j int32, isCastle bool) {
	b := p.Box
	var x, y, z int32
	var dir geom.Direction
	switch p.Dir {
	case geom.North, geom.South:
		x, y, z = b.MinX-1, b.MinY+i, b.MinZ+j
		dir = geom.West
	default: // West, East
		x, y, z = b.MinX+j, b.MinY+i, b.MinZ-1
		dir = geom.North
	}
	g.spawnAndAdd(x, y, z, dir, p, isCastle)
}

func (g *Generator) right(p *Placed, i, j int32, isCastle bool) {
	b := p.Box
	var x, y, z int32
	var dir geom.Direction
	switch p.Dir {
	case geom.North, geom.South:
		x, y, z = b.MaxX+1, b.MinY+i, b.MinZ+j
		dir = geom.East
	default: // West, East
		x, y, z = b.MinX+j, b.MinY+i, b.MaxZ+1
		dir = geom.South
	}
	g.spawnAndAdd(x, y, z, dir, p, isCastle)
}

// spawnAndAdd applies the anchor-bound cutoff and, if it passes, runs
// weighted piece creation and enqueues the result.
func (g *Generator) spawnAndAdd(x, y, z int32, dir geom.Direction, parent *Placed, isCastle bool) {
	if g.anchor != nil {
		if abs32(x-g.anchor.MinX) > anchorRadius || abs32(z-g.anchor.MinZ) > anchorRadius {
			return
		}
	}

	weights := &g.bridgeWeights
	if isCastle {
		weights = &g.castleWeights
	}

	p := g.generatePiece(weights, x, y, z, dir, parent.Depth+1)
	if p == nil {
		return
	}
	p.Index = int32(len(g.pieces))
	p.ParentIndex = parent.Index
	g.pieces = append(g.pieces, p)
	// End fillers go on the pending list too. They spawn no children when
	// popped, but the pop itself consumes a nextInt(len) draw, so leaving
	// them out would shift every draw after the first filler.
	g.pending = append(g.pending, p)
}

// generatePiece draws a weighted entry from the catalogue, retrying up to
// attemptsPerSpawn times when the draw collides, breaks a row rule, or has
// exhausted its placement cap, before falling back to an end filler.
func (g *Generator) generatePiece(weights *[]piece.Weight, x, y, z int32, dir geom.Direction, depth int32) *Placed {
	total, hasValid := weightTotal(*weights)
	totalSignal := total
	if total < 1 || !hasValid {
		totalSignal = -1
	}
	canPlace := totalSignal > 0 && depth <= maxDepth

	for attempt := 0; attempt < attemptsPerSpawn && canPlace; attempt++ {
		target := g.random.NextIntBound(totalSignal)

		for i := range *weights {
			pw := &(*weights)[i]
			target -= pw.Amount
			if target >= 0 {
				continue
			}

			if !pw.CanPlace() {
				break // try another attempt
			}
			if g.hasLastPlaced && g.lastPlacedKind == pw.Kind && !pw.AllowInRow {
				break // try another attempt
			}

			box := geom.Orient(x, y, z, piece.PlacementOffset(pw.Kind).X, piece.PlacementOffset(pw.Kind).Y, piece.PlacementOffset(pw.Kind).Z,
				piece.Dimensions(pw.Kind).W, piece.Dimensions(pw.Kind).H, piece.Dimensions(pw.Kind).D, dir)

			if !g.boxOK(box) {
				break // try another attempt
			}

			pw.PlaceCount++
			g.lastPlacedKind = pw.Kind
			g.hasLastPlaced = true
			// Build the result before any removal: pw points into the slice,
			// and removing entry i shifts the next entry into that slot.
			placed := &Placed{Kind: pw.Kind, Box: box, Dir: dir, Depth: depth}
			if pw.MaxPlaceCount > 0 && pw.PlaceCount >= pw.MaxPlaceCount {
				*weights = append((*weights)[:i], (*weights)[i+1:]...)
			}
			return placed
		}
	}

	return g.createEndFiller(x, y, z, dir, depth)
}

func (g *Generator) createEndFiller(x, y, z int32, dir geom.Direction, depth int32) *Placed {
	dims := piece.Dimensions(piece.BridgeEndFiller)
	off := piece.PlacementOffset(piece.BridgeEndFiller)
	box := geom.Orient(x, y, z, off.X, off.Y, off.Z, dims.W, dims.H, dims.D, dir)
	if !g.boxOK(box) {
		return nil
	}
	return &Placed{Kind: piece.BridgeEndFiller, Box: box, Dir: dir, Depth: depth}
}

// boxOK reports whether box clears the lowest-Y floor and collides with no
// previously placed piece.
func (g *Generator) boxOK(box geom.Box) bool {
	if box.MinY <= lowestY {
		return false
	}
	for _, p := range g.pieces {
		if p.Box.Intersects(box) {
			return false
		}
	}
	return true
}

// weightTotal sums a catalogue's weights and reports whether any
// max-capped entry still has room; entries with no cap never count toward
// hasValid.
func weightTotal(weights []piece.Weight) (total int32, hasValid bool) {
	for _, w := range weights {
		if w.MaxPlaceCount > 0 && w.PlaceCount < w.MaxPlaceCount {
			hasValid = true
		}
		total += w.Amount
	}
	return total, hasValid
}

func abs32(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}
