// Package quad detects 2x2 clusters of fortress crossing pieces and groups
// crossings into connected components, the two analyses a fortress search
// runs over a generator's output.
package quad

import (
	"github.com/mwinters-dev/netherquad/pkg/generator"
	"github.com/mwinters-dev/netherquad/pkg/geom"
)

// Cluster is four crossing pieces arranged in a tight 2x2 grid: a
// top-left corner, its directly adjacent right and down neighbors, and
// the neighbor diagonally adjacent to both.
type Cluster struct {
	Crossings [4]*generator.Placed
	Center    [3]int32
	Box       geom.Box
}

// FindClusters reports every 2x2 crossing cluster among crossings. Each
// crossing participates in at most the clusters that pick it as their
// corner; a crossing belonging to more than one 2x2 arrangement produces
// more than one Cluster, matching the host's corner-scan behavior.
func FindClusters(crossings []*generator.Placed) []Cluster {
	var out []Cluster
	if len(crossings) < 4 {
		return out
	}

	for _, corner := range crossings {
		c, ok := findClusterFromCorner(corner, crossings)
		if !ok {
			continue
		}
		if !containsSameCrossings(out, c) {
			out = append(out, c)
		}
	}
	return out
}

func findClusterFromCorner(corner *generator.Placed, all []*generator.Placed) (Cluster, bool) {
	cx, _, cz := corner.Center()

	var right, down, diagonal *generator.Placed

	for _, other := range all {
		if other == corner {
			continue
		}
		ox, _, oz := other.Center()
		dx := ox - cx
		dz := oz - cz

		if dx > 0 && adjacentX(corner.Box, other.Box) {
			if right == nil {
				right = other
			} else {
				rx, _, _ := right.Center()
				if dx < rx-cx {
					right = other
				}
			}
		}
		if dz > 0 && adjacentZ(corner.Box, other.Box) {
			if down == nil {
				down = other
			} else {
				_, _, dz2 := down.Center()
				if dz < dz2-cz {
					down = other
				}
			}
		}
	}

	if right == nil || down == nil {
		return Cluster{}, false
	}

	for _, other := range all {
		if other == corner || other == right || other == down {
			continue
		}
		if adjacentZ(right.Box, other.Box) && adjacentX(down.Box, other.Box) {
			diagonal = other
			break
		}
	}
	if diagonal == nil {
		return Cluster{}, false
	}

	members := [4]*generator.Placed{corner, right, down, diagonal}
	box := members[0].Box
	for _, m := range members[1:] {
		box = union(box, m.Box)
	}
	centerX, centerY, centerZ := box.Center()

	return Cluster{Crossings: members, Center: [3]int32{centerX, centerY, centerZ}, Box: box}, true
}

// adjacentX reports whether box1 and box2 are perfectly aligned on Y and
// Z and touch with no gap along X.
func adjacentX(box1, box2 geom.Box) bool {
	if box1.MinZ != box2.MinZ || box1.MaxZ != box2.MaxZ {
		return false
	}
	if box1.MinY != box2.MinY || box1.MaxY != box2.MaxY {
		return false
	}
	return box2.MinX == box1.MaxX+1 || box1.MinX == box2.MaxX+1
}

// adjacentZ reports whether box1 and box2 are perfectly aligned on X and
// Y and touch with no gap along Z.
func adjacentZ(box1, box2 geom.Box) bool {
	if box1.MinX != box2.MinX || box1.MaxX != box2.MaxX {
		return false
	}
	if box1.MinY != box2.MinY || box1.MaxY != box2.MaxY {
		return false
	}
	return box2.MinZ == box1.MaxZ+1 || box1.MinZ == box2.MaxZ+1
}

func union(a, b geom.Box) geom.Box {
	return geom.Box{
		MinX: min32(a.MinX, b.MinX), MinY: min32(a.MinY, b.MinY), MinZ: min32(a.MinZ, b.MinZ),
		MaxX: max32(a.MaxX, b.MaxX), MaxY: max32(a.MaxY, b.MaxY), MaxZ: max32(a.MaxZ, b.MaxZ),
	}
}

func containsSameCrossings(existing []Cluster, c Cluster) bool {
	for _, e := range existing {
		if sameMembers(e.Crossings, c.Crossings) {
			return true
		}
	}
	return false
}

func sameMembers(a, b [4]*generator.Placed) bool {
	for _, x := range a {
		found := false
		for _, y := range b {
			if x == y {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func min32(a, b int32) int32 {
	if a < b {
		return a
	}
	return b
}

func max32(a, b int32) int32 {
	if a > b {
		return a
	}
	return b
}
