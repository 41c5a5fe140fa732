package quad

import (
	"github.com/mwinters-dev/netherquad/pkg/generator"
	"github.com/mwinters-dev/netherquad/pkg/geom"
)

// maxConnectionGap is the largest axis-aligned gap between two crossings'
// boxes that still counts as "connected" for grouping purposes: wide
// enough to bridge the intervening straight/room pieces a fortress's
// corridor network typically places between crossings.
const maxConnectionGap = 25

// ConnectedGroups partitions crossings into connected components, where
// two crossings are connected if their boxes overlap on one axis and lie
// within maxConnectionGap on the other. Singleton crossings (no connected
// neighbor) are omitted, matching groups of at least two.
func ConnectedGroups(crossings []*generator.Placed) [][]*generator.Placed {
	if len(crossings) == 0 {
		return nil
	}

	visited := make(map[*generator.Placed]bool, len(crossings))
	var groups [][]*generator.Placed

	for _, c := range crossings {
		if visited[c] {
			continue
		}
		var group []*generator.Placed
		dfsConnected(c, crossings, visited, &group)
		if len(group) >= 2 {
			groups = append(groups, group)
		}
	}
	return groups
}

func dfsConnected(c *generator.Placed, all []*generator.Placed, visited map[*generator.Placed]bool, group *[]*generator.Placed) {
	if visited[c] {
		return
	}
	visited[c] = true
	*group = append(*group, c)

	for _, other := range all {
		if visited[other] {
			continue
		}
		if connected(c, other) {
			dfsConnected(other, all, visited, group)
		}
	}
}

func connected(a, b *generator.Placed) bool {
	return looseAdjacentX(a.Box, b.Box) || looseAdjacentZ(a.Box, b.Box)
}

// looseAdjacentX reports whether two boxes overlap on Z and lie within
// maxConnectionGap of each other along X.
func looseAdjacentX(box1, box2 geom.Box) bool {
	if box1.MinZ > box2.MaxZ || box1.MaxZ < box2.MinZ {
		return false
	}
	gap := abs32(box1.MaxX - box2.MinX)
	if g2 := abs32(box2.MaxX - box1.MinX); g2 < gap {
		gap = g2
	}
	return gap <= maxConnectionGap
}

// looseAdjacentZ reports whether two boxes overlap on X and lie within
// maxConnectionGap of each other along Z.
func looseAdjacentZ(box1, box2 geom.Box) bool {
	if box1.MinX > box2.MaxX || box1.MaxX < box2.MinX {
		return false
	}
	gap := abs32(box1.MaxZ - box2.MinZ)
	if g2 := abs32(box2.MaxZ - box1.MinZ); g2 < gap {
		gap = g2
	}
	return gap <= maxConnectionGap
}

func abs32(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}
