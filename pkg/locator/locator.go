// Package locator maps chunk coordinates to the structure placement system
// shared by Nether fortresses and bastion remnants, and classifies each
// candidate chunk as one or the other.
package locator

import (
	"github.com/mwinters-dev/netherquad/pkg/rng"
)

// Placement parameters from StructureSets' NETHER_COMPLEXES entry.
const (
	Spacing    int32 = 27
	Separation int32 = 4
	Salt       int64 = 30084232

	FortressWeight int32 = 2
	BastionWeight  int32 = 3
	TotalWeight    int32 = FortressWeight + BastionWeight
)

// floorDiv is mathematical floor division (round toward -infinity), which
// Go's native integer division does not provide for negative operands.
func floorDiv(a, b int32) int32 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// RegionOf returns the spacing region containing chunk (cx, cz).
func RegionOf(cx, cz int32) (rx, rz int32) {
	return floorDiv(cx, Spacing), floorDiv(cz, Spacing)
}

// CandidateChunk returns the single chunk within region (rx, rz) that the
// placement system may seed a structure on, for the given world seed. The
// candidate may or may not actually host a Fortress; see IsFortress.
func CandidateChunk(worldSeed int64, rx, rz int32) (cx, cz int32) {
	r := rng.New()
	r.SetLargeFeatureSeedWithSalt(worldSeed, rx, rz, Salt)

	offsetRange := Spacing - Separation
	ox := r.NextIntBound(offsetRange)
	oz := r.NextIntBound(offsetRange)

	return rx*Spacing + ox, rz*Spacing + oz
}

// IsFortress classifies a candidate chunk as Fortress (true) or Bastion
// Remnant (false) using a fresh RNG stream, independent of the stream that
// produced the candidate chunk itself.
func IsFortress(worldSeed int64, cx, cz int32) bool {
	r := rng.New()
	r.SetLargeFeatureSeed(worldSeed, cx, cz)
	return r.NextIntBound(TotalWeight) < FortressWeight
}

// IsFortressChunk reports whether (cx, cz) is itself the candidate chunk
// for its region AND that candidate classifies as a Fortress.
func IsFortressChunk(worldSeed int64, cx, cz int32) bool {
	rx, rz := RegionOf(cx, cz)
	candX, candZ := CandidateChunk(worldSeed, rx, rz)
	return candX == cx && candZ == cz && IsFortress(worldSeed, cx, cz)
}

// FortressesInWindow scans every spacing region overlapping a square window
// of radiusChunks around centerChunk (in both axes) and returns the chunk
// coordinates of every Fortress found, in region-scan order (rx outer, rz
// inner). Bastion Remnants sharing the same placement system are filtered
// out.
func FortressesInWindow(worldSeed int64, centerX, centerZ, radiusChunks int32) [][2]int32 {
	minRX, _ := RegionOf(centerX-radiusChunks, centerZ-radiusChunks)
	maxRX, _ := RegionOf(centerX+radiusChunks, centerZ+radiusChunks)
	_, minRZ := RegionOf(centerX-radiusChunks, centerZ-radiusChunks)
	_, maxRZ := RegionOf(centerX+radiusChunks, centerZ+radiusChunks)

	var out [][2]int32
	for rx := minRX; rx <= maxRX; rx++ {
		for rz := minRZ; rz <= maxRZ; rz++ {
			cx, cz := CandidateChunk(worldSeed, rx, rz)
			if abs32(cx-centerX) > radiusChunks || abs32(cz-centerZ) > radiusChunks {
				continue
			}
			if IsFortress(worldSeed, cx, cz) {
				out = append(out, [2]int32{cx, cz})
			}
		}
	}
	return out
}

func abs32(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}

// ChunkToBlock converts chunk coordinates to the block coordinate of the
// chunk's northwest corner.
func ChunkToBlock(cx, cz int32) (bx, bz int32) {
	return cx * 16, cz * 16
}

// BlockToChunk converts block coordinates to their containing chunk.
func BlockToChunk(bx, bz int32) (cx, cz int32) {
	return bx >> 4, bz >> 4
}
