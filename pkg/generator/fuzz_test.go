package generator

import (
	"testing"

	"github.com/mwinters-dev/netherquad/pkg/piece"
)

// FuzzGenerateInvariants runs the generator over fuzzed (seed, chunk)
// inputs and checks the structural invariants every run must hold:
// - the first piece is the StartPiece at depth 0
// - no two placed pieces overlap
// - every piece's box floor clears the lowest-Y cutoff
// - no piece exceeds the depth bound
func FuzzGenerateInvariants(f *testing.F) {
	// Seed corpus: origin, negative coordinates, large seeds, and the
	// pinned regression inputs.
	f.Add(int64(12345), int32(0), int32(0))
	f.Add(int64(0), int32(15), int32(2))
	f.Add(int64(-1), int32(-100), int32(-100))
	f.Add(int64(1), int32(27), int32(0))
	f.Add(int64(9223372036854775807), int32(500), int32(-500))

	f.Fuzz(func(t *testing.T, seed int64, cx, cz int32) {
		// Keep chunk coordinates inside the game's usable world border so
		// block coordinates never overflow int32.
		if cx < -1875000 || cx > 1875000 || cz < -1875000 || cz > 1875000 {
			t.Skip("chunk coordinate outside world border")
		}

		pieces := Generate(seed, cx, cz)

		if len(pieces) == 0 {
			t.Fatal("Generate returned no pieces")
		}
		if pieces[0].Kind != piece.StartPiece || pieces[0].Depth != 0 {
			t.Fatalf("first piece = %v depth %d, want StartPiece depth 0", pieces[0].Kind, pieces[0].Depth)
		}

		for i := 0; i < len(pieces); i++ {
			p := pieces[i]
			if p.Box.MinY <= lowestY {
				t.Fatalf("piece %d floor %d at or below lowest Y %d", i, p.Box.MinY, lowestY)
			}
			if p.Depth > maxDepth+1 {
				t.Fatalf("piece %d depth %d exceeds bound %d", i, p.Depth, maxDepth+1)
			}
			for j := i + 1; j < len(pieces); j++ {
				if p.Box.Intersects(pieces[j].Box) {
					t.Fatalf("pieces %d and %d overlap: %+v / %+v", i, j, p.Box, pieces[j].Box)
				}
			}
		}
	})
}
