package report

import (
	"fmt"
	"sort"
	"strings"

	"github.com/mwinters-dev/netherquad/pkg/search"
)

// RenderText creates a human-readable summary of a search result.
func RenderText(r *search.Result) string {
	if r == nil || len(r.Pieces) == 0 {
		return "No fortress data available"
	}

	var sb strings.Builder

	sb.WriteString("=== NETHER FORTRESS ===\n")
	sb.WriteString(fmt.Sprintf("Chunk: (%d, %d)\n", r.ChunkX, r.ChunkZ))
	sb.WriteString(fmt.Sprintf("Pieces: %d\n", len(r.Pieces)))

	counts := make(map[string]int)
	maxDepth := int32(0)
	for _, p := range r.Pieces {
		counts[p.Kind.String()]++
		if p.Depth > maxDepth {
			maxDepth = p.Depth
		}
	}
	sb.WriteString(fmt.Sprintf("Max depth: %d\n\n", maxDepth))

	sb.WriteString("Piece breakdown:\n")
	for _, k := range sortedKeys(counts) {
		sb.WriteString(fmt.Sprintf("  %-32s %d\n", k, counts[k]))
	}

	sb.WriteString(fmt.Sprintf("\nCrossing clusters (2x2): %d\n", len(r.Clusters)))
	for i, c := range r.Clusters {
		sb.WriteString(fmt.Sprintf("  #%d center=(%d,%d,%d) bounds=(%d,%d)->(%d,%d)\n",
			i+1, c.Center[0], c.Center[1], c.Center[2],
			c.Box.MinX, c.Box.MinZ, c.Box.MaxX, c.Box.MaxZ))
	}

	sb.WriteString(fmt.Sprintf("\nConnected crossing groups: %d\n", len(r.Groups)))
	for i, g := range r.Groups {
		sb.WriteString(fmt.Sprintf("  group #%d: %d crossings\n", i+1, len(g)))
	}

	return sb.String()
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
